package repository

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/timeclock/internal/domain/timerecord"
	"github.com/BruksfildServices01/timeclock/internal/httperr"
	"github.com/BruksfildServices01/timeclock/internal/models"
)

type TimeRecordGormRepository struct {
	db *gorm.DB
}

func NewTimeRecordGormRepository(db *gorm.DB) *TimeRecordGormRepository {
	return &TimeRecordGormRepository{db: db}
}

// --------------------------------------------------
// User
// --------------------------------------------------

func (r *TimeRecordGormRepository) GetUserByID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var user models.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("user_not_found")
		}
		return nil, err
	}
	return &user, nil
}

// --------------------------------------------------
// TimeRecord — fichaje abierto
// --------------------------------------------------

func (r *TimeRecordGormRepository) GetOpenRecord(
	ctx context.Context,
	userID uint,
) (*models.TimeRecord, error) {

	// El índice único parcial garantiza 0 o 1 abiertos; el orden por
	// id desc cubre datos heredados anteriores al índice.
	var rec models.TimeRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND check_out IS NULL", userID).
		Order("id DESC").
		First(&rec).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *TimeRecordGormRepository) CreateCheckIn(
	ctx context.Context,
	rec *models.TimeRecord,
	status *models.EmployeeStatus,
) error {

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(rec).Error; err != nil {
			return err
		}

		if status != nil {
			// Dos check-ins el mismo día pueden competir por el
			// estado; el que pierde simplemente no lo crea.
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
				DoNothing: true,
			}).Create(status).Error; err != nil {
				return err
			}
		}

		return nil
	})

	if isUniqueViolation(err) {
		// Carrera check-then-insert cerrada por el índice único
		// parcial sobre (user_id) where check_out is null.
		return httperr.ErrBusiness("already_open")
	}
	return err
}

// --------------------------------------------------
// TimeRecord — edición / consulta
// --------------------------------------------------

func (r *TimeRecordGormRepository) GetRecordByID(
	ctx context.Context,
	id uint,
) (*models.TimeRecord, error) {

	var rec models.TimeRecord
	if err := r.db.WithContext(ctx).First(&rec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, httperr.ErrBusiness("record_not_found")
		}
		return nil, err
	}
	return &rec, nil
}

func (r *TimeRecordGormRepository) UpdateRecord(
	ctx context.Context,
	rec *models.TimeRecord,
) error {
	return r.db.WithContext(ctx).Save(rec).Error
}

func (r *TimeRecordGormRepository) DeleteRecord(
	ctx context.Context,
	id uint,
) error {
	return r.db.WithContext(ctx).Delete(&models.TimeRecord{}, id).Error
}

func (r *TimeRecordGormRepository) ListClosedRecordsBetween(
	ctx context.Context,
	userID uint,
	from time.Time,
	to time.Time,
) ([]models.TimeRecord, error) {

	var recs []models.TimeRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("date >= ? AND date < ?", from, to).
		Where("check_in IS NOT NULL AND check_out IS NOT NULL").
		Order("date ASC, id DESC").
		Find(&recs).Error

	return recs, err
}

// --------------------------------------------------
// Sweeper
// --------------------------------------------------

func (r *TimeRecordGormRepository) ListOpenRecords(
	ctx context.Context,
	filter domain.OpenRecordFilter,
) ([]models.TimeRecord, error) {

	q := r.db.WithContext(ctx).
		Where("check_in IS NOT NULL AND check_out IS NULL")

	if filter.DateBefore != nil {
		q = q.Where("date < ?", *filter.DateBefore)
	}
	if filter.DateEquals != nil {
		q = q.Where("date = ?", *filter.DateEquals)
	}

	var recs []models.TimeRecord
	err := q.Order("id ASC").Find(&recs).Error
	return recs, err
}

func (r *TimeRecordGormRepository) CloseRecords(
	ctx context.Context,
	recs []models.TimeRecord,
) error {

	// Todo o nada: cualquier fallo revierte el lote entero.
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for i := range recs {
			if err := tx.Save(&recs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// --------------------------------------------------
// EmployeeStatus
// --------------------------------------------------

func (r *TimeRecordGormRepository) GetStatusForDay(
	ctx context.Context,
	userID uint,
	day time.Time,
) (*models.EmployeeStatus, error) {

	var st models.EmployeeStatus
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		First(&st).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &st, nil
}

func (r *TimeRecordGormRepository) UpsertStatus(
	ctx context.Context,
	st *models.EmployeeStatus,
) error {

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns([]string{"status", "notes", "updated_at"}),
	}).Create(st).Error
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
