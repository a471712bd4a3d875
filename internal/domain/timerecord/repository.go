package timerecord

import (
	"context"
	"time"

	"github.com/BruksfildServices01/timeclock/internal/models"
)

// OpenRecordFilter acota la búsqueda de fichajes abiertos para el
// cierre automático. Ambos campos a nil = todos los abiertos.
type OpenRecordFilter struct {
	DateBefore *time.Time
	DateEquals *time.Time
}

type Repository interface {
	// -------- User --------
	GetUserByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- TimeRecord (check-in / check-out) --------

	// GetOpenRecord devuelve el fichaje abierto más reciente por id,
	// o nil si no hay ninguno.
	GetOpenRecord(
		ctx context.Context,
		userID uint,
	) (*models.TimeRecord, error)

	// CreateCheckIn inserta el fichaje y, si status no es nil, el
	// estado del día en la misma transacción. Una violación del
	// índice único parcial (ya hay un abierto) debe traducirse al
	// error de negocio "already_open".
	CreateCheckIn(
		ctx context.Context,
		rec *models.TimeRecord,
		status *models.EmployeeStatus,
	) error

	// -------- TimeRecord (edición / consulta) --------
	GetRecordByID(
		ctx context.Context,
		id uint,
	) (*models.TimeRecord, error)

	UpdateRecord(
		ctx context.Context,
		rec *models.TimeRecord,
	) error

	DeleteRecord(
		ctx context.Context,
		id uint,
	) error

	ListClosedRecordsBetween(
		ctx context.Context,
		userID uint,
		from time.Time,
		to time.Time,
	) ([]models.TimeRecord, error)

	// -------- Sweeper --------
	ListOpenRecords(
		ctx context.Context,
		filter OpenRecordFilter,
	) ([]models.TimeRecord, error)

	// CloseRecords persiste el lote completo en una única
	// transacción: o se cierran todos o ninguno.
	CloseRecords(
		ctx context.Context,
		recs []models.TimeRecord,
	) error

	// -------- EmployeeStatus --------
	GetStatusForDay(
		ctx context.Context,
		userID uint,
		day time.Time,
	) (*models.EmployeeStatus, error)

	UpsertStatus(
		ctx context.Context,
		st *models.EmployeeStatus,
	) error
}
