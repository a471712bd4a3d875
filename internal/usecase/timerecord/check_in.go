package timerecord

import (
	"context"

	"github.com/BruksfildServices01/timeclock/internal/audit"
	domain "github.com/BruksfildServices01/timeclock/internal/domain/timerecord"
	"github.com/BruksfildServices01/timeclock/internal/httperr"
	"github.com/BruksfildServices01/timeclock/internal/models"
	"github.com/BruksfildServices01/timeclock/internal/timezone"
)

// ======================================================
// USE CASE — fichar entrada
// ======================================================

type CheckIn struct {
	repo  domain.Repository
	audit audit.Recorder
	clock timezone.Clock
}

func NewCheckIn(
	repo domain.Repository,
	audit audit.Recorder,
	clock timezone.Clock,
) *CheckIn {
	return &CheckIn{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *CheckIn) Execute(
	ctx context.Context,
	userID uint,
) (*models.TimeRecord, error) {

	// --------------------------------------------------
	// 1️⃣ Usuario activo
	// --------------------------------------------------
	user, err := uc.repo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !user.IsActive {
		return nil, httperr.ErrBusiness("inactive_user")
	}

	now := uc.clock.Now()
	today := timezone.DateOf(now)

	// --------------------------------------------------
	// 2️⃣ ¿Estado del día NO trabajable?
	// --------------------------------------------------
	todayStatus, err := uc.repo.GetStatusForDay(ctx, userID, today)
	if err != nil {
		return nil, err
	}
	if todayStatus != nil {
		if err := domain.CanCheckIn(domain.DayStatus(todayStatus.Status)); err != nil {
			return nil, err
		}
	}

	// --------------------------------------------------
	// 3️⃣ ¿Ya hay un fichaje abierto?
	// --------------------------------------------------
	open, err := uc.repo.GetOpenRecord(ctx, userID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return nil, httperr.ErrBusinessMsg(
			"already_open",
			"Ya tienes un registro abierto desde "+open.CheckIn.Format("02-01-2006 15:04:05")+".",
		)
	}

	// --------------------------------------------------
	// 4️⃣ Crear TimeRecord (+ estado Trabajado si falta)
	// --------------------------------------------------
	rec := &models.TimeRecord{
		UserID:  userID,
		CheckIn: &now,
		Date:    today,
	}

	var newStatus *models.EmployeeStatus
	if todayStatus == nil {
		newStatus = &models.EmployeeStatus{
			UserID: userID,
			Date:   today,
			Status: string(domain.StatusTrabajado),
			Notes:  "Registro automático de fichaje",
		}
	}

	// La comprobación de arriba no basta bajo concurrencia: el
	// índice único parcial cierra la carrera y el repo la traduce
	// a "already_open".
	if err := uc.repo.CreateCheckIn(ctx, rec, newStatus); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoría
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "check_in",
		Entity:   "time_record",
		EntityID: &rec.ID,
	})

	return rec, nil
}
