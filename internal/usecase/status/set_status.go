package status

import (
	"context"
	"time"

	"github.com/BruksfildServices01/timeclock/internal/audit"
	domain "github.com/BruksfildServices01/timeclock/internal/domain/timerecord"
	"github.com/BruksfildServices01/timeclock/internal/httperr"
	"github.com/BruksfildServices01/timeclock/internal/models"
	"github.com/BruksfildServices01/timeclock/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SetStatusInput struct {
	UserID  uint
	Date    time.Time
	Status  string
	Notes   string
	ActorID uint
}

// ======================================================
// USE CASE — marcar Baja/Ausente/Vacaciones (o Trabajado)
// ======================================================

type SetStatus struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewSetStatus(
	repo domain.Repository,
	audit audit.Recorder,
) *SetStatus {
	return &SetStatus{
		repo:  repo,
		audit: audit,
	}
}

// Execute crea o sustituye el estado del día: exactamente una fila
// por (user, date), garantizado por el índice único y el upsert.
func (uc *SetStatus) Execute(
	ctx context.Context,
	in SetStatusInput,
) (*models.EmployeeStatus, error) {

	if !domain.IsValidStatus(domain.DayStatus(in.Status)) {
		return nil, httperr.ErrBusiness("invalid_status")
	}

	if _, err := uc.repo.GetUserByID(ctx, in.UserID); err != nil {
		return nil, err
	}

	st := &models.EmployeeStatus{
		UserID: in.UserID,
		Date:   timezone.DateOf(in.Date),
		Status: in.Status,
		Notes:  in.Notes,
	}

	if err := uc.repo.UpsertStatus(ctx, st); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorID,
		Action:   "status_set",
		Entity:   "employee_status",
		EntityID: &st.ID,
		Metadata: map[string]any{
			"target_user_id": in.UserID,
			"status":         in.Status,
		},
	})

	return st, nil
}
