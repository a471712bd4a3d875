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
// USE CASE — fichar salida
// ======================================================

type CheckOut struct {
	repo  domain.Repository
	audit audit.Recorder
	clock timezone.Clock
}

func NewCheckOut(
	repo domain.Repository,
	audit audit.Recorder,
	clock timezone.Clock,
) *CheckOut {
	return &CheckOut{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

func (uc *CheckOut) Execute(
	ctx context.Context,
	userID uint,
	notes string,
) (*models.TimeRecord, error) {

	open, err := uc.repo.GetOpenRecord(ctx, userID)
	if err != nil {
		return nil, err
	}
	if open == nil {
		// No-op: se informa al llamante, nada que reintentar.
		return nil, httperr.ErrBusinessMsg(
			"no_open_record",
			"No tienes ningún fichaje abierto.",
		)
	}

	if err := domain.Close(open, uc.clock.Now(), notes); err != nil {
		return nil, err
	}

	if err := uc.repo.UpdateRecord(ctx, open); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &userID,
		Action:   "check_out",
		Entity:   "time_record",
		EntityID: &open.ID,
	})

	return open, nil
}

// CurrentOpenRecord expone la consulta del fichaje abierto (UI y
// precondición de CheckIn).
type CurrentOpenRecord struct {
	repo domain.Repository
}

func NewCurrentOpenRecord(repo domain.Repository) *CurrentOpenRecord {
	return &CurrentOpenRecord{repo: repo}
}

func (uc *CurrentOpenRecord) Execute(
	ctx context.Context,
	userID uint,
) (*models.TimeRecord, error) {
	return uc.repo.GetOpenRecord(ctx, userID)
}
