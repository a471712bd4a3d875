package timerecord

import (
	"context"
	"log"
	"time"

	"github.com/BruksfildServices01/timeclock/internal/audit"
	domain "github.com/BruksfildServices01/timeclock/internal/domain/timerecord"
	"github.com/BruksfildServices01/timeclock/internal/timezone"
)

// ======================================================
// USE CASE — cierre automático de fichajes olvidados
// ======================================================

type AutoClose struct {
	repo  domain.Repository
	audit audit.Recorder
	clock timezone.Clock
}

func NewAutoClose(
	repo domain.Repository,
	audit audit.Recorder,
	clock timezone.Clock,
) *AutoClose {
	return &AutoClose{
		repo:  repo,
		audit: audit,
		clock: clock,
	}
}

// Execute cierra los fichajes abiertos a las 23:59:59 de su propia
// fecha. Con includeToday=false solo cierra días anteriores a hoy:
// es el modo del cron externo que corre pasada la medianoche, para
// no cerrar a quien sigue trabajando legítimamente.
func (uc *AutoClose) Execute(
	ctx context.Context,
	includeToday bool,
) (int, error) {

	filter := domain.OpenRecordFilter{}
	if !includeToday {
		today := uc.clock.Today()
		filter.DateBefore = &today
	}

	return uc.sweep(ctx, filter)
}

// ExecuteManual cierra los abiertos de una fecha concreta, o todos
// si targetDate es nil. Acción disparada por un admin.
func (uc *AutoClose) ExecuteManual(
	ctx context.Context,
	targetDate *time.Time,
) (int, error) {

	filter := domain.OpenRecordFilter{}
	if targetDate != nil {
		day := timezone.DateOf(*targetDate)
		filter.DateEquals = &day
	}

	return uc.sweep(ctx, filter)
}

func (uc *AutoClose) sweep(
	ctx context.Context,
	filter domain.OpenRecordFilter,
) (int, error) {

	open, err := uc.repo.ListOpenRecords(ctx, filter)
	if err != nil {
		return 0, err
	}

	if len(open) == 0 {
		log.Println("auto-close: no open records to close")
		return 0, nil
	}

	for i := range open {
		domain.AutoClose(&open[i])
	}

	// Lote completo o nada; si falla, la siguiente invocación
	// programada lo reintenta.
	if err := uc.repo.CloseRecords(ctx, open); err != nil {
		return 0, err
	}

	for i := range open {
		rec := &open[i]
		uc.audit.Dispatch(audit.Event{
			UserID:   &rec.UserID,
			Action:   "record_auto_closed",
			Entity:   "time_record",
			EntityID: &rec.ID,
		})
	}

	log.Printf("auto-close: closed %d open records", len(open))
	return len(open), nil
}
