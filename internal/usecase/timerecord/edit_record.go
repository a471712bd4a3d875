package timerecord

import (
	"context"
	"time"

	"github.com/BruksfildServices01/timeclock/internal/audit"
	domain "github.com/BruksfildServices01/timeclock/internal/domain/timerecord"
	"github.com/BruksfildServices01/timeclock/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type EditRecordInput struct {
	RecordID uint

	Date     time.Time
	CheckIn  *time.Time
	CheckOut *time.Time
	Notes    string

	// Admin que realiza la corrección (siempre explícito, nunca
	// estado de sesión ambiente).
	EditorID uint
}

// ======================================================
// USE CASE — corrección administrativa
// ======================================================

type EditRecord struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewEditRecord(
	repo domain.Repository,
	audit audit.Recorder,
) *EditRecord {
	return &EditRecord{
		repo:  repo,
		audit: audit,
	}
}

func (uc *EditRecord) Execute(
	ctx context.Context,
	in EditRecordInput,
) (*models.TimeRecord, error) {

	rec, err := uc.repo.GetRecordByID(ctx, in.RecordID)
	if err != nil {
		return nil, err
	}

	// Rechazo antes de tocar nada: el registro queda intacto y los
	// valores originales siguen disponibles para repintar el formulario.
	if err := domain.ValidateRange(in.CheckIn, in.CheckOut); err != nil {
		return nil, err
	}

	rec.Date = in.Date
	rec.CheckIn = in.CheckIn
	rec.CheckOut = in.CheckOut
	rec.Notes = in.Notes
	rec.ModifiedBy = &in.EditorID

	if err := uc.repo.UpdateRecord(ctx, rec); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.EditorID,
		Action:   "record_edited",
		Entity:   "time_record",
		EntityID: &rec.ID,
		Metadata: map[string]any{"target_user_id": rec.UserID},
	})

	return rec, nil
}

// ======================================================
// USE CASE — borrado explícito por admin
// ======================================================

type DeleteRecord struct {
	repo  domain.Repository
	audit audit.Recorder
}

func NewDeleteRecord(
	repo domain.Repository,
	audit audit.Recorder,
) *DeleteRecord {
	return &DeleteRecord{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteRecord) Execute(
	ctx context.Context,
	recordID uint,
	actorID uint,
) error {

	rec, err := uc.repo.GetRecordByID(ctx, recordID)
	if err != nil {
		return err
	}

	if err := uc.repo.DeleteRecord(ctx, rec.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "record_deleted",
		Entity:   "time_record",
		EntityID: &rec.ID,
		Metadata: map[string]any{"target_user_id": rec.UserID},
	})

	return nil
}
