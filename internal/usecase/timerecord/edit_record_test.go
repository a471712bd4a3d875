package timerecord

import (
	"context"
	"reflect"
	"testing"
	"time"

	"github.com/BruksfildServices01/timeclock/internal/httperr"
	"github.com/BruksfildServices01/timeclock/internal/models"
)

func seedClosedRecord(repo *fakeRepo, userID uint) *models.TimeRecord {
	in := time.Date(2025, time.March, 10, 9, 0, 0, 0, madrid)
	out := time.Date(2025, time.March, 10, 17, 0, 0, 0, madrid)
	return repo.addRecord(models.TimeRecord{
		UserID:   userID,
		CheckIn:  &in,
		CheckOut: &out,
		Date:     time.Date(2025, time.March, 10, 0, 0, 0, 0, madrid),
		Notes:    "original",
	})
}

func TestEditRecordRejectsInvalidRange(t *testing.T) {
	repo := newFakeRepo()
	admin := repo.addUser(models.User{Username: "admin", IsAdmin: true, IsActive: true})
	user := repo.addUser(models.User{Username: "maria", IsActive: true})
	rec := seedClosedRecord(repo, user.ID)

	before, _ := repo.GetRecordByID(context.Background(), rec.ID)

	in := time.Date(2025, time.March, 10, 15, 0, 0, 0, madrid)
	out := time.Date(2025, time.March, 10, 9, 0, 0, 0, madrid) // antes de la entrada

	uc := NewEditRecord(repo, &recordingAudit{})
	_, err := uc.Execute(context.Background(), EditRecordInput{
		RecordID: rec.ID,
		Date:     rec.Date,
		CheckIn:  &in,
		CheckOut: &out,
		Notes:    "no debe aplicarse",
		EditorID: admin.ID,
	})
	if !httperr.IsBusiness(err, "invalid_range") {
		t.Fatalf("err = %v, want invalid_range", err)
	}

	after, _ := repo.GetRecordByID(context.Background(), rec.ID)
	if !reflect.DeepEqual(before, after) {
		t.Errorf("record changed on rejected edit:\nbefore %+v\nafter  %+v", before, after)
	}
}

func TestEditRecordRecordsEditor(t *testing.T) {
	repo := newFakeRepo()
	admin := repo.addUser(models.User{Username: "admin", IsAdmin: true, IsActive: true})
	user := repo.addUser(models.User{Username: "maria", IsActive: true})
	rec := seedClosedRecord(repo, user.ID)

	in := time.Date(2025, time.March, 10, 8, 30, 0, 0, madrid)
	out := time.Date(2025, time.March, 10, 16, 30, 0, 0, madrid)

	auditSink := &recordingAudit{}
	uc := NewEditRecord(repo, auditSink)

	edited, err := uc.Execute(context.Background(), EditRecordInput{
		RecordID: rec.ID,
		Date:     rec.Date,
		CheckIn:  &in,
		CheckOut: &out,
		Notes:    "corregido",
		EditorID: admin.ID,
	})
	if err != nil {
		t.Fatalf("EditRecord: %v", err)
	}

	if edited.ModifiedBy == nil || *edited.ModifiedBy != admin.ID {
		t.Errorf("modified_by = %v, want %d", edited.ModifiedBy, admin.ID)
	}
	if edited.Notes != "corregido" {
		t.Errorf("notes = %q", edited.Notes)
	}

	if len(auditSink.events) != 1 || auditSink.events[0].Action != "record_edited" {
		t.Errorf("audit events = %+v, want one record_edited", auditSink.events)
	}
}

func TestEditRecordAllowsClearingCheckOut(t *testing.T) {
	repo := newFakeRepo()
	admin := repo.addUser(models.User{Username: "admin", IsAdmin: true, IsActive: true})
	user := repo.addUser(models.User{Username: "maria", IsActive: true})
	rec := seedClosedRecord(repo, user.ID)

	in := time.Date(2025, time.March, 10, 9, 0, 0, 0, madrid)

	uc := NewEditRecord(repo, &recordingAudit{})
	edited, err := uc.Execute(context.Background(), EditRecordInput{
		RecordID: rec.ID,
		Date:     rec.Date,
		CheckIn:  &in,
		CheckOut: nil,
		Notes:    rec.Notes,
		EditorID: admin.ID,
	})
	if err != nil {
		t.Fatalf("EditRecord: %v", err)
	}
	if edited.CheckOut != nil {
		t.Errorf("check_out = %v, want nil", edited.CheckOut)
	}
}

func TestDeleteRecord(t *testing.T) {
	repo := newFakeRepo()
	admin := repo.addUser(models.User{Username: "admin", IsAdmin: true, IsActive: true})
	user := repo.addUser(models.User{Username: "maria", IsActive: true})
	rec := seedClosedRecord(repo, user.ID)

	uc := NewDeleteRecord(repo, &recordingAudit{})
	if err := uc.Execute(context.Background(), rec.ID, admin.ID); err != nil {
		t.Fatalf("DeleteRecord: %v", err)
	}

	if _, err := repo.GetRecordByID(context.Background(), rec.ID); !httperr.IsBusiness(err, "record_not_found") {
		t.Errorf("record still present after delete: %v", err)
	}

	if err := uc.Execute(context.Background(), rec.ID, admin.ID); !httperr.IsBusiness(err, "record_not_found") {
		t.Errorf("second delete err = %v, want record_not_found", err)
	}
}
