package timerecord

import (
	"context"
	"testing"
	"time"

	"github.com/BruksfildServices01/timeclock/internal/httperr"
	"github.com/BruksfildServices01/timeclock/internal/models"
)

func TestCheckInCheckOutRoundTrip(t *testing.T) {
	repo := newFakeRepo()
	user := repo.addUser(models.User{Username: "maria", IsActive: true})

	inClock := fixedClock(2025, time.March, 10, 9, 0)
	outClock := fixedClock(2025, time.March, 10, 17, 30)

	if _, err := NewCheckIn(repo, &recordingAudit{}, inClock).
		Execute(context.Background(), user.ID); err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	rec, err := NewCheckOut(repo, &recordingAudit{}, outClock).
		Execute(context.Background(), user.ID, "turno de mañana")
	if err != nil {
		t.Fatalf("CheckOut: %v", err)
	}

	if len(repo.records) != 1 {
		t.Fatalf("records = %d, want exactly 1", len(repo.records))
	}
	if rec.CheckIn == nil || rec.CheckOut == nil {
		t.Fatal("round trip must leave a closed record")
	}
	if rec.CheckOut.Before(*rec.CheckIn) {
		t.Errorf("check_out %v before check_in %v", rec.CheckOut, rec.CheckIn)
	}
	if rec.Notes != "turno de mañana" {
		t.Errorf("notes = %q", rec.Notes)
	}
	if !rec.Date.Equal(inClock.Today()) {
		t.Errorf("date = %v, want civil date of check_in %v", rec.Date, inClock.Today())
	}

	open, _ := repo.GetOpenRecord(context.Background(), user.ID)
	if open != nil {
		t.Error("no record should remain open after check-out")
	}
}

func TestCheckOutWithNothingOpenIsNoOp(t *testing.T) {
	repo := newFakeRepo()
	user := repo.addUser(models.User{Username: "maria", IsActive: true})

	// Un registro ya cerrado que no debe tocarse.
	in := time.Date(2025, time.March, 9, 9, 0, 0, 0, madrid)
	out := time.Date(2025, time.March, 9, 17, 0, 0, 0, madrid)
	closed := repo.addRecord(models.TimeRecord{
		UserID:   user.ID,
		CheckIn:  &in,
		CheckOut: &out,
		Date:     time.Date(2025, time.March, 9, 0, 0, 0, 0, madrid),
		Notes:    "cerrado",
	})

	uc := NewCheckOut(repo, &recordingAudit{}, fixedClock(2025, time.March, 10, 18, 0))

	for i := 0; i < 3; i++ {
		_, err := uc.Execute(context.Background(), user.ID, "ignorado")
		if !httperr.IsBusiness(err, "no_open_record") {
			t.Fatalf("attempt %d: err = %v, want no_open_record", i, err)
		}
	}

	stored, _ := repo.GetRecordByID(context.Background(), closed.ID)
	if stored.Notes != "cerrado" || !stored.CheckOut.Equal(out) {
		t.Errorf("closed record was mutated: %+v", stored)
	}
}
