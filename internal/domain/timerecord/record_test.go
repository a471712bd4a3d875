package timerecord

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/timeclock/internal/httperr"
	"github.com/BruksfildServices01/timeclock/internal/models"
	"github.com/BruksfildServices01/timeclock/internal/timezone"
)

var madrid = timezone.Location("Europe/Madrid")

func openRecord(day time.Time, hour int, notes string) models.TimeRecord {
	in := time.Date(day.Year(), day.Month(), day.Day(), hour, 0, 0, 0, madrid)
	return models.TimeRecord{
		UserID:  1,
		CheckIn: &in,
		Date:    day,
		Notes:   notes,
	}
}

func TestClose(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, madrid)
	rec := openRecord(day, 9, "")

	out := time.Date(2025, time.March, 10, 17, 30, 0, 0, madrid)
	if err := Close(&rec, out, "turno completo"); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if rec.CheckOut == nil || !rec.CheckOut.Equal(out) {
		t.Errorf("check_out = %v, want %v", rec.CheckOut, out)
	}
	if rec.Notes != "turno completo" {
		t.Errorf("notes = %q", rec.Notes)
	}

	// cerrar dos veces no tiene sentido
	if err := Close(&rec, out, ""); !httperr.IsBusiness(err, "no_open_record") {
		t.Errorf("second Close: got %v, want no_open_record", err)
	}
}

func TestAutoClose(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, madrid)
	rec := openRecord(day, 9, "")

	AutoClose(&rec)

	want := time.Date(2025, time.March, 10, 23, 59, 59, 0, madrid)
	if rec.CheckOut == nil || !rec.CheckOut.Equal(want) {
		t.Errorf("check_out = %v, want %v", rec.CheckOut, want)
	}
	if rec.Notes != AutoCloseNote {
		t.Errorf("notes = %q, want %q", rec.Notes, AutoCloseNote)
	}
}

func TestAppendAutoCloseNote(t *testing.T) {
	if got := AppendAutoCloseNote(""); got != "Cerrado automáticamente" {
		t.Errorf("empty notes: %q", got)
	}
	if got := AppendAutoCloseNote("turno de tarde"); got != "turno de tarde - Cerrado automáticamente" {
		t.Errorf("existing notes: %q", got)
	}
}

func TestValidateRange(t *testing.T) {
	in := time.Date(2025, time.March, 10, 9, 0, 0, 0, madrid)
	before := in.Add(-time.Minute)
	after := in.Add(8 * time.Hour)

	if err := ValidateRange(&in, &after); err != nil {
		t.Errorf("valid range rejected: %v", err)
	}
	if err := ValidateRange(&in, &in); err != nil {
		t.Errorf("zero-length range rejected: %v", err)
	}
	if err := ValidateRange(&in, &before); !httperr.IsBusiness(err, "invalid_range") {
		t.Errorf("inverted range: got %v, want invalid_range", err)
	}
	if err := ValidateRange(&in, nil); err != nil {
		t.Errorf("open record rejected: %v", err)
	}
	if err := ValidateRange(nil, nil); err != nil {
		t.Errorf("empty record rejected: %v", err)
	}
}

func TestDuration(t *testing.T) {
	day := time.Date(2025, time.March, 10, 0, 0, 0, 0, madrid)
	rec := openRecord(day, 9, "")

	if d := Duration(&rec); d != 0 {
		t.Errorf("open record duration = %v, want 0", d)
	}

	out := time.Date(2025, time.March, 10, 17, 15, 0, 0, madrid)
	rec.CheckOut = &out
	if d := Duration(&rec); d != 8*time.Hour+15*time.Minute {
		t.Errorf("duration = %v, want 8h15m", d)
	}
}
