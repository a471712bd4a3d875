package timerecord

import (
	"context"
	"strings"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/timeclock/internal/domain/timerecord"
	"github.com/BruksfildServices01/timeclock/internal/httperr"
	"github.com/BruksfildServices01/timeclock/internal/models"
	"github.com/BruksfildServices01/timeclock/internal/timezone"
)

var madrid = timezone.Location("Europe/Madrid")

func fixedClock(year int, month time.Month, day, hour, min int) timezone.FixedClock {
	return timezone.FixedClock{
		Instant: time.Date(year, month, day, hour, min, 0, 0, madrid),
	}
}

func TestCheckInCreatesRecordAndStatus(t *testing.T) {
	repo := newFakeRepo()
	user := repo.addUser(models.User{Username: "maria", IsActive: true, WeeklyHours: 40})

	clock := fixedClock(2025, time.March, 10, 9, 0)
	uc := NewCheckIn(repo, &recordingAudit{}, clock)

	rec, err := uc.Execute(context.Background(), user.ID)
	if err != nil {
		t.Fatalf("CheckIn: %v", err)
	}

	if rec.CheckIn == nil || !rec.CheckIn.Equal(clock.Now()) {
		t.Errorf("check_in = %v, want %v", rec.CheckIn, clock.Now())
	}
	if rec.CheckOut != nil {
		t.Errorf("new record must be open, got check_out = %v", rec.CheckOut)
	}
	if !rec.Date.Equal(clock.Today()) {
		t.Errorf("date = %v, want %v", rec.Date, clock.Today())
	}

	st, err := repo.GetStatusForDay(context.Background(), user.ID, clock.Today())
	if err != nil {
		t.Fatalf("GetStatusForDay: %v", err)
	}
	if st == nil || st.Status != string(domain.StatusTrabajado) {
		t.Errorf("today status = %+v, want Trabajado", st)
	}
}

func TestCheckInRejectsWhenAlreadyOpen(t *testing.T) {
	repo := newFakeRepo()
	user := repo.addUser(models.User{Username: "maria", IsActive: true})

	clock := fixedClock(2025, time.March, 10, 9, 0)
	uc := NewCheckIn(repo, &recordingAudit{}, clock)

	if _, err := uc.Execute(context.Background(), user.ID); err != nil {
		t.Fatalf("first CheckIn: %v", err)
	}

	_, err := uc.Execute(context.Background(), user.ID)
	if !httperr.IsBusiness(err, "already_open") {
		t.Fatalf("second CheckIn err = %v, want already_open", err)
	}

	// El mensaje debe llevar la hora del fichaje original.
	if msg := httperr.BusinessMessage(err); !strings.Contains(msg, "09:00:00") {
		t.Errorf("message %q does not surface the original check-in time", msg)
	}

	open, _ := repo.GetOpenRecord(context.Background(), user.ID)
	if open == nil {
		t.Fatal("open record disappeared")
	}
	if got := len(repo.records); got != 1 {
		t.Errorf("records = %d, want 1 (invariant: at most one open)", got)
	}
}

func TestCheckInRejectsNonWorkingDay(t *testing.T) {
	statuses := []domain.DayStatus{
		domain.StatusVacaciones,
		domain.StatusBaja,
		domain.StatusAusente,
	}

	for _, st := range statuses {
		t.Run(string(st), func(t *testing.T) {
			repo := newFakeRepo()
			user := repo.addUser(models.User{Username: "maria", IsActive: true})

			clock := fixedClock(2025, time.March, 10, 9, 0)
			if err := repo.UpsertStatus(context.Background(), &models.EmployeeStatus{
				UserID: user.ID,
				Date:   clock.Today(),
				Status: string(st),
			}); err != nil {
				t.Fatalf("UpsertStatus: %v", err)
			}

			uc := NewCheckIn(repo, &recordingAudit{}, clock)

			_, err := uc.Execute(context.Background(), user.ID)
			if !httperr.IsBusiness(err, "non_working_day") {
				t.Fatalf("err = %v, want non_working_day", err)
			}
			if len(repo.records) != 0 {
				t.Error("no record must be created on a non-working day")
			}
		})
	}
}

func TestCheckInAllowsTrabajadoStatus(t *testing.T) {
	repo := newFakeRepo()
	user := repo.addUser(models.User{Username: "maria", IsActive: true})

	clock := fixedClock(2025, time.March, 10, 9, 0)
	if err := repo.UpsertStatus(context.Background(), &models.EmployeeStatus{
		UserID: user.ID,
		Date:   clock.Today(),
		Status: string(domain.StatusTrabajado),
	}); err != nil {
		t.Fatalf("UpsertStatus: %v", err)
	}

	uc := NewCheckIn(repo, &recordingAudit{}, clock)
	if _, err := uc.Execute(context.Background(), user.ID); err != nil {
		t.Fatalf("CheckIn on Trabajado day: %v", err)
	}
}

func TestCheckInRejectsInactiveUser(t *testing.T) {
	repo := newFakeRepo()
	user := repo.addUser(models.User{Username: "maria", IsActive: false})

	uc := NewCheckIn(repo, &recordingAudit{}, fixedClock(2025, time.March, 10, 9, 0))

	_, err := uc.Execute(context.Background(), user.ID)
	if !httperr.IsBusiness(err, "inactive_user") {
		t.Fatalf("err = %v, want inactive_user", err)
	}
}

func TestCheckInUnknownUser(t *testing.T) {
	repo := newFakeRepo()
	uc := NewCheckIn(repo, &recordingAudit{}, fixedClock(2025, time.March, 10, 9, 0))

	_, err := uc.Execute(context.Background(), 42)
	if !httperr.IsBusiness(err, "user_not_found") {
		t.Fatalf("err = %v, want user_not_found", err)
	}
}
