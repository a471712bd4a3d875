package timerecord

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/timeclock/internal/models"
)

func TestWeekStart(t *testing.T) {
	cases := []struct {
		name string
		day  time.Time
		want time.Time
	}{
		{
			name: "lunes se queda en lunes",
			day:  time.Date(2025, time.March, 10, 14, 30, 0, 0, madrid),
			want: time.Date(2025, time.March, 10, 0, 0, 0, 0, madrid),
		},
		{
			name: "miércoles retrocede al lunes",
			day:  time.Date(2025, time.March, 12, 9, 0, 0, 0, madrid),
			want: time.Date(2025, time.March, 10, 0, 0, 0, 0, madrid),
		},
		{
			name: "domingo pertenece a la semana que empezó el lunes anterior",
			day:  time.Date(2025, time.March, 16, 23, 0, 0, 0, madrid),
			want: time.Date(2025, time.March, 10, 0, 0, 0, 0, madrid),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := WeekStart(tc.day); !got.Equal(tc.want) {
				t.Errorf("WeekStart(%v) = %v, want %v", tc.day, got, tc.want)
			}
		})
	}
}

func TestWeekEnd(t *testing.T) {
	day := time.Date(2025, time.March, 12, 9, 0, 0, 0, madrid)
	want := time.Date(2025, time.March, 17, 0, 0, 0, 0, madrid)
	if got := WeekEnd(day); !got.Equal(want) {
		t.Errorf("WeekEnd = %v, want %v", got, want)
	}
}

func closedShift(day time.Time, fromHour, toHour int) models.TimeRecord {
	in := time.Date(day.Year(), day.Month(), day.Day(), fromHour, 0, 0, 0, madrid)
	out := time.Date(day.Year(), day.Month(), day.Day(), toHour, 0, 0, 0, madrid)
	return models.TimeRecord{UserID: 1, CheckIn: &in, CheckOut: &out, Date: day}
}

func TestComputeWeekly(t *testing.T) {
	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, madrid)

	recs := []models.TimeRecord{
		closedShift(monday, 9, 17),                  // 8h
		closedShift(monday.AddDate(0, 0, 1), 9, 14), // 5h
	}
	// un abierto colado en la lista no suma
	open := closedShift(monday.AddDate(0, 0, 2), 9, 17)
	open.CheckOut = nil
	recs = append(recs, open)

	acc := ComputeWeekly(recs, 40)

	if acc.WorkedSeconds != 13*3600 {
		t.Errorf("worked = %d, want %d", acc.WorkedSeconds, 13*3600)
	}
	if acc.AllowedSeconds != 144000 {
		t.Errorf("allowed = %d, want 144000", acc.AllowedSeconds)
	}
	if acc.RemainingSeconds != 27*3600 {
		t.Errorf("remaining = %d, want %d", acc.RemainingSeconds, 27*3600)
	}
	if acc.IsOver {
		t.Error("IsOver = true")
	}
}

func TestComputeWeeklyOverContract(t *testing.T) {
	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, madrid)

	var recs []models.TimeRecord
	for d := 0; d < 5; d++ {
		recs = append(recs, closedShift(monday.AddDate(0, 0, d), 8, 17)) // 45h
	}

	acc := ComputeWeekly(recs, 40)

	if !acc.IsOver {
		t.Error("IsOver = false with 45h of 40h")
	}
	if acc.RemainingSeconds != -18000 {
		t.Errorf("remaining = %d, want -18000", acc.RemainingSeconds)
	}
}

func TestComputeWeeklyExactContractIsNotOver(t *testing.T) {
	monday := time.Date(2025, time.March, 10, 0, 0, 0, 0, madrid)

	var recs []models.TimeRecord
	for d := 0; d < 5; d++ {
		recs = append(recs, closedShift(monday.AddDate(0, 0, d), 9, 17)) // 40h justas
	}

	acc := ComputeWeekly(recs, 40)

	if acc.IsOver {
		t.Error("IsOver = true at exactly the contracted hours")
	}
	if acc.RemainingSeconds != 0 {
		t.Errorf("remaining = %d, want 0", acc.RemainingSeconds)
	}
}

func TestFormatHHMM(t *testing.T) {
	cases := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00"},
		{28800, "08:00"},
		{13*3600 + 45*60, "13:45"},
		{59, "00:00"},     // los segundos sueltos se truncan
		{-18000, "05:00"}, // exceso: valor absoluto
		{115200, "32:00"}, // más de 24h no envuelve
	}

	for _, tc := range cases {
		if got := FormatHHMM(tc.seconds); got != tc.want {
			t.Errorf("FormatHHMM(%d) = %q, want %q", tc.seconds, got, tc.want)
		}
	}
}
