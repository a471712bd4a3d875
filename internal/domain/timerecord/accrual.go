package timerecord

import (
	"fmt"
	"time"

	"github.com/BruksfildServices01/timeclock/internal/models"
)

// ===============================
// Cómputo semanal (lunes–domingo)
// ===============================

type WeeklyAccrual struct {
	WorkedSeconds    int64
	AllowedSeconds   int64
	RemainingSeconds int64
	IsOver           bool
}

// WeekStart devuelve el lunes 00:00 de la semana ISO que contiene day.
func WeekStart(day time.Time) time.Time {
	day = dateOnly(day)
	weekday := int(day.Weekday())
	if weekday == 0 { // domingo
		weekday = 7
	}
	return day.AddDate(0, 0, -(weekday - 1))
}

// WeekEnd: lunes siguiente (exclusivo).
func WeekEnd(day time.Time) time.Time {
	return WeekStart(day).AddDate(0, 0, 7)
}

// ComputeWeekly suma la duración de los registros cerrados y la compara
// con las horas semanales contratadas. Los registros deben venir ya
// filtrados a la semana de referencia; los abiertos se ignoran. No
// valida el orden entrada/salida: eso ocurre en la frontera de escritura.
func ComputeWeekly(records []models.TimeRecord, weeklyHours int) WeeklyAccrual {
	var worked int64
	for i := range records {
		rec := &records[i]
		if !rec.IsClosed() {
			continue
		}
		worked += int64(rec.CheckOut.Sub(*rec.CheckIn) / time.Second)
	}

	allowed := int64(weeklyHours) * 3600

	return WeeklyAccrual{
		WorkedSeconds:    worked,
		AllowedSeconds:   allowed,
		RemainingSeconds: allowed - worked,
		IsOver:           worked > allowed,
	}
}

// FormatHHMM formatea segundos como HH:MM truncando (valor absoluto;
// el llamante usa IsOver para pintar "exceso" vs "restante").
func FormatHHMM(seconds int64) string {
	if seconds < 0 {
		seconds = -seconds
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%02d:%02d", hours, minutes)
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
