package handlers

import (
	"time"

	domain "github.com/BruksfildServices01/timeclock/internal/domain/timerecord"
	"github.com/BruksfildServices01/timeclock/internal/dto"
	"github.com/BruksfildServices01/timeclock/internal/models"
	"github.com/BruksfildServices01/timeclock/internal/timezone"
)

// --------------------------------------------------
// Fechas siempre en el huso civil configurado
// --------------------------------------------------

func parseDate(dateStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02",
		dateStr,
		timezone.Location(timezone.DefaultTimezone),
	)
}

func parseDateTime(dateStr, timeStr string) (time.Time, error) {
	return time.ParseInLocation(
		"2006-01-02 15:04",
		dateStr+" "+timeStr,
		timezone.Location(timezone.DefaultTimezone),
	)
}

func recordToDTO(rec *models.TimeRecord, username string) dto.RecordListDTO {
	duration := "-"
	if rec.IsClosed() {
		secs := int64(domain.Duration(rec) / time.Second)
		duration = domain.FormatHHMM(secs)
	}

	return dto.RecordListDTO{
		ID:       rec.ID,
		UserID:   rec.UserID,
		Username: username,
		Date:     rec.Date.Format("2006-01-02"),
		CheckIn:  rec.CheckIn,
		CheckOut: rec.CheckOut,
		Duration: duration,
		Notes:    rec.Notes,
	}
}
