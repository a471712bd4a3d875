package timerecord

import (
	"time"

	"github.com/BruksfildServices01/timeclock/internal/httperr"
	"github.com/BruksfildServices01/timeclock/internal/models"
)

// AutoCloseNote es la marca fija que el cierre automático añade a las notas.
const AutoCloseNote = "Cerrado automáticamente"

// ===============================
// Domain Actions
// ===============================

// Close registra la salida sobre un fichaje abierto.
func Close(rec *models.TimeRecord, now time.Time, notes string) error {
	if !rec.IsOpen() {
		return httperr.ErrBusiness("no_open_record")
	}

	rec.CheckOut = &now
	rec.Notes = notes
	return nil
}

// AutoClose fuerza la salida a las 23:59:59 de la fecha del propio
// registro y añade la marca de cierre automático.
func AutoClose(rec *models.TimeRecord) {
	closeAt := AutoCloseTime(rec.Date)
	rec.CheckOut = &closeAt
	rec.Notes = AppendAutoCloseNote(rec.Notes)
}

// AutoCloseTime: 23:59:59 del día civil del registro.
func AutoCloseTime(date time.Time) time.Time {
	y, m, d := date.Date()
	return time.Date(y, m, d, 23, 59, 59, 0, date.Location())
}

func AppendAutoCloseNote(notes string) string {
	if notes == "" {
		return AutoCloseNote
	}
	return notes + " - " + AutoCloseNote
}

// ===============================
// Validations
// ===============================

// ValidateRange rechaza ediciones que dejarían check_out < check_in.
// La validación vive en la frontera de escritura; el cálculo semanal
// asume que nunca recibe duraciones negativas.
func ValidateRange(checkIn, checkOut *time.Time) error {
	if checkIn != nil && checkOut != nil && checkOut.Before(*checkIn) {
		return httperr.ErrBusiness("invalid_range")
	}
	return nil
}

// Duration devuelve la duración de un registro cerrado, 0 en otro caso.
func Duration(rec *models.TimeRecord) time.Duration {
	if !rec.IsClosed() {
		return 0
	}
	return rec.CheckOut.Sub(*rec.CheckIn)
}
