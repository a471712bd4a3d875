package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/BruksfildServices01/timeclock/internal/models"
)

const sheetName = "Registros de Fichaje"

var headers = []string{
	"Usuario",
	"Fecha",
	"Entrada",
	"Salida",
	"Horas Trabajadas",
	"Notas",
	"Modificado Por",
	"Última Actualización",
}

// BuildExcel genera el libro con una fila por registro. Los registros
// deben venir con User y Editor precargados.
func BuildExcel(records []models.TimeRecord) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
		Fill: excelize.Fill{
			Type:    "pattern",
			Pattern: 1,
			Color:   []string{"DDDDDD"},
		},
	})
	if err != nil {
		return nil, err
	}

	for col, h := range headers {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return nil, err
		}
		if err := f.SetCellStyle(sheetName, cell, cell, headerStyle); err != nil {
			return nil, err
		}
	}

	for i := range records {
		rec := &records[i]
		row := i + 2

		values := []any{
			rec.User.Username,
			rec.Date.Format("2006-01-02"),
			formatClock(rec.CheckIn),
			formatClock(rec.CheckOut),
			hoursWorked(rec),
			rec.Notes,
			editorName(rec),
			rec.UpdatedAt.Format("2006-01-02 15:04:05"),
		}

		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := f.SetColWidth(sheetName, "A", "H", 15); err != nil {
		return nil, err
	}

	return f.WriteToBuffer()
}

// Filename: registros_YYYYMMDD_a_YYYYMMDD.xlsx
func Filename(start, end time.Time, ext string) string {
	return fmt.Sprintf(
		"registros_%s_a_%s.%s",
		start.Format("20060102"),
		end.Format("20060102"),
		ext,
	)
}

func formatClock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("15:04:05")
}

func editorName(rec *models.TimeRecord) string {
	if rec.Editor == nil {
		return "-"
	}
	return rec.Editor.Username
}

func hoursWorked(rec *models.TimeRecord) string {
	if !rec.IsClosed() {
		return ""
	}
	hours := rec.CheckOut.Sub(*rec.CheckIn).Hours()
	return fmt.Sprintf("%.2f", hours)
}
