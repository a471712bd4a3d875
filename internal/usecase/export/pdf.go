package export

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/BruksfildServices01/timeclock/internal/models"
)

var pdfColWidths = []float64{35, 28, 28, 28, 32, 60, 35, 31}

// BuildPDF genera la misma tabla que el Excel en A4 apaisado.
func BuildPDF(records []models.TimeRecord, start, end time.Time) (*bytes.Buffer, error) {
	pdf := gofpdf.New("L", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	pdf.SetTitle(tr("Registros de Fichaje"), false)
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, tr("Registros de Fichaje"), "", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 9)
	period := fmt.Sprintf(
		"Periodo: %s a %s",
		start.Format("2006-01-02"),
		end.Format("2006-01-02"),
	)
	pdf.CellFormat(0, 6, tr(period), "", 1, "C", false, 0, "")
	pdf.Ln(2)

	// Cabecera
	pdf.SetFont("Arial", "B", 8)
	pdf.SetFillColor(221, 221, 221)
	for i, h := range headers {
		pdf.CellFormat(pdfColWidths[i], 7, tr(h), "1", 0, "C", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for i := range records {
		rec := &records[i]

		cells := []string{
			rec.User.Username,
			rec.Date.Format("2006-01-02"),
			formatClock(rec.CheckIn),
			formatClock(rec.CheckOut),
			hoursWorked(rec),
			rec.Notes,
			editorName(rec),
			rec.UpdatedAt.Format("2006-01-02 15:04"),
		}

		for j, v := range cells {
			pdf.CellFormat(pdfColWidths[j], 6, tr(v), "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
