package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/timeclock/internal/httperr"
	"github.com/BruksfildServices01/timeclock/internal/models"
	"github.com/BruksfildServices01/timeclock/internal/timezone"
	"github.com/BruksfildServices01/timeclock/internal/usecase/export"
)

const xlsxMime = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ======================================================
// HANDLER — exportación (solo admin)
// ======================================================

type ExportHandler struct {
	db    *gorm.DB
	clock timezone.Clock
}

func NewExportHandler(db *gorm.DB, clock timezone.Clock) *ExportHandler {
	return &ExportHandler{db: db, clock: clock}
}

func (h *ExportHandler) Excel(c *gin.Context) {
	start, end, recs, ok := h.loadRecords(c)
	if !ok {
		return
	}

	buf, err := export.BuildExcel(recs)
	if err != nil {
		httperr.Internal(c, "export_failed", "Error generando el Excel.")
		return
	}

	filename := export.Filename(start, end, "xlsx")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, xlsxMime, buf.Bytes())
}

func (h *ExportHandler) PDF(c *gin.Context) {
	start, end, recs, ok := h.loadRecords(c)
	if !ok {
		return
	}

	buf, err := export.BuildPDF(recs, start, end)
	if err != nil {
		httperr.Internal(c, "export_failed", "Error generando el PDF.")
		return
	}

	filename := export.Filename(start, end, "pdf")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}

// loadRecords resuelve el rango (por defecto: del día 1 del mes a hoy)
// y carga los registros con usuario y editor precargados.
func (h *ExportHandler) loadRecords(c *gin.Context) (time.Time, time.Time, []models.TimeRecord, bool) {
	var zero time.Time

	today := h.clock.Today()
	start := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, today.Location())
	end := today

	if s := c.Query("start_date"); s != "" {
		d, err := parseDate(s)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Formato de fecha inválido. Usa YYYY-MM-DD.")
			return zero, zero, nil, false
		}
		start = d
	}
	if s := c.Query("end_date"); s != "" {
		d, err := parseDate(s)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Formato de fecha inválido. Usa YYYY-MM-DD.")
			return zero, zero, nil, false
		}
		end = d
	}

	if end.Before(start) {
		httperr.BadRequest(c, "invalid_range", "La fecha de fin no puede ser anterior a la de inicio.")
		return zero, zero, nil, false
	}

	q := h.db.WithContext(c.Request.Context()).
		Where("date >= ? AND date <= ?", start, end)

	if userIDStr := c.Query("user_id"); userIDStr != "" && userIDStr != "all" {
		if userID, err := strconv.Atoi(userIDStr); err == nil {
			q = q.Where("user_id = ?", userID)
		}
	}

	var recs []models.TimeRecord
	if err := q.Preload("User").Preload("Editor").
		Order("user_id ASC, date ASC").
		Find(&recs).Error; err != nil {
		writeStorageError(c)
		return zero, zero, nil, false
	}

	if len(recs) == 0 {
		httperr.NotFound(c, "no_records", "No hay registros para el período seleccionado.")
		return zero, zero, nil, false
	}

	return start, end, recs, true
}
