package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/timeclock/internal/dto"
	"github.com/BruksfildServices01/timeclock/internal/httperr"
	"github.com/BruksfildServices01/timeclock/internal/middleware"
	"github.com/BruksfildServices01/timeclock/internal/models"
	ucTimerecord "github.com/BruksfildServices01/timeclock/internal/usecase/timerecord"
)

// ======================================================
// HANDLER — registros (solo admin)
// ======================================================

type AdminRecordHandler struct {
	db          *gorm.DB
	editUC      *ucTimerecord.EditRecord
	deleteUC    *ucTimerecord.DeleteRecord
	autoCloseUC *ucTimerecord.AutoClose
}

func NewAdminRecordHandler(
	db *gorm.DB,
	editUC *ucTimerecord.EditRecord,
	deleteUC *ucTimerecord.DeleteRecord,
	autoCloseUC *ucTimerecord.AutoClose,
) *AdminRecordHandler {
	return &AdminRecordHandler{
		db:          db,
		editUC:      editUC,
		deleteUC:    deleteUC,
		autoCloseUC: autoCloseUC,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type EditRecordRequest struct {
	Date     string `json:"date" binding:"required"`
	CheckIn  string `json:"check_in"`  // "HH:MM" sobre la fecha, vacío = null
	CheckOut string `json:"check_out"` // "HH:MM" sobre la fecha, vacío = null
	Notes    string `json:"notes"`
}

type ManualAutoCloseRequest struct {
	TargetDate string `json:"target_date"` // vacío = todos los abiertos
}

// ======================================================
// LIST — filtros por usuario, categoría y rango de fechas
// ======================================================

func (h *AdminRecordHandler) List(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	limitStr := c.DefaultQuery("limit", "50")

	page, _ := strconv.Atoi(pageStr)
	if page <= 0 {
		page = 1
	}
	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	offset := (page - 1) * limit

	q := h.db.WithContext(c.Request.Context()).
		Model(&models.TimeRecord{}).
		Joins("JOIN users ON users.id = time_records.user_id")

	if userIDStr := c.Query("user_id"); userIDStr != "" && userIDStr != "all" {
		if userID, err := strconv.Atoi(userIDStr); err == nil {
			q = q.Where("time_records.user_id = ?", userID)
		}
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("users.category = ?", category)
	}
	if center := c.Query("work_center"); center != "" {
		q = q.Where("users.work_center = ?", center)
	}
	if from := c.Query("start_date"); from != "" {
		if d, err := parseDate(from); err == nil {
			q = q.Where("time_records.date >= ?", d)
		}
	}
	if to := c.Query("end_date"); to != "" {
		if d, err := parseDate(to); err == nil {
			q = q.Where("time_records.date <= ?", d)
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		writeStorageError(c)
		return
	}

	var recs []models.TimeRecord
	if err := q.Preload("User").
		Order("time_records.date DESC, time_records.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&recs).Error; err != nil {
		writeStorageError(c)
		return
	}

	out := make([]dto.RecordListDTO, 0, len(recs))
	for i := range recs {
		out = append(out, recordToDTO(&recs[i], recs[i].User.Username))
	}

	c.JSON(http.StatusOK, gin.H{
		"page":  page,
		"limit": limit,
		"total": total,
		"data":  out,
	})
}

// ======================================================
// EDIT — rechaza check_out < check_in sin tocar el registro
// ======================================================

func (h *AdminRecordHandler) Edit(c *gin.Context) {
	editorID := c.MustGet(middleware.ContextUserID).(uint)

	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	var req EditRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Formato de fecha inválido. Usa YYYY-MM-DD.")
		return
	}

	checkIn, err := parseOptionalClock(req.Date, req.CheckIn)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Formato de hora inválido. Usa HH:MM.")
		return
	}
	checkOut, err := parseOptionalClock(req.Date, req.CheckOut)
	if err != nil {
		httperr.BadRequest(c, "invalid_time", "Formato de hora inválido. Usa HH:MM.")
		return
	}

	rec, err := h.editUC.Execute(c.Request.Context(), ucTimerecord.EditRecordInput{
		RecordID: recordID,
		Date:     date,
		CheckIn:  checkIn,
		CheckOut: checkOut,
		Notes:    req.Notes,
		EditorID: editorID,
	})
	if err != nil {
		if !writeBusinessError(c, err) {
			writeStorageError(c)
		}
		return
	}

	c.JSON(http.StatusOK, rec)
}

// ======================================================
// DELETE
// ======================================================

func (h *AdminRecordHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	recordID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), recordID, actorID); err != nil {
		if !writeBusinessError(c, err) {
			writeStorageError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registro eliminado."})
}

// ======================================================
// CIERRE MANUAL — acción de admin
// ======================================================

func (h *AdminRecordHandler) ManualAutoClose(c *gin.Context) {
	var req ManualAutoCloseRequest
	_ = c.ShouldBindJSON(&req)

	var targetDate *time.Time
	if req.TargetDate != "" {
		d, err := parseDate(req.TargetDate)
		if err != nil {
			httperr.BadRequest(c, "invalid_date", "Formato de fecha inválido. Usa YYYY-MM-DD.")
			return
		}
		targetDate = &d
	}

	closed, err := h.autoCloseUC.ExecuteManual(c.Request.Context(), targetDate)
	if err != nil {
		writeStorageError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Cierre manual completado.",
		"closed":  closed,
	})
}

// ======================================================
// CALENDARIO — eventos entrada/salida coloreados por categoría
// ======================================================

func (h *AdminRecordHandler) Calendar(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).
		Model(&models.TimeRecord{}).
		Joins("JOIN users ON users.id = time_records.user_id")

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		if userID, err := strconv.Atoi(userIDStr); err == nil {
			q = q.Where("time_records.user_id = ?", userID)
		}
	}
	if category := c.Query("category"); category != "" {
		q = q.Where("users.category = ?", category)
	}
	if from := c.Query("start_date"); from != "" {
		if d, err := parseDate(from); err == nil {
			q = q.Where("time_records.date >= ?", d)
		}
	}
	if to := c.Query("end_date"); to != "" {
		if d, err := parseDate(to); err == nil {
			q = q.Where("time_records.date <= ?", d)
		}
	}

	var recs []models.TimeRecord
	if err := q.Preload("User").Order("time_records.date ASC").Find(&recs).Error; err != nil {
		writeStorageError(c)
		return
	}

	events := make([]dto.CalendarEventDTO, 0, len(recs)*2)
	for i := range recs {
		rec := &recs[i]
		color := categoryColor(rec.User.Category)

		if rec.CheckIn != nil {
			events = append(events, dto.CalendarEventDTO{
				Title: rec.User.Username + " entrada",
				Start: rec.CheckIn.Format(time.RFC3339),
				Color: color,
			})
		}
		if rec.CheckOut != nil {
			events = append(events, dto.CalendarEventDTO{
				Title: rec.User.Username + " salida",
				Start: rec.CheckOut.Format(time.RFC3339),
				Color: color,
			})
		}
	}

	c.JSON(http.StatusOK, gin.H{"events": events})
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func parseOptionalClock(dateStr, timeStr string) (*time.Time, error) {
	if timeStr == "" {
		return nil, nil
	}
	t, err := parseDateTime(dateStr, timeStr)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func categoryColor(category *string) string {
	if category == nil {
		return "#cbd5e1" // gris por defecto
	}
	switch *category {
	case "Cocina":
		return "#facc15" // amarillo
	case "Delivery":
		return "#60a5fa" // azul
	case "Reparto":
		return "#86efac" // verde
	case "Sala":
		return "#f472b6" // rosa
	}
	return "#cbd5e1"
}
