package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/timeclock/internal/httperr"
	"github.com/BruksfildServices01/timeclock/internal/middleware"
	"github.com/BruksfildServices01/timeclock/internal/models"
	ucStatus "github.com/BruksfildServices01/timeclock/internal/usecase/status"
)

// ======================================================
// HANDLER — estados diarios (Baja/Ausente/Vacaciones)
// ======================================================

type StatusHandler struct {
	db          *gorm.DB
	setStatusUC *ucStatus.SetStatus
}

func NewStatusHandler(db *gorm.DB, setStatusUC *ucStatus.SetStatus) *StatusHandler {
	return &StatusHandler{db: db, setStatusUC: setStatusUC}
}

type SetStatusRequest struct {
	UserID uint   `json:"user_id" binding:"required"`
	Date   string `json:"date" binding:"required"`
	Status string `json:"status" binding:"required"`
	Notes  string `json:"notes"`
}

// Set crea o sustituye el estado del día (una fila por usuario y fecha).
func (h *StatusHandler) Set(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req SetStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		httperr.BadRequest(c, "invalid_date", "Formato de fecha inválido. Usa YYYY-MM-DD.")
		return
	}

	st, err := h.setStatusUC.Execute(c.Request.Context(), ucStatus.SetStatusInput{
		UserID:  req.UserID,
		Date:    date,
		Status:  req.Status,
		Notes:   req.Notes,
		ActorID: actorID,
	})
	if err != nil {
		if !writeBusinessError(c, err) {
			writeStorageError(c)
		}
		return
	}

	c.JSON(http.StatusOK, st)
}

// List devuelve los estados de un usuario en un rango de fechas.
func (h *StatusHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.EmployeeStatus{})

	if userIDStr := c.Query("user_id"); userIDStr != "" {
		if userID, err := strconv.Atoi(userIDStr); err == nil {
			q = q.Where("user_id = ?", userID)
		}
	}
	if from := c.Query("start_date"); from != "" {
		if d, err := parseDate(from); err == nil {
			q = q.Where("date >= ?", d)
		}
	}
	if to := c.Query("end_date"); to != "" {
		if d, err := parseDate(to); err == nil {
			q = q.Where("date <= ?", d)
		}
	}

	var statuses []models.EmployeeStatus
	if err := q.Order("date DESC").Find(&statuses).Error; err != nil {
		writeStorageError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  statuses,
		"total": len(statuses),
	})
}
