package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/timeclock/internal/domain/timerecord"
	"github.com/BruksfildServices01/timeclock/internal/dto"
	"github.com/BruksfildServices01/timeclock/internal/middleware"
	"github.com/BruksfildServices01/timeclock/internal/models"
	"github.com/BruksfildServices01/timeclock/internal/timezone"
	ucTimerecord "github.com/BruksfildServices01/timeclock/internal/usecase/timerecord"
)

// ======================================================
// HANDLER — fichajes del propio empleado
// ======================================================

type TimeHandler struct {
	db           *gorm.DB
	checkInUC    *ucTimerecord.CheckIn
	checkOutUC   *ucTimerecord.CheckOut
	openRecordUC *ucTimerecord.CurrentOpenRecord
	weeklyUC     *ucTimerecord.WeeklyAccrual
	clock        timezone.Clock
}

func NewTimeHandler(
	db *gorm.DB,
	checkInUC *ucTimerecord.CheckIn,
	checkOutUC *ucTimerecord.CheckOut,
	openRecordUC *ucTimerecord.CurrentOpenRecord,
	weeklyUC *ucTimerecord.WeeklyAccrual,
	clock timezone.Clock,
) *TimeHandler {
	return &TimeHandler{
		db:           db,
		checkInUC:    checkInUC,
		checkOutUC:   checkOutUC,
		openRecordUC: openRecordUC,
		weeklyUC:     weeklyUC,
		clock:        clock,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CheckOutRequest struct {
	Notes string `json:"notes"`
}

// ======================================================
// CHECK-IN / CHECK-OUT
// ======================================================

func (h *TimeHandler) CheckIn(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	rec, err := h.checkInUC.Execute(c.Request.Context(), userID)
	if err != nil {
		if !writeBusinessError(c, err) {
			writeStorageError(c)
		}
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Entrada registrada correctamente.",
		"record":  rec,
	})
}

func (h *TimeHandler) CheckOut(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req CheckOutRequest
	_ = c.ShouldBindJSON(&req)

	rec, err := h.checkOutUC.Execute(c.Request.Context(), userID, req.Notes)
	if err != nil {
		if !writeBusinessError(c, err) {
			writeStorageError(c)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Salida registrada correctamente.",
		"record":  rec,
	})
}

// ======================================================
// DASHBOARD — resumen semanal + fichajes recientes
// ======================================================

func (h *TimeHandler) Summary(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	now := h.clock.Now()

	accrual, err := h.weeklyUC.Execute(c.Request.Context(), userID, now)
	if err != nil {
		if !writeBusinessError(c, err) {
			writeStorageError(c)
		}
		return
	}

	open, err := h.openRecordUC.Execute(c.Request.Context(), userID)
	if err != nil {
		writeStorageError(c)
		return
	}

	var recent []models.TimeRecord
	if err := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID).
		Order("date DESC, check_in DESC").
		Limit(3).
		Find(&recent).Error; err != nil {
		writeStorageError(c)
		return
	}

	recentDTO := make([]dto.RecordListDTO, 0, len(recent))
	for i := range recent {
		recentDTO = append(recentDTO, recordToDTO(&recent[i], ""))
	}

	c.JSON(http.StatusOK, gin.H{
		"summary": dto.WeeklySummaryDTO{
			WorkedSeconds:    accrual.WorkedSeconds,
			AllowedSeconds:   accrual.AllowedSeconds,
			RemainingSeconds: accrual.RemainingSeconds,
			Worked:           domain.FormatHHMM(accrual.WorkedSeconds),
			Remaining:        domain.FormatHHMM(accrual.RemainingSeconds),
			IsOver:           accrual.IsOver,
		},
		"open_record": open,
		"recent":      recentDTO,
	})
}

// ======================================================
// LISTADO PROPIO
// ======================================================

func (h *TimeHandler) ListMyRecords(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	limitStr := c.DefaultQuery("limit", "50")
	limit, _ := strconv.Atoi(limitStr)
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	q := h.db.WithContext(c.Request.Context()).
		Where("user_id = ?", userID)

	if from := c.Query("from"); from != "" {
		if d, err := parseDate(from); err == nil {
			q = q.Where("date >= ?", d)
		}
	}
	if to := c.Query("to"); to != "" {
		if d, err := parseDate(to); err == nil {
			q = q.Where("date <= ?", d)
		}
	}

	var recs []models.TimeRecord
	if err := q.Order("date DESC, id DESC").Limit(limit).Find(&recs).Error; err != nil {
		writeStorageError(c)
		return
	}

	out := make([]dto.RecordListDTO, 0, len(recs))
	for i := range recs {
		out = append(out, recordToDTO(&recs[i], ""))
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  out,
		"total": len(out),
	})
}
