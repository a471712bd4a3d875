package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/timeclock/internal/audit"
	domain "github.com/BruksfildServices01/timeclock/internal/domain/timerecord"
	"github.com/BruksfildServices01/timeclock/internal/httperr"
	"github.com/BruksfildServices01/timeclock/internal/middleware"
	"github.com/BruksfildServices01/timeclock/internal/models"
)

// ======================================================
// HANDLER — gestión de empleados (solo admin)
// ======================================================

type AdminUserHandler struct {
	db    *gorm.DB
	audit *audit.Dispatcher
}

func NewAdminUserHandler(db *gorm.DB, auditDispatcher *audit.Dispatcher) *AdminUserHandler {
	return &AdminUserHandler{db: db, audit: auditDispatcher}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateUserRequest struct {
	Username    string `json:"username" binding:"required"`
	FullName    string `json:"full_name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=6"`
	IsAdmin     bool   `json:"is_admin"`
	WeeklyHours int    `json:"weekly_hours"`
	Category    string `json:"category"`
	WorkCenter  string `json:"work_center"`
}

type UpdateUserRequest struct {
	FullName    *string `json:"full_name"`
	Email       *string `json:"email"`
	Password    *string `json:"password"`
	IsAdmin     *bool   `json:"is_admin"`
	IsActive    *bool   `json:"is_active"`
	WeeklyHours *int    `json:"weekly_hours"`
	Category    *string `json:"category"`
	WorkCenter  *string `json:"work_center"`
}

// ======================================================
// LIST
// ======================================================

func (h *AdminUserHandler) List(c *gin.Context) {
	q := h.db.WithContext(c.Request.Context()).Model(&models.User{})

	if category := c.Query("category"); category != "" {
		q = q.Where("category = ?", category)
	}
	if active := c.Query("active"); active != "" {
		q = q.Where("is_active = ?", active == "true")
	}
	if center := c.Query("work_center"); center != "" {
		q = q.Where("work_center = ?", center)
	}

	var users []models.User
	if err := q.Order("username ASC").Find(&users).Error; err != nil {
		writeStorageError(c)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  users,
		"total": len(users),
	})
}

// ======================================================
// CREATE
// ======================================================

func (h *AdminUserHandler) Create(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	category, err := domain.ParseCategory(req.Category)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	username := strings.ToLower(strings.TrimSpace(req.Username))
	email := strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	h.db.Model(&models.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count)
	if count > 0 {
		httperr.BadRequest(c, "user_already_exists", "Usuario o email ya registrado.")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "Error interno.")
		return
	}

	user := models.User{
		Username:     username,
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: string(hashed),
		IsAdmin:      req.IsAdmin,
		IsActive:     true,
		WeeklyHours:  req.WeeklyHours,
		WorkCenter:   optionalString(req.WorkCenter),
	}
	if category != nil {
		s := string(*category)
		user.Category = &s
	}

	if err := h.db.Create(&user).Error; err != nil {
		writeStorageError(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "user_created",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusCreated, user)
}

// ======================================================
// UPDATE
// ======================================================

func (h *AdminUserHandler) Update(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	userID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	var req UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Datos inválidos.")
		return
	}

	if req.FullName != nil {
		user.FullName = *req.FullName
	}
	if req.Email != nil {
		user.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.Password != nil && *req.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcrypt.DefaultCost)
		if err != nil {
			httperr.Internal(c, "failed_to_hash_password", "Error interno.")
			return
		}
		user.PasswordHash = string(hashed)
	}
	if req.IsAdmin != nil {
		user.IsAdmin = *req.IsAdmin
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.WeeklyHours != nil {
		user.WeeklyHours = *req.WeeklyHours
	}
	if req.Category != nil {
		category, err := domain.ParseCategory(*req.Category)
		if err != nil {
			writeBusinessError(c, err)
			return
		}
		if category == nil {
			user.Category = nil
		} else {
			s := string(*category)
			user.Category = &s
		}
	}
	if req.WorkCenter != nil {
		user.WorkCenter = optionalString(*req.WorkCenter)
	}

	if err := h.db.Save(&user).Error; err != nil {
		writeStorageError(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &user.ID,
	})

	c.JSON(http.StatusOK, user)
}

// ======================================================
// DELETE — cascada sobre fichajes y estados
// ======================================================

func (h *AdminUserHandler) Delete(c *gin.Context) {
	actorID := c.MustGet(middleware.ContextUserID).(uint)

	userID, err := parseIDParam(c, "id")
	if err != nil {
		return
	}

	if userID == actorID {
		httperr.BadRequest(c, "cannot_delete_self", "No puedes borrar tu propia cuenta.")
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		httperr.NotFound(c, "user_not_found", "Usuario no encontrado.")
		return
	}

	if err := h.db.Delete(&user).Error; err != nil {
		writeStorageError(c)
		return
	}

	h.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &user.ID,
		Metadata: map[string]any{"username": user.Username},
	})

	c.JSON(http.StatusOK, gin.H{"message": "Usuario eliminado."})
}

// --------------------------------------------------
// Helpers
// --------------------------------------------------

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		httperr.BadRequest(c, "invalid_id", "Identificador inválido.")
		return 0, err
	}
	return uint(id), nil
}

func optionalString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
