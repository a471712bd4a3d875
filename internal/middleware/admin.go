package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/timeclock/internal/models"
)

// AdminMiddleware exige el claim de admin y lo reverifica contra la
// base de datos: un admin degradado no sigue operando con un token
// antiguo.
func AdminMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, _ := c.MustGet(ContextIsAdmin).(bool)
		if !isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_required"})
			return
		}

		userID := c.MustGet(ContextUserID).(uint)

		var user models.User
		if err := db.First(&user, userID).Error; err != nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_required"})
			return
		}

		c.Next()
	}
}
