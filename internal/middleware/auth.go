package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/timeclock/internal/config"
	"github.com/BruksfildServices01/timeclock/internal/session"
)

const (
	ContextUserID   = "userID"
	ContextIsAdmin  = "isAdmin"
	ContextTokenJTI = "tokenJTI"
	ContextTokenExp = "tokenExp"
)

func AuthMiddleware(cfg *config.Config, blacklist *session.Blacklist) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing_authorization_header"})
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_authorization_header"})
			return
		}

		tokenString := parts[1]

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrTokenMalformed
			}
			return []byte(cfg.JWTSecret), nil
		})
		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_claims"})
			return
		}

		userID, ok1 := claims["sub"].(float64)
		isAdmin, _ := claims["is_admin"].(bool)
		jti, ok2 := claims["jti"].(string)
		exp, _ := claims["exp"].(float64)
		if !ok1 || !ok2 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token_payload"})
			return
		}

		// Tokens revocados por logout
		if blacklist != nil {
			revoked, err := blacklist.IsRevoked(c.Request.Context(), jti)
			if err == nil && revoked {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token_revoked"})
				return
			}
		}

		c.Set(ContextUserID, uint(userID))
		c.Set(ContextIsAdmin, isAdmin)
		c.Set(ContextTokenJTI, jti)
		c.Set(ContextTokenExp, time.Unix(int64(exp), 0))

		c.Next()
	}
}
