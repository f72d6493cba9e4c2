package middleware

import (
	"strings"

	"freelancehub_backend/internal/auth"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID   = "userID"
	ContextUserType = "userType"
)

// AuthMiddleware - middleware проверки JWT
func AuthMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Authorization header missing or invalid"))
			c.Abort()
			return
		}

		claims, err := auth.ParseToken(strings.TrimPrefix(authHeader, "Bearer "), secret)
		if err != nil {
			logger.CtxWarn(c.Request.Context(), "Token rejected", "error", err.Error())
			apperrors.HandleError(c, apperrors.NewUnauthorizedError("Invalid token"))
			c.Abort()
			return
		}

		// Сохраняем claims в контекст
		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextUserType, claims.UserType)
		c.Request = c.Request.WithContext(logger.WithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// RequireUserType - ограничение по типу пользователя
func RequireUserType(types ...models.UserType) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := &auth.Claims{UserType: c.GetString(ContextUserType)}
		if !auth.HasUserType(claims, types...) {
			apperrors.HandleError(c, apperrors.NewForbiddenError("Access denied: insufficient permissions"))
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
