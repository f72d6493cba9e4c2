package middleware

import (
	"context"
	"log/slog"
	"time"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/pkg/contextkeys"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const requestIDHeader = "X-Request-ID"

// RequestIDMiddleware берет X-Request-ID от прокси или генерирует новый.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx := logger.WithRequestID(c.Request.Context(), requestID)
		c.Request = c.Request.WithContext(ctx)
		c.Header(requestIDHeader, requestID)
		c.Next()
	}
}

// LoggingMiddleware пишет одну запись на запрос. Пути из skip (health checks)
// логируются только при ошибке.
func LoggingMiddleware(skip ...string) gin.HandlerFunc {
	quiet := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		quiet[p] = struct{}{}
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		if _, ok := quiet[c.Request.URL.Path]; ok && status < 400 {
			return
		}

		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("route", c.FullPath()),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
			slog.Duration("duration", time.Since(start)),
		}
		if len(c.Errors) > 0 {
			attrs = append(attrs, slog.String("gin_errors", c.Errors.String()))
		}

		log := logger.FromContext(c.Request.Context())
		switch {
		case status >= 500:
			log.Error("http request failed", attrs...)
		case status >= 400:
			log.Warn("http request rejected", attrs...)
		default:
			log.Info("http request", attrs...)
		}
	}
}

// DBMiddleware кладет в gin.Context транзакцию из контекста запроса, если она есть, иначе пул.
func DBMiddleware(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tx, ok := contextkeys.DBFromContext(c.Request.Context()); ok {
			c.Set(contextkeys.GinKey(), tx)
		} else {
			c.Set(contextkeys.GinKey(), db)
		}

		c.Next()
	}
}

// TimeoutMiddleware ограничивает время обработки запроса дедлайном контекста.
// Сервисы и GORM видят дедлайн через ctx.
func TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if timeout <= 0 {
			c.Next()
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
