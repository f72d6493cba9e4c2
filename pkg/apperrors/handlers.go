package apperrors

import (
	"github.com/gin-gonic/gin"

	"freelancehub_backend/internal/logger"
)

// ErrorResponse - тело ответа с ошибкой.
type ErrorResponse struct {
	Error     *AppError `json:"error"`
	RequestID string    `json:"requestId,omitempty"`
}

// Debug is toggled by the app from server.env. Вне debug детали 500 скрываются.
var Debug = true

// HandleError пишет JSON ответ с ошибкой. Запрос не прерывается: middleware
// сами вызывают c.Abort().
func HandleError(c *gin.Context, err error) {
	ctx := c.Request.Context()

	appErr, ok := AsAppError(err)
	if !ok {
		appErr = InternalError(err)
	}

	if appErr.HTTPCode >= 500 {
		logger.CtxWithError(ctx, "request failed", err, "code", appErr.Code, "path", c.Request.URL.Path)
		if !Debug {
			appErr = appErr.WithDetails(nil)
		}
	}

	c.JSON(appErr.HTTPCode, ErrorResponse{Error: appErr, RequestID: logger.GetRequestID(ctx)})
}
