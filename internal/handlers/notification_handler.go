package handlers

import (
	"context"
	"net/http"

	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type NotificationHandler struct {
	*BaseHandler
	notificationService services.NotificationService
}

func NewNotificationHandler(base *BaseHandler, notificationService services.NotificationService) *NotificationHandler {
	return &NotificationHandler{
		BaseHandler:         base,
		notificationService: notificationService,
	}
}

func (h *NotificationHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/notifications", h.GetUserNotifications)
}

// GetUserNotifications godoc
// @Summary Уведомления текущего пользователя
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param type query string false "Тип уведомления (job_match)"
// @Success 200 {object} dto.NotificationListResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) GetUserNotifications(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.NotificationQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	var resp *dto.NotificationListResponse
	err := h.WithRetry(c, func(ctx context.Context, db *gorm.DB) error {
		var err error
		resp, err = h.notificationService.GetUserNotifications(ctx, db, userID, query)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
