package services

import (
	"context"

	"gorm.io/gorm"

	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

// NotificationService отдает пользователю записанные in-app уведомления.
// Доставка (email, push) выполняется вне этого сервиса.
type NotificationService interface {
	GetUserNotifications(ctx context.Context, db *gorm.DB, userID string, query dto.NotificationQuery) (*dto.NotificationListResponse, error)
}

type notificationService struct {
	notificationRepo repositories.NotificationRepository
}

func NewNotificationService(notificationRepo repositories.NotificationRepository) NotificationService {
	return &notificationService{notificationRepo: notificationRepo}
}

func (s *notificationService) GetUserNotifications(ctx context.Context, db *gorm.DB, userID string, query dto.NotificationQuery) (*dto.NotificationListResponse, error) {
	if userID == "" {
		return nil, apperrors.NewUnauthorizedError("User not authenticated")
	}

	notifications, err := s.notificationRepo.FindUserNotifications(db, userID, query.Type)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []models.Notification{}
	}

	unread := 0
	for _, n := range notifications {
		if !n.IsRead {
			unread++
		}
	}

	return &dto.NotificationListResponse{
		Notifications: notifications,
		Total:         len(notifications),
		Unread:        unread,
	}, nil
}
