package repositories

import (
	"errors"

	"freelancehub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrInvalidNotificationData = errors.New("invalid notification data")

type NotificationRepository interface {
	CreateBulkNotifications(db *gorm.DB, notifications []*models.Notification) error
	FindUserNotifications(db *gorm.DB, userID string, notificationType string) ([]models.Notification, error)
}

type NotificationRepositoryImpl struct{}

func NewNotificationRepository() NotificationRepository {
	return &NotificationRepositoryImpl{}
}

func (r *NotificationRepositoryImpl) CreateBulkNotifications(db *gorm.DB, notifications []*models.Notification) error {
	if len(notifications) == 0 {
		return nil
	}

	for _, n := range notifications {
		if err := r.validateNotification(n); err != nil {
			return err
		}
	}

	return classify(db.CreateInBatches(notifications, 100).Error, nil)
}

func (r *NotificationRepositoryImpl) FindUserNotifications(db *gorm.DB, userID string, notificationType string) ([]models.Notification, error) {
	var notifications []models.Notification
	query := db.Where("user_id = ?", userID)
	if notificationType != "" {
		query = query.Where("type = ?", notificationType)
	}
	err := query.Order("created_at DESC").Find(&notifications).Error
	return notifications, classify(err, nil)
}

func (r *NotificationRepositoryImpl) validateNotification(n *models.Notification) error {
	if n.UserID == "" || n.Type == "" || n.Title == "" {
		return ErrInvalidNotificationData
	}
	return nil
}
