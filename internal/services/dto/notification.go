package dto

import "freelancehub_backend/internal/models"

type NotificationQuery struct {
	Type string `form:"type" validate:"omitempty,oneof=job_match"`
}

type NotificationListResponse struct {
	Notifications []models.Notification `json:"notifications"`
	Total         int                   `json:"total"`
	Unread        int                   `json:"unread"`
}
