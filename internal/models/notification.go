package models

import (
	"fmt"

	"gorm.io/datatypes"
)

const NotificationTypeJobMatch = "job_match"

// JobMatchData - полезная нагрузка уведомления job_match.
type JobMatchData struct {
	JobID      string  `json:"jobId"`
	MatchScore float64 `json:"matchScore"`
}

// Notification - in-app запись. Доставка (email, push) вне этого сервиса.
type Notification struct {
	BaseModel
	UserID  string                           `gorm:"type:varchar(36);not null;index" json:"userId"`
	Type    string                           `gorm:"size:50;not null;index" json:"type"`
	Title   string                           `gorm:"size:255;not null" json:"title"`
	Message string                           `gorm:"type:text" json:"message"`
	Data    datatypes.JSONType[JobMatchData] `json:"data"`
	IsRead  bool                             `gorm:"default:false" json:"isRead"`
}

// NewJobMatchNotification builds the record telling a freelancer about a job they match.
func NewJobMatchNotification(freelancerID string, job *Job, score float64) *Notification {
	return &Notification{
		UserID:  freelancerID,
		Type:    NotificationTypeJobMatch,
		Title:   "New job match",
		Message: fmt.Sprintf("You are a strong match for '%s' (match score %.1f)", job.Title, score),
		Data:    datatypes.NewJSONType(JobMatchData{JobID: job.ID, MatchScore: score}),
	}
}
