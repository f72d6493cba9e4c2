package models

type Project struct {
	BaseModel
	JobID        string        `gorm:"type:varchar(36);not null;index" json:"jobId"`
	ClientID     string        `gorm:"type:varchar(36);not null;index" json:"clientId"`
	FreelancerID string        `gorm:"type:varchar(36);not null;index" json:"freelancerId"`
	Status       ProjectStatus `gorm:"type:varchar(20);not null;default:'IN_PROGRESS'" json:"status"`

	Job    *Job    `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Rating *Rating `gorm:"foreignKey:ProjectID" json:"rating,omitempty"`
}
