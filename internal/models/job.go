package models

type Job struct {
	BaseModel
	Title        string     `gorm:"size:255;not null" json:"title"`
	Description  string     `gorm:"type:text" json:"description"`
	Requirements string     `gorm:"type:text" json:"requirements"`
	Difficulty   Experience `gorm:"type:varchar(20);not null;default:'BEGINNER'" json:"difficulty"`
	Budget       float64    `json:"budget"`
	Status       JobStatus  `gorm:"type:varchar(20);not null;default:'OPEN';index" json:"status"`
	ClientID     string     `gorm:"type:varchar(36);not null;index" json:"clientId"`

	Client *User `gorm:"foreignKey:ClientID" json:"client,omitempty"`
}

func (j *Job) IsOpen() bool {
	return j.Status == JobStatusOpen
}
