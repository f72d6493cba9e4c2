package models

// Rating is the client's rating of a finished project. One per project.
type Rating struct {
	BaseModel
	ProjectID          string  `gorm:"type:varchar(36);not null;uniqueIndex" json:"projectId"`
	ClientID           string  `gorm:"type:varchar(36);not null;index" json:"clientId"`
	FreelancerID       string  `gorm:"type:varchar(36);not null;index" json:"freelancerId"`
	DeliveryScore      float64 `gorm:"not null" json:"deliveryScore"`
	QualityScore       float64 `gorm:"not null" json:"qualityScore"`
	CommunicationScore float64 `gorm:"not null" json:"communicationScore"`
	Overall            float64 `gorm:"not null" json:"overallScore"`
	Comments           string  `gorm:"type:text" json:"comments,omitempty"`

	Client     *User    `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Freelancer *User    `gorm:"foreignKey:FreelancerID" json:"freelancer,omitempty"`
	Project    *Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
