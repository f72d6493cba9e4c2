package models

// AIRating хранит эвристическую оценку поста. Одна запись на пост,
// перезаписывается при каждом анализе.
type AIRating struct {
	BaseModel
	PostID         string  `gorm:"type:varchar(36);not null;uniqueIndex" json:"postId"`
	FreelancerID   string  `gorm:"type:varchar(36);not null;index" json:"freelancerId"`
	Engagement     float64 `gorm:"not null" json:"engagementScore"`
	ContentQuality float64 `gorm:"not null" json:"contentQualityScore"`
	MediaQuality   float64 `gorm:"not null" json:"mediaQualityScore"`
	Sentiment      float64 `gorm:"not null" json:"commentSentimentScore"`
	Authenticity   float64 `gorm:"not null" json:"authenticityScore"`
	Overall        float64 `gorm:"not null" json:"overallAIScore"`

	Post *Post `gorm:"foreignKey:PostID" json:"post,omitempty"`
}
