package dto

import (
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
)

// Scores outside [1,10] are clamped, not rejected.
type CreateRatingRequest struct {
	ProjectID          string   `json:"projectId" validate:"required"`
	DeliveryScore      *float64 `json:"deliveryScore" validate:"required"`
	QualityScore       *float64 `json:"qualityScore" validate:"required"`
	CommunicationScore *float64 `json:"communicationScore" validate:"required"`
	Comments           string   `json:"comments" validate:"max=2000"`
}

type UpdateRatingRequest struct {
	DeliveryScore      *float64 `json:"deliveryScore"`
	QualityScore       *float64 `json:"qualityScore"`
	CommunicationScore *float64 `json:"communicationScore"`
	Comments           *string  `json:"comments" validate:"omitempty,max=2000"`
}

type FreelancerRatingsResponse struct {
	FreelancerID string                       `json:"freelancerId"`
	Ratings      []models.Rating              `json:"ratings"`
	Averages     *repositories.RatingAverages `json:"averages"`
}

type HasRatedResponse struct {
	ProjectID string `json:"projectId"`
	HasRated  bool   `json:"hasRated"`
}

type TopRatedQuery struct {
	Limit int `form:"limit" validate:"omitempty,min=1,max=100"`
}

type TopRatedFreelancer struct {
	FreelancerID  string            `json:"freelancerId"`
	Name          string            `json:"name"`
	Experience    models.Experience `json:"experience"`
	AverageRating float64           `json:"averageRating"`
	TotalRatings  int64             `json:"totalRatings"`
}
