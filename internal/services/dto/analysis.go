package dto

import (
	"freelancehub_backend/internal/algorithms"
	"freelancehub_backend/internal/models"
)

type AnalyzePostRequest struct {
	PostID string `json:"postId" validate:"required"`
}

type AnalyzeCommentRequest struct {
	Comment string `json:"comment" validate:"required"`
}

type ContentQualityRequest struct {
	Content string `json:"content" validate:"required"`
}

type ContentQualityResponse struct {
	Score float64 `json:"score"`
}

type SkillMatchRequest struct {
	Job        algorithms.JobText       `json:"job"`
	Freelancer algorithms.CandidateText `json:"freelancer"`
}

type SkillMatchResponse struct {
	JobID        string  `json:"jobId,omitempty"`
	FreelancerID string  `json:"freelancerId,omitempty"`
	Score        float64 `json:"score"`
}

// PostAnalysisResult is the stored rating of a post plus the scores it was built from.
type PostAnalysisResult struct {
	Rating *models.AIRating      `json:"rating"`
	Scores algorithms.PostScores `json:"scores"`
}

type FreelancerAIRatingsResponse struct {
	FreelancerID   string            `json:"freelancerId"`
	Experience     models.Experience `json:"experience"`
	CombinedRating float64           `json:"combinedRating"`
	Ratings        []models.AIRating `json:"ratings"`
}

type CombinedRatingResponse struct {
	FreelancerID   string  `json:"freelancerId"`
	CombinedRating float64 `json:"combinedRating"`
}

type ExperienceTierResponse struct {
	FreelancerID   string            `json:"freelancerId"`
	CombinedRating float64           `json:"combinedRating"`
	Experience     models.Experience `json:"experience"`
}
