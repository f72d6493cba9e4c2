package dto

import "freelancehub_backend/internal/algorithms"

type JobMatchesQuery struct {
	Limit int `form:"limit" validate:"omitempty,min=1"`
}

type JobMatchesResponse struct {
	JobID   string                         `json:"jobId"`
	Matches []algorithms.MatchedFreelancer `json:"matches"`
}

type NotifyMatchesResponse struct {
	JobID    string `json:"jobId"`
	Notified int    `json:"notified"`
}
