package handlers

// AppHandlers содержит все хэндлеры приложения.
type AppHandlers struct {
	AIHandler           *AIHandler
	FreelancerHandler   *FreelancerHandler
	MatchingHandler     *MatchingHandler
	RatingHandler       *RatingHandler
	NotificationHandler *NotificationHandler
	HealthHandler       *HealthHandler
}
