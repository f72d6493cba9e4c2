package services

// ServiceContainer содержит все сервисы приложения.
type ServiceContainer struct {
	AIRatingService       AIRatingService
	CombinedRatingService CombinedRatingService
	RatingService         RatingService
	JobMatchingService    JobMatchingService
	NotificationService   NotificationService
}
