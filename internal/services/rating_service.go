package services

import (
	"context"

	"gorm.io/gorm"

	"freelancehub_backend/internal/algorithms"
	"freelancehub_backend/internal/cache"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

const defaultTopRatedLimit = 10

type RatingService interface {
	CreateRating(ctx context.Context, db *gorm.DB, clientID string, req *dto.CreateRatingRequest) (*models.Rating, error)
	UpdateRating(ctx context.Context, db *gorm.DB, clientID, ratingID string, req *dto.UpdateRatingRequest) (*models.Rating, error)

	GetFreelancerRatings(ctx context.Context, db *gorm.DB, freelancerID string) (*dto.FreelancerRatingsResponse, error)
	GetFreelancerAverageRatings(ctx context.Context, db *gorm.DB, freelancerID string) (*repositories.RatingAverages, error)
	GetClientGivenRatings(ctx context.Context, db *gorm.DB, clientID string) ([]models.Rating, error)
	GetRatingByProject(ctx context.Context, db *gorm.DB, projectID string) (*models.Rating, error)
	HasClientRatedProject(ctx context.Context, db *gorm.DB, clientID, projectID string) (bool, error)
	GetTopRatedFreelancers(ctx context.Context, db *gorm.DB, limit int) ([]dto.TopRatedFreelancer, error)
}

type ratingService struct {
	ratingRepo  repositories.RatingRepository
	projectRepo repositories.ProjectRepository
	userRepo    repositories.UserRepository
	combined    CombinedRatingService
	cache       cache.RatingCache
}

func NewRatingService(
	ratingRepo repositories.RatingRepository,
	projectRepo repositories.ProjectRepository,
	userRepo repositories.UserRepository,
	combined CombinedRatingService,
	ratingCache cache.RatingCache,
) RatingService {
	if ratingCache == nil {
		ratingCache = cache.NoopCache{}
	}
	return &ratingService{
		ratingRepo:  ratingRepo,
		projectRepo: projectRepo,
		userRepo:    userRepo,
		combined:    combined,
		cache:       ratingCache,
	}
}

func clampScore(v float64) float64 {
	return algorithms.Clamp(v, 1, 10)
}

func overallScore(delivery, quality, communication float64) float64 {
	return algorithms.Round1((delivery + quality + communication) / 3)
}

// CreateRating records the client's rating of a project and marks the
// project completed.
func (s *ratingService) CreateRating(ctx context.Context, db *gorm.DB, clientID string, req *dto.CreateRatingRequest) (*models.Rating, error) {
	if req.DeliveryScore == nil || req.QualityScore == nil || req.CommunicationScore == nil {
		return nil, apperrors.NewBadRequestError("deliveryScore, qualityScore and communicationScore are required")
	}

	var rating *models.Rating
	err := withTransaction(db, func(tx *gorm.DB) error {
		project, err := s.projectRepo.FindByID(tx, req.ProjectID)
		if err != nil {
			return err
		}
		if project.ClientID != clientID {
			return apperrors.ErrNotProjectClient
		}
		if project.Status == models.ProjectStatusCancelled {
			return apperrors.ErrProjectNotRateable
		}

		exists, err := s.ratingRepo.ExistsForProject(tx, project.ID)
		if err != nil {
			return err
		}
		if exists {
			return apperrors.ErrRatingAlreadyExists
		}

		delivery := clampScore(*req.DeliveryScore)
		quality := clampScore(*req.QualityScore)
		communication := clampScore(*req.CommunicationScore)

		rating = &models.Rating{
			ProjectID:          project.ID,
			ClientID:           clientID,
			FreelancerID:       project.FreelancerID,
			DeliveryScore:      delivery,
			QualityScore:       quality,
			CommunicationScore: communication,
			Overall:            overallScore(delivery, quality, communication),
			Comments:           req.Comments,
		}
		if err := s.ratingRepo.Create(tx, rating); err != nil {
			return err
		}

		if project.Status != models.ProjectStatusCompleted {
			if err := s.projectRepo.UpdateStatus(tx, project.ID, models.ProjectStatusCompleted); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.refreshFreelancer(ctx, db, rating.FreelancerID)

	logger.CtxInfo(ctx, "Client rating created", "rating_id", rating.ID, "project_id", rating.ProjectID, "overall", rating.Overall)
	return rating, nil
}

func (s *ratingService) UpdateRating(ctx context.Context, db *gorm.DB, clientID, ratingID string, req *dto.UpdateRatingRequest) (*models.Rating, error) {
	rating, err := s.ratingRepo.FindByID(db, ratingID)
	if err != nil {
		return nil, err
	}
	if rating.ClientID != clientID {
		return nil, apperrors.ErrNotProjectClient
	}

	if req.DeliveryScore != nil {
		rating.DeliveryScore = clampScore(*req.DeliveryScore)
	}
	if req.QualityScore != nil {
		rating.QualityScore = clampScore(*req.QualityScore)
	}
	if req.CommunicationScore != nil {
		rating.CommunicationScore = clampScore(*req.CommunicationScore)
	}
	if req.Comments != nil {
		rating.Comments = *req.Comments
	}
	rating.Overall = overallScore(rating.DeliveryScore, rating.QualityScore, rating.CommunicationScore)

	if err := s.ratingRepo.Update(db, rating); err != nil {
		return nil, err
	}

	s.refreshFreelancer(ctx, db, rating.FreelancerID)
	return rating, nil
}

// refreshFreelancer drops the cached rating and recomputes the tier. The
// rating itself is already stored, so failures here are only logged.
func (s *ratingService) refreshFreelancer(ctx context.Context, db *gorm.DB, freelancerID string) {
	if err := s.cache.Invalidate(ctx, freelancerID); err != nil {
		logger.CtxWithError(ctx, "Combined rating cache invalidation failed", err, "freelancer_id", freelancerID)
	}
	if _, err := s.combined.UpdateExperienceTier(ctx, db, freelancerID); err != nil {
		logger.CtxWithError(ctx, "Failed to update experience tier", err, "freelancer_id", freelancerID)
	}
}

func (s *ratingService) GetFreelancerRatings(ctx context.Context, db *gorm.DB, freelancerID string) (*dto.FreelancerRatingsResponse, error) {
	if _, err := s.userRepo.FindFreelancerByID(db, freelancerID); err != nil {
		return nil, err
	}

	ratings, err := s.ratingRepo.FindByFreelancer(db, freelancerID)
	if err != nil {
		return nil, err
	}

	averages, err := s.GetFreelancerAverageRatings(ctx, db, freelancerID)
	if err != nil {
		return nil, err
	}

	return &dto.FreelancerRatingsResponse{
		FreelancerID: freelancerID,
		Ratings:      ratings,
		Averages:     averages,
	}, nil
}

func (s *ratingService) GetFreelancerAverageRatings(ctx context.Context, db *gorm.DB, freelancerID string) (*repositories.RatingAverages, error) {
	avg, err := s.ratingRepo.AveragesByFreelancer(db, freelancerID)
	if err != nil {
		return nil, err
	}
	return &repositories.RatingAverages{
		Delivery:      algorithms.Round1(avg.Delivery),
		Quality:       algorithms.Round1(avg.Quality),
		Communication: algorithms.Round1(avg.Communication),
		Overall:       algorithms.Round1(avg.Overall),
		Count:         avg.Count,
	}, nil
}

func (s *ratingService) GetClientGivenRatings(ctx context.Context, db *gorm.DB, clientID string) ([]models.Rating, error) {
	return s.ratingRepo.FindByClient(db, clientID)
}

func (s *ratingService) GetRatingByProject(ctx context.Context, db *gorm.DB, projectID string) (*models.Rating, error) {
	return s.ratingRepo.FindByProject(db, projectID)
}

func (s *ratingService) HasClientRatedProject(ctx context.Context, db *gorm.DB, clientID, projectID string) (bool, error) {
	project, err := s.projectRepo.FindByID(db, projectID)
	if err != nil {
		return false, err
	}
	if project.ClientID != clientID {
		return false, apperrors.ErrNotProjectClient
	}
	return s.ratingRepo.ExistsForProject(db, projectID)
}

func (s *ratingService) GetTopRatedFreelancers(ctx context.Context, db *gorm.DB, limit int) ([]dto.TopRatedFreelancer, error) {
	if limit <= 0 {
		limit = defaultTopRatedLimit
	}

	rows, err := s.ratingRepo.TopRatedFreelancers(db, limit)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.FreelancerID)
	}
	users, err := s.userRepo.FindUsersByIDs(db, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.User, len(users))
	for _, u := range users {
		byID[u.ID] = u
	}

	result := make([]dto.TopRatedFreelancer, 0, len(rows))
	for _, r := range rows {
		u := byID[r.FreelancerID]
		result = append(result, dto.TopRatedFreelancer{
			FreelancerID:  r.FreelancerID,
			Name:          u.Name,
			Experience:    u.Experience,
			AverageRating: algorithms.Round1(r.Average),
			TotalRatings:  r.Count,
		})
	}
	return result, nil
}
