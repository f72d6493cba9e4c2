package services

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"freelancehub_backend/internal/algorithms"
	"freelancehub_backend/internal/cache"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
)

type CombinedRatingService interface {
	GetCombinedRating(ctx context.Context, db *gorm.DB, freelancerID string) (float64, error)
	UpdateExperienceTier(ctx context.Context, db *gorm.DB, freelancerID string) (*dto.ExperienceTierResponse, error)
	RecomputeAllTiers(ctx context.Context, db *gorm.DB, concurrency int) (int, error)
}

type combinedRatingService struct {
	userRepo     repositories.UserRepository
	postRepo     repositories.PostRepository
	aiRatingRepo repositories.AIRatingRepository
	ratingRepo   repositories.RatingRepository
	projectRepo  repositories.ProjectRepository
	cache        cache.RatingCache
}

func NewCombinedRatingService(
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	aiRatingRepo repositories.AIRatingRepository,
	ratingRepo repositories.RatingRepository,
	projectRepo repositories.ProjectRepository,
	ratingCache cache.RatingCache,
) CombinedRatingService {
	if ratingCache == nil {
		ratingCache = cache.NoopCache{}
	}
	return &combinedRatingService{
		userRepo:     userRepo,
		postRepo:     postRepo,
		aiRatingRepo: aiRatingRepo,
		ratingRepo:   ratingRepo,
		projectRepo:  projectRepo,
		cache:        ratingCache,
	}
}

// GetCombinedRating serves from cache when possible. Cache failures are
// logged and the rating is computed from storage.
func (s *combinedRatingService) GetCombinedRating(ctx context.Context, db *gorm.DB, freelancerID string) (float64, error) {
	if rating, ok, err := s.cache.GetCombinedRating(ctx, freelancerID); err != nil {
		logger.CtxWithError(ctx, "Combined rating cache read failed", err, "freelancer_id", freelancerID)
	} else if ok {
		return rating, nil
	}

	rating, err := s.compute(db, freelancerID)
	if err != nil {
		return 0, err
	}

	if err := s.cache.SetCombinedRating(ctx, freelancerID, rating); err != nil {
		logger.CtxWithError(ctx, "Combined rating cache write failed", err, "freelancer_id", freelancerID)
	}
	return rating, nil
}

func (s *combinedRatingService) compute(db *gorm.DB, freelancerID string) (float64, error) {
	if _, err := s.userRepo.FindFreelancerByID(db, freelancerID); err != nil {
		return 0, err
	}

	aiScores, err := s.aiRatingRepo.FindOverallScores(db, freelancerID)
	if err != nil {
		return 0, err
	}
	clientScores, err := s.ratingRepo.FindCompletedOverallScores(db, freelancerID)
	if err != nil {
		return 0, err
	}
	posts, err := s.postRepo.CountPostsByCreator(db, freelancerID)
	if err != nil {
		return 0, err
	}
	completed, err := s.projectRepo.CountCompletedByFreelancer(db, freelancerID)
	if err != nil {
		return 0, err
	}

	return algorithms.CombinedRating(algorithms.CombinedRatingInput{
		AIScores:          aiScores,
		ClientScores:      clientScores,
		PostCount:         int(posts),
		CompletedProjects: int(completed),
	}), nil
}

// UpdateExperienceTier recomputes the rating from storage and stores the
// derived tier. This is the only place the tier is written.
func (s *combinedRatingService) UpdateExperienceTier(ctx context.Context, db *gorm.DB, freelancerID string) (*dto.ExperienceTierResponse, error) {
	rating, err := s.compute(db, freelancerID)
	if err != nil {
		return nil, err
	}

	tier := algorithms.TierFor(rating)
	if err := s.userRepo.UpdateExperience(db, freelancerID, tier); err != nil {
		return nil, err
	}

	if err := s.cache.SetCombinedRating(ctx, freelancerID, rating); err != nil {
		logger.CtxWithError(ctx, "Combined rating cache write failed", err, "freelancer_id", freelancerID)
	}

	logger.CtxDebug(ctx, "Experience tier updated", "freelancer_id", freelancerID, "rating", rating, "tier", tier)
	return &dto.ExperienceTierResponse{
		FreelancerID:   freelancerID,
		CombinedRating: rating,
		Experience:     tier,
	}, nil
}

// RecomputeAllTiers updates every freelancer's tier. Individual failures are
// logged and skipped; the number of updated freelancers is returned.
func (s *combinedRatingService) RecomputeAllTiers(ctx context.Context, db *gorm.DB, concurrency int) (int, error) {
	ids, err := s.userRepo.FindFreelancerIDs(db)
	if err != nil {
		return 0, err
	}

	if inTransaction(db) || concurrency < 1 {
		concurrency = 1
	}

	updated := make([]bool, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, id := range ids {
		g.Go(func() error {
			if gctx.Err() != nil {
				return gctx.Err()
			}
			if _, err := s.UpdateExperienceTier(gctx, db, id); err != nil {
				logger.CtxWithError(gctx, "Failed to update experience tier", err, "freelancer_id", id)
				return nil
			}
			updated[i] = true
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return 0, err
	}

	count := 0
	for _, ok := range updated {
		if ok {
			count++
		}
	}
	return count, nil
}
