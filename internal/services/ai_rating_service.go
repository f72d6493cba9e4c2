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
)

type AIRatingService interface {
	// Post Rating Engine
	AnalyzePost(ctx context.Context, db *gorm.DB, postID string) (*dto.PostAnalysisResult, error)
	AnalyzeUnratedPosts(ctx context.Context, db *gorm.DB, batchSize int) (int, error)
	GetFreelancerAIRatings(ctx context.Context, db *gorm.DB, freelancerID string) (*dto.FreelancerAIRatingsResponse, error)

	// Stateless analyzers
	AnalyzeSentiment(text string) algorithms.SentimentResult
	AnalyzeContentQuality(text string) float64
	AnalyzeSkillMatch(job algorithms.JobText, candidate algorithms.CandidateText) float64
}

type aiRatingService struct {
	postRepo     repositories.PostRepository
	aiRatingRepo repositories.AIRatingRepository
	userRepo     repositories.UserRepository
	combined     CombinedRatingService
	cache        cache.RatingCache
	analyzer     *algorithms.Analyzer
	thresholds   algorithms.AuthenticityThresholds
}

func NewAIRatingService(
	postRepo repositories.PostRepository,
	aiRatingRepo repositories.AIRatingRepository,
	userRepo repositories.UserRepository,
	combined CombinedRatingService,
	ratingCache cache.RatingCache,
	analyzer *algorithms.Analyzer,
	thresholds algorithms.AuthenticityThresholds,
) AIRatingService {
	if ratingCache == nil {
		ratingCache = cache.NoopCache{}
	}
	return &aiRatingService{
		postRepo:     postRepo,
		aiRatingRepo: aiRatingRepo,
		userRepo:     userRepo,
		combined:     combined,
		cache:        ratingCache,
		analyzer:     analyzer,
		thresholds:   thresholds,
	}
}

// AnalyzePost scores a post and upserts its AIRating. Re-running it on an
// unchanged post stores the same values.
func (s *aiRatingService) AnalyzePost(ctx context.Context, db *gorm.DB, postID string) (*dto.PostAnalysisResult, error) {
	post, err := s.postRepo.FindPostForAnalysis(db, postID)
	if err != nil {
		return nil, err
	}

	comments := make([]string, 0, len(post.Comments))
	for _, c := range post.Comments {
		comments = append(comments, c.Content)
	}

	scores := s.analyzer.ScorePost(algorithms.PostSignals{
		Description: post.Description,
		MediaURLs:   post.MediaURLs,
		Views:       post.Views,
		Likes:       len(post.Likes),
		Comments:    comments,
	}, s.thresholds).Rounded()

	stored, err := s.aiRatingRepo.Upsert(db, &models.AIRating{
		PostID:         post.ID,
		FreelancerID:   post.CreatorID,
		Engagement:     scores.Engagement,
		ContentQuality: scores.ContentQuality,
		MediaQuality:   scores.MediaQuality,
		Sentiment:      scores.Sentiment,
		Authenticity:   scores.Authenticity,
		Overall:        scores.Overall,
	})
	if err != nil {
		logger.CtxWithError(ctx, "Failed to store AI rating", err, "post_id", postID)
		return nil, err
	}

	if err := s.cache.Invalidate(ctx, post.CreatorID); err != nil {
		logger.CtxWithError(ctx, "Combined rating cache invalidation failed", err, "freelancer_id", post.CreatorID)
	}

	logger.CtxInfo(ctx, "Post analyzed", "post_id", postID, "overall", scores.Overall)
	return &dto.PostAnalysisResult{Rating: stored, Scores: scores}, nil
}

// AnalyzeUnratedPosts rates up to batchSize posts that have no AIRating.
// A failing post is logged and skipped.
func (s *aiRatingService) AnalyzeUnratedPosts(ctx context.Context, db *gorm.DB, batchSize int) (int, error) {
	ids, err := s.postRepo.FindUnratedPostIDs(db, batchSize)
	if err != nil {
		return 0, err
	}

	rated := 0
	for _, id := range ids {
		if ctx.Err() != nil {
			return rated, ctx.Err()
		}
		if _, err := s.AnalyzePost(ctx, db, id); err != nil {
			logger.CtxWithError(ctx, "Failed to analyze unrated post", err, "post_id", id)
			continue
		}
		rated++
	}
	return rated, nil
}

func (s *aiRatingService) GetFreelancerAIRatings(ctx context.Context, db *gorm.DB, freelancerID string) (*dto.FreelancerAIRatingsResponse, error) {
	freelancer, err := s.userRepo.FindFreelancerByID(db, freelancerID)
	if err != nil {
		return nil, err
	}

	ratings, err := s.aiRatingRepo.FindByFreelancer(db, freelancerID)
	if err != nil {
		return nil, err
	}

	combined, err := s.combined.GetCombinedRating(ctx, db, freelancerID)
	if err != nil {
		return nil, err
	}

	return &dto.FreelancerAIRatingsResponse{
		FreelancerID:   freelancerID,
		Experience:     freelancer.Experience,
		CombinedRating: combined,
		Ratings:        ratings,
	}, nil
}

func (s *aiRatingService) AnalyzeSentiment(text string) algorithms.SentimentResult {
	return s.analyzer.AnalyzeSentiment(text)
}

func (s *aiRatingService) AnalyzeContentQuality(text string) float64 {
	return s.analyzer.AnalyzeContentQuality(text)
}

func (s *aiRatingService) AnalyzeSkillMatch(job algorithms.JobText, candidate algorithms.CandidateText) float64 {
	return s.analyzer.AnalyzeSkillMatch(job, candidate)
}
