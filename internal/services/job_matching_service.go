package services

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"freelancehub_backend/internal/algorithms"
	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/pkg/apperrors"
)

const (
	portfolioPostCount  = 3
	portfolioTextLength = 200
)

type MatchingConfig struct {
	Concurrency  int
	DefaultLimit int
	MaxLimit     int
	NotifyLimit  int
}

type JobMatchingService interface {
	FindMatchesForJob(ctx context.Context, db *gorm.DB, jobID string, limit int) ([]algorithms.MatchedFreelancer, error)
	FindMatchesForClient(ctx context.Context, db *gorm.DB, clientID, jobID string, limit int) (*dto.JobMatchesResponse, error)
	AnalyzeJobSkillMatch(ctx context.Context, db *gorm.DB, jobID, freelancerID string) (*dto.SkillMatchResponse, error)
	NotifyMatchedFreelancers(ctx context.Context, db *gorm.DB, clientID, jobID string) (*dto.NotifyMatchesResponse, error)
}

type jobMatchingService struct {
	jobRepo          repositories.JobRepository
	userRepo         repositories.UserRepository
	postRepo         repositories.PostRepository
	projectRepo      repositories.ProjectRepository
	notificationRepo repositories.NotificationRepository
	combined         CombinedRatingService
	analyzer         *algorithms.Analyzer
	cfg              MatchingConfig
}

func NewJobMatchingService(
	jobRepo repositories.JobRepository,
	userRepo repositories.UserRepository,
	postRepo repositories.PostRepository,
	projectRepo repositories.ProjectRepository,
	notificationRepo repositories.NotificationRepository,
	combined CombinedRatingService,
	analyzer *algorithms.Analyzer,
	cfg MatchingConfig,
) JobMatchingService {
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	if cfg.DefaultLimit < 1 {
		cfg.DefaultLimit = 10
	}
	if cfg.MaxLimit < cfg.DefaultLimit {
		cfg.MaxLimit = cfg.DefaultLimit
	}
	if cfg.NotifyLimit < 1 {
		cfg.NotifyLimit = cfg.DefaultLimit
	}
	return &jobMatchingService{
		jobRepo:          jobRepo,
		userRepo:         userRepo,
		postRepo:         postRepo,
		projectRepo:      projectRepo,
		notificationRepo: notificationRepo,
		combined:         combined,
		analyzer:         analyzer,
		cfg:              cfg,
	}
}

func (s *jobMatchingService) normalizeLimit(limit int) int {
	if limit <= 0 {
		return s.cfg.DefaultLimit
	}
	return min(limit, s.cfg.MaxLimit)
}

func jobText(job *models.Job) algorithms.JobText {
	return algorithms.JobText{
		Title:        job.Title,
		Requirements: job.Requirements,
		Description:  job.Description,
	}
}

// FindMatchesForJob ranks eligible freelancers for a job. Candidates are
// enriched in parallel, sequentially when db is a transaction.
func (s *jobMatchingService) FindMatchesForJob(ctx context.Context, db *gorm.DB, jobID string, limit int) ([]algorithms.MatchedFreelancer, error) {
	limit = s.normalizeLimit(limit)

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, err
	}

	freelancers, err := s.userRepo.FindFreelancersByExperience(db, algorithms.EligibleExperiences(job.Difficulty))
	if err != nil {
		return nil, err
	}

	concurrency := s.cfg.Concurrency
	if inTransaction(db) {
		concurrency = 1
	}

	text := jobText(job)
	scored := make([]algorithms.MatchedFreelancer, len(freelancers))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i := range freelancers {
		f := &freelancers[i]
		g.Go(func() error {
			candidate, err := s.buildCandidate(gctx, db, f)
			if err != nil {
				return fmt.Errorf("candidate %s: %w", f.ID, err)
			}
			scored[i] = s.analyzer.Score(text, candidate)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		logger.CtxWithError(ctx, "Failed to score candidates", err, "job_id", jobID)
		return nil, err
	}

	return algorithms.RankMatches(scored, limit), nil
}

func (s *jobMatchingService) buildCandidate(ctx context.Context, db *gorm.DB, f *models.User) (algorithms.Candidate, error) {
	if err := ctx.Err(); err != nil {
		return algorithms.Candidate{}, err
	}

	combined, err := s.combined.GetCombinedRating(ctx, db, f.ID)
	if err != nil {
		return algorithms.Candidate{}, err
	}
	tags, err := s.postRepo.FindTagsByCreator(db, f.ID)
	if err != nil {
		return algorithms.Candidate{}, err
	}
	completed, err := s.projectRepo.CountCompletedByFreelancer(db, f.ID)
	if err != nil {
		return algorithms.Candidate{}, err
	}

	return algorithms.Candidate{
		FreelancerID:      f.ID,
		Name:              f.Name,
		Skills:            f.Skills,
		Bio:               f.Bio,
		Tags:              tags,
		Experience:        f.Experience,
		CombinedRating:    combined,
		CompletedProjects: int(completed),
	}, nil
}

// authorizeJob loads a job that clientID owns and that is still open.
func (s *jobMatchingService) authorizeJob(db *gorm.DB, clientID, jobID string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, err
	}
	if job.ClientID != clientID {
		return nil, apperrors.ErrNotJobOwner
	}
	if !job.IsOpen() {
		return nil, apperrors.ErrJobNotOpen
	}
	return job, nil
}

func (s *jobMatchingService) FindMatchesForClient(ctx context.Context, db *gorm.DB, clientID, jobID string, limit int) (*dto.JobMatchesResponse, error) {
	if _, err := s.authorizeJob(db, clientID, jobID); err != nil {
		return nil, err
	}

	matches, err := s.FindMatchesForJob(ctx, db, jobID, limit)
	if err != nil {
		return nil, err
	}
	return &dto.JobMatchesResponse{JobID: jobID, Matches: matches}, nil
}

// AnalyzeJobSkillMatch scores one freelancer against a job, using the most
// recent post descriptions as portfolio text.
func (s *jobMatchingService) AnalyzeJobSkillMatch(ctx context.Context, db *gorm.DB, jobID, freelancerID string) (*dto.SkillMatchResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, err
	}
	freelancer, err := s.userRepo.FindFreelancerByID(db, freelancerID)
	if err != nil {
		return nil, err
	}
	posts, err := s.postRepo.FindRecentPosts(db, freelancerID, portfolioPostCount)
	if err != nil {
		return nil, err
	}

	portfolio := make([]string, 0, len(posts))
	for _, p := range posts {
		portfolio = append(portfolio, truncate(p.Description, portfolioTextLength))
	}

	score := s.analyzer.AnalyzeSkillMatch(jobText(job), algorithms.CandidateText{
		Skills:    freelancer.Skills,
		Bio:       freelancer.Bio,
		Portfolio: portfolio,
	})

	return &dto.SkillMatchResponse{
		JobID:        jobID,
		FreelancerID: freelancerID,
		Score:        score,
	}, nil
}

// NotifyMatchedFreelancers stores a job_match notification for each of the
// top matches. Delivery happens elsewhere.
func (s *jobMatchingService) NotifyMatchedFreelancers(ctx context.Context, db *gorm.DB, clientID, jobID string) (*dto.NotifyMatchesResponse, error) {
	job, err := s.authorizeJob(db, clientID, jobID)
	if err != nil {
		return nil, err
	}

	matches, err := s.FindMatchesForJob(ctx, db, jobID, s.cfg.NotifyLimit)
	if err != nil {
		return nil, err
	}

	notifications := make([]*models.Notification, 0, len(matches))
	for _, m := range matches {
		notifications = append(notifications, models.NewJobMatchNotification(m.FreelancerID, job, m.MatchScore))
	}

	if err := s.notificationRepo.CreateBulkNotifications(db, notifications); err != nil {
		return nil, err
	}

	logger.CtxInfo(ctx, "Matched freelancers notified", "job_id", jobID, "count", len(notifications))
	return &dto.NotifyMatchesResponse{JobID: jobID, Notified: len(notifications)}, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
