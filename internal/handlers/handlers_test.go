package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"freelancehub_backend/internal/algorithms"
	"freelancehub_backend/internal/auth"
	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/repositories"
	"freelancehub_backend/internal/services/dto"
	"freelancehub_backend/internal/validator"
	"freelancehub_backend/pkg/apperrors"
)

const testSecret = "handler-secret"

func init() {
	gin.SetMode(gin.TestMode)
}

// ---------------- fake services ----------------

type fakeAIRatingService struct {
	analyzePost func(postID string) (*dto.PostAnalysisResult, error)
	calls       int
}

func (f *fakeAIRatingService) AnalyzePost(_ context.Context, _ *gorm.DB, postID string) (*dto.PostAnalysisResult, error) {
	f.calls++
	return f.analyzePost(postID)
}

func (f *fakeAIRatingService) AnalyzeUnratedPosts(context.Context, *gorm.DB, int) (int, error) {
	return 0, nil
}

func (f *fakeAIRatingService) GetFreelancerAIRatings(_ context.Context, _ *gorm.DB, id string) (*dto.FreelancerAIRatingsResponse, error) {
	if id != "fl-1" {
		return nil, apperrors.ErrFreelancerNotFound
	}
	return &dto.FreelancerAIRatingsResponse{FreelancerID: id, CombinedRating: 7.2, Ratings: []models.AIRating{}}, nil
}

func (f *fakeAIRatingService) AnalyzeSentiment(text string) algorithms.SentimentResult {
	return algorithms.NewAnalyzer(nil).AnalyzeSentiment(text)
}

func (f *fakeAIRatingService) AnalyzeContentQuality(text string) float64 {
	return algorithms.NewAnalyzer(nil).AnalyzeContentQuality(text)
}

func (f *fakeAIRatingService) AnalyzeSkillMatch(job algorithms.JobText, c algorithms.CandidateText) float64 {
	return algorithms.NewAnalyzer(nil).AnalyzeSkillMatch(job, c)
}

type fakeCombinedService struct {
	block bool
}

func (f *fakeCombinedService) GetCombinedRating(ctx context.Context, _ *gorm.DB, id string) (float64, error) {
	if f.block {
		<-ctx.Done()
		return 0, ctx.Err()
	}
	return 8.4, nil
}

func (f *fakeCombinedService) UpdateExperienceTier(_ context.Context, _ *gorm.DB, id string) (*dto.ExperienceTierResponse, error) {
	return &dto.ExperienceTierResponse{FreelancerID: id, CombinedRating: 8.6, Experience: models.ExperienceAdvanced}, nil
}

func (f *fakeCombinedService) RecomputeAllTiers(context.Context, *gorm.DB, int) (int, error) {
	return 0, nil
}

type fakeRatingService struct {
	createErr   error
	lastClient  string
	lastRequest *dto.CreateRatingRequest
	topLimit    int
}

func (f *fakeRatingService) CreateRating(_ context.Context, _ *gorm.DB, clientID string, req *dto.CreateRatingRequest) (*models.Rating, error) {
	f.lastClient, f.lastRequest = clientID, req
	if f.createErr != nil {
		return nil, f.createErr
	}
	r := &models.Rating{ProjectID: req.ProjectID, ClientID: clientID, Overall: 8}
	r.ID = "rating-1"
	return r, nil
}

func (f *fakeRatingService) UpdateRating(_ context.Context, _ *gorm.DB, clientID, ratingID string, _ *dto.UpdateRatingRequest) (*models.Rating, error) {
	if clientID != "cl-1" {
		return nil, apperrors.ErrNotProjectClient
	}
	r := &models.Rating{ClientID: clientID}
	r.ID = ratingID
	return r, nil
}

func (f *fakeRatingService) GetFreelancerRatings(_ context.Context, _ *gorm.DB, id string) (*dto.FreelancerRatingsResponse, error) {
	return &dto.FreelancerRatingsResponse{FreelancerID: id, Ratings: []models.Rating{}, Averages: &repositories.RatingAverages{}}, nil
}

func (f *fakeRatingService) GetFreelancerAverageRatings(context.Context, *gorm.DB, string) (*repositories.RatingAverages, error) {
	return &repositories.RatingAverages{}, nil
}

func (f *fakeRatingService) GetClientGivenRatings(_ context.Context, _ *gorm.DB, clientID string) ([]models.Rating, error) {
	return []models.Rating{{ClientID: clientID}}, nil
}

func (f *fakeRatingService) GetRatingByProject(_ context.Context, _ *gorm.DB, projectID string) (*models.Rating, error) {
	return nil, apperrors.ErrRatingNotFound
}

func (f *fakeRatingService) HasClientRatedProject(_ context.Context, _ *gorm.DB, _, projectID string) (bool, error) {
	return projectID == "proj-rated", nil
}

func (f *fakeRatingService) GetTopRatedFreelancers(_ context.Context, _ *gorm.DB, limit int) ([]dto.TopRatedFreelancer, error) {
	f.topLimit = limit
	return []dto.TopRatedFreelancer{}, nil
}

type fakeMatchingService struct {
	lastLimit   int
	notifyErr   error
	notifyCalls int
}

func (f *fakeMatchingService) FindMatchesForJob(context.Context, *gorm.DB, string, int) ([]algorithms.MatchedFreelancer, error) {
	return nil, nil
}

func (f *fakeMatchingService) FindMatchesForClient(_ context.Context, _ *gorm.DB, clientID, jobID string, limit int) (*dto.JobMatchesResponse, error) {
	f.lastLimit = limit
	if clientID != "cl-1" {
		return nil, apperrors.ErrNotJobOwner
	}
	return &dto.JobMatchesResponse{JobID: jobID, Matches: []algorithms.MatchedFreelancer{{FreelancerID: "fl-1", MatchScore: 8.1}}}, nil
}

func (f *fakeMatchingService) AnalyzeJobSkillMatch(_ context.Context, _ *gorm.DB, jobID, freelancerID string) (*dto.SkillMatchResponse, error) {
	return &dto.SkillMatchResponse{JobID: jobID, FreelancerID: freelancerID, Score: 7.5}, nil
}

func (f *fakeMatchingService) NotifyMatchedFreelancers(_ context.Context, _ *gorm.DB, _, jobID string) (*dto.NotifyMatchesResponse, error) {
	f.notifyCalls++
	if f.notifyErr != nil {
		return nil, f.notifyErr
	}
	return &dto.NotifyMatchesResponse{JobID: jobID, Notified: 1}, nil
}

type fakeNotificationService struct{}

func (fakeNotificationService) GetUserNotifications(_ context.Context, _ *gorm.DB, userID string, q dto.NotificationQuery) (*dto.NotificationListResponse, error) {
	return &dto.NotificationListResponse{Notifications: []models.Notification{{UserID: userID, Type: models.NotificationTypeJobMatch}}, Total: 1, Unread: 1}, nil
}

// ---------------- harness ----------------

type harness struct {
	router   *gin.Engine
	ai       *fakeAIRatingService
	combined *fakeCombinedService
	rating   *fakeRatingService
	matching *fakeMatchingService
}

type harnessOption func(*harnessConfig)

type harnessConfig struct {
	timeout time.Duration
	limiter *middleware.ClientLimiter
}

func newHarness(opts ...harnessOption) *harness {
	cfg := harnessConfig{timeout: time.Second}
	for _, o := range opts {
		o(&cfg)
	}

	h := &harness{
		ai: &fakeAIRatingService{analyzePost: func(postID string) (*dto.PostAnalysisResult, error) {
			return &dto.PostAnalysisResult{Rating: &models.AIRating{PostID: postID, Overall: 7.3}}, nil
		}},
		combined: &fakeCombinedService{},
		rating:   &fakeRatingService{},
		matching: &fakeMatchingService{},
	}

	base := NewBaseHandler(validator.New())
	r := gin.New()
	r.Use(middleware.RequestIDMiddleware(), middleware.TimeoutMiddleware(cfg.timeout), middleware.DBMiddleware(nil))

	api := r.Group("/api/v1", middleware.AuthMiddleware(testSecret))
	NewAIHandler(base, h.ai, cfg.limiter).RegisterRoutes(api)
	NewFreelancerHandler(base, h.combined).RegisterRoutes(api)
	NewMatchingHandler(base, h.matching).RegisterRoutes(api)
	NewRatingHandler(base, h.rating).RegisterRoutes(api)
	NewNotificationHandler(base, fakeNotificationService{}).RegisterRoutes(api)
	r.GET("/health", NewHealthHandler(nil).Health)

	h.router = r
	return h
}

func token(t *testing.T, userID string, userType models.UserType) string {
	t.Helper()
	tok, err := auth.GenerateToken(userID, string(userType), testSecret, time.Hour)
	require.NoError(t, err)
	return tok
}

func (h *harness) do(t *testing.T, method, path, tok string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}
	w := httptest.NewRecorder()
	h.router.ServeHTTP(w, req)
	return w
}

func errorCode(t *testing.T, w *httptest.ResponseRecorder) apperrors.ErrorCode {
	t.Helper()
	var body struct {
		Error struct {
			Code apperrors.ErrorCode `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body.Error.Code
}
