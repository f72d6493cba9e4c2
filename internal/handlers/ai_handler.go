package handlers

import (
	"context"
	"net/http"

	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// AIHandler - эвристический анализ постов, комментариев и навыков.
type AIHandler struct {
	*BaseHandler
	aiRatingService services.AIRatingService
	limiter         *middleware.ClientLimiter
}

func NewAIHandler(base *BaseHandler, aiRatingService services.AIRatingService, limiter *middleware.ClientLimiter) *AIHandler {
	return &AIHandler{
		BaseHandler:     base,
		aiRatingService: aiRatingService,
		limiter:         limiter,
	}
}

func (h *AIHandler) RegisterRoutes(r *gin.RouterGroup) {
	ai := r.Group("/ai")
	if h.limiter != nil {
		ai.Use(middleware.RateLimitMiddleware(h.limiter))
	}
	{
		ai.POST("/analyze-post", h.AnalyzePost)
		ai.POST("/analyze-comment", h.AnalyzeComment)
		ai.POST("/content-quality", h.ContentQuality)
		ai.POST("/skill-match", h.SkillMatch)
		ai.GET("/rating/:freelancerId", h.GetFreelancerAIRatings)
	}
}

// AnalyzePost godoc
// @Summary Оценить пост
// @Description Считает оценки вовлеченности, качества текста, медиа, тональности и подлинности и сохраняет AIRating
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AnalyzePostRequest true "ID поста"
// @Success 200 {object} dto.PostAnalysisResult
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/ai/analyze-post [post]
func (h *AIHandler) AnalyzePost(c *gin.Context) {
	var req dto.AnalyzePostRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	var result *dto.PostAnalysisResult
	err := h.WithRetry(c, func(ctx context.Context, db *gorm.DB) error {
		var err error
		result, err = h.aiRatingService.AnalyzePost(ctx, db, req.PostID)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// AnalyzeComment godoc
// @Summary Тональность комментария
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.AnalyzeCommentRequest true "Комментарий"
// @Success 200 {object} algorithms.SentimentResult
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/v1/ai/analyze-comment [post]
func (h *AIHandler) AnalyzeComment(c *gin.Context) {
	var req dto.AnalyzeCommentRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, h.aiRatingService.AnalyzeSentiment(req.Comment))
}

// ContentQuality godoc
// @Summary Качество текста
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ContentQualityRequest true "Текст"
// @Success 200 {object} dto.ContentQualityResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/v1/ai/content-quality [post]
func (h *AIHandler) ContentQuality(c *gin.Context) {
	var req dto.ContentQualityRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, dto.ContentQualityResponse{
		Score: h.aiRatingService.AnalyzeContentQuality(req.Content),
	})
}

// SkillMatch godoc
// @Summary Совпадение навыков (без обращения к БД)
// @Tags ai
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SkillMatchRequest true "Вакансия и кандидат"
// @Success 200 {object} dto.SkillMatchResponse
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/v1/ai/skill-match [post]
func (h *AIHandler) SkillMatch(c *gin.Context) {
	var req dto.SkillMatchRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	c.JSON(http.StatusOK, dto.SkillMatchResponse{
		Score: h.aiRatingService.AnalyzeSkillMatch(req.Job, req.Freelancer),
	})
}

// GetFreelancerAIRatings godoc
// @Summary AI-оценки фрилансера
// @Description Сохраненные AIRating (новые первыми) и комбинированный рейтинг
// @Tags ai
// @Produce json
// @Security BearerAuth
// @Param freelancerId path string true "ID фрилансера"
// @Success 200 {object} dto.FreelancerAIRatingsResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/ai/rating/{freelancerId} [get]
func (h *AIHandler) GetFreelancerAIRatings(c *gin.Context) {
	freelancerID := c.Param("freelancerId")

	var resp *dto.FreelancerAIRatingsResponse
	err := h.WithRetry(c, func(ctx context.Context, db *gorm.DB) error {
		var err error
		resp, err = h.aiRatingService.GetFreelancerAIRatings(ctx, db, freelancerID)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
