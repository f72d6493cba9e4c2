package handlers

import (
	"context"
	"net/http"

	"freelancehub_backend/internal/middleware"
	"freelancehub_backend/internal/models"
	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type MatchingHandler struct {
	*BaseHandler
	matchingService services.JobMatchingService
}

func NewMatchingHandler(base *BaseHandler, matchingService services.JobMatchingService) *MatchingHandler {
	return &MatchingHandler{
		BaseHandler:     base,
		matchingService: matchingService,
	}
}

func (h *MatchingHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs/:jobId")
	{
		// Подбор доступен только клиенту-владельцу вакансии
		jobs.GET("/matches", middleware.RequireUserType(models.UserTypeClient), h.FindMatches)
		jobs.POST("/notify-matches", middleware.RequireUserType(models.UserTypeClient), h.NotifyMatches)
		jobs.GET("/skill-match/:freelancerId", h.SkillMatch)
	}
}

// FindMatches godoc
// @Summary Подбор фрилансеров для вакансии
// @Description Ранжирует подходящих по опыту фрилансеров по match score
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "ID вакансии"
// @Param limit query int false "Максимум результатов"
// @Success 200 {object} dto.JobMatchesResponse
// @Failure 400 {object} apperrors.ErrorResponse "Вакансия закрыта"
// @Failure 403 {object} apperrors.ErrorResponse "Не владелец вакансии"
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/jobs/{jobId}/matches [get]
func (h *MatchingHandler) FindMatches(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.JobMatchesQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}
	jobID := c.Param("jobId")

	var resp *dto.JobMatchesResponse
	err := h.WithRetry(c, func(ctx context.Context, db *gorm.DB) error {
		var err error
		resp, err = h.matchingService.FindMatchesForClient(ctx, db, userID, jobID, query.Limit)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// NotifyMatches godoc
// @Summary Уведомить подобранных фрилансеров
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "ID вакансии"
// @Success 200 {object} dto.NotifyMatchesResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/jobs/{jobId}/notify-matches [post]
func (h *MatchingHandler) NotifyMatches(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	jobID := c.Param("jobId")

	// Без WithRetry: повтор создал бы дубли уведомлений
	resp, err := h.matchingService.NotifyMatchedFreelancers(c.Request.Context(), h.RequestDB(c), userID, jobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// SkillMatch godoc
// @Summary Совпадение навыков фрилансера с вакансией
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param jobId path string true "ID вакансии"
// @Param freelancerId path string true "ID фрилансера"
// @Success 200 {object} dto.SkillMatchResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/jobs/{jobId}/skill-match/{freelancerId} [get]
func (h *MatchingHandler) SkillMatch(c *gin.Context) {
	jobID := c.Param("jobId")
	freelancerID := c.Param("freelancerId")

	var resp *dto.SkillMatchResponse
	err := h.WithRetry(c, func(ctx context.Context, db *gorm.DB) error {
		var err error
		resp, err = h.matchingService.AnalyzeJobSkillMatch(ctx, db, jobID, freelancerID)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
