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

// RatingHandler - оценки фрилансеров клиентами по завершенным проектам.
type RatingHandler struct {
	*BaseHandler
	ratingService services.RatingService
}

func NewRatingHandler(base *BaseHandler, ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{
		BaseHandler:   base,
		ratingService: ratingService,
	}
}

func (h *RatingHandler) RegisterRoutes(r *gin.RouterGroup) {
	ratings := r.Group("/ratings")
	{
		ratings.GET("/top", h.GetTopRated)
		ratings.GET("/freelancer/:freelancerId", h.GetFreelancerRatings)
		ratings.GET("/project/:projectId", h.GetRatingByProject)

		clientOnly := ratings.Group("", middleware.RequireUserType(models.UserTypeClient))
		clientOnly.POST("", h.CreateRating)
		clientOnly.PUT("/:ratingId", h.UpdateRating)
		clientOnly.GET("/client/me", h.GetMyRatings)
		clientOnly.GET("/project/:projectId/has-rated", h.HasRated)
	}
}

// CreateRating godoc
// @Summary Оценить проект
// @Description Оценки вне [1,10] приводятся к границам. Проект помечается завершенным.
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateRatingRequest true "Оценка"
// @Success 201 {object} models.Rating
// @Failure 400 {object} apperrors.ErrorResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Failure 409 {object} apperrors.ErrorResponse "Проект уже оценен"
// @Router /api/v1/ratings [post]
func (h *RatingHandler) CreateRating(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateRatingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}

	var rating *models.Rating
	err := h.WithRetry(c, func(ctx context.Context, db *gorm.DB) error {
		var err error
		rating, err = h.ratingService.CreateRating(ctx, db, userID, &req)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}

// UpdateRating godoc
// @Summary Изменить оценку
// @Tags ratings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param ratingId path string true "ID оценки"
// @Param request body dto.UpdateRatingRequest true "Изменяемые поля"
// @Success 200 {object} models.Rating
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/ratings/{ratingId} [put]
func (h *RatingHandler) UpdateRating(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateRatingRequest
	if !h.BindAndValidate_JSON(c, &req) {
		return
	}
	ratingID := c.Param("ratingId")

	var rating *models.Rating
	err := h.WithRetry(c, func(ctx context.Context, db *gorm.DB) error {
		var err error
		rating, err = h.ratingService.UpdateRating(ctx, db, userID, ratingID, &req)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

// GetFreelancerRatings godoc
// @Summary Оценки фрилансера и средние значения
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param freelancerId path string true "ID фрилансера"
// @Success 200 {object} dto.FreelancerRatingsResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/ratings/freelancer/{freelancerId} [get]
func (h *RatingHandler) GetFreelancerRatings(c *gin.Context) {
	freelancerID := c.Param("freelancerId")

	var resp *dto.FreelancerRatingsResponse
	err := h.WithRetry(c, func(ctx context.Context, db *gorm.DB) error {
		var err error
		resp, err = h.ratingService.GetFreelancerRatings(ctx, db, freelancerID)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetMyRatings godoc
// @Summary Оценки, выставленные текущим клиентом
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Success 200 {array} models.Rating
// @Router /api/v1/ratings/client/me [get]
func (h *RatingHandler) GetMyRatings(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var ratings []models.Rating
	err := h.WithRetry(c, func(ctx context.Context, db *gorm.DB) error {
		var err error
		ratings, err = h.ratingService.GetClientGivenRatings(ctx, db, userID)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ratings": ratings,
		"total":   len(ratings),
	})
}

// GetRatingByProject godoc
// @Summary Оценка проекта
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "ID проекта"
// @Success 200 {object} models.Rating
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/ratings/project/{projectId} [get]
func (h *RatingHandler) GetRatingByProject(c *gin.Context) {
	projectID := c.Param("projectId")

	var rating *models.Rating
	err := h.WithRetry(c, func(ctx context.Context, db *gorm.DB) error {
		var err error
		rating, err = h.ratingService.GetRatingByProject(ctx, db, projectID)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, rating)
}

// HasRated godoc
// @Summary Оценил ли текущий клиент проект
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param projectId path string true "ID проекта"
// @Success 200 {object} dto.HasRatedResponse
// @Failure 403 {object} apperrors.ErrorResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/ratings/project/{projectId}/has-rated [get]
func (h *RatingHandler) HasRated(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}
	projectID := c.Param("projectId")

	var rated bool
	err := h.WithRetry(c, func(ctx context.Context, db *gorm.DB) error {
		var err error
		rated, err = h.ratingService.HasClientRatedProject(ctx, db, userID, projectID)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.HasRatedResponse{ProjectID: projectID, HasRated: rated})
}

// GetTopRated godoc
// @Summary Лучшие фрилансеры по оценкам клиентов
// @Tags ratings
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Максимум результатов (по умолчанию 10)"
// @Success 200 {array} dto.TopRatedFreelancer
// @Failure 400 {object} apperrors.ErrorResponse
// @Router /api/v1/ratings/top [get]
func (h *RatingHandler) GetTopRated(c *gin.Context) {
	var query dto.TopRatedQuery
	if !h.BindAndValidate_Query(c, &query) {
		return
	}

	var top []dto.TopRatedFreelancer
	err := h.WithRetry(c, func(ctx context.Context, db *gorm.DB) error {
		var err error
		top, err = h.ratingService.GetTopRatedFreelancers(ctx, db, query.Limit)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, top)
}
