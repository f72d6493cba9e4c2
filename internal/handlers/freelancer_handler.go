package handlers

import (
	"context"
	"net/http"

	"freelancehub_backend/internal/services"
	"freelancehub_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type FreelancerHandler struct {
	*BaseHandler
	combinedRatingService services.CombinedRatingService
}

func NewFreelancerHandler(base *BaseHandler, combinedRatingService services.CombinedRatingService) *FreelancerHandler {
	return &FreelancerHandler{
		BaseHandler:           base,
		combinedRatingService: combinedRatingService,
	}
}

func (h *FreelancerHandler) RegisterRoutes(r *gin.RouterGroup) {
	freelancers := r.Group("/freelancers/:freelancerId")
	{
		freelancers.GET("/combined-rating", h.GetCombinedRating)
		freelancers.POST("/experience", h.UpdateExperienceTier)
	}
}

// GetCombinedRating godoc
// @Summary Комбинированный рейтинг фрилансера
// @Tags freelancers
// @Produce json
// @Security BearerAuth
// @Param freelancerId path string true "ID фрилансера"
// @Success 200 {object} dto.CombinedRatingResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/freelancers/{freelancerId}/combined-rating [get]
func (h *FreelancerHandler) GetCombinedRating(c *gin.Context) {
	freelancerID := c.Param("freelancerId")

	var rating float64
	err := h.WithRetry(c, func(ctx context.Context, db *gorm.DB) error {
		var err error
		rating, err = h.combinedRatingService.GetCombinedRating(ctx, db, freelancerID)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.CombinedRatingResponse{
		FreelancerID:   freelancerID,
		CombinedRating: rating,
	})
}

// UpdateExperienceTier godoc
// @Summary Пересчитать уровень опыта
// @Tags freelancers
// @Produce json
// @Security BearerAuth
// @Param freelancerId path string true "ID фрилансера"
// @Success 200 {object} dto.ExperienceTierResponse
// @Failure 404 {object} apperrors.ErrorResponse
// @Router /api/v1/freelancers/{freelancerId}/experience [post]
func (h *FreelancerHandler) UpdateExperienceTier(c *gin.Context) {
	freelancerID := c.Param("freelancerId")

	var resp *dto.ExperienceTierResponse
	err := h.WithRetry(c, func(ctx context.Context, db *gorm.DB) error {
		var err error
		resp, err = h.combinedRatingService.UpdateExperienceTier(ctx, db, freelancerID)
		return err
	})
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
