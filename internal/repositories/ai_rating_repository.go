package repositories

import (
	"freelancehub_backend/internal/models"
	"freelancehub_backend/pkg/apperrors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AIRatingRepository interface {
	Upsert(db *gorm.DB, rating *models.AIRating) (*models.AIRating, error)
	FindByPostID(db *gorm.DB, postID string) (*models.AIRating, error)
	FindByFreelancer(db *gorm.DB, freelancerID string) ([]models.AIRating, error)
	FindOverallScores(db *gorm.DB, freelancerID string) ([]float64, error)
}

type AIRatingRepositoryImpl struct{}

func NewAIRatingRepository() AIRatingRepository {
	return &AIRatingRepositoryImpl{}
}

// Upsert creates or overwrites the rating keyed by post_id and returns the
// stored row.
func (r *AIRatingRepositoryImpl) Upsert(db *gorm.DB, rating *models.AIRating) (*models.AIRating, error) {
	err := db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "post_id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"freelancer_id",
			"engagement",
			"content_quality",
			"media_quality",
			"sentiment",
			"authenticity",
			"overall",
			"updated_at",
		}),
	}).Create(rating).Error
	if err != nil {
		return nil, classify(err, nil)
	}
	return r.FindByPostID(db, rating.PostID)
}

func (r *AIRatingRepositoryImpl) FindByPostID(db *gorm.DB, postID string) (*models.AIRating, error) {
	var rating models.AIRating
	if err := db.First(&rating, "post_id = ?", postID).Error; err != nil {
		return nil, classify(err, apperrors.ErrRatingNotFound)
	}
	return &rating, nil
}

func (r *AIRatingRepositoryImpl) FindByFreelancer(db *gorm.DB, freelancerID string) ([]models.AIRating, error) {
	var ratings []models.AIRating
	err := db.Preload("Post").
		Where("freelancer_id = ?", freelancerID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, classify(err, nil)
}

func (r *AIRatingRepositoryImpl) FindOverallScores(db *gorm.DB, freelancerID string) ([]float64, error) {
	var scores []float64
	err := db.Model(&models.AIRating{}).
		Where("freelancer_id = ?", freelancerID).
		Pluck("overall", &scores).Error
	return scores, classify(err, nil)
}
