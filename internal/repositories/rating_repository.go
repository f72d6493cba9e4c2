package repositories

import (
	"freelancehub_backend/internal/models"
	"freelancehub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// RatingAverages are per-component means of a freelancer's client ratings.
type RatingAverages struct {
	Delivery      float64 `json:"deliveryScore"`
	Quality       float64 `json:"qualityScore"`
	Communication float64 `json:"communicationScore"`
	Overall       float64 `json:"overallScore"`
	Count         int64   `json:"totalRatings"`
}

type FreelancerRatingSummary struct {
	FreelancerID string  `json:"freelancerId"`
	Average      float64 `json:"averageRating"`
	Count        int64   `json:"totalRatings"`
}

type RatingRepository interface {
	Create(db *gorm.DB, rating *models.Rating) error
	Update(db *gorm.DB, rating *models.Rating) error
	FindByID(db *gorm.DB, id string) (*models.Rating, error)
	FindByProject(db *gorm.DB, projectID string) (*models.Rating, error)
	ExistsForProject(db *gorm.DB, projectID string) (bool, error)
	FindByFreelancer(db *gorm.DB, freelancerID string) ([]models.Rating, error)
	FindByClient(db *gorm.DB, clientID string) ([]models.Rating, error)
	FindCompletedOverallScores(db *gorm.DB, freelancerID string) ([]float64, error)
	AveragesByFreelancer(db *gorm.DB, freelancerID string) (*RatingAverages, error)
	TopRatedFreelancers(db *gorm.DB, limit int) ([]FreelancerRatingSummary, error)
}

type RatingRepositoryImpl struct{}

func NewRatingRepository() RatingRepository {
	return &RatingRepositoryImpl{}
}

func (r *RatingRepositoryImpl) Create(db *gorm.DB, rating *models.Rating) error {
	if err := db.Create(rating).Error; err != nil {
		if isUniqueViolation(err) {
			return apperrors.ErrRatingAlreadyExists
		}
		return classify(err, nil)
	}
	return nil
}

func (r *RatingRepositoryImpl) Update(db *gorm.DB, rating *models.Rating) error {
	err := db.Model(rating).Select(
		"delivery_score", "quality_score", "communication_score", "overall", "comments",
	).Updates(rating).Error
	return classify(err, nil)
}

func (r *RatingRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Rating, error) {
	var rating models.Rating
	if err := db.First(&rating, "id = ?", id).Error; err != nil {
		return nil, classify(err, apperrors.ErrRatingNotFound)
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) FindByProject(db *gorm.DB, projectID string) (*models.Rating, error) {
	var rating models.Rating
	err := db.Preload("Client").Preload("Freelancer").
		First(&rating, "project_id = ?", projectID).Error
	if err != nil {
		return nil, classify(err, apperrors.ErrRatingNotFound)
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) ExistsForProject(db *gorm.DB, projectID string) (bool, error) {
	var count int64
	err := db.Model(&models.Rating{}).Where("project_id = ?", projectID).Count(&count).Error
	return count > 0, classify(err, nil)
}

func (r *RatingRepositoryImpl) FindByFreelancer(db *gorm.DB, freelancerID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := db.Preload("Client").Preload("Project.Job").
		Where("freelancer_id = ?", freelancerID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, classify(err, nil)
}

func (r *RatingRepositoryImpl) FindByClient(db *gorm.DB, clientID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := db.Preload("Freelancer").Preload("Project.Job").
		Where("client_id = ?", clientID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, classify(err, nil)
}

// FindCompletedOverallScores returns overall scores of ratings attached to
// completed projects.
func (r *RatingRepositoryImpl) FindCompletedOverallScores(db *gorm.DB, freelancerID string) ([]float64, error) {
	var scores []float64
	err := db.Model(&models.Rating{}).
		Joins("JOIN projects ON projects.id = ratings.project_id").
		Where("ratings.freelancer_id = ? AND projects.status = ?", freelancerID, models.ProjectStatusCompleted).
		Pluck("ratings.overall", &scores).Error
	return scores, classify(err, nil)
}

func (r *RatingRepositoryImpl) AveragesByFreelancer(db *gorm.DB, freelancerID string) (*RatingAverages, error) {
	var avg RatingAverages
	err := db.Model(&models.Rating{}).
		Select(`COALESCE(AVG(delivery_score), 0) AS delivery,
			COALESCE(AVG(quality_score), 0) AS quality,
			COALESCE(AVG(communication_score), 0) AS communication,
			COALESCE(AVG(overall), 0) AS overall,
			COUNT(*) AS count`).
		Where("freelancer_id = ?", freelancerID).
		Scan(&avg).Error
	if err != nil {
		return nil, classify(err, nil)
	}
	return &avg, nil
}

func (r *RatingRepositoryImpl) TopRatedFreelancers(db *gorm.DB, limit int) ([]FreelancerRatingSummary, error) {
	var rows []FreelancerRatingSummary
	err := db.Model(&models.Rating{}).
		Select("freelancer_id, AVG(overall) AS average, COUNT(*) AS count").
		Group("freelancer_id").
		Order("average DESC, freelancer_id ASC").
		Limit(limit).
		Scan(&rows).Error
	return rows, classify(err, nil)
}
