package repositories

import (
	"freelancehub_backend/internal/models"
	"freelancehub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Job, error)
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		return nil, classify(err, apperrors.ErrJobNotFound)
	}
	return &job, nil
}
