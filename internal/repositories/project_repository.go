package repositories

import (
	"freelancehub_backend/internal/models"
	"freelancehub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProjectRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Project, error)
	CountCompletedByFreelancer(db *gorm.DB, freelancerID string) (int64, error)
	UpdateStatus(db *gorm.DB, id string, status models.ProjectStatus) error
}

type ProjectRepositoryImpl struct{}

func NewProjectRepository() ProjectRepository {
	return &ProjectRepositoryImpl{}
}

func (r *ProjectRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Project, error) {
	var project models.Project
	if err := db.Preload("Job").First(&project, "id = ?", id).Error; err != nil {
		return nil, classify(err, apperrors.ErrProjectNotFound)
	}
	return &project, nil
}

func (r *ProjectRepositoryImpl) CountCompletedByFreelancer(db *gorm.DB, freelancerID string) (int64, error) {
	var count int64
	err := db.Model(&models.Project{}).
		Where("freelancer_id = ? AND status = ?", freelancerID, models.ProjectStatusCompleted).
		Count(&count).Error
	return count, classify(err, nil)
}

func (r *ProjectRepositoryImpl) UpdateStatus(db *gorm.DB, id string, status models.ProjectStatus) error {
	err := db.Model(&models.Project{}).Where("id = ?", id).Update("status", status).Error
	return classify(err, nil)
}
