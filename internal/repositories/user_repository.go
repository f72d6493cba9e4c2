package repositories

import (
	"freelancehub_backend/internal/models"
	"freelancehub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type UserRepository interface {
	FindFreelancerByID(db *gorm.DB, id string) (*models.User, error)
	FindFreelancersByExperience(db *gorm.DB, tiers []models.Experience) ([]models.User, error)
	FindFreelancerIDs(db *gorm.DB) ([]string, error)
	FindUsersByIDs(db *gorm.DB, ids []string) ([]models.User, error)
	UpdateExperience(db *gorm.DB, id string, experience models.Experience) error
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

// FindFreelancerByID returns ErrFreelancerNotFound for missing users and for
// users that are not freelancers.
func (r *UserRepositoryImpl) FindFreelancerByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.Where("id = ? AND user_type = ?", id, models.UserTypeFreelancer).First(&user).Error
	if err != nil {
		return nil, classify(err, apperrors.ErrFreelancerNotFound)
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindFreelancersByExperience(db *gorm.DB, tiers []models.Experience) ([]models.User, error) {
	var users []models.User
	err := db.Where("user_type = ? AND experience IN ?", models.UserTypeFreelancer, tiers).
		Order("id ASC").
		Find(&users).Error
	return users, classify(err, nil)
}

func (r *UserRepositoryImpl) FindFreelancerIDs(db *gorm.DB) ([]string, error) {
	var ids []string
	err := db.Model(&models.User{}).
		Where("user_type = ?", models.UserTypeFreelancer).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, classify(err, nil)
}

func (r *UserRepositoryImpl) FindUsersByIDs(db *gorm.DB, ids []string) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}
	err := db.Where("id IN ?", ids).Find(&users).Error
	return users, classify(err, nil)
}

func (r *UserRepositoryImpl) UpdateExperience(db *gorm.DB, id string, experience models.Experience) error {
	result := db.Model(&models.User{}).
		Where("id = ? AND user_type = ?", id, models.UserTypeFreelancer).
		Update("experience", experience)
	if result.Error != nil {
		return classify(result.Error, nil)
	}
	if result.RowsAffected == 0 {
		// MySQL reports 0 rows when the value is unchanged, so double check.
		var count int64
		if err := db.Model(&models.User{}).Where("id = ? AND user_type = ?", id, models.UserTypeFreelancer).
			Count(&count).Error; err != nil {
			return classify(err, nil)
		}
		if count == 0 {
			return apperrors.ErrFreelancerNotFound
		}
	}
	return nil
}
