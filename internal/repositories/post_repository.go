package repositories

import (
	"freelancehub_backend/internal/models"
	"freelancehub_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PostRepository interface {
	FindPostForAnalysis(db *gorm.DB, id string) (*models.Post, error)
	CountPostsByCreator(db *gorm.DB, creatorID string) (int64, error)
	FindTagsByCreator(db *gorm.DB, creatorID string) ([]string, error)
	FindRecentPosts(db *gorm.DB, creatorID string, limit int) ([]models.Post, error)
	FindUnratedPostIDs(db *gorm.DB, limit int) ([]string, error)
}

type PostRepositoryImpl struct{}

func NewPostRepository() PostRepository {
	return &PostRepositoryImpl{}
}

// FindPostForAnalysis loads a post with its likes, comments (and their
// authors) and creator.
func (r *PostRepositoryImpl) FindPostForAnalysis(db *gorm.DB, id string) (*models.Post, error) {
	var post models.Post
	err := db.Preload("Likes").
		Preload("Comments", func(tx *gorm.DB) *gorm.DB { return tx.Order("created_at ASC") }).
		Preload("Comments.User").
		Preload("Creator").
		First(&post, "id = ?", id).Error
	if err != nil {
		return nil, classify(err, apperrors.ErrPostNotFound)
	}
	return &post, nil
}

func (r *PostRepositoryImpl) CountPostsByCreator(db *gorm.DB, creatorID string) (int64, error) {
	var count int64
	err := db.Model(&models.Post{}).Where("creator_id = ?", creatorID).Count(&count).Error
	return count, classify(err, nil)
}

// FindTagsByCreator returns the distinct tags across all posts of a user,
// oldest post first.
func (r *PostRepositoryImpl) FindTagsByCreator(db *gorm.DB, creatorID string) ([]string, error) {
	var posts []models.Post
	err := db.Select("id", "tags", "created_at").
		Where("creator_id = ?", creatorID).
		Order("created_at ASC").
		Find(&posts).Error
	if err != nil {
		return nil, classify(err, nil)
	}

	seen := make(map[string]struct{})
	tags := []string{}
	for _, p := range posts {
		for _, t := range p.Tags {
			if _, ok := seen[t]; ok || t == "" {
				continue
			}
			seen[t] = struct{}{}
			tags = append(tags, t)
		}
	}
	return tags, nil
}

func (r *PostRepositoryImpl) FindRecentPosts(db *gorm.DB, creatorID string, limit int) ([]models.Post, error) {
	var posts []models.Post
	err := db.Where("creator_id = ?", creatorID).
		Order("created_at DESC").
		Limit(limit).
		Find(&posts).Error
	return posts, classify(err, nil)
}

// FindUnratedPostIDs returns posts that have no AIRating yet, oldest first.
func (r *PostRepositoryImpl) FindUnratedPostIDs(db *gorm.DB, limit int) ([]string, error) {
	var ids []string
	err := db.Model(&models.Post{}).
		Joins("LEFT JOIN ai_ratings ON ai_ratings.post_id = posts.id").
		Where("ai_ratings.id IS NULL").
		Order("posts.created_at ASC").
		Limit(limit).
		Pluck("posts.id", &ids).Error
	return ids, classify(err, nil)
}
