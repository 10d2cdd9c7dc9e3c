package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"mentorly/internal/models"
	"mentorly/internal/observability"

	"gorm.io/gorm"
)

const backendSQL = "sql"

// gormRepository implements AchievementPostRepository on a relational table,
// storing embedded comments and likers as JSON columns.
type gormRepository struct {
	db *gorm.DB
}

// NewGormRepository creates a new post repository backed by gorm
func NewGormRepository(db *gorm.DB) AchievementPostRepository {
	return &gormRepository{db: db}
}

func (r *gormRepository) Create(ctx context.Context, post *models.AchievementPost) error {
	defer observability.TrackQuery(backendSQL, "create")()
	if err := r.db.WithContext(ctx).Create(post).Error; err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *gormRepository) FindAll(ctx context.Context) ([]models.AchievementPost, error) {
	defer observability.TrackQuery(backendSQL, "find_all")()
	posts := make([]models.AchievementPost, 0)
	if err := r.db.WithContext(ctx).Order("posted_date DESC").Find(&posts).Error; err != nil {
		return nil, fmt.Errorf("find_all: %w", err)
	}
	return posts, nil
}

func (r *gormRepository) FindByID(ctx context.Context, id string) (*models.AchievementPost, error) {
	defer observability.TrackQuery(backendSQL, "find_by_id")()
	var post models.AchievementPost
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find post %s: %w", id, err)
	}
	return &post, nil
}

func (r *gormRepository) FindByAuthorID(ctx context.Context, authorID string) ([]models.AchievementPost, error) {
	defer observability.TrackQuery(backendSQL, "find_by_author")()
	posts := make([]models.AchievementPost, 0)
	err := r.db.WithContext(ctx).
		Where("author_id = ?", authorID).
		Order("posted_date DESC").
		Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("find_by_author: %w", err)
	}
	return posts, nil
}

// FindLikedBy narrows on the serialized id list and then checks membership exactly.
func (r *gormRepository) FindLikedBy(ctx context.Context, userID string) ([]models.AchievementPost, error) {
	defer observability.TrackQuery(backendSQL, "find_liked_by")()
	quoted, err := json.Marshal(userID)
	if err != nil {
		return nil, fmt.Errorf("find_liked_by: %w", err)
	}

	var candidates []models.AchievementPost
	err = r.db.WithContext(ctx).
		Where("liked_user_ids LIKE ?", "%"+string(quoted)+"%").
		Order("posted_date DESC").
		Find(&candidates).Error
	if err != nil {
		return nil, fmt.Errorf("find_liked_by: %w", err)
	}

	posts := make([]models.AchievementPost, 0, len(candidates))
	for i := range candidates {
		if candidates[i].IsLikedBy(userID) {
			posts = append(posts, candidates[i])
		}
	}
	return posts, nil
}

func (r *gormRepository) Update(ctx context.Context, post *models.AchievementPost) error {
	defer observability.TrackQuery(backendSQL, "update")()
	res := r.db.WithContext(ctx).
		Model(&models.AchievementPost{}).
		Where("id = ?", post.ID).
		Select("*").
		Updates(post)
	if res.Error != nil {
		return fmt.Errorf("update post %s: %w", post.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository) Delete(ctx context.Context, id string) error {
	defer observability.TrackQuery(backendSQL, "delete")()
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.AchievementPost{})
	if res.Error != nil {
		return fmt.Errorf("delete post %s: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *gormRepository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
