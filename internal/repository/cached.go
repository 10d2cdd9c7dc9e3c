package repository

import (
	"context"

	"mentorly/internal/cache"
	"mentorly/internal/models"
)

// cachedRepository keeps single posts in Redis in front of another repository.
// Lists always go to the store.
type cachedRepository struct {
	AchievementPostRepository
}

// NewCachedRepository wraps next with cache-aside lookups by post id. Without a
// Redis client every call falls through to next.
func NewCachedRepository(next AchievementPostRepository) AchievementPostRepository {
	return &cachedRepository{AchievementPostRepository: next}
}

func (r *cachedRepository) FindByID(ctx context.Context, id string) (*models.AchievementPost, error) {
	var post models.AchievementPost
	_, err := cache.Aside(ctx, cache.AchievementPostKey(id), &post, cache.AchievementPostTTL, func() error {
		found, err := r.AchievementPostRepository.FindByID(ctx, id)
		if err != nil {
			return err
		}
		post = *found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (r *cachedRepository) Update(ctx context.Context, post *models.AchievementPost) error {
	err := r.AchievementPostRepository.Update(ctx, post)
	cache.Invalidate(ctx, cache.AchievementPostKey(post.ID))
	return err
}

func (r *cachedRepository) Delete(ctx context.Context, id string) error {
	err := r.AchievementPostRepository.Delete(ctx, id)
	cache.Invalidate(ctx, cache.AchievementPostKey(id))
	return err
}
