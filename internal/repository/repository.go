// Package repository provides data access layer implementations for the application.
package repository

import (
	"context"
	"errors"

	"mentorly/internal/models"
)

// ErrNotFound is returned when no post matches the requested id.
var ErrNotFound = errors.New("achievement post not found")

// AchievementPostRepository defines the interface for achievement post data operations.
// Posts are whole documents: comments and likers are written together with the post.
type AchievementPostRepository interface {
	Create(ctx context.Context, post *models.AchievementPost) error
	FindAll(ctx context.Context) ([]models.AchievementPost, error)
	FindByID(ctx context.Context, id string) (*models.AchievementPost, error)
	FindByAuthorID(ctx context.Context, authorID string) ([]models.AchievementPost, error)
	FindLikedBy(ctx context.Context, userID string) ([]models.AchievementPost, error)
	Update(ctx context.Context, post *models.AchievementPost) error
	Delete(ctx context.Context, id string) error
	Ping(ctx context.Context) error
}
