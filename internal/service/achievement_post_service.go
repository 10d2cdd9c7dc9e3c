// Package service implements the achievement post business operations.
package service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"mentorly/internal/events"
	"mentorly/internal/middleware"
	"mentorly/internal/models"
	"mentorly/internal/repository"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Identity used for every write while requests are unauthenticated.
const (
	AnonymousUserID          = "anonymous"
	AnonymousUserName        = "Anonymous User"
	AnonymousProfileImageURL = ""
)

const resourceName = "AchievementPost"

type AchievementPostService struct {
	repo      repository.AchievementPostRepository
	publisher events.Publisher
	now       func() time.Time
}

func NewAchievementPostService(repo repository.AchievementPostRepository, publisher events.Publisher) *AchievementPostService {
	if publisher == nil {
		publisher = events.NoopPublisher{}
	}
	return &AchievementPostService{
		repo:      repo,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// Save assigns a new id and timestamps, fills in the anonymous author when none
// is set, and persists the post.
func (s *AchievementPostService) Save(ctx context.Context, post *models.AchievementPost) (*models.AchievementPost, error) {
	now := s.now()
	post.ID = bson.NewObjectID().Hex()
	post.PostedDate = now
	post.UpdatedAt = now
	if post.AuthorID == "" {
		post.AuthorID = AnonymousUserID
		post.AuthorName = AnonymousUserName
		post.ProfileImageURL = AnonymousProfileImageURL
	}
	normalize(post)

	if err := s.repo.Create(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

func (s *AchievementPostService) FindAll(ctx context.Context) ([]models.AchievementPost, error) {
	return s.repo.FindAll(ctx)
}

func (s *AchievementPostService) FindByID(ctx context.Context, id string) (*models.AchievementPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, id)
	}
	normalize(post)
	return post, nil
}

// Update stamps UpdatedAt and replaces the stored document.
func (s *AchievementPostService) Update(ctx context.Context, post *models.AchievementPost) (*models.AchievementPost, error) {
	post.UpdatedAt = s.now()
	normalize(post)
	if err := s.repo.Update(ctx, post); err != nil {
		return nil, mapNotFound(err, post.ID)
	}
	return post, nil
}

func (s *AchievementPostService) Delete(ctx context.Context, id string) error {
	return mapNotFound(s.repo.Delete(ctx, id), id)
}

// AddLike records userID as a liker. Liking twice leaves a single entry.
func (s *AchievementPostService) AddLike(ctx context.Context, postID, userID, userName string) (*models.AchievementPost, error) {
	post, err := s.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.IsLikedBy(userID) {
		return post, nil
	}

	post.LikedUserIDs = append(post.LikedUserIDs, userID)
	updated, err := s.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, events.SubjectPostLiked, s.publisher.PublishPostLiked(ctx, events.PostLikedEvent{
		PostID:    updated.ID,
		AuthorID:  updated.AuthorID,
		UserID:    userID,
		UserName:  userName,
		NoOfLikes: len(updated.LikedUserIDs),
		LikedAt:   updated.UpdatedAt,
	}))
	return updated, nil
}

// RemoveLike drops userID from the likers. Removing a non-liker is a no-op.
func (s *AchievementPostService) RemoveLike(ctx context.Context, postID, userID string) (*models.AchievementPost, error) {
	post, err := s.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if !post.IsLikedBy(userID) {
		return post, nil
	}

	kept := make([]string, 0, len(post.LikedUserIDs))
	for _, id := range post.LikedUserIDs {
		if id != userID {
			kept = append(kept, id)
		}
	}
	post.LikedUserIDs = kept
	return s.Update(ctx, post)
}

// AddComment appends comment to the post with a fresh id and creation time.
func (s *AchievementPostService) AddComment(ctx context.Context, postID string, comment models.Comment) (*models.AchievementPost, error) {
	post, err := s.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment.ID = bson.NewObjectID().Hex()
	comment.CreatedAt = s.now()
	if comment.AuthorID == "" {
		comment.AuthorID = AnonymousUserID
		comment.AuthorName = AnonymousUserName
		comment.ProfileImageURL = AnonymousProfileImageURL
	}
	post.Comments = append(post.Comments, comment)

	updated, err := s.Update(ctx, post)
	if err != nil {
		return nil, err
	}

	s.notify(ctx, events.SubjectCommentAdded, s.publisher.PublishCommentAdded(ctx, events.CommentAddedEvent{
		PostID:    updated.ID,
		AuthorID:  updated.AuthorID,
		CommentID: comment.ID,
		UserID:    comment.AuthorID,
		UserName:  comment.AuthorName,
		Content:   comment.Content,
		CreatedAt: comment.CreatedAt,
	}))
	return updated, nil
}

// UpdateComment replaces the content of the matching comment. An unknown
// commentID leaves the comments untouched and still returns the post.
func (s *AchievementPostService) UpdateComment(ctx context.Context, postID, commentID, content string) (*models.AchievementPost, error) {
	post, err := s.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	if c := post.FindComment(commentID); c != nil {
		c.Content = content
		c.UpdatedAt = s.now()
	}
	return s.Update(ctx, post)
}

// DeleteComment removes the matching comment; an unknown commentID is a no-op.
func (s *AchievementPostService) DeleteComment(ctx context.Context, postID, commentID string) (*models.AchievementPost, error) {
	post, err := s.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}
	kept := make([]models.Comment, 0, len(post.Comments))
	for _, c := range post.Comments {
		if c.ID != commentID {
			kept = append(kept, c)
		}
	}
	post.Comments = kept
	return s.Update(ctx, post)
}

func (s *AchievementPostService) FindByUserID(ctx context.Context, userID string) ([]models.AchievementPost, error) {
	return s.repo.FindByAuthorID(ctx, userID)
}

func (s *AchievementPostService) FindLikedByUser(ctx context.Context, userID string) ([]models.AchievementPost, error) {
	return s.repo.FindLikedBy(ctx, userID)
}

// Ping reports whether the backing store is reachable.
func (s *AchievementPostService) Ping(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

// notify logs a failed publish; the write it describes has already succeeded.
func (s *AchievementPostService) notify(ctx context.Context, subject string, err error) {
	if err != nil {
		middleware.Logger.WarnContext(ctx, "Failed to publish event",
			slog.String("subject", subject),
			slog.String("error", err.Error()))
	}
}

func mapNotFound(err error, id string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return models.NewNotFoundError(resourceName, id)
	}
	return err
}

func normalize(post *models.AchievementPost) {
	if post.Comments == nil {
		post.Comments = []models.Comment{}
	}
	if post.LikedUserIDs == nil {
		post.LikedUserIDs = []string{}
	}
}
