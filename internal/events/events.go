// Package events publishes achievement post domain events.
package events

import (
	"context"
	"time"
)

const (
	SubjectPostLiked    = "achievement_post.liked"
	SubjectCommentAdded = "achievement_post.comment_added"
)

// PostLikedEvent is emitted when a user likes a post.
type PostLikedEvent struct {
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	NoOfLikes int       `json:"no_of_likes"`
	LikedAt   time.Time `json:"liked_at"`
}

// CommentAddedEvent is emitted when a comment is appended to a post.
type CommentAddedEvent struct {
	PostID    string    `json:"post_id"`
	AuthorID  string    `json:"author_id"`
	CommentID string    `json:"comment_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// Publisher fans domain events out to interested services.
type Publisher interface {
	PublishPostLiked(ctx context.Context, event PostLikedEvent) error
	PublishCommentAdded(ctx context.Context, event CommentAddedEvent) error
	Close()
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

func (NoopPublisher) PublishPostLiked(context.Context, PostLikedEvent) error { return nil }

func (NoopPublisher) PublishCommentAdded(context.Context, CommentAddedEvent) error { return nil }

func (NoopPublisher) Close() {}
