package models

import "time"

// Comment is embedded in an AchievementPost; it has no collection of its own.
type Comment struct {
	ID              string    `bson:"commentId" json:"id"`
	AuthorID        string    `bson:"authorId" json:"authorId"`
	AuthorName      string    `bson:"authorName" json:"authorName"`
	ProfileImageURL string    `bson:"profileImageUrl" json:"profileImageUrl"`
	Content         string    `bson:"content" json:"content"`
	CreatedAt       time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
