// Package models contains data structures for the application's domain models.
package models

import "time"

// TemplateType selects the layout a client uses to render an achievement post.
type TemplateType string

const (
	TemplateTodayILearned     TemplateType = "TODAY_I_LEARNED"
	TemplateSkillMilestone    TemplateType = "SKILL_MILESTONE"
	TemplateProjectCompletion TemplateType = "PROJECT_COMPLETION"
)

// Valid reports whether t is one of the known template types.
func (t TemplateType) Valid() bool {
	switch t {
	case TemplateTodayILearned, TemplateSkillMilestone, TemplateProjectCompletion:
		return true
	}
	return false
}

// TemplateData holds the structured body of an achievement post.
type TemplateData struct {
	TemplateTitle  string `bson:"templateTitle" json:"templateTitle"`
	TopicSkill     string `bson:"topicSkill" json:"topicSkill"`
	WhatYouLearned string `bson:"whatYouLearned" json:"whatYouLearned"`
	NextSteps      string `bson:"nextSteps" json:"nextSteps"`
}

// AchievementPost is a single document in the achievement_posts collection.
// Comments and likers are embedded so every mutation is a single-document write.
type AchievementPost struct {
	ID              string       `gorm:"primaryKey;size:24" bson:"_id" json:"id"`
	AuthorID        string       `gorm:"index;not null" bson:"authorId" json:"authorId"`
	AuthorName      string       `bson:"authorName" json:"authorName"`
	ProfileImageURL string       `bson:"profileImageUrl" json:"profileImageUrl"`
	Skill           string       `bson:"skill" json:"skill"`
	Title           string       `gorm:"not null" bson:"title" json:"title"`
	TemplateType    TemplateType `gorm:"size:32" bson:"templateType" json:"templateType"`
	TemplateData    TemplateData `gorm:"serializer:json;type:text" bson:"templateData" json:"templateData"`
	Comments        []Comment    `gorm:"serializer:json;type:text" bson:"comments" json:"comments"`
	LikedUserIDs    []string     `gorm:"serializer:json;type:text" bson:"likedUserIds" json:"likedUserIds"`
	PostedDate      time.Time    `gorm:"index" bson:"postedDate" json:"postedDate"`
	UpdatedAt       time.Time    `bson:"updatedAt" json:"updatedAt"`
}

// TableName pins the table name shared with the document collection.
func (AchievementPost) TableName() string {
	return "achievement_posts"
}

// IsLikedBy reports whether userID is among the post's likers.
func (p *AchievementPost) IsLikedBy(userID string) bool {
	for _, id := range p.LikedUserIDs {
		if id == userID {
			return true
		}
	}
	return false
}

// FindComment returns the embedded comment with the given id, or nil.
func (p *AchievementPost) FindComment(commentID string) *Comment {
	for i := range p.Comments {
		if p.Comments[i].ID == commentID {
			return &p.Comments[i]
		}
	}
	return nil
}
