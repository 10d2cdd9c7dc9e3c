// Package mapper converts between request bodies, stored entities and response DTOs.
package mapper

import (
	"strings"
	"unicode/utf8"

	"mentorly/internal/models"
)

const (
	maxTitleLen   = 300
	maxSkillLen   = 100
	maxFieldLen   = 10000
	maxCommentLen = 5000
)

// ValidatePostRequest checks the shape of a create or update body.
func ValidatePostRequest(req *models.AchievementPostRequest) error {
	req.Title = strings.TrimSpace(req.Title)
	req.Skill = strings.TrimSpace(req.Skill)

	if req.Title == "" {
		return models.NewValidationError("Title is required")
	}
	if utf8.RuneCountInString(req.Title) > maxTitleLen {
		return models.NewValidationError("Title too long (max 300 characters)")
	}
	if req.Skill == "" {
		return models.NewValidationError("Skill is required")
	}
	if utf8.RuneCountInString(req.Skill) > maxSkillLen {
		return models.NewValidationError("Skill too long (max 100 characters)")
	}
	if !req.TemplateType.Valid() {
		return models.NewValidationError("templateType must be one of TODAY_I_LEARNED, SKILL_MILESTONE, PROJECT_COMPLETION")
	}

	d := req.TemplateData
	for _, field := range []string{d.TemplateTitle, d.TopicSkill, d.WhatYouLearned, d.NextSteps} {
		if utf8.RuneCountInString(field) > maxFieldLen {
			return models.NewValidationError("Template field too long (max 10000 characters)")
		}
	}
	return nil
}

// ValidateCommentRequest checks the shape of a comment body.
func ValidateCommentRequest(req *models.CommentRequest) error {
	req.Content = strings.TrimSpace(req.Content)
	if req.Content == "" {
		return models.NewValidationError("Content is required")
	}
	if utf8.RuneCountInString(req.Content) > maxCommentLen {
		return models.NewValidationError("Comment too long (max 5000 characters)")
	}
	return nil
}

// ToEntity builds a new post from a request. Server-controlled fields stay empty.
func ToEntity(req models.AchievementPostRequest) *models.AchievementPost {
	return &models.AchievementPost{
		Skill:        req.Skill,
		Title:        req.Title,
		TemplateType: req.TemplateType,
		TemplateData: req.TemplateData,
		Comments:     []models.Comment{},
		LikedUserIDs: []string{},
	}
}

// UpdateEntityFromRequest overwrites the editable fields of post and keeps
// identity, authorship, comments and likes.
func UpdateEntityFromRequest(req models.AchievementPostRequest, post *models.AchievementPost) {
	post.Skill = req.Skill
	post.Title = req.Title
	post.TemplateType = req.TemplateType
	post.TemplateData = req.TemplateData
}

// CommentToEntity builds an embedded comment from a request.
func CommentToEntity(req models.CommentRequest) models.Comment {
	return models.Comment{Content: req.Content}
}

// CommentToDto projects an embedded comment.
func CommentToDto(c models.Comment) models.CommentDto {
	return models.CommentDto{
		ID:              c.ID,
		AuthorID:        c.AuthorID,
		AuthorName:      c.AuthorName,
		Content:         c.Content,
		CreatedAt:       c.CreatedAt,
		ProfileImageURL: c.ProfileImageURL,
	}
}

// ToDto projects a post for the response body.
func ToDto(post *models.AchievementPost) models.AchievementPostDto {
	liked := make([]string, len(post.LikedUserIDs))
	copy(liked, post.LikedUserIDs)

	comments := make([]models.CommentDto, 0, len(post.Comments))
	for _, c := range post.Comments {
		comments = append(comments, CommentToDto(c))
	}

	return models.AchievementPostDto{
		ID:              post.ID,
		AuthorID:        post.AuthorID,
		AuthorName:      post.AuthorName,
		PostedDate:      post.PostedDate,
		UpdatedAt:       post.UpdatedAt,
		ProfileImageURL: post.ProfileImageURL,
		Skill:           post.Skill,
		Title:           post.Title,
		TemplateType:    post.TemplateType,
		TemplateData:    post.TemplateData,
		LikedUserIDs:    liked,
		NoOfLikes:       len(liked),
		Comments:        comments,
	}
}

// ToDtos projects a list of posts; the result is never nil.
func ToDtos(posts []models.AchievementPost) []models.AchievementPostDto {
	out := make([]models.AchievementPostDto, 0, len(posts))
	for i := range posts {
		out = append(out, ToDto(&posts[i]))
	}
	return out
}
