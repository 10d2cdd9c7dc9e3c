// Package seed builds demo achievement posts for development databases.
package seed

import (
	"context"
	"fmt"
	"time"

	"mentorly/internal/models"
	"mentorly/internal/repository"

	"github.com/brianvoe/gofakeit/v6"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var skills = []string{"Go", "Kubernetes", "React", "PostgreSQL", "System Design", "Rust", "Public Speaking", "Figma"}

var templateTypes = []models.TemplateType{
	models.TemplateTodayILearned,
	models.TemplateSkillMilestone,
	models.TemplateProjectCompletion,
}

// Factory builds fake posts. A fixed seed yields the same posts on every run.
type Factory struct {
	faker   *gofakeit.Faker
	maxDays int
}

// NewFactory returns a Factory; seed 0 picks a time based seed.
func NewFactory(seed int64) *Factory {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Factory{faker: gofakeit.New(seed), maxDays: 90}
}

// BuildPost returns an unsaved post with a few comments and likes, posted
// within the last maxDays days.
func (f *Factory) BuildPost() *models.AchievementPost {
	fk := f.faker
	posted := time.Now().UTC().
		Add(-time.Duration(fk.Number(0, f.maxDays*24)) * time.Hour).
		Add(-time.Duration(fk.Number(0, 59)) * time.Minute)
	skill := skills[fk.Number(0, len(skills)-1)]

	post := &models.AchievementPost{
		ID:              bson.NewObjectID().Hex(),
		AuthorID:        fk.Username(),
		AuthorName:      fk.Name(),
		ProfileImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", fk.UUID()),
		Skill:           skill,
		Title:           fk.Sentence(6),
		TemplateType:    templateTypes[fk.Number(0, len(templateTypes)-1)],
		TemplateData: models.TemplateData{
			TemplateTitle:  fk.HipsterSentence(4),
			TopicSkill:     skill,
			WhatYouLearned: fk.Paragraph(1, 3, 12, " "),
			NextSteps:      fk.Sentence(10),
		},
		Comments:     []models.Comment{},
		LikedUserIDs: []string{},
		PostedDate:   posted,
		UpdatedAt:    posted,
	}

	seen := map[string]bool{}
	for i, n := 0, fk.Number(0, 8); i < n; i++ {
		liker := fk.Username()
		if !seen[liker] {
			seen[liker] = true
			post.LikedUserIDs = append(post.LikedUserIDs, liker)
		}
	}

	commentAt := posted
	for i, n := 0, fk.Number(0, 4); i < n; i++ {
		commentAt = commentAt.Add(time.Duration(fk.Number(1, 180)) * time.Minute)
		post.Comments = append(post.Comments, models.Comment{
			ID:              bson.NewObjectID().Hex(),
			AuthorID:        fk.Username(),
			AuthorName:      fk.Name(),
			ProfileImageURL: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", fk.UUID()),
			Content:         fk.Sentence(fk.Number(4, 16)),
			CreatedAt:       commentAt,
		})
	}
	return post
}

// Posts creates n posts through repo and reports how many were written.
func Posts(ctx context.Context, repo repository.AchievementPostRepository, n int, seed int64) (int, error) {
	f := NewFactory(seed)
	for i := 0; i < n; i++ {
		if err := repo.Create(ctx, f.BuildPost()); err != nil {
			return i, err
		}
	}
	return n, nil
}
