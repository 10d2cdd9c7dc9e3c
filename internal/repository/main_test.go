package repository

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"mentorly/internal/database"
	"mentorly/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupSQLiteDB opens a private in-memory database with the post table migrated.
func setupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

// setupMockDB creates a GORM *gorm.DB backed by sqlmock for unit tests.
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	gormDB, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return gormDB, mock
}

func newPost(authorID, title string, posted time.Time) *models.AchievementPost {
	return &models.AchievementPost{
		ID:           bson.NewObjectID().Hex(),
		AuthorID:     authorID,
		AuthorName:   "Author " + authorID,
		Skill:        "Go",
		Title:        title,
		TemplateType: models.TemplateTodayILearned,
		TemplateData: models.TemplateData{TemplateTitle: "TIL", TopicSkill: "Go"},
		Comments:     []models.Comment{},
		LikedUserIDs: []string{},
		PostedDate:   posted.UTC(),
		UpdatedAt:    posted.UTC(),
	}
}

func seed(t *testing.T, repo AchievementPostRepository, posts ...*models.AchievementPost) {
	t.Helper()
	for _, p := range posts {
		require.NoError(t, repo.Create(context.Background(), p))
	}
}
