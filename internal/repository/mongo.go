package repository

import (
	"context"
	"errors"
	"fmt"

	"mentorly/internal/database"
	"mentorly/internal/models"
	"mentorly/internal/observability"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
	"go.opentelemetry.io/otel/attribute"
)

const backendMongo = "mongo"

func newestFirst() *options.FindOptionsBuilder {
	return options.Find().SetSort(bson.D{{Key: "postedDate", Value: -1}})
}

// mongoRepository implements AchievementPostRepository on a MongoDB collection
type mongoRepository struct {
	db   *mongo.Database
	coll *mongo.Collection
}

// NewMongoRepository creates a repository over the achievement_posts collection of db
func NewMongoRepository(db *mongo.Database) AchievementPostRepository {
	return &mongoRepository{db: db, coll: db.Collection(database.AchievementPostsCollection)}
}

func (r *mongoRepository) Create(ctx context.Context, post *models.AchievementPost) (err error) {
	ctx, span := observability.StartSpan(ctx, "mongo.Create", attribute.String("post.id", post.ID))
	defer func() { observability.EndSpan(span, err) }()
	defer observability.TrackQuery(backendMongo, "create")()

	if _, err = r.coll.InsertOne(ctx, post); err != nil {
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *mongoRepository) FindAll(ctx context.Context) ([]models.AchievementPost, error) {
	return r.find(ctx, "find_all", bson.D{})
}

func (r *mongoRepository) FindByID(ctx context.Context, id string) (_ *models.AchievementPost, err error) {
	ctx, span := observability.StartSpan(ctx, "mongo.FindByID", attribute.String("post.id", id))
	defer func() { observability.EndSpan(span, err) }()
	defer observability.TrackQuery(backendMongo, "find_by_id")()

	var post models.AchievementPost
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: id}}).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find post %s: %w", id, err)
	}
	return &post, nil
}

func (r *mongoRepository) FindByAuthorID(ctx context.Context, authorID string) ([]models.AchievementPost, error) {
	return r.find(ctx, "find_by_author", bson.D{{Key: "authorId", Value: authorID}})
}

// FindLikedBy relies on equality against an array field matching any element.
func (r *mongoRepository) FindLikedBy(ctx context.Context, userID string) ([]models.AchievementPost, error) {
	return r.find(ctx, "find_liked_by", bson.D{{Key: "likedUserIds", Value: userID}})
}

func (r *mongoRepository) Update(ctx context.Context, post *models.AchievementPost) (err error) {
	ctx, span := observability.StartSpan(ctx, "mongo.Update", attribute.String("post.id", post.ID))
	defer func() { observability.EndSpan(span, err) }()
	defer observability.TrackQuery(backendMongo, "update")()

	res, err := r.coll.ReplaceOne(ctx, bson.D{{Key: "_id", Value: post.ID}}, post)
	if err != nil {
		return fmt.Errorf("replace post %s: %w", post.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository) Delete(ctx context.Context, id string) (err error) {
	ctx, span := observability.StartSpan(ctx, "mongo.Delete", attribute.String("post.id", id))
	defer func() { observability.EndSpan(span, err) }()
	defer observability.TrackQuery(backendMongo, "delete")()

	res, err := r.coll.DeleteOne(ctx, bson.D{{Key: "_id", Value: id}})
	if err != nil {
		return fmt.Errorf("delete post %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mongoRepository) Ping(ctx context.Context) error {
	return r.db.Client().Ping(ctx, readpref.Primary())
}

func (r *mongoRepository) find(ctx context.Context, operation string, filter bson.D) (_ []models.AchievementPost, err error) {
	ctx, span := observability.StartSpan(ctx, "mongo."+operation)
	defer func() { observability.EndSpan(span, err) }()
	defer observability.TrackQuery(backendMongo, operation)()

	cursor, err := r.coll.Find(ctx, filter, newestFirst())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	posts := make([]models.AchievementPost, 0)
	if err = cursor.All(ctx, &posts); err != nil {
		return nil, fmt.Errorf("%s: %w", operation, err)
	}
	return posts, nil
}
