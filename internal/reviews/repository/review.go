package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/config"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/model"
)

const (
	CollectionName = "reviews"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) (*model.InsertAck, error)
	FindByRoom(ctx context.Context, roomID string) ([]*model.Review, error)
	FindAll(ctx context.Context) ([]*model.Review, error)
}

type mongoReviewRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoReviewRepository(cfg *config.Config) ReviewRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoReviewRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoReviewRepository) Create(ctx context.Context, review *model.Review) (*model.InsertAck, error) {
	result, err := r.collection.InsertOne(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	ack := &model.InsertAck{Acknowledged: true}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		ack.InsertedID = oid.Hex()
		review.ID = ack.InsertedID
	}
	return ack, nil
}

// FindByRoom matches the subject identifier exactly as stored; an unknown
// room simply yields an empty list.
func (r *mongoReviewRepository) FindByRoom(ctx context.Context, roomID string) ([]*model.Review, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"room_id": roomID})
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []*model.Review
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	return reviews, nil
}

func (r *mongoReviewRepository) FindAll(ctx context.Context) ([]*model.Review, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find reviews: %w", err)
	}
	defer cursor.Close(ctx)

	var reviews []*model.Review
	if err = cursor.All(ctx, &reviews); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}

	return reviews, nil
}
