package repository

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	bookingserrors "github.com/fahadfakrul/Stay-Sphere-Server/internal/bookings/errors"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/config"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/model"
)

const (
	CollectionName = "bookings"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *model.Booking) (*model.InsertAck, error)
	Delete(ctx context.Context, id string) (*model.DeleteAck, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*model.UpdateAck, error)
	FindByEmail(ctx context.Context, email string) ([]*model.Booking, error)
}

type mongoBookingRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoBookingRepository(cfg *config.Config) BookingRepository {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &mongoBookingRepository{
		cfg:        cfg,
		collection: db.Collection(CollectionName),
	}
}

func (r *mongoBookingRepository) Create(ctx context.Context, booking *model.Booking) (*model.InsertAck, error) {
	result, err := r.collection.InsertOne(ctx, booking)
	if err != nil {
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	ack := &model.InsertAck{Acknowledged: true}
	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		ack.InsertedID = oid.Hex()
		booking.ID = ack.InsertedID
	}
	return ack, nil
}

// Delete reports the store's own acknowledgment: an unknown identifier yields
// a zero-deleted ack, not an error.
func (r *mongoBookingRepository) Delete(ctx context.Context, id string) (*model.DeleteAck, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrInvalidID, id)
	}

	result, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}

	return &model.DeleteAck{
		Acknowledged: true,
		DeletedCount: result.DeletedCount,
	}, nil
}

func (r *mongoBookingRepository) UpdateFields(ctx context.Context, id string, fields map[string]any) (*model.UpdateAck, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", bookingserrors.ErrInvalidID, id)
	}

	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M(fields)}

	result, err := r.collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}

	return &model.UpdateAck{
		Acknowledged:  true,
		MatchedCount:  result.MatchedCount,
		ModifiedCount: result.ModifiedCount,
	}, nil
}

func (r *mongoBookingRepository) FindByEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	cursor, err := r.collection.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to find bookings: %w", err)
	}
	defer cursor.Close(ctx)

	var bookings []*model.Booking
	if err = cursor.All(ctx, &bookings); err != nil {
		return nil, fmt.Errorf("failed to decode bookings: %w", err)
	}

	return bookings, nil
}
