package service

import (
	"context"
	"errors"

	bookingserrors "github.com/fahadfakrul/Stay-Sphere-Server/internal/bookings/errors"
	"github.com/fahadfakrul/Stay-Sphere-Server/internal/bookings/repository"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/config"
	apperrors "github.com/fahadfakrul/Stay-Sphere-Server/pkg/errors"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/events"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/model"
)

type BookingService interface {
	Create(ctx context.Context, booking *model.Booking) (*model.InsertAck, error)
	Delete(ctx context.Context, id string) (*model.DeleteAck, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (*model.UpdateAck, error)
	GetByEmail(ctx context.Context, email string) ([]*model.Booking, error)
}

type bookingService struct {
	repo     repository.BookingRepository
	producer *events.Producer
	cfg      *config.Config
}

func NewBookingService(
	repo repository.BookingRepository,
	producer *events.Producer,
	cfg *config.Config,
) BookingService {
	return &bookingService{
		repo:     repo,
		producer: producer,
		cfg:      cfg,
	}
}

func (s *bookingService) Create(ctx context.Context, booking *model.Booking) (*model.InsertAck, error) {
	ack, err := s.repo.Create(ctx, booking)
	if err != nil {
		s.cfg.Log.Error("Failed to create booking", "email", booking.Email, "error", err)
		return nil, apperrors.Internal("Failed to create booking", err)
	}

	s.producer.Publish(ctx, events.BookingCreated, ack.InsertedID, booking)

	s.cfg.Log.Info("Booking created successfully",
		"id", ack.InsertedID,
		"email", booking.Email,
		"room_id", booking.RoomID,
	)
	return ack, nil
}

func (s *bookingService) Delete(ctx context.Context, id string) (*model.DeleteAck, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	ack, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		s.cfg.Log.Error("Failed to delete booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to delete booking", err)
	}

	if ack.DeletedCount > 0 {
		s.producer.Publish(ctx, events.BookingCancelled, id, nil)
		s.cfg.Log.Info("Booking deleted successfully", "id", id)
	}
	return ack, nil
}

func (s *bookingService) UpdateFields(ctx context.Context, id string, fields map[string]any) (*model.UpdateAck, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Booking ID cannot be empty")
	}

	// The store identifier is immutable; the rest of the body passes through.
	delete(fields, "_id")
	delete(fields, "id")
	if len(fields) == 0 {
		return nil, apperrors.InvalidInput("No fields to update")
	}

	ack, err := s.repo.UpdateFields(ctx, id, fields)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid booking ID format")
		}
		s.cfg.Log.Error("Failed to update booking", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update booking", err)
	}

	if ack.MatchedCount > 0 {
		s.producer.Publish(ctx, events.BookingUpdated, id, fields)
		s.cfg.Log.Info("Booking updated successfully", "id", id)
	}
	return ack, nil
}

func (s *bookingService) GetByEmail(ctx context.Context, email string) ([]*model.Booking, error) {
	if email == "" {
		return nil, apperrors.InvalidInput("Email cannot be empty")
	}

	bookings, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		s.cfg.Log.Error("Failed to list bookings by email", "email", email, "error", err)
		return nil, apperrors.Internal("Failed to retrieve bookings", err)
	}

	if bookings == nil {
		bookings = make([]*model.Booking, 0)
	}
	return bookings, nil
}
