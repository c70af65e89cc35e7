package service

import (
	"context"
	"errors"

	roomserrors "github.com/fahadfakrul/Stay-Sphere-Server/internal/rooms/errors"
	"github.com/fahadfakrul/Stay-Sphere-Server/internal/rooms/repository"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/config"
	apperrors "github.com/fahadfakrul/Stay-Sphere-Server/pkg/errors"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/model"
)

type RoomService interface {
	GetAll(ctx context.Context, priceRange *model.PriceRange) ([]*model.Room, error)
	GetByID(ctx context.Context, id string) (*model.Room, error)
	UpdateAvailability(ctx context.Context, id string, availability bool) (*model.UpdateAck, error)
}

type roomService struct {
	repo repository.RoomRepository
	cfg  *config.Config
}

func NewRoomService(repo repository.RoomRepository, cfg *config.Config) RoomService {
	return &roomService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *roomService) GetAll(ctx context.Context, priceRange *model.PriceRange) ([]*model.Room, error) {
	rooms, err := s.repo.FindAll(ctx, priceRange)
	if err != nil {
		s.cfg.Log.Error("Failed to list rooms", "error", err)
		return nil, apperrors.Internal("Failed to retrieve rooms", err)
	}

	if rooms == nil {
		rooms = make([]*model.Room, 0)
	}
	return rooms, nil
}

// GetByID returns (nil, nil) for an unknown but well-formed identifier;
// the API reports an empty result rather than an error for missing rooms.
func (s *roomService) GetByID(ctx context.Context, id string) (*model.Room, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}

	room, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, roomserrors.ErrNotFound) {
			return nil, nil
		}
		if errors.Is(err, roomserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid room ID format")
		}
		s.cfg.Log.Error("Failed to retrieve room", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve room", err)
	}

	return room, nil
}

func (s *roomService) UpdateAvailability(ctx context.Context, id string, availability bool) (*model.UpdateAck, error) {
	if id == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}

	ack, err := s.repo.UpdateAvailability(ctx, id, availability)
	if err != nil {
		if errors.Is(err, roomserrors.ErrInvalidID) {
			return nil, apperrors.InvalidInput("Invalid room ID format")
		}
		s.cfg.Log.Error("Failed to update room availability", "id", id, "error", err)
		return nil, apperrors.Internal("Failed to update room availability", err)
	}

	s.cfg.Log.Info("Room availability updated",
		"id", id,
		"availability", availability,
		"matched", ack.MatchedCount,
	)
	return ack, nil
}
