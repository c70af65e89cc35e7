package service

import (
	"context"

	"github.com/fahadfakrul/Stay-Sphere-Server/internal/reviews/repository"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/config"
	apperrors "github.com/fahadfakrul/Stay-Sphere-Server/pkg/errors"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/model"
)

type ReviewService interface {
	Create(ctx context.Context, review *model.Review) (*model.InsertAck, error)
	GetByRoom(ctx context.Context, roomID string) ([]*model.Review, error)
	GetAll(ctx context.Context) ([]*model.Review, error)
}

type reviewService struct {
	repo repository.ReviewRepository
	cfg  *config.Config
}

func NewReviewService(repo repository.ReviewRepository, cfg *config.Config) ReviewService {
	return &reviewService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *reviewService) Create(ctx context.Context, review *model.Review) (*model.InsertAck, error) {
	ack, err := s.repo.Create(ctx, review)
	if err != nil {
		s.cfg.Log.Error("Failed to create review", "room_id", review.RoomID, "error", err)
		return nil, apperrors.Internal("Failed to create review", err)
	}

	s.cfg.Log.Info("Review created successfully", "id", ack.InsertedID, "room_id", review.RoomID)
	return ack, nil
}

func (s *reviewService) GetByRoom(ctx context.Context, roomID string) ([]*model.Review, error) {
	if roomID == "" {
		return nil, apperrors.InvalidInput("Room ID cannot be empty")
	}

	reviews, err := s.repo.FindByRoom(ctx, roomID)
	if err != nil {
		s.cfg.Log.Error("Failed to list reviews by room", "room_id", roomID, "error", err)
		return nil, apperrors.Internal("Failed to retrieve reviews", err)
	}

	if reviews == nil {
		reviews = make([]*model.Review, 0)
	}
	return reviews, nil
}

func (s *reviewService) GetAll(ctx context.Context) ([]*model.Review, error) {
	reviews, err := s.repo.FindAll(ctx)
	if err != nil {
		s.cfg.Log.Error("Failed to list reviews", "error", err)
		return nil, apperrors.Internal("Failed to retrieve reviews", err)
	}

	if reviews == nil {
		reviews = make([]*model.Review, 0)
	}
	return reviews, nil
}
