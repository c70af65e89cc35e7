package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/julienschmidt/httprouter"

	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/logger"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/model"
)

// Mock service for testing
type mockReviewService struct {
	createFunc    func(ctx context.Context, review *model.Review) (*model.InsertAck, error)
	getByRoomFunc func(ctx context.Context, roomID string) ([]*model.Review, error)
	getAllFunc    func(ctx context.Context) ([]*model.Review, error)
}

func (m *mockReviewService) Create(ctx context.Context, review *model.Review) (*model.InsertAck, error) {
	if m.createFunc != nil {
		return m.createFunc(ctx, review)
	}
	return &model.InsertAck{Acknowledged: true, InsertedID: "662fb8a5e4b0f2a3d4c5b6a7"}, nil
}

func (m *mockReviewService) GetByRoom(ctx context.Context, roomID string) ([]*model.Review, error) {
	if m.getByRoomFunc != nil {
		return m.getByRoomFunc(ctx, roomID)
	}
	return []*model.Review{}, nil
}

func (m *mockReviewService) GetAll(ctx context.Context) ([]*model.Review, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx)
	}
	return []*model.Review{}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func TestCreate(t *testing.T) {
	var received *model.Review
	mockService := &mockReviewService{
		createFunc: func(ctx context.Context, review *model.Review) (*model.InsertAck, error) {
			received = review
			return &model.InsertAck{Acknowledged: true, InsertedID: "662fb8a5e4b0f2a3d4c5b6a7"}, nil
		},
	}
	h := NewReviewHandler(mockService, testLogger())

	body := `{"room_id":"662fb8a5e4b0f2a3d4c5b6a1","username":"Guest","rating":5,"comment":"Great stay","timestamp":1756646400000}`
	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Create(rec, req, httprouter.Params{})

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	if received == nil || received.RoomID != "662fb8a5e4b0f2a3d4c5b6a1" {
		t.Fatalf("service did not receive the posted review, got %+v", received)
	}
	if received.Rating != 5 || received.Timestamp != 1756646400000 {
		t.Errorf("review fields did not survive decoding, got %+v", received)
	}

	var resp struct {
		Data model.InsertAck `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Data.InsertedID != "662fb8a5e4b0f2a3d4c5b6a7" {
		t.Errorf("expected insertedId in acknowledgment, got %+v", resp.Data)
	}
}

func TestCreate_InvalidBody(t *testing.T) {
	h := NewReviewHandler(&mockReviewService{}, testLogger())

	req := httptest.NewRequest(http.MethodPost, "/reviews", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()

	h.Create(rec, req, httprouter.Params{})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}

func TestGetAll_Feed(t *testing.T) {
	mockService := &mockReviewService{
		getAllFunc: func(ctx context.Context) ([]*model.Review, error) {
			return []*model.Review{
				{RoomID: "662fb8a5e4b0f2a3d4c5b6a1", Username: "Later", Timestamp: 1756646400000},
				{RoomID: "662fb8a5e4b0f2a3d4c5b6a2", Username: "Earlier", Timestamp: 1756560000000},
			}, nil
		},
	}
	h := NewReviewHandler(mockService, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	rec := httptest.NewRecorder()

	h.GetAll(rec, req, httprouter.Params{})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp struct {
		Data []*model.Review `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected two reviews, got %d", len(resp.Data))
	}
	if resp.Data[0].Username != "Later" {
		t.Errorf("expected store ordering to pass through, got %q first", resp.Data[0].Username)
	}
}

func TestGetByRoom(t *testing.T) {
	var receivedRoomID string
	mockService := &mockReviewService{
		getByRoomFunc: func(ctx context.Context, roomID string) ([]*model.Review, error) {
			receivedRoomID = roomID
			return []*model.Review{{RoomID: roomID, Username: "Guest"}}, nil
		},
	}
	h := NewReviewHandler(mockService, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/reviews/662fb8a5e4b0f2a3d4c5b6a1", nil)
	rec := httptest.NewRecorder()

	h.GetByRoom(rec, req, httprouter.Params{{Key: "id", Value: "662fb8a5e4b0f2a3d4c5b6a1"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if receivedRoomID != "662fb8a5e4b0f2a3d4c5b6a1" {
		t.Errorf("service received room id %q", receivedRoomID)
	}

	var resp struct {
		Data []*model.Review `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 1 || resp.Data[0].RoomID != "662fb8a5e4b0f2a3d4c5b6a1" {
		t.Errorf("expected the room's reviews, got %+v", resp.Data)
	}
}
