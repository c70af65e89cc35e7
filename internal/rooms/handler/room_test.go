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
type mockRoomService struct {
	getAllFunc             func(ctx context.Context, priceRange *model.PriceRange) ([]*model.Room, error)
	getByIDFunc            func(ctx context.Context, id string) (*model.Room, error)
	updateAvailabilityFunc func(ctx context.Context, id string, availability bool) (*model.UpdateAck, error)
}

func (m *mockRoomService) GetAll(ctx context.Context, priceRange *model.PriceRange) ([]*model.Room, error) {
	if m.getAllFunc != nil {
		return m.getAllFunc(ctx, priceRange)
	}
	return []*model.Room{}, nil
}

func (m *mockRoomService) GetByID(ctx context.Context, id string) (*model.Room, error) {
	if m.getByIDFunc != nil {
		return m.getByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockRoomService) UpdateAvailability(ctx context.Context, id string, availability bool) (*model.UpdateAck, error) {
	if m.updateAvailabilityFunc != nil {
		return m.updateAvailabilityFunc(ctx, id, availability)
	}
	return &model.UpdateAck{Acknowledged: true}, nil
}

func testLogger() *logger.Logger {
	return logger.New(logger.Config{Level: "error", Service: "test"})
}

func TestParsePriceFilter(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected *model.PriceRange
	}{
		{name: "empty", raw: "", expected: nil},
		{name: "numeric range", raw: "100-200", expected: &model.PriceRange{Low: 100, High: 200}},
		{name: "decimal bounds", raw: "99.5-149.5", expected: &model.PriceRange{Low: 99.5, High: 149.5}},
		{name: "non-numeric lower bound", raw: "abc-200", expected: nil},
		{name: "non-numeric upper bound", raw: "100-xyz", expected: nil},
		{name: "missing separator", raw: "100", expected: nil},
		{name: "missing upper bound", raw: "100-", expected: nil},
		{name: "whitespace tolerated", raw: " 100 - 200 ", expected: &model.PriceRange{Low: 100, High: 200}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePriceFilter(tt.raw)
			if tt.expected == nil {
				if got != nil {
					t.Errorf("parsePriceFilter(%q) = %+v, want nil", tt.raw, got)
				}
				return
			}
			if got == nil || got.Low != tt.expected.Low || got.High != tt.expected.High {
				t.Errorf("parsePriceFilter(%q) = %+v, want %+v", tt.raw, got, tt.expected)
			}
		})
	}
}

func TestGetAll_FilterDegradation(t *testing.T) {
	tests := []struct {
		name        string
		queryString string
		expectRange *model.PriceRange
	}{
		{name: "no filter", queryString: "", expectRange: nil},
		{name: "numeric filter", queryString: "?filter=100-200", expectRange: &model.PriceRange{Low: 100, High: 200}},
		{name: "non-numeric filter degrades to unfiltered", queryString: "?filter=abc-200", expectRange: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var received *model.PriceRange
			mockService := &mockRoomService{
				getAllFunc: func(ctx context.Context, priceRange *model.PriceRange) ([]*model.Room, error) {
					received = priceRange
					return []*model.Room{}, nil
				},
			}
			h := NewRoomHandler(mockService, testLogger())

			req := httptest.NewRequest(http.MethodGet, "/rooms"+tt.queryString, nil)
			rec := httptest.NewRecorder()

			h.GetAll(rec, req, httprouter.Params{})

			if rec.Code != http.StatusOK {
				t.Fatalf("expected status 200, got %d", rec.Code)
			}
			if tt.expectRange == nil {
				if received != nil {
					t.Errorf("expected no price range, service received %+v", received)
				}
				return
			}
			if received == nil || received.Low != tt.expectRange.Low || received.High != tt.expectRange.High {
				t.Errorf("service received %+v, want %+v", received, tt.expectRange)
			}
		})
	}
}

func TestGetByID_UnknownRoomIsEmptyResult(t *testing.T) {
	h := NewRoomHandler(&mockRoomService{}, testLogger())

	req := httptest.NewRequest(http.MethodGet, "/room/662fb8a5e4b0f2a3d4c5b6a7", nil)
	rec := httptest.NewRecorder()

	h.GetByID(rec, req, httprouter.Params{{Key: "id", Value: "662fb8a5e4b0f2a3d4c5b6a7"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var body map[string]any
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body["data"] != nil {
		t.Errorf("expected null data for unknown room, got %v", body["data"])
	}
}

func TestUpdateAvailability(t *testing.T) {
	var receivedID string
	var receivedAvailability bool
	mockService := &mockRoomService{
		updateAvailabilityFunc: func(ctx context.Context, id string, availability bool) (*model.UpdateAck, error) {
			receivedID = id
			receivedAvailability = availability
			return &model.UpdateAck{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
		},
	}
	h := NewRoomHandler(mockService, testLogger())

	req := httptest.NewRequest(http.MethodPatch, "/rooms/662fb8a5e4b0f2a3d4c5b6a7", strings.NewReader(`{"availability":false}`))
	rec := httptest.NewRecorder()

	h.UpdateAvailability(rec, req, httprouter.Params{{Key: "id", Value: "662fb8a5e4b0f2a3d4c5b6a7"}})

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	if receivedID != "662fb8a5e4b0f2a3d4c5b6a7" {
		t.Errorf("service received id %q", receivedID)
	}
	if receivedAvailability {
		t.Errorf("expected availability false to reach the service")
	}

	var body struct {
		Data model.UpdateAck `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if body.Data.MatchedCount != 1 || body.Data.ModifiedCount != 1 {
		t.Errorf("expected update counts in acknowledgment, got %+v", body.Data)
	}
}

func TestUpdateAvailability_InvalidBody(t *testing.T) {
	h := NewRoomHandler(&mockRoomService{}, testLogger())

	req := httptest.NewRequest(http.MethodPatch, "/rooms/662fb8a5e4b0f2a3d4c5b6a7", strings.NewReader(`{broken`))
	rec := httptest.NewRecorder()

	h.UpdateAvailability(rec, req, httprouter.Params{{Key: "id", Value: "662fb8a5e4b0f2a3d4c5b6a7"}})

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected status 400, got %d", rec.Code)
	}
}
