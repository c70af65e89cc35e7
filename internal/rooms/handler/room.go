package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/julienschmidt/httprouter"

	"github.com/fahadfakrul/Stay-Sphere-Server/internal/rooms/service"
	httputil "github.com/fahadfakrul/Stay-Sphere-Server/pkg/http"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/logger"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/model"
)

type RoomHandler struct {
	service service.RoomService
	log     *logger.Logger
}

func NewRoomHandler(service service.RoomService, log *logger.Logger) *RoomHandler {
	return &RoomHandler{
		service: service,
		log:     log,
	}
}

func (h *RoomHandler) GetAll(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	priceRange := parsePriceFilter(r.URL.Query().Get("filter"))

	rooms, err := h.service.GetAll(r.Context(), priceRange)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetAll", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, rooms); err != nil {
		h.log.Error("failed to write success response", "handler", "GetAll", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RoomHandler) GetByID(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	room, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByID", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, room); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByID", "operation", "WriteSuccess", "error", err)
	}
}

func (h *RoomHandler) UpdateAvailability(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var update model.RoomAvailabilityUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "UpdateAvailability", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	ack, err := h.service.UpdateAvailability(r.Context(), id, update.Availability)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateAvailability", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, ack); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateAvailability", "operation", "WriteSuccess", "error", err)
	}
}

// parsePriceFilter interprets the "low-high" query form. Malformed or
// non-numeric bounds degrade to an unfiltered listing, never an error.
func parsePriceFilter(raw string) *model.PriceRange {
	if raw == "" {
		return nil
	}

	parts := strings.SplitN(raw, "-", 2)
	if len(parts) != 2 {
		return nil
	}

	low, lowErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	high, highErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if lowErr != nil || highErr != nil {
		return nil
	}

	return &model.PriceRange{Low: low, High: high}
}

func (h *RoomHandler) RegisterRoutes(router *httprouter.Router) {
	router.GET("/rooms", h.GetAll)
	router.GET("/room/:id", h.GetByID)
	router.PATCH("/rooms/:id", h.UpdateAvailability)
}
