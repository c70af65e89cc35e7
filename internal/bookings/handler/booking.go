package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	authmiddleware "github.com/fahadfakrul/Stay-Sphere-Server/internal/auth/middleware"
	"github.com/fahadfakrul/Stay-Sphere-Server/internal/auth/token"
	"github.com/fahadfakrul/Stay-Sphere-Server/internal/bookings/service"
	apperrors "github.com/fahadfakrul/Stay-Sphere-Server/pkg/errors"
	httputil "github.com/fahadfakrul/Stay-Sphere-Server/pkg/http"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/logger"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/model"
)

type BookingHandler struct {
	service service.BookingService
	guard   func(httprouter.Handle) httprouter.Handle
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, guard func(httprouter.Handle) httprouter.Handle, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		guard:   guard,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var booking model.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "Create", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	ack, err := h.service.Create(r.Context(), &booking)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Create", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteCreated(w, ack); err != nil {
		h.log.Error("failed to write created response", "handler", "Create", "operation", "WriteCreated", "error", err)
	}
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	ack, err := h.service.Delete(r.Context(), id)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "Delete", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, ack); err != nil {
		h.log.Error("failed to write success response", "handler", "Delete", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) UpdateDate(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	id := ps.ByName("id")

	var fields map[string]any
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "UpdateDate", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	ack, err := h.service.UpdateFields(r.Context(), id, fields)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "UpdateDate", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, ack); err != nil {
		h.log.Error("failed to write success response", "handler", "UpdateDate", "operation", "WriteSuccess", "error", err)
	}
}

// GetByEmail runs behind the session guard. The verified token must belong
// to the requested owner: a valid session for a different email is
// forbidden, which is distinct from the guard's unauthorized.
func (h *BookingHandler) GetByEmail(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	email := ps.ByName("email")

	claims := authmiddleware.ClaimsFromContext(r.Context())
	if token.Email(claims) != email {
		if writeErr := httputil.WriteError(w, apperrors.Forbidden("Forbidden access")); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByEmail", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	bookings, err := h.service.GetByEmail(r.Context(), email)
	if err != nil {
		if writeErr := httputil.WriteError(w, err); writeErr != nil {
			h.log.Error("failed to write error response", "handler", "GetByEmail", "operation", "WriteError", "error", writeErr)
		}
		return
	}

	if err := httputil.WriteSuccess(w, bookings); err != nil {
		h.log.Error("failed to write success response", "handler", "GetByEmail", "operation", "WriteSuccess", "error", err)
	}
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/booking", h.Create)
	router.DELETE("/booking/:id", h.Delete)
	router.PATCH("/booking-update/:id", h.UpdateDate)
	router.GET("/bookings/:email", h.guard(h.GetByEmail))
}
