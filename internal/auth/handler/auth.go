package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"

	"github.com/fahadfakrul/Stay-Sphere-Server/internal/auth/token"
	httputil "github.com/fahadfakrul/Stay-Sphere-Server/pkg/http"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/logger"
)

type sessionAck struct {
	Success bool `json:"success"`
}

type AuthHandler struct {
	tokens     *token.Manager
	production bool
	log        *logger.Logger
}

func NewAuthHandler(tokens *token.Manager, production bool, log *logger.Logger) *AuthHandler {
	return &AuthHandler{
		tokens:     tokens,
		production: production,
		log:        log,
	}
}

func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var payload map[string]any
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		if writeErr := httputil.WriteJSON(w, http.StatusBadRequest, httputil.ErrorResponse{
			Error: "Invalid request body",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "IssueToken", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	signed, err := h.tokens.Issue(payload)
	if err != nil {
		h.log.Error("Failed to issue session token", "error", err)
		if writeErr := httputil.WriteJSON(w, http.StatusInternalServerError, httputil.ErrorResponse{
			Error: "Failed to issue session token",
		}); writeErr != nil {
			h.log.Error("failed to write JSON response", "handler", "IssueToken", "operation", "WriteJSON", "error", writeErr)
		}
		return
	}

	http.SetCookie(w, h.sessionCookie(signed, 0))
	if err := httputil.WriteJSON(w, http.StatusOK, sessionAck{Success: true}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "IssueToken", "operation", "WriteJSON", "error", err)
	}
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	http.SetCookie(w, h.sessionCookie("", -1))
	if err := httputil.WriteJSON(w, http.StatusOK, sessionAck{Success: true}); err != nil {
		h.log.Error("failed to write JSON response", "handler", "Logout", "operation", "WriteJSON", "error", err)
	}
}

// sessionCookie applies the deployment-dependent attributes: cross-site-safe
// in production (frontend on a different origin), strict same-site otherwise.
func (h *AuthHandler) sessionCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     token.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	}
	if h.production {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteStrictMode
	}
	return cookie
}

func (h *AuthHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/jwt", h.IssueToken)
	router.GET("/logout", h.Logout)
}
