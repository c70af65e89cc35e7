package middleware

import (
	"context"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/julienschmidt/httprouter"

	"github.com/fahadfakrul/Stay-Sphere-Server/internal/auth/token"
	apperrors "github.com/fahadfakrul/Stay-Sphere-Server/pkg/errors"
	httputil "github.com/fahadfakrul/Stay-Sphere-Server/pkg/http"
	"github.com/fahadfakrul/Stay-Sphere-Server/pkg/logger"
)

type contextKey string

const ClaimsKey contextKey = "session_claims"

// RequireSession guards a route with the session cookie. A missing, tampered
// or expired token short-circuits with 401 before the handler runs; on
// success the verified claims are attached to the request context.
func RequireSession(tokens *token.Manager, log *logger.Logger) func(httprouter.Handle) httprouter.Handle {
	return func(next httprouter.Handle) httprouter.Handle {
		return func(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
			cookie, err := r.Cookie(token.CookieName)
			if err != nil {
				if writeErr := httputil.WriteError(w, apperrors.Unauthorized("Unauthorized access")); writeErr != nil {
					log.Error("failed to write error response", "middleware", "RequireSession", "operation", "WriteError", "error", writeErr)
				}
				return
			}

			claims, err := tokens.Verify(cookie.Value)
			if err != nil {
				log.Warn("Session token rejected", "path", r.URL.Path, "error", err)
				if writeErr := httputil.WriteError(w, apperrors.Unauthorized("Unauthorized access")); writeErr != nil {
					log.Error("failed to write error response", "middleware", "RequireSession", "operation", "WriteError", "error", writeErr)
				}
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			next(w, r.WithContext(ctx), ps)
		}
	}
}

// ClaimsFromContext returns the verified session claims attached by
// RequireSession, or nil outside a guarded route.
func ClaimsFromContext(ctx context.Context) jwt.MapClaims {
	if claims, ok := ctx.Value(ClaimsKey).(jwt.MapClaims); ok {
		return claims
	}
	return nil
}
