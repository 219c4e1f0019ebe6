package http

import (
	"net/http"
	"slices"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/service"
	"github.com/MKhiriev/go-circuit-records/internal/utils"
	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/rs/zerolog"
)

// auth is an HTTP middleware that enforces bearer token authentication.
//
// It extracts the token from the "Authorization" header and resolves it to
// a user through [service.IdentityResolver]. On success the user is stored in
// the request context (see [utils.GetUserFromContext]) and the request logger
// gains a user_id field.
//
// Requests are rejected with 401 when the header is absent or malformed, the
// token is invalid or expired, or its user is unknown or deactivated.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			w.Header().Set("WWW-Authenticate", "Bearer")
			writeError(w, r, err)
			return
		}

		ctx := r.Context()
		user, err := h.services.IdentityResolver.Resolve(ctx, tokenString)
		if err != nil {
			w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token"`)
			writeError(w, r, err)
			return
		}

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("user_id", user.ID)
		})
		ctx = l.WithContext(utils.WithUser(ctx, user))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// requireRole lets the request through only when the authenticated user holds
// one of roles. It must run after auth.
func requireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := utils.GetUserFromContext(r.Context())
			if !ok {
				writeError(w, r, ErrEmptyAuthorizationHeader)
				return
			}

			if !slices.Contains(roles, user.Role) {
				writeError(w, r, service.ErrForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// currentUser returns the user stored by auth.
func currentUser(r *http.Request) models.User {
	user, _ := utils.GetUserFromContext(r.Context())
	return user
}
