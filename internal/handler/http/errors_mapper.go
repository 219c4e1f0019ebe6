package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-circuit-records/internal/app"
	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/service"
	"github.com/MKhiriev/go-circuit-records/internal/store"
	"github.com/MKhiriev/go-circuit-records/internal/utils"
	"github.com/MKhiriev/go-circuit-records/internal/validators"
	"github.com/MKhiriev/go-circuit-records/models"
)

type errorMapping struct {
	target error
	status int
	reason string
	// detail is the fixed text shown to clients. An empty detail means the
	// error text itself is safe to show.
	detail string
}

// errorStatusMap is matched in order; the first target found in the error
// chain wins. A failed login wraps both ErrInvalidCredentials and
// ErrInactiveAccount, so the former must come first.
var errorStatusMap = []errorMapping{
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.ReasonInvalidCredentials, app.MsgInvalidCredentials},
	{service.ErrInactiveAccount, http.StatusUnauthorized, app.ReasonInvalidToken, app.MsgInvalidToken},
	{service.ErrUserNotFound, http.StatusUnauthorized, app.ReasonInvalidToken, app.MsgInvalidToken},
	{utils.ErrTokenExpired, http.StatusUnauthorized, app.ReasonTokenExpired, app.MsgTokenExpired},
	{utils.ErrTokenMalformed, http.StatusUnauthorized, app.ReasonInvalidToken, app.MsgInvalidToken},
	{utils.ErrTokenMissingClaims, http.StatusUnauthorized, app.ReasonInvalidToken, app.MsgInvalidToken},
	{ErrEmptyAuthorizationHeader, http.StatusUnauthorized, app.ReasonNotAuthenticated, app.MsgNotAuthenticated},
	{utils.ErrInvalidAuthorizationHeader, http.StatusUnauthorized, app.ReasonNotAuthenticated, app.MsgNotAuthenticated},

	{service.ErrDuplicateUsername, http.StatusBadRequest, app.ReasonDuplicateUsername, app.MsgUsernameExists},
	{store.ErrUsernameAlreadyExists, http.StatusBadRequest, app.ReasonDuplicateUsername, app.MsgUsernameExists},
	{validators.ErrValidation, http.StatusBadRequest, app.ReasonValidationError, ""},
	{models.ErrUnknownEnumValue, http.StatusBadRequest, app.ReasonValidationError, ""},
	{ErrInvalidRequestBody, http.StatusBadRequest, app.ReasonValidationError, ""},
	{ErrInvalidQueryParameter, http.StatusBadRequest, app.ReasonValidationError, ""},

	{service.ErrForbidden, http.StatusForbidden, app.ReasonForbidden, app.MsgNotEnoughPermissions},

	{store.ErrNotFound, http.StatusNotFound, app.ReasonNotFound, app.MsgNotFound},
	{ErrRouteNotFound, http.StatusNotFound, app.ReasonNotFound, app.MsgNotFound},
	{ErrMethodNotAllowed, http.StatusMethodNotAllowed, app.ReasonMethodNotAllowed, app.MsgMethodNotAllowed},
	{ErrRequestTooLarge, http.StatusRequestEntityTooLarge, app.ReasonRequestTooLarge, app.MsgFileTooLarge},
}

var internalErrorMapping = errorMapping{
	status: http.StatusInternalServerError,
	reason: app.ReasonInternalError,
	detail: app.MsgInternalServerError,
}

func mappingFromError(err error) errorMapping {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			return m
		}
	}
	return internalErrorMapping
}

func statusFromError(err error) int {
	return mappingFromError(err).status
}

// writeError logs err and answers with the mapped status and error body.
// Internal details never reach the client for 5xx responses.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	m := mappingFromError(err)

	detail := m.detail
	if detail == "" {
		detail = err.Error()
	}

	if m.status >= http.StatusInternalServerError {
		log.Err(err).Str("reason", m.reason).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", m.status).Str("reason", m.reason).Msg("request rejected")
	}

	utils.WriteError(w, m.status, detail, m.reason)
}
