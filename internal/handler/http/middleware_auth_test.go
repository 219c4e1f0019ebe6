// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/MKhiriev/go-circuit-records/internal/app"
	"github.com/MKhiriev/go-circuit-records/internal/service"
	"github.com/MKhiriev/go-circuit-records/internal/utils"
	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuth_Rejections(t *testing.T) {
	tests := []struct {
		name        string
		header      string
		resolveErr  error
		wantReason  string
		wantResolve bool
	}{
		{name: "no header", wantReason: app.ReasonNotAuthenticated},
		{name: "basic scheme", header: "Basic YWxpY2U6cHc=", wantReason: app.ReasonNotAuthenticated},
		{name: "bearer without token", header: "Bearer", wantReason: app.ReasonNotAuthenticated},
		{
			name:        "expired token",
			header:      "Bearer expired",
			resolveErr:  fmt.Errorf("%w: exp in the past", utils.ErrTokenExpired),
			wantReason:  app.ReasonTokenExpired,
			wantResolve: true,
		},
		{
			name:        "malformed token",
			header:      "Bearer garbage",
			resolveErr:  fmt.Errorf("%w: bad signature", utils.ErrTokenMalformed),
			wantReason:  app.ReasonInvalidToken,
			wantResolve: true,
		},
		{
			name:        "token without claims",
			header:      "Bearer thin",
			resolveErr:  utils.ErrTokenMissingClaims,
			wantReason:  app.ReasonInvalidToken,
			wantResolve: true,
		},
		{
			name:        "unknown user",
			header:      "Bearer orphan",
			resolveErr:  service.ErrUserNotFound,
			wantReason:  app.ReasonInvalidToken,
			wantResolve: true,
		},
		{
			name:        "inactive user",
			header:      "bearer inactive",
			resolveErr:  service.ErrInactiveAccount,
			wantReason:  app.ReasonInvalidToken,
			wantResolve: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, m := newTestHandler(t, ctrl)
			if tt.wantResolve {
				m.identity.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(models.User{}, tt.resolveErr)
			}

			var headers []string
			if tt.header != "" {
				headers = []string{"Authorization", tt.header}
			}

			rr := serve(t, h.Init(), http.MethodGet, "/api/auth/me", nil, headers...)

			assert.Equal(t, http.StatusUnauthorized, rr.Code)
			assert.Contains(t, rr.Header().Get("WWW-Authenticate"), "Bearer")
			assert.Equal(t, tt.wantReason, decodeBody[models.ErrorResponse](t, rr).Reason)
		})
	}
}

func TestAuth_StoresUserInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())

	rr := serve(t, h.Init(), http.MethodGet, "/api/auth/me", nil, bearer(testToken)...)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, secretaryUser(), decodeBody[models.User](t, rr))
}

func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		user       models.User
		wantStatus int
	}{
		{"admin passes", adminUser(), http.StatusOK},
		{"secretary is forbidden", secretaryUser(), http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, m := newTestHandler(t, ctrl)
			m.authenticate(tt.user)
			if tt.wantStatus == http.StatusOK {
				m.users.EXPECT().List(gomock.Any()).Return([]models.User{adminUser()}, nil)
			}

			rr := serve(t, h.Init(), http.MethodGet, "/api/users", nil, bearer(testToken)...)

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusForbidden {
				assert.Equal(t, app.ReasonForbidden, decodeBody[models.ErrorResponse](t, rr).Reason)
			}
		})
	}
}
