// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-circuit-records/internal/app"
	"github.com/MKhiriev/go-circuit-records/internal/config"
	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()

	a, err := NewHTTPServerAdapter(config.ClientAdapter{
		HTTPAddress:    serverURL,
		RequestTimeout: 5 * time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	return a.(*httpServerAdapter)
}

func writeTestJSON(t *testing.T, w http.ResponseWriter, status int, body any) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestNewHTTPServerAdapter_Address(t *testing.T) {
	tests := []struct {
		name    string
		address string
		want    string
		wantErr bool
	}{
		{name: "full url", address: "http://records.local:8000/", want: "http://records.local:8000"},
		{name: "host and port", address: "localhost:8000", want: "http://localhost:8000"},
		{name: "empty", address: "  ", wantErr: true},
		{name: "no host", address: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, err := NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: tt.address}, logger.Nop())
			if tt.wantErr {
				require.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, a.(*httpServerAdapter).client.BaseURL)
		})
	}
}

func TestLogin_StoresToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/auth/login", r.URL.Path)

		var req models.LoginRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "alice", req.Username)
		assert.Equal(t, "s3cret-pass", req.Password)

		writeTestJSON(t, w, http.StatusOK, models.LoginResponse{
			AccessToken: "token-123",
			TokenType:   models.TokenType,
			User:        models.PublicUser{ID: "id-1", Username: "alice", Role: models.RoleSecretary},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	got, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "s3cret-pass"})

	require.NoError(t, err)
	assert.Equal(t, "id-1", got.User.ID)
	assert.Equal(t, "token-123", a.Token())
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{
			Detail: app.MsgInvalidCredentials,
			Reason: app.ReasonInvalidCredentials,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.LoginRequest{Username: "alice", Password: "wrong"})

	require.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Contains(t, err.Error(), app.MsgInvalidCredentials)
	assert.Empty(t, a.Token())
}

func TestMe_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/auth/me", r.URL.Path)
		assert.Equal(t, "Bearer token-123", r.Header.Get("Authorization"))

		writeTestJSON(t, w, http.StatusOK, models.User{ID: "id-1", Username: "alice", Role: models.RoleSecretary, IsActive: true})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("  token-123 ")

	user, err := a.Me(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, user.IsActive)
}

func TestMe_TokenExpired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeTestJSON(t, w, http.StatusUnauthorized, models.ErrorResponse{
			Detail: app.MsgTokenExpired,
			Reason: app.ReasonTokenExpired,
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("stale")

	_, err := a.Me(context.Background())

	require.ErrorIs(t, err, ErrTokenExpired)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestMembers_FilterQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/members", r.URL.Path)
		assert.Equal(t, "secunda", r.URL.Query().Get("society"))
		assert.Equal(t, "thandi", r.URL.Query().Get("search"))

		writeTestJSON(t, w, http.StatusOK, []models.Member{
			{ID: "m-1", FullName: "Thandi Mokoena", Society: models.SocietySecunda},
		})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token-123")

	members, err := a.Members(context.Background(), models.MemberFilter{Society: models.SocietySecunda, Search: "thandi"})

	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Thandi Mokoena", members[0].FullName)
}

func TestMembers_NoFilterSendsNoQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.URL.RawQuery)
		writeTestJSON(t, w, http.StatusOK, []models.Member{})
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token-123")

	members, err := a.Members(context.Background(), models.MemberFilter{})

	require.NoError(t, err)
	assert.Empty(t, members)
}

func TestVersion_PlainText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/version", r.URL.Path)
		assert.Empty(t, r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("v1.4.0\n"))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("token-123")

	version, err := a.Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "v1.4.0", version)
}

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "validation", status: http.StatusBadRequest, body: `{"detail":"full_name: cannot be blank.","reason":"ValidationError"}`, wantErr: ErrBadRequest},
		{name: "invalid token", status: http.StatusUnauthorized, body: `{"detail":"Invalid token","reason":"InvalidToken"}`, wantErr: ErrUnauthorized},
		{name: "forbidden", status: http.StatusForbidden, body: `{"detail":"Not enough permissions","reason":"Forbidden"}`, wantErr: ErrForbidden},
		{name: "not found", status: http.StatusNotFound, body: `{"detail":"Not found","reason":"NotFound"}`, wantErr: ErrNotFound},
		{name: "internal", status: http.StatusInternalServerError, body: "upstream exploded", wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			_, err := a.Me(context.Background())

			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestMapHTTPError_UnmappedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Version(context.Background())

	require.Error(t, err)
	assert.Equal(t, "http 502: Bad Gateway", err.Error())
}
