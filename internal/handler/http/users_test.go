package http

import (
	"net/http"
	"testing"

	"github.com/MKhiriev/go-circuit-records/internal/store"
	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestUsers_SetActive(t *testing.T) {
	tests := []struct {
		name       string
		path       string
		wantActive bool
		returnErr  error
		wantStatus int
	}{
		{"deactivate", "/api/users/u-7/deactivate", false, nil, http.StatusOK},
		{"activate", "/api/users/u-7/activate", true, nil, http.StatusOK},
		{"unknown user", "/api/users/u-7/activate", true, store.ErrNotFound, http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			h, m := newTestHandler(t, ctrl)
			m.authenticate(adminUser())
			m.users.EXPECT().SetActive(gomock.Any(), "u-7", tt.wantActive).
				Return(models.User{ID: "u-7", IsActive: tt.wantActive}, tt.returnErr)

			rr := serve(t, h.Init(), http.MethodPost, tt.path, nil, bearer(testToken)...)

			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.returnErr == nil {
				assert.Equal(t, tt.wantActive, decodeBody[models.User](t, rr).IsActive)
			}
		})
	}
}

func TestUsers_SetActive_NonAdmin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())

	rr := serve(t, h.Init(), http.MethodPost, "/api/users/u-7/deactivate", nil, bearer(testToken)...)

	assert.Equal(t, http.StatusForbidden, rr.Code)
}
