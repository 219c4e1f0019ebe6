package http

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAnnouncements_CreateAndList(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())
	router := h.Init()

	m.announcements.EXPECT().Create(gomock.Any(), secretaryUser(), gomock.Any()).
		Return(models.Announcement{ID: "a-1", Title: "Funeral notice"}, nil)
	m.announcements.EXPECT().List(gomock.Any()).
		Return([]models.Announcement{{ID: "a-1"}}, nil)

	body := `{"title":"Funeral notice","content":"Service on Saturday","deceased_name":"Sipho Mahlangu","death_date":"2026-04-20"}`
	rr := serve(t, router, http.MethodPost, "/api/announcements", strings.NewReader(body), bearer(testToken)...)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, "a-1", decodeBody[models.Announcement](t, rr).ID)

	rr = serve(t, router, http.MethodGet, "/api/announcements", nil, bearer(testToken)...)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeBody[[]models.Announcement](t, rr), 1)
}

func TestStats_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h, m := newTestHandler(t, ctrl)
	m.authenticate(secretaryUser())
	router := h.Init()

	gomock.InOrder(
		m.stats.EXPECT().Dashboard(gomock.Any()).Return(models.DashboardStats{
			TotalMembers:       3,
			TotalSocieties:     6,
			TotalOrganizations: 9,
			MembersBySociety:   map[models.Society]int64{models.SocietyKMT: 3},
		}, nil),
		m.stats.EXPECT().Dashboard(gomock.Any()).Return(models.DashboardStats{}, errors.New("db down")),
	)

	rr := serve(t, router, http.MethodGet, "/api/stats/dashboard", nil, bearer(testToken)...)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{
		"total_members": 3,
		"total_societies": 6,
		"total_organizations": 9,
		"recent_finances": null,
		"members_by_society": {"kmt": 3}
	}`, rr.Body.String())

	rr = serve(t, router, http.MethodGet, "/api/stats/dashboard", nil, bearer(testToken)...)
	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.NotContains(t, rr.Body.String(), "db down")
}
