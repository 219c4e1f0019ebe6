package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/go-circuit-records/internal/config"
	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/mock"
	"github.com/MKhiriev/go-circuit-records/internal/service"
	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testToken = "valid-token"

var testServerConfig = config.Server{
	HTTPAddress:        ":0",
	RequestTimeout:     5 * time.Second,
	CORSAllowedOrigins: []string{"https://records.example"},
	MaxUploadSize:      1 << 20,
}

type serviceMocks struct {
	auth          *mock.MockAuthService
	identity      *mock.MockIdentityResolver
	members       *mock.MockMemberService
	finances      *mock.MockFinanceService
	announcements *mock.MockAnnouncementService
	files         *mock.MockFileService
	stats         *mock.MockStatsService
	users         *mock.MockUserService
	appInfo       *mock.MockAppInfoService
}

func newTestHandler(t *testing.T, ctrl *gomock.Controller) (*Handler, *serviceMocks) {
	t.Helper()

	m := &serviceMocks{
		auth:          mock.NewMockAuthService(ctrl),
		identity:      mock.NewMockIdentityResolver(ctrl),
		members:       mock.NewMockMemberService(ctrl),
		finances:      mock.NewMockFinanceService(ctrl),
		announcements: mock.NewMockAnnouncementService(ctrl),
		files:         mock.NewMockFileService(ctrl),
		stats:         mock.NewMockStatsService(ctrl),
		users:         mock.NewMockUserService(ctrl),
		appInfo:       mock.NewMockAppInfoService(ctrl),
	}

	services := &service.Services{
		AuthService:         m.auth,
		IdentityResolver:    m.identity,
		MemberService:       m.members,
		FinanceService:      m.finances,
		AnnouncementService: m.announcements,
		FileService:         m.files,
		StatsService:        m.stats,
		UserService:         m.users,
		AppInfoService:      m.appInfo,
	}

	return NewHandler(services, testServerConfig, logger.Nop()), m
}

// authenticate makes testToken resolve to user.
func (m *serviceMocks) authenticate(user models.User) {
	m.identity.EXPECT().Resolve(gomock.Any(), testToken).Return(user, nil).AnyTimes()
}

func secretaryUser() models.User {
	return models.User{
		ID:       "u-secretary",
		Username: "nomsa",
		FullName: "Nomsa Dlamini",
		Role:     models.RoleSecretary,
		IsActive: true,
	}
}

func adminUser() models.User {
	return models.User{
		ID:       "u-admin",
		Username: "admin",
		FullName: "System Administrator",
		Role:     models.RoleAdmin,
		IsActive: true,
	}
}

// serve sends a request through the full router. headers are given as
// name/value pairs.
func serve(t *testing.T, router http.Handler, method, target string, body io.Reader, headers ...string) *httptest.ResponseRecorder {
	t.Helper()
	require.Zero(t, len(headers)%2, "headers must be name/value pairs")

	req := httptest.NewRequest(method, target, body)
	for i := 0; i < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func bearer(token string) []string {
	return []string{"Authorization", "Bearer " + token}
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}
