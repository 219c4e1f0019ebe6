package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/mock"
	"github.com/MKhiriev/go-circuit-records/internal/store"
	"github.com/MKhiriev/go-circuit-records/internal/utils"
	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestResolver(t *testing.T, ctrl *gomock.Controller, now time.Time) (*identityResolver, *mock.MockUserRepository) {
	t.Helper()
	mockRepo := mock.NewMockUserRepository(ctrl)

	resolver := NewIdentityResolver(mockRepo, testAppConfig, logger.Nop()).(*identityResolver)
	resolver.now = func() time.Time { return now }

	return resolver, mockRepo
}

func issueAliceToken(t *testing.T) string {
	t.Helper()
	token, err := utils.IssueToken("id-1", "alice", models.RoleSecretary, testIssuer, testSignKey, testNow)
	require.NoError(t, err)
	return token.String()
}

func TestIdentityResolver_Resolve_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockRepo := newTestResolver(t, ctrl, testNow.Add(time.Minute))
	mockRepo.EXPECT().FindUserByID(gomock.Any(), "id-1").Return(activeAlice(), nil)

	user, err := resolver.Resolve(context.Background(), issueAliceToken(t))

	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
}

func TestIdentityResolver_Resolve_Expired(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no repository call is expected for a rejected token
	resolver, _ := newTestResolver(t, ctrl, testNow.Add(25*time.Hour))

	_, err := resolver.Resolve(context.Background(), issueAliceToken(t))

	assert.ErrorIs(t, err, utils.ErrTokenExpired)
}

func TestIdentityResolver_Resolve_Malformed(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, _ := newTestResolver(t, ctrl, testNow)

	_, err := resolver.Resolve(context.Background(), "not.a.token")

	assert.ErrorIs(t, err, utils.ErrTokenMalformed)
}

func TestIdentityResolver_Resolve_UnknownUser(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockRepo := newTestResolver(t, ctrl, testNow)
	mockRepo.EXPECT().FindUserByID(gomock.Any(), "id-1").Return(models.User{}, store.ErrNotFound)

	_, err := resolver.Resolve(context.Background(), issueAliceToken(t))

	assert.ErrorIs(t, err, ErrUserNotFound)
}

// TestIdentityResolver_DeactivatedAfterIssuance checks that a token issued
// before deactivation stops working although it has not expired.
func TestIdentityResolver_DeactivatedAfterIssuance(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockRepo := newTestResolver(t, ctrl, testNow.Add(time.Hour))
	token := issueAliceToken(t)

	deactivated := activeAlice()
	deactivated.IsActive = false

	gomock.InOrder(
		mockRepo.EXPECT().FindUserByID(gomock.Any(), "id-1").Return(activeAlice(), nil),
		mockRepo.EXPECT().FindUserByID(gomock.Any(), "id-1").Return(deactivated, nil),
	)

	_, err := resolver.Resolve(context.Background(), token)
	require.NoError(t, err)

	_, err = resolver.Resolve(context.Background(), token)
	assert.ErrorIs(t, err, ErrInactiveAccount)
}

func TestIdentityResolver_Resolve_StoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	resolver, mockRepo := newTestResolver(t, ctrl, testNow)
	dbErr := errors.New("connection reset")
	mockRepo.EXPECT().FindUserByID(gomock.Any(), "id-1").Return(models.User{}, dbErr)

	_, err := resolver.Resolve(context.Background(), issueAliceToken(t))

	assert.ErrorIs(t, err, dbErr)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}
