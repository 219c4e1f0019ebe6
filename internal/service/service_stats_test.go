package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/mock"
	"github.com/MKhiriev/go-circuit-records/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestStatsService_Dashboard(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockStatsRepository(ctrl)
	svc := NewStatsService(mockRepo, logger.Nop())
	recent := []models.FinancialEntry{{ID: "f-3"}, {ID: "f-2"}}

	mockRepo.EXPECT().CountMembers(gomock.Any()).Return(int64(4), nil)
	mockRepo.EXPECT().CountMembersBySociety(gomock.Any()).Return(map[models.Society]int64{
		models.SocietySecunda: 3,
		models.SocietyKMT:     1,
	}, nil)
	mockRepo.EXPECT().RecentFinancialEntries(gomock.Any(), uint64(RecentFinancesShown)).Return(recent, nil)

	stats, err := svc.Dashboard(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(4), stats.TotalMembers)
	assert.Equal(t, 6, stats.TotalSocieties)
	assert.Equal(t, 9, stats.TotalOrganizations)
	assert.Equal(t, recent, stats.RecentFinances)
	assert.Equal(t, map[models.Society]int64{
		models.SocietyEmbalenhle: 0,
		models.SocietySecunda:    3,
		models.SocietyEvander:    0,
		models.SocietyKMT:        1,
		models.SocietyEbenezer:   0,
		models.SocietyEmzinoni:   0,
	}, stats.MembersBySociety)
}

func TestStatsService_Dashboard_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mock.NewMockStatsRepository(ctrl)
	svc := NewStatsService(mockRepo, logger.Nop())
	dbErr := errors.New("boom")

	mockRepo.EXPECT().CountMembers(gomock.Any()).Return(int64(0), nil)
	mockRepo.EXPECT().CountMembersBySociety(gomock.Any()).Return(nil, dbErr)

	_, err := svc.Dashboard(context.Background())

	assert.ErrorIs(t, err, dbErr)
}
