package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/store"
	"github.com/MKhiriev/go-circuit-records/models"
)

// RecentFinancesShown is the number of entries on the dashboard.
const RecentFinancesShown = 5

type statsService struct {
	statsRepository store.StatsRepository
	logger          *logger.Logger
}

func NewStatsService(statsRepository store.StatsRepository, logger *logger.Logger) StatsService {
	return &statsService{
		statsRepository: statsRepository,
		logger:          logger,
	}
}

// Dashboard reports a member count for every society, zero included.
func (s *statsService) Dashboard(ctx context.Context) (models.DashboardStats, error) {
	total, err := s.statsRepository.CountMembers(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("member count failed: %w", err)
	}

	counts, err := s.statsRepository.CountMembersBySociety(ctx)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("member count by society failed: %w", err)
	}

	recent, err := s.statsRepository.RecentFinancialEntries(ctx, RecentFinancesShown)
	if err != nil {
		return models.DashboardStats{}, fmt.Errorf("recent finances failed: %w", err)
	}

	bySociety := make(map[models.Society]int64, len(models.Societies))
	for _, society := range models.Societies {
		bySociety[society] = counts[society]
	}

	return models.DashboardStats{
		TotalMembers:       total,
		TotalSocieties:     len(models.Societies),
		TotalOrganizations: len(models.Organizations),
		RecentFinances:     recent,
		MembersBySociety:   bySociety,
	}, nil
}
