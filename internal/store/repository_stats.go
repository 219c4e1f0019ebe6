package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/models"
)

type statsRepository struct {
	*DB
	logger *logger.Logger
}

func NewStatsRepository(db *DB, logger *logger.Logger) StatsRepository {
	return &statsRepository{
		DB:     db,
		logger: logger,
	}
}

func (s *statsRepository) CountMembers(ctx context.Context) (int64, error) {
	var total int64
	if err := s.QueryRowContext(ctx, countMembers).Scan(&total); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*statsRepository.CountMembers").Msg("failed to count members")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return total, nil
}

// CountMembersBySociety returns member counts keyed by society. Societies
// without members are absent from the map.
func (s *statsRepository) CountMembersBySociety(ctx context.Context) (map[models.Society]int64, error) {
	log := logger.FromContext(ctx)

	rows, err := s.QueryContext(ctx, countMembersBySociety)
	if err != nil {
		log.Err(err).Str("func", "*statsRepository.CountMembersBySociety").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	counts := make(map[models.Society]int64, len(models.Societies))
	for rows.Next() {
		var (
			society models.Society
			count   int64
		)
		if err = rows.Scan(&society, &count); err != nil {
			log.Err(err).Str("func", "*statsRepository.CountMembersBySociety").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		counts[society] = count
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return counts, nil
}

// RecentFinancialEntries returns the limit most recently recorded entries.
func (s *statsRepository) RecentFinancialEntries(ctx context.Context, limit uint64) ([]models.FinancialEntry, error) {
	return queryFinancialEntries(ctx, s.DB, "*statsRepository.RecentFinancialEntries", recentFinancialEntries, limit)
}
