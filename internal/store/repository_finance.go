package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/models"
)

// financeRepository is the PostgreSQL-backed implementation of
// [FinanceRepository].
type financeRepository struct {
	*DB
	logger *logger.Logger
}

func NewFinanceRepository(db *DB, logger *logger.Logger) FinanceRepository {
	return &financeRepository{
		DB:     db,
		logger: logger,
	}
}

func (f *financeRepository) CreateFinancialEntry(ctx context.Context, entry models.FinancialEntry) (models.FinancialEntry, error) {
	log := logger.FromContext(ctx)

	_, err := f.ExecContext(ctx, createFinancialEntry,
		entry.ID,
		entry.Society,
		entry.Date.Time,
		entry.Pledges,
		entry.SpecialEffort,
		entry.SundayCollection,
		entry.CircuitEventsCollection,
		entry.Total,
		entry.CreatedBy,
		entry.CreatedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*financeRepository.CreateFinancialEntry").
			Str("society", string(entry.Society)).
			Msg("failed to insert financial entry")
		return models.FinancialEntry{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return entry, nil
}

// ListFinancialEntries returns at most limit entries matching filter, latest
// date first.
func (f *financeRepository) ListFinancialEntries(ctx context.Context, filter models.FinanceFilter, limit uint64) ([]models.FinancialEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFinancialEntriesQuery(filter, limit)
	if err != nil {
		log.Err(err).Str("func", "*financeRepository.ListFinancialEntries").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return queryFinancialEntries(ctx, f.DB, "*financeRepository.ListFinancialEntries", query, args...)
}

func queryFinancialEntries(ctx context.Context, db *DB, funcName, query string, args ...any) ([]models.FinancialEntry, error) {
	log := logger.FromContext(ctx)

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", funcName).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entries := make([]models.FinancialEntry, 0)
	for rows.Next() {
		entry, scanErr := scanFinancialEntry(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", funcName).Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}
