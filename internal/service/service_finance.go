package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/store"
	"github.com/MKhiriev/go-circuit-records/internal/validators"
	"github.com/MKhiriev/go-circuit-records/models"
)

// MaxFinancialEntriesListed caps a finance listing.
const MaxFinancialEntriesListed = 1000

type financeService struct {
	financeRepository store.FinanceRepository
	validator         validators.Validator
	ids               IDGenerator
	now               func() time.Time

	logger *logger.Logger
}

func NewFinanceService(financeRepository store.FinanceRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) FinanceService {
	return &financeService{
		financeRepository: financeRepository,
		validator:         validator,
		ids:               ids,
		now:               time.Now,
		logger:            logger,
	}
}

// Create records a contribution entry. The total is always computed here and
// never taken from the client.
func (s *financeService) Create(ctx context.Context, creator models.User, in models.FinancialEntryInput) (models.FinancialEntry, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.FinancialEntry{}, err
	}

	entry := models.FinancialEntry{
		ID:                      s.ids.Generate(),
		Society:                 in.Society,
		Date:                    in.Date,
		Pledges:                 in.Pledges,
		SpecialEffort:           in.SpecialEffort,
		SundayCollection:        in.SundayCollection,
		CircuitEventsCollection: in.CircuitEventsCollection,
		Total:                   in.Total(),
		CreatedBy:               creator.ID,
		CreatedAt:               s.now().UTC(),
	}

	created, err := s.financeRepository.CreateFinancialEntry(ctx, entry)
	if err != nil {
		return models.FinancialEntry{}, fmt.Errorf("financial entry creation failed: %w", err)
	}
	return created, nil
}

func (s *financeService) List(ctx context.Context, filter models.FinanceFilter) ([]models.FinancialEntry, error) {
	entries, err := s.financeRepository.ListFinancialEntries(ctx, filter, MaxFinancialEntriesListed)
	if err != nil {
		return nil, fmt.Errorf("financial entry listing failed: %w", err)
	}
	return entries, nil
}
