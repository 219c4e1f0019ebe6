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

// MaxAnnouncementsListed caps an announcement listing.
const MaxAnnouncementsListed = 100

type announcementService struct {
	announcementRepository store.AnnouncementRepository
	validator              validators.Validator
	ids                    IDGenerator
	now                    func() time.Time

	logger *logger.Logger
}

func NewAnnouncementService(announcementRepository store.AnnouncementRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) AnnouncementService {
	return &announcementService{
		announcementRepository: announcementRepository,
		validator:              validator,
		ids:                    ids,
		now:                    time.Now,
		logger:                 logger,
	}
}

func (s *announcementService) Create(ctx context.Context, creator models.User, in models.AnnouncementInput) (models.Announcement, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Announcement{}, err
	}

	announcement := models.Announcement{
		ID:               s.ids.Generate(),
		Title:            in.Title,
		Content:          in.Content,
		DeceasedName:     in.DeceasedName,
		ClassLeaderName:  in.ClassLeaderName,
		DeathDate:        in.DeathDate,
		BurialLocation:   in.BurialLocation,
		FinancialStatus:  in.FinancialStatus,
		AttendanceRecord: in.AttendanceRecord,
		CreatedBy:        creator.ID,
		CreatedAt:        s.now().UTC(),
	}

	created, err := s.announcementRepository.CreateAnnouncement(ctx, announcement)
	if err != nil {
		return models.Announcement{}, fmt.Errorf("announcement creation failed: %w", err)
	}
	return created, nil
}

// List returns the newest announcements first.
func (s *announcementService) List(ctx context.Context) ([]models.Announcement, error) {
	announcements, err := s.announcementRepository.ListAnnouncements(ctx, MaxAnnouncementsListed)
	if err != nil {
		return nil, fmt.Errorf("announcement listing failed: %w", err)
	}
	return announcements, nil
}
