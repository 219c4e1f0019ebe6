package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/models"
)

type announcementRepository struct {
	*DB
	logger *logger.Logger
}

func NewAnnouncementRepository(db *DB, logger *logger.Logger) AnnouncementRepository {
	return &announcementRepository{
		DB:     db,
		logger: logger,
	}
}

func (a *announcementRepository) CreateAnnouncement(ctx context.Context, announcement models.Announcement) (models.Announcement, error) {
	log := logger.FromContext(ctx)

	_, err := a.ExecContext(ctx, createAnnouncement,
		announcement.ID,
		announcement.Title,
		announcement.Content,
		announcement.DeceasedName,
		announcement.ClassLeaderName,
		timestampArg(announcement.DeathDate),
		announcement.BurialLocation,
		announcement.FinancialStatus,
		announcement.AttendanceRecord,
		announcement.CreatedBy,
		announcement.CreatedAt,
	)
	if err != nil {
		log.Err(err).Str("func", "*announcementRepository.CreateAnnouncement").Msg("failed to insert announcement")
		return models.Announcement{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return announcement, nil
}

func (a *announcementRepository) ListAnnouncements(ctx context.Context, limit uint64) ([]models.Announcement, error) {
	log := logger.FromContext(ctx)

	rows, err := a.QueryContext(ctx, listAnnouncements, limit)
	if err != nil {
		log.Err(err).Str("func", "*announcementRepository.ListAnnouncements").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	announcements := make([]models.Announcement, 0)
	for rows.Next() {
		announcement, scanErr := scanAnnouncement(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*announcementRepository.ListAnnouncements").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		announcements = append(announcements, announcement)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return announcements, nil
}
