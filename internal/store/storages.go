package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-circuit-records/internal/config"
	"github.com/MKhiriev/go-circuit-records/internal/logger"
)

// Storages bundles every repository and the file storage so that services
// receive them through a single constructor argument.
type Storages struct {
	UserRepository         UserRepository
	MemberRepository       MemberRepository
	FinanceRepository      FinanceRepository
	AnnouncementRepository AnnouncementRepository
	FileRepository         FileRepository
	StatsRepository        StatsRepository
	FileStorage            FileStorage
}

// NewStorages wires the PostgreSQL repositories over db and the file storage
// selected by cfg.Files.Backend.
func NewStorages(ctx context.Context, db *DB, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	fileStorage, err := NewFileStorage(ctx, cfg.Files, logger)
	if err != nil {
		return nil, err
	}

	return &Storages{
		UserRepository:         NewUserRepository(db, logger),
		MemberRepository:       NewMemberRepository(db, logger),
		FinanceRepository:      NewFinanceRepository(db, logger),
		AnnouncementRepository: NewAnnouncementRepository(db, logger),
		FileRepository:         NewFileRepository(db, logger),
		StatsRepository:        NewStatsRepository(db, logger),
		FileStorage:            fileStorage,
	}, nil
}

// NewFileStorage returns the [FileStorage] for the configured backend.
func NewFileStorage(ctx context.Context, cfg config.Files, logger *logger.Logger) (FileStorage, error) {
	switch cfg.Backend {
	case config.FilesBackendLocal:
		return NewLocalFileStorage(cfg.Dir, logger)
	case config.FilesBackendS3:
		return NewS3FileStorage(ctx, cfg.S3, logger)
	default:
		return nil, fmt.Errorf("unknown files backend %q", cfg.Backend)
	}
}
