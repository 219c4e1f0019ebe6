package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/models"
)

// fileRepository stores upload metadata in the "files" table.
type fileRepository struct {
	*DB
	logger *logger.Logger
}

func NewFileRepository(db *DB, logger *logger.Logger) FileRepository {
	return &fileRepository{
		DB:     db,
		logger: logger,
	}
}

func (f *fileRepository) CreateFile(ctx context.Context, file models.StoredFile) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	_, err := f.ExecContext(ctx, createFile,
		file.ID,
		file.OriginalName,
		file.StoredName,
		file.Category,
		file.FilePath,
		file.Size,
		file.ContentType,
		file.UploadedBy,
		file.UploadedAt,
	)
	if err != nil {
		log.Err(err).
			Str("func", "*fileRepository.CreateFile").
			Str("category", file.Category).
			Msg("failed to insert file record")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return file, nil
}

func (f *fileRepository) ListFiles(ctx context.Context, category string, limit uint64) ([]models.StoredFile, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListFilesQuery(category, limit)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.ListFiles").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := f.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.ListFiles").Str("category", category).Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	files := make([]models.StoredFile, 0)
	for rows.Next() {
		file, scanErr := scanStoredFile(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*fileRepository.ListFiles").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		files = append(files, file)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return files, nil
}

func (f *fileRepository) GetFile(ctx context.Context, category, id string) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	file, err := scanStoredFile(f.QueryRowContext(ctx, getFile, category, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.StoredFile{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*fileRepository.GetFile").Str("file_id", id).Msg("failed to get file record")
		return models.StoredFile{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return file, nil
}
