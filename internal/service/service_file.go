package service

import (
	"context"
	"fmt"
	"io"
	"path"
	"regexp"
	"strings"
	"time"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/store"
	"github.com/MKhiriev/go-circuit-records/internal/validators"
	"github.com/MKhiriev/go-circuit-records/models"
)

// MaxFilesListed caps a per-category file listing.
const MaxFilesListed = 100

// extensionPattern limits the extension carried over from the client's file
// name into the storage key.
var extensionPattern = regexp.MustCompile(`^\.[A-Za-z0-9]{1,16}$`)

type fileService struct {
	fileRepository store.FileRepository
	fileStorage    store.FileStorage
	validator      validators.Validator
	ids            IDGenerator
	now            func() time.Time

	logger *logger.Logger
}

func NewFileService(
	fileRepository store.FileRepository,
	fileStorage store.FileStorage,
	validator validators.Validator,
	ids IDGenerator,
	logger *logger.Logger,
) FileService {
	return &fileService{
		fileRepository: fileRepository,
		fileStorage:    fileStorage,
		validator:      validator,
		ids:            ids,
		now:            time.Now,
		logger:         logger,
	}
}

// Upload stores the content under "<category>/<id><ext>" and records it.
// If the record cannot be written the stored content is removed again.
func (s *fileService) Upload(ctx context.Context, uploader models.User, upload models.FileUpload) (models.StoredFile, error) {
	log := logger.FromContext(ctx)

	if err := s.validator.Validate(ctx, validators.Category(upload.Category)); err != nil {
		return models.StoredFile{}, err
	}

	id := s.ids.Generate()
	storedName := id + storedExtension(upload.OriginalName)
	key := upload.Category + "/" + storedName

	if err := s.fileStorage.Save(ctx, key, upload.Content, upload.Size, upload.ContentType); err != nil {
		return models.StoredFile{}, fmt.Errorf("file storing failed: %w", err)
	}

	record := models.StoredFile{
		ID:           id,
		OriginalName: upload.OriginalName,
		StoredName:   storedName,
		Category:     upload.Category,
		FilePath:     key,
		Size:         upload.Size,
		ContentType:  upload.ContentType,
		UploadedBy:   uploader.ID,
		UploadedAt:   s.now().UTC(),
	}

	created, err := s.fileRepository.CreateFile(ctx, record)
	if err != nil {
		if delErr := s.fileStorage.Delete(ctx, key); delErr != nil {
			log.Err(delErr).Str("func", "*fileService.Upload").Str("key", key).Msg("failed to remove orphaned file")
		}
		return models.StoredFile{}, fmt.Errorf("file record creation failed: %w", err)
	}

	log.Info().Str("file_id", created.ID).Str("category", created.Category).Int64("size", created.Size).Msg("file uploaded")
	return created, nil
}

func (s *fileService) List(ctx context.Context, category string) ([]models.StoredFile, error) {
	if err := s.validator.Validate(ctx, validators.Category(category)); err != nil {
		return nil, err
	}

	files, err := s.fileRepository.ListFiles(ctx, category, MaxFilesListed)
	if err != nil {
		return nil, fmt.Errorf("file listing failed: %w", err)
	}
	return files, nil
}

// Open returns the record and the content of a file. The caller closes the
// reader.
func (s *fileService) Open(ctx context.Context, category, id string) (models.StoredFile, io.ReadCloser, error) {
	if err := s.validator.Validate(ctx, validators.Category(category)); err != nil {
		return models.StoredFile{}, nil, err
	}

	record, err := s.fileRepository.GetFile(ctx, category, id)
	if err != nil {
		return models.StoredFile{}, nil, fmt.Errorf("file lookup failed: %w", err)
	}

	content, err := s.fileStorage.Open(ctx, record.FilePath)
	if err != nil {
		return models.StoredFile{}, nil, fmt.Errorf("file opening failed: %w", err)
	}

	return record, content, nil
}

// storedExtension returns the lower-cased extension of name, or "" when it
// is missing or unusual.
func storedExtension(name string) string {
	ext := path.Ext(strings.ReplaceAll(name, `\`, "/"))
	if !extensionPattern.MatchString(ext) {
		return ""
	}
	return strings.ToLower(ext)
}
