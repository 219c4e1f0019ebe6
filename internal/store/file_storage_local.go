package store

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
)

// localFileStorage keeps uploaded files on the local filesystem under root,
// one subdirectory per category.
type localFileStorage struct {
	root   string
	logger *logger.Logger
}

// NewLocalFileStorage creates root if needed and returns a [FileStorage]
// rooted there.
func NewLocalFileStorage(root string, logger *logger.Logger) (FileStorage, error) {
	if err := os.MkdirAll(root, 0o750); err != nil {
		return nil, fmt.Errorf("error creating files directory %q: %w", root, err)
	}

	logger.Debug().Str("root", root).Msg("using local file storage")
	return &localFileStorage{root: root, logger: logger}, nil
}

func (l *localFileStorage) path(key string) (string, error) {
	if key == "" || !filepath.IsLocal(filepath.FromSlash(key)) {
		return "", fmt.Errorf("%w: %q", ErrInvalidStorageKey, key)
	}
	return filepath.Join(l.root, filepath.FromSlash(key)), nil
}

// Save writes content to key. An existing file with the same key is never
// overwritten. A partially written file is removed on failure.
func (l *localFileStorage) Save(ctx context.Context, key string, content io.Reader, _ int64, _ string) error {
	log := logger.FromContext(ctx)

	path, err := l.path(key)
	if err != nil {
		return err
	}

	if err = os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		log.Err(err).Str("func", "*localFileStorage.Save").Str("key", key).Msg("failed to create category directory")
		return fmt.Errorf("error creating directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o640)
	if err != nil {
		log.Err(err).Str("func", "*localFileStorage.Save").Str("key", key).Msg("failed to create file")
		return fmt.Errorf("error creating file: %w", err)
	}

	_, copyErr := io.Copy(file, readerWithContext(ctx, content))
	closeErr := file.Close()
	if err = errors.Join(copyErr, closeErr); err != nil {
		_ = os.Remove(path)
		log.Err(err).Str("func", "*localFileStorage.Save").Str("key", key).Msg("failed to write file")
		return fmt.Errorf("error writing file: %w", err)
	}

	return nil
}

func (l *localFileStorage) Open(_ context.Context, key string) (io.ReadCloser, error) {
	path, err := l.path(key)
	if err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	return file, nil
}

func (l *localFileStorage) Delete(_ context.Context, key string) error {
	path, err := l.path(key)
	if err != nil {
		return err
	}

	if err = os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("error removing file: %w", err)
	}

	return nil
}

// ctxReader stops a long copy once the request context is done.
type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func readerWithContext(ctx context.Context, r io.Reader) io.Reader {
	return &ctxReader{ctx: ctx, r: r}
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}
	return c.r.Read(p)
}
