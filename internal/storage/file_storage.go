// Package storage persists uploaded files on local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"mentorly/internal/models"
	"mentorly/internal/observability"

	"github.com/google/uuid"
)

const maxExtLen = 10

// FileStorage writes uploads into Dir and serves them under PublicBaseURL.
type FileStorage struct {
	dir           string
	publicBaseURL string
	maxBytes      int64
}

// NewFileStorage creates dir if needed.
func NewFileStorage(dir, publicBaseURL string, maxBytes int64) (*FileStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("could not create upload directory: %w", err)
	}
	return &FileStorage{
		dir:           dir,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
		maxBytes:      maxBytes,
	}, nil
}

// Dir returns the directory uploads are written to.
func (s *FileStorage) Dir() string {
	return s.dir
}

// Store copies r to a new uuid-named file keeping the sanitized extension of
// filename, and returns the public URL of the stored file.
func (s *FileStorage) Store(ctx context.Context, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := uuid.NewString() + sanitizeExt(filename)
	path := filepath.Join(s.dir, name)

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return "", fmt.Errorf("could not create file: %w", err)
	}

	n, err := io.Copy(f, io.LimitReader(r, s.maxBytes+1))
	closeErr := f.Close()
	switch {
	case err != nil:
		_ = os.Remove(path)
		return "", fmt.Errorf("could not write file: %w", err)
	case closeErr != nil:
		_ = os.Remove(path)
		return "", fmt.Errorf("could not write file: %w", closeErr)
	case n == 0:
		_ = os.Remove(path)
		return "", models.NewValidationError("file is empty")
	case n > s.maxBytes:
		_ = os.Remove(path)
		return "", models.NewValidationError(fmt.Sprintf("file exceeds the %d byte limit", s.maxBytes))
	}

	observability.UploadedBytes.Observe(float64(n))
	return s.publicBaseURL + "/" + name, nil
}

// sanitizeExt keeps a short lowercase alphanumeric extension, or nothing.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(filepath.Ext(filepath.Base(filename)))
	if len(ext) < 2 || len(ext) > maxExtLen+1 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
