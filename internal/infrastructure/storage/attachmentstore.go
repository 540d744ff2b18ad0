// Package storage persists uploaded ticket attachments on the local
// filesystem and hands back the URL path stored on the ticket record.
// Serving those paths back as bytes is the static file server's job.
package storage

import (
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"helpdesk/internal/shared/config"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

type AttachmentStore struct {
	dir       string
	urlPrefix string
	maxSize   int64
	logger    logger.Interface
}

func NewAttachmentStore(cfg *config.UploadConfig, log logger.Interface) (*AttachmentStore, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}

	return &AttachmentStore{
		dir:       cfg.Dir,
		urlPrefix: cfg.URLPrefix,
		maxSize:   int64(cfg.MaxSizeMB) * 1024 * 1024,
		logger:    log,
	}, nil
}

// SaveUpload validates and stores one uploaded file, returning the URL path
// to keep on the ticket record (e.g. "/uploads/1700000000000-123456789-a.png").
func (s *AttachmentStore) SaveUpload(fileHeader *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		return "", apperrors.NewValidationError("only image files are allowed")
	}
	if fileHeader.Size > s.maxSize {
		return "", apperrors.NewValidationError(
			fmt.Sprintf("file exceeds maximum size of %d bytes", s.maxSize))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return "", apperrors.NewStorageError("failed to open uploaded file", err.Error())
	}
	defer src.Close()

	name := fmt.Sprintf("%d-%d-%s",
		time.Now().UnixMilli(), rand.Intn(1_000_000_000), sanitizeFilename(fileHeader.Filename))

	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", apperrors.NewStorageError("failed to create attachment file", err.Error())
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", apperrors.NewStorageError("failed to write attachment file", err.Error())
	}

	return path.Join(s.urlPrefix, name), nil
}

// Remove deletes the file behind a stored attachment path. Best-effort:
// callers treat a failure as non-fatal and the miss is only logged.
func (s *AttachmentStore) Remove(urlPath string) error {
	name := path.Base(urlPath)
	if name == "." || name == "/" || name == ".." {
		return fmt.Errorf("invalid attachment path: %s", urlPath)
	}

	if err := os.Remove(filepath.Join(s.dir, name)); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to remove attachment: %w", err)
	}

	s.logger.Debugw("attachment removed", "path", urlPath)
	return nil
}

// Dir exposes the storage directory for the static file route.
func (s *AttachmentStore) Dir() string {
	return s.dir
}

func sanitizeFilename(name string) string {
	base := filepath.Base(name)
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.' || r == '-' || r == '_':
			return r
		default:
			return '_'
		}
	}, base)
}
