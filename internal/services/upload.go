package service

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aaravmahajanofficial/templatehub/internal/api/middleware"
	"github.com/aaravmahajanofficial/templatehub/internal/config"
	"github.com/aaravmahajanofficial/templatehub/internal/errors"
	"github.com/aaravmahajanofficial/templatehub/internal/models"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// UploadURLPrefix is where stored media is served from.
const UploadURLPrefix = "/uploads/"

const maxExtensionLength = 10

type UploadService interface {
	SaveFiles(ctx context.Context, files []*multipart.FileHeader) (*models.UploadResponse, error)
}

type uploadService struct {
	cfg *config.Uploads
	now func() time.Time
}

func NewUploadService(cfg *config.Uploads) (UploadService, error) {
	if err := os.MkdirAll(cfg.Dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &uploadService{cfg: cfg, now: time.Now}, nil
}

// SaveFiles stores image and video files. Either every file is stored or none is.
func (s *uploadService) SaveFiles(ctx context.Context, files []*multipart.FileHeader) (*models.UploadResponse, error) {
	logger := middleware.LoggerFromContext(ctx)

	if len(files) == 0 {
		return nil, errors.BadRequestError("No files uploaded")
	}

	if len(files) > s.cfg.MaxFiles {
		return nil, errors.PayloadTooLargeError(fmt.Sprintf("Too many files, at most %d allowed", s.cfg.MaxFiles))
	}

	for _, fh := range files {
		if fh.Size > s.cfg.MaxUploadBytes() {
			return nil, errors.PayloadTooLargeError(fmt.Sprintf("File %s exceeds the %d MB limit", fh.Filename, s.cfg.MaxUploadSizeMB))
		}
	}

	stored := make([]models.UploadedFile, 0, len(files))
	written := make([]string, 0, len(files))

	for _, fh := range files {
		uploaded, path, err := s.save(fh)
		if err != nil {
			for _, p := range written {
				_ = os.Remove(p)
			}
			if _, ok := errors.IsAppError(err); ok {
				return nil, err
			}
			logger.Error("Failed to store upload", slog.String("file", fh.Filename), slog.Any("error", err))
			return nil, errors.InternalError("Failed to store uploaded file").WithError(err)
		}
		written = append(written, path)
		stored = append(stored, *uploaded)
	}

	logger.Info("Media uploaded", slog.Int("count", len(stored)))
	return &models.UploadResponse{Files: stored}, nil
}

func (s *uploadService) save(fh *multipart.FileHeader) (*models.UploadedFile, string, error) {
	src, err := fh.Open()
	if err != nil {
		return nil, "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	detected, err := mimetype.DetectReader(src)
	if err != nil {
		return nil, "", fmt.Errorf("failed to detect content type: %w", err)
	}

	mimeType, _, _ := strings.Cut(detected.String(), ";")
	var mediaType models.MediaType
	switch {
	case strings.HasPrefix(mimeType, "image/"):
		mediaType = models.MediaTypeImage
	case strings.HasPrefix(mimeType, "video/"):
		mediaType = models.MediaTypeVideo
	default:
		return nil, "", errors.UnsupportedMediaTypeError("Unsupported file type: " + mimeType)
	}

	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return nil, "", fmt.Errorf("failed to rewind upload: %w", err)
	}

	name := fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), uuid.NewString(), extensionFor(fh.Filename, detected))
	path := filepath.Join(s.cfg.Dir, name)

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, "", fmt.Errorf("failed to create file: %w", err)
	}

	size, err := io.Copy(dst, src)
	if closeErr := dst.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(path)
		return nil, "", fmt.Errorf("failed to write file: %w", err)
	}

	return &models.UploadedFile{
		URL:          UploadURLPrefix + name,
		OriginalName: fh.Filename,
		MimeType:     mimeType,
		Size:         size,
		Type:         mediaType,
	}, path, nil
}

// extensionFor prefers the sniffed extension so the static file server never
// serves content under a misleading type.
func extensionFor(filename string, detected *mimetype.MIME) string {
	if ext := detected.Extension(); ext != "" {
		return ext
	}
	ext := strings.ToLower(filepath.Ext(filename))
	if len(ext) <= maxExtensionLength {
		return ext
	}
	return ""
}
