package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// FileStorage abstracts upload destinations.
type FileStorage interface {
	Save(ctx context.Context, name string, reader io.Reader) (string, error)
}

// LocalStorage writes uploads to a server-local directory and returns
// the public relative path under which they are served statically.
type LocalStorage struct {
	dir     string
	baseURL string
}

// NewLocalStorage prepares the upload directory and returns a storage
// rooted in it.
func NewLocalStorage(dir, baseURL string) (*LocalStorage, error) {
	if dir == "" {
		return nil, errors.New("upload directory must not be empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to prepare upload directory: %w", err)
	}

	return &LocalStorage{dir: dir, baseURL: strings.TrimSuffix(baseURL, "/")}, nil
}

// Save streams the payload to disk under the given name.
func (s *LocalStorage) Save(ctx context.Context, name string, reader io.Reader) (string, error) {
	target := filepath.Join(s.dir, filepath.Base(name))

	out, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("failed to create upload file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, reader); err != nil {
		return "", fmt.Errorf("failed to write upload file: %w", err)
	}

	return s.baseURL + "/" + filepath.Base(name), nil
}

// UploadService stores post attachments.
type UploadService interface {
	Store(ctx context.Context, file *multipart.FileHeader) (string, error)
}

type uploadService struct {
	storage FileStorage
	logger  zerolog.Logger
	tracer  trace.Tracer
	now     func() time.Time
}

// NewUploadService constructs an upload service over the given storage.
func NewUploadService(storage FileStorage, logger zerolog.Logger) UploadService {
	return &uploadService{
		storage: storage,
		logger:  logger.With().Str("component", "upload_service").Logger(),
		tracer:  otel.Tracer("github.com/jihoon-lab/coinboard-api/internal/service/upload"),
		now:     time.Now,
	}
}

// Store persists the attachment under a timestamp-derived name and
// returns its public path. The millisecond timestamp plus the original
// extension keeps concurrent uploads from colliding; when the client
// sent no extension the detected content type supplies one.
func (s *uploadService) Store(ctx context.Context, file *multipart.FileHeader) (string, error) {
	ctx, span := s.tracer.Start(ctx, "upload.store")
	defer span.End()

	if file == nil {
		err := errors.New("file is required")
		span.RecordError(err)
		span.SetStatus(codes.Error, "validation failed")
		return "", err
	}

	span.SetAttributes(
		attribute.String("upload.original_name", strings.TrimSpace(file.Filename)),
		attribute.Int64("upload.request_size", file.Size),
	)

	handle, err := file.Open()
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "open failed")
		return "", err
	}
	defer handle.Close()

	buf := bytes.NewBuffer(nil)
	if _, err := io.Copy(buf, handle); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "read failed")
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext == "" {
		ext = mimetype.Detect(buf.Bytes()).Extension()
	}

	name := fmt.Sprintf("%d%s", s.now().UnixMilli(), ext)

	path, err := s.storage.Save(ctx, name, bytes.NewReader(buf.Bytes()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "storage failed")
		return "", err
	}

	span.SetAttributes(attribute.String("upload.stored_path", path))
	span.SetStatus(codes.Ok, "stored")
	s.logger.Info().Str("path", path).Int("size", buf.Len()).Msg("attachment stored")

	return path, nil
}
