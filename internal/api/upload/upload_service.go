package upload

import (
	"context"
	"encoding/base64"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

const (
	// MaxFileSize caps general document uploads.
	MaxFileSize = 10 << 20

	// MaxImageSize caps image uploads, which end up inlined in pages.
	MaxImageSize = 2 << 20
)

// contentTypes maps file extensions to the MIME type embedded in the
// data URL. Anything else falls back to application/octet-stream.
var contentTypes = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
	".xls":  "application/vnd.ms-excel",
	".xlsx": "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	".txt":  "text/plain",
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".gif":  "image/gif",
	".webp": "image/webp",
	".svg":  "image/svg+xml",
}

// imageExtensions is the allow-list for the image endpoint.
var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

var _ UploadService = (*UploadServiceImpl)(nil)

type UploadService interface {
	// EncodeFile turns any supported document into a data URL.
	// Returns ErrTooLarge past MaxFileSize.
	EncodeFile(ctx context.Context, filename string, data []byte) (*types.UploadResult, error)

	// EncodeImage is EncodeFile restricted to image extensions and
	// MaxImageSize. Returns ErrUnsupportedMedia for anything else.
	EncodeImage(ctx context.Context, filename string, data []byte) (*types.UploadResult, error)
}

type UploadServiceImpl struct {
	logger *slog.Logger
}

func NewUploadService(logger *slog.Logger) *UploadServiceImpl {
	return &UploadServiceImpl{logger: logger}
}

func contentTypeFor(filename string) string {
	ext := strings.ToLower(filepath.Ext(filename))
	if ct, ok := contentTypes[ext]; ok {
		return ct
	}
	return "application/octet-stream"
}

func encode(filename string, data []byte) *types.UploadResult {
	contentType := contentTypeFor(filename)
	dataURL := fmt.Sprintf("data:%s;base64,%s", contentType, base64.StdEncoding.EncodeToString(data))

	kind := "document"
	if imageExtensions[strings.ToLower(filepath.Ext(filename))] {
		kind = "image"
	}

	return &types.UploadResult{
		Success:  true,
		Filename: filename,
		DataURL:  dataURL,
		Size:     len(data),
		Type:     kind,
	}
}

func (s *UploadServiceImpl) EncodeFile(ctx context.Context, filename string, data []byte) (*types.UploadResult, error) {
	_, span := otel.Tracer("UploadService").Start(ctx, "EncodeFile", trace.WithAttributes(
		attribute.String("upload.filename", filename),
		attribute.Int("upload.size", len(data)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "EncodeFile"), slog.String("filename", filename))

	if len(data) > MaxFileSize {
		span.SetStatus(codes.Error, "File too large")
		return nil, fmt.Errorf("file exceeds %d bytes: %w", MaxFileSize, types.ErrTooLarge)
	}

	result := encode(filename, data)
	l.InfoContext(ctx, "File encoded", slog.Int("size", result.Size), slog.String("type", result.Type))
	span.SetStatus(codes.Ok, "File encoded")
	return result, nil
}

func (s *UploadServiceImpl) EncodeImage(ctx context.Context, filename string, data []byte) (*types.UploadResult, error) {
	_, span := otel.Tracer("UploadService").Start(ctx, "EncodeImage", trace.WithAttributes(
		attribute.String("upload.filename", filename),
		attribute.Int("upload.size", len(data)),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "EncodeImage"), slog.String("filename", filename))

	ext := strings.ToLower(filepath.Ext(filename))
	if !imageExtensions[ext] {
		span.SetStatus(codes.Error, "Unsupported image type")
		return nil, fmt.Errorf("unsupported image extension %q: %w", ext, types.ErrUnsupportedMedia)
	}
	if len(data) > MaxImageSize {
		span.SetStatus(codes.Error, "Image too large")
		return nil, fmt.Errorf("image exceeds %d bytes: %w", MaxImageSize, types.ErrTooLarge)
	}

	result := encode(filename, data)
	l.InfoContext(ctx, "Image encoded", slog.Int("size", result.Size), slog.String("type", result.Type))
	span.SetStatus(codes.Ok, "Image encoded")
	return result, nil
}
