package generativeAI

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/h1zik/ELLAVERABEAUTY/app/tracer"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

var _ AIService = (*AIServiceImpl)(nil)

type AIService interface {
	// GenerateContent proxies a copywriting request.
	// Returns ErrServiceUnavailable when no API key is configured and
	// ErrUpstream when the provider call fails.
	GenerateContent(ctx context.Context, params types.GenerateContentRequest) (string, error)

	// GenerateImage proxies an image request and returns base64 bytes.
	GenerateImage(ctx context.Context, params types.GenerateImageRequest) (string, error)
}

// AIServiceImpl carries a nil client when GOOGLE_GEMINI_API_KEY was
// never set, so the handlers can answer with a clean 503.
type AIServiceImpl struct {
	logger *slog.Logger
	client *AIClient
}

func NewAIService(client *AIClient, logger *slog.Logger) *AIServiceImpl {
	return &AIServiceImpl{
		logger: logger,
		client: client,
	}
}

func (s *AIServiceImpl) GenerateContent(ctx context.Context, params types.GenerateContentRequest) (string, error) {
	ctx, span := otel.Tracer("AIService").Start(ctx, "GenerateContent", trace.WithAttributes(
		attribute.String("content.type", params.ContentType),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "GenerateContent"), slog.String("contentType", params.ContentType))

	if s.client == nil {
		span.SetStatus(codes.Error, "AI service not configured")
		return "", fmt.Errorf("AI service not configured: %w", types.ErrServiceUnavailable)
	}

	content, err := s.client.GenerateContent(ctx, params.Prompt, params.ContentType)
	if err != nil {
		l.ErrorContext(ctx, "Content generation failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Content generation failed")
		return "", fmt.Errorf("AI generation failed: %w: %v", types.ErrUpstream, err)
	}

	tracer.Metrics().AIGenerationsTotal.Add(ctx, 1)

	span.SetStatus(codes.Ok, "Content generated")
	return content, nil
}

func (s *AIServiceImpl) GenerateImage(ctx context.Context, params types.GenerateImageRequest) (string, error) {
	ctx, span := otel.Tracer("AIService").Start(ctx, "GenerateImage")
	defer span.End()

	l := s.logger.With(slog.String("method", "GenerateImage"))

	if s.client == nil {
		span.SetStatus(codes.Error, "AI service not configured")
		return "", fmt.Errorf("AI service not configured: %w", types.ErrServiceUnavailable)
	}

	image, err := s.client.GenerateImage(ctx, params.Prompt)
	if err != nil {
		l.ErrorContext(ctx, "Image generation failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Image generation failed")
		return "", fmt.Errorf("image generation failed: %w: %v", types.ErrUpstream, err)
	}

	tracer.Metrics().AIGenerationsTotal.Add(ctx, 1)

	span.SetStatus(codes.Ok, "Image generated")
	return image, nil
}
