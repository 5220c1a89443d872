package settings

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

var _ SettingsService = (*SettingsServiceImpl)(nil)

type SettingsService interface {
	// GetTheme returns the theme document, materializing defaults on a miss.
	GetTheme(ctx context.Context) (*types.ThemeSettings, error)

	// UpdateTheme merges the non-nil fields and returns the full document.
	UpdateTheme(ctx context.Context, params types.UpdateThemeParams) (*types.ThemeSettings, error)

	GetSiteSettings(ctx context.Context) (*types.SiteSettings, error)
	UpdateSiteSettings(ctx context.Context, params types.UpdateSiteSettingsParams) (*types.SiteSettings, error)
}

type SettingsServiceImpl struct {
	logger *slog.Logger
	repo   SettingsRepository
}

// NewSettingsService creates a new settings service instance.
func NewSettingsService(repo SettingsRepository, logger *slog.Logger) *SettingsServiceImpl {
	return &SettingsServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *SettingsServiceImpl) GetTheme(ctx context.Context) (*types.ThemeSettings, error) {
	ctx, span := otel.Tracer("SettingsService").Start(ctx, "GetTheme")
	defer span.End()

	theme, err := s.repo.GetTheme(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch theme settings", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch theme settings")
		return nil, fmt.Errorf("error fetching theme settings: %w", err)
	}

	span.SetStatus(codes.Ok, "Theme settings fetched")
	return theme, nil
}

func (s *SettingsServiceImpl) UpdateTheme(ctx context.Context, params types.UpdateThemeParams) (*types.ThemeSettings, error) {
	ctx, span := otel.Tracer("SettingsService").Start(ctx, "UpdateTheme")
	defer span.End()

	theme, err := s.repo.UpdateTheme(ctx, params)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to update theme settings", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update theme settings")
		return nil, fmt.Errorf("error updating theme settings: %w", err)
	}

	span.SetStatus(codes.Ok, "Theme settings updated")
	return theme, nil
}

func (s *SettingsServiceImpl) GetSiteSettings(ctx context.Context) (*types.SiteSettings, error) {
	ctx, span := otel.Tracer("SettingsService").Start(ctx, "GetSiteSettings")
	defer span.End()

	site, err := s.repo.GetSiteSettings(ctx)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to fetch site settings", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch site settings")
		return nil, fmt.Errorf("error fetching site settings: %w", err)
	}

	span.SetStatus(codes.Ok, "Site settings fetched")
	return site, nil
}

func (s *SettingsServiceImpl) UpdateSiteSettings(ctx context.Context, params types.UpdateSiteSettingsParams) (*types.SiteSettings, error) {
	ctx, span := otel.Tracer("SettingsService").Start(ctx, "UpdateSiteSettings")
	defer span.End()

	site, err := s.repo.UpdateSiteSettings(ctx, params)
	if err != nil {
		s.logger.ErrorContext(ctx, "Failed to update site settings", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update site settings")
		return nil, fmt.Errorf("error updating site settings: %w", err)
	}

	span.SetStatus(codes.Ok, "Site settings updated")
	return site, nil
}
