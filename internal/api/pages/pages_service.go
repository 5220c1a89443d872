package pages

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

var _ PageSectionService = (*PageSectionServiceImpl)(nil)

type PageSectionService interface {
	ListByPage(ctx context.Context, pageName string) ([]types.PageSection, error)
	Create(ctx context.Context, params types.CreatePageSectionParams) (*types.PageSection, error)
	Update(ctx context.Context, sectionID string, params types.CreatePageSectionParams) (*types.PageSection, error)
	Delete(ctx context.Context, sectionID string) error
}

type PageSectionServiceImpl struct {
	logger *slog.Logger
	repo   PageSectionRepository
}

func NewPageSectionService(repo PageSectionRepository, logger *slog.Logger) *PageSectionServiceImpl {
	return &PageSectionServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

// visibleOrDefault treats an omitted visible flag as shown.
func visibleOrDefault(visible *bool) bool {
	if visible == nil {
		return true
	}
	return *visible
}

func (s *PageSectionServiceImpl) ListByPage(ctx context.Context, pageName string) ([]types.PageSection, error) {
	ctx, span := otel.Tracer("PageSectionService").Start(ctx, "ListByPage", trace.WithAttributes(
		attribute.String("page.name", pageName),
	))
	defer span.End()

	sections, err := s.repo.ListByPage(ctx, pageName)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list page sections")
		return nil, fmt.Errorf("error listing page sections: %w", err)
	}

	span.SetStatus(codes.Ok, "Page sections listed")
	return sections, nil
}

func (s *PageSectionServiceImpl) Create(ctx context.Context, params types.CreatePageSectionParams) (*types.PageSection, error) {
	ctx, span := otel.Tracer("PageSectionService").Start(ctx, "Create", trace.WithAttributes(
		attribute.String("page.name", params.PageName),
		attribute.String("section.name", params.SectionName),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Create"),
		slog.String("pageName", params.PageName), slog.String("sectionName", params.SectionName))

	content := params.Content
	if content == nil {
		content = map[string]any{}
	}

	now := time.Now().UTC()
	section := &types.PageSection{
		ID:          uuid.NewString(),
		PageName:    params.PageName,
		SectionName: params.SectionName,
		SectionType: params.SectionType,
		Content:     content,
		Order:       params.Order,
		Visible:     visibleOrDefault(params.Visible),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.repo.Create(ctx, section); err != nil {
		l.ErrorContext(ctx, "Failed to create page section", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create page section")
		return nil, fmt.Errorf("error creating page section: %w", err)
	}

	span.SetStatus(codes.Ok, "Page section created")
	return section, nil
}

func (s *PageSectionServiceImpl) Update(ctx context.Context, sectionID string, params types.CreatePageSectionParams) (*types.PageSection, error) {
	ctx, span := otel.Tracer("PageSectionService").Start(ctx, "Update", trace.WithAttributes(
		attribute.String("section.id", sectionID),
	))
	defer span.End()

	content := params.Content
	if content == nil {
		content = map[string]any{}
	}

	section := &types.PageSection{
		ID:          sectionID,
		PageName:    params.PageName,
		SectionName: params.SectionName,
		SectionType: params.SectionType,
		Content:     content,
		Order:       params.Order,
		Visible:     visibleOrDefault(params.Visible),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Update(ctx, section); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update page section")
		return nil, fmt.Errorf("error updating page section: %w", err)
	}

	span.SetStatus(codes.Ok, "Page section updated")
	return section, nil
}

func (s *PageSectionServiceImpl) Delete(ctx context.Context, sectionID string) error {
	ctx, span := otel.Tracer("PageSectionService").Start(ctx, "Delete", trace.WithAttributes(
		attribute.String("section.id", sectionID),
	))
	defer span.End()

	if err := s.repo.Delete(ctx, sectionID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete page section")
		return fmt.Errorf("error deleting page section: %w", err)
	}

	span.SetStatus(codes.Ok, "Page section deleted")
	return nil
}
