package category

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

	"github.com/h1zik/ELLAVERABEAUTY/internal/api"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

var _ CategoryService = (*CategoryServiceImpl)(nil)

type CategoryService interface {
	List(ctx context.Context) ([]types.ProductCategory, error)
	Create(ctx context.Context, params types.CreateCategoryParams) (*types.ProductCategory, error)
	Delete(ctx context.Context, categoryID string) error
}

type CategoryServiceImpl struct {
	logger *slog.Logger
	repo   CategoryRepository
}

func NewCategoryService(repo CategoryRepository, logger *slog.Logger) *CategoryServiceImpl {
	return &CategoryServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *CategoryServiceImpl) List(ctx context.Context) ([]types.ProductCategory, error) {
	ctx, span := otel.Tracer("CategoryService").Start(ctx, "List")
	defer span.End()

	categories, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list categories")
		return nil, fmt.Errorf("error listing categories: %w", err)
	}

	span.SetStatus(codes.Ok, "Categories listed")
	return categories, nil
}

func (s *CategoryServiceImpl) Create(ctx context.Context, params types.CreateCategoryParams) (*types.ProductCategory, error) {
	ctx, span := otel.Tracer("CategoryService").Start(ctx, "Create", trace.WithAttributes(
		attribute.String("category.name", params.Name),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Create"), slog.String("name", params.Name))

	category := &types.ProductCategory{
		ID:          uuid.NewString(),
		Name:        params.Name,
		Slug:        api.Slugify(params.Name),
		Description: params.Description,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, category); err != nil {
		l.ErrorContext(ctx, "Failed to create category", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create category")
		return nil, fmt.Errorf("error creating category: %w", err)
	}

	span.SetStatus(codes.Ok, "Category created")
	return category, nil
}

func (s *CategoryServiceImpl) Delete(ctx context.Context, categoryID string) error {
	ctx, span := otel.Tracer("CategoryService").Start(ctx, "Delete", trace.WithAttributes(
		attribute.String("category.id", categoryID),
	))
	defer span.End()

	if err := s.repo.Delete(ctx, categoryID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete category")
		return fmt.Errorf("error deleting category: %w", err)
	}

	span.SetStatus(codes.Ok, "Category deleted")
	return nil
}
