package product

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

var _ ProductService = (*ProductServiceImpl)(nil)

type ProductService interface {
	List(ctx context.Context, filter types.ProductFilter) ([]types.Product, error)
	Get(ctx context.Context, productID string) (*types.Product, error)
	Create(ctx context.Context, params types.CreateProductParams) (*types.Product, error)
	Update(ctx context.Context, productID string, params types.CreateProductParams) (*types.Product, error)
	Delete(ctx context.Context, productID string) error
	AddImage(ctx context.Context, productID, imageURL string) ([]string, error)
	AddDocument(ctx context.Context, productID string, params types.AddProductDocumentParams) ([]types.ProductDocument, error)
	RemoveDocument(ctx context.Context, productID, documentID string) ([]types.ProductDocument, error)
}

type ProductServiceImpl struct {
	logger *slog.Logger
	repo   ProductRepository
}

func NewProductService(repo ProductRepository, logger *slog.Logger) *ProductServiceImpl {
	return &ProductServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ProductServiceImpl) List(ctx context.Context, filter types.ProductFilter) ([]types.Product, error) {
	ctx, span := otel.Tracer("ProductService").Start(ctx, "List")
	defer span.End()

	products, err := s.repo.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list products")
		return nil, fmt.Errorf("error listing products: %w", err)
	}

	span.SetStatus(codes.Ok, "Products listed")
	return products, nil
}

func (s *ProductServiceImpl) Get(ctx context.Context, productID string) (*types.Product, error) {
	ctx, span := otel.Tracer("ProductService").Start(ctx, "Get", trace.WithAttributes(
		attribute.String("product.id", productID),
	))
	defer span.End()

	product, err := s.repo.Get(ctx, productID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch product")
		return nil, fmt.Errorf("error fetching product: %w", err)
	}

	span.SetStatus(codes.Ok, "Product fetched")
	return product, nil
}

func (s *ProductServiceImpl) Create(ctx context.Context, params types.CreateProductParams) (*types.Product, error) {
	ctx, span := otel.Tracer("ProductService").Start(ctx, "Create", trace.WithAttributes(
		attribute.String("product.name", params.Name),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Create"), slog.String("name", params.Name))

	now := time.Now().UTC()
	product := &types.Product{
		ID:               uuid.NewString(),
		Name:             params.Name,
		Slug:             api.Slugify(params.Name),
		CategoryID:       params.CategoryID,
		Description:      params.Description,
		Benefits:         params.Benefits,
		KeyIngredients:   params.KeyIngredients,
		PackagingOptions: params.PackagingOptions,
		Images:           []string{},
		Documents:        []types.ProductDocument{},
		Featured:         params.Featured,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		l.ErrorContext(ctx, "Failed to create product", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create product")
		return nil, fmt.Errorf("error creating product: %w", err)
	}

	span.SetStatus(codes.Ok, "Product created")
	return product, nil
}

func (s *ProductServiceImpl) Update(ctx context.Context, productID string, params types.CreateProductParams) (*types.Product, error) {
	ctx, span := otel.Tracer("ProductService").Start(ctx, "Update", trace.WithAttributes(
		attribute.String("product.id", productID),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Update"), slog.String("productID", productID))

	product := &types.Product{
		ID:               productID,
		Name:             params.Name,
		Slug:             api.Slugify(params.Name),
		CategoryID:       params.CategoryID,
		Description:      params.Description,
		Benefits:         params.Benefits,
		KeyIngredients:   params.KeyIngredients,
		PackagingOptions: params.PackagingOptions,
		Featured:         params.Featured,
		UpdatedAt:        time.Now().UTC(),
	}

	if err := s.repo.Update(ctx, product); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update product")
		return nil, fmt.Errorf("error updating product: %w", err)
	}

	updated, err := s.repo.Get(ctx, productID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to reload updated product", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to reload product")
		return nil, fmt.Errorf("error reloading product: %w", err)
	}

	span.SetStatus(codes.Ok, "Product updated")
	return updated, nil
}

func (s *ProductServiceImpl) Delete(ctx context.Context, productID string) error {
	ctx, span := otel.Tracer("ProductService").Start(ctx, "Delete", trace.WithAttributes(
		attribute.String("product.id", productID),
	))
	defer span.End()

	if err := s.repo.Delete(ctx, productID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete product")
		return fmt.Errorf("error deleting product: %w", err)
	}

	span.SetStatus(codes.Ok, "Product deleted")
	return nil
}

func (s *ProductServiceImpl) AddImage(ctx context.Context, productID, imageURL string) ([]string, error) {
	ctx, span := otel.Tracer("ProductService").Start(ctx, "AddImage", trace.WithAttributes(
		attribute.String("product.id", productID),
	))
	defer span.End()

	images, err := s.repo.AddImage(ctx, productID, imageURL)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to add product image")
		return nil, fmt.Errorf("error adding product image: %w", err)
	}

	span.SetStatus(codes.Ok, "Product image added")
	return images, nil
}

func (s *ProductServiceImpl) AddDocument(ctx context.Context, productID string, params types.AddProductDocumentParams) ([]types.ProductDocument, error) {
	ctx, span := otel.Tracer("ProductService").Start(ctx, "AddDocument", trace.WithAttributes(
		attribute.String("product.id", productID),
	))
	defer span.End()

	doc := types.ProductDocument{
		ID:         uuid.NewString(),
		Name:       params.Name,
		URL:        params.URL,
		Type:       params.Type,
		UploadedAt: time.Now().UTC(),
	}

	documents, err := s.repo.AddDocument(ctx, productID, doc)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to add product document")
		return nil, fmt.Errorf("error adding product document: %w", err)
	}

	span.SetStatus(codes.Ok, "Product document added")
	return documents, nil
}

func (s *ProductServiceImpl) RemoveDocument(ctx context.Context, productID, documentID string) ([]types.ProductDocument, error) {
	ctx, span := otel.Tracer("ProductService").Start(ctx, "RemoveDocument", trace.WithAttributes(
		attribute.String("product.id", productID),
		attribute.String("document.id", documentID),
	))
	defer span.End()

	documents, err := s.repo.RemoveDocument(ctx, productID, documentID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to remove product document")
		return nil, fmt.Errorf("error removing product document: %w", err)
	}

	span.SetStatus(codes.Ok, "Product document removed")
	return documents, nil
}
