package category

import (
	"context"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

// listCap bounds every collection listing to one round trip.
const listCap = 1000

var _ CategoryRepository = (*MongoCategoryRepo)(nil)

type CategoryRepository interface {
	List(ctx context.Context) ([]types.ProductCategory, error)
	Create(ctx context.Context, category *types.ProductCategory) error

	// Delete removes a category by id. Returns ErrNotFound.
	Delete(ctx context.Context, categoryID string) error
}

type MongoCategoryRepo struct {
	logger     *slog.Logger
	categories *mongo.Collection
}

func NewMongoCategoryRepo(db *mongo.Database, logger *slog.Logger) *MongoCategoryRepo {
	return &MongoCategoryRepo{
		logger:     logger,
		categories: db.Collection("categories"),
	}
}

func (r *MongoCategoryRepo) List(ctx context.Context) ([]types.ProductCategory, error) {
	ctx, span := otel.Tracer("CategoryRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "categories"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "List"))

	cursor, err := r.categories.Find(ctx, bson.M{}, options.Find().SetLimit(listCap))
	if err != nil {
		l.ErrorContext(ctx, "Failed to query categories", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error listing categories: %w", err)
	}

	categories := []types.ProductCategory{}
	if err := cursor.All(ctx, &categories); err != nil {
		l.ErrorContext(ctx, "Failed to decode categories", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Cursor decode failed")
		return nil, fmt.Errorf("database error decoding categories: %w", err)
	}

	span.SetStatus(codes.Ok, "Categories listed")
	return categories, nil
}

func (r *MongoCategoryRepo) Create(ctx context.Context, category *types.ProductCategory) error {
	ctx, span := otel.Tracer("CategoryRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "categories"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Create"), slog.String("categoryID", category.ID))

	if _, err := r.categories.InsertOne(ctx, category); err != nil {
		l.ErrorContext(ctx, "Failed to insert category", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB insert failed")
		return fmt.Errorf("database error inserting category: %w", err)
	}

	l.InfoContext(ctx, "Category created")
	span.SetStatus(codes.Ok, "Category created")
	return nil
}

func (r *MongoCategoryRepo) Delete(ctx context.Context, categoryID string) error {
	ctx, span := otel.Tracer("CategoryRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "categories"),
		attribute.String("db.category.id", categoryID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Delete"), slog.String("categoryID", categoryID))

	result, err := r.categories.DeleteOne(ctx, bson.M{"id": categoryID})
	if err != nil {
		l.ErrorContext(ctx, "Failed to delete category", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB delete failed")
		return fmt.Errorf("database error deleting category: %w", err)
	}
	if result.DeletedCount == 0 {
		l.WarnContext(ctx, "Category not found for delete")
		span.SetStatus(codes.Error, "Category not found")
		return fmt.Errorf("category not found: %w", types.ErrNotFound)
	}

	l.InfoContext(ctx, "Category deleted")
	span.SetStatus(codes.Ok, "Category deleted")
	return nil
}
