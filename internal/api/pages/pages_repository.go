package pages

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

const listCap = 1000

var _ PageSectionRepository = (*MongoPageSectionRepo)(nil)

type PageSectionRepository interface {
	// ListByPage returns a page's sections in display order.
	ListByPage(ctx context.Context, pageName string) ([]types.PageSection, error)
	Create(ctx context.Context, section *types.PageSection) error

	// Update replaces every stored field of the section. Returns ErrNotFound.
	Update(ctx context.Context, section *types.PageSection) error
	Delete(ctx context.Context, sectionID string) error
}

type MongoPageSectionRepo struct {
	logger   *slog.Logger
	sections *mongo.Collection
}

func NewMongoPageSectionRepo(db *mongo.Database, logger *slog.Logger) *MongoPageSectionRepo {
	return &MongoPageSectionRepo{
		logger:   logger,
		sections: db.Collection("page_sections"),
	}
}

func (r *MongoPageSectionRepo) ListByPage(ctx context.Context, pageName string) ([]types.PageSection, error) {
	ctx, span := otel.Tracer("PageSectionRepo").Start(ctx, "ListByPage", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "page_sections"),
		attribute.String("page.name", pageName),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "ListByPage"), slog.String("pageName", pageName))

	opts := options.Find().
		SetSort(bson.D{{Key: "order", Value: 1}}).
		SetLimit(listCap)

	cursor, err := r.sections.Find(ctx, bson.M{"page_name": pageName}, opts)
	if err != nil {
		l.ErrorContext(ctx, "Failed to query page sections", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error listing page sections: %w", err)
	}

	sections := []types.PageSection{}
	if err := cursor.All(ctx, &sections); err != nil {
		l.ErrorContext(ctx, "Failed to decode page sections", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Cursor decode failed")
		return nil, fmt.Errorf("database error decoding page sections: %w", err)
	}

	span.SetStatus(codes.Ok, "Page sections listed")
	return sections, nil
}

func (r *MongoPageSectionRepo) Create(ctx context.Context, section *types.PageSection) error {
	ctx, span := otel.Tracer("PageSectionRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "page_sections"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Create"), slog.String("sectionID", section.ID))

	if _, err := r.sections.InsertOne(ctx, section); err != nil {
		l.ErrorContext(ctx, "Failed to insert page section", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB insert failed")
		return fmt.Errorf("database error inserting page section: %w", err)
	}

	l.InfoContext(ctx, "Page section created")
	span.SetStatus(codes.Ok, "Page section created")
	return nil
}

func (r *MongoPageSectionRepo) Update(ctx context.Context, section *types.PageSection) error {
	ctx, span := otel.Tracer("PageSectionRepo").Start(ctx, "Update", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "page_sections"),
		attribute.String("db.section.id", section.ID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Update"), slog.String("sectionID", section.ID))

	set := bson.M{
		"page_name":    section.PageName,
		"section_name": section.SectionName,
		"section_type": section.SectionType,
		"content":      section.Content,
		"order":        section.Order,
		"visible":      section.Visible,
		"updated_at":   section.UpdatedAt,
	}

	result, err := r.sections.UpdateOne(ctx, bson.M{"id": section.ID}, bson.M{"$set": set})
	if err != nil {
		l.ErrorContext(ctx, "Failed to update page section", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB update failed")
		return fmt.Errorf("database error updating page section: %w", err)
	}
	if result.MatchedCount == 0 {
		span.SetStatus(codes.Error, "Page section not found")
		return fmt.Errorf("page section not found: %w", types.ErrNotFound)
	}

	l.InfoContext(ctx, "Page section updated")
	span.SetStatus(codes.Ok, "Page section updated")
	return nil
}

func (r *MongoPageSectionRepo) Delete(ctx context.Context, sectionID string) error {
	ctx, span := otel.Tracer("PageSectionRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "page_sections"),
		attribute.String("db.section.id", sectionID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Delete"), slog.String("sectionID", sectionID))

	result, err := r.sections.DeleteOne(ctx, bson.M{"id": sectionID})
	if err != nil {
		l.ErrorContext(ctx, "Failed to delete page section", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB delete failed")
		return fmt.Errorf("database error deleting page section: %w", err)
	}
	if result.DeletedCount == 0 {
		l.WarnContext(ctx, "Page section not found for delete")
		span.SetStatus(codes.Error, "Page section not found")
		return fmt.Errorf("page section not found: %w", types.ErrNotFound)
	}

	l.InfoContext(ctx, "Page section deleted")
	span.SetStatus(codes.Ok, "Page section deleted")
	return nil
}
