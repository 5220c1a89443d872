package review

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

var _ ReviewRepository = (*MongoReviewRepo)(nil)

type ReviewRepository interface {
	List(ctx context.Context) ([]types.Review, error)
	Create(ctx context.Context, review *types.Review) error

	// Update replaces every stored field of the review. Returns ErrNotFound.
	Update(ctx context.Context, review *types.Review) error
	Delete(ctx context.Context, reviewID string) error
}

type MongoReviewRepo struct {
	logger  *slog.Logger
	reviews *mongo.Collection
}

func NewMongoReviewRepo(db *mongo.Database, logger *slog.Logger) *MongoReviewRepo {
	return &MongoReviewRepo{
		logger:  logger,
		reviews: db.Collection("reviews"),
	}
}

func (r *MongoReviewRepo) List(ctx context.Context) ([]types.Review, error) {
	ctx, span := otel.Tracer("ReviewRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "reviews"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "List"))

	cursor, err := r.reviews.Find(ctx, bson.M{}, options.Find().SetLimit(listCap))
	if err != nil {
		l.ErrorContext(ctx, "Failed to query reviews", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error listing reviews: %w", err)
	}

	reviews := []types.Review{}
	if err := cursor.All(ctx, &reviews); err != nil {
		l.ErrorContext(ctx, "Failed to decode reviews", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Cursor decode failed")
		return nil, fmt.Errorf("database error decoding reviews: %w", err)
	}

	span.SetStatus(codes.Ok, "Reviews listed")
	return reviews, nil
}

func (r *MongoReviewRepo) Create(ctx context.Context, review *types.Review) error {
	ctx, span := otel.Tracer("ReviewRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "reviews"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Create"), slog.String("reviewID", review.ID))

	if _, err := r.reviews.InsertOne(ctx, review); err != nil {
		l.ErrorContext(ctx, "Failed to insert review", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB insert failed")
		return fmt.Errorf("database error inserting review: %w", err)
	}

	l.InfoContext(ctx, "Review created")
	span.SetStatus(codes.Ok, "Review created")
	return nil
}

func (r *MongoReviewRepo) Update(ctx context.Context, review *types.Review) error {
	ctx, span := otel.Tracer("ReviewRepo").Start(ctx, "Update", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "reviews"),
		attribute.String("db.review.id", review.ID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Update"), slog.String("reviewID", review.ID))

	set := bson.M{
		"customer_name": review.CustomerName,
		"review_text":   review.ReviewText,
		"rating":        review.Rating,
		"position":      review.Position,
		"company":       review.Company,
		"photo_url":     review.PhotoURL,
	}

	result, err := r.reviews.UpdateOne(ctx, bson.M{"id": review.ID}, bson.M{"$set": set})
	if err != nil {
		l.ErrorContext(ctx, "Failed to update review", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB update failed")
		return fmt.Errorf("database error updating review: %w", err)
	}
	if result.MatchedCount == 0 {
		span.SetStatus(codes.Error, "Review not found")
		return fmt.Errorf("review not found: %w", types.ErrNotFound)
	}

	l.InfoContext(ctx, "Review updated")
	span.SetStatus(codes.Ok, "Review updated")
	return nil
}

func (r *MongoReviewRepo) Delete(ctx context.Context, reviewID string) error {
	ctx, span := otel.Tracer("ReviewRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "reviews"),
		attribute.String("db.review.id", reviewID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Delete"), slog.String("reviewID", reviewID))

	result, err := r.reviews.DeleteOne(ctx, bson.M{"id": reviewID})
	if err != nil {
		l.ErrorContext(ctx, "Failed to delete review", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB delete failed")
		return fmt.Errorf("database error deleting review: %w", err)
	}
	if result.DeletedCount == 0 {
		l.WarnContext(ctx, "Review not found for delete")
		span.SetStatus(codes.Error, "Review not found")
		return fmt.Errorf("review not found: %w", types.ErrNotFound)
	}

	l.InfoContext(ctx, "Review deleted")
	span.SetStatus(codes.Ok, "Review deleted")
	return nil
}
