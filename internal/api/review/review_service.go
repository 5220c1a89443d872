package review

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

// defaultRating applies when the submitter leaves rating unset.
const defaultRating = 5

var _ ReviewService = (*ReviewServiceImpl)(nil)

type ReviewService interface {
	List(ctx context.Context) ([]types.Review, error)
	Create(ctx context.Context, params types.CreateReviewParams) (*types.Review, error)
	Update(ctx context.Context, reviewID string, params types.CreateReviewParams) (*types.Review, error)
	Delete(ctx context.Context, reviewID string) error
}

type ReviewServiceImpl struct {
	logger *slog.Logger
	repo   ReviewRepository
}

func NewReviewService(repo ReviewRepository, logger *slog.Logger) *ReviewServiceImpl {
	return &ReviewServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ReviewServiceImpl) List(ctx context.Context) ([]types.Review, error) {
	ctx, span := otel.Tracer("ReviewService").Start(ctx, "List")
	defer span.End()

	reviews, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list reviews")
		return nil, fmt.Errorf("error listing reviews: %w", err)
	}

	span.SetStatus(codes.Ok, "Reviews listed")
	return reviews, nil
}

func (s *ReviewServiceImpl) Create(ctx context.Context, params types.CreateReviewParams) (*types.Review, error) {
	ctx, span := otel.Tracer("ReviewService").Start(ctx, "Create", trace.WithAttributes(
		attribute.String("review.customer", params.CustomerName),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Create"), slog.String("customer", params.CustomerName))

	rating := params.Rating
	if rating == 0 {
		rating = defaultRating
	}

	review := &types.Review{
		ID:           uuid.NewString(),
		CustomerName: params.CustomerName,
		ReviewText:   params.ReviewText,
		Rating:       rating,
		Position:     params.Position,
		Company:      params.Company,
		PhotoURL:     params.PhotoURL,
		CreatedAt:    time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, review); err != nil {
		l.ErrorContext(ctx, "Failed to create review", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create review")
		return nil, fmt.Errorf("error creating review: %w", err)
	}

	span.SetStatus(codes.Ok, "Review created")
	return review, nil
}

func (s *ReviewServiceImpl) Update(ctx context.Context, reviewID string, params types.CreateReviewParams) (*types.Review, error) {
	ctx, span := otel.Tracer("ReviewService").Start(ctx, "Update", trace.WithAttributes(
		attribute.String("review.id", reviewID),
	))
	defer span.End()

	rating := params.Rating
	if rating == 0 {
		rating = defaultRating
	}

	review := &types.Review{
		ID:           reviewID,
		CustomerName: params.CustomerName,
		ReviewText:   params.ReviewText,
		Rating:       rating,
		Position:     params.Position,
		Company:      params.Company,
		PhotoURL:     params.PhotoURL,
	}

	if err := s.repo.Update(ctx, review); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update review")
		return nil, fmt.Errorf("error updating review: %w", err)
	}

	span.SetStatus(codes.Ok, "Review updated")
	return review, nil
}

func (s *ReviewServiceImpl) Delete(ctx context.Context, reviewID string) error {
	ctx, span := otel.Tracer("ReviewService").Start(ctx, "Delete", trace.WithAttributes(
		attribute.String("review.id", reviewID),
	))
	defer span.End()

	if err := s.repo.Delete(ctx, reviewID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete review")
		return fmt.Errorf("error deleting review: %w", err)
	}

	span.SetStatus(codes.Ok, "Review deleted")
	return nil
}
