package article

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

// defaultReadTime is the fallback estimate in minutes when the
// author leaves read_time unset.
const defaultReadTime = 5

var _ ArticleService = (*ArticleServiceImpl)(nil)

type ArticleService interface {
	List(ctx context.Context, filter types.ArticleFilter) ([]types.Article, error)
	Get(ctx context.Context, articleID string) (*types.Article, error)
	Create(ctx context.Context, params types.CreateArticleParams) (*types.Article, error)
	Update(ctx context.Context, articleID string, params types.CreateArticleParams) (*types.Article, error)
	Delete(ctx context.Context, articleID string) error
}

type ArticleServiceImpl struct {
	logger *slog.Logger
	repo   ArticleRepository
}

func NewArticleService(repo ArticleRepository, logger *slog.Logger) *ArticleServiceImpl {
	return &ArticleServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ArticleServiceImpl) List(ctx context.Context, filter types.ArticleFilter) ([]types.Article, error) {
	ctx, span := otel.Tracer("ArticleService").Start(ctx, "List")
	defer span.End()

	articles, err := s.repo.List(ctx, filter)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list articles")
		return nil, fmt.Errorf("error listing articles: %w", err)
	}

	span.SetStatus(codes.Ok, "Articles listed")
	return articles, nil
}

func (s *ArticleServiceImpl) Get(ctx context.Context, articleID string) (*types.Article, error) {
	ctx, span := otel.Tracer("ArticleService").Start(ctx, "Get", trace.WithAttributes(
		attribute.String("article.id", articleID),
	))
	defer span.End()

	article, err := s.repo.Get(ctx, articleID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch article")
		return nil, fmt.Errorf("error fetching article: %w", err)
	}

	span.SetStatus(codes.Ok, "Article fetched")
	return article, nil
}

func (s *ArticleServiceImpl) Create(ctx context.Context, params types.CreateArticleParams) (*types.Article, error) {
	ctx, span := otel.Tracer("ArticleService").Start(ctx, "Create", trace.WithAttributes(
		attribute.String("article.title", params.Title),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Create"), slog.String("title", params.Title))

	readTime := params.ReadTime
	if readTime == 0 {
		readTime = defaultReadTime
	}

	now := time.Now().UTC()
	article := &types.Article{
		ID:              uuid.NewString(),
		Title:           params.Title,
		Slug:            api.Slugify(params.Title),
		Content:         params.Content,
		Excerpt:         params.Excerpt,
		CoverImage:      params.CoverImage,
		Category:        params.Category,
		MetaTitle:       params.MetaTitle,
		MetaDescription: params.MetaDescription,
		ReadTime:        readTime,
		Published:       params.Published,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, article); err != nil {
		l.ErrorContext(ctx, "Failed to create article", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create article")
		return nil, fmt.Errorf("error creating article: %w", err)
	}

	span.SetStatus(codes.Ok, "Article created")
	return article, nil
}

func (s *ArticleServiceImpl) Update(ctx context.Context, articleID string, params types.CreateArticleParams) (*types.Article, error) {
	ctx, span := otel.Tracer("ArticleService").Start(ctx, "Update", trace.WithAttributes(
		attribute.String("article.id", articleID),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Update"), slog.String("articleID", articleID))

	readTime := params.ReadTime
	if readTime == 0 {
		readTime = defaultReadTime
	}

	article := &types.Article{
		ID:              articleID,
		Title:           params.Title,
		Slug:            api.Slugify(params.Title),
		Content:         params.Content,
		Excerpt:         params.Excerpt,
		CoverImage:      params.CoverImage,
		Category:        params.Category,
		MetaTitle:       params.MetaTitle,
		MetaDescription: params.MetaDescription,
		ReadTime:        readTime,
		Published:       params.Published,
		UpdatedAt:       time.Now().UTC(),
	}

	if err := s.repo.Update(ctx, article); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to update article")
		return nil, fmt.Errorf("error updating article: %w", err)
	}

	updated, err := s.repo.Get(ctx, articleID)
	if err != nil {
		l.ErrorContext(ctx, "Failed to reload updated article", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to reload article")
		return nil, fmt.Errorf("error reloading article: %w", err)
	}

	span.SetStatus(codes.Ok, "Article updated")
	return updated, nil
}

func (s *ArticleServiceImpl) Delete(ctx context.Context, articleID string) error {
	ctx, span := otel.Tracer("ArticleService").Start(ctx, "Delete", trace.WithAttributes(
		attribute.String("article.id", articleID),
	))
	defer span.End()

	if err := s.repo.Delete(ctx, articleID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete article")
		return fmt.Errorf("error deleting article: %w", err)
	}

	span.SetStatus(codes.Ok, "Article deleted")
	return nil
}
