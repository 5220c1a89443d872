package article

import (
	"context"
	"errors"
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

var _ ArticleRepository = (*MongoArticleRepo)(nil)

type ArticleRepository interface {
	List(ctx context.Context, filter types.ArticleFilter) ([]types.Article, error)
	Get(ctx context.Context, articleID string) (*types.Article, error)
	Create(ctx context.Context, article *types.Article) error

	// Update replaces every stored field of the article. Returns ErrNotFound.
	Update(ctx context.Context, article *types.Article) error
	Delete(ctx context.Context, articleID string) error
}

type MongoArticleRepo struct {
	logger   *slog.Logger
	articles *mongo.Collection
}

func NewMongoArticleRepo(db *mongo.Database, logger *slog.Logger) *MongoArticleRepo {
	return &MongoArticleRepo{
		logger:   logger,
		articles: db.Collection("articles"),
	}
}

func (r *MongoArticleRepo) List(ctx context.Context, filter types.ArticleFilter) ([]types.Article, error) {
	ctx, span := otel.Tracer("ArticleRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "articles"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "List"))

	query := bson.M{}
	if filter.Category != nil {
		query["category"] = *filter.Category
	}
	if filter.Published != nil {
		query["published"] = *filter.Published
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listCap)

	cursor, err := r.articles.Find(ctx, query, opts)
	if err != nil {
		l.ErrorContext(ctx, "Failed to query articles", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error listing articles: %w", err)
	}

	articles := []types.Article{}
	if err := cursor.All(ctx, &articles); err != nil {
		l.ErrorContext(ctx, "Failed to decode articles", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Cursor decode failed")
		return nil, fmt.Errorf("database error decoding articles: %w", err)
	}

	span.SetStatus(codes.Ok, "Articles listed")
	return articles, nil
}

func (r *MongoArticleRepo) Get(ctx context.Context, articleID string) (*types.Article, error) {
	ctx, span := otel.Tracer("ArticleRepo").Start(ctx, "Get", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "articles"),
		attribute.String("db.article.id", articleID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Get"), slog.String("articleID", articleID))

	var article types.Article
	err := r.articles.FindOne(ctx, bson.M{"id": articleID}).Decode(&article)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			span.SetStatus(codes.Error, "Article not found")
			return nil, fmt.Errorf("article not found: %w", types.ErrNotFound)
		}
		l.ErrorContext(ctx, "Failed to fetch article", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error fetching article: %w", err)
	}

	span.SetStatus(codes.Ok, "Article fetched")
	return &article, nil
}

func (r *MongoArticleRepo) Create(ctx context.Context, article *types.Article) error {
	ctx, span := otel.Tracer("ArticleRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "articles"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Create"), slog.String("articleID", article.ID))

	if _, err := r.articles.InsertOne(ctx, article); err != nil {
		l.ErrorContext(ctx, "Failed to insert article", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB insert failed")
		return fmt.Errorf("database error inserting article: %w", err)
	}

	l.InfoContext(ctx, "Article created")
	span.SetStatus(codes.Ok, "Article created")
	return nil
}

func (r *MongoArticleRepo) Update(ctx context.Context, article *types.Article) error {
	ctx, span := otel.Tracer("ArticleRepo").Start(ctx, "Update", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "articles"),
		attribute.String("db.article.id", article.ID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Update"), slog.String("articleID", article.ID))

	set := bson.M{
		"title":            article.Title,
		"slug":             article.Slug,
		"content":          article.Content,
		"excerpt":          article.Excerpt,
		"cover_image":      article.CoverImage,
		"category":         article.Category,
		"meta_title":       article.MetaTitle,
		"meta_description": article.MetaDescription,
		"read_time":        article.ReadTime,
		"published":        article.Published,
		"updated_at":       article.UpdatedAt,
	}

	result, err := r.articles.UpdateOne(ctx, bson.M{"id": article.ID}, bson.M{"$set": set})
	if err != nil {
		l.ErrorContext(ctx, "Failed to update article", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB update failed")
		return fmt.Errorf("database error updating article: %w", err)
	}
	if result.MatchedCount == 0 {
		span.SetStatus(codes.Error, "Article not found")
		return fmt.Errorf("article not found: %w", types.ErrNotFound)
	}

	l.InfoContext(ctx, "Article updated")
	span.SetStatus(codes.Ok, "Article updated")
	return nil
}

func (r *MongoArticleRepo) Delete(ctx context.Context, articleID string) error {
	ctx, span := otel.Tracer("ArticleRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "articles"),
		attribute.String("db.article.id", articleID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Delete"), slog.String("articleID", articleID))

	result, err := r.articles.DeleteOne(ctx, bson.M{"id": articleID})
	if err != nil {
		l.ErrorContext(ctx, "Failed to delete article", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB delete failed")
		return fmt.Errorf("database error deleting article: %w", err)
	}
	if result.DeletedCount == 0 {
		l.WarnContext(ctx, "Article not found for delete")
		span.SetStatus(codes.Error, "Article not found")
		return fmt.Errorf("article not found: %w", types.ErrNotFound)
	}

	l.InfoContext(ctx, "Article deleted")
	span.SetStatus(codes.Ok, "Article deleted")
	return nil
}
