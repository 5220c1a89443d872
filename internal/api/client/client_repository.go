package client

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

var _ ClientRepository = (*MongoClientRepo)(nil)

type ClientRepository interface {
	List(ctx context.Context) ([]types.Client, error)
	Create(ctx context.Context, client *types.Client) error

	// Delete removes a client logo by id. Returns ErrNotFound.
	Delete(ctx context.Context, clientID string) error
}

type MongoClientRepo struct {
	logger  *slog.Logger
	clients *mongo.Collection
}

func NewMongoClientRepo(db *mongo.Database, logger *slog.Logger) *MongoClientRepo {
	return &MongoClientRepo{
		logger:  logger,
		clients: db.Collection("clients"),
	}
}

func (r *MongoClientRepo) List(ctx context.Context) ([]types.Client, error) {
	ctx, span := otel.Tracer("ClientRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "clients"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "List"))

	cursor, err := r.clients.Find(ctx, bson.M{}, options.Find().SetLimit(listCap))
	if err != nil {
		l.ErrorContext(ctx, "Failed to query clients", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error listing clients: %w", err)
	}

	clients := []types.Client{}
	if err := cursor.All(ctx, &clients); err != nil {
		l.ErrorContext(ctx, "Failed to decode clients", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Cursor decode failed")
		return nil, fmt.Errorf("database error decoding clients: %w", err)
	}

	span.SetStatus(codes.Ok, "Clients listed")
	return clients, nil
}

func (r *MongoClientRepo) Create(ctx context.Context, client *types.Client) error {
	ctx, span := otel.Tracer("ClientRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "clients"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Create"), slog.String("clientID", client.ID))

	if _, err := r.clients.InsertOne(ctx, client); err != nil {
		l.ErrorContext(ctx, "Failed to insert client", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB insert failed")
		return fmt.Errorf("database error inserting client: %w", err)
	}

	l.InfoContext(ctx, "Client created")
	span.SetStatus(codes.Ok, "Client created")
	return nil
}

func (r *MongoClientRepo) Delete(ctx context.Context, clientID string) error {
	ctx, span := otel.Tracer("ClientRepo").Start(ctx, "Delete", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "clients"),
		attribute.String("db.client.id", clientID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Delete"), slog.String("clientID", clientID))

	result, err := r.clients.DeleteOne(ctx, bson.M{"id": clientID})
	if err != nil {
		l.ErrorContext(ctx, "Failed to delete client", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB delete failed")
		return fmt.Errorf("database error deleting client: %w", err)
	}
	if result.DeletedCount == 0 {
		l.WarnContext(ctx, "Client not found for delete")
		span.SetStatus(codes.Error, "Client not found")
		return fmt.Errorf("client not found: %w", types.ErrNotFound)
	}

	l.InfoContext(ctx, "Client deleted")
	span.SetStatus(codes.Ok, "Client deleted")
	return nil
}
