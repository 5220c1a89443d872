package contact

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

var _ ContactRepository = (*MongoContactRepo)(nil)

type ContactRepository interface {
	// List returns leads newest first.
	List(ctx context.Context) ([]types.ContactLead, error)
	Create(ctx context.Context, lead *types.ContactLead) error
}

type MongoContactRepo struct {
	logger *slog.Logger
	leads  *mongo.Collection
}

func NewMongoContactRepo(db *mongo.Database, logger *slog.Logger) *MongoContactRepo {
	return &MongoContactRepo{
		logger: logger,
		leads:  db.Collection("contact_leads"),
	}
}

func (r *MongoContactRepo) List(ctx context.Context) ([]types.ContactLead, error) {
	ctx, span := otel.Tracer("ContactRepo").Start(ctx, "List", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "contact_leads"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "List"))

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(listCap)

	cursor, err := r.leads.Find(ctx, bson.M{}, opts)
	if err != nil {
		l.ErrorContext(ctx, "Failed to query contact leads", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error listing contact leads: %w", err)
	}

	leads := []types.ContactLead{}
	if err := cursor.All(ctx, &leads); err != nil {
		l.ErrorContext(ctx, "Failed to decode contact leads", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Cursor decode failed")
		return nil, fmt.Errorf("database error decoding contact leads: %w", err)
	}

	span.SetStatus(codes.Ok, "Contact leads listed")
	return leads, nil
}

func (r *MongoContactRepo) Create(ctx context.Context, lead *types.ContactLead) error {
	ctx, span := otel.Tracer("ContactRepo").Start(ctx, "Create", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "contact_leads"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "Create"), slog.String("leadID", lead.ID))

	if _, err := r.leads.InsertOne(ctx, lead); err != nil {
		l.ErrorContext(ctx, "Failed to insert contact lead", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB insert failed")
		return fmt.Errorf("database error inserting contact lead: %w", err)
	}

	l.InfoContext(ctx, "Contact lead created")
	span.SetStatus(codes.Ok, "Contact lead created")
	return nil
}
