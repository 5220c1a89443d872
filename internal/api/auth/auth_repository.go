package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

var _ AuthRepo = (*MongoAuthRepo)(nil)

type AuthRepo interface {
	// CreateUser inserts a new user record.
	// Returns ErrConflict if the email is already registered.
	CreateUser(ctx context.Context, user *types.User) error

	// GetUserByEmail resolves a user by login email. Returns ErrNotFound.
	GetUserByEmail(ctx context.Context, email string) (*types.User, error)

	// GetUserByID resolves a user by its opaque id. Returns ErrNotFound.
	GetUserByID(ctx context.Context, userID string) (*types.User, error)
}

type MongoAuthRepo struct {
	logger *slog.Logger
	users  *mongo.Collection
}

func NewMongoAuthRepo(db *mongo.Database, logger *slog.Logger) *MongoAuthRepo {
	return &MongoAuthRepo{
		logger: logger,
		users:  db.Collection("users"),
	}
}

func (r *MongoAuthRepo) CreateUser(ctx context.Context, user *types.User) error {
	ctx, span := otel.Tracer("AuthRepo").Start(ctx, "CreateUser", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "users"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "CreateUser"), slog.String("email", user.Email))

	// Duplicate check up front for a clean error; the unique index on email
	// still backstops the race between two concurrent registrations.
	count, err := r.users.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		l.ErrorContext(ctx, "Failed to check for existing user", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB count failed")
		return fmt.Errorf("database error checking existing user: %w", err)
	}
	if count > 0 {
		l.WarnContext(ctx, "Email already registered")
		span.SetStatus(codes.Error, "Duplicate email")
		return fmt.Errorf("email already registered: %w", types.ErrConflict)
	}

	_, err = r.users.InsertOne(ctx, user)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			l.WarnContext(ctx, "Email already registered (index)")
			span.SetStatus(codes.Error, "Duplicate email")
			return fmt.Errorf("email already registered: %w", types.ErrConflict)
		}
		l.ErrorContext(ctx, "Failed to insert user", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB insert failed")
		return fmt.Errorf("database error inserting user: %w", err)
	}

	l.InfoContext(ctx, "User created", slog.String("userID", user.ID))
	span.SetStatus(codes.Ok, "User created")
	return nil
}

func (r *MongoAuthRepo) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	ctx, span := otel.Tracer("AuthRepo").Start(ctx, "GetUserByEmail", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "users"),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "GetUserByEmail"))

	var user types.User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			span.SetStatus(codes.Error, "User not found")
			return nil, fmt.Errorf("user not found: %w", types.ErrNotFound)
		}
		l.ErrorContext(ctx, "Failed to query user by email", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error fetching user: %w", err)
	}

	span.SetStatus(codes.Ok, "User fetched")
	return &user, nil
}

func (r *MongoAuthRepo) GetUserByID(ctx context.Context, userID string) (*types.User, error) {
	ctx, span := otel.Tracer("AuthRepo").Start(ctx, "GetUserByID", trace.WithAttributes(
		semconv.DBSystemMongoDB,
		attribute.String("db.collection", "users"),
		attribute.String("db.user.id", userID),
	))
	defer span.End()

	l := r.logger.With(slog.String("method", "GetUserByID"), slog.String("userID", userID))

	var user types.User
	err := r.users.FindOne(ctx, bson.M{"id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			l.WarnContext(ctx, "User not found")
			span.SetStatus(codes.Error, "User not found")
			return nil, fmt.Errorf("user not found: %w", types.ErrNotFound)
		}
		l.ErrorContext(ctx, "Failed to query user by id", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "DB find failed")
		return nil, fmt.Errorf("database error fetching user: %w", err)
	}

	span.SetStatus(codes.Ok, "User fetched")
	return &user, nil
}
