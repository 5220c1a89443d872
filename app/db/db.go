package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/h1zik/ELLAVERABEAUTY/config"
)

const defaultRetries = 5

type DatabaseConfig struct {
	ConnectionURL string
	DatabaseName  string
}

// NewDatabaseConfig validates the Mongo section of the configuration.
func NewDatabaseConfig(cfg *config.Config, logger *slog.Logger) (*DatabaseConfig, error) {
	if cfg == nil || cfg.Repositories.Mongo.URL == "" || cfg.Repositories.Mongo.DB == "" {
		errMsg := "Mongo configuration is missing or invalid"
		logger.Error(errMsg)
		return nil, fmt.Errorf("%s", errMsg)
	}

	logger.Info("Database connection configured", slog.String("database", cfg.Repositories.Mongo.DB))
	return &DatabaseConfig{
		ConnectionURL: cfg.Repositories.Mongo.URL,
		DatabaseName:  cfg.Repositories.Mongo.DB,
	}, nil
}

// Init creates the Mongo client. The client maintains its own pool; callers
// must Disconnect it on shutdown.
func Init(dbCfg *DatabaseConfig, logger *slog.Logger) (*mongo.Client, error) {
	logger.Info("Initializing MongoDB client...")

	client, err := mongo.Connect(options.Client().ApplyURI(dbCfg.ConnectionURL))
	if err != nil {
		logger.Error("Failed to create MongoDB client", slog.Any("error", err))
		return nil, fmt.Errorf("failed creating mongo client: %w", err)
	}

	logger.Info("MongoDB client initialized")
	return client, nil
}

// WaitForDB waits for the document store to answer pings.
func WaitForDB(ctx context.Context, client *mongo.Client, logger *slog.Logger) bool {
	maxAttempts := defaultRetries
	for attempts := 1; attempts <= maxAttempts; attempts++ {
		err := client.Ping(ctx, readpref.Primary())
		if err == nil {
			logger.InfoContext(ctx, "Database connection successful")
			return true
		}

		waitDuration := time.Duration(attempts) * 200 * time.Millisecond
		logger.WarnContext(ctx, "Database ping failed, retrying...",
			slog.Int("attempt", attempts),
			slog.Int("max_attempts", maxAttempts),
			slog.Duration("wait_duration", waitDuration),
			slog.String("error", err.Error()),
		)
		// Don't wait after the last attempt
		if attempts < maxAttempts {
			time.Sleep(waitDuration)
		}
	}
	logger.ErrorContext(ctx, "Database connection failed after multiple retries")
	return false
}

// EnsureIndexes creates the indexes the handlers rely on. Mongo index
// creation is idempotent, so this runs on every start.
func EnsureIndexes(ctx context.Context, db *mongo.Database, logger *slog.Logger) error {
	logger.Info("Ensuring MongoDB indexes...")

	_, err := db.Collection("users").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		logger.Error("Failed to create users.email index", slog.Any("error", err))
		return fmt.Errorf("failed to create users.email index: %w", err)
	}

	_, err = db.Collection("page_sections").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "page_name", Value: 1}, {Key: "order", Value: 1}},
	})
	if err != nil {
		logger.Error("Failed to create page_sections index", slog.Any("error", err))
		return fmt.Errorf("failed to create page_sections index: %w", err)
	}

	_, err = db.Collection("contact_leads").Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "created_at", Value: -1}},
	})
	if err != nil {
		logger.Error("Failed to create contact_leads index", slog.Any("error", err))
		return fmt.Errorf("failed to create contact_leads index: %w", err)
	}

	logger.Info("MongoDB indexes ensured")
	return nil
}
