package client

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

var _ ClientService = (*ClientServiceImpl)(nil)

type ClientService interface {
	List(ctx context.Context) ([]types.Client, error)
	Create(ctx context.Context, params types.CreateClientParams) (*types.Client, error)
	Delete(ctx context.Context, clientID string) error
}

type ClientServiceImpl struct {
	logger *slog.Logger
	repo   ClientRepository
}

func NewClientService(repo ClientRepository, logger *slog.Logger) *ClientServiceImpl {
	return &ClientServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ClientServiceImpl) List(ctx context.Context) ([]types.Client, error) {
	ctx, span := otel.Tracer("ClientService").Start(ctx, "List")
	defer span.End()

	clients, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list clients")
		return nil, fmt.Errorf("error listing clients: %w", err)
	}

	span.SetStatus(codes.Ok, "Clients listed")
	return clients, nil
}

func (s *ClientServiceImpl) Create(ctx context.Context, params types.CreateClientParams) (*types.Client, error) {
	ctx, span := otel.Tracer("ClientService").Start(ctx, "Create", trace.WithAttributes(
		attribute.String("client.name", params.Name),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Create"), slog.String("name", params.Name))

	client := &types.Client{
		ID:        uuid.NewString(),
		Name:      params.Name,
		LogoURL:   params.LogoURL,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, client); err != nil {
		l.ErrorContext(ctx, "Failed to create client", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create client")
		return nil, fmt.Errorf("error creating client: %w", err)
	}

	span.SetStatus(codes.Ok, "Client created")
	return client, nil
}

func (s *ClientServiceImpl) Delete(ctx context.Context, clientID string) error {
	ctx, span := otel.Tracer("ClientService").Start(ctx, "Delete", trace.WithAttributes(
		attribute.String("client.id", clientID),
	))
	defer span.End()

	if err := s.repo.Delete(ctx, clientID); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to delete client")
		return fmt.Errorf("error deleting client: %w", err)
	}

	span.SetStatus(codes.Ok, "Client deleted")
	return nil
}
