package contact

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

	"github.com/h1zik/ELLAVERABEAUTY/app/tracer"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

var _ ContactService = (*ContactServiceImpl)(nil)

type ContactService interface {
	List(ctx context.Context) ([]types.ContactLead, error)
	Create(ctx context.Context, params types.CreateContactLeadParams) (*types.ContactLead, error)
}

type ContactServiceImpl struct {
	logger *slog.Logger
	repo   ContactRepository
}

func NewContactService(repo ContactRepository, logger *slog.Logger) *ContactServiceImpl {
	return &ContactServiceImpl{
		logger: logger,
		repo:   repo,
	}
}

func (s *ContactServiceImpl) List(ctx context.Context) ([]types.ContactLead, error) {
	ctx, span := otel.Tracer("ContactService").Start(ctx, "List")
	defer span.End()

	leads, err := s.repo.List(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to list contact leads")
		return nil, fmt.Errorf("error listing contact leads: %w", err)
	}

	span.SetStatus(codes.Ok, "Contact leads listed")
	return leads, nil
}

func (s *ContactServiceImpl) Create(ctx context.Context, params types.CreateContactLeadParams) (*types.ContactLead, error) {
	ctx, span := otel.Tracer("ContactService").Start(ctx, "Create", trace.WithAttributes(
		attribute.String("lead.email", params.Email),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Create"), slog.String("email", params.Email))

	lead := &types.ContactLead{
		ID:        uuid.NewString(),
		Name:      params.Name,
		Email:     params.Email,
		Phone:     params.Phone,
		Company:   params.Company,
		Message:   params.Message,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, lead); err != nil {
		l.ErrorContext(ctx, "Failed to create contact lead", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to create contact lead")
		return nil, fmt.Errorf("error creating contact lead: %w", err)
	}

	tracer.Metrics().ContactLeadsTotal.Add(ctx, 1)

	span.SetStatus(codes.Ok, "Contact lead created")
	return lead, nil
}
