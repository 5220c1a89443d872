package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/crypto/bcrypt"

	"github.com/h1zik/ELLAVERABEAUTY/app/tracer"
	"github.com/h1zik/ELLAVERABEAUTY/config"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

var _ AuthService = (*AuthServiceImpl)(nil)

type AuthService interface {
	// Register creates a user and returns a fresh bearer token for it.
	// Returns ErrConflict if the email is already registered.
	Register(ctx context.Context, params types.RegisterRequest) (*types.TokenResponse, error)

	// Login validates credentials and returns a fresh bearer token.
	// Returns ErrUnauthorized on unknown email or wrong password.
	Login(ctx context.Context, email, password string) (*types.TokenResponse, error)

	// GetUser resolves a user by id. Returns ErrNotFound.
	GetUser(ctx context.Context, userID string) (*types.User, error)
}

type AuthServiceImpl struct {
	logger *slog.Logger
	repo   AuthRepo
	jwtCfg config.JWTConfig
}

func NewAuthService(repo AuthRepo, jwtCfg config.JWTConfig, logger *slog.Logger) *AuthServiceImpl {
	return &AuthServiceImpl{
		logger: logger,
		repo:   repo,
		jwtCfg: jwtCfg,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, params types.RegisterRequest) (*types.TokenResponse, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Register", trace.WithAttributes(
		attribute.String("user.email", params.Email),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Register"), slog.String("email", params.Email))
	l.DebugContext(ctx, "Registering new user")

	hashed, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		l.ErrorContext(ctx, "Failed to hash password", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Password hashing failed")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &types.User{
		ID:        uuid.NewString(),
		Email:     params.Email,
		FullName:  params.FullName,
		Password:  string(hashed),
		IsAdmin:   false,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateUser(ctx, user); err != nil {
		l.WarnContext(ctx, "Failed to create user", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "User creation failed")
		return nil, fmt.Errorf("error registering user: %w", err)
	}

	token, err := GenerateAccessToken(user.ID, s.jwtCfg)
	if err != nil {
		l.ErrorContext(ctx, "Failed to issue access token", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Token issuance failed")
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	tracer.Metrics().RegisterRequestsTotal.Add(ctx, 1)
	l.InfoContext(ctx, "User registered", slog.String("userID", user.ID))
	span.SetStatus(codes.Ok, "User registered")

	return &types.TokenResponse{AccessToken: token, TokenType: "bearer", User: *user}, nil
}

func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*types.TokenResponse, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "Login", trace.WithAttributes(
		attribute.String("user.email", email),
	))
	defer span.End()

	l := s.logger.With(slog.String("method", "Login"), slog.String("email", email))

	user, err := s.repo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			l.WarnContext(ctx, "Login with unknown email")
			span.SetStatus(codes.Error, "Unknown email")
			return nil, fmt.Errorf("invalid email or password: %w", types.ErrUnauthorized)
		}
		span.RecordError(err)
		span.SetStatus(codes.Error, "User lookup failed")
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		l.WarnContext(ctx, "Login with wrong password")
		span.SetStatus(codes.Error, "Wrong password")
		return nil, fmt.Errorf("invalid email or password: %w", types.ErrUnauthorized)
	}

	token, err := GenerateAccessToken(user.ID, s.jwtCfg)
	if err != nil {
		l.ErrorContext(ctx, "Failed to issue access token", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Token issuance failed")
		return nil, fmt.Errorf("failed to issue access token: %w", err)
	}

	tracer.Metrics().LoginRequestsTotal.Add(ctx, 1)
	l.InfoContext(ctx, "User logged in", slog.String("userID", user.ID))
	span.SetStatus(codes.Ok, "User logged in")

	return &types.TokenResponse{AccessToken: token, TokenType: "bearer", User: *user}, nil
}

func (s *AuthServiceImpl) GetUser(ctx context.Context, userID string) (*types.User, error) {
	ctx, span := otel.Tracer("AuthService").Start(ctx, "GetUser", trace.WithAttributes(
		attribute.String("user.id", userID),
	))
	defer span.End()

	user, err := s.repo.GetUserByID(ctx, userID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to fetch user")
		return nil, fmt.Errorf("error fetching user: %w", err)
	}

	span.SetStatus(codes.Ok, "User fetched")
	return user, nil
}
