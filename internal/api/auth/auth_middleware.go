package auth

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/h1zik/ELLAVERABEAUTY/config"
	"github.com/h1zik/ELLAVERABEAUTY/internal/api"
	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

// Define typed context keys
type contextKey string

const UserKey contextKey = "currentUser"

// Middleware is the two-stage access gate: Authenticate resolves the bearer
// token to a stored user, RequireAdmin additionally checks the admin flag.
type Middleware struct {
	logger  *slog.Logger
	jwtCfg  config.JWTConfig
	service AuthService
}

func NewMiddleware(service AuthService, jwtCfg config.JWTConfig, logger *slog.Logger) *Middleware {
	if jwtCfg.SecretKey == "" {
		logger.Error("FATAL: JWT Secret Key is not configured!")
		panic("JWT Secret Key cannot be empty")
	}
	return &Middleware{
		logger:  logger,
		jwtCfg:  jwtCfg,
		service: service,
	}
}

// Authenticate validates the bearer token and loads the matching user into
// the request context. A token whose subject no longer exists is rejected.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		l := m.logger.With(slog.String("middleware", "Authenticate"))

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			l.WarnContext(ctx, "Missing Authorization header")
			api.ErrorResponse(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		headerParts := strings.Split(authHeader, " ")
		if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
			l.WarnContext(ctx, "Invalid Authorization header format")
			api.ErrorResponse(w, r, http.StatusUnauthorized, "Authorization header format must be Bearer {token}")
			return
		}
		tokenString := headerParts[1]

		subject, err := VerifyAccessToken(tokenString, m.jwtCfg)
		if err != nil {
			l.WarnContext(ctx, "Token verification failed", slog.Any("error", err))
			errMsg := "Invalid token"
			if errors.Is(err, types.ErrTokenExpired) {
				errMsg = "Token has expired"
			}
			api.ErrorResponse(w, r, http.StatusUnauthorized, errMsg)
			return
		}

		// The subject may have been deleted after the token was issued.
		user, err := m.service.GetUser(ctx, subject)
		if err != nil {
			if errors.Is(err, types.ErrNotFound) {
				l.WarnContext(ctx, "Token subject no longer exists", slog.String("userID", subject))
				api.ErrorResponse(w, r, http.StatusUnauthorized, "User not found")
				return
			}
			l.ErrorContext(ctx, "Failed to resolve token subject", slog.Any("error", err))
			api.ErrorResponse(w, r, http.StatusInternalServerError, "Failed to resolve user")
			return
		}

		ctx = context.WithValue(ctx, UserKey, user)
		l.DebugContext(ctx, "Authentication successful", slog.String("userID", user.ID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdmin runs AFTER Authenticate and rejects non-admin users.
func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		l := m.logger.With(slog.String("middleware", "RequireAdmin"))

		user, ok := GetUserFromContext(ctx)
		if !ok {
			l.ErrorContext(ctx, "User missing from context; is Authenticate mounted before RequireAdmin?")
			api.ErrorResponse(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}

		if !user.IsAdmin {
			l.WarnContext(ctx, "Admin access denied", slog.String("userID", user.ID))
			api.ErrorResponse(w, r, http.StatusForbidden, "Admin access required")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// GetUserFromContext returns the user resolved by the Authenticate middleware.
func GetUserFromContext(ctx context.Context) (*types.User, bool) {
	user, ok := ctx.Value(UserKey).(*types.User)
	return user, ok
}
