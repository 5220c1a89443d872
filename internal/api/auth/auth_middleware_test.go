package auth

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

func setupMiddlewareTest(t *testing.T) (*Middleware, *MockAuthRepo) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockAuthRepo)
	service := NewAuthService(mockRepo, testJWTConfig(), logger)
	return NewMiddleware(service, testJWTConfig(), logger), mockRepo
}

// okHandler records the user that Authenticate placed in the context.
func okHandler(captured **types.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if user, ok := GetUserFromContext(r.Context()); ok && captured != nil {
			*captured = user
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestMiddleware_Authenticate(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		mw, _ := setupMiddlewareTest(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		mw.Authenticate(okHandler(nil)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("malformed header", func(t *testing.T) {
		mw, _ := setupMiddlewareTest(t)
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Token abc")

		mw.Authenticate(okHandler(nil)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		mw, _ := setupMiddlewareTest(t)

		expiredCfg := testJWTConfig()
		expiredCfg.ExpirationHours = -1
		token, err := GenerateAccessToken("user-1", expiredCfg)
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		mw.Authenticate(okHandler(nil)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Token has expired")
	})

	t.Run("deleted subject", func(t *testing.T) {
		mw, mockRepo := setupMiddlewareTest(t)
		mockRepo.On("GetUserByID", mock.Anything, "gone").
			Return(nil, types.ErrNotFound).Once()

		token, err := GenerateAccessToken("gone", testJWTConfig())
		require.NoError(t, err)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		mw.Authenticate(okHandler(nil)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "User not found")
		mockRepo.AssertExpectations(t)
	})

	t.Run("valid token loads user", func(t *testing.T) {
		mw, mockRepo := setupMiddlewareTest(t)
		stored := &types.User{ID: "user-1", Email: "jane@example.com", IsAdmin: false}
		mockRepo.On("GetUserByID", mock.Anything, "user-1").Return(stored, nil).Once()

		token, err := GenerateAccessToken("user-1", testJWTConfig())
		require.NoError(t, err)

		var captured *types.User
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer "+token)

		mw.Authenticate(okHandler(&captured)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, captured)
		assert.Equal(t, "user-1", captured.ID)
		mockRepo.AssertExpectations(t)
	})
}

func TestMiddleware_RequireAdmin(t *testing.T) {
	t.Run("non-admin rejected", func(t *testing.T) {
		mw, _ := setupMiddlewareTest(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), UserKey, &types.User{ID: "user-1", IsAdmin: false})

		mw.RequireAdmin(okHandler(nil)).ServeHTTP(rec, req.WithContext(ctx))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "Admin access required")
	})

	t.Run("admin passes", func(t *testing.T) {
		mw, _ := setupMiddlewareTest(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		ctx := context.WithValue(req.Context(), UserKey, &types.User{ID: "admin-1", IsAdmin: true})

		mw.RequireAdmin(okHandler(nil)).ServeHTTP(rec, req.WithContext(ctx))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("missing user in context", func(t *testing.T) {
		mw, _ := setupMiddlewareTest(t)

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/", nil)

		mw.RequireAdmin(okHandler(nil)).ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
