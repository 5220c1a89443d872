package auth

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

func setupAuthHandlerTest() (*AuthHandler, *MockAuthRepo) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockAuthRepo)
	service := NewAuthService(mockRepo, testJWTConfig(), logger)
	handler := NewAuthHandler(service, logger)
	return handler, mockRepo
}

func TestAuthHandler_Register(t *testing.T) {
	t.Run("success answers 200 with a token", func(t *testing.T) {
		handler, mockRepo := setupAuthHandlerTest()
		mockRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*types.User")).Return(nil).Once()

		body := `{"email":"jane@example.com","password":"secret123","full_name":"Jane Doe"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var resp types.TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.False(t, resp.User.IsAdmin)
		mockRepo.AssertExpectations(t)
	})

	t.Run("missing full_name rejected", func(t *testing.T) {
		handler, _ := setupAuthHandlerTest()

		body := `{"email":"jane@example.com","password":"secret123"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "full name")
	})

	t.Run("duplicate email answers 400", func(t *testing.T) {
		handler, mockRepo := setupAuthHandlerTest()
		mockRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*types.User")).
			Return(types.ErrConflict).Once()

		body := `{"email":"jane@example.com","password":"secret123","full_name":"Jane Doe"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		rec := httptest.NewRecorder()

		handler.Register(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Email already registered")
		mockRepo.AssertExpectations(t)
	})
}
