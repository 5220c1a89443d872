package auth

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

// MockAuthRepo is a mock implementation of AuthRepo
type MockAuthRepo struct {
	mock.Mock
}

func (m *MockAuthRepo) CreateUser(ctx context.Context, user *types.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockAuthRepo) GetUserByEmail(ctx context.Context, email string) (*types.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func (m *MockAuthRepo) GetUserByID(ctx context.Context, userID string) (*types.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.User), args.Error(1)
}

func setupAuthServiceTest() (*AuthServiceImpl, *MockAuthRepo) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockAuthRepo)
	service := NewAuthService(mockRepo, testJWTConfig(), logger)
	return service, mockRepo
}

func TestAuthServiceImpl_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()
		mockRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*types.User")).Return(nil).Once()

		resp, err := service.Register(ctx, types.RegisterRequest{
			Email:    "jane@example.com",
			Password: "secret123",
			FullName: "Jane Doe",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		assert.Equal(t, "jane@example.com", resp.User.Email)
		assert.False(t, resp.User.IsAdmin)
		assert.NotEqual(t, "secret123", resp.User.Password, "password must be stored hashed")
		mockRepo.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()
		mockRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*types.User")).
			Return(types.ErrConflict).Once()

		_, err := service.Register(ctx, types.RegisterRequest{
			Email:    "jane@example.com",
			Password: "secret123",
			FullName: "Jane Doe",
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrConflict))
		mockRepo.AssertExpectations(t)
	})
}

func TestAuthServiceImpl_Login(t *testing.T) {
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)

	storedUser := &types.User{
		ID:       "user-1",
		Email:    "jane@example.com",
		FullName: "Jane Doe",
		Password: string(hashed),
		IsAdmin:  true,
	}

	t.Run("success", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()
		mockRepo.On("GetUserByEmail", mock.Anything, "jane@example.com").Return(storedUser, nil).Once()

		resp, err := service.Login(ctx, "jane@example.com", "secret123")
		require.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "user-1", resp.User.ID)

		subject, err := VerifyAccessToken(resp.AccessToken, testJWTConfig())
		require.NoError(t, err)
		assert.Equal(t, "user-1", subject)
		mockRepo.AssertExpectations(t)
	})

	t.Run("wrong password", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()
		mockRepo.On("GetUserByEmail", mock.Anything, "jane@example.com").Return(storedUser, nil).Once()

		_, err := service.Login(ctx, "jane@example.com", "wrong-password")
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrUnauthorized))
		mockRepo.AssertExpectations(t)
	})

	t.Run("unknown email", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()
		mockRepo.On("GetUserByEmail", mock.Anything, "ghost@example.com").
			Return(nil, types.ErrNotFound).Once()

		_, err := service.Login(ctx, "ghost@example.com", "secret123")
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrUnauthorized),
			"unknown email must look identical to a wrong password")
		mockRepo.AssertExpectations(t)
	})
}

func TestAuthServiceImpl_GetUser(t *testing.T) {
	ctx := context.Background()

	t.Run("not found", func(t *testing.T) {
		service, mockRepo := setupAuthServiceTest()
		mockRepo.On("GetUserByID", mock.Anything, "missing").Return(nil, types.ErrNotFound).Once()

		_, err := service.GetUser(ctx, "missing")
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrNotFound))
		mockRepo.AssertExpectations(t)
	})
}
