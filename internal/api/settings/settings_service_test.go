package settings

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

// MockSettingsRepository is a mock implementation of SettingsRepository
type MockSettingsRepository struct {
	mock.Mock
}

func (m *MockSettingsRepository) GetTheme(ctx context.Context) (*types.ThemeSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ThemeSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpdateTheme(ctx context.Context, params types.UpdateThemeParams) (*types.ThemeSettings, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.ThemeSettings), args.Error(1)
}

func (m *MockSettingsRepository) GetSiteSettings(ctx context.Context) (*types.SiteSettings, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SiteSettings), args.Error(1)
}

func (m *MockSettingsRepository) UpdateSiteSettings(ctx context.Context, params types.UpdateSiteSettingsParams) (*types.SiteSettings, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.SiteSettings), args.Error(1)
}

func setupSettingsServiceTest() (*SettingsServiceImpl, *MockSettingsRepository) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockSettingsRepository)
	service := NewSettingsService(mockRepo, logger)
	return service, mockRepo
}

func TestSettingsServiceImpl_GetTheme(t *testing.T) {
	ctx := context.Background()

	t.Run("returns defaults on first read", func(t *testing.T) {
		service, mockRepo := setupSettingsServiceTest()
		defaults := types.DefaultThemeSettings(time.Now().UTC())
		mockRepo.On("GetTheme", mock.Anything).Return(&defaults, nil).Once()

		theme, err := service.GetTheme(ctx)
		require.NoError(t, err)
		assert.Equal(t, "#06b6d4", theme.PrimaryColor)
		assert.Equal(t, "light", theme.ThemeMode)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		service, mockRepo := setupSettingsServiceTest()
		repoErr := errors.New("connection dropped")
		mockRepo.On("GetTheme", mock.Anything).Return(nil, repoErr).Once()

		_, err := service.GetTheme(ctx)
		require.Error(t, err)
		assert.True(t, errors.Is(err, repoErr))
		mockRepo.AssertExpectations(t)
	})
}

func TestSettingsServiceImpl_UpdateTheme(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update passes through", func(t *testing.T) {
		service, mockRepo := setupSettingsServiceTest()

		primary := "#ff0000"
		params := types.UpdateThemeParams{PrimaryColor: &primary}

		updated := types.DefaultThemeSettings(time.Now().UTC())
		updated.PrimaryColor = primary
		mockRepo.On("UpdateTheme", mock.Anything, params).Return(&updated, nil).Once()

		theme, err := service.UpdateTheme(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, "#ff0000", theme.PrimaryColor)
		assert.Equal(t, "Inter", theme.BodyFont, "untouched fields keep their values")
		mockRepo.AssertExpectations(t)
	})
}

func TestSettingsServiceImpl_UpdateSiteSettings(t *testing.T) {
	ctx := context.Background()

	t.Run("partial update passes through", func(t *testing.T) {
		service, mockRepo := setupSettingsServiceTest()

		tagline := "Beauty, manufactured"
		params := types.UpdateSiteSettingsParams{SiteTagline: &tagline}

		updated := types.DefaultSiteSettings(time.Now().UTC())
		updated.SiteTagline = tagline
		mockRepo.On("UpdateSiteSettings", mock.Anything, params).Return(&updated, nil).Once()

		settings, err := service.UpdateSiteSettings(ctx, params)
		require.NoError(t, err)
		assert.Equal(t, tagline, settings.SiteTagline)
		assert.Equal(t, "Ellavera Beauty", settings.SiteName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("repository error", func(t *testing.T) {
		service, mockRepo := setupSettingsServiceTest()
		repoErr := errors.New("write concern failure")
		mockRepo.On("UpdateSiteSettings", mock.Anything, types.UpdateSiteSettingsParams{}).
			Return(nil, repoErr).Once()

		_, err := service.UpdateSiteSettings(ctx, types.UpdateSiteSettingsParams{})
		require.Error(t, err)
		assert.True(t, errors.Is(err, repoErr))
		mockRepo.AssertExpectations(t)
	})
}
