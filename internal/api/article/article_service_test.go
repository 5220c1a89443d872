package article

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

// MockArticleRepo is a mock implementation of ArticleRepository
type MockArticleRepo struct {
	mock.Mock
}

func (m *MockArticleRepo) List(ctx context.Context, filter types.ArticleFilter) ([]types.Article, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Article), args.Error(1)
}

func (m *MockArticleRepo) Get(ctx context.Context, articleID string) (*types.Article, error) {
	args := m.Called(ctx, articleID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Article), args.Error(1)
}

func (m *MockArticleRepo) Create(ctx context.Context, article *types.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepo) Update(ctx context.Context, article *types.Article) error {
	args := m.Called(ctx, article)
	return args.Error(0)
}

func (m *MockArticleRepo) Delete(ctx context.Context, articleID string) error {
	args := m.Called(ctx, articleID)
	return args.Error(0)
}

func setupArticleServiceTest() (*ArticleServiceImpl, *MockArticleRepo) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockArticleRepo)
	service := NewArticleService(mockRepo, logger)
	return service, mockRepo
}

func TestArticleServiceImpl_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("zero read time defaults to five minutes", func(t *testing.T) {
		service, mockRepo := setupArticleServiceTest()
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*types.Article")).Return(nil).Once()

		article, err := service.Create(ctx, types.CreateArticleParams{
			Title:    "Clean Beauty Trends",
			Content:  "...",
			Excerpt:  "...",
			Category: "Industry Trends",
		})
		require.NoError(t, err)
		assert.Equal(t, 5, article.ReadTime)
		assert.Equal(t, "clean-beauty-trends", article.Slug)
		mockRepo.AssertExpectations(t)
	})

	t.Run("explicit read time is kept", func(t *testing.T) {
		service, mockRepo := setupArticleServiceTest()
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*types.Article")).Return(nil).Once()

		article, err := service.Create(ctx, types.CreateArticleParams{
			Title:    "Long Read",
			ReadTime: 12,
		})
		require.NoError(t, err)
		assert.Equal(t, 12, article.ReadTime)
		mockRepo.AssertExpectations(t)
	})
}

func TestArticleServiceImpl_List(t *testing.T) {
	ctx := context.Background()

	t.Run("passes filter through", func(t *testing.T) {
		service, mockRepo := setupArticleServiceTest()

		published := true
		filter := types.ArticleFilter{Published: &published}
		mockRepo.On("List", mock.Anything, filter).Return([]types.Article{}, nil).Once()

		articles, err := service.List(ctx, filter)
		require.NoError(t, err)
		assert.Empty(t, articles)
		mockRepo.AssertExpectations(t)
	})
}
