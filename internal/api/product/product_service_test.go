package product

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/h1zik/ELLAVERABEAUTY/internal/types"
)

// MockProductRepo is a mock implementation of ProductRepository
type MockProductRepo struct {
	mock.Mock
}

func (m *MockProductRepo) List(ctx context.Context, filter types.ProductFilter) ([]types.Product, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.Product), args.Error(1)
}

func (m *MockProductRepo) Get(ctx context.Context, productID string) (*types.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.Product), args.Error(1)
}

func (m *MockProductRepo) Create(ctx context.Context, product *types.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepo) Update(ctx context.Context, product *types.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepo) Delete(ctx context.Context, productID string) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

func (m *MockProductRepo) AddImage(ctx context.Context, productID, imageURL string) ([]string, error) {
	args := m.Called(ctx, productID, imageURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockProductRepo) AddDocument(ctx context.Context, productID string, doc types.ProductDocument) ([]types.ProductDocument, error) {
	args := m.Called(ctx, productID, doc)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ProductDocument), args.Error(1)
}

func (m *MockProductRepo) RemoveDocument(ctx context.Context, productID, documentID string) ([]types.ProductDocument, error) {
	args := m.Called(ctx, productID, documentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.ProductDocument), args.Error(1)
}

func setupProductServiceTest() (*ProductServiceImpl, *MockProductRepo) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockProductRepo)
	service := NewProductService(mockRepo, logger)
	return service, mockRepo
}

func TestProductServiceImpl_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("derives slug and initializes arrays", func(t *testing.T) {
		service, mockRepo := setupProductServiceTest()

		var created *types.Product
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*types.Product")).
			Run(func(args mock.Arguments) {
				created = args.Get(1).(*types.Product)
			}).Return(nil).Once()

		product, err := service.Create(ctx, types.CreateProductParams{
			Name:        "Hydrating Face Serum",
			CategoryID:  "cat-1",
			Description: "A serum.",
			Featured:    true,
		})
		require.NoError(t, err)
		require.NotNil(t, created)
		assert.Equal(t, "hydrating-face-serum", product.Slug)
		assert.NotEmpty(t, product.ID)
		assert.NotNil(t, product.Images)
		assert.Empty(t, product.Images)
		assert.NotNil(t, product.Documents)
		assert.True(t, product.Featured)
		assert.Equal(t, product.CreatedAt, product.UpdatedAt)
		mockRepo.AssertExpectations(t)
	})
}

func TestProductServiceImpl_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("regenerates slug and reloads", func(t *testing.T) {
		service, mockRepo := setupProductServiceTest()

		mockRepo.On("Update", mock.Anything, mock.MatchedBy(func(p *types.Product) bool {
			return p.ID == "prod-1" && p.Slug == "renamed-serum"
		})).Return(nil).Once()

		name := "category"
		reloaded := &types.Product{ID: "prod-1", Name: "Renamed Serum", Slug: "renamed-serum", CategoryName: &name}
		mockRepo.On("Get", mock.Anything, "prod-1").Return(reloaded, nil).Once()

		product, err := service.Update(ctx, "prod-1", types.CreateProductParams{
			Name:        "Renamed Serum",
			CategoryID:  "cat-1",
			Description: "A serum.",
		})
		require.NoError(t, err)
		assert.Equal(t, "renamed-serum", product.Slug)
		assert.NotNil(t, product.CategoryName)
		mockRepo.AssertExpectations(t)
	})

	t.Run("not found propagates", func(t *testing.T) {
		service, mockRepo := setupProductServiceTest()
		mockRepo.On("Update", mock.Anything, mock.AnythingOfType("*types.Product")).
			Return(types.ErrNotFound).Once()

		_, err := service.Update(ctx, "missing", types.CreateProductParams{Name: "X", CategoryID: "c"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, types.ErrNotFound))
		mockRepo.AssertExpectations(t)
	})
}

func TestProductServiceImpl_AddDocument(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps id and upload time", func(t *testing.T) {
		service, mockRepo := setupProductServiceTest()

		var attached types.ProductDocument
		mockRepo.On("AddDocument", mock.Anything, "prod-1", mock.AnythingOfType("types.ProductDocument")).
			Run(func(args mock.Arguments) {
				attached = args.Get(2).(types.ProductDocument)
			}).Return([]types.ProductDocument{}, nil).Once()

		_, err := service.AddDocument(ctx, "prod-1", types.AddProductDocumentParams{
			Name: "Safety Data Sheet",
			URL:  "data:application/pdf;base64,AAAA",
			Type: "pdf",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, attached.ID)
		assert.False(t, attached.UploadedAt.IsZero())
		assert.Equal(t, "Safety Data Sheet", attached.Name)
		mockRepo.AssertExpectations(t)
	})
}
