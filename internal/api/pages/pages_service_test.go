package pages

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

// MockPageSectionRepo is a mock implementation of PageSectionRepository
type MockPageSectionRepo struct {
	mock.Mock
}

func (m *MockPageSectionRepo) ListByPage(ctx context.Context, pageName string) ([]types.PageSection, error) {
	args := m.Called(ctx, pageName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.PageSection), args.Error(1)
}

func (m *MockPageSectionRepo) Create(ctx context.Context, section *types.PageSection) error {
	args := m.Called(ctx, section)
	return args.Error(0)
}

func (m *MockPageSectionRepo) Update(ctx context.Context, section *types.PageSection) error {
	args := m.Called(ctx, section)
	return args.Error(0)
}

func (m *MockPageSectionRepo) Delete(ctx context.Context, sectionID string) error {
	args := m.Called(ctx, sectionID)
	return args.Error(0)
}

func setupPageSectionServiceTest() (*PageSectionServiceImpl, *MockPageSectionRepo) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	mockRepo := new(MockPageSectionRepo)
	service := NewPageSectionService(mockRepo, logger)
	return service, mockRepo
}

func TestPageSectionServiceImpl_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("omitted visibility defaults to visible", func(t *testing.T) {
		service, mockRepo := setupPageSectionServiceTest()
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*types.PageSection")).Return(nil).Once()

		section, err := service.Create(ctx, types.CreatePageSectionParams{
			PageName:    "home",
			SectionName: "hero",
			SectionType: "hero",
		})
		require.NoError(t, err)
		assert.True(t, section.Visible)
		assert.NotNil(t, section.Content)
		mockRepo.AssertExpectations(t)
	})

	t.Run("explicit hidden section stays hidden", func(t *testing.T) {
		service, mockRepo := setupPageSectionServiceTest()
		mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*types.PageSection")).Return(nil).Once()

		hidden := false
		section, err := service.Create(ctx, types.CreatePageSectionParams{
			PageName:    "home",
			SectionName: "announcement",
			SectionType: "banner",
			Visible:     &hidden,
		})
		require.NoError(t, err)
		assert.False(t, section.Visible)
		mockRepo.AssertExpectations(t)
	})
}

func TestPageSectionServiceImpl_ListByPage(t *testing.T) {
	ctx := context.Background()

	t.Run("returns sections for the page", func(t *testing.T) {
		service, mockRepo := setupPageSectionServiceTest()

		sections := []types.PageSection{
			{ID: "sec-1", PageName: "about", SectionName: "story", Order: 1, Visible: true},
		}
		mockRepo.On("ListByPage", mock.Anything, "about").Return(sections, nil).Once()

		got, err := service.ListByPage(ctx, "about")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "story", got[0].SectionName)
		mockRepo.AssertExpectations(t)
	})
}
