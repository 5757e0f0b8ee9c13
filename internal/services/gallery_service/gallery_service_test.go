package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"inkai_studio/internal/domain/models"
	"inkai_studio/internal/repository"
	"inkai_studio/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) List(ctx context.Context) ([]models.GalleryItem, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.GalleryItem), args.Error(1)
}

func (m *MockItemRepository) GetByID(ctx context.Context, id string) (models.GalleryItem, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.GalleryItem), args.Error(1)
}

func (m *MockItemRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockFavoritesRepository struct {
	mock.Mock
}

func (m *MockFavoritesRepository) Add(ctx context.Context, userID, designID string) error {
	args := m.Called(ctx, userID, designID)
	return args.Error(0)
}

func (m *MockFavoritesRepository) Remove(ctx context.Context, userID, designID string) error {
	args := m.Called(ctx, userID, designID)
	return args.Error(0)
}

func (m *MockFavoritesRepository) List(ctx context.Context, userID string) ([]string, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFavoritesRepository) IsFavorite(ctx context.Context, userID, designID string) (bool, error) {
	args := m.Called(ctx, userID, designID)
	return args.Bool(0), args.Error(1)
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(repo repository.ItemRepository, favorites repository.FavoritesRepository) *GalleryService {
	return NewGalleryService(testLogger(), repo, favorites, 30*time.Second)
}

func TestGalleryService_ListDesigns(t *testing.T) {
	repo := new(MockItemRepository)
	repo.On("List", mock.Anything).Return(repository.FixtureItems(), nil).Once()

	svc := newService(repo, new(MockFavoritesRepository))

	state := models.DefaultFilterState()
	state.AIOnly = true
	state.SortBy = models.SortByPopular

	items, total, err := svc.ListDesigns(context.Background(), state)

	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, items, 3)
	assert.Equal(t, "Blackwork Mandala", items[0].Title)
	assert.Equal(t, "Tribal Phoenix", items[1].Title)
	assert.Equal(t, "Geometric Dragon", items[2].Title)

	repo.AssertExpectations(t)
}

func TestGalleryService_ListDesignsServedFromCache(t *testing.T) {
	repo := new(MockItemRepository)
	// Один запрос к репозиторию на два одинаковых состояния
	repo.On("List", mock.Anything).Return(repository.FixtureItems(), nil).Once()

	svc := newService(repo, new(MockFavoritesRepository))

	state := models.DefaultFilterState()
	state.Styles = []string{string(models.StyleGeometric)}

	first, _, err := svc.ListDesigns(context.Background(), state)
	require.NoError(t, err)

	second, _, err := svc.ListDesigns(context.Background(), state)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	repo.AssertExpectations(t)
}

func TestGalleryService_ListDesignsRepositoryError(t *testing.T) {
	repoErr := errors.New("connection refused")

	repo := new(MockItemRepository)
	repo.On("List", mock.Anything).Return(nil, repoErr)

	svc := newService(repo, new(MockFavoritesRepository))

	_, _, err := svc.ListDesigns(context.Background(), models.DefaultFilterState())

	assert.ErrorIs(t, err, repoErr)
}

func TestGalleryService_GetDesign(t *testing.T) {
	fixtures := repository.FixtureItems()

	repo := new(MockItemRepository)
	repo.On("GetByID", mock.Anything, "3").Return(fixtures[2], nil)
	repo.On("GetByID", mock.Anything, "missing").
		Return(models.GalleryItem{}, storage.ErrItemNotFound)

	svc := newService(repo, new(MockFavoritesRepository))

	item, err := svc.GetDesign(context.Background(), "3")
	require.NoError(t, err)
	assert.Equal(t, "Tribal Phoenix", item.Title)

	_, err = svc.GetDesign(context.Background(), "missing")
	assert.ErrorIs(t, err, storage.ErrItemNotFound)
}

func TestGalleryService_ListFacets(t *testing.T) {
	repo := new(MockItemRepository)
	repo.On("List", mock.Anything).Return(repository.FixtureItems(), nil)

	svc := newService(repo, new(MockFavoritesRepository))

	facets, err := svc.ListFacets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Blackwork", "Geometric", "Minimalist", "Tribal"}, facets.Styles)
	assert.Equal(t, []string{"Back", "Chest", "Shoulder", "Wrist"}, facets.BodyParts)
	assert.Equal(t, []string{"AI Studio", "Diego Rodriguez", "Marcus Chen", "Sarah Kim"}, facets.Artists)
}

func TestGalleryService_AddFavorite(t *testing.T) {
	fixtures := repository.FixtureItems()

	repo := new(MockItemRepository)
	repo.On("GetByID", mock.Anything, "1").Return(fixtures[0], nil)

	favorites := new(MockFavoritesRepository)
	favorites.On("Add", mock.Anything, "user-1", "1").Return(nil)

	svc := newService(repo, favorites)

	err := svc.AddFavorite(context.Background(), "user-1", "1")

	require.NoError(t, err)
	favorites.AssertExpectations(t)
}

func TestGalleryService_AddFavoriteUnknownDesign(t *testing.T) {
	repo := new(MockItemRepository)
	repo.On("GetByID", mock.Anything, "ghost").
		Return(models.GalleryItem{}, storage.ErrItemNotFound)

	favorites := new(MockFavoritesRepository)

	svc := newService(repo, favorites)

	err := svc.AddFavorite(context.Background(), "user-1", "ghost")

	assert.ErrorIs(t, err, storage.ErrItemNotFound)
	favorites.AssertNotCalled(t, "Add", mock.Anything, mock.Anything, mock.Anything)
}

func TestGalleryService_ListFavoritesSkipsRemovedDesigns(t *testing.T) {
	fixtures := repository.FixtureItems()

	repo := new(MockItemRepository)
	repo.On("GetByID", mock.Anything, "2").Return(fixtures[1], nil)
	repo.On("GetByID", mock.Anything, "deleted").
		Return(models.GalleryItem{}, storage.ErrItemNotFound)

	favorites := new(MockFavoritesRepository)
	favorites.On("List", mock.Anything, "user-1").Return([]string{"2", "deleted"}, nil)

	svc := newService(repo, favorites)

	items, err := svc.ListFavorites(context.Background(), "user-1")

	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Minimalist Rose", items[0].Title)
}

func TestGalleryService_RemoveFavorite(t *testing.T) {
	favorites := new(MockFavoritesRepository)
	favorites.On("Remove", mock.Anything, "user-1", "2").Return(nil)

	svc := newService(new(MockItemRepository), favorites)

	require.NoError(t, svc.RemoveFavorite(context.Background(), "user-1", "2"))
	favorites.AssertExpectations(t)
}
