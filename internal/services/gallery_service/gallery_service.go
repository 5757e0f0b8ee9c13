package services

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"inkai_studio/internal/domain/models"
	"inkai_studio/internal/lib/logger/sl"
	"inkai_studio/internal/repository"
	filter "inkai_studio/internal/services/filter_service"

	"github.com/patrickmn/go-cache"
)

// Facets доступные значения измерений фильтра для боковой панели
type Facets struct {
	Styles    []string `json:"styles"`
	BodyParts []string `json:"body_parts"`
	Artists   []string `json:"artists"`
}

type GalleryService struct {
	log       *slog.Logger
	repo      repository.ItemRepository
	favorites repository.FavoritesRepository

	// Кэш результатов фильтрации по каноническому ключу состояния.
	// Коллекция статична, так что TTL ограничивает устаревание без вреда.
	cache *cache.Cache
}

func NewGalleryService(log *slog.Logger, repo repository.ItemRepository, favorites repository.FavoritesRepository, cacheTTL time.Duration) *GalleryService {
	if cacheTTL <= 0 {
		cacheTTL = 30 * time.Second
	}

	return &GalleryService{
		log:       log,
		repo:      repo,
		favorites: favorites,
		cache:     cache.New(cacheTTL, 2*cacheTTL),
	}
}

// ListDesigns возвращает отфильтрованный и отсортированный список дизайнов
func (s *GalleryService) ListDesigns(ctx context.Context, state models.FilterState) ([]models.GalleryItem, int, error) {
	const op = "gallery_service.ListDesigns"

	log := s.log.With(
		slog.String("op", op),
		slog.String("sort_by", string(state.SortBy)),
	)

	key := state.CacheKey()
	if cached, ok := s.cache.Get(key); ok {
		items := cached.([]models.GalleryItem)
		return items, len(items), nil
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		log.Error("failed to list designs", sl.Err(err))
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	filtered := filter.Apply(items, state)
	s.cache.Set(key, filtered, cache.DefaultExpiration)

	log.Info("designs filtered",
		slog.Int("total", len(items)),
		slog.Int("matched", len(filtered)),
	)

	return filtered, len(filtered), nil
}

// GetDesign возвращает дизайн по ID
func (s *GalleryService) GetDesign(ctx context.Context, id string) (models.GalleryItem, error) {
	const op = "gallery_service.GetDesign"

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return models.GalleryItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

// ListFacets возвращает отличные значения стилей, частей тела и авторов
func (s *GalleryService) ListFacets(ctx context.Context) (Facets, error) {
	const op = "gallery_service.ListFacets"

	items, err := s.repo.List(ctx)
	if err != nil {
		s.log.Error("failed to list designs for facets", slog.String("op", op), sl.Err(err))
		return Facets{}, fmt.Errorf("%s: %w", op, err)
	}

	styles := make(map[string]struct{})
	bodyParts := make(map[string]struct{})
	artists := make(map[string]struct{})
	for _, item := range items {
		styles[string(item.Style)] = struct{}{}
		bodyParts[string(item.BodyPart)] = struct{}{}
		artists[item.Artist] = struct{}{}
	}

	return Facets{
		Styles:    sortedKeys(styles),
		BodyParts: sortedKeys(bodyParts),
		Artists:   sortedKeys(artists),
	}, nil
}

// AddFavorite добавляет дизайн в избранное пользователя
func (s *GalleryService) AddFavorite(ctx context.Context, userID, designID string) error {
	const op = "gallery_service.AddFavorite"

	log := s.log.With(
		slog.String("op", op),
		slog.String("user_id", userID),
		slog.String("design_id", designID),
	)

	// Дизайн должен существовать
	if _, err := s.repo.GetByID(ctx, designID); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.favorites.Add(ctx, userID, designID); err != nil {
		log.Error("failed to add favorite", sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	log.Info("favorite added")
	return nil
}

// RemoveFavorite убирает дизайн из избранного пользователя
func (s *GalleryService) RemoveFavorite(ctx context.Context, userID, designID string) error {
	const op = "gallery_service.RemoveFavorite"

	if err := s.favorites.Remove(ctx, userID, designID); err != nil {
		s.log.Error("failed to remove favorite", slog.String("op", op), sl.Err(err))
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// ListFavorites возвращает избранные дизайны пользователя.
// Идентификаторы, чьи дизайны были удалены, молча пропускаются.
func (s *GalleryService) ListFavorites(ctx context.Context, userID string) ([]models.GalleryItem, error) {
	const op = "gallery_service.ListFavorites"

	ids, err := s.favorites.List(ctx, userID)
	if err != nil {
		s.log.Error("failed to list favorites", slog.String("op", op), sl.Err(err))
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items := make([]models.GalleryItem, 0, len(ids))
	for _, id := range ids {
		item, err := s.repo.GetByID(ctx, id)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
