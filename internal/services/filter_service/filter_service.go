package services

import (
	"sort"
	"strings"

	"inkai_studio/internal/domain/models"
	"inkai_studio/internal/metrics"
)

// Apply возвращает новый упорядоченный срез дизайнов, удовлетворяющих
// всем активным предикатам фильтра. Чистая функция: вход не изменяется,
// одинаковый вход дает одинаковый выход, вызывать можно на каждое
// изменение состояния.
func Apply(items []models.GalleryItem, state models.FilterState) []models.GalleryItem {
	filtered := make([]models.GalleryItem, 0, len(items))
	for _, item := range items {
		if matches(item, state) {
			filtered = append(filtered, item)
		}
	}

	sortItems(filtered, state.SortBy)

	metrics.GalleryFilterApplied.WithLabelValues(string(state.SortBy)).Inc()

	return filtered
}

// matches предикаты объединяются по AND; пустое множество измерения
// всегда пропускает
func matches(item models.GalleryItem, state models.FilterState) bool {
	if !matchesSearch(item, state.SearchQuery) {
		return false
	}
	if len(state.Styles) > 0 && !contains(state.Styles, string(item.Style)) {
		return false
	}
	if len(state.BodyParts) > 0 && !contains(state.BodyParts, string(item.BodyPart)) {
		return false
	}
	if len(state.Artists) > 0 && !contains(state.Artists, item.Artist) {
		return false
	}
	if state.AIOnly && !item.IsAIEnhanced {
		return false
	}
	// Измерение colors существует в FilterState, но в цепочку предикатов
	// не включено: в исходном продукте фильтр по цвету так и не был
	// подключен. Не "чиним" молча, решение зафиксировано в DESIGN.md.
	return true
}

// matchesSearch регистронезависимый поиск подстроки по заголовку и тегам
func matchesSearch(item models.GalleryItem, query string) bool {
	if query == "" {
		return true
	}

	q := strings.ToLower(query)
	if strings.Contains(strings.ToLower(item.Title), q) {
		return true
	}
	for _, tag := range item.Tags {
		if strings.Contains(strings.ToLower(tag), q) {
			return true
		}
	}
	return false
}

// sortItems стабильная сортировка по убыванию выбранного ключа.
// "rating" сортирует по просмотрам — буквальное поведение оригинала.
func sortItems(items []models.GalleryItem, key models.SortKey) {
	switch key {
	case models.SortByPopular:
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].Likes > items[b].Likes
		})
	case models.SortByRating:
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].Views > items[b].Views
		})
	default:
		sort.SliceStable(items, func(a, b int) bool {
			return items[a].CreatedAt().After(items[b].CreatedAt())
		})
	}
}

func contains(set []string, value string) bool {
	for _, v := range set {
		if v == value {
			return true
		}
	}
	return false
}
