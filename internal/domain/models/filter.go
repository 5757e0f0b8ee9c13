package models

import (
	"sort"
	"strings"
)

type SortKey string

const (
	SortByRecent  SortKey = "recent"
	SortByPopular SortKey = "popular"
	// SortByRating исторически сортирует по просмотрам, а не по оценкам.
	// Поведение сохранено намеренно, см. DESIGN.md.
	SortByRating SortKey = "rating"
)

// ParseSortKey неизвестные значения деградируют к сортировке по дате
func ParseSortKey(raw string) SortKey {
	switch SortKey(strings.ToLower(strings.TrimSpace(raw))) {
	case SortByPopular:
		return SortByPopular
	case SortByRating:
		return SortByRating
	default:
		return SortByRecent
	}
}

type FilterDimension string

const (
	DimensionStyles    FilterDimension = "styles"
	DimensionBodyParts FilterDimension = "body_parts"
	DimensionColors    FilterDimension = "colors"
	DimensionArtists   FilterDimension = "artists"
)

// FilterState представляет собой полный текущий запрос к галерее.
// Все поля всегда заданы: пустое множество означает "без ограничения
// по этому измерению", а не "исключить всё".
type FilterState struct {
	Styles      []string `json:"styles"`
	BodyParts   []string `json:"body_parts"`
	Colors      []string `json:"colors"`
	Artists     []string `json:"artists"`
	SearchQuery string   `json:"search_query"`
	AIOnly      bool     `json:"is_ai_only"`
	SortBy      SortKey  `json:"sort_by"`
}

// DefaultFilterState возвращает состояние со всеми пустыми значениями
func DefaultFilterState() FilterState {
	return FilterState{
		Styles:    []string{},
		BodyParts: []string{},
		Colors:    []string{},
		Artists:   []string{},
		SortBy:    SortByRecent,
	}
}

// FilterUpdate частичное обновление фильтра: nil-поле не трогает
// соответствующее поле состояния
type FilterUpdate struct {
	Styles      *[]string
	BodyParts   *[]string
	Colors      *[]string
	Artists     *[]string
	SearchQuery *string
	AIOnly      *bool
	SortBy      *SortKey
}

// Merge возвращает новое состояние с примененными полями обновления
func (f FilterState) Merge(u FilterUpdate) FilterState {
	next := f
	if u.Styles != nil {
		next.Styles = append([]string(nil), (*u.Styles)...)
	}
	if u.BodyParts != nil {
		next.BodyParts = append([]string(nil), (*u.BodyParts)...)
	}
	if u.Colors != nil {
		next.Colors = append([]string(nil), (*u.Colors)...)
	}
	if u.Artists != nil {
		next.Artists = append([]string(nil), (*u.Artists)...)
	}
	if u.SearchQuery != nil {
		next.SearchQuery = *u.SearchQuery
	}
	if u.AIOnly != nil {
		next.AIOnly = *u.AIOnly
	}
	if u.SortBy != nil {
		next.SortBy = *u.SortBy
	}
	return next
}

// Toggle добавляет значение в множество измерения или убирает его,
// если оно уже выбрано
func (f FilterState) Toggle(dimension FilterDimension, value string) FilterState {
	next := f
	switch dimension {
	case DimensionStyles:
		next.Styles = toggleValue(f.Styles, value)
	case DimensionBodyParts:
		next.BodyParts = toggleValue(f.BodyParts, value)
	case DimensionColors:
		next.Colors = toggleValue(f.Colors, value)
	case DimensionArtists:
		next.Artists = toggleValue(f.Artists, value)
	}
	return next
}

// CacheKey каноническое строковое представление состояния для ключей кэша.
// Порядок значений внутри множеств не влияет на ключ.
func (f FilterState) CacheKey() string {
	var b strings.Builder
	writeSet := func(name string, values []string) {
		sorted := append([]string(nil), values...)
		sort.Strings(sorted)
		b.WriteString(name)
		b.WriteString("=")
		b.WriteString(strings.Join(sorted, ","))
		b.WriteString(";")
	}

	writeSet("styles", f.Styles)
	writeSet("body_parts", f.BodyParts)
	writeSet("colors", f.Colors)
	writeSet("artists", f.Artists)
	b.WriteString("q=")
	b.WriteString(strings.ToLower(f.SearchQuery))
	b.WriteString(";ai=")
	if f.AIOnly {
		b.WriteString("1")
	} else {
		b.WriteString("0")
	}
	b.WriteString(";sort=")
	b.WriteString(string(f.SortBy))

	return b.String()
}

func toggleValue(set []string, value string) []string {
	for i, v := range set {
		if v == value {
			return append(append([]string(nil), set[:i]...), set[i+1:]...)
		}
	}
	return append(append([]string(nil), set...), value)
}
