package dto

import (
	"inkai_studio/internal/domain/models"
)

// ListDesignsRequest параметры запроса списка; повторяющиеся
// query-параметры собираются в множества измерений
type ListDesignsRequest struct {
	Styles    []string `query:"style"`
	BodyParts []string `query:"body_part"`
	Colors    []string `query:"color"`
	Artists   []string `query:"artist"`
	Search    string   `query:"q"`
	AIOnly    bool     `query:"ai_only"`
	SortBy    string   `query:"sort"`
}

// ToFilterState собирает полностью заданное состояние фильтра:
// отсутствующие параметры деградируют к "без ограничения"
func (r ListDesignsRequest) ToFilterState() models.FilterState {
	state := models.DefaultFilterState()
	if len(r.Styles) > 0 {
		state.Styles = r.Styles
	}
	if len(r.BodyParts) > 0 {
		state.BodyParts = r.BodyParts
	}
	if len(r.Colors) > 0 {
		state.Colors = r.Colors
	}
	if len(r.Artists) > 0 {
		state.Artists = r.Artists
	}
	state.SearchQuery = r.Search
	state.AIOnly = r.AIOnly
	state.SortBy = models.ParseSortKey(r.SortBy)
	return state
}

// DesignListResponse представляет собой DTO для ответа со списком дизайнов
type DesignListResponse struct {
	Items []models.GalleryItem `json:"items"` // Отфильтрованный и отсортированный список
	Total int                  `json:"total"` // Количество элементов после фильтрации
}

type AddFavoriteRequest struct {
	DesignID string `json:"design_id" validate:"required"`
}

type GenerateDesignRequest struct {
	Prompt   string   `json:"prompt" validate:"required"`
	Style    string   `json:"style"`
	BodyPart string   `json:"body_part"`
	Colors   []string `json:"colors"`
}

func (r GenerateDesignRequest) ToParams() models.GenerationParams {
	return models.GenerationParams{
		Prompt:   r.Prompt,
		Style:    r.Style,
		BodyPart: r.BodyPart,
		Colors:   r.Colors,
	}
}
