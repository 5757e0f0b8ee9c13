package http

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"inkai_studio/internal/domain/models"
	"inkai_studio/internal/lib/logger/sl"
	"inkai_studio/internal/storage"
	"inkai_studio/internal/transport/http/dto"
	"inkai_studio/internal/transport/http/dto/response"

	gallerysvc "inkai_studio/internal/services/gallery_service"
	generationsvc "inkai_studio/internal/services/generation_service"

	"github.com/labstack/echo/v4"
)

type GalleryService interface {
	ListDesigns(ctx context.Context, state models.FilterState) ([]models.GalleryItem, int, error)
	GetDesign(ctx context.Context, id string) (models.GalleryItem, error)
	ListFacets(ctx context.Context) (gallerysvc.Facets, error)
	AddFavorite(ctx context.Context, userID, designID string) error
	RemoveFavorite(ctx context.Context, userID, designID string) error
	ListFavorites(ctx context.Context, userID string) ([]models.GalleryItem, error)
}

type GenerationService interface {
	Start(params models.GenerationParams) (string, error)
	Job(id string) (models.GenerationJob, error)
	Cancel(id string) error
}

type Routers struct {
	log               *slog.Logger
	GalleryService    GalleryService
	GenerationService GenerationService
}

func NewRouter(log *slog.Logger, galleryService GalleryService, generationService GenerationService) *Routers {
	return &Routers{
		log:               log,
		GalleryService:    galleryService,
		GenerationService: generationService,
	}
}

// ListDesigns возвращает дизайны, удовлетворяющие фильтру из query-параметров.
// Пустой результат — это 200 с пустым списком, не ошибка.
func (r *Routers) ListDesigns(c echo.Context) error {
	const op = "http.routers.ListDesigns"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.ListDesignsRequest
	if err := c.Bind(&req); err != nil {
		log.Warn("failed to bind query", sl.Err(err))
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	items, total, err := r.GalleryService.ListDesigns(c.Request().Context(), req.ToFilterState())
	if err != nil {
		log.Error("failed to list designs", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.DesignListResponse{
		Items: items,
		Total: total,
	}))
}

func (r *Routers) GetDesign(c echo.Context) error {
	const op = "http.routers.GetDesign"

	item, err := r.GalleryService.GetDesign(c.Request().Context(), c.Param("design_id"))
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrDesignNotFound)
		}
		r.log.Error("failed to get design", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(item))
}

// ListFacets значения измерений фильтра для боковой панели
func (r *Routers) ListFacets(c echo.Context) error {
	const op = "http.routers.ListFacets"

	facets, err := r.GalleryService.ListFacets(c.Request().Context())
	if err != nil {
		r.log.Error("failed to list facets", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(facets))
}

func (r *Routers) AddFavorite(c echo.Context) error {
	const op = "http.routers.AddFavorite"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.AddFavoriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		resp := response.ErrInvalidRequestFormat
		resp.Details = err.Error()
		return c.JSON(http.StatusBadRequest, resp)
	}

	err := r.GalleryService.AddFavorite(c.Request().Context(), c.Param("user_id"), req.DesignID)
	if err != nil {
		if errors.Is(err, storage.ErrItemNotFound) {
			return c.JSON(http.StatusNotFound, response.ErrDesignNotFound)
		}
		log.Error("failed to add favorite", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusCreated, response.Response{
		Status:  "success",
		Message: "favorite added",
	})
}

func (r *Routers) RemoveFavorite(c echo.Context) error {
	const op = "http.routers.RemoveFavorite"

	err := r.GalleryService.RemoveFavorite(c.Request().Context(), c.Param("user_id"), c.Param("design_id"))
	if err != nil {
		r.log.Error("failed to remove favorite", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, response.Response{
		Status:  "success",
		Message: "favorite removed",
	})
}

func (r *Routers) ListFavorites(c echo.Context) error {
	const op = "http.routers.ListFavorites"

	items, err := r.GalleryService.ListFavorites(c.Request().Context(), c.Param("user_id"))
	if err != nil {
		r.log.Error("failed to list favorites", slog.String("op", op), sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(dto.DesignListResponse{
		Items: items,
		Total: len(items),
	}))
}

// StartGeneration ставит задачу генерации; статус опрашивается по ID
func (r *Routers) StartGeneration(c echo.Context) error {
	const op = "http.routers.StartGeneration"

	log := r.log.With(
		slog.String("op", op),
	)

	var req dto.GenerateDesignRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrInvalidRequestFormat)
	}

	if err := c.Validate(req); err != nil {
		return c.JSON(http.StatusBadRequest, response.ErrPromptRequired)
	}

	jobID, err := r.GenerationService.Start(req.ToParams())
	if err != nil {
		if errors.Is(err, generationsvc.ErrEmptyPrompt) {
			return c.JSON(http.StatusBadRequest, response.ErrPromptRequired)
		}
		log.Error("failed to start generation", sl.Err(err))
		return c.JSON(http.StatusInternalServerError, response.ErrorResponseWithDetails("internal_error", "Internal server error"))
	}

	return c.JSON(http.StatusAccepted, response.SuccessResponse(map[string]string{
		"job_id": jobID,
	}))
}

func (r *Routers) GetGeneration(c echo.Context) error {
	job, err := r.GenerationService.Job(c.Param("job_id"))
	if err != nil {
		return c.JSON(http.StatusNotFound, response.ErrGenerationNotFound)
	}

	return c.JSON(http.StatusOK, response.SuccessResponse(job))
}

func (r *Routers) CancelGeneration(c echo.Context) error {
	if err := r.GenerationService.Cancel(c.Param("job_id")); err != nil {
		return c.JSON(http.StatusNotFound, response.ErrGenerationNotFound)
	}

	return c.JSON(http.StatusOK, response.Response{
		Status:  "success",
		Message: "generation cancelled",
	})
}

func (r *Routers) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, response.Response{
		Status: "success",
	})
}
