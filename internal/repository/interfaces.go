package repository

import (
	"context"

	"inkai_studio/internal/domain/models"
)

type ItemRepository interface {
	List(ctx context.Context) ([]models.GalleryItem, error)
	GetByID(ctx context.Context, id string) (models.GalleryItem, error)
	Count(ctx context.Context) (int, error)
}

type FavoritesRepository interface {
	Add(ctx context.Context, userID, designID string) error
	Remove(ctx context.Context, userID, designID string) error
	List(ctx context.Context, userID string) ([]string, error)
	IsFavorite(ctx context.Context, userID, designID string) (bool, error)
}
