package repository

import (
	"context"
	"sort"

	redisapp "inkai_studio/internal/storage/redis"
)

// RedisFavoritesRepo хранит избранное пользователей в множествах redis
type RedisFavoritesRepo struct {
	Client *redisapp.Client
}

func NewRedisFavoritesRepo(client *redisapp.Client) *RedisFavoritesRepo {
	return &RedisFavoritesRepo{Client: client}
}

func (r *RedisFavoritesRepo) Add(ctx context.Context, userID, designID string) error {
	return r.Client.SAdd(ctx, favoritesKey(userID), designID).Err()
}

func (r *RedisFavoritesRepo) Remove(ctx context.Context, userID, designID string) error {
	return r.Client.SRem(ctx, favoritesKey(userID), designID).Err()
}

func (r *RedisFavoritesRepo) List(ctx context.Context, userID string) ([]string, error) {
	ids, err := r.Client.SMembers(ctx, favoritesKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	// SMembers не гарантирует порядок
	sort.Strings(ids)
	return ids, nil
}

func (r *RedisFavoritesRepo) IsFavorite(ctx context.Context, userID, designID string) (bool, error) {
	return r.Client.SIsMember(ctx, favoritesKey(userID), designID).Result()
}

func favoritesKey(userID string) string {
	return "favorites:" + userID
}
