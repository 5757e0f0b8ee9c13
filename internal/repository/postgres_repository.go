package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"inkai_studio/internal/domain/models"
	"inkai_studio/internal/storage"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/lib/pq"
)

const designsTable = "designs"

var designColumns = []string{
	"id", "title", "artist", "style", "body_part",
	"colors", "tags", "image_url", "thumbnail_url",
	"before_image", "after_image", "likes", "downloads", "views",
	"is_ai_enhanced", "featured", "process_steps", "metadata",
}

// PostgresItemRepo хранит дизайны в PostgreSQL. В боевом развертывании
// заменяет фикстурный репозиторий при заданном DSN.
type PostgresItemRepo struct {
	db *pgxpool.Pool
	sb squirrel.StatementBuilderType
}

func NewPostgresItemRepo(db *pgxpool.Pool) *PostgresItemRepo {
	return &PostgresItemRepo{
		db: db,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// SaveItem сохраняет дизайн и возвращает его ID
func (r *PostgresItemRepo) SaveItem(ctx context.Context, item models.GalleryItem) (string, error) {
	const op = "repository.PostgresItemRepo.SaveItem"

	if err := item.Validate(); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	steps, err := json.Marshal(item.ProcessSteps)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	meta, err := json.Marshal(item.Metadata)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Insert(designsTable).
		Columns(designColumns...).
		Values(
			item.ID,
			item.Title,
			item.Artist,
			string(item.Style),
			string(item.BodyPart),
			pq.Array(item.Colors),
			pq.Array(item.Tags),
			item.ImageURL,
			item.ThumbnailURL,
			item.BeforeImage,
			item.AfterImage,
			item.Likes,
			item.Downloads,
			item.Views,
			item.IsAIEnhanced,
			item.Featured,
			steps,
			meta,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	var id string
	if err := r.db.QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

// List возвращает все дизайны, новые первыми. Фильтрация и сортировка
// по запросу пользователя выполняются движком фильтра в памяти.
func (r *PostgresItemRepo) List(ctx context.Context) ([]models.GalleryItem, error) {
	const op = "repository.PostgresItemRepo.List"

	query, args, err := r.sb.Select(designColumns...).
		From(designsTable).
		OrderBy("(metadata->>'created_at') DESC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.GalleryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// ListPage постраничная выборка для боевого API
func (r *PostgresItemRepo) ListPage(ctx context.Context, page, perPage int) ([]models.GalleryItem, int, error) {
	const op = "repository.PostgresItemRepo.ListPage"

	// Проверка и корректировка параметров пагинации
	if page < 1 {
		page = 1
	}
	if perPage < 1 || perPage > 100 {
		perPage = 25
	}

	total, err := r.Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Select(designColumns...).
		From(designsTable).
		OrderBy("(metadata->>'created_at') DESC").
		Limit(uint64(perPage)).
		Offset(uint64((page - 1) * perPage)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.GalleryItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("%s: %w", op, err)
		}
		items = append(items, item)
	}

	return items, total, nil
}

func (r *PostgresItemRepo) GetByID(ctx context.Context, id string) (models.GalleryItem, error) {
	const op = "repository.PostgresItemRepo.GetByID"

	query, args, err := r.sb.Select(designColumns...).
		From(designsTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.GalleryItem{}, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return models.GalleryItem{}, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return models.GalleryItem{}, fmt.Errorf("%s: %w", op, err)
		}
		return models.GalleryItem{}, fmt.Errorf("%s: %w", op, storage.ErrItemNotFound)
	}

	item, err := scanItem(rows)
	if err != nil {
		return models.GalleryItem{}, fmt.Errorf("%s: %w", op, err)
	}

	return item, nil
}

func (r *PostgresItemRepo) Count(ctx context.Context) (int, error) {
	const op = "repository.PostgresItemRepo.Count"

	query, args, err := r.sb.Select("COUNT(*)").From(designsTable).ToSql()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	var count int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&count); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, nil
		}
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return count, nil
}

func scanItem(rows pgx.Rows) (models.GalleryItem, error) {
	var (
		item  models.GalleryItem
		style string
		part  string
		steps []byte
		meta  []byte
	)

	err := rows.Scan(
		&item.ID,
		&item.Title,
		&item.Artist,
		&style,
		&part,
		pq.Array(&item.Colors),
		pq.Array(&item.Tags),
		&item.ImageURL,
		&item.ThumbnailURL,
		&item.BeforeImage,
		&item.AfterImage,
		&item.Likes,
		&item.Downloads,
		&item.Views,
		&item.IsAIEnhanced,
		&item.Featured,
		&steps,
		&meta,
	)
	if err != nil {
		return models.GalleryItem{}, err
	}

	item.Style = models.TattooStyle(style)
	item.BodyPart = models.BodyPart(part)

	if len(steps) > 0 {
		if err := json.Unmarshal(steps, &item.ProcessSteps); err != nil {
			return models.GalleryItem{}, err
		}
	}
	if len(meta) > 0 {
		if err := json.Unmarshal(meta, &item.Metadata); err != nil {
			return models.GalleryItem{}, err
		}
	}

	return item, nil
}
