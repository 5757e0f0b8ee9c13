package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"inkai_studio/internal/domain/models"
	"inkai_studio/internal/storage"
)

// FixtureRepo хранит дизайны в памяти. Коллекция неизменяема после
// создания, поэтому конкурентное чтение безопасно без блокировок.
// В реальном развертывании его место занимает PostgresItemRepo.
type FixtureRepo struct {
	items []models.GalleryItem
	index map[string]int
}

// NewFixtureRepo загружает дизайны из JSON-файла; при пустом пути
// используется встроенный демо-набор
func NewFixtureRepo(filePath string) (*FixtureRepo, error) {
	const op = "repository.FixtureRepo.New"

	items := FixtureItems()

	if filePath != "" {
		data, err := os.ReadFile(filePath)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		items = nil
		if err := json.Unmarshal(data, &items); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	index := make(map[string]int, len(items))
	for i := range items {
		if err := items[i].Validate(); err != nil {
			return nil, fmt.Errorf("%s: item %q: %w", op, items[i].ID, err)
		}
		if _, exists := index[items[i].ID]; exists {
			return nil, fmt.Errorf("%s: item %q: %w", op, items[i].ID, storage.ErrDuplicateID)
		}
		index[items[i].ID] = i
	}

	return &FixtureRepo{items: items, index: index}, nil
}

// List возвращает копию коллекции, чтобы вызывающий код не мог
// изменить внутреннее состояние
func (r *FixtureRepo) List(ctx context.Context) ([]models.GalleryItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out := make([]models.GalleryItem, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *FixtureRepo) GetByID(ctx context.Context, id string) (models.GalleryItem, error) {
	const op = "repository.FixtureRepo.GetByID"

	if err := ctx.Err(); err != nil {
		return models.GalleryItem{}, err
	}

	i, ok := r.index[id]
	if !ok {
		return models.GalleryItem{}, fmt.Errorf("%s: %w", op, storage.ErrItemNotFound)
	}
	return r.items[i], nil
}

func (r *FixtureRepo) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(r.items), nil
}

// FixtureItems демо-набор дизайнов
func FixtureItems() []models.GalleryItem {
	return []models.GalleryItem{
		{
			ID:           "1",
			Title:        "Geometric Dragon",
			Artist:       "AI Studio",
			Style:        models.StyleGeometric,
			BodyPart:     models.BodyPartBack,
			Colors:       []string{"#000000", "#FF6B6B", "#4ECDC4"},
			Tags:         []string{"dragon", "geometric", "large", "fantasy"},
			ImageURL:     "/uploads/dff4538d-c0da-4c9a-9a49-868dd441466b.png",
			ThumbnailURL: "/uploads/dff4538d-c0da-4c9a-9a49-868dd441466b.png",
			Likes:        245,
			Downloads:    67,
			Views:        1200,
			IsAIEnhanced: true,
			Featured:     true,
			ProcessSteps: []models.ProcessStep{
				{
					ID:          "1",
					Name:        "Initial Sketch",
					Description: "AI-generated base design using style transfer",
					Duration:    5,
					AIInvolved:  true,
				},
				{
					ID:          "2",
					Name:        "Manual Refinement",
					Description: "Artist enhancement and detail work",
					Duration:    15,
					AIInvolved:  false,
				},
			},
			Metadata: models.ImageMetadata{
				OriginalSize:   "2048x2048",
				AIModel:        "StyleGAN-v3",
				ProcessingTime: 12,
				Confidence:     0.94,
				Tags:           []string{"dragon", "geometric", "scales"},
				ColorPalette:   []string{"#000000", "#FF6B6B", "#4ECDC4", "#95E1D3"},
				CreatedAt:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			ID:           "2",
			Title:        "Minimalist Rose",
			Artist:       "Sarah Kim",
			Style:        models.StyleMinimalist,
			BodyPart:     models.BodyPartWrist,
			Colors:       []string{"#000000"},
			Tags:         []string{"rose", "minimalist", "small", "delicate"},
			ImageURL:     "/uploads/754e8be8-2196-4573-b62a-744706e401a4.png",
			ThumbnailURL: "/uploads/754e8be8-2196-4573-b62a-744706e401a4.png",
			Likes:        189,
			Downloads:    45,
			Views:        890,
			IsAIEnhanced: false,
			ProcessSteps: []models.ProcessStep{},
			Metadata: models.ImageMetadata{
				OriginalSize:   "1024x1024",
				ProcessingTime: 0,
				Confidence:     1.0,
				Tags:           []string{"rose", "minimalist"},
				ColorPalette:   []string{"#000000", "#FFFFFF"},
				CreatedAt:      time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			ID:           "3",
			Title:        "Tribal Phoenix",
			Artist:       "Marcus Chen",
			Style:        models.StyleTribal,
			BodyPart:     models.BodyPartShoulder,
			Colors:       []string{"#000000", "#8B0000"},
			Tags:         []string{"phoenix", "tribal", "medium", "fire"},
			ImageURL:     "/uploads/30ac5a9c-3418-4b26-8bd9-a948f30ce8c3.png",
			ThumbnailURL: "/uploads/30ac5a9c-3418-4b26-8bd9-a948f30ce8c3.png",
			BeforeImage:  "/uploads/30ac5a9c-3418-4b26-8bd9-a948f30ce8c3.png",
			AfterImage:   "/uploads/2772e444-0bc9-4c71-9d49-5b7515865c6a.png",
			Likes:        321,
			Downloads:    89,
			Views:        1567,
			IsAIEnhanced: true,
			ProcessSteps: []models.ProcessStep{
				{
					ID:          "3",
					Name:        "Style Analysis",
					Description: "AI analysis of tribal patterns",
					Duration:    3,
					AIInvolved:  true,
				},
			},
			Metadata: models.ImageMetadata{
				OriginalSize:   "1536x1536",
				AIModel:        "TribalNet-v2",
				ProcessingTime: 8,
				Confidence:     0.89,
				Tags:           []string{"phoenix", "tribal", "wings"},
				ColorPalette:   []string{"#000000", "#8B0000", "#FF4500"},
				CreatedAt:      time.Date(2024, 1, 12, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			ID:           "4",
			Title:        "Blackwork Mandala",
			Artist:       "Diego Rodriguez",
			Style:        models.StyleBlackwork,
			BodyPart:     models.BodyPartChest,
			Colors:       []string{"#000000"},
			Tags:         []string{"mandala", "blackwork", "large", "sacred"},
			ImageURL:     "/uploads/2772e444-0bc9-4c71-9d49-5b7515865c6a.png",
			ThumbnailURL: "/uploads/2772e444-0bc9-4c71-9d49-5b7515865c6a.png",
			Likes:        412,
			Downloads:    123,
			Views:        2100,
			IsAIEnhanced: true,
			Featured:     true,
			ProcessSteps: []models.ProcessStep{
				{
					ID:          "4",
					Name:        "Pattern Generation",
					Description: "AI-generated mandala patterns",
					Duration:    10,
					AIInvolved:  true,
				},
			},
			Metadata: models.ImageMetadata{
				OriginalSize:   "2560x2560",
				AIModel:        "MandalaGen-Pro",
				ProcessingTime: 15,
				Confidence:     0.96,
				Tags:           []string{"mandala", "sacred", "geometric"},
				ColorPalette:   []string{"#000000", "#1A1A1A"},
				CreatedAt:      time.Date(2024, 1, 8, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}
