package models

import (
	"fmt"
	"strings"
	"time"
)

type TattooStyle string

type BodyPart string

const (
	StyleTraditional TattooStyle = "Traditional"
	StyleGeometric   TattooStyle = "Geometric"
	StyleMinimalist  TattooStyle = "Minimalist"
	StyleBlackwork   TattooStyle = "Blackwork"
	StyleWatercolor  TattooStyle = "Watercolor"
	StyleTribal      TattooStyle = "Tribal"
	StyleRealism     TattooStyle = "Realism"
	StyleJapanese    TattooStyle = "Japanese"
)

const (
	BodyPartArm      BodyPart = "Arm"
	BodyPartBack     BodyPart = "Back"
	BodyPartChest    BodyPart = "Chest"
	BodyPartLeg      BodyPart = "Leg"
	BodyPartShoulder BodyPart = "Shoulder"
	BodyPartWrist    BodyPart = "Wrist"
	BodyPartAnkle    BodyPart = "Ankle"
	BodyPartNeck     BodyPart = "Neck"
)

// KnownStyles возвращает полный набор поддерживаемых стилей
func KnownStyles() []TattooStyle {
	return []TattooStyle{
		StyleTraditional, StyleGeometric, StyleMinimalist, StyleBlackwork,
		StyleWatercolor, StyleTribal, StyleRealism, StyleJapanese,
	}
}

// KnownBodyParts возвращает полный набор частей тела
func KnownBodyParts() []BodyPart {
	return []BodyPart{
		BodyPartArm, BodyPartBack, BodyPartChest, BodyPartLeg,
		BodyPartShoulder, BodyPartWrist, BodyPartAnkle, BodyPartNeck,
	}
}

// ProcessStep представляет один шаг процесса создания дизайна
type ProcessStep struct {
	ID          string `json:"id" db:"id"`
	Name        string `json:"name" db:"name"`
	Description string `json:"description" db:"description"`
	Duration    int    `json:"duration" db:"duration"` // минуты
	AIInvolved  bool   `json:"ai_involved" db:"ai_involved"`
}

// ImageMetadata вложенные метаданные изображения дизайна
type ImageMetadata struct {
	OriginalSize   string    `json:"original_size,omitempty"`
	AIModel        string    `json:"ai_model,omitempty"`
	ProcessingTime int       `json:"processing_time,omitempty"`
	Confidence     float64   `json:"confidence"`
	Tags           []string  `json:"tags,omitempty"`
	ColorPalette   []string  `json:"color_palette,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
}

// GalleryItem представляет один дизайн татуировки в галерее
type GalleryItem struct {
	ID           string        `json:"id" db:"id"`
	Title        string        `json:"title" db:"title"`
	Artist       string        `json:"artist" db:"artist"`
	Style        TattooStyle   `json:"style" db:"style"`
	BodyPart     BodyPart      `json:"body_part" db:"body_part"`
	Colors       []string      `json:"colors" db:"colors"`
	Tags         []string      `json:"tags" db:"tags"`
	ImageURL     string        `json:"image_url" db:"image_url"`
	ThumbnailURL string        `json:"thumbnail_url,omitempty" db:"thumbnail_url"`
	BeforeImage  string        `json:"before_image,omitempty" db:"before_image"`
	AfterImage   string        `json:"after_image,omitempty" db:"after_image"`
	Likes        int           `json:"likes" db:"likes"`
	Downloads    int           `json:"downloads" db:"downloads"`
	Views        int           `json:"views" db:"views"`
	IsAIEnhanced bool          `json:"is_ai_enhanced" db:"is_ai_enhanced"`
	Featured     bool          `json:"featured,omitempty" db:"featured"`
	ProcessSteps []ProcessStep `json:"process_steps" db:"process_steps"`
	Metadata     ImageMetadata `json:"metadata" db:"metadata"`
}

// CreatedAt момент создания дизайна (живет во вложенных метаданных)
func (i GalleryItem) CreatedAt() time.Time {
	return i.Metadata.CreatedAt
}

// HasBeforeAfter сравнение "до/после" осмысленно только парой
func (i GalleryItem) HasBeforeAfter() bool {
	return i.BeforeImage != "" && i.AfterImage != ""
}

// Validate проверяет корректность данных дизайна
func (i *GalleryItem) Validate() error {
	var validationErrors []string

	// Проверка обязательных полей
	if i.ID == "" {
		validationErrors = append(validationErrors, "id is required")
	}
	if i.Title == "" {
		validationErrors = append(validationErrors, "title is required")
	}
	if i.ImageURL == "" {
		validationErrors = append(validationErrors, "image url is required")
	}

	// before/after присутствуют только парой
	if (i.BeforeImage == "") != (i.AfterImage == "") {
		validationErrors = append(validationErrors, "before and after images must both be set or both be empty")
	}

	// Счетчики не могут быть отрицательными
	if i.Likes < 0 {
		validationErrors = append(validationErrors, "likes must be non-negative")
	}
	if i.Downloads < 0 {
		validationErrors = append(validationErrors, "downloads must be non-negative")
	}
	if i.Views < 0 {
		validationErrors = append(validationErrors, "views must be non-negative")
	}

	if i.Metadata.Confidence < 0 || i.Metadata.Confidence > 1 {
		validationErrors = append(validationErrors, "confidence must be between 0 and 1")
	}

	for _, step := range i.ProcessSteps {
		if step.Name == "" {
			validationErrors = append(validationErrors, "process step name is required")
		}
		if step.Duration < 0 {
			validationErrors = append(validationErrors, "process step duration must be non-negative")
		}
	}

	if len(validationErrors) > 0 {
		return &DesignValidationError{
			Errors: validationErrors,
		}
	}

	return nil
}

// DesignValidationError кастомный тип ошибки для валидации дизайна
type DesignValidationError struct {
	Errors []string
}

func (e *DesignValidationError) Error() string {
	return fmt.Sprintf("design validation failed: %s", strings.Join(e.Errors, "; "))
}

// IsDesignValidationError проверяет, является ли ошибка ошибкой валидации
func IsDesignValidationError(err error) bool {
	_, ok := err.(*DesignValidationError)
	return ok
}
