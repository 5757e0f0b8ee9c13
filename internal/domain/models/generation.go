package models

import "time"

type GenerationStatus string

const (
	GenerationQueued     GenerationStatus = "queued"
	GenerationProcessing GenerationStatus = "processing"
	GenerationCompleted  GenerationStatus = "completed"
	GenerationFaulted    GenerationStatus = "faulted"
)

// Terminal сообщает, завершилась ли задача (успешно или нет)
func (s GenerationStatus) Terminal() bool {
	return s == GenerationCompleted || s == GenerationFaulted
}

// GenerationParams параметры запроса генерации дизайна
type GenerationParams struct {
	Prompt   string   `json:"prompt"`
	Style    string   `json:"style"`
	BodyPart string   `json:"body_part"`
	Colors   []string `json:"colors"`
}

// GenerationJob представляет задачу генерации дизайна.
// Faulted — терминальное состояние с сообщением для пользователя,
// автоматических повторов нет: генерацию запускают заново явно.
type GenerationJob struct {
	ID        string           `json:"id"`
	Params    GenerationParams `json:"params"`
	Status    GenerationStatus `json:"status"`
	Progress  int              `json:"progress"` // проценты, 0..100
	Result    *GalleryItem     `json:"result,omitempty"`
	Error     string           `json:"error,omitempty"`
	CreatedAt time.Time        `json:"created_at"`
	UpdatedAt time.Time        `json:"updated_at"`
}
