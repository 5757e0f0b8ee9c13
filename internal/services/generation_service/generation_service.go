package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"inkai_studio/internal/domain/models"
	"inkai_studio/internal/lib/logger/sl"
	"inkai_studio/internal/metrics"
	"inkai_studio/internal/storage"

	"github.com/google/uuid"
)

var ErrEmptyPrompt = errors.New("design prompt is required")

// Driver выполняет собственно генерацию. Сейчас единственная реализация —
// симуляция; боевой бэкенд подставляется сюда же, не меняя потребителей.
type Driver interface {
	Generate(ctx context.Context, params models.GenerationParams, progress func(int)) (*models.GalleryItem, error)
}

// GenerationService машина состояний задач генерации:
// queued -> processing -> completed | faulted.
// faulted — терминальное состояние; повтор только явным новым запуском.
type GenerationService struct {
	log    *slog.Logger
	driver Driver

	mu      sync.Mutex
	jobs    map[string]*models.GenerationJob
	cancels map[string]context.CancelFunc
}

func NewGenerationService(log *slog.Logger, driver Driver) *GenerationService {
	return &GenerationService{
		log:     log,
		driver:  driver,
		jobs:    make(map[string]*models.GenerationJob),
		cancels: make(map[string]context.CancelFunc),
	}
}

// Start запускает задачу генерации и возвращает её ID
func (s *GenerationService) Start(params models.GenerationParams) (string, error) {
	const op = "generation_service.Start"

	log := s.log.With(
		slog.String("op", op),
		slog.String("style", params.Style),
	)

	if strings.TrimSpace(params.Prompt) == "" {
		log.Warn("rejected generation with empty prompt")
		return "", fmt.Errorf("%s: %w", op, ErrEmptyPrompt)
	}

	now := time.Now().UTC()
	job := &models.GenerationJob{
		ID:        uuid.New().String(),
		Params:    params,
		Status:    models.GenerationQueued,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// Жизнь задачи не привязана к HTTP-запросу, который её создал
	ctx, cancel := context.WithCancel(context.Background())

	s.mu.Lock()
	s.jobs[job.ID] = job
	s.cancels[job.ID] = cancel
	s.mu.Unlock()

	log.Info("generation started", slog.String("job_id", job.ID))

	go s.run(ctx, job.ID)

	return job.ID, nil
}

// Job возвращает копию задачи по ID
func (s *GenerationService) Job(id string) (models.GenerationJob, error) {
	const op = "generation_service.Job"

	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return models.GenerationJob{}, fmt.Errorf("%s: %w", op, storage.ErrJobNotFound)
	}
	return *job, nil
}

// Cancel останавливает незавершенную задачу; таймеры драйвера
// прекращаются через контекст
func (s *GenerationService) Cancel(id string) error {
	const op = "generation_service.Cancel"

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return fmt.Errorf("%s: %w", op, storage.ErrJobNotFound)
	}
	if cancel, ok := s.cancels[id]; ok {
		cancel()
	}
	return nil
}

// Shutdown отменяет все незавершенные задачи
func (s *GenerationService) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cancel := range s.cancels {
		cancel()
	}
}

func (s *GenerationService) run(ctx context.Context, jobID string) {
	const op = "generation_service.run"

	log := s.log.With(
		slog.String("op", op),
		slog.String("job_id", jobID),
	)

	defer func() {
		s.mu.Lock()
		delete(s.cancels, jobID)
		s.mu.Unlock()
	}()

	params := s.transition(jobID, func(job *models.GenerationJob) {
		job.Status = models.GenerationProcessing
		job.Progress = 0
	})

	result, err := s.driver.Generate(ctx, params, func(progress int) {
		s.transition(jobID, func(job *models.GenerationJob) {
			job.Progress = progress
		})
	})

	if err != nil {
		s.transition(jobID, func(job *models.GenerationJob) {
			job.Status = models.GenerationFaulted
			job.Error = err.Error()
		})
		metrics.GenerationJobsTotal.WithLabelValues(string(models.GenerationFaulted)).Inc()
		log.Error("generation failed", sl.Err(err))
		return
	}

	s.transition(jobID, func(job *models.GenerationJob) {
		job.Status = models.GenerationCompleted
		job.Progress = 100
		job.Result = result
	})
	metrics.GenerationJobsTotal.WithLabelValues(string(models.GenerationCompleted)).Inc()
	log.Info("generation completed", slog.String("design_id", result.ID))
}

func (s *GenerationService) transition(jobID string, mutate func(*models.GenerationJob)) models.GenerationParams {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[jobID]
	if !ok {
		return models.GenerationParams{}
	}
	mutate(job)
	job.UpdatedAt = time.Now().UTC()
	return job.Params
}

// SimulatedDriver имитирует генерацию: прогресс продвигается по
// фиксированному расписанию, результат — заготовленный дизайн.
type SimulatedDriver struct {
	StepDelay time.Duration
}

var progressSchedule = []int{20, 40, 60, 80, 100}

func NewSimulatedDriver(stepDelay time.Duration) *SimulatedDriver {
	if stepDelay <= 0 {
		stepDelay = 500 * time.Millisecond
	}
	return &SimulatedDriver{StepDelay: stepDelay}
}

func (d *SimulatedDriver) Generate(ctx context.Context, params models.GenerationParams, progress func(int)) (*models.GalleryItem, error) {
	timer := time.NewTimer(d.StepDelay)
	defer timer.Stop()

	for _, target := range progressSchedule {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
			progress(target)
			timer.Reset(d.StepDelay)
		}
	}

	item := d.mockDesign(params)
	return &item, nil
}

func (d *SimulatedDriver) mockDesign(params models.GenerationParams) models.GalleryItem {
	now := time.Now().UTC()

	style := models.TattooStyle(params.Style)
	if params.Style == "" {
		style = models.StyleGeometric
	}
	bodyPart := models.BodyPart(params.BodyPart)
	if params.BodyPart == "" {
		bodyPart = models.BodyPartArm
	}
	colors := params.Colors
	if len(colors) == 0 {
		colors = []string{"#000000"}
	}

	return models.GalleryItem{
		ID:           "design-" + uuid.New().String(),
		Title:        "AI Generated Design",
		Artist:       "AI Studio",
		Style:        style,
		BodyPart:     bodyPart,
		Colors:       colors,
		Tags:         []string{"ai-generated", strings.ToLower(string(style)), "modern"},
		ImageURL:     "/uploads/5827edae-7f78-4e63-ab17-27b32f9a720f.png",
		ThumbnailURL: "/uploads/5827edae-7f78-4e63-ab17-27b32f9a720f.png",
		IsAIEnhanced: true,
		ProcessSteps: []models.ProcessStep{
			{
				ID:          "step-1",
				Name:        "Prompt Analysis",
				Description: "Analyzing input prompt and style preferences",
				Duration:    2,
				AIInvolved:  true,
			},
			{
				ID:          "step-2",
				Name:        "Style Generation",
				Description: "Generating base design with AI models",
				Duration:    15,
				AIInvolved:  true,
			},
			{
				ID:          "step-3",
				Name:        "Refinement",
				Description: "Refining details and composition",
				Duration:    8,
				AIInvolved:  true,
			},
		},
		Metadata: models.ImageMetadata{
			AIModel:        "stable-diffusion-xl",
			ProcessingTime: 25,
			Confidence:     0.95,
			ColorPalette:   colors,
			CreatedAt:      now,
		},
	}
}
