package services

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"inkai_studio/internal/domain/models"
	"inkai_studio/internal/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type failingDriver struct {
	err error
}

func (d *failingDriver) Generate(_ context.Context, _ models.GenerationParams, _ func(int)) (*models.GalleryItem, error) {
	return nil, d.err
}

func TestGenerationService_EmptyPromptRejected(t *testing.T) {
	svc := NewGenerationService(discardLogger(), NewSimulatedDriver(time.Millisecond))

	tests := []string{"", "   ", "\t\n"}
	for _, prompt := range tests {
		_, err := svc.Start(models.GenerationParams{Prompt: prompt})
		assert.ErrorIs(t, err, ErrEmptyPrompt)
	}
}

func TestGenerationService_CompletesWithMockResult(t *testing.T) {
	svc := NewGenerationService(discardLogger(), NewSimulatedDriver(time.Millisecond))

	jobID, err := svc.Start(models.GenerationParams{
		Prompt:   "geometric dragon on back",
		Style:    "geometric",
		BodyPart: "back",
		Colors:   []string{"#1a1a2e", "#16213e"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, jobID)

	require.Eventually(t, func() bool {
		job, err := svc.Job(jobID)
		return err == nil && job.Status == models.GenerationCompleted
	}, time.Second, 5*time.Millisecond)

	job, err := svc.Job(jobID)
	require.NoError(t, err)

	assert.Equal(t, 100, job.Progress)
	assert.Empty(t, job.Error)

	require.NotNil(t, job.Result)
	assert.Equal(t, "AI Studio", job.Result.Artist)
	assert.True(t, job.Result.IsAIEnhanced)
	assert.Equal(t, models.TattooStyle("geometric"), job.Result.Style)
	assert.Equal(t, models.BodyPart("back"), job.Result.BodyPart)
	assert.Equal(t, []string{"#1a1a2e", "#16213e"}, job.Result.Colors)
	assert.Equal(t, "stable-diffusion-xl", job.Result.Metadata.AIModel)
	assert.InDelta(t, 0.95, job.Result.Metadata.Confidence, 0.001)
	assert.Len(t, job.Result.ProcessSteps, 3)
}

func TestGenerationService_DefaultsFillMissingParams(t *testing.T) {
	svc := NewGenerationService(discardLogger(), NewSimulatedDriver(time.Millisecond))

	jobID, err := svc.Start(models.GenerationParams{Prompt: "something bold"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		job, err := svc.Job(jobID)
		return err == nil && job.Status.Terminal()
	}, time.Second, 5*time.Millisecond)

	job, err := svc.Job(jobID)
	require.NoError(t, err)
	require.NotNil(t, job.Result)

	assert.Equal(t, models.StyleGeometric, job.Result.Style)
	assert.Equal(t, models.BodyPartArm, job.Result.BodyPart)
	assert.Equal(t, []string{"#000000"}, job.Result.Colors)
}

func TestGenerationService_ProgressIsMonotonic(t *testing.T) {
	svc := NewGenerationService(discardLogger(), NewSimulatedDriver(2*time.Millisecond))

	jobID, err := svc.Start(models.GenerationParams{Prompt: "tribal phoenix"})
	require.NoError(t, err)

	var observed []int
	require.Eventually(t, func() bool {
		job, err := svc.Job(jobID)
		if err != nil {
			return false
		}
		if len(observed) == 0 || observed[len(observed)-1] != job.Progress {
			observed = append(observed, job.Progress)
		}
		return job.Status == models.GenerationCompleted
	}, time.Second, time.Millisecond)

	for i := 1; i < len(observed); i++ {
		assert.GreaterOrEqual(t, observed[i], observed[i-1])
	}
	assert.Equal(t, 100, observed[len(observed)-1])
}

func TestGenerationService_CancelFaultsJob(t *testing.T) {
	svc := NewGenerationService(discardLogger(), NewSimulatedDriver(time.Hour))

	jobID, err := svc.Start(models.GenerationParams{Prompt: "never finishes"})
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(jobID))

	require.Eventually(t, func() bool {
		job, err := svc.Job(jobID)
		return err == nil && job.Status == models.GenerationFaulted
	}, time.Second, 5*time.Millisecond)

	job, err := svc.Job(jobID)
	require.NoError(t, err)
	assert.Contains(t, job.Error, context.Canceled.Error())
	assert.Nil(t, job.Result)
}

func TestGenerationService_DriverErrorFaultsJob(t *testing.T) {
	driverErr := errors.New("upstream model unavailable")
	svc := NewGenerationService(discardLogger(), &failingDriver{err: driverErr})

	jobID, err := svc.Start(models.GenerationParams{Prompt: "blackwork mandala"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		job, err := svc.Job(jobID)
		return err == nil && job.Status == models.GenerationFaulted
	}, time.Second, 5*time.Millisecond)

	job, err := svc.Job(jobID)
	require.NoError(t, err)
	assert.Equal(t, driverErr.Error(), job.Error)
}

func TestGenerationService_UnknownJob(t *testing.T) {
	svc := NewGenerationService(discardLogger(), NewSimulatedDriver(time.Millisecond))

	_, err := svc.Job("no-such-job")
	assert.ErrorIs(t, err, storage.ErrJobNotFound)

	err = svc.Cancel("no-such-job")
	assert.ErrorIs(t, err, storage.ErrJobNotFound)
}

func TestSimulatedDriver_ReportsFullSchedule(t *testing.T) {
	driver := NewSimulatedDriver(time.Millisecond)

	var reported []int
	item, err := driver.Generate(context.Background(), models.GenerationParams{Prompt: "x"}, func(p int) {
		reported = append(reported, p)
	})

	require.NoError(t, err)
	require.NotNil(t, item)
	assert.Equal(t, []int{20, 40, 60, 80, 100}, reported)
}

func TestSimulatedDriver_CancelledContext(t *testing.T) {
	driver := NewSimulatedDriver(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := driver.Generate(ctx, models.GenerationParams{Prompt: "x"}, func(int) {})
	assert.ErrorIs(t, err, context.Canceled)
}
