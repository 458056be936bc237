package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/sales-data-generator/internal/config"
	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/internal/usecases/dataset/mocks"
	"github.com/vfg2006/sales-data-generator/pkg/log"
	"go.uber.org/mock/gomock"
)

func init() {
	log.SetupTestLogger()
}

func newScheduleConfig(enabled bool, cron string) *config.Config {
	return &config.Config{
		Generator: config.Generator{Seed: 42, Transactions: 1000},
		GenerationSchedule: config.GenerationSchedule{
			CronSchedule: cron,
			Enabled:      enabled,
		},
	}
}

func TestGenerationService_runGeneration(t *testing.T) {
	tests := []struct {
		name           string
		run            *domain.DatasetRun
		err            error
		expectedStatus string
		expectedError  string
	}{
		{
			name:           "Geração concluída - deve registrar a execução",
			run:            &domain.DatasetRun{ID: "run1", Status: domain.DatasetRunStatusCompleted},
			expectedStatus: "completed",
		},
		{
			name:           "Geração com falha - deve registrar o erro",
			run:            &domain.DatasetRun{ID: "run2", Status: domain.DatasetRunStatusFailed},
			err:            errors.New("output write error [export_csv]"),
			expectedStatus: "failed",
			expectedError:  "output write error [export_csv]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRunner := mocks.NewMockRunner(ctrl)
			mockRunner.EXPECT().Run(gomock.Any()).Return(tt.run, tt.err)

			service := NewGenerationService(mockRunner, newScheduleConfig(true, "0 2 * * *"))

			assert.True(t, service.runGeneration(context.Background()))

			status := service.GetStatus()
			assert.Equal(t, tt.run.ID, status["last_run_id"])
			assert.Equal(t, tt.expectedStatus, status["last_run_status"])
			assert.Equal(t, tt.expectedError, status["last_run_error"])
			assert.Equal(t, false, status["running"])
		})
	}
}

func TestGenerationService_SkipsOverlappingRuns(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	started := make(chan struct{})
	release := make(chan struct{})

	mockRunner := mocks.NewMockRunner(ctrl)
	mockRunner.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(context.Context) (*domain.DatasetRun, error) {
			close(started)
			<-release
			return &domain.DatasetRun{ID: "lento", Status: domain.DatasetRunStatusCompleted}, nil
		}).
		Times(1)

	service := NewGenerationService(mockRunner, newScheduleConfig(true, "0 2 * * *"))

	done := make(chan bool)
	go func() {
		done <- service.runGeneration(context.Background())
	}()

	<-started
	assert.True(t, service.IsRunning())
	assert.False(t, service.runGeneration(context.Background()), "execução sobreposta deve ser ignorada")
	assert.False(t, service.TriggerManualSync())
	_, err := service.RunNow(context.Background())
	assert.ErrorIs(t, err, ErrGenerationInProgress)

	close(release)
	assert.True(t, <-done)
	assert.False(t, service.IsRunning())
}

func TestGenerationService_TriggerManualSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	finished := make(chan struct{})
	mockRunner := mocks.NewMockRunner(ctrl)
	mockRunner.EXPECT().
		Run(gomock.Any()).
		DoAndReturn(func(context.Context) (*domain.DatasetRun, error) {
			defer close(finished)
			return &domain.DatasetRun{ID: "manual", Status: domain.DatasetRunStatusCompleted}, nil
		})

	service := NewGenerationService(mockRunner, newScheduleConfig(false, ""))

	assert.True(t, service.TriggerManualSync())

	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatal("geração manual não executou")
	}

	assert.Eventually(t, func() bool {
		return service.GetStatus()["last_run_id"] == "manual"
	}, 5*time.Second, 10*time.Millisecond)
}

func TestGenerationService_Start(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRunner := mocks.NewMockRunner(ctrl)

	t.Run("desabilitado não agenda", func(t *testing.T) {
		service := NewGenerationService(mockRunner, newScheduleConfig(false, "0 2 * * *"))
		assert.NoError(t, service.Start(context.Background()))
		assert.Empty(t, service.scheduler.Jobs())
	})

	t.Run("cron inválido retorna erro", func(t *testing.T) {
		service := NewGenerationService(mockRunner, newScheduleConfig(true, "isso não é cron"))
		assert.Error(t, service.Start(context.Background()))
	})

	t.Run("cron válido agenda e para com o contexto", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		service := NewGenerationService(mockRunner, newScheduleConfig(true, "0 2 * * *"))

		assert.NoError(t, service.Start(ctx))
		assert.Len(t, service.scheduler.Jobs(), 1)
		assert.True(t, service.scheduler.IsRunning())

		cancel()
		assert.Eventually(t, func() bool {
			return !service.scheduler.IsRunning()
		}, 5*time.Second, 10*time.Millisecond)
	})
}

func TestGenerationService_RunNow(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	expected := &domain.DatasetRun{ID: "agora", Status: domain.DatasetRunStatusCompleted}
	mockRunner := mocks.NewMockRunner(ctrl)
	mockRunner.EXPECT().Run(gomock.Any()).Return(expected, nil)

	service := NewGenerationService(mockRunner, newScheduleConfig(false, ""))

	run, err := service.RunNow(context.Background())
	assert.NoError(t, err)
	assert.Same(t, expected, run)
	assert.Equal(t, "agora", service.GetStatus()["last_run_id"])
}
