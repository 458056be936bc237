package scheduler

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/vfg2006/sales-data-generator/internal/config"
	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/internal/usecases/dataset"
	"github.com/vfg2006/sales-data-generator/pkg/log"
)

// GenerationScheduleConfig representa a configuração do agendador de geração
type GenerationScheduleConfig struct {
	CronSchedule string
	Enabled      bool
	Transactions int
	Seed         uint64
}

// GenerationService agenda a regeneração periódica do dataset
type GenerationService struct {
	scheduler *gocron.Scheduler
	config    GenerationScheduleConfig
	runner    dataset.Runner

	ctx               context.Context
	runMutex          sync.Mutex
	running           bool
	lastRunID         string
	lastRunStatus     string
	lastRunStartedAt  time.Time
	lastRunFinishedAt time.Time
	lastRunError      string
}

// NewGenerationService cria uma nova instância do agendador de geração
func NewGenerationService(runner dataset.Runner, appConfig *config.Config) *GenerationService {
	scheduleConfig := GenerationScheduleConfig{
		CronSchedule: appConfig.GenerationSchedule.CronSchedule,
		Enabled:      appConfig.GenerationSchedule.Enabled,
		Transactions: appConfig.Generator.Transactions,
		Seed:         appConfig.Generator.Seed,
	}

	log.L.WithFields(log.Fields{
		"cron_schedule": scheduleConfig.CronSchedule,
		"enabled":       scheduleConfig.Enabled,
		"transactions":  scheduleConfig.Transactions,
	}).Info("Configuração do agendador de geração carregada")

	return &GenerationService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    scheduleConfig,
		runner:    runner,
		ctx:       context.Background(),
	}
}

// Start inicia o agendador
func (s *GenerationService) Start(ctx context.Context) error {
	s.ctx = ctx

	if !s.config.Enabled {
		log.L.Info("Geração agendada desabilitada por configuração")
		return nil
	}

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de geração do dataset")

	// Execuções sobrepostas são descartadas em execute
	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.runGeneration(ctx)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar geração do dataset: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de geração do dataset")
		s.scheduler.Stop()
	}()

	return nil
}

// ErrGenerationInProgress indica que outra geração ainda não terminou
var ErrGenerationInProgress = errors.New("geração do dataset já em andamento")

// RunNow executa uma geração imediatamente, respeitando o bloqueio de execuções sobrepostas
func (s *GenerationService) RunNow(ctx context.Context) (*domain.DatasetRun, error) {
	return s.execute(ctx)
}

// runGeneration é a tarefa agendada. Retorna false quando a execução foi ignorada.
func (s *GenerationService) runGeneration(ctx context.Context) bool {
	_, err := s.execute(ctx)
	return !errors.Is(err, ErrGenerationInProgress)
}

func (s *GenerationService) execute(ctx context.Context) (*domain.DatasetRun, error) {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		log.L.Info("Geração do dataset já em andamento, ignorando")
		return nil, ErrGenerationInProgress
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.runMutex.Unlock()

	run, err := s.runner.Run(ctx)

	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	s.running = false
	s.lastRunFinishedAt = time.Now()
	s.lastRunError = ""
	if run != nil {
		s.lastRunID = run.ID
		s.lastRunStatus = string(run.Status)
	}
	if err != nil {
		s.lastRunError = err.Error()
		log.ForContext(ctx).WithField("error", err.Error()).Error("Erro na geração do dataset")
		return run, err
	}

	log.L.WithFields(log.Fields{
		"run_id":   s.lastRunID,
		"duration": s.lastRunFinishedAt.Sub(s.lastRunStartedAt).String(),
	}).Info("Geração do dataset concluída")

	return run, nil
}

// TriggerManualSync dispara uma geração fora do agendamento. Retorna false se já houver
// uma geração em andamento.
func (s *GenerationService) TriggerManualSync() bool {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		log.L.Info("Geração do dataset já em andamento, ignorando solicitação manual")
		return false
	}
	s.runMutex.Unlock()

	log.L.Info("Iniciando geração manual do dataset")
	go s.runGeneration(s.ctx)
	return true
}

// IsRunning informa se há uma geração em andamento
func (s *GenerationService) IsRunning() bool {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()
	return s.running
}

// GetStatus retorna o status atual do agendador
func (s *GenerationService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"schedule_enabled":     s.config.Enabled,
		"schedule_cron":        s.config.CronSchedule,
		"transactions":         s.config.Transactions,
		"seed":                 s.config.Seed,
		"running":              s.running,
		"last_run_id":          s.lastRunID,
		"last_run_status":      s.lastRunStatus,
		"last_run_error":       s.lastRunError,
		"last_run_started_at":  s.lastRunStartedAt,
		"last_run_finished_at": s.lastRunFinishedAt,
	}
}
