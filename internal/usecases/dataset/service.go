// Package dataset orquestra uma execução completa: geração, resumo e exportação.
package dataset

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-data-generator/infrastructure/export"
	"github.com/vfg2006/sales-data-generator/infrastructure/repository"
	"github.com/vfg2006/sales-data-generator/internal/config"
	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/internal/usecases/generating"
	"github.com/vfg2006/sales-data-generator/internal/usecases/reporting"
	"github.com/vfg2006/sales-data-generator/pkg/log"
	"github.com/vfg2006/sales-data-generator/pkg/utils"
	"golang.org/x/sync/errgroup"
)

// Quantidade de execuções mantidas em memória quando não há banco configurado
const historySize = 50

//go:generate mockgen -source=service.go -destination=mocks/mock_runner.go -package=mocks

type Runner interface {
	Run(ctx context.Context) (*domain.DatasetRun, error)
	LastRun() *domain.DatasetRun
	ListRuns(ctx context.Context, limit uint64) ([]*domain.DatasetRun, error)
}

type Service struct {
	cfg             *config.Config
	generator       generating.Generating
	reporter        reporting.Reporting
	exporter        export.FileExporter
	transactionRepo repository.TransactionRepository
	runRepo         repository.DatasetRunRepository
	now             func() time.Time
	newID           func() (string, error)

	mu      sync.RWMutex
	history []*domain.DatasetRun
}

func NewService(
	cfg *config.Config,
	generator generating.Generating,
	reporter reporting.Reporting,
	exporter export.FileExporter,
) *Service {
	return &Service{
		cfg:       cfg,
		generator: generator,
		reporter:  reporter,
		exporter:  exporter,
		now:       time.Now,
		newID:     utils.GenerateID,
	}
}

// WithDatabase habilita a exportação das transações e o histórico de execuções no PostgreSQL
func (s *Service) WithDatabase(
	transactionRepo repository.TransactionRepository,
	runRepo repository.DatasetRunRepository,
) *Service {
	s.transactionRepo = transactionRepo
	s.runRepo = runRepo
	return s
}

// Run executa o pipeline completo. Erros de configuração acontecem antes de qualquer
// arquivo ser escrito.
func (s *Service) Run(ctx context.Context) (*domain.DatasetRun, error) {
	runID, err := s.newID()
	if err != nil {
		log.ForContext(ctx).WithError(err).Error("Falha ao gerar identificador da execução")
		return nil, &domain.GenerationError{
			Err:     domain.ErrGenerateID,
			Code:    domain.CodeInternal,
			Stage:   domain.StageConfig,
			Details: err.Error(),
		}
	}

	run := &domain.DatasetRun{
		ID:           runID,
		Seed:         s.cfg.Generator.Seed,
		CSVPath:      s.cfg.Output.CSVPath(),
		MetadataPath: s.cfg.Output.MetadataPath(),
		StartedAt:    s.now(),
	}

	ctx = log.WithRunID(ctx, run.ID)
	logger := log.ForContext(ctx)

	logger.WithFields(log.Fields{
		"seed":         run.Seed,
		"transactions": s.cfg.Generator.Transactions,
	}).Info("Iniciando geração do dataset")

	meta, err := s.execute(ctx, run)
	if err != nil {
		s.finish(ctx, run, nil, err)
		return run, err
	}

	s.finish(ctx, run, meta, nil)

	logger.Infof("Dataset gerado com sucesso! %s", reporting.Summary(meta))
	logger.Infof("Arquivo: %s | Metadados: %s", run.CSVPath, run.MetadataPath)

	return run, nil
}

func (s *Service) execute(ctx context.Context, run *domain.DatasetRun) (*domain.DatasetMetadata, error) {
	dataset, err := s.generator.Generate(ctx)
	if err != nil {
		return nil, err
	}

	meta, err := s.reporter.Report(dataset.Transactions, dataset.PeriodStart, dataset.PeriodEnd, s.now())
	if err != nil {
		return nil, err
	}

	if err := export.EnsureDir(s.cfg.Output.Dir); err != nil {
		return nil, err
	}

	log.ForContext(ctx).Info("Salvando arquivos...")

	// O dataset já está completo e não é mais alterado, então as exportações podem rodar juntas
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		return s.exporter.WriteTransactions(egCtx, run.CSVPath, dataset.Transactions)
	})

	eg.Go(func() error {
		return s.exporter.WriteMetadata(egCtx, run.MetadataPath, reporting.Render(meta))
	})

	if s.transactionRepo != nil {
		eg.Go(func() error {
			if err := s.transactionRepo.SaveBatch(egCtx, run.ID, dataset.Transactions); err != nil {
				return domain.NewOutputWriteError(domain.StageExportDB, err)
			}
			log.ForContext(egCtx).WithField("stage", domain.StageExportDB).
				Infof("%d transações exportadas para o PostgreSQL", len(dataset.Transactions))
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return meta, nil
}

// finish registra o resultado da execução no histórico
func (s *Service) finish(ctx context.Context, run *domain.DatasetRun, meta *domain.DatasetMetadata, runErr error) {
	logger := log.ForContext(ctx)

	run.CompletedAt = s.now()
	run.Metadata = meta
	run.Status = domain.DatasetRunStatusCompleted
	if runErr != nil {
		run.Status = domain.DatasetRunStatusFailed
		run.Error = runErr.Error()
		logger.WithFields(log.Fields{
			"stage": domain.StageOf(runErr),
			"error": runErr.Error(),
		}).Error("Falha na geração do dataset")
	}

	s.mu.Lock()
	s.history = append(s.history, run)
	if len(s.history) > historySize {
		s.history = s.history[len(s.history)-historySize:]
	}
	s.mu.Unlock()

	if s.runRepo == nil {
		return
	}

	if err := s.runRepo.Save(ctx, run); err != nil {
		logger.WithField("error", err.Error()).Error("Erro ao registrar execução no PostgreSQL")
	}
}

// LastRun retorna a execução mais recente, ou nil se nenhuma rodou neste processo
func (s *Service) LastRun() *domain.DatasetRun {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.history) == 0 {
		return nil
	}
	return s.history[len(s.history)-1]
}

// ListRuns lista as execuções, da mais recente para a mais antiga. Usa o banco quando habilitado.
func (s *Service) ListRuns(ctx context.Context, limit uint64) ([]*domain.DatasetRun, error) {
	if s.runRepo != nil {
		runs, err := s.runRepo.List(ctx, limit)
		if err != nil {
			return nil, errors.Wrap(err, "erro ao listar execuções")
		}
		return runs, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	runs := make([]*domain.DatasetRun, 0, len(s.history))
	for i := len(s.history) - 1; i >= 0; i-- {
		if limit > 0 && uint64(len(runs)) >= limit {
			break
		}
		runs = append(runs, s.history[i])
	}
	return runs, nil
}
