// Package generating produz o dataset de vendas fictícias: monta o catálogo, amostra as
// transações, ordena por data/hora e injeta os outliers fixos ao final.
package generating

import (
	"context"
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-data-generator/internal/catalog"
	"github.com/vfg2006/sales-data-generator/internal/config"
	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/pkg/log"
	"github.com/vfg2006/sales-data-generator/pkg/random"
)

// Generating define a geração do dataset completo
type Generating interface {
	Generate(ctx context.Context) (*Dataset, error)
}

// Dataset é o resultado da geração: transações amostradas e ordenadas seguidas dos outliers
type Dataset struct {
	Transactions []domain.Transaction
	SampledCount int
	Catalog      *catalog.Catalog
	PeriodStart  time.Time
	PeriodEnd    time.Time
}

// Sampled retorna apenas as transações amostradas, sem os outliers injetados
func (d *Dataset) Sampled() []domain.Transaction {
	return d.Transactions[:d.SampledCount]
}

type Service struct {
	cfg *config.Config
}

func NewService(cfg *config.Config) Generating {
	return &Service{cfg: cfg}
}

// Generate executa a geração completa. Erros de configuração são detectados antes
// de qualquer amostragem.
func (s *Service) Generate(ctx context.Context) (*Dataset, error) {
	params := s.cfg.Generator
	reference := s.cfg.Reference
	logger := log.ForContext(ctx)

	if err := validateParams(params); err != nil {
		return nil, err
	}

	stream := random.New(params.Seed)

	// O catálogo consome o stream antes das transações
	cat, err := catalog.Build(reference, catalog.PriceRange{Min: params.PriceMin, Max: params.PriceMax}, stream)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao montar catálogo")
	}

	logger.WithFields(log.Fields{
		"stage":    domain.StageCatalog,
		"products": len(cat.Products),
		"stores":   len(cat.Stores),
		"rules":    cat.Calendar.Len(),
	}).Info("Catálogo de referência montado")

	smp := newSampler(params, reference, cat, stream)
	sampled := make([]domain.Transaction, 0, params.Transactions)

	logger.Info("Gerando dados fictícios...")
	for i := 0; i < params.Transactions; i++ {
		if params.ProgressInterval > 0 && i%params.ProgressInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, errors.Wrap(err, "geração cancelada")
			}
			logger.Infof("Progresso: %d/%d", i, params.Transactions)
		}

		transaction, err := smp.sample(i)
		if err != nil {
			return nil, errors.Wrapf(err, "erro ao amostrar transação %d", i)
		}
		sampled = append(sampled, transaction)
	}

	transactions := InjectOutliers(Assemble(sampled), reference.Outliers)

	return &Dataset{
		Transactions: transactions,
		SampledCount: len(sampled),
		Catalog:      cat,
		PeriodStart:  params.StartDate,
		PeriodEnd:    params.EndDate,
	}, nil
}

// Assemble retorna uma nova sequência ordenada por data/hora. Empates mantêm a ordem original.
func Assemble(transactions []domain.Transaction) []domain.Transaction {
	sorted := make([]domain.Transaction, len(transactions))
	copy(sorted, transactions)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Timestamp.Before(sorted[j].Timestamp)
	})

	return sorted
}

// InjectOutliers acrescenta os outliers fixos ao final, na ordem dada e sem reordenar
func InjectOutliers(sorted []domain.Transaction, outliers []domain.Transaction) []domain.Transaction {
	result := make([]domain.Transaction, 0, len(sorted)+len(outliers))
	result = append(result, sorted...)
	return append(result, outliers...)
}

func validateParams(params config.Generator) error {
	if params.Transactions <= 0 {
		return domain.NewConfigurationError(domain.StageConfig, "quantidade de transações deve ser positiva: %d", params.Transactions)
	}
	if !params.EndDate.After(params.StartDate) {
		return domain.NewConfigurationError(domain.StageConfig, "data final (%s) deve ser posterior à inicial (%s)",
			params.EndDate.Format(time.DateOnly), params.StartDate.Format(time.DateOnly))
	}
	if params.EndDate.Sub(params.StartDate) < 24*time.Hour {
		return domain.NewConfigurationError(domain.StageConfig, "o período deve ter ao menos um dia")
	}
	if params.WeekendBoost <= 0 {
		return domain.NewConfigurationError(domain.StageConfig, "multiplicador de fim de semana deve ser positivo: %.2f", params.WeekendBoost)
	}
	if params.NewCustomerRate < 0 || params.NewCustomerRate > 1 {
		return domain.NewConfigurationError(domain.StageConfig, "taxa de clientes novos fora de [0, 1]: %.3f", params.NewCustomerRate)
	}
	if params.OutlierRate < 0 || params.OutlierRate > 1 {
		return domain.NewConfigurationError(domain.StageConfig, "taxa de outliers fora de [0, 1]: %.4f", params.OutlierRate)
	}
	return nil
}
