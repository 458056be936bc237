// Package catalog monta as tabelas de referência (produtos, lojas e calendário)
// antes de qualquer amostragem de transações.
package catalog

import (
	"fmt"

	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/pkg/random"
)

// PriceRange é o intervalo do preço base sorteado para cada produto
type PriceRange struct {
	Min float64
	Max float64
}

// Catalog contém as tabelas imutáveis usadas pelo amostrador
type Catalog struct {
	Products []domain.Product
	Stores   []domain.Store
	Calendar Calendar
}

// Build cria o catálogo na ordem configurada. Cada produto consome exatamente um sorteio
// do stream, então Build deve rodar antes da amostragem das transações.
func Build(ref domain.ReferenceData, prices PriceRange, stream *random.Stream) (*Catalog, error) {
	if err := Validate(ref, prices); err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, ref.ProductCount())
	productID := 1
	for _, allocation := range ref.Categories {
		for i := 0; i < allocation.Count; i++ {
			products = append(products, domain.Product{
				ID:        fmt.Sprintf("PROD%03d", productID),
				Category:  allocation.Category,
				BasePrice: stream.Uniform(prices.Min, prices.Max),
			})
			productID++
		}
	}

	stores := make([]domain.Store, 0, ref.StoreCount())
	for _, allocation := range ref.Regions {
		for i := 0; i < allocation.Count; i++ {
			stores = append(stores, domain.Store{
				ID:     fmt.Sprintf("LOJA%03d", len(stores)+1),
				Region: allocation.Region,
			})
		}
	}

	return &Catalog{
		Products: products,
		Stores:   stores,
		Calendar: NewCalendar(ref.CalendarRules),
	}, nil
}

// Validate verifica as tabelas de referência sem consumir o stream
func Validate(ref domain.ReferenceData, prices PriceRange) error {
	if len(ref.Categories) == 0 {
		return domain.NewConfigurationError(domain.StageCatalog, "nenhuma categoria de produto configurada")
	}

	seen := make(map[string]bool, len(ref.Categories))
	for _, allocation := range ref.Categories {
		if allocation.Category == "" {
			return domain.NewConfigurationError(domain.StageCatalog, "categoria sem nome")
		}
		if allocation.Count <= 0 {
			return domain.NewConfigurationError(domain.StageCatalog, "categoria %q com quantidade inválida: %d", allocation.Category, allocation.Count)
		}
		if seen[allocation.Category] {
			return domain.NewConfigurationError(domain.StageCatalog, "categoria %q repetida", allocation.Category)
		}
		seen[allocation.Category] = true
	}

	if len(ref.Regions) == 0 {
		return domain.NewConfigurationError(domain.StageCatalog, "nenhum estado de loja configurado")
	}
	for _, allocation := range ref.Regions {
		if allocation.Region == "" || allocation.Count <= 0 {
			return domain.NewConfigurationError(domain.StageCatalog, "estado %q com quantidade inválida: %d", allocation.Region, allocation.Count)
		}
	}

	if prices.Min <= 0 || prices.Max < prices.Min {
		return domain.NewConfigurationError(domain.StageCatalog, "faixa de preço inválida: [%.2f, %.2f]", prices.Min, prices.Max)
	}

	for _, rule := range ref.CalendarRules {
		if rule.Month < 1 || rule.Month > 12 || rule.Day < 1 || rule.Day > 31 {
			return domain.NewConfigurationError(domain.StageCatalog, "data comemorativa inválida: %d/%d", rule.Day, rule.Month)
		}
		if rule.Multiplier < 1 {
			return domain.NewConfigurationError(domain.StageCatalog, "multiplicador de %d/%d deve ser >= 1: %.2f", rule.Day, rule.Month, rule.Multiplier)
		}
	}

	if ref.DefaultQuantityMean <= 0 {
		return domain.NewConfigurationError(domain.StageCatalog, "média padrão de quantidade deve ser positiva")
	}
	for _, m := range ref.QuantityMeans {
		if m.Mean <= 0 {
			return domain.NewConfigurationError(domain.StageCatalog, "média de quantidade da categoria %q deve ser positiva: %.2f", m.Category, m.Mean)
		}
	}

	outlierIDs := make(map[string]bool, len(ref.Outliers))
	for _, outlier := range ref.Outliers {
		if outlierIDs[outlier.ID] {
			return domain.NewConfigurationError(domain.StageCatalog, "outlier com ID repetido: %s", outlier.ID)
		}
		outlierIDs[outlier.ID] = true
	}

	return nil
}
