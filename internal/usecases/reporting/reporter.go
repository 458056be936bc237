// Package reporting calcula as estatísticas resumidas do dataset gerado.
package reporting

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/pkg/utils"
)

type Reporting interface {
	Report(transactions []domain.Transaction, start, end, generatedAt time.Time) (*domain.DatasetMetadata, error)
}

type Reporter struct{}

func NewReporter() Reporting {
	return &Reporter{}
}

// Report agrega a sequência completa, outliers incluídos. A soma dos valores é feita
// em decimal para não acumular erro de ponto flutuante.
func (r *Reporter) Report(transactions []domain.Transaction, start, end, generatedAt time.Time) (*domain.DatasetMetadata, error) {
	if len(transactions) == 0 {
		return nil, &domain.GenerationError{
			Err:     domain.ErrEmptyDataset,
			Code:    domain.CodeInternal,
			Stage:   domain.StageReport,
			Details: "nenhuma transação para resumir",
		}
	}

	products := make(map[string]struct{})
	stores := make(map[string]struct{})
	customers := make(map[string]struct{})
	total := decimal.Zero

	for _, tx := range transactions {
		products[tx.ProductID] = struct{}{}
		stores[tx.StoreID] = struct{}{}
		customers[tx.CustomerID] = struct{}{}
		total = total.Add(decimal.NewFromFloat(tx.TotalValue))
	}

	return &domain.DatasetMetadata{
		TotalTransactions: len(transactions),
		PeriodStart:       start,
		PeriodEnd:         end,
		UniqueProducts:    len(products),
		UniqueStores:      len(stores),
		UniqueCustomers:   len(customers),
		TotalSalesValue:   total,
		GeneratedAt:       generatedAt,
	}, nil
}

// Render formata os metadados como linhas "chave: valor"
func Render(meta *domain.DatasetMetadata) string {
	lines := []string{
		fmt.Sprintf("total_transacoes: %d", meta.TotalTransactions),
		fmt.Sprintf("periodo_inicio: %s", meta.PeriodStart.Format(utils.DateLayout)),
		fmt.Sprintf("periodo_fim: %s", meta.PeriodEnd.Format(utils.DateLayout)),
		fmt.Sprintf("produtos_unicos: %d", meta.UniqueProducts),
		fmt.Sprintf("lojas_unicas: %d", meta.UniqueStores),
		fmt.Sprintf("clientes_unicos: %d", meta.UniqueCustomers),
		fmt.Sprintf("valor_total_vendas: %s", meta.TotalSalesValue.StringFixed(2)),
		fmt.Sprintf("data_geracao: %s", meta.GeneratedAt.Format(domain.TimestampLayout)),
	}

	return strings.Join(lines, "\n") + "\n"
}

// FormatCurrency formata um valor no padrão brasileiro, ex.: R$ 1.234.567,89
func FormatCurrency(value decimal.Decimal) string {
	fixed := value.Abs().StringFixed(2)
	integer, cents, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	sign := ""
	if value.IsNegative() {
		sign = "-"
	}
	return fmt.Sprintf("%sR$ %s,%s", sign, grouped.String(), cents)
}

// Summary monta o resumo exibido no console ao final da geração
func Summary(meta *domain.DatasetMetadata) string {
	return fmt.Sprintf(
		"Total de registros: %d | Produtos únicos: %d | Lojas únicas: %d | Valor total: %s | Período: %s a %s",
		meta.TotalTransactions,
		meta.UniqueProducts,
		meta.UniqueStores,
		FormatCurrency(meta.TotalSalesValue),
		meta.PeriodStart.Format(utils.BrazilianLayout),
		meta.PeriodEnd.Format(utils.BrazilianLayout),
	)
}
