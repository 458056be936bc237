package reporting

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-data-generator/internal/domain"
)

var (
	start       = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end         = time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC)
	generatedAt = time.Date(2026, 2, 3, 10, 15, 30, 0, time.UTC)
)

func TestReport(t *testing.T) {
	transactions := []domain.Transaction{
		{ID: "1", ProductID: "PROD001", StoreID: "LOJA001", CustomerID: "CLI000001", TotalValue: 0.1},
		{ID: "2", ProductID: "PROD001", StoreID: "LOJA002", CustomerID: "CLI000002", TotalValue: 0.2},
		{ID: "3", ProductID: "PROD002", StoreID: "LOJA001", CustomerID: "CLI000001", TotalValue: 29999.75},
	}

	meta, err := NewReporter().Report(transactions, start, end, generatedAt)
	require.NoError(t, err)

	assert.Equal(t, 3, meta.TotalTransactions)
	assert.Equal(t, 2, meta.UniqueProducts)
	assert.Equal(t, 2, meta.UniqueStores)
	assert.Equal(t, 2, meta.UniqueCustomers)
	assert.True(t, decimal.RequireFromString("30000.05").Equal(meta.TotalSalesValue), meta.TotalSalesValue.String())
	assert.Equal(t, start, meta.PeriodStart)
	assert.Equal(t, end, meta.PeriodEnd)
	assert.Equal(t, generatedAt, meta.GeneratedAt)
}

func TestReport_EmptyDataset(t *testing.T) {
	meta, err := NewReporter().Report(nil, start, end, generatedAt)

	assert.Nil(t, meta)
	assert.True(t, errors.Is(err, domain.ErrEmptyDataset))
	assert.Equal(t, domain.StageReport, domain.StageOf(err))
}

func TestRender(t *testing.T) {
	meta := &domain.DatasetMetadata{
		TotalTransactions: 100003,
		PeriodStart:       start,
		PeriodEnd:         end,
		UniqueProducts:    50,
		UniqueStores:      150,
		UniqueCustomers:   70012,
		TotalSalesValue:   decimal.RequireFromString("123456789.5"),
		GeneratedAt:       generatedAt,
	}

	expected := "total_transacoes: 100003\n" +
		"periodo_inicio: 2024-01-01\n" +
		"periodo_fim: 2026-02-02\n" +
		"produtos_unicos: 50\n" +
		"lojas_unicas: 150\n" +
		"clientes_unicos: 70012\n" +
		"valor_total_vendas: 123456789.50\n" +
		"data_geracao: 2026-02-03 10:15:30\n"

	assert.Equal(t, expected, Render(meta))
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		value    string
		expected string
	}{
		{"0", "R$ 0,00"},
		{"999.9", "R$ 999,90"},
		{"1000", "R$ 1.000,00"},
		{"1234567.891", "R$ 1.234.567,89"},
		{"-2500.5", "-R$ 2.500,50"},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatCurrency(decimal.RequireFromString(tt.value)))
		})
	}
}

func TestSummary(t *testing.T) {
	meta := &domain.DatasetMetadata{
		TotalTransactions: 3,
		PeriodStart:       start,
		PeriodEnd:         end,
		UniqueProducts:    2,
		UniqueStores:      1,
		TotalSalesValue:   decimal.RequireFromString("1500"),
	}

	summary := Summary(meta)

	assert.Contains(t, summary, "Total de registros: 3")
	assert.Contains(t, summary, "R$ 1.500,00")
	assert.Contains(t, summary, "01/01/2024 a 02/02/2026")
}
