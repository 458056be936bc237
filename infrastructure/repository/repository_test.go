package repository

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-data-generator/internal/domain"
)

func transactions(n int) []domain.Transaction {
	result := make([]domain.Transaction, n)
	for i := range result {
		result[i] = domain.Transaction{
			ID:         fmt.Sprintf("20240101%06d", i),
			Timestamp:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
			ProductID:  "PROD001",
			Category:   "Bebidas",
			StoreID:    "LOJA001",
			ListPrice:  11.5,
			SalePrice:  10,
			TotalValue: 20,
			Quantity:   2,
			CustomerID: "CLI000001",
			Discount:   0.1304,
		}
	}
	return result
}

func TestChunks(t *testing.T) {
	tests := []struct {
		total    int
		size     int
		expected []int
	}{
		{total: 0, size: 3, expected: []int{}},
		{total: 3, size: 3, expected: []int{3}},
		{total: 7, size: 3, expected: []int{3, 3, 1}},
		{total: 2, size: 10, expected: []int{2}},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d_em_%d", tt.total, tt.size), func(t *testing.T) {
			result := chunks(transactions(tt.total), tt.size)

			sizes := make([]int, 0, len(result))
			for _, chunk := range result {
				sizes = append(sizes, len(chunk))
			}
			assert.Equal(t, tt.expected, sizes)
		})
	}
}

func TestBuildInsertTransactions(t *testing.T) {
	query, args, err := buildInsertTransactions("run1", transactions(2))
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO sales_transactions (run_id,id,transaction_at,"), query)
	assert.Contains(t, query, "($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12),($13,")
	require.Len(t, args, 2*len(transactionColumns))
	assert.Equal(t, "run1", args[0])
	assert.Equal(t, "20240101000000", args[1])
	assert.Equal(t, "20240101000001", args[13])
	assert.Equal(t, 0.1304, args[11])
}

func TestBuildInsertRun(t *testing.T) {
	run := &domain.DatasetRun{
		ID:           "abc123",
		Seed:         42,
		Status:       domain.DatasetRunStatusCompleted,
		CSVPath:      "output/vendas.csv",
		MetadataPath: "output/metadata.txt",
		Metadata: &domain.DatasetMetadata{
			TotalTransactions: 10,
			UniqueProducts:    5,
			TotalSalesValue:   decimal.RequireFromString("99.90"),
		},
		StartedAt:   time.Date(2025, 1, 1, 2, 0, 0, 0, time.UTC),
		CompletedAt: time.Date(2025, 1, 1, 2, 0, 5, 0, time.UTC),
	}

	query, args, err := buildInsertRun(run)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(query, "INSERT INTO dataset_runs"))
	require.Len(t, args, 15)
	assert.Equal(t, "abc123", args[0])
	assert.Equal(t, "42", args[1])
	assert.Equal(t, "completed", args[2])
	assert.Equal(t, decimal.NullDecimal{Decimal: run.Metadata.TotalSalesValue, Valid: true}, args[11])
}

func TestBuildInsertRun_FailedRunWithoutMetadata(t *testing.T) {
	run := &domain.DatasetRun{
		ID:     "falhou",
		Seed:   ^uint64(0),
		Status: domain.DatasetRunStatusFailed,
		Error:  "output write error [export_csv]: permissão negada",
	}

	_, args, err := buildInsertRun(run)
	require.NoError(t, err)

	assert.Equal(t, "18446744073709551615", args[1])
	assert.Equal(t, decimal.NullDecimal{}, args[11])
	assert.Equal(t, run.Error, args[12])
}

func TestBuildListRuns(t *testing.T) {
	query, args, err := buildListRuns(20)
	require.NoError(t, err)

	assert.Contains(t, query, "FROM dataset_runs ORDER BY started_at DESC LIMIT 20")
	assert.Empty(t, args)

	query, _, err = buildListRuns(0)
	require.NoError(t, err)
	assert.NotContains(t, query, "LIMIT")
}
