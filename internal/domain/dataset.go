package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DatasetMetadata contém as estatísticas resumidas do dataset gerado
type DatasetMetadata struct {
	TotalTransactions int             `json:"total_transacoes"`
	PeriodStart       time.Time       `json:"periodo_inicio"`
	PeriodEnd         time.Time       `json:"periodo_fim"`
	UniqueProducts    int             `json:"produtos_unicos"`
	UniqueStores      int             `json:"lojas_unicas"`
	UniqueCustomers   int             `json:"clientes_unicos"`
	TotalSalesValue   decimal.Decimal `json:"valor_total_vendas"`
	GeneratedAt       time.Time       `json:"data_geracao"`
}

type DatasetRunStatus string

const (
	DatasetRunStatusCompleted DatasetRunStatus = "completed"
	DatasetRunStatusFailed    DatasetRunStatus = "failed"
)

// DatasetRun registra uma execução completa do gerador
type DatasetRun struct {
	ID           string           `json:"id"`
	Seed         uint64           `json:"seed"`
	Status       DatasetRunStatus `json:"status"`
	CSVPath      string           `json:"csv_path"`
	MetadataPath string           `json:"metadata_path"`
	Metadata     *DatasetMetadata `json:"metadata,omitempty"`
	Error        string           `json:"error,omitempty"`
	StartedAt    time.Time        `json:"started_at"`
	CompletedAt  time.Time        `json:"completed_at"`
}
