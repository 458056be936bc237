package repository

import (
	"context"
	"fmt"

	"github.com/vfg2006/sales-data-generator/infrastructure/database/postgres"
)

const (
	salesTransactionsTable = "sales_transactions"
	datasetRunsTable       = "dataset_runs"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS dataset_runs (
		id                 TEXT PRIMARY KEY,
		seed               NUMERIC(20, 0) NOT NULL,
		status             TEXT NOT NULL,
		csv_path           TEXT NOT NULL,
		metadata_path      TEXT NOT NULL,
		total_transactions INTEGER,
		period_start       DATE,
		period_end         DATE,
		unique_products    INTEGER,
		unique_stores      INTEGER,
		unique_customers   INTEGER,
		total_sales_value  NUMERIC(18, 2),
		error              TEXT,
		started_at         TIMESTAMPTZ NOT NULL,
		completed_at       TIMESTAMPTZ NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS sales_transactions (
		run_id         TEXT NOT NULL,
		id             TEXT NOT NULL,
		transaction_at TIMESTAMP NOT NULL,
		product_id     TEXT NOT NULL,
		category       TEXT NOT NULL,
		store_id       TEXT NOT NULL,
		list_price     NUMERIC(12, 2) NOT NULL,
		sale_price     NUMERIC(12, 2) NOT NULL,
		total_value    NUMERIC(14, 2) NOT NULL,
		quantity       INTEGER NOT NULL,
		customer_id    TEXT NOT NULL,
		discount       NUMERIC(6, 4) NOT NULL,
		PRIMARY KEY (run_id, id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_sales_transactions_transaction_at ON sales_transactions (transaction_at)`,
}

// EnsureSchema cria as tabelas usadas pela exportação, se ainda não existirem
func EnsureSchema(ctx context.Context, conn postgres.Queryer) error {
	for _, statement := range schemaStatements {
		if _, err := conn.Exec(ctx, statement); err != nil {
			return fmt.Errorf("erro ao criar schema: %w", err)
		}
	}
	return nil
}
