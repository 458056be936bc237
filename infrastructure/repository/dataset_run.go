package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/shopspring/decimal"
	"github.com/vfg2006/sales-data-generator/infrastructure/database/postgres"
	"github.com/vfg2006/sales-data-generator/internal/domain"
)

//go:generate mockgen -source=dataset_run.go -destination=mocks/mock_dataset_run.go -package=mocks

type DatasetRunRepository interface {
	Save(ctx context.Context, run *domain.DatasetRun) error
	List(ctx context.Context, limit uint64) ([]*domain.DatasetRun, error)
}

type datasetRunRepository struct {
	conn postgres.Conn
}

func NewDatasetRunRepository(conn postgres.Conn) DatasetRunRepository {
	return &datasetRunRepository{
		conn: conn,
	}
}

func (r *datasetRunRepository) Save(ctx context.Context, run *domain.DatasetRun) error {
	query, args, err := buildInsertRun(run)
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao salvar execução %s: %w", run.ID, err)
	}

	return nil
}

func buildInsertRun(run *domain.DatasetRun) (string, []interface{}, error) {
	var (
		totalTransactions, uniqueProducts, uniqueStores, uniqueCustomers sql.NullInt64
		periodStart, periodEnd                                           sql.NullTime
		totalSalesValue                                                  decimal.NullDecimal
	)

	if meta := run.Metadata; meta != nil {
		totalTransactions = sql.NullInt64{Int64: int64(meta.TotalTransactions), Valid: true}
		uniqueProducts = sql.NullInt64{Int64: int64(meta.UniqueProducts), Valid: true}
		uniqueStores = sql.NullInt64{Int64: int64(meta.UniqueStores), Valid: true}
		uniqueCustomers = sql.NullInt64{Int64: int64(meta.UniqueCustomers), Valid: true}
		periodStart = sql.NullTime{Time: meta.PeriodStart, Valid: true}
		periodEnd = sql.NullTime{Time: meta.PeriodEnd, Valid: true}
		totalSalesValue = decimal.NullDecimal{Decimal: meta.TotalSalesValue, Valid: true}
	}

	return squirrel.
		Insert(datasetRunsTable).
		Columns(
			"id", "seed", "status", "csv_path", "metadata_path",
			"total_transactions", "period_start", "period_end",
			"unique_products", "unique_stores", "unique_customers",
			"total_sales_value", "error", "started_at", "completed_at",
		).
		Values(
			run.ID, strconv.FormatUint(run.Seed, 10), string(run.Status), run.CSVPath, run.MetadataPath,
			totalTransactions, periodStart, periodEnd,
			uniqueProducts, uniqueStores, uniqueCustomers,
			totalSalesValue, run.Error, run.StartedAt, run.CompletedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

// List retorna as execuções mais recentes primeiro
func (r *datasetRunRepository) List(ctx context.Context, limit uint64) ([]*domain.DatasetRun, error) {
	query, args, err := buildListRuns(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	var runs []*domain.DatasetRun
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear execução: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return runs, nil
}

func buildListRuns(limit uint64) (string, []interface{}, error) {
	builder := squirrel.
		Select(
			"id", "seed", "status", "csv_path", "metadata_path",
			"total_transactions", "period_start", "period_end",
			"unique_products", "unique_stores", "unique_customers",
			"total_sales_value", "COALESCE(error, '')", "started_at", "completed_at",
		).
		From(datasetRunsTable).
		OrderBy("started_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return builder.ToSql()
}

func scanRun(rows *sql.Rows) (*domain.DatasetRun, error) {
	var (
		run                                                              domain.DatasetRun
		seed, status                                                     string
		totalTransactions, uniqueProducts, uniqueStores, uniqueCustomers sql.NullInt64
		periodStart, periodEnd                                           sql.NullTime
		totalSalesValue                                                  decimal.NullDecimal
	)

	if err := rows.Scan(
		&run.ID,
		&seed,
		&status,
		&run.CSVPath,
		&run.MetadataPath,
		&totalTransactions,
		&periodStart,
		&periodEnd,
		&uniqueProducts,
		&uniqueStores,
		&uniqueCustomers,
		&totalSalesValue,
		&run.Error,
		&run.StartedAt,
		&run.CompletedAt,
	); err != nil {
		return nil, err
	}

	parsedSeed, err := strconv.ParseUint(seed, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("seed inválida %q: %w", seed, err)
	}
	run.Seed = parsedSeed
	run.Status = domain.DatasetRunStatus(status)

	if totalTransactions.Valid {
		run.Metadata = &domain.DatasetMetadata{
			TotalTransactions: int(totalTransactions.Int64),
			PeriodStart:       periodStart.Time.UTC(),
			PeriodEnd:         periodEnd.Time.UTC(),
			UniqueProducts:    int(uniqueProducts.Int64),
			UniqueStores:      int(uniqueStores.Int64),
			UniqueCustomers:   int(uniqueCustomers.Int64),
			TotalSalesValue:   totalSalesValue.Decimal,
			GeneratedAt:       run.CompletedAt.In(time.UTC),
		}
	}

	return &run, nil
}
