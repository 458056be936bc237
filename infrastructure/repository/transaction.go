package repository

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/sales-data-generator/infrastructure/database/postgres"
	"github.com/vfg2006/sales-data-generator/internal/domain"
)

//go:generate mockgen -source=transaction.go -destination=mocks/mock_transaction.go -package=mocks

var transactionColumns = []string{
	"run_id",
	"id",
	"transaction_at",
	"product_id",
	"category",
	"store_id",
	"list_price",
	"sale_price",
	"total_value",
	"quantity",
	"customer_id",
	"discount",
}

type TransactionRepository interface {
	SaveBatch(ctx context.Context, runID string, transactions []domain.Transaction) error
}

type transactionRepository struct {
	conn      postgres.Conn
	batchSize int
}

func NewTransactionRepository(conn postgres.Conn, batchSize int) TransactionRepository {
	if batchSize <= 0 {
		batchSize = 1000
	}
	return &transactionRepository{
		conn:      conn,
		batchSize: batchSize,
	}
}

// SaveBatch grava todas as transações da execução numa única transação do banco,
// em INSERTs de até batchSize linhas
func (r *transactionRepository) SaveBatch(ctx context.Context, runID string, transactions []domain.Transaction) error {
	if len(transactions) == 0 {
		return nil
	}

	return r.conn.RunInTransaction(ctx, func(q postgres.Queryer) error {
		for _, chunk := range chunks(transactions, r.batchSize) {
			query, args, err := buildInsertTransactions(runID, chunk)
			if err != nil {
				return fmt.Errorf("erro ao construir a query: %w", err)
			}

			if _, err := q.Exec(ctx, query, args...); err != nil {
				return fmt.Errorf("erro ao inserir transações: %w", err)
			}
		}
		return nil
	})
}

func buildInsertTransactions(runID string, transactions []domain.Transaction) (string, []interface{}, error) {
	builder := squirrel.
		Insert(salesTransactionsTable).
		Columns(transactionColumns...).
		PlaceholderFormat(squirrel.Dollar)

	for _, tx := range transactions {
		builder = builder.Values(
			runID,
			tx.ID,
			tx.Timestamp,
			tx.ProductID,
			tx.Category,
			tx.StoreID,
			tx.ListPrice,
			tx.SalePrice,
			tx.TotalValue,
			tx.Quantity,
			tx.CustomerID,
			tx.Discount,
		)
	}

	return builder.ToSql()
}

func chunks(transactions []domain.Transaction, size int) [][]domain.Transaction {
	result := make([][]domain.Transaction, 0, (len(transactions)+size-1)/size)
	for start := 0; start < len(transactions); start += size {
		end := min(start+size, len(transactions))
		result = append(result, transactions[start:end])
	}
	return result
}
