// Package export grava o dataset gerado em disco: o CSV de transações e o arquivo de metadados.
package export

import (
	"bufio"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"

	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/pkg/log"
)

// utf8BOM permite que planilhas abram o CSV com acentuação correta
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Header é o cabeçalho do CSV de transações
var Header = []string{
	"ID_Transacao",
	"Data_Hora_Transacao",
	"ID_Produto",
	"Categoria_Produto",
	"ID_Loja",
	"Preco_De",
	"Preco_Por",
	"Valor_Venda",
	"Quantidade_Vendida",
	"ID_Cliente",
	"Desconto",
}

type FileExporter interface {
	WriteTransactions(ctx context.Context, path string, transactions []domain.Transaction) error
	WriteMetadata(ctx context.Context, path string, content string) error
}

type fileExporter struct{}

func NewFileExporter() FileExporter {
	return &fileExporter{}
}

// WriteTransactions grava as transações na ordem recebida, com BOM UTF-8 e cabeçalho
func (e *fileExporter) WriteTransactions(ctx context.Context, path string, transactions []domain.Transaction) error {
	logger := log.ForContext(ctx).WithField("stage", domain.StageExportCSV)

	file, err := create(path)
	if err != nil {
		return domain.NewOutputWriteError(domain.StageExportCSV, err)
	}

	buffered := bufio.NewWriter(file)
	if err := writeTransactions(buffered, transactions); err != nil {
		file.Close()
		return domain.NewOutputWriteError(domain.StageExportCSV, err)
	}

	if err := file.Close(); err != nil {
		return domain.NewOutputWriteError(domain.StageExportCSV, err)
	}

	logger.Infof("Arquivo CSV salvo em %s (%d linhas)", path, len(transactions))
	return nil
}

func writeTransactions(buffered *bufio.Writer, transactions []domain.Transaction) error {
	if _, err := buffered.Write(utf8BOM); err != nil {
		return err
	}

	writer := csv.NewWriter(buffered)
	if err := writer.Write(Header); err != nil {
		return err
	}

	for _, tx := range transactions {
		if err := writer.Write(Record(tx)); err != nil {
			return err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}

	return buffered.Flush()
}

// Record converte uma transação em uma linha do CSV
func Record(tx domain.Transaction) []string {
	return []string{
		tx.ID,
		tx.FormattedTimestamp(),
		tx.ProductID,
		tx.Category,
		tx.StoreID,
		formatPrice(tx.ListPrice),
		formatPrice(tx.SalePrice),
		formatPrice(tx.TotalValue),
		strconv.Itoa(tx.Quantity),
		tx.CustomerID,
		tx.DiscountLabel(),
	}
}

// WriteMetadata grava o resumo já renderizado
func (e *fileExporter) WriteMetadata(ctx context.Context, path string, content string) error {
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return domain.NewOutputWriteError(domain.StageExportMeta, err)
	}

	log.ForContext(ctx).WithField("stage", domain.StageExportMeta).Infof("Metadados salvos em %s", path)
	return nil
}

// EnsureDir cria o diretório de saída, se necessário
func EnsureDir(dir string) error {
	if dir == "" {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return domain.NewOutputWriteError(domain.StageExportCSV, err)
	}
	return nil
}

func create(path string) (*os.File, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, err
		}
	}
	return os.Create(path)
}

func formatPrice(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
