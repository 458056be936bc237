package main

import (
	"bufio"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/pkg/log"
)

func init() {
	log.SetupTestLogger()
}

func setupRun(t *testing.T) string {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	previous, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(previous) })

	output := filepath.Join(dir, "saida")
	t.Setenv("OUTPUT_DIR", output)
	t.Setenv("GENERATOR_START_DATE", "2024-01-01")
	t.Setenv("GENERATOR_END_DATE", "2024-02-01")
	t.Setenv("LOG_LEVEL", "warn")
	return output
}

func countLines(t *testing.T, path string) int {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	lines := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines++
	}
	require.NoError(t, scanner.Err())
	return lines
}

func TestRun_WritesDataset(t *testing.T) {
	output := setupRun(t)
	t.Setenv("GENERATOR_TRANSACTIONS", "50")

	require.NoError(t, run())

	// Cabeçalho + 50 transações + 3 outliers
	assert.Equal(t, 54, countLines(t, filepath.Join(output, "vendas_ficticias_2024_2026.csv")))
	assert.FileExists(t, filepath.Join(output, "metadata_vendas.txt"))
}

func TestRun_ConfigurationErrorIsReturned(t *testing.T) {
	output := setupRun(t)
	t.Setenv("GENERATOR_TRANSACTIONS", "0")

	err := run()
	require.Error(t, err)
	assert.True(t, domain.IsConfigurationError(err))
	assert.NoDirExists(t, output)
}

func TestRun_DatabaseUnavailableIsReturned(t *testing.T) {
	output := setupRun(t)
	t.Setenv("GENERATOR_TRANSACTIONS", "10")
	t.Setenv("DATABASE_EXPORT_ENABLED", "true")
	t.Setenv("DATABASE_URL", "127.0.0.1:1/vendas?sslmode=disable&connect_timeout=1")
	t.Setenv("DATABASE_MAX_RETRIES", "0")

	err := run()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "erro ao conectar ao PostgreSQL")
	assert.NoDirExists(t, output)
}
