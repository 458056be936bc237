package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-data-generator/infrastructure/database/postgres"
	"github.com/vfg2006/sales-data-generator/infrastructure/export"
	"github.com/vfg2006/sales-data-generator/infrastructure/repository"
	"github.com/vfg2006/sales-data-generator/internal/config"
	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/internal/usecases/dataset"
	"github.com/vfg2006/sales-data-generator/internal/usecases/generating"
	"github.com/vfg2006/sales-data-generator/internal/usecases/reporting"
)

// Gera o dataset uma única vez e encerra. Código de saída 1 em qualquer erro.
func main() {
	configureLogger()

	if err := run(); err != nil {
		logrus.WithField("stage", domain.StageOf(err)).Error(err)
		os.Exit(1)
	}
}

// run devolve o erro em vez de encerrar o processo, para que os defers (conexão, sinais) executem
func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	setLogLevel(cfg.App.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := dataset.NewService(
		cfg,
		generating.NewService(cfg),
		reporting.NewReporter(),
		export.NewFileExporter(),
	)

	if cfg.Database.ExportEnabled {
		conn, err := pgconn(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer conn.Close()

		service = service.WithDatabase(
			repository.NewTransactionRepository(conn, cfg.Database.BatchSize),
			repository.NewDatasetRunRepository(conn),
		)
	}

	_, err = service.Run(ctx)
	return err
}

func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

func setLogLevel(level string) {
	logLevel, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", level)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
}

// pgconn conecta ao PostgreSQL e garante que as tabelas existem
func pgconn(ctx context.Context, dbConfig config.Database) (*postgres.Connection, error) {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		return nil, errors.Wrap(err, "erro ao conectar ao PostgreSQL")
	}

	if err := repository.EnsureSchema(ctx, conn); err != nil {
		conn.Close()
		return nil, errors.Wrap(err, "erro ao preparar tabelas no PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn, nil
}
