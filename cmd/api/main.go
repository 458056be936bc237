package main

import (
	"context"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-data-generator/infrastructure/database/postgres"
	"github.com/vfg2006/sales-data-generator/infrastructure/export"
	"github.com/vfg2006/sales-data-generator/infrastructure/repository"
	"github.com/vfg2006/sales-data-generator/internal/api"
	"github.com/vfg2006/sales-data-generator/internal/config"
	"github.com/vfg2006/sales-data-generator/internal/scheduler"
	"github.com/vfg2006/sales-data-generator/internal/usecases/authenticating"
	"github.com/vfg2006/sales-data-generator/internal/usecases/dataset"
	"github.com/vfg2006/sales-data-generator/internal/usecases/generating"
	"github.com/vfg2006/sales-data-generator/internal/usecases/reporting"
)

func main() {
	configureLogger()

	if err := run(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.NewConfig()
	if err != nil {
		return err
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	datasetService := dataset.NewService(
		cfg,
		generating.NewService(cfg),
		reporting.NewReporter(),
		export.NewFileExporter(),
	)

	// Sem banco, o histórico de execuções fica apenas em memória
	if cfg.Database.ExportEnabled {
		pgConn, err := pgconn(ctx, cfg.Database)
		if err != nil {
			return err
		}
		defer pgConn.Close()

		datasetService = datasetService.WithDatabase(
			repository.NewTransactionRepository(pgConn, cfg.Database.BatchSize),
			repository.NewDatasetRunRepository(pgConn),
		)
	}

	authenticator := authenticating.NewService(cfg)
	if cfg.Auth.AdminPasswordHash == "" {
		logrus.Warn("AUTH_ADMIN_PASSWORD_HASH vazio: login desabilitado, apenas /healthcheck responde sem token")
	}

	generationService := scheduler.NewGenerationService(datasetService, cfg)
	if err := generationService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de geração do dataset")
	} else {
		logrus.Info("Agendador de geração do dataset iniciado com sucesso")
	}

	server, err := api.New(cfg, authenticator, generationService, datasetService)
	if err != nil {
		return err
	}

	return server.Run(ctx)
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados e prepara as tabelas
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
