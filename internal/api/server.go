package api

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/justinas/alice"
	"github.com/vfg2006/sales-data-generator/internal/api/handler"
	"github.com/vfg2006/sales-data-generator/internal/api/handler/router"
	"github.com/vfg2006/sales-data-generator/internal/config"
	"github.com/vfg2006/sales-data-generator/internal/usecases/authenticating"
	"github.com/vfg2006/sales-data-generator/pkg/log"
	"github.com/vfg2006/sales-data-generator/pkg/middleware"
)

// Uma geração síncrona de 100 mil transações leva alguns segundos
const writeTimeout = 5 * time.Minute

type Server struct {
	httpServer *http.Server
}

// GenerationController reúne o que a API precisa do agendador de geração
type GenerationController interface {
	handler.DatasetGenerator
	handler.GenerationScheduler
}

func New(
	cfg *config.Config,
	authenticator authenticating.Authenticator,
	generation GenerationController,
	history handler.DatasetHistory,
) (*Server, error) {
	srv := &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
			Handler:           NewHandler(authenticator, generation, history),
			ReadHeaderTimeout: 2 * time.Second,
			WriteTimeout:      writeTimeout,
		},
	}

	return srv, nil
}

// NewHandler monta as rotas com a cadeia de middlewares global
func NewHandler(
	authenticator authenticating.Authenticator,
	generation GenerationController,
	history handler.DatasetHistory,
) http.Handler {
	rt := router.New(
		router.WithRoutes(handler.Healthcheck()...),
		router.WithRoutes(handler.Authentication(authenticator)...),
		router.WithRoutes(handler.Datasets(generation, history)...),
		router.WithRoutes(handler.CronJobs(generation)...),
	)

	middlewares := []alice.Constructor{
		middleware.LogPanicMiddleware(),
		middleware.LoggingMiddleware(),
		middleware.Cors(),
		middleware.AuthMiddleware(authenticator),
	}

	return alice.New(middlewares...).Then(rt)
}

func (s Server) Run(ctx context.Context) error {
	go func() {
		log.L.WithField("address", s.httpServer.Addr).Info("Servidor iniciando")

		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.L.WithField("error", err.Error()).Error("Erro durante a execução do servidor")
		}
	}()

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	select {
	case <-done:
		log.L.Info("Sinal de interrupção recebido")
	case <-ctx.Done():
		log.L.Info("Contexto de aplicação cancelado")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.L.Info("Iniciando desligamento gracioso do servidor")

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.L.WithField("error", err.Error()).Error("Erro durante o desligamento do servidor")
		return err
	}

	log.L.Info("Servidor desligado com sucesso")
	return nil
}
