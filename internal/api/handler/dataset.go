package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/pkg/errors"
	"github.com/vfg2006/sales-data-generator/internal/domain"
	"github.com/vfg2006/sales-data-generator/internal/scheduler"
	"github.com/vfg2006/sales-data-generator/pkg/apiErrors"
	"github.com/vfg2006/sales-data-generator/pkg/log"
)

const (
	defaultRunsLimit = 20
	maxRunsLimit     = 200
)

// DatasetGenerator executa uma geração síncrona
type DatasetGenerator interface {
	RunNow(ctx context.Context) (*domain.DatasetRun, error)
}

// DatasetHistory consulta as execuções anteriores
type DatasetHistory interface {
	LastRun() *domain.DatasetRun
	ListRuns(ctx context.Context, limit uint64) ([]*domain.DatasetRun, error)
}

// GenerateDataset roda o pipeline completo e responde com a execução e seus metadados
func GenerateDataset(generator DatasetGenerator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("INIT - GenerateDataset")

		run, err := generator.RunNow(r.Context())
		if err != nil {
			writeGenerationError(w, run, err)
			return
		}

		writeJSON(w, http.StatusOK, run)
	}
}

func GetLastRun(history DatasetHistory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		run := history.LastRun()
		if run == nil {
			apiErrors.WriteError(w, apiErrors.ErrNoDatasetYet, "Nenhum dataset gerado desde o início do serviço", nil)
			return
		}

		writeJSON(w, http.StatusOK, run)
	}
}

func ListRuns(history DatasetHistory) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := uint64(defaultRunsLimit)
		if raw := r.URL.Query().Get("limit"); raw != "" {
			parsed, err := strconv.ParseUint(raw, 10, 64)
			if err != nil || parsed == 0 || parsed > maxRunsLimit {
				apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "limit deve estar entre 1 e 200", nil)
				return
			}
			limit = parsed
		}

		runs, err := history.ListRuns(r.Context(), limit)
		if err != nil {
			log.ForContext(r.Context()).WithField("error", err.Error()).Error("Erro ao listar execuções")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar execuções", nil)
			return
		}

		if runs == nil {
			runs = []*domain.DatasetRun{}
		}

		writeJSON(w, http.StatusOK, runs)
	}
}

func writeGenerationError(w http.ResponseWriter, run *domain.DatasetRun, err error) {
	var details any
	if run != nil {
		details = map[string]string{"run_id": run.ID, "stage": domain.StageOf(err)}
	}

	switch {
	case errors.Is(err, scheduler.ErrGenerationInProgress):
		apiErrors.WriteError(w, apiErrors.ErrGenerationRunning, err.Error(), nil)
	case domain.IsConfigurationError(err):
		apiErrors.WriteError(w, apiErrors.ErrGenerationConfig, err.Error(), details)
	case domain.StageOf(err) == domain.StageExportDB:
		apiErrors.WriteError(w, apiErrors.ErrGenerationDatabase, err.Error(), details)
	case domain.IsOutputWriteError(err):
		apiErrors.WriteError(w, apiErrors.ErrGenerationOutput, err.Error(), details)
	default:
		apiErrors.WriteError(w, apiErrors.ErrGenerationInternal, err.Error(), details)
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.L.WithField("error", err.Error()).Error("Erro ao enviar resposta")
	}
}
