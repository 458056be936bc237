package handler

import (
	"net/http"

	"github.com/vfg2006/sales-data-generator/pkg/apiErrors"
	"github.com/vfg2006/sales-data-generator/pkg/log"
)

// GenerationScheduler é o agendador da geração do dataset
type GenerationScheduler interface {
	TriggerManualSync() bool
	GetStatus() map[string]any
}

// RunGenerationJob dispara a geração em background e responde imediatamente
func RunGenerationJob(scheduler GenerationScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log.ForContext(r.Context()).Info("INIT - RunGenerationJob")

		if !scheduler.TriggerManualSync() {
			apiErrors.WriteError(w, apiErrors.ErrGenerationRunning, "Geração do dataset já em andamento", nil)
			return
		}

		writeJSON(w, http.StatusAccepted, map[string]string{
			"status":  "started",
			"message": "Geração do dataset iniciada em background",
		})
	}
}

func GetCronStatus(scheduler GenerationScheduler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"generation": scheduler.GetStatus(),
		})
	}
}
