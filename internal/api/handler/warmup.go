package handler

import (
	"net/http"

	"github.com/Shivarajkushals/Dashboard/pkg/apiErrors"
	"github.com/Shivarajkushals/Dashboard/pkg/log"
)

// WarmupRunner é o agendador de aquecimento de cache acionado manualmente
type WarmupRunner interface {
	TriggerManualRun() bool
	GetStatus() map[string]any
}

// RunCacheWarmup dispara manualmente o aquecimento das listas de filtros
func RunCacheWarmup(runner WarmupRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if runner == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "cache warmup is not available")
			return
		}

		started := runner.TriggerManualRun()
		logger.WithField("started", started).Info("Aquecimento de cache solicitado")

		status := http.StatusAccepted
		message := "cache warmup started"
		if !started {
			status = http.StatusConflict
			message = "cache warmup already running"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if err := json.NewEncoder(w).Encode(map[string]any{"message": message}); err != nil {
			logger.WithError(err).Error("Erro ao enviar resposta")
		}
	}
}

// GetCacheWarmupStatus retorna o estado do último aquecimento
func GetCacheWarmupStatus(runner WarmupRunner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if runner == nil {
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "cache warmup is not available")
			return
		}

		writeJSON(w, log.ForContext(r.Context()), runner.GetStatus())
	}
}
