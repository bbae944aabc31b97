package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/sales-panel-api/pkg/apiErrors"
	"github.com/vfg2006/sales-panel-api/pkg/log"
)

// Tipos de cron job que podem ser disparados manualmente
const (
	CronJobTypeCacheJanitor = "cache-janitor"
	CronJobTypeAll          = "all"
)

// ManualJob é uma cron job que aceita disparo manual e informa seu status
type ManualJob interface {
	TriggerManualRun()
	GetStatus() map[string]any
}

// CronJobServices contém as cron jobs expostas pela API
type CronJobServices struct {
	CacheJanitor ManualJob
}

func (s CronJobServices) jobs() map[string]ManualJob {
	jobs := make(map[string]ManualJob)
	if s.CacheJanitor != nil {
		jobs[CronJobTypeCacheJanitor] = s.CacheJanitor
	}
	return jobs
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		jobs := services.jobs()

		switch cronType {
		case CronJobTypeAll:
			for _, job := range jobs {
				job.TriggerManualRun()
			}

		default:
			job, ok := jobs[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidRequest,
					"Tipo de cron job inválido. Valores aceitos: cache-janitor, all", nil)
				return
			}
			job.TriggerManualRun()
		}

		logger.WithField("trigger", cronType).Info("cron: manual run requested")

		writeJSON(w, r, http.StatusAccepted, map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := make(map[string]any)
		for name, job := range services.jobs() {
			status[name] = job.GetStatus()
		}

		writeJSON(w, r, http.StatusOK, status)
	}
}
