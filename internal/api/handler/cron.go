package handler

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/retail-analytics-api/internal/scheduler"
	"github.com/vfg2006/retail-analytics-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypeCachePurge = "cache-purge"
	CronJobTypeAll        = "all"
)

// CronJobServices contém os serviços de cron necessários para executar manualmente
type CronJobServices struct {
	CachePurgeService *scheduler.CachePurgeService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		// Obter o tipo de cron job da URL
		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypeCachePurge:
			if services.CachePurgeService == nil {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Serviço de limpeza do cache não disponível", nil)
				return
			}
			services.CachePurgeService.TriggerManualSync()

		case CronJobTypeAll:
			if services.CachePurgeService != nil {
				services.CachePurgeService.TriggerManualSync()
			}
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: cache-purge, all", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusAccepted)
		json.NewEncoder(w).Encode(map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		})
	}
}

// GetCronStatus retorna o status de uma cron job, ou de todas com o tipo "all"
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{}
		if services.CachePurgeService != nil {
			status[CronJobTypeCachePurge] = services.CachePurgeService.GetStatus()
		}

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		var response any = status
		switch cronType {
		case CronJobTypeAll:
		case CronJobTypeCachePurge:
			jobStatus, ok := status[cronType]
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrServiceDisabled, "Serviço de limpeza do cache não disponível", nil)
				return
			}
			response = jobStatus
		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: cache-purge, all", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(response)
	}
}
