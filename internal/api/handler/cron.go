package handler

import (
	"encoding/json"
	"net/http"

	"github.com/julienschmidt/httprouter"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/shop-manager-api/internal/scheduler"
	"github.com/vfg2006/shop-manager-api/pkg/apiErrors"
)

// CronJobType define o tipo de cron job que será executada
const (
	CronJobTypePendingRecheck = "pending-recheck"
	CronJobTypeAll            = "all"
)

// CronJobServices contém os serviços de cron necessários para execução manual
type CronJobServices struct {
	PendingRecheckService *scheduler.PendingRecheckService
}

// RunCronJob executa manualmente uma cron job específica
func RunCronJob(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - RunCronJob")

		cronType := httprouter.ParamsFromContext(r.Context()).ByName("type")
		if cronType == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Tipo de cron job não especificado", nil)
			return
		}

		switch cronType {
		case CronJobTypePendingRecheck, CronJobTypeAll:
			if services.PendingRecheckService == nil {
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço de reavaliação de pendências não disponível", nil)
				return
			}
			services.PendingRecheckService.TriggerManualRecheck()

		default:
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Tipo de cron job inválido. Valores aceitos: pending-recheck, all", nil)
			return
		}

		response := map[string]any{
			"message": "Cron job iniciada com sucesso",
			"type":    cronType,
		}
		json.NewEncoder(w).Encode(response)
	}
}

// GetCronStatus retorna o status das cron jobs
func GetCronStatus(services CronJobServices) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("INIT - GetCronStatus")

		status := map[string]any{
			"pending-recheck": services.PendingRecheckService.GetStatus(),
		}

		json.NewEncoder(w).Encode(status)
	}
}
