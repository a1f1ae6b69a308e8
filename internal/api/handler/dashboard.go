package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/internal/usecases/dashboarding"
	"github.com/vfg2006/shop-manager-api/pkg/apiErrors"
	"github.com/vfg2006/shop-manager-api/pkg/log"
	"github.com/vfg2006/shop-manager-api/pkg/utils"
)

func GetDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		mode := domain.ParsePeriodMode(r.URL.Query().Get("period"))
		metric := domain.ParseRankMetric(r.URL.Query().Get("metric"))

		startDate, err := utils.ParseDate(r.URL.Query().Get("start_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": r.URL.Query().Get("start_date"),
				"error":      err.Error(),
			}).Warn("dashboard: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data inicial inválida, use YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(r.URL.Query().Get("end_date"))
		if err != nil {
			logger.WithFields(log.Fields{
				"end_date": r.URL.Query().Get("end_date"),
				"error":    err.Error(),
			}).Warn("dashboard: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "Data final inválida, use YYYY-MM-DD", nil)
			return
		}

		logger.WithFields(log.Fields{
			"period": mode,
			"metric": metric,
		}).Debug("dashboard: building snapshot")

		query := dashboarding.Query{
			Mode:        mode,
			CustomStart: *startDate,
			CustomEnd:   *endDate,
			Metric:      metric,
		}

		response, err := service.Snapshot(query, time.Now())
		if err != nil {
			if err == dashboarding.ErrNotLoaded {
				logger.Warn("dashboard: snapshot requested before collections loaded")
				apiErrors.WriteError(w, apiErrors.ErrDataNotLoaded, "Dados do dashboard ainda não carregados", nil)
				return
			}

			logger.WithError(err).Error("dashboard: failed to build snapshot")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao montar o dashboard", nil)
			return
		}

		logger.WithFields(log.Fields{
			"period": response.Period.Mode,
			"orders": response.Stats.Orders,
		}).Info("dashboard: snapshot built")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(response); err != nil {
			logger.WithError(err).Error("dashboard: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

// RefreshDashboard recarrega as coleções de origem do banco
func RefreshDashboard(service dashboarding.Dashboarder) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())
		logger.Info("dashboard: reloading source collections")

		if err := service.Load(r.Context()); err != nil {
			logger.WithError(err).Error("dashboard: failed to reload collections")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao recarregar os dados do dashboard", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{"message": "Dados recarregados com sucesso"})
	})
}
