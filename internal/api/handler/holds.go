package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/vfg2006/shop-manager-api/internal/domain"
	"github.com/vfg2006/shop-manager-api/internal/usecases/holding"
	"github.com/vfg2006/shop-manager-api/pkg/apiErrors"
	"github.com/vfg2006/shop-manager-api/pkg/log"
)

// CreateHoldRequest é o corpo esperado para pendurar uma venda
type CreateHoldRequest struct {
	Items []domain.SaleItem `json:"items"`
	Note  string            `json:"note,omitempty"`
}

func ListHolds(tracker holding.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		holds := tracker.HeldSales()
		logger.WithField("count", len(holds)).Debug("holds: listing held sales")

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(holds); err != nil {
			logger.WithError(err).Error("holds: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func CreateHold(tracker holding.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		var request CreateHoldRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			logger.WithError(err).Warn("holds: invalid request body")
			apiErrors.WriteError(w, apiErrors.ErrInvalidRequest, "Corpo da requisição inválido", nil)
			return
		}

		if len(request.Items) == 0 {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Uma venda em espera precisa de ao menos um item", nil)
			return
		}

		hold, err := tracker.AddHold(request.Items, request.Note, time.Now())
		if err != nil {
			logger.WithError(err).Error("holds: failed to create held sale")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao pendurar a venda", nil)
			return
		}

		logger.WithField("hold_id", hold.ID).Info("holds: held sale created")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(hold)
	})
}

func DeleteHold(tracker holding.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		id := httprouter.ParamsFromContext(r.Context()).ByName("id")
		if id == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Identificador da venda em espera não informado", nil)
			return
		}

		if err := tracker.RemoveHold(id); err != nil {
			if err == holding.ErrHoldNotFound {
				apiErrors.WriteError(w, apiErrors.ErrNotFound, "Venda em espera não encontrada", nil)
				return
			}

			logger.WithFields(log.Fields{
				"hold_id": id,
				"error":   err.Error(),
			}).Error("holds: failed to remove held sale")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao remover a venda em espera", nil)
			return
		}

		logger.WithField("hold_id", id).Info("holds: held sale removed")
		w.WriteHeader(http.StatusNoContent)
	})
}

func GetHoldsSummary(tracker holding.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		summary := tracker.Summary()

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(summary); err != nil {
			logger.WithError(err).Error("holds: failed to encode summary")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func GetBanner(tracker holding.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		status := tracker.BannerStatus(time.Now())

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(status); err != nil {
			logger.WithError(err).Error("holds: failed to encode banner status")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}

func DismissBanner(tracker holding.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := tracker.Dismiss(time.Now()); err != nil {
			if err == holding.ErrDismissalDisabled {
				logger.Warn("holds: banner dismissal rejected by configuration")
				apiErrors.WriteError(w, apiErrors.ErrActionForbidden, "Dispensa de banner desabilitada pela configuração", nil)
				return
			}

			logger.WithError(err).Error("holds: failed to dismiss banner")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao dispensar o banner", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tracker.BannerStatus(time.Now()))
	})
}

func SnoozeBanner(tracker holding.Tracker) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		if err := tracker.Snooze(time.Now()); err != nil {
			if err == holding.ErrDismissalDisabled {
				logger.Warn("holds: banner snooze rejected by configuration")
				apiErrors.WriteError(w, apiErrors.ErrActionForbidden, "Soneca de banner desabilitada pela configuração", nil)
				return
			}

			logger.WithError(err).Error("holds: failed to snooze banner")
			apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro ao adiar o banner", nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(tracker.BannerStatus(time.Now()))
	})
}
