package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/campaign-kpi-pipeline/infrastructure/repository"
	"github.com/vfg2006/campaign-kpi-pipeline/pkg/apiErrors"
	"github.com/vfg2006/campaign-kpi-pipeline/pkg/log"
	"github.com/vfg2006/campaign-kpi-pipeline/pkg/utils"
)

// GetDailyKPIs retorna as linhas de mart.daily_campaign_kpi do período informado
func GetDailyKPIs(repo repository.DailyCampaignKPIRepository) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context())

		rawStart := r.URL.Query().Get("start_date")
		rawEnd := r.URL.Query().Get("end_date")
		if rawStart == "" || rawEnd == "" {
			apiErrors.WriteError(w, apiErrors.ErrMissingRequiredData, "Parâmetros start_date e end_date são obrigatórios", nil)
			return
		}

		startDate, err := utils.ParseDate(rawStart)
		if err != nil {
			logger.WithFields(log.Fields{
				"start_date": rawStart,
				"error":      err.Error(),
			}).Warn("kpis: invalid start_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "start_date inválido, esperado YYYY-MM-DD", nil)
			return
		}

		endDate, err := utils.ParseDate(rawEnd)
		if err != nil {
			logger.WithFields(log.Fields{
				"end_date": rawEnd,
				"error":    err.Error(),
			}).Warn("kpis: invalid end_date parameter")

			apiErrors.WriteError(w, apiErrors.ErrInvalidFormat, "end_date inválido, esperado YYYY-MM-DD", nil)
			return
		}

		logger.WithFields(log.Fields{
			"start_date": startDate.Format(time.DateOnly),
			"end_date":   endDate.Format(time.DateOnly),
		}).Info("kpis: fetching daily campaign KPIs")

		kpis, err := repo.GetByDateRange(r.Context(), *startDate, *endDate)
		if err != nil {
			logger.WithError(err).Error("kpis: failed to fetch daily campaign KPIs")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, err.Error(), nil)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		if err := json.NewEncoder(w).Encode(kpis); err != nil {
			logger.WithError(err).Error("kpis: failed to encode response")
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	})
}
