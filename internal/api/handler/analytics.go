package handler

import (
	"net/http"

	"github.com/vfg2006/megabite-analytics-api/internal/domain"
	"github.com/vfg2006/megabite-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/megabite-analytics-api/pkg/apiErrors"
	"github.com/vfg2006/megabite-analytics-api/pkg/log"
)

const (
	salesSummaryPendingMessage = "Waiting for data generation"
	dataOverviewPendingMessage = "Aguardando geração completa dos dados"
)

// GetSalesSummary responde o resumo de vendas concluídas. Sem tabelas provisionadas,
// devolve o payload zerado com message em vez de erro.
func GetSalesSummary(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("report", "sales-summary")

		result := service.GetSalesSummary(r.Context())

		switch result.Status {
		case domain.ResultOK:
			writeJSON(w, r, http.StatusOK, result.Data)
		case domain.ResultNotYetSeeded:
			logger.Info("analytics: sales summary pending data generation")
			writeJSON(w, r, http.StatusOK, domain.SalesSummary{
				Message: salesSummaryPendingMessage,
			})
		default:
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Sales summary failed: "+result.Message())
		}
	})
}

// GetDataOverview é best-effort: qualquer falha vira {error, message} com status 200
func GetDataOverview(service analytics.AnalyticsService) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := log.ForContext(r.Context()).WithField("report", "data-overview")

		result := service.GetDataOverview(r.Context())

		if result.Status == domain.ResultOK {
			writeJSON(w, r, http.StatusOK, result.Data)
			return
		}

		logger.WithField("error", result.Message()).Warn("analytics: data overview degraded")
		writeJSON(w, r, http.StatusOK, domain.DataOverviewPending{
			Error:   result.Message(),
			Message: dataOverviewPendingMessage,
		})
	})
}
