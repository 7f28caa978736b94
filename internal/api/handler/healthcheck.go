package handler

import (
	"net/http"

	"github.com/vfg2006/megabite-analytics-api/internal/config"
	"github.com/vfg2006/megabite-analytics-api/internal/domain"
	"github.com/vfg2006/megabite-analytics-api/internal/usecases/probing"
	"github.com/vfg2006/megabite-analytics-api/pkg/apiErrors"
)

const statusOnline = "online"

func RootHandler(app config.App) http.Handler {
	info := domain.APIInfo{
		Message: app.Name,
		Status:  statusOnline,
		Version: app.Version,
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, info)
	})
}

func HealthcheckHandler(prober probing.Prober) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := prober.CheckHealth(r.Context())

		switch result.Status {
		case domain.ResultOK:
			writeJSON(w, r, http.StatusOK, result.Data)
		default:
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOffline, "Database error: "+result.Message())
		}
	})
}

func TestConnection(prober probing.Prober) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		result := prober.TestConnection(r.Context())

		switch result.Status {
		case domain.ResultOK:
			writeJSON(w, r, http.StatusOK, result.Data)
		default:
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOffline, "Connection test failed: "+result.Message())
		}
	})
}
