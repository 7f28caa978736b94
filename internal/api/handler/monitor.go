package handler

import (
	"net/http"

	"github.com/vfg2006/megabite-analytics-api/internal/domain"
)

type DatabaseMonitor interface {
	GetStatus() domain.DatabaseMonitorStatus
}

func GetMonitorStatus(monitor DatabaseMonitor) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, monitor.GetStatus())
	})
}
