package handler

import (
	"net/http"

	"github.com/vfg2006/megabite-analytics-api/internal/api/handler/router"
	"github.com/vfg2006/megabite-analytics-api/internal/config"
	"github.com/vfg2006/megabite-analytics-api/internal/usecases/analytics"
	"github.com/vfg2006/megabite-analytics-api/internal/usecases/probing"
)

func Root(app config.App) []router.Route {
	return []router.Route{
		{
			Path:    "/",
			Method:  http.MethodGet,
			Handler: RootHandler(app),
		},
	}
}

func Healthcheck(prober probing.Prober) []router.Route {
	return []router.Route{
		{
			Path:    "/health",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(prober),
		},
		{
			Path:    "/api/test-connection",
			Method:  http.MethodGet,
			Handler: TestConnection(prober),
		},
	}
}

func Analytics(service analytics.AnalyticsService) []router.Route {
	return []router.Route{
		{
			Path:    "/api/analytics/sales-summary",
			Method:  http.MethodGet,
			Handler: GetSalesSummary(service),
		},
		{
			Path:    "/api/analytics/data-overview",
			Method:  http.MethodGet,
			Handler: GetDataOverview(service),
		},
	}
}

func Monitor(monitor DatabaseMonitor) []router.Route {
	return []router.Route{
		{
			Path:    "/api/monitor/status",
			Method:  http.MethodGet,
			Handler: GetMonitorStatus(monitor),
		},
	}
}
