package handler

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/sales-panel-api/internal/api/handler/router"
	"github.com/vfg2006/sales-panel-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-panel-api/pkg/middleware"
)

func Healthcheck(db Pinger) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(db),
		},
	}
}

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
		{
			Path:    "/v1/sales/lines",
			Method:  http.MethodGet,
			Handler: GetSalesLines(service),
		},
	}
}

func Filters(service dashboarding.Dashboarder) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/filters/date-range",
			Method:  http.MethodGet,
			Handler: GetDateRange(service),
		},
		{
			Path:    "/v1/filters/options",
			Method:  http.MethodGet,
			Handler: GetFilterOptions(service),
		},
	}
}

// Session registra as rotas de estado de interface. Só elas criam sessões.
func Session(store SessionStore, cookieName string, ttl time.Duration) []router.Route {
	withSession := []func(http.Handler) http.Handler{middleware.Session(store, cookieName, ttl)}

	return []router.Route{
		{
			Path:        "/v1/session",
			Method:      http.MethodGet,
			Handler:     GetSession(store),
			Middlewares: withSession,
		},
		{
			Path:        "/v1/session/sidebar/toggle",
			Method:      http.MethodPost,
			Handler:     ToggleSidebar(store),
			Middlewares: withSession,
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
