package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/storymaker/tracking-api/internal/api/handler/router"
	"github.com/storymaker/tracking-api/internal/usecases/authenticating"
	"github.com/storymaker/tracking-api/internal/usecases/capturing"
	"github.com/storymaker/tracking-api/internal/usecases/reporting"
	"github.com/storymaker/tracking-api/internal/usecases/tracking"
	"github.com/storymaker/tracking-api/pkg/apiErrors"
	"github.com/storymaker/tracking-api/pkg/middleware"
)

type Middleware = func(http.Handler) http.Handler

func Healthcheck(backend ReadinessChecker) []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
		{
			Path:    "/readiness",
			Method:  http.MethodGet,
			Handler: ReadinessHandler(backend),
		},
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

// Intake agrupa as rotas públicas chamadas pela landing page
func Intake(tracker tracking.Tracker, recorder capturing.Recorder, limit Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/events/click",
			Method:      http.MethodPost,
			Handler:     TrackClick(tracker),
			Middlewares: []Middleware{limit},
		},
		{
			Path:        "/v1/leads",
			Method:      http.MethodPost,
			Handler:     SubmitLead(recorder),
			Middlewares: []Middleware{limit},
		},
	}
}

func Authentication(service authenticating.Authenticator, limit Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/login",
			Method:      http.MethodPost,
			Handler:     Login(service),
			Middlewares: []Middleware{limit},
		},
	}
}

func Dashboard(reporter reporting.Reporter, service authenticating.Authenticator, views *Views, cookie DashboardCookie, limit Middleware) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/dashboard/report",
			Method:      http.MethodGet,
			Handler:     GetReport(reporter),
			Middlewares: []Middleware{middleware.DashboardOnly()},
		},
		{
			Path:        "/v1/dashboard/export/:dataset",
			Method:      http.MethodGet,
			Handler:     ExportDataset(reporter),
			Middlewares: []Middleware{middleware.DashboardOnly()},
		},
		{
			Path:    DashboardPath,
			Method:  http.MethodGet,
			Handler: DashboardHome(reporter, views),
		},
		{
			Path:        DashboardPath + "/login",
			Method:      http.MethodPost,
			Handler:     DashboardLogin(service, views, cookie),
			Middlewares: []Middleware{limit},
		},
		{
			Path:    DashboardPath + "/logout",
			Method:  http.MethodPost,
			Handler: DashboardLogout(cookie),
		},
		{
			Path:        DashboardExportPath + ":dataset",
			Method:      http.MethodGet,
			Handler:     ExportDataset(reporter),
			Middlewares: []Middleware{middleware.DashboardPage(DashboardPath)},
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/" + CronJobTypeDigest + "/run",
			Method:      http.MethodPost,
			Handler:     RunCronJob(services, CronJobTypeDigest),
			Middlewares: []Middleware{middleware.DashboardOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(services),
			Middlewares: []Middleware{middleware.DashboardOnly()},
		},
	}
}

func NotFound() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrNotFound, "Rota não encontrada", nil)
	})
}

func MethodNotAllowed() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apiErrors.WriteError(w, apiErrors.ErrMethodNotAllowed, "Método não suportado nesta rota", nil)
	})
}
