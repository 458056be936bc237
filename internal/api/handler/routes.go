package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/sales-data-generator/internal/api/handler/router"
	"github.com/vfg2006/sales-data-generator/internal/usecases/authenticating"
	"github.com/vfg2006/sales-data-generator/pkg/middleware"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
	}
}

func Datasets(generator DatasetGenerator, runs DatasetHistory) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/datasets/generate",
			Method:      http.MethodPost,
			Handler:     GenerateDataset(generator),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/datasets/last",
			Method:      http.MethodGet,
			Handler:     GetLastRun(runs),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
		{
			Path:        "/v1/datasets/runs",
			Method:      http.MethodGet,
			Handler:     ListRuns(runs),
			Middlewares: []func(http.Handler) http.Handler{middleware.AllRoles()},
		},
	}
}

func CronJobs(scheduler GenerationScheduler) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/generation/run",
			Method:      http.MethodPost,
			Handler:     RunGenerationJob(scheduler),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(scheduler),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
