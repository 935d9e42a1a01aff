package handler

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/campaign-kpi-pipeline/infrastructure/repository"
	"github.com/vfg2006/campaign-kpi-pipeline/internal/api/handler/router"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Pipeline(services PipelineServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/pipeline/run",
			Method:  http.MethodPost,
			Handler: RunPipeline(services),
		},
		{
			Path:    "/v1/pipeline/status",
			Method:  http.MethodGet,
			Handler: GetPipelineStatus(services),
		},
		{
			Path:    "/v1/pipeline/runs",
			Method:  http.MethodGet,
			Handler: ListPipelineRuns(services),
		},
		{
			Path:    "/v1/raw/:date/load",
			Method:  http.MethodPost,
			Handler: LoadRawDate(services),
		},
	}
}

func KPIs(repo repository.DailyCampaignKPIRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/kpis",
			Method:  http.MethodGet,
			Handler: GetDailyKPIs(repo),
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
