package handler

import (
	"net/http"

	"github.com/akozyrev/basket-analytics-api/infrastructure/repository"
	"github.com/akozyrev/basket-analytics-api/internal/api/handler/router"
	"github.com/akozyrev/basket-analytics-api/internal/usecases/reporting"
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

func Reports(service reporting.Reporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/summary",
			Method:  http.MethodGet,
			Handler: GetBasketSummary(service),
		},
		{
			Path:    "/v1/reports/distribution",
			Method:  http.MethodGet,
			Handler: GetBasketDistribution(service),
		},
		{
			Path:    "/v1/reports/affinity/products",
			Method:  http.MethodGet,
			Handler: GetProductAffinity(service),
		},
		{
			Path:    "/v1/reports/affinity/categories",
			Method:  http.MethodGet,
			Handler: GetCategoryAffinity(service),
		},
		{
			Path:    "/v1/reports/affinity/brands",
			Method:  http.MethodGet,
			Handler: GetBrandAffinity(service),
		},
		{
			Path:    "/v1/reports/momentum",
			Method:  http.MethodGet,
			Handler: GetProductMomentum(service),
		},
	}
}

func SummaryHistory(snapshotRepo repository.SummarySnapshotRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/reports/summary/history",
			Method:  http.MethodGet,
			Handler: GetSummaryHistory(snapshotRepo),
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
