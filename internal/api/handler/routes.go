package handler

import (
	"net/http"

	"github.com/vfg2006/margin-insights-api/internal/api/handler/router"
	"github.com/vfg2006/margin-insights-api/internal/usecases/insighting"
	"github.com/vfg2006/margin-insights-api/internal/usecases/pricing"
	"github.com/vfg2006/margin-insights-api/pkg/middleware"
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

func Insights(service insighting.Insighter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/insights",
			Method:  http.MethodGet,
			Handler: GetInsights(service),
		},
		{
			Path:    "/v1/insights/history",
			Method:  http.MethodGet,
			Handler: ListInsightHistory(service),
		},
		{
			Path:        "/v1/insights/:id",
			Method:      http.MethodDelete,
			Handler:     DeleteInsight(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOrAdmin()},
		},
		{
			Path:    "/v1/channels/margins",
			Method:  http.MethodGet,
			Handler: GetChannelMargins(service),
		},
		{
			Path:    "/v1/dashboard/summary",
			Method:  http.MethodGet,
			Handler: GetDashboardSummary(service),
		},
	}
}

func Products(service pricing.Pricer) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/margins/products",
			Method:  http.MethodGet,
			Handler: GetProductMargins(service),
		},
		{
			Path:    "/v1/products/:id/price-suggestions",
			Method:  http.MethodGet,
			Handler: GetPriceSuggestions(service),
		},
		{
			Path:        "/v1/products/:id/apply-price",
			Method:      http.MethodPost,
			Handler:     ApplyPrice(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.OwnerOrAdmin()},
		},
	}
}

func CronJobs(service InsightSyncTrigger) []router.Route {
	return []router.Route{
		{
			Path:        "/v1/cron/insights/run",
			Method:      http.MethodPost,
			Handler:     RunInsightSync(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
		{
			Path:        "/v1/cron/status",
			Method:      http.MethodGet,
			Handler:     GetCronStatus(service),
			Middlewares: []func(http.Handler) http.Handler{middleware.AdminOnly()},
		},
	}
}
