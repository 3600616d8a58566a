package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vfg2006/sales-cockpit-api/infrastructure/integrator/hubspot"
	"github.com/vfg2006/sales-cockpit-api/internal/api/handler/router"
	"github.com/vfg2006/sales-cockpit-api/internal/usecases/reporting"
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

func Metrics() []router.Route {
	return []router.Route{
		{
			Path:    "/metrics",
			Method:  http.MethodGet,
			Handler: promhttp.Handler(),
		},
	}
}

func Dashboard(service reporting.DashboardReporter) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service),
		},
	}
}

func Deals(service hubspot.DealIntegrator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/deals",
			Method:  http.MethodGet,
			Handler: GetDeals(service),
		},
	}
}
