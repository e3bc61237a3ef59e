package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "go-trade-dashboard/docs"
	"go-trade-dashboard/internal/api/handler"
	"go-trade-dashboard/pkg/router"
)

// RouteOptions toggles the operational endpoints
type RouteOptions struct {
	Gatherer prometheus.Gatherer // nil disables /metrics
	Swagger  bool
}

func RegisterRoutes(r *router.Router, h *handler.DashboardHandler, opts RouteOptions) {
	r.GET("/api/v1/options", h.GetOptions)
	r.GET("/api/v1/dashboard/map", h.GetMap)
	r.GET("/api/v1/dashboard/bar", h.GetBar)
	r.GET("/api/v1/dashboard", h.GetDashboard)
	r.GET("/api/v1/charts/bar.png", h.GetBarPNG)
	r.GET("/api/v1/charts/map.png", h.GetMapPNG)
	r.GET("/api/v1/export", h.Export)
	r.GET("/healthz", h.Health)

	if opts.Gatherer != nil {
		r.Handle(http.MethodGet, "/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}
	if opts.Swagger {
		r.Handle(http.MethodGet, "/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))
	}
}
