package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"go-trade-dashboard/internal/api"
	"go-trade-dashboard/internal/api/handler"
	"go-trade-dashboard/internal/app"
	"go-trade-dashboard/pkg/router"
)

func newServeCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Load the dataset and serve the dashboard API",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := getCLIContext(cmd)
			if err != nil {
				return err
			}
			cfg := c.Config
			if addr != "" {
				cfg.Server.Addr = addr
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			var reg *prometheus.Registry
			var registerer prometheus.Registerer
			if cfg.Metrics.Enabled {
				reg = prometheus.NewRegistry()
				reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
				registerer = reg
			}

			a, err := app.New(ctx, cfg, c.Logger, registerer)
			if err != nil {
				return err
			}
			defer a.Close()

			h := handler.NewDashboardHandler(a.Deps, a.Options, a.Dataset, c.Logger.Named("api"))
			r := router.New(c.Logger)
			routeOpts := api.RouteOptions{Swagger: cfg.Swagger.Enabled}
			if reg != nil {
				routeOpts.Gatherer = reg
			}
			api.RegisterRoutes(r, h, routeOpts)

			return r.Start(ctx, cfg.Server.Addr, cfg.Server.ReadHeaderTimeout)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "override server.addr")
	return cmd
}
