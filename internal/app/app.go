// Package app assembles the dataset store, the country directory and the
// pipeline dependencies from a loaded configuration.
package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"go-trade-dashboard/internal/config"
	"go-trade-dashboard/internal/geo"
	"go-trade-dashboard/internal/logging"
	"go-trade-dashboard/internal/metrics"
	"go-trade-dashboard/internal/model"
	"go-trade-dashboard/internal/pipeline"
	"go-trade-dashboard/internal/store"
)

// App holds everything a selection run needs. It is built once at startup
// and read concurrently afterwards.
type App struct {
	Config    *config.Config
	Dataset   *store.Dataset
	Directory *store.Directory
	Options   model.Options
	Deps      pipeline.Dependencies
	Metrics   *metrics.Metrics
	Log       logging.Logger
}

// New loads the dataset and the directory. reg may be nil when metrics are not exported.
func New(ctx context.Context, cfg *config.Config, log logging.Logger, reg prometheus.Registerer) (*App, error) {
	if log == nil {
		log = logging.NewNop()
	}
	var m *metrics.Metrics
	if reg != nil {
		m = metrics.New(reg)
	}

	start := time.Now()
	ds, err := store.Load(ctx, cfg.Dataset.Path, store.LoadOptions{
		Columns:   cfg.Dataset.Columns,
		Delimiter: cfg.Dataset.DelimiterRune(),
	})
	if err != nil {
		return nil, err
	}
	count, err := ds.Count(ctx)
	if err != nil {
		ds.Close()
		return nil, fmt.Errorf("count records: %w", err)
	}
	m.ObserveLoad(count, time.Since(start))
	log.Info("dataset loaded",
		logging.String("source", cfg.Dataset.Path),
		logging.Int("records", count),
		logging.Duration("duration", time.Since(start)),
	)

	dir, err := buildDirectory(ctx, cfg, ds, log)
	if err != nil {
		ds.Close()
		return nil, err
	}

	var labels []model.CountryLabel
	if cfg.Boundaries.Path != "" {
		labels, err = geo.LoadBoundaries(cfg.Boundaries.Path, cfg.Boundaries.NameProperty)
		if err != nil {
			ds.Close()
			return nil, err
		}
		log.Info("country boundaries loaded", logging.Int("labels", len(labels)))
	}

	opts, err := store.BuildOptions(ctx, ds, dir, model.Selection{
		Year:    cfg.Dashboard.DefaultYear,
		Country: strings.ToUpper(cfg.Dashboard.DefaultCountry),
	})
	if err != nil {
		ds.Close()
		return nil, err
	}

	return &App{
		Config:    cfg,
		Dataset:   ds,
		Directory: dir,
		Options:   opts,
		Deps: pipeline.Dependencies{
			Records: ds,
			Names:   dir,
			Labels:  labels,
			Options: ChartOptions(cfg.Presentation),
			Metrics: m,
			Logger:  log,
		},
		Metrics: m,
		Log:     log,
	}, nil
}

func buildDirectory(ctx context.Context, cfg *config.Config, ds *store.Dataset, log logging.Logger) (*store.Directory, error) {
	names := store.DefaultNames()
	if cfg.Dataset.DirectoryPath != "" {
		var err error
		if names, err = store.LoadDirectoryFile(cfg.Dataset.DirectoryPath, names); err != nil {
			return nil, err
		}
	}

	codes, err := ds.Codes(ctx)
	if err != nil {
		return nil, fmt.Errorf("list country codes: %w", err)
	}
	dir, missing := store.BuildDirectory(codes, names)
	if len(missing) > 0 {
		// Selections touching these codes fail with a lookup error at render time.
		log.Warn("country codes without a directory name",
			logging.String("codes", strings.Join(missing, ",")))
	}
	return dir, nil
}

// ChartOptions maps presentation settings onto the payload layouts
func ChartOptions(p config.PresentationConfig) pipeline.ChartOptions {
	return pipeline.ChartOptions{
		Map: model.MapLayout{
			Title:       p.MapTitle,
			Scope:       p.MapScope,
			Projection:  p.Projection,
			Colorscale:  p.Colorscale,
			LineColor:   p.LineColor,
			LineWidth:   p.LineWidth,
			LineOpacity: p.LineOpacity,
			Width:       p.MapWidth,
			Height:      p.MapHeight,
		},
		Bar: model.BarLayout{
			Title:      p.BarTitle,
			SeriesName: p.BarSeries,
			XAxisTitle: p.BarXAxis,
			YAxisTitle: p.BarYAxis,
			Color:      p.BarColor,
			TickAngle:  p.BarTickAngle,
			Width:      p.BarWidth,
			Height:     p.BarHeight,
		},
		OriginColor: p.OriginColor,
	}
}

// Run computes the dashboard for one selection
func (a *App) Run(ctx context.Context, sel model.Selection) (*model.Dashboard, error) {
	return pipeline.Run(ctx, a.Deps, sel)
}

// Close releases the dataset store
func (a *App) Close() error {
	return a.Dataset.Close()
}
