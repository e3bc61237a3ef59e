package pipeline

import (
	"context"
	"fmt"

	"go-trade-dashboard/internal/logging"
	"go-trade-dashboard/internal/metrics"
	"go-trade-dashboard/internal/model"
)

// RecordSource answers the exact-match (year, origin) filter
type RecordSource interface {
	RecordsFor(ctx context.Context, year int, origin string) ([]model.TradeRecord, error)
}

// Dependencies are the read-only collaborators of a selection run
type Dependencies struct {
	Records RecordSource
	Names   NameResolver
	Labels  []model.CountryLabel
	Options ChartOptions
	Metrics *metrics.Metrics
	Logger  logging.Logger
}

// Status describes the current selection
func Status(countryName string, year int) string {
	return fmt.Sprintf("Exports from %s in %d", countryName, year)
}

// Run computes the full dashboard for one selection: filter, aggregate,
// normalize, then build the map and bar payloads. Nothing is cached between
// runs; the same selection always yields the same dashboard.
func Run(ctx context.Context, deps Dependencies, sel model.Selection) (*model.Dashboard, error) {
	log := deps.Logger
	if log == nil {
		log = logging.NewNop()
	}
	log = log.With(logging.Int("year", sel.Year), logging.String("country", sel.Country))
	tracker := newRunTracker(sel, deps.Metrics, log)

	countryName, err := deps.Names.Name(sel.Country)
	if err != nil {
		tracker.Finish("lookup_error")
		log.Warn("unknown selected country", logging.Err(err))
		return nil, err
	}

	var records []model.TradeRecord
	err = tracker.Track("filter", func() (int, error) {
		var err error
		records, err = deps.Records.RecordsFor(ctx, sel.Year, sel.Country)
		return len(records), err
	})
	if err != nil {
		tracker.Finish("error")
		return nil, fmt.Errorf("filter records: %w", err)
	}

	var flows []model.AggregatedFlow
	_ = tracker.Track("aggregate", func() (int, error) {
		flows = Aggregate(records)
		return len(flows), nil
	})

	var intensities map[int]float64
	_ = tracker.Track("normalize", func() (int, error) {
		intensities = Normalize(records)
		return len(intensities), nil
	})

	var mapPayload model.MapPayload
	err = tracker.Track("build_map", func() (int, error) {
		var err error
		mapPayload, err = BuildFlowMap(records, intensities, deps.Names, deps.Options)
		return len(mapPayload.Segments), err
	})
	if err != nil {
		tracker.Finish("lookup_error")
		log.Warn("country code missing from directory", logging.Err(err))
		return nil, err
	}
	if len(deps.Labels) > 0 {
		mapPayload.Labels = deps.Labels
	}

	var barPayload model.BarPayload
	_ = tracker.Track("build_bar", func() (int, error) {
		barPayload = BuildBarSeries(flows, deps.Options.Bar)
		return len(barPayload.Bars), nil
	})

	if len(records) == 0 {
		tracker.Finish("empty")
	} else {
		tracker.Finish("ok")
	}

	return &model.Dashboard{
		Selection:   sel,
		Status:      Status(countryName, sel.Year),
		Map:         mapPayload,
		Bar:         barPayload,
		Records:     records,
		Intensities: IntensitySlice(intensities, len(records)),
		Flows:       flows,
	}, nil
}
