package pipeline

import (
	"fmt"

	"go-trade-dashboard/internal/model"
	"go-trade-dashboard/pkg/utils"
)

// NameResolver resolves a country code to its display name
type NameResolver interface {
	Name(code string) (string, error)
}

// ChartOptions carries the presentation settings copied into each payload
type ChartOptions struct {
	Map         model.MapLayout
	Bar         model.BarLayout
	OriginColor string
}

// FlowLabel is the hover text of one flow line
func FlowLabel(originName, destinationName string, year int, volume float64) string {
	return fmt.Sprintf("Export from %s to %s, Year: %d, Metric Tons: %s",
		originName, destinationName, year, utils.FormatNumber(volume))
}

// BuildFlowMap builds the line segments, choropleth entries and origin marker
// for a filtered batch. Every country code is resolved before anything is
// built, so an unknown code fails the whole payload with *model.LookupError.
func BuildFlowMap(records []model.TradeRecord, intensities map[int]float64, names NameResolver, opts ChartOptions) (model.MapPayload, error) {
	payload := model.MapPayload{
		Segments:   []model.FlowSegment{},
		Choropleth: []model.ChoroplethEntry{},
		Layout:     opts.Map,
	}

	originNames := make([]string, len(records))
	destNames := make([]string, len(records))
	for i, rec := range records {
		var err error
		if originNames[i], err = names.Name(rec.Origin); err != nil {
			return model.MapPayload{}, err
		}
		if destNames[i], err = names.Name(rec.Destination); err != nil {
			return model.MapPayload{}, err
		}
	}

	for i, rec := range records {
		intensity := intensities[i]
		payload.Segments = append(payload.Segments, model.FlowSegment{
			Origin:      rec.Origin,
			Destination: rec.Destination,
			Lon:         [2]float64{rec.OriginLon, rec.DestLon},
			Lat:         [2]float64{rec.OriginLat, rec.DestLat},
			Volume:      rec.Volume,
			Intensity:   intensity,
			Label:       FlowLabel(originNames[i], destNames[i], rec.Year, rec.Volume),
		})
		payload.Choropleth = append(payload.Choropleth, model.ChoroplethEntry{
			Location: rec.Destination,
			Z:        intensity,
			Volume:   rec.Volume,
			Text:     destNames[i],
			Hover: fmt.Sprintf("Import from %s<br>Metric Ton: %s<br>Year: %d",
				destNames[i], utils.FormatNumber(rec.Volume), rec.Year),
		})
	}

	if len(records) > 0 {
		first := records[0]
		payload.Origin = &model.OriginMarker{
			Code:  first.Origin,
			Name:  originNames[0],
			Lon:   first.OriginLon,
			Lat:   first.OriginLat,
			Color: opts.OriginColor,
		}
	}

	return payload, nil
}

// BuildBarSeries turns sorted aggregated flows into bars, keeping their order
func BuildBarSeries(flows []model.AggregatedFlow, layout model.BarLayout) model.BarPayload {
	bars := make([]model.Bar, 0, len(flows))
	for _, f := range flows {
		bars = append(bars, model.Bar{
			Label: f.Origin + " to " + f.Destination,
			Value: f.TotalVolume,
			Text:  utils.FormatNumber(f.TotalVolume),
		})
	}
	return model.BarPayload{Bars: bars, Layout: layout}
}
