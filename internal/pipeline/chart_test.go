package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-trade-dashboard/internal/model"
)

func testChartOptions() ChartOptions {
	return ChartOptions{
		Map:         model.MapLayout{Title: "Trade Flows", Scope: "africa"},
		Bar:         model.BarLayout{Title: "Total Import Metric Tons", Color: "orange"},
		OriginColor: "red",
	}
}

func TestFlowLabel(t *testing.T) {
	assert.Equal(t, "Export from Nigeria to Ghana, Year: 2009, Metric Tons: 100",
		FlowLabel("Nigeria", "Ghana", 2009, 100))
	assert.Equal(t, "Export from Nigeria to Benin, Year: 2010, Metric Tons: 12.5",
		FlowLabel("Nigeria", "Benin", 2010, 12.5))
}

func TestBuildFlowMap(t *testing.T) {
	records := []model.TradeRecord{
		tradeRec("NGA", "GHA", 2009, 100),
		tradeRec("NGA", "BEN", 2009, 50),
	}
	intensities := map[int]float64{0: 84.13, 1: 15.87}

	payload, err := BuildFlowMap(records, intensities, testNames, testChartOptions())
	require.NoError(t, err)

	require.Len(t, payload.Segments, 2)
	seg := payload.Segments[0]
	assert.Equal(t, "NGA", seg.Origin)
	assert.Equal(t, "GHA", seg.Destination)
	assert.Equal(t, [2]float64{8.67, -1.02}, seg.Lon)
	assert.Equal(t, [2]float64{9.08, 7.95}, seg.Lat)
	assert.Equal(t, 84.13, seg.Intensity)
	assert.Equal(t, "Export from Nigeria to Ghana, Year: 2009, Metric Tons: 100", seg.Label)

	require.Len(t, payload.Choropleth, 2)
	assert.Equal(t, "BEN", payload.Choropleth[1].Location)
	assert.Equal(t, 15.87, payload.Choropleth[1].Z)
	assert.Equal(t, "Benin", payload.Choropleth[1].Text)
	assert.Equal(t, "Import from Benin<br>Metric Ton: 50<br>Year: 2009", payload.Choropleth[1].Hover)

	require.NotNil(t, payload.Origin)
	assert.Equal(t, model.OriginMarker{Code: "NGA", Name: "Nigeria", Lon: 8.67, Lat: 9.08, Color: "red"}, *payload.Origin)
	assert.Equal(t, "Trade Flows", payload.Layout.Title)
}

func TestBuildFlowMap_Empty(t *testing.T) {
	payload, err := BuildFlowMap(nil, map[int]float64{}, testNames, testChartOptions())
	require.NoError(t, err)
	assert.NotNil(t, payload.Segments)
	assert.Empty(t, payload.Segments)
	assert.NotNil(t, payload.Choropleth)
	assert.Empty(t, payload.Choropleth)
	assert.Nil(t, payload.Origin)
	assert.Equal(t, "africa", payload.Layout.Scope)
}

func TestBuildFlowMap_UnknownCodeFailsWholePayload(t *testing.T) {
	records := []model.TradeRecord{
		tradeRec("NGA", "GHA", 2009, 100),
		tradeRec("NGA", "XXX", 2009, 50),
	}

	payload, err := BuildFlowMap(records, Normalize(records), testNames, testChartOptions())
	require.Error(t, err)
	assert.True(t, model.IsLookupError(err))

	var lookupErr *model.LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Equal(t, "XXX", lookupErr.Code)
	assert.Empty(t, payload.Segments)
	assert.Nil(t, payload.Origin)
}

func TestBuildBarSeries(t *testing.T) {
	flows := []model.AggregatedFlow{
		{Origin: "NGA", Destination: "GHA", TotalVolume: 130, RecordCount: 2},
		{Origin: "NGA", Destination: "BEN", TotalVolume: 50.5, RecordCount: 1},
	}

	payload := BuildBarSeries(flows, testChartOptions().Bar)
	require.Len(t, payload.Bars, 2)
	assert.Equal(t, model.Bar{Label: "NGA to GHA", Value: 130, Text: "130"}, payload.Bars[0])
	assert.Equal(t, model.Bar{Label: "NGA to BEN", Value: 50.5, Text: "50.5"}, payload.Bars[1])
	assert.Equal(t, "orange", payload.Layout.Color)
}

func TestBuildBarSeries_Empty(t *testing.T) {
	payload := BuildBarSeries([]model.AggregatedFlow{}, model.BarLayout{})
	assert.NotNil(t, payload.Bars)
	assert.Empty(t, payload.Bars)
}
