package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-trade-dashboard/internal/config"
	"go-trade-dashboard/internal/model"
)

const tradeCSV = `country1,country2,Year,Import trade _metric Tons,latitude1,longitude1,latitude2,longitude2
NGA,GHA,2009,100,9.08,8.67,7.95,-1.02
NGA,BEN,2009,50,9.08,8.67,9.31,2.32
NGA,QQQ,2010,5,9.08,8.67,0,0
`

const boundaries = `{"type":"FeatureCollection","features":[
{"type":"Feature","properties":{"name":"Square"},"geometry":{"type":"Polygon","coordinates":[[[0,0],[2,0],[2,2],[0,2],[0,0]]]}}
]}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	cfg.Dataset.Path = writeFile(t, t.TempDir(), "trade.csv", tradeCSV)
	return cfg
}

func TestNew(t *testing.T) {
	reg := prometheus.NewRegistry()
	a, err := New(context.Background(), testConfig(t), nil, reg)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, model.Selection{Year: 2009, Country: "NGA"}, a.Options.Default)
	assert.Len(t, a.Options.Years, 2)
	assert.Equal(t, 3, a.Directory.Len(), "QQQ has no name")
	assert.Equal(t, 3.0, testutil.ToFloat64(a.Metrics.DatasetRecords))

	d, err := a.Run(context.Background(), model.Selection{Year: 2009, Country: "NGA"})
	require.NoError(t, err)
	assert.Equal(t, "Exports from Nigeria in 2009", d.Status)
	assert.Equal(t, "Trade Flows", d.Map.Layout.Title)
	assert.Equal(t, "red", d.Map.Origin.Color)

	_, err = a.Run(context.Background(), model.Selection{Year: 2010, Country: "NGA"})
	assert.True(t, model.IsLookupError(err))
}

func TestNew_DirectoryFileAndBoundaries(t *testing.T) {
	cfg := testConfig(t)
	dir := t.TempDir()
	cfg.Dataset.DirectoryPath = writeFile(t, dir, "names.csv", "code,name\nQQQ,Qland\n")
	cfg.Boundaries.Path = writeFile(t, dir, "countries.geojson", boundaries)
	cfg.Boundaries.NameProperty = "name"

	a, err := New(context.Background(), cfg, nil, nil)
	require.NoError(t, err)
	defer a.Close()

	assert.Equal(t, 4, a.Directory.Len())
	require.Len(t, a.Deps.Labels, 1)
	assert.InDelta(t, 1.0, a.Deps.Labels[0].Lon, 1e-9)

	d, err := a.Run(context.Background(), model.Selection{Year: 2010, Country: "NGA"})
	require.NoError(t, err)
	assert.Equal(t, "Export from Nigeria to Qland, Year: 2010, Metric Tons: 5", d.Map.Segments[0].Label)
	assert.Len(t, d.Map.Labels, 1)
}

func TestNew_LoadError(t *testing.T) {
	cfg := testConfig(t)
	cfg.Dataset.Path = filepath.Join(t.TempDir(), "missing.csv")

	_, err := New(context.Background(), cfg, nil, nil)
	require.Error(t, err)
	assert.True(t, model.IsLoadError(err))
}

func TestChartOptions(t *testing.T) {
	cfg := testConfig(t)
	opts := ChartOptions(cfg.Presentation)
	assert.Equal(t, "africa", opts.Map.Scope)
	assert.Equal(t, "orange", opts.Bar.Color)
	assert.Equal(t, 45, opts.Bar.TickAngle)
	assert.Equal(t, "red", opts.OriginColor)
}
