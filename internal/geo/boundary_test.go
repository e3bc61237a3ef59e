package geo

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-trade-dashboard/internal/model"
)

const boundariesJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "properties": {"NAME": "Squareland"},
      "geometry": {"type": "Polygon", "coordinates": [[[0,0],[2,0],[2,2],[0,2],[0,0]]]}
    },
    {
      "type": "Feature",
      "properties": {"NAME": "Islands"},
      "geometry": {"type": "MultiPolygon", "coordinates": [
        [[[10,10],[12,10],[12,12],[10,12],[10,10]]],
        [[[20,10],[22,10],[22,12],[20,12],[20,10]]]
      ]}
    },
    {
      "type": "Feature",
      "properties": {"NAME": "Dot"},
      "geometry": {"type": "Point", "coordinates": [5, -3]}
    },
    {
      "type": "Feature",
      "properties": {"OTHER": "Nameless"},
      "geometry": {"type": "Point", "coordinates": [1, 1]}
    }
  ]
}`

func TestParseBoundaries(t *testing.T) {
	labels, err := ParseBoundaries([]byte(boundariesJSON), "NAME")
	require.NoError(t, err)
	require.Len(t, labels, 3)

	assert.Equal(t, "Squareland", labels[0].Name)
	assert.InDelta(t, 1.0, labels[0].Lon, 1e-9)
	assert.InDelta(t, 1.0, labels[0].Lat, 1e-9)

	assert.Equal(t, "Islands", labels[1].Name)
	assert.InDelta(t, 16.0, labels[1].Lon, 1e-9)
	assert.InDelta(t, 11.0, labels[1].Lat, 1e-9)

	assert.Equal(t, model.CountryLabel{Name: "Dot", Lon: 5, Lat: -3}, labels[2])
}

func TestLoadBoundaries(t *testing.T) {
	path := filepath.Join(t.TempDir(), "world.geojson")
	require.NoError(t, os.WriteFile(path, []byte(boundariesJSON), 0o644))

	labels, err := LoadBoundaries(path, "NAME")
	require.NoError(t, err)
	assert.Len(t, labels, 3)

	_, err = LoadBoundaries(filepath.Join(t.TempDir(), "missing.geojson"), "NAME")
	assert.True(t, model.IsLoadError(err))
}

func TestParseBoundariesInvalid(t *testing.T) {
	_, err := ParseBoundaries([]byte("not json"), "NAME")
	require.Error(t, err)
	assert.True(t, model.IsLoadError(err))
}

func TestParseBoundariesShortPosition(t *testing.T) {
	tests := []struct {
		name     string
		geometry string
	}{
		{"polygon", `{"type":"Polygon","coordinates":[[[1],[2,3],[4,5]]]}`},
		{"multipolygon", `{"type":"MultiPolygon","coordinates":[[[[0,0],[1,0],[1,1],[0,1],[0,0]]],[[[2,2],[],[3,3]]]]}`},
		{"point", `{"type":"Point","coordinates":[7]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{"NAME":"Broken"},"geometry":` +
				tt.geometry + `}]}`

			var err error
			require.NotPanics(t, func() {
				_, err = ParseBoundaries([]byte(data), "NAME")
			})
			require.Error(t, err)
			assert.True(t, model.IsLoadError(err))
			assert.Contains(t, err.Error(), "Broken")
		})
	}
}

func TestCentroidDegenerateRing(t *testing.T) {
	c, ok := Centroid(orb.Polygon{{{1, 1}, {3, 3}, {1, 1}}})
	require.True(t, ok)
	assert.InDelta(t, 2.0, c.Lon(), 1e-9)
	assert.InDelta(t, 2.0, c.Lat(), 1e-9)
}

func TestCentroidPolygonWithHole(t *testing.T) {
	// 4x4 square with the 2x2 top-right quadrant cut out
	poly := orb.Polygon{
		{{0, 0}, {4, 0}, {4, 4}, {0, 4}, {0, 0}},
		{{2, 2}, {4, 2}, {4, 4}, {2, 4}, {2, 2}},
	}
	c, ok := Centroid(poly)
	require.True(t, ok)
	assert.InDelta(t, 5.0/3.0, c.Lon(), 1e-9)
	assert.InDelta(t, 5.0/3.0, c.Lat(), 1e-9)

	_, ok = Centroid(orb.MultiPolygon{})
	assert.False(t, ok)
	_, ok = Centroid(orb.LineString{{0, 0}, {1, 1}})
	assert.False(t, ok)
}
