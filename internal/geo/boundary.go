// Package geo reads country boundary files and derives label positions.
package geo

import (
	"fmt"
	"os"

	geojson "github.com/paulmach/go.geojson"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"

	"go-trade-dashboard/internal/model"
)

// LoadBoundaries reads a GeoJSON FeatureCollection of country polygons and
// returns one label per named feature, placed at the polygon centroid.
func LoadBoundaries(path, nameProperty string) ([]model.CountryLabel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &model.LoadError{Path: path, Reason: "failed to read boundary file", Err: err}
	}
	return parseBoundaries(path, data, nameProperty)
}

// ParseBoundaries is LoadBoundaries over raw GeoJSON bytes
func ParseBoundaries(data []byte, nameProperty string) ([]model.CountryLabel, error) {
	return parseBoundaries("boundaries", data, nameProperty)
}

func parseBoundaries(source string, data []byte, nameProperty string) ([]model.CountryLabel, error) {
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, &model.LoadError{Path: source, Reason: "invalid GeoJSON", Err: err}
	}

	labels := []model.CountryLabel{}
	for i, f := range fc.Features {
		name := f.PropertyMustString(nameProperty, "")
		if name == "" || f.Geometry == nil {
			continue
		}
		g, err := toOrb(f.Geometry)
		if err != nil {
			return nil, &model.LoadError{
				Path:   source,
				Reason: fmt.Sprintf("feature %d (%s)", i, name),
				Err:    err,
			}
		}
		if g == nil {
			continue
		}
		c, ok := Centroid(g)
		if !ok {
			continue
		}
		labels = append(labels, model.CountryLabel{Name: name, Lon: c.Lon(), Lat: c.Lat()})
	}
	return labels, nil
}

// Centroid returns the area-weighted centroid of a polygon or multipolygon
// with holes subtracted, or the point itself. A multipolygon with no area
// has no centroid.
func Centroid(g orb.Geometry) (orb.Point, bool) {
	switch g := g.(type) {
	case orb.Point:
		return g, true
	case orb.Polygon:
		if len(g) == 0 || len(g[0]) == 0 {
			return orb.Point{}, false
		}
		c, _ := planar.CentroidArea(g)
		return c, true
	case orb.MultiPolygon:
		c, area := planar.CentroidArea(g)
		return c, area > 0
	}
	return orb.Point{}, false
}

// toOrb converts the geometry kinds a boundary file may carry. Other kinds
// yield a nil geometry and are skipped.
func toOrb(g *geojson.Geometry) (orb.Geometry, error) {
	switch {
	case g.IsPoint():
		return toPoint(g.Point)
	case g.IsPolygon():
		return toPolygon(g.Polygon)
	case g.IsMultiPolygon():
		mp := make(orb.MultiPolygon, 0, len(g.MultiPolygon))
		for _, rings := range g.MultiPolygon {
			p, err := toPolygon(rings)
			if err != nil {
				return nil, err
			}
			mp = append(mp, p)
		}
		return mp, nil
	}
	return nil, nil
}

func toPolygon(rings [][][]float64) (orb.Polygon, error) {
	p := make(orb.Polygon, 0, len(rings))
	for _, positions := range rings {
		r := make(orb.Ring, 0, len(positions))
		for _, pos := range positions {
			pt, err := toPoint(pos)
			if err != nil {
				return nil, err
			}
			r = append(r, pt)
		}
		p = append(p, r)
	}
	return p, nil
}

func toPoint(pos []float64) (orb.Point, error) {
	if len(pos) < 2 {
		return orb.Point{}, fmt.Errorf("position %v needs longitude and latitude", pos)
	}
	return orb.Point{pos[0], pos[1]}, nil
}
