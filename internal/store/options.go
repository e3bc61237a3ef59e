package store

import (
	"context"
	"fmt"

	"go-trade-dashboard/internal/model"
)

// BuildOptions lists the selectable years and countries. The preferred
// default is kept when it is selectable, otherwise the latest year and the
// first exporting country by name are used.
func BuildOptions(ctx context.Context, ds *Dataset, dir *Directory, preferred model.Selection) (model.Options, error) {
	years, err := ds.AllYears(ctx)
	if err != nil {
		return model.Options{}, fmt.Errorf("list years: %w", err)
	}

	opts := model.Options{
		Years:     make([]model.YearOption, 0, len(years)),
		Countries: dir.Options(),
		Default:   preferred,
	}
	hasYear := false
	for _, y := range years {
		opts.Years = append(opts.Years, model.YearOption{Label: y, Value: y})
		hasYear = hasYear || y == preferred.Year
	}
	if !hasYear && len(years) > 0 {
		opts.Default.Year = years[len(years)-1]
	}
	if _, err := dir.Name(preferred.Country); err != nil && len(opts.Countries) > 0 {
		origins, err := ds.OriginCountries(ctx)
		if err != nil {
			return model.Options{}, fmt.Errorf("list origins: %w", err)
		}
		opts.Default.Country = firstExporter(opts.Countries, origins)
	}
	return opts, nil
}

// firstExporter picks the first option that has outgoing trade so the default
// view is not empty. Without any, the first option is used.
func firstExporter(countries []model.CountryOption, origins []string) string {
	exports := make(map[string]bool, len(origins))
	for _, o := range origins {
		exports[o] = true
	}
	for _, c := range countries {
		if exports[c.Value] {
			return c.Value
		}
	}
	return countries[0].Value
}
