package pipeline

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"go-trade-dashboard/internal/model"
	"go-trade-dashboard/pkg/utils"
)

var countryCode = regexp.MustCompile(`^[A-Z]{3}$`)

const (
	minYear = 1
	maxYear = 9999
)

// parseYear accepts "2009" as well as the float rendering "2009.0"
func parseYear(s string) (int, error) {
	var year int
	switch v := utils.ParseValue(s).(type) {
	case int:
		year = v
	case float64:
		if v != math.Trunc(v) || v < minYear || v > maxYear {
			return 0, fmt.Errorf("year must be an integer in %d..%d, got %q", minYear, maxYear, s)
		}
		year = int(v)
	default:
		return 0, fmt.Errorf("year must be an integer, got %q", s)
	}
	if year < minYear || year > maxYear {
		return 0, fmt.Errorf("year must be an integer in %d..%d, got %q", minYear, maxYear, s)
	}
	return year, nil
}

func parseNumber(field, s string) (float64, error) {
	if s == "" {
		return 0, fmt.Errorf("%s is empty", field)
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%s must be numeric, got %q", field, s)
	}
	return f, nil
}

// validateRecord applies the dataset invariants to a parsed row
func validateRecord(rec model.TradeRecord) error {
	if !countryCode.MatchString(rec.Origin) {
		return fmt.Errorf("origin %q is not an ISO-3 country code", rec.Origin)
	}
	if !countryCode.MatchString(rec.Destination) {
		return fmt.Errorf("destination %q is not an ISO-3 country code", rec.Destination)
	}
	if rec.Volume < 0 {
		return fmt.Errorf("volume below minimum: got %v, want ≥ 0", rec.Volume)
	}

	for _, lat := range []float64{rec.OriginLat, rec.DestLat} {
		if lat < -90 || lat > 90 {
			return fmt.Errorf("latitude out of range: %v", lat)
		}
	}
	for _, lon := range []float64{rec.OriginLon, rec.DestLon} {
		if lon < -180 || lon > 180 {
			return fmt.Errorf("longitude out of range: %v", lon)
		}
	}
	return nil
}
