package pipeline

import (
	"context"

	"go-trade-dashboard/internal/logging"
	"go-trade-dashboard/internal/model"
)

// fakeSource filters an in-memory slice the way the dataset store does
type fakeSource struct {
	records []model.TradeRecord
	err     error
	calls   int
}

func (f *fakeSource) RecordsFor(_ context.Context, year int, origin string) ([]model.TradeRecord, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	out := []model.TradeRecord{}
	for _, rec := range f.records {
		if rec.Year == year && rec.Origin == origin {
			out = append(out, rec)
		}
	}
	return out, nil
}

type fakeNames map[string]string

func (n fakeNames) Name(code string) (string, error) {
	name, ok := n[code]
	if !ok {
		return "", &model.LookupError{Code: code}
	}
	return name, nil
}

var testNames = fakeNames{
	"NGA": "Nigeria",
	"GHA": "Ghana",
	"BEN": "Benin",
	"KEN": "Kenya",
	"UGA": "Uganda",
}

func tradeRec(origin, dest string, year int, volume float64) model.TradeRecord {
	return model.TradeRecord{
		Origin: origin, Destination: dest, Year: year, Volume: volume,
		OriginLat: 9.08, OriginLon: 8.67, DestLat: 7.95, DestLon: -1.02,
	}
}

func sampleRecords() []model.TradeRecord {
	return []model.TradeRecord{
		tradeRec("NGA", "GHA", 2009, 100),
		tradeRec("NGA", "BEN", 2009, 50),
		tradeRec("NGA", "GHA", 2009, 30),
		tradeRec("KEN", "UGA", 2009, 70),
		tradeRec("NGA", "GHA", 2010, 500),
	}
}

func nopLogger() logging.Logger {
	return logging.NewNop()
}
