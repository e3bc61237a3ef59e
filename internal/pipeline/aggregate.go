package pipeline

import (
	"sort"

	"go-trade-dashboard/internal/model"
)

type flowKey struct {
	origin, destination string
}

// Aggregate sums volume per (origin, destination) pair and sorts the pairs by
// total volume, largest first. Pairs with equal totals keep the order in which
// they first appeared.
func Aggregate(records []model.TradeRecord) []model.AggregatedFlow {
	flows := []model.AggregatedFlow{}
	index := make(map[flowKey]int)

	for _, rec := range records {
		key := flowKey{rec.Origin, rec.Destination}
		i, exists := index[key]
		if !exists {
			i = len(flows)
			index[key] = i
			flows = append(flows, model.AggregatedFlow{
				Origin:      rec.Origin,
				Destination: rec.Destination,
			})
		}
		flows[i].TotalVolume += rec.Volume
		flows[i].RecordCount++
	}

	sort.SliceStable(flows, func(i, j int) bool {
		return flows[i].TotalVolume > flows[j].TotalVolume
	})
	return flows
}

// TotalVolume sums the volume of a batch of records
func TotalVolume(records []model.TradeRecord) float64 {
	var total float64
	for _, rec := range records {
		total += rec.Volume
	}
	return total
}
