package pipeline

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"go-trade-dashboard/internal/model"
)

// zeroVarianceIntensity is assigned to every record when all volumes are equal
const zeroVarianceIntensity = 50.0

// Normalize maps each record's volume to an intensity in [0,100]: the
// population z-score over this batch, passed through the standard normal CDF.
// Keys are indexes into records. Intensities are only comparable within one batch.
func Normalize(records []model.TradeRecord) map[int]float64 {
	out := make(map[int]float64, len(records))
	if len(records) == 0 {
		return out
	}

	volumes := make([]float64, len(records))
	for i, rec := range records {
		volumes[i] = rec.Volume
	}

	// Equal volumes can still produce a tiny non-zero σ from rounding in the
	// mean, so compare the extremes instead of trusting σ alone.
	if floats.Min(volumes) == floats.Max(volumes) {
		for i := range volumes {
			out[i] = zeroVarianceIntensity
		}
		return out
	}

	// z-scores are scale invariant; scaling by the largest magnitude keeps the
	// mean and σ finite for volumes near math.MaxFloat64.
	scale := floats.Norm(volumes, math.Inf(1))
	for i := range volumes {
		volumes[i] /= scale
	}

	mean, std := stat.PopMeanStdDev(volumes, nil)
	if std == 0 || math.IsNaN(std) {
		for i := range volumes {
			out[i] = zeroVarianceIntensity
		}
		return out
	}

	for i, v := range volumes {
		z := (v - mean) / std
		out[i] = distuv.UnitNormal.CDF(z) * 100
	}
	return out
}

// IntensitySlice flattens a Normalize result into record order
func IntensitySlice(intensities map[int]float64, n int) []float64 {
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = intensities[i]
	}
	return out
}
