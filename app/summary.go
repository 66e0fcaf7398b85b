package app

import (
	"math"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/floats"

	"github.com/error-wtf/segmented-calculation-suite/domain/result"
)

// Summarize aggregates a batch: winner tally over the compared rows,
// absolute-residual statistics per model, and a regime histogram over all
// non-error rows.
func Summarize(results []result.CalculationResult) result.Summary {
	sum := result.Summary{
		Total:   len(results),
		Regimes: make(map[result.Regime]int),
	}

	var residSSZ, residGR []float64
	for _, r := range results {
		if r.Err != nil {
			sum.Errors++
			continue
		}
		sum.Regimes[r.Regime]++
		if r.Comparison == nil {
			continue
		}
		sum.Compared++
		switch r.Comparison.Winner {
		case result.WinnerSSZ:
			sum.WinsSSZ++
		case result.WinnerGR:
			sum.WinsGR++
		case result.WinnerTie:
			sum.Ties++
		}
		if !math.IsNaN(r.Comparison.ResidualSSZ) {
			residSSZ = append(residSSZ, r.Comparison.ResidualSSZ)
		}
		if !math.IsNaN(r.Comparison.ResidualGR) {
			residGR = append(residGR, r.Comparison.ResidualGR)
		}
	}

	if sum.Compared > 0 {
		sum.WinRateSSZ = float64(sum.WinsSSZ) / float64(sum.Compared)
	}
	sum.ResidualsSSZ = residualStats(residSSZ)
	sum.ResidualsGR = residualStats(residGR)
	return sum
}

func residualStats(resid []float64) result.ResidualStats {
	if len(resid) == 0 {
		return result.ResidualStats{}
	}
	mean, _ := stats.Mean(resid)
	median, _ := stats.Median(resid)
	sd, _ := stats.StandardDeviation(resid)
	rmse := math.Sqrt(floats.Dot(resid, resid) / float64(len(resid)))
	return result.ResidualStats{
		Mean:   mean,
		Median: median,
		StdDev: sd,
		RMSE:   rmse,
	}
}
