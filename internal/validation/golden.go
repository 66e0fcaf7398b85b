package validation

import (
	"context"
	"math"

	"github.com/error-wtf/segmented-calculation-suite/adapters/golden"
	"github.com/error-wtf/segmented-calculation-suite/app"
	"github.com/error-wtf/segmented-calculation-suite/config"
	"github.com/error-wtf/segmented-calculation-suite/domain/catalog"
	"github.com/error-wtf/segmented-calculation-suite/domain/result"
)

// goldenRelTol is the per-row relative tolerance for the recomputed
// redshifts against the stored reference values. Wide enough to absorb
// last-ulp libm differences, far tighter than any model margin.
const goldenRelTol = 1e-9

// Expected winner distribution over the 47 reference objects.
const (
	goldenWinsSSZ = 46
	goldenWinsGR  = 1
	goldenTies    = 0
)

// goldenChecks recomputes the embedded reference dataset through the public
// engine API and diffs values, winners and the winner distribution. A
// dataset that cannot be loaded is the one fatal condition of the suite.
func goldenChecks(ctx context.Context, cfg config.Run) ([]Outcome, error) {
	cat := CategoryGolden

	rows, err := golden.Load()
	if err != nil {
		return nil, err
	}

	objs := make([]catalog.CelestialObject, len(rows))
	for i, row := range rows {
		objs[i] = row.Object
	}
	results, err := app.ComputeBatch(ctx, cfg, objs)
	if err != nil {
		return nil, err
	}

	valueMismatches := 0
	winnerMismatches := 0
	wins := map[result.Winner]int{}
	for i, res := range results {
		row := rows[i]
		if relDiff(res.ZSSZTotal, row.RefZSSZ) > goldenRelTol ||
			relDiff(res.ZGRxDoppler, row.RefZGRxSR) > goldenRelTol {
			valueMismatches++
		}
		if res.Comparison == nil || res.Comparison.Winner != row.RefWinner {
			winnerMismatches++
		}
		if res.Comparison != nil {
			wins[res.Comparison.Winner]++
		}
	}

	out := []Outcome{
		boolOutcome("value_regression", cat, valueMismatches == 0,
			0, float64(valueMismatches), goldenRelTol,
			"recomputed redshifts drifted from the reference values"),
		boolOutcome("winner_regression", cat, winnerMismatches == 0,
			0, float64(winnerMismatches), 0,
			"per-object winner differs from the reference"),
		boolOutcome("winner_distribution", cat,
			wins[result.WinnerSSZ] == goldenWinsSSZ &&
				wins[result.WinnerGR] == goldenWinsGR &&
				wins[result.WinnerTie] == goldenTies,
			goldenWinsSSZ, float64(wins[result.WinnerSSZ]), 0,
			"winner tally is not 46 SSZ / 1 GR / 0 TIE"),
	}
	return out, nil
}

func relDiff(a, b float64) float64 {
	if a == b {
		return 0
	}
	return math.Abs(a-b) / math.Max(math.Abs(a), math.Abs(b))
}
