package validation

import (
	"context"
	"time"

	"github.com/error-wtf/segmented-calculation-suite/config"
)

// Run executes the full check catalogue against the given run
// configuration. Individual failures are recorded and the suite continues;
// only an unusable golden dataset (or context cancellation) returns an
// error.
func Run(ctx context.Context, cfg config.Run) (SuiteResult, error) {
	suite := SuiteResult{
		RunID:     cfg.ID,
		StartedAt: time.Now().UTC(),
	}

	suite.Outcomes = append(suite.Outcomes, coreFormulaChecks(cfg)...)
	suite.Outcomes = append(suite.Outcomes, invariantChecks(cfg)...)
	suite.Outcomes = append(suite.Outcomes, regimeChecks(cfg)...)
	suite.Outcomes = append(suite.Outcomes, blendChecks(cfg)...)
	suite.Outcomes = append(suite.Outcomes, precisionChecks(cfg)...)
	suite.Outcomes = append(suite.Outcomes, experimentChecks(cfg)...)

	goldenOutcomes, err := goldenChecks(ctx, cfg)
	if err != nil {
		return SuiteResult{}, err
	}
	suite.Outcomes = append(suite.Outcomes, goldenOutcomes...)

	for _, o := range suite.Outcomes {
		if o.Passed() {
			suite.PassedN++
		} else {
			suite.FailedN++
		}
	}
	suite.Total = len(suite.Outcomes)
	if suite.Total > 0 {
		suite.PassRate = float64(suite.PassedN) / float64(suite.Total)
	}
	suite.Duration = time.Since(suite.StartedAt)
	return suite, nil
}
