// Package validation is the fixed self-check harness: a catalogue of
// numbered checks over the engine, grouped into categories, aggregated into
// one suite result. Check failures are data; only an unusable golden
// dataset aborts the suite.
package validation

import (
	"math"
	"time"

	"github.com/error-wtf/segmented-calculation-suite/domain/core"
)

// Category groups checks for reporting.
type Category string

const (
	CategoryCoreFormulas Category = "core_formulas"
	CategoryInvariants   Category = "physical_invariants"
	CategoryRegimes      Category = "regime_boundaries"
	CategoryBlend        Category = "blend_continuity"
	CategoryPrecision    Category = "numerical_precision"
	CategoryExperiments  Category = "experimental_cross_checks"
	CategoryGolden       Category = "golden_regression"
)

// Status is the binary verdict of one check.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
)

// Outcome records one check: what was expected, what came out, how much
// slack was allowed, and a human-readable diagnosis on failure.
type Outcome struct {
	ID        string   `json:"id"`
	Category  Category `json:"category"`
	Status    Status   `json:"status"`
	Expected  float64  `json:"expected"`
	Computed  float64  `json:"computed"`
	Tolerance float64  `json:"tolerance"`
	Diagnosis string   `json:"diagnosis,omitempty"`
}

// Passed reports whether the check held.
func (o Outcome) Passed() bool { return o.Status == StatusPass }

// withinAbs builds an outcome for |computed - expected| <= tol.
func withinAbs(id string, cat Category, expected, computed, tol float64) Outcome {
	o := Outcome{ID: id, Category: cat, Expected: expected, Computed: computed, Tolerance: tol, Status: StatusPass}
	if math.IsNaN(computed) || math.Abs(computed-expected) > tol {
		o.Status = StatusFail
		o.Diagnosis = "absolute deviation exceeds tolerance"
	}
	return o
}

// withinRel builds an outcome for |computed/expected - 1| <= tol.
func withinRel(id string, cat Category, expected, computed, tol float64) Outcome {
	o := Outcome{ID: id, Category: cat, Expected: expected, Computed: computed, Tolerance: tol, Status: StatusPass}
	if math.IsNaN(computed) || math.Abs(computed/expected-1.0) > tol {
		o.Status = StatusFail
		o.Diagnosis = "relative deviation exceeds tolerance"
	}
	return o
}

// SuiteResult aggregates every outcome of one harness run.
type SuiteResult struct {
	RunID     core.RunID    `json:"run_id"`
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`

	Outcomes []Outcome `json:"outcomes"`

	Total    int     `json:"total"`
	PassedN  int     `json:"passed"`
	FailedN  int     `json:"failed"`
	PassRate float64 `json:"pass_rate"`
}

// Failures returns the failed outcomes.
func (s SuiteResult) Failures() []Outcome {
	var out []Outcome
	for _, o := range s.Outcomes {
		if !o.Passed() {
			out = append(out, o)
		}
	}
	return out
}
