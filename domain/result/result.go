package result

import (
	"github.com/error-wtf/segmented-calculation-suite/domain/catalog"
	"github.com/error-wtf/segmented-calculation-suite/domain/core"
)

// Regime classifies the field strength at the emission radius by x = r/rs.
type Regime string

const (
	RegimeVeryClose    Regime = "very_close"
	RegimeBlended      Regime = "blended"
	RegimePhotonSphere Regime = "photon_sphere"
	RegimeStrong       Regime = "strong"
	RegimeWeak         Regime = "weak"
)

// Winner names the model whose prediction lies closer to the observation.
type Winner string

const (
	WinnerSSZ Winner = "SSZ"
	WinnerGR  Winner = "GR"
	WinnerTie Winner = "TIE"
)

// ParseWinner validates a stored winner label.
func ParseWinner(s string) (Winner, error) {
	switch Winner(s) {
	case WinnerSSZ, WinnerGR, WinnerTie:
		return Winner(s), nil
	}
	return "", core.NewValidationError("winner", "must be SSZ, GR or TIE")
}

// Comparison is the observation-dependent part of a result. It is all or
// nothing: either the row had an observed redshift and every field here is
// populated, or the pointer is nil.
type Comparison struct {
	ObservedZ   float64 `json:"z_obs"`
	ResidualSSZ float64 `json:"residual_ssz"` // |z_ssz_total - z_obs|
	ResidualGR  float64 `json:"residual_gr"`  // |z_gr_x_doppler - z_obs|
	Winner      Winner  `json:"winner"`
}

// CalculationResult is one fully derived row. Degenerate geometry does not
// drop the row; the offending quantities are NaN and Err carries the cause.
type CalculationResult struct {
	Object catalog.CelestialObject `json:"object"`
	RunID  core.RunID              `json:"run_id"`

	SchwarzschildM float64 `json:"rs_m"`
	ROverRs        float64 `json:"r_over_rs"`
	Regime         Regime  `json:"regime"`

	Xi   float64 `json:"xi"`
	DSSZ float64 `json:"d_ssz"`
	DGR  float64 `json:"d_gr"`

	ZGravGR     float64 `json:"z_grav_gr"`
	ZDoppler    float64 `json:"z_doppler"`
	ZGRxDoppler float64 `json:"z_gr_x_doppler"`
	ZSSZGrav    float64 `json:"z_ssz_grav"`
	ZSSZTotal   float64 `json:"z_ssz_total"`

	CorrectionPct float64 `json:"correction_pct"`
	Compactness   float64 `json:"compactness"`
	EnergyNorm    float64 `json:"energy_norm"`

	Comparison *Comparison `json:"comparison,omitempty"`
	Err        error       `json:"-"`
}

// Compared reports whether the row carries a model comparison.
func (r CalculationResult) Compared() bool {
	return r.Comparison != nil
}
