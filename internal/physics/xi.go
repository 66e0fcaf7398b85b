// Package physics holds the pure numeric kernels of the segmented-spacetime
// model: segment density, time dilation, redshift composition, regime
// classification and the supporting velocity/power-law relations. Every
// function is a pure function of its arguments and the run snapshot.
package physics

import (
	"math"

	"github.com/error-wtf/segmented-calculation-suite/config"
	"github.com/error-wtf/segmented-calculation-suite/domain/core"
)

// XiWeak is the weak-field segment density rs/(2r), the half Newtonian
// potential in units of c^2.
func XiWeak(r, rs float64) (float64, error) {
	if rs <= 0 {
		return math.NaN(), core.NewValidationError("rs", "must be positive")
	}
	if r <= 0 {
		return math.NaN(), core.NewValidationError("r", "must be positive")
	}
	return rs / (2.0 * r), nil
}

// XiStrong is the saturating strong-field segment density
// ximax * (1 - exp(-phi * r/rs)). At r = rs it equals 1 - exp(-phi).
func XiStrong(cfg config.Run, r, rs float64) (float64, error) {
	if rs <= 0 {
		return math.NaN(), core.NewValidationError("rs", "must be positive")
	}
	if r <= 0 {
		return math.NaN(), core.NewValidationError("r", "must be positive")
	}
	return cfg.Params.XiMax * (1.0 - math.Exp(-cfg.Constants.Phi*r/rs)), nil
}

// smoothstep is the quintic 6t^5 - 15t^4 + 10t^3. Its first derivative
// vanishes at t=0 and t=1, which makes the blend C1 at the zone boundaries
// without matching second derivatives.
func smoothstep(t float64) float64 {
	return t * t * t * (t*(6.0*t-15.0) + 10.0)
}

// XiBlended selects the strong branch below the blend zone, the weak branch
// above it, and a smoothstep-weighted mix inside. The boundaries are C0 and
// C1 by construction; the second derivative is bounded but not matched.
func XiBlended(cfg config.Run, r, rs float64) (float64, error) {
	if rs <= 0 {
		return math.NaN(), core.NewValidationError("rs", "must be positive")
	}
	if r <= 0 {
		return math.NaN(), core.NewValidationError("r", "must be positive")
	}
	x := r / rs
	if x <= cfg.Params.BlendLo {
		return XiStrong(cfg, r, rs)
	}
	if x >= cfg.Params.BlendHi {
		return XiWeak(r, rs)
	}
	strong, err := XiStrong(cfg, r, rs)
	if err != nil {
		return math.NaN(), err
	}
	weak, err := XiWeak(r, rs)
	if err != nil {
		return math.NaN(), err
	}
	h := smoothstep((x - cfg.Params.BlendLo) / (cfg.Params.BlendHi - cfg.Params.BlendLo))
	return (1.0-h)*strong + h*weak, nil
}

// Xi dispatches on the run's segment-density mode.
func Xi(cfg config.Run, r, rs float64) (float64, error) {
	switch cfg.XiMode {
	case config.XiModeWeak:
		return XiWeak(r, rs)
	case config.XiModeStrong:
		return XiStrong(cfg, r, rs)
	default:
		return XiBlended(cfg, r, rs)
	}
}
