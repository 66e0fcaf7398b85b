package physics

import (
	"math"

	"github.com/error-wtf/segmented-calculation-suite/config"
	"github.com/error-wtf/segmented-calculation-suite/domain/core"
)

// DualVelocities returns the escape velocity v_esc = c*sqrt(rs/r) and its
// dual v_fall = c^2/v_esc. Their product is c^2 at every radius, which the
// harness checks as an invariant.
func DualVelocities(cfg config.Run, r, rs float64) (vEsc, vFall float64, err error) {
	if rs <= 0 {
		return math.NaN(), math.NaN(), core.NewValidationError("rs", "must be positive")
	}
	if r <= 0 {
		return math.NaN(), math.NaN(), core.NewValidationError("r", "must be positive")
	}
	c := cfg.Constants.C
	vEsc = c * math.Sqrt(rs/r)
	vFall = c * c / vEsc
	return vEsc, vFall, nil
}

// Compactness is rs/R, the dimensionless surface compactness.
func Compactness(rs, radius float64) float64 {
	if radius <= 0 {
		return math.NaN()
	}
	return rs / radius
}

// EnergyNorm is the power-law energy normalization
// 1 + A * (rs/R)^beta. It is 1 in the limit of vanishing compactness and
// grows past 1.1 for neutron stars.
func EnergyNorm(cfg config.Run, compactness float64) float64 {
	if compactness <= 0 || math.IsNaN(compactness) {
		return math.NaN()
	}
	return 1.0 + cfg.Params.PowerLawA*math.Pow(compactness, cfg.Params.PowerLawBeta)
}
