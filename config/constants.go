package config

import "math"

// CODATA 2018 / IAU nominal values. These are the only physical constants
// the engine uses; everything else is derived.
const (
	GravitationalConstant = 6.67430e-11   // m^3 kg^-1 s^-2
	SpeedOfLight          = 299792458.0   // m/s
	SolarMassKg           = 1.98847e30    // kg
)

// GoldenRatio parameterizes the strong-field segment-density saturation.
var GoldenRatio = (1.0 + math.Sqrt(5.0)) / 2.0

// Constants is the frozen physical-constant snapshot carried by a run.
// Copying it into the run means a stored result can always be traced back
// to the exact numbers that produced it.
type Constants struct {
	G    float64 `json:"g" toml:"g"`
	C    float64 `json:"c" toml:"c"`
	MSun float64 `json:"m_sun" toml:"m_sun"`
	Phi  float64 `json:"phi" toml:"phi"`
}

// DefaultConstants returns the standard constant set.
func DefaultConstants() Constants {
	return Constants{
		G:    GravitationalConstant,
		C:    SpeedOfLight,
		MSun: SolarMassKg,
		Phi:  GoldenRatio,
	}
}
