package catalog

import (
	"math"

	"github.com/error-wtf/segmented-calculation-suite/config"
	"github.com/error-wtf/segmented-calculation-suite/domain/core"
)

// CelestialObject is one input record: a body with mass, an emission radius,
// and optionally a total velocity and an observed redshift. Units follow the
// astronomical convention of the source catalogues: solar masses, km, km/s.
type CelestialObject struct {
	Name        string  `json:"name"`
	MassSolar   float64 `json:"m_solar"`
	RadiusKm    float64 `json:"r_km"`
	VelocityKmS float64 `json:"v_kms"`

	// ObservedZ is nil when no observation exists; model comparison is
	// only performed for rows that carry one.
	ObservedZ *float64 `json:"z_obs,omitempty"`
}

// Validate rejects out-of-range records at the boundary. A NaN velocity is
// legal (treated as "not measured", i.e. zero); everything else must be
// finite and physical.
func (o CelestialObject) Validate() error {
	if o.Name == "" {
		return core.ErrEmptyName
	}
	if math.IsNaN(o.MassSolar) || math.IsInf(o.MassSolar, 0) {
		return core.NewValidationError("m_solar", "must be finite")
	}
	if o.MassSolar <= 0 {
		return core.ErrNonPositiveMass
	}
	if math.IsNaN(o.RadiusKm) || math.IsInf(o.RadiusKm, 0) {
		return core.NewValidationError("r_km", "must be finite")
	}
	if o.RadiusKm <= 0 {
		return core.ErrNonPositiveRadius
	}
	if math.IsInf(o.VelocityKmS, 0) {
		return core.NewValidationError("v_kms", "must be finite")
	}
	if !math.IsNaN(o.VelocityKmS) && math.Abs(o.VelocityKmS)*1000.0 >= config.SpeedOfLight {
		return core.ErrSuperluminal
	}
	if o.ObservedZ != nil && (math.IsNaN(*o.ObservedZ) || math.IsInf(*o.ObservedZ, 0)) {
		return core.NewValidationError("z_obs", "must be finite")
	}
	return nil
}

// RadiusM returns the emission radius in meters.
func (o CelestialObject) RadiusM() float64 {
	return o.RadiusKm * 1000.0
}

// VelocityMS returns the total velocity in m/s, with NaN normalized to 0.
func (o CelestialObject) VelocityMS() float64 {
	if math.IsNaN(o.VelocityKmS) {
		return 0
	}
	return o.VelocityKmS * 1000.0
}
