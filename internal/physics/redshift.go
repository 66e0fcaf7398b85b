package physics

import (
	"math"

	"github.com/error-wtf/segmented-calculation-suite/config"
	"github.com/error-wtf/segmented-calculation-suite/domain/core"
	"github.com/error-wtf/segmented-calculation-suite/domain/result"
)

// SchwarzschildRadius is rs = 2GM/c^2 in meters for a mass in kg.
func SchwarzschildRadius(cfg config.Run, massKg float64) float64 {
	return 2.0 * cfg.Constants.G * massKg / (cfg.Constants.C * cfg.Constants.C)
}

// ZGravitational is the GR gravitational redshift 1/sqrt(1 - rs/r) - 1.
// At or inside the horizon no photon escapes; the value is NaN and the
// error names the cause so callers can flag the row without dropping it.
func ZGravitational(cfg config.Run, massKg, r float64) (float64, error) {
	if massKg <= 0 {
		return math.NaN(), core.ErrNonPositiveMass
	}
	if r <= 0 {
		return math.NaN(), core.ErrNonPositiveRadius
	}
	rs := SchwarzschildRadius(cfg, massKg)
	if r <= rs {
		return math.NaN(), core.ErrInsideHorizon
	}
	return 1.0/math.Sqrt(1.0-rs/r) - 1.0, nil
}

// LorentzFactor is gamma(v) = 1/sqrt(1 - v^2/c^2).
func LorentzFactor(cfg config.Run, v float64) float64 {
	beta := v / cfg.Constants.C
	return 1.0 / math.Sqrt(1.0-beta*beta)
}

// ZDoppler is the special-relativistic Doppler redshift
// gamma * (1 + beta_los) - 1 for a total velocity and its line-of-sight
// component. Zero or NaN total velocity means no kinematic shift. The
// boundary has already rejected |v| >= c.
func ZDoppler(cfg config.Run, vTotal, vLOS float64) float64 {
	if vTotal == 0 || math.IsNaN(vTotal) {
		return 0
	}
	betaLOS := vLOS / cfg.Constants.C
	return LorentzFactor(cfg, math.Abs(vTotal))*(1.0+betaLOS) - 1.0
}

// ZCombined composes two redshifts multiplicatively:
// (1+a)(1+b) - 1. NaN components contribute nothing.
func ZCombined(a, b float64) float64 {
	if math.IsNaN(a) {
		a = 0
	}
	if math.IsNaN(b) {
		b = 0
	}
	return (1.0+a)*(1.0+b) - 1.0
}

// deltaMRaw is the un-normalized mass correction (A*exp(-alpha*rs) + B) in
// percent. The geometric hint consumes this directly.
func deltaMRaw(cfg config.Run, massKg float64) float64 {
	rs := SchwarzschildRadius(cfg, massKg)
	return cfg.Params.DeltaA*math.Exp(-cfg.Params.DeltaAlpha*rs) + cfg.Params.DeltaB
}

// DeltaM is the mass-dependent correction in percent, scaled by the
// clamped log10-mass window. In the weak regime it is exactly 0: the weak
// field contract requires the SSZ and GR gravitational redshifts to agree
// there, and this branch is what enforces it.
func DeltaM(cfg config.Run, massKg float64, regime result.Regime) float64 {
	if regime == result.RegimeWeak {
		return 0
	}
	norm := (math.Log10(massKg) - cfg.Params.LogMassMin) /
		(cfg.Params.LogMassMax - cfg.Params.LogMassMin)
	if norm < 0 {
		norm = 0
	} else if norm > 1 {
		norm = 1
	}
	return deltaMRaw(cfg, massKg) * norm
}

// ZSSZGrav applies the Delta(M) correction to the GR gravitational
// redshift: z_gr * (1 + Delta/100). NaN propagates.
func ZSSZGrav(zGrav, deltaPct float64) float64 {
	return zGrav * (1.0 + deltaPct/100.0)
}

// ZGeomHint is the alternative segmented gravitational redshift for
// orbiting sources: the raw correction inflates the effective mass,
// beta = 2 G M_eff / (r c^2), z = 1/sqrt(1 - beta*phi/2) - 1. It replaces
// the Delta(M)-corrected term entirely; the two are never combined. A
// non-positive radicand yields +Inf.
func ZGeomHint(cfg config.Run, massKg, r float64) float64 {
	mEff := massKg * (1.0 + deltaMRaw(cfg, massKg)/100.0)
	beta := 2.0 * cfg.Constants.G * mEff / (r * cfg.Constants.C * cfg.Constants.C)
	radicand := 1.0 - beta*cfg.Constants.Phi/2.0
	if radicand <= 0 {
		return math.Inf(1)
	}
	return 1.0/math.Sqrt(radicand) - 1.0
}
