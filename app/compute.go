// Package app orchestrates the engine: single-object derivation, parallel
// batch mapping and batch summarization. Winner selection lives here and
// nowhere else.
package app

import (
	"math"

	"github.com/error-wtf/segmented-calculation-suite/config"
	"github.com/error-wtf/segmented-calculation-suite/domain/catalog"
	"github.com/error-wtf/segmented-calculation-suite/domain/result"
	"github.com/error-wtf/segmented-calculation-suite/internal/physics"
)

// winnerEpsFloor keeps the tie epsilon meaningful when both residuals are
// effectively zero.
const winnerEpsFloor = 1e-20

// Compute derives one full result row. Invalid input produces an
// error-flagged row with NaN quantities; degenerate geometry (emission at
// or inside the horizon) keeps the row, flags it, and reports the
// gravitational terms as NaN.
func Compute(cfg config.Run, obj catalog.CelestialObject) result.CalculationResult {
	res := result.CalculationResult{Object: obj, RunID: cfg.ID}

	if err := obj.Validate(); err != nil {
		nan := math.NaN()
		res.Err = err
		res.SchwarzschildM = nan
		res.ROverRs = nan
		res.Regime = result.RegimeWeak
		res.Xi, res.DSSZ, res.DGR = nan, nan, nan
		res.ZGravGR, res.ZDoppler, res.ZGRxDoppler = nan, nan, nan
		res.ZSSZGrav, res.ZSSZTotal = nan, nan
		res.CorrectionPct, res.Compactness, res.EnergyNorm = nan, nan, nan
		return res
	}

	massKg := obj.MassSolar * cfg.Constants.MSun
	r := obj.RadiusM()
	rs := physics.SchwarzschildRadius(cfg, massKg)

	res.SchwarzschildM = rs
	res.ROverRs = r / rs
	res.Regime = physics.Classify(cfg, r, rs)

	xi, err := physics.Xi(cfg, r, rs)
	if err != nil {
		res.Err = err
	}
	res.Xi = xi
	res.DSSZ = physics.DSSZ(xi)
	res.DGR = physics.DGR(r, rs)

	zGrav, err := physics.ZGravitational(cfg, massKg, r)
	if err != nil {
		res.Err = err
	}
	res.ZGravGR = zGrav
	res.ZDoppler = physics.ZDoppler(cfg, obj.VelocityMS(), 0)
	res.ZGRxDoppler = physics.ZCombined(zGrav, res.ZDoppler)

	res.CorrectionPct = physics.DeltaM(cfg, massKg, res.Regime)
	if cfg.RedshiftMode == config.RedshiftGeomHint {
		res.ZSSZGrav = physics.ZGeomHint(cfg, massKg, r)
	} else {
		res.ZSSZGrav = physics.ZSSZGrav(zGrav, res.CorrectionPct)
	}
	res.ZSSZTotal = physics.ZCombined(res.ZSSZGrav, res.ZDoppler)

	res.Compactness = physics.Compactness(rs, r)
	res.EnergyNorm = physics.EnergyNorm(cfg, res.Compactness)

	if obj.ObservedZ != nil {
		obs := *obj.ObservedZ
		resSSZ := math.Abs(res.ZSSZTotal - obs)
		resGR := math.Abs(res.ZGRxDoppler - obs)
		res.Comparison = &result.Comparison{
			ObservedZ:   obs,
			ResidualSSZ: resSSZ,
			ResidualGR:  resGR,
			Winner:      decideWinner(resSSZ, resGR),
		}
	}

	return res
}

// decideWinner compares absolute residuals with a relative tie band of
// 1e-12 of the larger residual. A NaN residual loses to a finite one; two
// NaN residuals tie.
func decideWinner(resSSZ, resGR float64) result.Winner {
	nanSSZ, nanGR := math.IsNaN(resSSZ), math.IsNaN(resGR)
	switch {
	case nanSSZ && nanGR:
		return result.WinnerTie
	case nanSSZ:
		return result.WinnerGR
	case nanGR:
		return result.WinnerSSZ
	}

	eps := 1e-12 * math.Max(math.Max(math.Abs(resSSZ), math.Abs(resGR)), winnerEpsFloor)
	if math.Abs(resSSZ-resGR) <= eps {
		return result.WinnerTie
	}
	if resSSZ < resGR {
		return result.WinnerSSZ
	}
	return result.WinnerGR
}
