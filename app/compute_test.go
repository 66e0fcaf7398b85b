package app

import (
	"math"
	"testing"

	"github.com/error-wtf/segmented-calculation-suite/config"
	"github.com/error-wtf/segmented-calculation-suite/domain/catalog"
	"github.com/error-wtf/segmented-calculation-suite/domain/core"
	"github.com/error-wtf/segmented-calculation-suite/domain/result"
	"github.com/error-wtf/segmented-calculation-suite/internal/physics"
)

func sunObject() catalog.CelestialObject {
	return catalog.CelestialObject{Name: "Sun", MassSolar: 1.0, RadiusKm: 696340.0}
}

// photonSphereObject sits at 3 rs, where the mass correction is active.
func photonSphereObject(cfg config.Run, obs float64) catalog.CelestialObject {
	rs := physics.SchwarzschildRadius(cfg, 10*cfg.Constants.MSun)
	return catalog.CelestialObject{
		Name:      "test-bh",
		MassSolar: 10.0,
		RadiusKm:  3 * rs / 1000.0,
		ObservedZ: &obs,
	}
}

func TestCompute_SunWeakFieldContract(t *testing.T) {
	cfg := config.NewRun()
	res := Compute(cfg, sunObject())

	if res.Err != nil {
		t.Fatalf("unexpected error: %v", res.Err)
	}
	if res.Regime != result.RegimeWeak {
		t.Fatalf("expected weak regime for the Sun, got %s", res.Regime)
	}
	if res.CorrectionPct != 0 {
		t.Fatalf("expected zero correction in the weak regime, got %v", res.CorrectionPct)
	}
	if res.ZSSZGrav != res.ZGravGR {
		t.Fatalf("weak-field contract broken: z_ssz_grav=%v, z_gr=%v", res.ZSSZGrav, res.ZGravGR)
	}
	if res.ZSSZTotal != res.ZGRxDoppler {
		t.Fatalf("weak-field contract broken in totals: %v vs %v", res.ZSSZTotal, res.ZGRxDoppler)
	}
	want := 2.1206226674674866e-06
	if res.ZGravGR != want {
		t.Fatalf("expected z_gr %v, got %v", want, res.ZGravGR)
	}
	if res.Comparison != nil {
		t.Fatal("expected no comparison without an observation")
	}
}

func TestCompute_WinnerDeterministicAcrossRepeats(t *testing.T) {
	cfg := config.NewRun()
	obj := photonSphereObject(cfg, 0.228)

	first := Compute(cfg, obj)
	if first.Comparison == nil {
		t.Fatal("expected a comparison")
	}
	if first.Regime != result.RegimePhotonSphere {
		t.Fatalf("expected photon_sphere, got %s", first.Regime)
	}
	if first.Comparison.Winner != result.WinnerSSZ {
		t.Fatalf("expected SSZ to win at z_obs=0.228, got %s", first.Comparison.Winner)
	}
	for i := 0; i < 4; i++ {
		res := Compute(cfg, obj)
		if res.Comparison.Winner != first.Comparison.Winner ||
			res.Comparison.ResidualSSZ != first.Comparison.ResidualSSZ ||
			res.Comparison.ResidualGR != first.Comparison.ResidualGR {
			t.Fatalf("repeat %d differs: %+v vs %+v", i, res.Comparison, first.Comparison)
		}
	}
}

func TestCompute_TieAtResidualMidpoint(t *testing.T) {
	cfg := config.NewRun()
	probe := Compute(cfg, photonSphereObject(cfg, 0.2))
	mid := (probe.ZSSZTotal + probe.ZGRxDoppler) / 2

	res := Compute(cfg, photonSphereObject(cfg, mid))
	if res.Comparison.Winner != result.WinnerTie {
		t.Fatalf("expected TIE at the residual midpoint, got %s (residuals %v vs %v)",
			res.Comparison.Winner, res.Comparison.ResidualSSZ, res.Comparison.ResidualGR)
	}
}

func TestCompute_GRWinsWhenObservationSidesWithGR(t *testing.T) {
	cfg := config.NewRun()
	probe := Compute(cfg, photonSphereObject(cfg, 0.2))
	obs := probe.ZGRxDoppler * 1.001

	res := Compute(cfg, photonSphereObject(cfg, obs))
	if res.Comparison.Winner != result.WinnerGR {
		t.Fatalf("expected GR win, got %s", res.Comparison.Winner)
	}
}

func TestCompute_InvalidInputFlagsRow(t *testing.T) {
	cfg := config.NewRun()
	res := Compute(cfg, catalog.CelestialObject{Name: "broken", MassSolar: -1, RadiusKm: 10})

	if res.Err == nil {
		t.Fatal("expected an error-flagged row")
	}
	if !core.IsInvalidInput(res.Err) {
		t.Fatalf("expected invalid-input error, got %v", res.Err)
	}
	if !math.IsNaN(res.ZSSZTotal) || !math.IsNaN(res.Xi) {
		t.Fatalf("expected NaN quantities on an invalid row, got z=%v xi=%v", res.ZSSZTotal, res.Xi)
	}
}

func TestCompute_InsideHorizonKeepsRow(t *testing.T) {
	cfg := config.NewRun()
	rs := physics.SchwarzschildRadius(cfg, 10*cfg.Constants.MSun)
	obj := catalog.CelestialObject{Name: "infalling", MassSolar: 10, RadiusKm: rs / 2 / 1000.0}

	res := Compute(cfg, obj)
	if res.Err == nil {
		t.Fatal("expected the row to be error-flagged")
	}
	if !math.IsNaN(res.ZGravGR) {
		t.Fatalf("expected NaN gravitational redshift inside the horizon, got %v", res.ZGravGR)
	}
	if res.DGR != 0 {
		t.Fatalf("expected zero GR dilation inside the horizon, got %v", res.DGR)
	}
}

func TestCompute_GeomHintReplacesGravTerm(t *testing.T) {
	cfg := config.NewRun()
	obj := photonSphereObject(cfg, 0.2)

	standard := Compute(cfg, obj)

	cfg.RedshiftMode = config.RedshiftGeomHint
	hinted := Compute(cfg, obj)

	massKg := obj.MassSolar * cfg.Constants.MSun
	want := physics.ZGeomHint(cfg, massKg, obj.RadiusM())
	if hinted.ZSSZGrav != want {
		t.Fatalf("expected the hint value %v, got %v", want, hinted.ZSSZGrav)
	}
	if hinted.ZSSZGrav == standard.ZSSZGrav {
		t.Fatal("expected the hint to differ from the corrected GR term")
	}
	// The GR baseline side is untouched by the mode switch.
	if hinted.ZGRxDoppler != standard.ZGRxDoppler {
		t.Fatalf("baseline changed with the SSZ mode: %v vs %v", hinted.ZGRxDoppler, standard.ZGRxDoppler)
	}
}

func TestDecideWinner_NaNPolicy(t *testing.T) {
	nan := math.NaN()
	if w := decideWinner(nan, 0.1); w != result.WinnerGR {
		t.Fatalf("NaN SSZ residual must lose, got %s", w)
	}
	if w := decideWinner(0.1, nan); w != result.WinnerSSZ {
		t.Fatalf("NaN GR residual must lose, got %s", w)
	}
	if w := decideWinner(nan, nan); w != result.WinnerTie {
		t.Fatalf("two NaN residuals must tie, got %s", w)
	}
}

func TestDecideWinner_EpsilonBand(t *testing.T) {
	if w := decideWinner(0.1, 0.1); w != result.WinnerTie {
		t.Fatalf("equal residuals must tie, got %s", w)
	}
	if w := decideWinner(0.1, 0.1*(1+1e-14)); w != result.WinnerTie {
		t.Fatalf("sub-epsilon difference must tie, got %s", w)
	}
	if w := decideWinner(0.1, 0.1*(1+1e-10)); w != result.WinnerSSZ {
		t.Fatalf("above-epsilon difference must pick the smaller residual, got %s", w)
	}
	if w := decideWinner(0, 0); w != result.WinnerTie {
		t.Fatalf("two zero residuals must tie, got %s", w)
	}
}
