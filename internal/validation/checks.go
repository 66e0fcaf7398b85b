package validation

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/error-wtf/segmented-calculation-suite/config"
	"github.com/error-wtf/segmented-calculation-suite/domain/result"
	"github.com/error-wtf/segmented-calculation-suite/internal/physics"
)

// Reference values for the cross-checks. Earth figures are the standard
// ones; the experimental expectations and tolerances come from the
// published measurements.
const (
	earthMassKg   = 5.972e24
	earthRadiusM  = 6.371e6
	gpsAltitudeM  = 20200e3
	poundRebkaM   = 22.5
	nistLiftM     = 0.33
	tokyoSkytreeM = 450.0

	expectedRsSunM     = 2953.25
	expectedGPSMicro   = 45.7
	expectedPoundRebka = 2.46e-15
	expectedNISTShift  = 4e-17
)

func coreFormulaChecks(cfg config.Run) []Outcome {
	cat := CategoryCoreFormulas
	var out []Outcome

	rsSun := physics.SchwarzschildRadius(cfg, cfg.Constants.MSun)
	out = append(out, withinAbs("rs_sun_m", cat, expectedRsSunM, rsSun, 1.0))

	xiHorizon, _ := physics.XiStrong(cfg, rsSun, rsSun)
	out = append(out, withinAbs("xi_at_horizon", cat, 1.0-math.Exp(-cfg.Constants.Phi), xiHorizon, 1e-12))
	out = append(out, withinAbs("d_ssz_at_horizon", cat, 0.5550, physics.DSSZ(xiHorizon), 1e-3))

	// D_SSZ * (1 + Xi) == 1 across four decades of radius.
	grid := floats.Span(make([]float64, 400), 1.01, 1000.0)
	worst := 0.0
	for _, x := range grid {
		xi, _ := physics.XiBlended(cfg, x*rsSun, rsSun)
		if dev := math.Abs(physics.DSSZ(xi)*(1.0+xi) - 1.0); dev > worst {
			worst = dev
		}
	}
	out = append(out, withinAbs("dilation_density_identity", cat, 0, worst, 1e-12))

	// Composing with a zero Doppler term must return the input redshift.
	zGrid := floats.Span(make([]float64, 200), 1e-6, 10.0)
	worst = 0.0
	for _, z := range zGrid {
		if dev := math.Abs(physics.ZCombined(z, 0)/z - 1.0); dev > worst {
			worst = dev
		}
	}
	out = append(out, withinAbs("z_combined_zero_doppler", cat, 0, worst, 1e-9))

	return out
}

func invariantChecks(cfg config.Run) []Outcome {
	cat := CategoryInvariants
	var out []Outcome
	rs := physics.SchwarzschildRadius(cfg, cfg.Constants.MSun)

	grid := floats.Span(make([]float64, 500), 1.0, 500.0)
	minXi, minD, maxD := math.Inf(1), math.Inf(1), math.Inf(-1)
	for _, x := range grid {
		xi, _ := physics.XiBlended(cfg, x*rs, rs)
		d := physics.DSSZ(xi)
		minXi = math.Min(minXi, xi)
		minD = math.Min(minD, d)
		maxD = math.Max(maxD, d)
	}
	out = append(out, boolOutcome("xi_nonnegative", cat, minXi >= 0,
		0, minXi, 0, "segment density went negative"))
	out = append(out, boolOutcome("d_ssz_in_unit_interval", cat, minD > 0 && maxD <= 1,
		1, maxD, 0, "D_SSZ left (0, 1]"))

	// v_esc * v_fall == c^2 at several radii.
	worst := 0.0
	for _, x := range []float64{2, 5, 10, 100} {
		vEsc, vFall, _ := physics.DualVelocities(cfg, x*rs, rs)
		dev := math.Abs(vEsc*vFall/(cfg.Constants.C*cfg.Constants.C) - 1.0)
		worst = math.Max(worst, dev)
	}
	out = append(out, withinAbs("dual_velocity_product", cat, 0, worst, 1e-12))

	// The dilation curves cross at the same x = r/rs for every mass.
	worst = 0.0
	for _, mSolar := range []float64{1, 10, 1e6} {
		massKg := mSolar * cfg.Constants.MSun
		rsM := physics.SchwarzschildRadius(cfg, massKg)
		rStar := physics.IntersectionROverRs * rsM
		xi, _ := physics.XiStrong(cfg, rStar, rsM)
		dev := math.Abs(physics.DSSZ(xi) - physics.IntersectionD)
		worst = math.Max(worst, dev)
	}
	out = append(out, withinAbs("intersection_mass_independent", cat, physics.IntersectionD, physics.IntersectionD+worst, 1e-4))

	// Weak field: the correction is zero and the SSZ gravitational
	// redshift equals GR bit for bit.
	sunMassKg := cfg.Constants.MSun
	sunRadiusM := 696340e3
	zGR, _ := physics.ZGravitational(cfg, sunMassKg, sunRadiusM)
	regime := physics.Classify(cfg, sunRadiusM, physics.SchwarzschildRadius(cfg, sunMassKg))
	delta := physics.DeltaM(cfg, sunMassKg, regime)
	zSSZ := physics.ZSSZGrav(zGR, delta)
	out = append(out, boolOutcome("weak_field_contract", cat,
		regime == result.RegimeWeak && delta == 0 && zSSZ == zGR,
		zGR, zSSZ, 0, "Delta(M) leaked into the weak regime"))

	return out
}

func regimeChecks(cfg config.Run) []Outcome {
	cat := CategoryRegimes
	cases := []struct {
		x    float64
		want result.Regime
	}{
		{1.0, result.RegimeVeryClose},
		{1.79, result.RegimeVeryClose},
		{1.8, result.RegimeBlended},
		{2.0, result.RegimeBlended},
		{2.2, result.RegimeBlended},
		{2.21, result.RegimePhotonSphere},
		{3.0, result.RegimePhotonSphere},
		{3.01, result.RegimeStrong},
		{10.0, result.RegimeStrong},
		{10.01, result.RegimeWeak},
	}
	rs := physics.SchwarzschildRadius(cfg, cfg.Constants.MSun)
	matches := 0
	for _, c := range cases {
		if physics.Classify(cfg, c.x*rs, rs) == c.want {
			matches++
		}
	}
	return []Outcome{boolOutcome("boundary_exactness", cat, matches == len(cases),
		float64(len(cases)), float64(matches), 0,
		"a boundary classified into the wrong regime")}
}

func blendChecks(cfg config.Run) []Outcome {
	cat := CategoryBlend
	var out []Outcome
	const rs = 3000.0

	// C0: the blend meets each pure branch exactly at its edge.
	worst := 0.0
	for _, edge := range []struct {
		x    float64
		pure func(r float64) float64
	}{
		{cfg.Params.BlendLo, func(r float64) float64 { v, _ := physics.XiStrong(cfg, r, rs); return v }},
		{cfg.Params.BlendHi, func(r float64) float64 { v, _ := physics.XiWeak(r, rs); return v }},
	} {
		r := edge.x * rs
		blended, _ := physics.XiBlended(cfg, r, rs)
		worst = math.Max(worst, math.Abs(blended-edge.pure(r)))
	}
	out = append(out, withinAbs("edge_continuity", cat, 0, worst, 1e-12))

	// C1: central-difference slopes of blend and pure branch agree at the
	// edges because the smoothstep derivative vanishes there.
	h := 1e-4 * rs
	worst = 0.0
	for _, edge := range []struct {
		x    float64
		pure func(r float64) float64
	}{
		{cfg.Params.BlendLo, func(r float64) float64 { v, _ := physics.XiStrong(cfg, r, rs); return v }},
		{cfg.Params.BlendHi, func(r float64) float64 { v, _ := physics.XiWeak(r, rs); return v }},
	} {
		r := edge.x * rs
		dBlend := (xiBlendAt(cfg, r+h, rs) - xiBlendAt(cfg, r-h, rs)) / (2 * h)
		dPure := (edge.pure(r+h) - edge.pure(r-h)) / (2 * h)
		worst = math.Max(worst, math.Abs(dBlend/dPure-1.0))
	}
	out = append(out, withinAbs("edge_slope_continuity", cat, 0, worst, 1e-4))

	// C2 is bounded, not matched. That is the design; do not tighten.
	worst = 0.0
	for _, x := range []float64{cfg.Params.BlendLo, cfg.Params.BlendHi} {
		r := x * rs
		d2 := (xiBlendAt(cfg, r+h, rs) - 2*xiBlendAt(cfg, r, rs) + xiBlendAt(cfg, r-h, rs)) / (h * h)
		worst = math.Max(worst, math.Abs(d2))
	}
	out = append(out, withinAbs("edge_curvature_bounded", cat, 0, worst, 1e-6))

	return out
}

func precisionChecks(cfg config.Run) []Outcome {
	cat := CategoryPrecision
	var out []Outcome

	// Extreme masses stay finite in the weak branch.
	nonFinite := 0
	for _, mSolar := range []float64{1e-10, 1e-3, 1.0, 1e6, 1e12} {
		massKg := mSolar * cfg.Constants.MSun
		rs := physics.SchwarzschildRadius(cfg, massKg)
		xi, err := physics.XiWeak(1e4*rs, rs)
		d := physics.DSSZ(xi)
		if err != nil || math.IsNaN(xi) || math.IsInf(xi, 0) || d <= 0 || d > 1 {
			nonFinite++
		}
	}
	out = append(out, boolOutcome("extreme_mass_stability", cat, nonFinite == 0,
		0, float64(nonFinite), 0, "non-finite output at an extreme mass"))

	// D_GR must grow monotonically with radius outside the horizon.
	rs := physics.SchwarzschildRadius(cfg, cfg.Constants.MSun)
	grid := floats.Span(make([]float64, 300), 1.001, 100.0)
	dGR := make([]float64, len(grid))
	for i, x := range grid {
		dGR[i] = physics.DGR(x*rs, rs)
	}
	monotonic := sort.Float64sAreSorted(dGR)
	out = append(out, boolOutcome("d_gr_monotonic", cat, monotonic,
		1, dGR[len(dGR)-1], 0, "D_GR not monotonic in radius"))

	return out
}

func experimentChecks(cfg config.Run) []Outcome {
	cat := CategoryExperiments
	var out []Outcome
	rsEarth := physics.SchwarzschildRadius(cfg, earthMassKg)

	dAt := func(r float64) float64 {
		xi, _ := physics.XiWeak(r, rsEarth)
		return physics.DSSZ(xi)
	}
	dSurface := dAt(earthRadiusM)

	// GPS satellite clocks gain ~45.7 microseconds per day.
	gps := (dAt(earthRadiusM+gpsAltitudeM) - dSurface) * 86400 * 1e6
	out = append(out, withinAbs("gps_clock_rate_us_day", cat, expectedGPSMicro, gps, 1.0))

	// Pound-Rebka: fractional shift over 22.5 m.
	pr := dAt(earthRadiusM+poundRebkaM)/dSurface - 1.0
	out = append(out, withinRel("pound_rebka_shift", cat, expectedPoundRebka, pr, 0.05))

	// NIST optical clocks resolve the gradient over 33 cm.
	xiSurface, _ := physics.XiWeak(earthRadiusM, rsEarth)
	nist := xiSurface * nistLiftM / earthRadiusM
	out = append(out, withinRel("nist_optical_clock", cat, expectedNISTShift, nist, 0.5))

	// Tokyo Skytree: the 450 m deck runs measurably fast.
	tokyo := (dAt(earthRadiusM+tokyoSkytreeM) - dSurface) * 86400 * 1e9
	out = append(out, boolOutcome("tokyo_skytree_ns_day", cat,
		tokyo > 0 && math.Abs(tokyo-4.26) <= 0.5,
		4.26, tokyo, 0.5, "deck clock rate off"))

	// At Earth's surface the segmented and GR dilation factors agree to
	// better than 1e-10.
	agree := math.Abs(dSurface/physics.DGR(earthRadiusM, rsEarth) - 1.0)
	out = append(out, withinAbs("weak_field_gr_agreement", cat, 0, agree, 1e-10))

	return out
}

func xiBlendAt(cfg config.Run, r, rs float64) float64 {
	v, _ := physics.XiBlended(cfg, r, rs)
	return v
}

func boolOutcome(id string, cat Category, ok bool, expected, computed, tol float64, diagnosis string) Outcome {
	o := Outcome{ID: id, Category: cat, Expected: expected, Computed: computed, Tolerance: tol, Status: StatusPass}
	if !ok {
		o.Status = StatusFail
		o.Diagnosis = diagnosis
	}
	return o
}
