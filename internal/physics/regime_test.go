package physics

import (
	"testing"

	"github.com/error-wtf/segmented-calculation-suite/domain/result"
)

func TestClassify_BoundaryExactness(t *testing.T) {
	cfg := testRun()
	const rs = 1000.0 // x = r/rs divides exactly for the boundary radii below

	cases := []struct {
		x    float64
		want result.Regime
	}{
		{0.5, result.RegimeVeryClose},
		{1.79, result.RegimeVeryClose},
		{1.8, result.RegimeBlended},
		{2.0, result.RegimeBlended},
		{2.2, result.RegimeBlended},
		{2.21, result.RegimePhotonSphere},
		{3.0, result.RegimePhotonSphere},
		{3.01, result.RegimeStrong},
		{10.0, result.RegimeStrong},
		{10.01, result.RegimeWeak},
		{235780.0, result.RegimeWeak},
	}
	for _, tc := range cases {
		if got := Classify(cfg, tc.x*rs, rs); got != tc.want {
			t.Errorf("x=%v: expected %s, got %s", tc.x, tc.want, got)
		}
	}
}

func TestClassify_NoHorizonMeansWeak(t *testing.T) {
	cfg := testRun()
	for _, rs := range []float64{0, -1} {
		if got := Classify(cfg, 1000.0, rs); got != result.RegimeWeak {
			t.Fatalf("rs=%v: expected weak, got %s", rs, got)
		}
	}
}
