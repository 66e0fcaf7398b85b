package physics

import "math"

// Universal intersection of the two dilation curves: D_SSZ and D_GR cross at
// the same x = r/rs for every mass.
const (
	IntersectionROverRs = 1.386562
	IntersectionD       = 0.528007
)

// grRatioCap keeps the GR radicand strictly positive just outside the
// horizon, where rs/r rounds to 1.
const grRatioCap = 0.9999999

// DSSZ is the segmented time-dilation factor 1/(1+xi). For xi >= 0 it is
// finite and lies in (0, 1]; at the horizon it is about 0.5550.
func DSSZ(xi float64) float64 {
	return 1.0 / (1.0 + xi)
}

// DGR is the Schwarzschild time-dilation factor sqrt(1 - rs/r). At or inside
// the horizon it is 0, not imaginary; just outside, the ratio is capped so
// floating error cannot push the radicand negative.
func DGR(r, rs float64) float64 {
	if r <= rs {
		return 0
	}
	ratio := rs / r
	if ratio > grRatioCap {
		ratio = grRatioCap
	}
	return math.Sqrt(1.0 - ratio)
}
