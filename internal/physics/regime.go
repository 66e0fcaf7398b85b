package physics

import (
	"github.com/error-wtf/segmented-calculation-suite/config"
	"github.com/error-wtf/segmented-calculation-suite/domain/result"
)

// Classify maps x = r/rs to a field regime. The boundaries are closed on
// the side written here: x = 1.8 and x = 2.2 are Blended, x = 3.0 is
// PhotonSphere, x = 10.0 is Strong. Non-positive rs means no horizon
// exists and classifies as Weak.
func Classify(cfg config.Run, r, rs float64) result.Regime {
	if rs <= 0 {
		return result.RegimeWeak
	}
	x := r / rs
	switch {
	case x < cfg.Params.BlendLo:
		return result.RegimeVeryClose
	case x <= cfg.Params.BlendHi:
		return result.RegimeBlended
	case x <= cfg.Params.PhotonSphereMax:
		return result.RegimePhotonSphere
	case x <= cfg.Params.StrongFieldMax:
		return result.RegimeStrong
	default:
		return result.RegimeWeak
	}
}
