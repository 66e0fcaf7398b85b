package config

// Params holds the segmented-spacetime model parameters. Defaults are the
// published calibration; a TOML overlay may adjust them for sensitivity
// studies, but the validation harness always runs on the defaults.
type Params struct {
	// Blend zone boundaries in units of x = r/rs.
	BlendLo float64 `json:"blend_lo" toml:"blend_lo"`
	BlendHi float64 `json:"blend_hi" toml:"blend_hi"`

	// Regime classifier limits in units of x = r/rs.
	PhotonSphereMax float64 `json:"photon_sphere_max" toml:"photon_sphere_max"`
	StrongFieldMax  float64 `json:"strong_field_max" toml:"strong_field_max"`

	// Strong-field segment-density saturation ceiling.
	XiMax float64 `json:"xi_max" toml:"xi_max"`

	// Mass-dependent correction Delta(M) = (A*exp(-Alpha*rs) + B) * norm,
	// with norm clamped to [0,1] over the log10-mass window below.
	DeltaA     float64 `json:"delta_a" toml:"delta_a"`
	DeltaAlpha float64 `json:"delta_alpha" toml:"delta_alpha"`
	DeltaB     float64 `json:"delta_b" toml:"delta_b"`
	LogMassMin float64 `json:"log_mass_min" toml:"log_mass_min"`
	LogMassMax float64 `json:"log_mass_max" toml:"log_mass_max"`

	// Power-law energy normalization over compactness rs/R.
	PowerLawA    float64 `json:"power_law_a" toml:"power_law_a"`
	PowerLawBeta float64 `json:"power_law_beta" toml:"power_law_beta"`
}

// DefaultParams returns the published calibration.
func DefaultParams() Params {
	return Params{
		BlendLo:         1.8,
		BlendHi:         2.2,
		PhotonSphereMax: 3.0,
		StrongFieldMax:  10.0,
		XiMax:           1.0,
		DeltaA:          98.01,
		DeltaAlpha:      2.7177e4,
		DeltaB:          1.96,
		LogMassMin:      10.0,
		LogMassMax:      42.0,
		PowerLawA:       0.3187,
		PowerLawBeta:    0.9821,
	}
}
