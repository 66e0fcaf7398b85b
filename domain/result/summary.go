package result

// ResidualStats summarizes the absolute residuals of one model over the
// compared rows of a batch.
type ResidualStats struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
	RMSE   float64 `json:"rmse"`
}

// Summary aggregates a batch: winner tally, residual statistics per model,
// and a regime histogram.
type Summary struct {
	Total    int `json:"total"`
	Compared int `json:"compared"`
	Errors   int `json:"errors"`

	WinsSSZ int `json:"wins_ssz"`
	WinsGR  int `json:"wins_gr"`
	Ties    int `json:"ties"`

	// WinRateSSZ is WinsSSZ over Compared; 0 when nothing was compared.
	WinRateSSZ float64 `json:"win_rate_ssz"`

	ResidualsSSZ ResidualStats `json:"residuals_ssz"`
	ResidualsGR  ResidualStats `json:"residuals_gr"`

	Regimes map[Regime]int `json:"regimes"`
}
