package config

import (
	"fmt"
	"runtime"
	"time"

	"github.com/error-wtf/segmented-calculation-suite/domain/core"
)

// XiMode selects the segment-density branch. The zero value is the
// regime-blended dispatch, which is what every production caller wants.
type XiMode int

const (
	XiModeAuto XiMode = iota
	XiModeWeak
	XiModeStrong
)

func (m XiMode) String() string {
	switch m {
	case XiModeAuto:
		return "auto"
	case XiModeWeak:
		return "weak"
	case XiModeStrong:
		return "strong"
	}
	return fmt.Sprintf("XiMode(%d)", int(m))
}

// ParseXiMode parses a TOML/env mode string into the closed enum.
func ParseXiMode(s string) (XiMode, error) {
	switch s {
	case "", "auto":
		return XiModeAuto, nil
	case "weak":
		return XiModeWeak, nil
	case "strong":
		return XiModeStrong, nil
	}
	return XiModeAuto, fmt.Errorf("%w: %q", core.ErrUnknownXiMode, s)
}

// RedshiftMode selects how the SSZ gravitational redshift is formed: the
// standard Delta(M)-corrected GR term, or the geometric hint which replaces
// it entirely. The two are never combined.
type RedshiftMode int

const (
	RedshiftStandard RedshiftMode = iota
	RedshiftGeomHint
)

func (m RedshiftMode) String() string {
	switch m {
	case RedshiftStandard:
		return "standard"
	case RedshiftGeomHint:
		return "geom_hint"
	}
	return fmt.Sprintf("RedshiftMode(%d)", int(m))
}

// ParseRedshiftMode parses a TOML/env mode string into the closed enum.
func ParseRedshiftMode(s string) (RedshiftMode, error) {
	switch s {
	case "", "standard":
		return RedshiftStandard, nil
	case "geom_hint":
		return RedshiftGeomHint, nil
	}
	return RedshiftStandard, fmt.Errorf("%w: %q", core.ErrUnknownRedshiftMode, s)
}

// Run is the immutable configuration snapshot threaded through every engine
// call. There is no module-level state; two runs with equal snapshots
// produce bitwise-equal results.
type Run struct {
	ID        core.RunID `json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Version   string     `json:"version"`

	Constants Constants `json:"constants"`
	Params    Params    `json:"params"`

	XiMode       XiMode       `json:"xi_mode"`
	RedshiftMode RedshiftMode `json:"redshift_mode"`

	// Workers caps batch parallelism; <= 0 means GOMAXPROCS.
	Workers int `json:"workers"`
}

const Version = "1.0.0"

// NewRun creates a run snapshot with default constants and parameters.
func NewRun() Run {
	return Run{
		ID:        core.NewRunID(),
		CreatedAt: time.Now().UTC(),
		Version:   Version,
		Constants: DefaultConstants(),
		Params:    DefaultParams(),
	}
}

// WorkerLimit resolves the effective batch parallelism.
func (r Run) WorkerLimit() int {
	if r.Workers > 0 {
		return r.Workers
	}
	return runtime.GOMAXPROCS(0)
}
