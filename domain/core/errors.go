package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Input validation errors
	ErrInvalidInput      = errors.New("invalid input")
	ErrEmptyName         = fmt.Errorf("%w: object name must not be empty", ErrInvalidInput)
	ErrNonPositiveMass   = fmt.Errorf("%w: mass must be positive", ErrInvalidInput)
	ErrNonPositiveRadius = fmt.Errorf("%w: radius must be positive", ErrInvalidInput)
	ErrSuperluminal      = fmt.Errorf("%w: velocity magnitude must be below c", ErrInvalidInput)
	ErrNonFiniteValue    = fmt.Errorf("%w: value must be finite", ErrInvalidInput)

	// Geometry errors
	ErrInsideHorizon      = errors.New("radius at or inside the Schwarzschild horizon")
	ErrDegenerateGeometry = errors.New("degenerate geometry")

	// Configuration errors
	ErrUnknownXiMode       = errors.New("unknown segment-density mode")
	ErrUnknownRedshiftMode = errors.New("unknown redshift mode")

	// Dataset errors
	ErrGoldenDataset = errors.New("golden dataset unusable")
)

// Error constructors with context
func NewValidationError(field string, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidInput, field, reason)
}

func NewGoldenDatasetError(row int, err error) error {
	return fmt.Errorf("%w: row %d: %v", ErrGoldenDataset, row, err)
}

// Error checking helpers
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

func IsGeometryError(err error) bool {
	return errors.Is(err, ErrInsideHorizon) ||
		errors.Is(err, ErrDegenerateGeometry)
}
