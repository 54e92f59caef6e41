package model

import "errors"

// Error taxonomy shared by the calculator, trend, and risk packages.
// Callers match with errors.Is; wrapped messages carry the detail.
var (
	// ErrInvalidInput marks structurally bad input: unordered timestamps,
	// malformed rows, out-of-range parameters.
	ErrInvalidInput = errors.New("invalid input")

	// ErrInsufficientData marks a series shorter than a required window,
	// or an undefined indicator value where a defined one is required.
	ErrInsufficientData = errors.New("insufficient data")

	// ErrNumericDegeneracy marks a division by zero outside the documented
	// saturation cases (e.g. entry price equal to stop price).
	ErrNumericDegeneracy = errors.New("numeric degeneracy")

	// ErrSimulation marks invalid Monte Carlo parameters.
	ErrSimulation = errors.New("invalid simulation parameters")
)
