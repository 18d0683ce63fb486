// SPDX-License-Identifier: MIT
// Package generator: sentinel errors.
//
// Callers branch with errors.Is; constructors attach context with %w.

package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrNoAxes indicates a generator was constructed without axis names.
	ErrNoAxes = errors.New("generator: at least one axis is required")

	// ErrDuplicateAxis indicates the same axis name appears twice in one generator.
	ErrDuplicateAxis = errors.New("generator: duplicate axis name")

	// ErrAxisMismatch indicates per-axis parameter slices disagree in length
	// with the axis list (start/stop/units/centre…).
	ErrAxisMismatch = errors.New("generator: per-axis parameter count mismatch")

	// ErrBadSize indicates a non-positive number of points.
	ErrBadSize = errors.New("generator: size must be positive")

	// ErrBadParameter indicates a non-finite or out-of-domain numeric parameter.
	ErrBadParameter = errors.New("generator: invalid parameter")
)

// generatorErrorf prefixes a formatted message with the generator kind and
// wraps the sentinel so errors.Is keeps working.
func generatorErrorf(kind string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", kind, fmt.Sprintf(format, args...), sentinel)
}
