// SPDX-License-Identifier: MIT
// Package: scanpoints/compound
//
// errors.go — sentinel errors for the compound package.
//
// Error policy:
//   • Every sentinel belongs to exactly one category (ErrConfiguration,
//     ErrState, ErrIndex, ErrInternalConsistency); errors.Is matches both.
//   • Sentinels shared with package dimension are re-exported, so callers
//     only import compound.
//   • Context is attached with fmt.Errorf("...: %w", ErrX).
//   • Only option constructors panic; Prepare and lookups never do.

package compound

import (
	"github.com/katalvlaran/scanpoints/dimension"
	"github.com/katalvlaran/scanpoints/internal/errcat"
)

// Categories.
var (
	ErrConfiguration       = errcat.Configuration
	ErrState               = errcat.State
	ErrIndex               = errcat.Index
	ErrInternalConsistency = errcat.Internal
)

var (
	// ErrNoGenerators indicates a Compound built from an empty generator list.
	ErrNoGenerators = errcat.New(errcat.Configuration, "compound: at least one generator is required")

	// ErrDuplicateAxis indicates two generators drive the same axis.
	ErrDuplicateAxis = errcat.New(errcat.Configuration, "compound: axis driven by more than one generator")

	// ErrNonAdjacentExcluder indicates an excluder whose axes live in
	// Dimensions that are not neighbours.
	ErrNonAdjacentExcluder = errcat.New(errcat.Configuration, "compound: excluder spans non-adjacent generators")

	// ErrNestedCompound indicates a compound scan listed as a generator of
	// another compound scan.
	ErrNestedCompound = errcat.New(errcat.Configuration, "compound: compound scans cannot be nested")

	// ErrOutOfRange indicates a point index outside [0, size).
	ErrOutOfRange = errcat.New(errcat.Index, "compound: point index out of range")

	// ErrNotPrepared indicates a query issued before Prepare.
	ErrNotPrepared = dimension.ErrNotPrepared
)

// Re-exported from package dimension.
var (
	ErrUnknownAxis    = dimension.ErrUnknownAxis
	ErrEmptySelection = dimension.ErrEmptySelection
	ErrBadGenerator   = dimension.ErrBadGenerator
	ErrBadMask        = dimension.ErrBadMask
	ErrMaskLength     = dimension.ErrMaskLength
	ErrIndexCount     = dimension.ErrIndexCount
)
