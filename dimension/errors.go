// SPDX-License-Identifier: MIT
// Package dimension: sentinel errors.
//
// Every sentinel belongs to one category (ErrConfiguration, ErrNotPrepared,
// ErrInternalConsistency); errors.Is matches both the sentinel and its
// category. Context is attached with fmt.Errorf("...: %w", ErrX).

package dimension

import "github.com/katalvlaran/scanpoints/internal/errcat"

// Categories.
var (
	ErrConfiguration       = errcat.Configuration
	ErrInternalConsistency = errcat.Internal
)

var (
	// ErrNotPrepared indicates a query issued before Prepare.
	ErrNotPrepared = errcat.New(errcat.State, "dimension: not prepared")

	// ErrBadGenerator indicates a generator whose produced arrays do not match
	// its declared size (or that was never prepared).
	ErrBadGenerator = errcat.New(errcat.Configuration, "dimension: generator arrays do not match its size")

	// ErrUnknownAxis indicates an excluder axis that no generator of the
	// Dimension drives.
	ErrUnknownAxis = errcat.New(errcat.Configuration, "dimension: axis not in dimension")

	// ErrBadMask indicates an excluder returned a mask of the wrong length.
	ErrBadMask = errcat.New(errcat.Configuration, "dimension: excluder mask length mismatch")

	// ErrEmptySelection indicates the masks keep no point at all.
	ErrEmptySelection = errcat.New(errcat.Configuration, "dimension: region would exclude entire scan")

	// ErrMaskLength indicates an expanded mask whose length differs from the
	// Dimension size. It signals an algebra defect.
	ErrMaskLength = errcat.New(errcat.Internal, "dimension: expanded mask length mismatch")

	// ErrIndexCount indicates forward and reverse index lists of different
	// lengths. It signals an algebra defect.
	ErrIndexCount = errcat.New(errcat.Internal, "dimension: forward/reverse index count mismatch")
)
