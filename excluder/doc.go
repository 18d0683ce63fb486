// SPDX-License-Identifier: MIT

// Package excluder defines the Excluder contract: a pure predicate over a
// pair of scan axes that decides which combinations of their positions are
// kept.
//
// The compound scan hands CreateMask two equal-length coordinate slices, one
// per axis in the order returned by Axes, and expects a boolean slice of the
// same length back. Region adapts any number of roi.ROI values into an
// Excluder that keeps points inside at least one of them.
package excluder
