// SPDX-License-Identifier: MIT

// Package generator defines the leaf Generator contract consumed by the
// compound scan and ships reference implementations.
//
// A Generator drives one or more coupled axes. It declares its axes, units,
// size and whether it alternates direction when nested inside another
// generator ("snake" traversal). Positions and bounds are produced lazily by
// Prepare and cached, so repeated preparation of a scan never recomputes them.
//
// Shipped generators:
//   - Line:      evenly spaced positions between start and stop, per axis.
//   - Array:     explicit positions on a single axis.
//   - Spiral:    Archimedean spiral over two axes, equal area per point.
//   - Lissajous: Lissajous figure over two axes.
//
// Bounds convention: Bounds()[axis] has Size()+1 entries; point i spans
// [bounds[i], bounds[i+1]] when traversed forwards.
//
// Configuration uses functional options (WithUnits, WithAlternate). Option
// constructors panic on meaningless values; constructors return sentinel
// errors from errors.go for invalid parameters.
package generator
