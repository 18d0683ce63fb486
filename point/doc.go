// SPDX-License-Identifier: MIT

// Package point defines the scan point record shared by every scanpoints
// package, in two shapes:
//
//   - Point: one multi-axis set-point with per-axis lower/upper bounds,
//     its index list, duration and post-point delay.
//   - Points: the same fields stored column-wise for bulk range retrieval.
//
// Both are plain data. A Point returned by the compound generator is freshly
// allocated and owned by the caller.
//
// Conventions:
//   - Lower and Upper share the key set of Positions, except that axes with no
//     defined bound may be absent from both.
//   - Duration is NoDuration when the scan does not define one.
package point
