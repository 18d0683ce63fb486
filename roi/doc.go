// SPDX-License-Identifier: MIT

// Package roi provides two-dimensional regions of interest used to filter
// scan points.
//
// A ROI answers, for equal-length coordinate slices xs and ys, which
// coordinates lie inside it (boundary inclusive). Regions are immutable and
// pure: Mask allocates its result and never retains its inputs.
//
// Shipped regions: Circular, Rectangular, Elliptical, Polygonal.
// Rectangular and Elliptical accept an optional rotation in degrees about
// their own anchor (rectangle start corner, ellipse centre).
package roi
