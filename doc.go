// Package scanpoints is your toolkit for describing multi-axis scans and
// reading their points back in any order: by index, in ranges, or lazily.
//
// 🚀 What is scanpoints?
//
//	A small library that composes scan trajectories from simple parts:
//		• Generators: lines, arrays, spirals and Lissajous curves over named axes
//		• Excluders: keep only the points inside regions of interest
//		• Mutators: fixed durations, seeded jitter, rotations
//		• Compound scans: nest generators outer → inner with snake traversal
//		• Random access: GetPoint(n), GetPoints(start, end), Iterator()
//		• Descriptions: YAML scan files checked against a CUE schema
//
// ✨ Why choose scanpoints?
//
//   - Random access – point n is computed directly, never by replaying the scan
//   - Continuous motion – alternating axes reverse so neighbours stay close
//   - Exact masks – tile and repeat factors are rationals, never floats
//   - Explicit wiring – component registries are built once and immutable
//
// Packages:
//
//	point/     — Point and the column-wise Points batch
//	generator/ — Line, Array, Spiral, Lissajous
//	roi/       — circular, rectangular, elliptical and polygonal regions
//	excluder/  — Region excluder over two axes
//	mutator/   — FixedDuration, RandomOffset, Rotation
//	dimension/ — merged generators, masks and frame arithmetic
//	compound/  — the orchestrator: Prepare, GetPoint, GetPoints, Iterator
//	scanspec/  — YAML descriptions, CUE validation and the factory Registry
//
// Quick ASCII example (2×3 snake, inner axis alternating):
//
//	y=0:  0 → 1 → 2
//	                ↓
//	y=1:  5 ← 4 ← 3
//
// The scanpoints command (cmd/scanpoints) prints the points, a summary or a
// validation verdict for any YAML description.
package scanpoints
