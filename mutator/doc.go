// SPDX-License-Identifier: MIT

// Package mutator defines per-point post-processing applied by the compound
// scan after positions are resolved, plus reference implementations.
//
// A Mutator receives a Point and its flat index and returns a (possibly new)
// Point. Mutators run in registration order. The compound scan may call them
// in any index order (random access via GetPoint), so a Mutator must derive
// everything from (point, index) and its own immutable configuration.
//
// Mutators that can work on column data implement BulkMutator as well; the
// compound scan prefers it for range retrieval.
//
// Shipped mutators:
//   - FixedDuration: sets the exposure duration of every point.
//   - RandomOffset:  seeded, index-addressed jitter on selected axes.
//   - Rotation:      rigid rotation of an axis pair about a centre.
//
// Determinism: RandomOffset never keeps a *rand.Rand. Each offset is a
// SplitMix64 mix of (seed, index, axis), so GetPoint(n) and the n-th point of
// an iteration always agree, and concurrent readers are safe.
package mutator
