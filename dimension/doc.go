// SPDX-License-Identifier: MIT

// Package dimension collapses one or more excluder-coupled generators into a
// single masked index space.
//
// A Dimension starts with one generator. When an excluder spans two
// generators that live in adjacent Dimensions, the compound scan merges those
// Dimensions first (Merge) and then applies the excluder (ApplyExcluder).
// Prepare expands every recorded mask to the Dimension's full raw size, ANDs
// them, and compacts the surviving raw indices.
//
// Raw index space: a Dimension over generators g0..gk (outer to inner) has
// Size() = Π size(gi) raw indices in nested row-major order. Within one pass
// of the Dimension, an alternating generator runs backwards on every odd pass
// of its own, where its pass count is the flat index of all generators before
// it.
//
// Frames: when the Dimension itself sits inside an outer Dimension, odd outer
// passes shift every inner pass count by Π size(g before gi). Prepare
// therefore builds two index lists:
//   - Indices:        retained raw indices in the forward frame.
//   - ReverseIndices: retained raw indices in the shifted ("reverse") frame.
//
// Both lists have the same length: each pass enumerates every combination of
// generator positions exactly once, whichever direction each generator runs.
//
// Mask records: each applied excluder leaves a record (mask, tile, repeat).
// The mask covers the owning generators (doubled to two passes when either
// alternates); repeat is the product of sizes after them and tile the product
// of sizes before them, halved when doubled. Tile and repeat are exact
// rationals; Merge rescales them and Prepare resolves them to integers.
//
// Complexity: ApplyExcluder O(span), Prepare O(records·Size()), lookups O(k).
package dimension
