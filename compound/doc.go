// SPDX-License-Identifier: MIT

// Package compound composes generators, excluders and mutators into one
// N-dimensional scan with random access to every point.
//
// Generators are listed outer to inner. Prepare turns each into a
// dimension.Dimension; an excluder whose two axes live in neighbouring
// Dimensions merges them first, so after Prepare the scan is a chain of
// Dimensions whose retained point counts form Shape(), and Size() is their
// product.
//
// Lookup: GetPoint(n) splits n into one digit per Dimension (mixed radix,
// outer first), maps each digit through that Dimension's index list to a raw
// index, and resolves positions and bounds. A Dimension that alternates runs
// in its reverse frame on odd passes, so the trajectory snakes at every
// nesting level:
//
//	y = [2.0, 2.1], x = [1.0, 1.1, 1.2] (alternating)
//	(2.0,1.0) (2.0,1.1) (2.0,1.2) (2.1,1.2) (2.1,1.1) (2.1,1.0)
//
// GetPoints(start, end) is the column-oriented bulk form and Iterator is a
// lazy sequence built on it; all three agree point for point.
//
// Concurrency: Prepare is not safe for concurrent use. Once it returns the
// Compound is read-only and lookups may run from many goroutines, provided
// the mutators are stateless (all mutators in package mutator are).
//
// Errors: see errors.go. Every sentinel also matches its category
// (ErrConfiguration, ErrState, ErrIndex, ErrInternalConsistency).
package compound
