// SPDX-License-Identifier: MIT

package mutator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scanpoints/point"
)

// FixedDuration sets the same duration on every point.
type FixedDuration struct {
	Duration float64
}

// NewFixedDuration validates d (finite, ≥0).
func NewFixedDuration(d float64) (*FixedDuration, error) {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		return nil, fmt.Errorf("FixedDuration: duration=%v: %w", d, ErrBadParameter)
	}

	return &FixedDuration{Duration: d}, nil
}

// Mutate returns a copy of p with Duration set.
func (f *FixedDuration) Mutate(p point.Point, _ int) point.Point {
	out := p.Clone()
	out.Duration = f.Duration

	return out
}

// MutatePoints sets every duration in place.
func (f *FixedDuration) MutatePoints(ps *point.Points, _ int) {
	for i := range ps.Duration {
		ps.Duration[i] = f.Duration
	}
}
