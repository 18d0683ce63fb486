// SPDX-License-Identifier: MIT

package mutator

import (
	"fmt"
	"math"
	"sort"

	"github.com/katalvlaran/scanpoints/point"
)

// RandomOffset adds a uniform offset in [-max, +max) to selected axes. Only
// positions move; bounds keep describing the nominal integration window.
type RandomOffset struct {
	seed   int64
	axes   []string // sorted, defines per-axis streams
	limits map[string]float64
}

// NewRandomOffset validates maxOffset (finite, ≥0 per axis).
func NewRandomOffset(seed int64, maxOffset map[string]float64) (*RandomOffset, error) {
	axes := make([]string, 0, len(maxOffset))
	limits := make(map[string]float64, len(maxOffset))
	for a, m := range maxOffset {
		if a == "" || math.IsNaN(m) || math.IsInf(m, 0) || m < 0 {
			return nil, fmt.Errorf("RandomOffset: axis %q max=%v: %w", a, m, ErrBadParameter)
		}
		axes = append(axes, a)
		limits[a] = m
	}
	sort.Strings(axes)

	return &RandomOffset{seed: seed, axes: axes, limits: limits}, nil
}

// Seed returns the configured seed.
func (r *RandomOffset) Seed() int64 { return r.seed }

// MaxOffset returns a copy of the per-axis maximum offsets.
func (r *RandomOffset) MaxOffset() map[string]float64 {
	out := make(map[string]float64, len(r.limits))
	for k, v := range r.limits {
		out[k] = v
	}

	return out
}

// Offset returns the offset applied to axis at flat index.
func (r *RandomOffset) Offset(axis string, index int) float64 {
	k := sort.SearchStrings(r.axes, axis)
	if k == len(r.axes) || r.axes[k] != axis {
		return 0
	}

	return r.limits[axis] * (2*unitFloat(r.seed, index, uint64(k)) - 1)
}

// Mutate returns a copy of p with jittered positions.
func (r *RandomOffset) Mutate(p point.Point, index int) point.Point {
	out := p.Clone()
	for _, a := range r.axes {
		if v, ok := out.Positions[a]; ok {
			out.Positions[a] = v + r.Offset(a, index)
		}
	}

	return out
}

// MutatePoints jitters position columns in place.
func (r *RandomOffset) MutatePoints(ps *point.Points, start int) {
	for _, a := range r.axes {
		col, ok := ps.Positions[a]
		if !ok {
			continue
		}
		for i := range col {
			col[i] += r.Offset(a, start+i)
		}
	}
}
