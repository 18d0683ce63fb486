// SPDX-License-Identifier: MIT

package mutator

import (
	"errors"

	"github.com/katalvlaran/scanpoints/point"
)

// ErrBadParameter indicates an invalid mutator parameter.
var ErrBadParameter = errors.New("mutator: invalid parameter")

// Mutator transforms one point.
type Mutator interface {
	Mutate(p point.Point, index int) point.Point
}

// BulkMutator transforms ps in place; ps.At(i) has flat index start+i.
type BulkMutator interface {
	MutatePoints(ps *point.Points, start int)
}

// ApplyPoints runs m over ps, column-wise when m supports it and point by
// point otherwise.
func ApplyPoints(m Mutator, ps *point.Points, start int) {
	if bm, ok := m.(BulkMutator); ok {
		bm.MutatePoints(ps, start)
		return
	}
	for i := 0; i < ps.Len(); i++ {
		ps.Set(i, m.Mutate(ps.At(i), start+i))
	}
}
