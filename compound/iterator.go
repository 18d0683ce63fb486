// SPDX-License-Identifier: MIT

package compound

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/scanpoints/point"
)

// iteratorBatch is the number of points resolved per GetPoints call while
// iterating.
const iteratorBatch = 1024

// Iterator returns a lazy sequence over every point in order; the n-th value
// equals GetPoint(n). The sequence is restartable and may be abandoned at
// any time.
//
// The sequence panics with an error wrapping ErrNotPrepared if the Compound
// stops being prepared while it is consumed (a failed re-Prepare); it never
// ends early silently.
//
// Errors: ErrNotPrepared.
func (c *Compound) Iterator() (iter.Seq[point.Point], error) {
	if !c.prepared {
		return nil, ErrNotPrepared
	}

	return func(yield func(point.Point) bool) {
		for start := 0; start < c.size; start += iteratorBatch {
			end := min(start+iteratorBatch, c.size)
			ps, err := c.GetPoints(start, end)
			if err != nil {
				panic(fmt.Errorf("compound: iterate points [%d, %d): %w", start, end, err))
			}
			for i := 0; i < ps.Len(); i++ {
				if !yield(ps.At(i)) {
					return
				}
			}
		}
	}, nil
}
