// SPDX-License-Identifier: MIT

package compound

import (
	"fmt"

	"github.com/katalvlaran/scanpoints/mutator"
	"github.com/katalvlaran/scanpoints/point"
)

// locate splits flat index n into one retained index per Dimension
// (mixed radix, outer first) and maps each to a raw index and frame.
//
// A Dimension runs in the reverse frame when it alternates and it is on an
// odd pass, i.e. the flat index of the Dimensions outside it is odd. That
// parity is carried inwards as parity' = (parity·shape[i] + digit) mod 2.
//
// Complexity: O(len(dimensions)).
func (c *Compound) locate(n int, digits, raws []int, reverse []bool) {
	rem := n
	for i := len(c.shape) - 1; i >= 0; i-- {
		digits[i] = rem % c.shape[i]
		rem /= c.shape[i]
	}
	parity := 0
	for i, d := range c.dimensions {
		reverse[i] = parity == 1 && d.Alternate()
		raws[i], _ = d.Raw(digits[i], reverse[i])
		parity = ((parity & c.shape[i]) ^ digits[i]) & 1
	}
}

// indexes returns the Indexes recorded on point n: the position index of
// every generator, or the flat index alone when excluders reshape the scan.
func (c *Compound) indexes(n int, raws []int, reverse []bool) []int {
	if len(c.excluders) > 0 {
		return []int{n}
	}
	out := make([]int, len(c.dimensions))
	for i, d := range c.dimensions {
		out[i] = d.Local(raws[i], reverse[i])
	}
	return out
}

// GetPoint returns point n, 0 ≤ n < Size(), with every mutator applied.
//
// Errors: ErrNotPrepared, ErrOutOfRange.
// Complexity: O(dimensions + axes + mutators).
func (c *Compound) GetPoint(n int) (point.Point, error) {
	if !c.prepared {
		return point.Point{}, ErrNotPrepared
	}
	if n < 0 || n >= c.size {
		return point.Point{}, fmt.Errorf("index %d, size %d: %w", n, c.size, ErrOutOfRange)
	}

	k := len(c.dimensions)
	digits, raws, reverse := make([]int, k), make([]int, k), make([]bool, k)
	c.locate(n, digits, raws, reverse)

	p := point.New()
	for i, d := range c.dimensions {
		d.Resolve(raws[i], reverse[i], &p)
	}
	p.Indexes = c.indexes(n, raws, reverse)
	p.Duration = c.duration
	p.DelayAfter = c.delayAfter

	for _, m := range c.mutators {
		p = m.Mutate(p, n)
	}

	return p, nil
}

// GetPoints returns points [start, end) in column form, with every mutator
// applied (column-wise when the mutator supports it). Point i of the result
// equals GetPoint(start+i).
//
// Errors: ErrNotPrepared, ErrOutOfRange unless 0 ≤ start ≤ end ≤ Size().
// Complexity: O((end-start)·(dimensions + axes + mutators)).
func (c *Compound) GetPoints(start, end int) (*point.Points, error) {
	if !c.prepared {
		return nil, ErrNotPrepared
	}
	if start < 0 || end < start || end > c.size {
		return nil, fmt.Errorf("range [%d, %d), size %d: %w", start, end, c.size, ErrOutOfRange)
	}

	count, k := end-start, len(c.dimensions)
	var bounded []string
	for _, d := range c.dimensions {
		bounded = append(bounded, d.BoundedAxes()...)
	}
	ps := point.NewPoints(count, c.axes, bounded)

	raws := make([][]int, k)
	reverse := make([][]bool, k)
	for i := range raws {
		raws[i], reverse[i] = make([]int, count), make([]bool, count)
	}
	digits, rowRaw, rowRev := make([]int, k), make([]int, k), make([]bool, k)
	for r := 0; r < count; r++ {
		c.locate(start+r, digits, rowRaw, rowRev)
		for i := 0; i < k; i++ {
			raws[i][r], reverse[i][r] = rowRaw[i], rowRev[i]
		}
		ps.Indexes[r] = c.indexes(start+r, rowRaw, rowRev)
		ps.Duration[r] = c.duration
		ps.DelayAfter[r] = c.delayAfter
	}
	for i, d := range c.dimensions {
		d.ResolveColumns(raws[i], reverse[i], ps, 0)
	}

	for _, m := range c.mutators {
		mutator.ApplyPoints(m, ps, start)
	}

	return ps, nil
}
