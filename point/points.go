// SPDX-License-Identifier: MIT

package point

// Points stores a run of scan points column-wise. Every column has Len()
// entries; Lower/Upper only carry axes that have bounds.
type Points struct {
	Positions  map[string][]float64
	Lower      map[string][]float64
	Upper      map[string][]float64
	Indexes    [][]int
	Duration   []float64
	DelayAfter []float64
}

// NewPoints allocates columns for n points. Position columns are created for
// every axis in axes; bound columns for every axis in bounded.
// Complexity: O(n·(len(axes)+len(bounded))).
func NewPoints(n int, axes, bounded []string) *Points {
	ps := &Points{
		Positions:  make(map[string][]float64, len(axes)),
		Lower:      make(map[string][]float64, len(bounded)),
		Upper:      make(map[string][]float64, len(bounded)),
		Indexes:    make([][]int, n),
		Duration:   make([]float64, n),
		DelayAfter: make([]float64, n),
	}
	for _, a := range axes {
		ps.Positions[a] = make([]float64, n)
	}
	for _, a := range bounded {
		ps.Lower[a] = make([]float64, n)
		ps.Upper[a] = make([]float64, n)
	}

	return ps
}

// Len returns the number of points held.
func (ps *Points) Len() int {
	return len(ps.Indexes)
}

// At materializes the i-th point. It panics if i is out of range, like a
// slice index.
func (ps *Points) At(i int) Point {
	p := Point{
		Positions:  make(map[string]float64, len(ps.Positions)),
		Lower:      make(map[string]float64, len(ps.Lower)),
		Upper:      make(map[string]float64, len(ps.Upper)),
		Duration:   ps.Duration[i],
		DelayAfter: ps.DelayAfter[i],
	}
	for a, col := range ps.Positions {
		p.Positions[a] = col[i]
	}
	for a, col := range ps.Lower {
		p.Lower[a] = col[i]
	}
	for a, col := range ps.Upper {
		p.Upper[a] = col[i]
	}
	if ps.Indexes[i] != nil {
		p.Indexes = append([]int(nil), ps.Indexes[i]...)
	}

	return p
}

// Set overwrites the i-th point. Axes of p missing from ps get a new
// zero-filled column first, so a mutator may introduce axes.
func (ps *Points) Set(i int, p Point) {
	n := ps.Len()
	for a, v := range p.Positions {
		column(ps.Positions, a, n)[i] = v
	}
	for a, v := range p.Lower {
		column(ps.Lower, a, n)[i] = v
	}
	for a, v := range p.Upper {
		column(ps.Upper, a, n)[i] = v
	}
	ps.Indexes[i] = append([]int(nil), p.Indexes...)
	ps.Duration[i] = p.Duration
	ps.DelayAfter[i] = p.DelayAfter
}

// Append adds p at the end.
func (ps *Points) Append(p Point) {
	n := ps.Len()
	ps.Indexes = append(ps.Indexes, nil)
	ps.Duration = append(ps.Duration, 0)
	ps.DelayAfter = append(ps.DelayAfter, 0)
	grow(ps.Positions)
	grow(ps.Lower)
	grow(ps.Upper)
	ps.Set(n, p)
}

// Extend appends every point of other, column by column.
func (ps *Points) Extend(other *Points) {
	n, m := ps.Len(), other.Len()
	extendColumns(ps.Positions, other.Positions, n, m)
	extendColumns(ps.Lower, other.Lower, n, m)
	extendColumns(ps.Upper, other.Upper, n, m)
	ps.Indexes = append(ps.Indexes, other.Indexes...)
	ps.Duration = append(ps.Duration, other.Duration...)
	ps.DelayAfter = append(ps.DelayAfter, other.DelayAfter...)
}

func column(cols map[string][]float64, axis string, n int) []float64 {
	col, ok := cols[axis]
	if !ok {
		col = make([]float64, n)
		cols[axis] = col
	}

	return col
}

func grow(cols map[string][]float64) {
	for a, col := range cols {
		cols[a] = append(col, 0)
	}
}

func extendColumns(dst, src map[string][]float64, n, m int) {
	for a, col := range src {
		dst[a] = append(column(dst, a, n), col...)
	}
	for a, col := range dst {
		if len(col) == n {
			dst[a] = append(col, make([]float64, m)...)
		}
	}
}
