// SPDX-License-Identifier: MIT

package dimension

import (
	"fmt"

	"github.com/katalvlaran/scanpoints/point"
)

// collapsed reports whether member j has no sub-bounds of its own: it is not
// the innermost generator and the Dimension never alternates.
func (d *Dimension) collapsed(j int) bool {
	return !d.alternate && j < len(d.members)-1
}

// Resolve writes position, lower and upper of every axis of d at raw index raw
// into p. reverse selects the frame. Axes whose generator has no bounds get
// no Lower/Upper entry.
// Complexity: O(number of axes).
func (d *Dimension) Resolve(raw int, reverse bool, p *point.Point) {
	for j, m := range d.members {
		idx, flipped := d.local(j, raw, reverse)
		for k, axis := range m.axes {
			pos := m.positions[k][idx]
			p.Positions[axis] = pos
			bnd := m.bounds[k]
			switch {
			case bnd == nil:
			case d.collapsed(j):
				p.Lower[axis], p.Upper[axis] = pos, pos
			case flipped:
				p.Lower[axis], p.Upper[axis] = bnd[idx+1], bnd[idx]
			default:
				p.Lower[axis], p.Upper[axis] = bnd[idx], bnd[idx+1]
			}
		}
	}
}

// ResolveColumns is the column form of Resolve: entry i of raws (in frame
// reverse[i]) is written to row offset+i of ps. ps must already hold the
// position columns of Axes() and the bound columns of BoundedAxes().
// Complexity: O(len(raws)·number of axes).
func (d *Dimension) ResolveColumns(raws []int, reverse []bool, ps *point.Points, offset int) {
	for j, m := range d.members {
		collapsed := d.collapsed(j)
		for k, axis := range m.axes {
			positions, bnd := m.positions[k], m.bounds[k]
			posCol := ps.Positions[axis][offset : offset+len(raws)]
			var lowCol, upCol []float64
			if bnd != nil {
				lowCol = ps.Lower[axis][offset : offset+len(raws)]
				upCol = ps.Upper[axis][offset : offset+len(raws)]
			}
			for i, raw := range raws {
				idx, flipped := d.local(j, raw, reverse[i])
				posCol[i] = positions[idx]
				switch {
				case bnd == nil:
				case collapsed:
					lowCol[i], upCol[i] = positions[idx], positions[idx]
				case flipped:
					lowCol[i], upCol[i] = bnd[idx+1], bnd[idx]
				default:
					lowCol[i], upCol[i] = bnd[idx], bnd[idx+1]
				}
			}
		}
	}
}

// Local returns the row-major index of the generator positions reached at
// raw in the given frame. For a single generator this is the index into its
// arrays, counted from the start whichever way the generator is running.
func (d *Dimension) Local(raw int, reverse bool) int {
	out := 0
	for j := range d.members {
		idx, _ := d.local(j, raw, reverse)
		out += idx * d.after[j]
	}

	return out
}

// BoundedAxes returns the axes whose generator defines bounds.
func (d *Dimension) BoundedAxes() []string {
	var out []string
	for _, m := range d.members {
		for k, axis := range m.axes {
			if m.bounds[k] != nil {
				out = append(out, axis)
			}
		}
	}

	return out
}

// Positions returns the forward-frame position of axis at every retained
// index.
//
// Errors: ErrNotPrepared, ErrUnknownAxis.
func (d *Dimension) Positions(axis string) ([]float64, error) {
	if !d.prepared {
		return nil, ErrNotPrepared
	}
	j, ok := d.owner[axis]
	if !ok {
		return nil, fmt.Errorf("axis %q: %w", axis, ErrUnknownAxis)
	}
	col := d.members[j].positions[d.axisSlot(j, axis)]
	out := make([]float64, len(d.indices))
	for i, raw := range d.indices {
		idx, _ := d.local(j, raw, false)
		out[i] = col[idx]
	}

	return out, nil
}
