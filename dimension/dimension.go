// SPDX-License-Identifier: MIT

package dimension

import (
	"fmt"

	"github.com/katalvlaran/scanpoints/excluder"
	"github.com/katalvlaran/scanpoints/generator"
)

// member is a generator together with the arrays the Dimension reads.
type member struct {
	gen       generator.Generator
	axes      []string
	size      int
	alternate bool
	positions [][]float64 // per axis, len size
	bounds    [][]float64 // per axis, len size+1, nil when undefined
}

// maskRecord is one applied excluder, not yet expanded.
type maskRecord struct {
	mask   []bool
	tile   factor
	repeat factor
}

// Dimension is one or more generators sharing a masked index space.
// Build with New/Merge/ApplyExcluder, then call Prepare; afterwards the
// Dimension is immutable and safe for concurrent reads.
type Dimension struct {
	axes      []string
	members   []member
	size      int
	alternate bool
	records   []maskRecord

	owner  map[string]int // axis -> member index
	before []int          // product of member sizes before i
	after  []int          // product of member sizes after i

	prepared       bool
	mask           []bool
	reverseMask    []bool
	indices        []int
	reverseIndices []int
}

// New wraps a prepared generator in a single-generator Dimension.
//
// Errors: ErrBadGenerator when positions are missing or bounds have the wrong
// length.
func New(g generator.Generator) (*Dimension, error) {
	m, err := newMember(g)
	if err != nil {
		return nil, err
	}

	return build([]member{m}, nil), nil
}

func newMember(g generator.Generator) (member, error) {
	m := member{
		gen:       g,
		axes:      g.Axes(),
		size:      g.Size(),
		alternate: g.Alternate(),
	}
	positions, bounds := g.Positions(), g.Bounds()
	for _, axis := range m.axes {
		pos, ok := positions[axis]
		if !ok || len(pos) != m.size {
			return member{}, fmt.Errorf("axis %q: %d positions, size %d: %w", axis, len(pos), m.size, ErrBadGenerator)
		}
		bnd, ok := bounds[axis]
		if ok && len(bnd) != m.size+1 {
			return member{}, fmt.Errorf("axis %q: %d bounds, size %d: %w", axis, len(bnd), m.size, ErrBadGenerator)
		}
		m.positions = append(m.positions, pos)
		m.bounds = append(m.bounds, bnd)
	}

	return m, nil
}

// build derives the layout tables for members and adopts records.
func build(members []member, records []maskRecord) *Dimension {
	d := &Dimension{
		members: members,
		records: records,
		size:    1,
		owner:   make(map[string]int),
		before:  make([]int, len(members)),
		after:   make([]int, len(members)),
	}
	for i, m := range members {
		d.before[i] = d.size
		d.size *= m.size
		d.alternate = d.alternate || m.alternate
		d.axes = append(d.axes, m.axes...)
		for _, a := range m.axes {
			d.owner[a] = i
		}
	}
	acc := 1
	for i := len(members) - 1; i >= 0; i-- {
		d.after[i] = acc
		acc *= members[i].size
	}

	return d
}

// Merge joins outer and inner into a new Dimension with outer's generators
// first. Records of outer repeat over every inner raw index; records of inner
// tile over every outer raw index. Neither input is modified.
func Merge(outer, inner *Dimension) *Dimension {
	members := make([]member, 0, len(outer.members)+len(inner.members))
	members = append(members, outer.members...)
	members = append(members, inner.members...)

	records := make([]maskRecord, 0, len(outer.records)+len(inner.records))
	for _, r := range outer.records {
		r.repeat = r.repeat.scale(inner.size)
		records = append(records, r)
	}
	for _, r := range inner.records {
		r.tile = r.tile.scale(outer.size)
		records = append(records, r)
	}

	return build(members, records)
}

// ApplyExcluder records e's mask over the generators owning its axes.
//
// The coordinate sequences enumerate, in Dimension order, every combination
// of the generators from the first owner to the last owner (both inclusive).
// When any generator in that range alternates the sequence covers two
// consecutive passes of the first owner, so the reversed runs are enumerated
// too; the record's tile is then halved. e.CreateMask receives the sequences
// in e.Axes() order.
//
// Errors: ErrUnknownAxis, ErrBadMask, or the excluder's own error.
func (d *Dimension) ApplyExcluder(e excluder.Excluder) error {
	axes := e.Axes()
	ga, okA := d.owner[axes[0]]
	gb, okB := d.owner[axes[1]]
	if !okA || !okB {
		return fmt.Errorf("excluder axes %q, dimension axes %q: %w", axes, d.axes, ErrUnknownAxis)
	}
	lo, hi := ga, gb
	if lo > hi {
		lo, hi = hi, lo
	}

	passes := 1
	for j := lo; j <= hi; j++ {
		if d.members[j].alternate {
			passes = 2
		}
	}
	span := d.before[hi] / d.before[lo] * d.members[hi].size
	n := passes * span

	posA := d.members[ga].positions[d.axisSlot(ga, axes[0])]
	posB := d.members[gb].positions[d.axisSlot(gb, axes[1])]
	a, b := make([]float64, n), make([]float64, n)
	for m := 0; m < n; m++ {
		pass, rem := m/span, m%span
		a[m] = posA[d.spanLocal(ga, lo, hi, pass, rem)]
		b[m] = posB[d.spanLocal(gb, lo, hi, pass, rem)]
	}

	mask, err := e.CreateMask(a, b)
	if err != nil {
		return fmt.Errorf("excluder %q: %w", axes, err)
	}
	if len(mask) != n {
		return fmt.Errorf("excluder %q: %d mask values for %d points: %w", axes, len(mask), n, ErrBadMask)
	}

	d.records = append(d.records, maskRecord{
		mask:   mask,
		tile:   newFactor(d.before[lo], passes),
		repeat: newFactor(d.after[hi], 1),
	})
	d.prepared = false

	return nil
}

// spanLocal returns member j's local position index at offset rem of the
// lo..hi span, during span pass `pass` (0 or 1).
func (d *Dimension) spanLocal(j, lo, hi, pass, rem int) int {
	m := d.members[j]
	inner := d.after[j] / d.after[hi]
	digit := (rem / inner) % m.size
	if !m.alternate {
		return digit
	}
	runs := pass*(d.before[j]/d.before[lo]) + rem/(inner*m.size)
	if runs%2 == 1 {
		return m.size - 1 - digit
	}
	return digit
}

// local returns member j's local position index for raw index raw, and
// whether the member is running backwards there.
func (d *Dimension) local(j, raw int, reverse bool) (int, bool) {
	m := d.members[j]
	digit := (raw / d.after[j]) % m.size
	if !m.alternate {
		return digit, false
	}
	runs := raw / (d.after[j] * m.size)
	if reverse {
		runs += d.before[j]
	}
	if runs%2 == 1 {
		return m.size - 1 - digit, true
	}
	return digit, false
}

// axisSlot returns the position of axis inside member j's axis list.
func (d *Dimension) axisSlot(j int, axis string) int {
	for k, a := range d.members[j].axes {
		if a == axis {
			return k
		}
	}
	return -1
}

// Axes returns the axes of every generator, outer to inner.
func (d *Dimension) Axes() []string {
	return append([]string(nil), d.axes...)
}

// Generators returns the generators, outer to inner.
func (d *Dimension) Generators() []generator.Generator {
	out := make([]generator.Generator, len(d.members))
	for i, m := range d.members {
		out[i] = m.gen
	}
	return out
}

// Size returns the raw (unmasked) number of points.
func (d *Dimension) Size() int { return d.size }

// Alternate reports whether any generator alternates.
func (d *Dimension) Alternate() bool { return d.alternate }

// Prepared reports whether Prepare has run since the last change.
func (d *Dimension) Prepared() bool { return d.prepared }

// HasAxis reports whether a generator of d drives axis.
func (d *Dimension) HasAxis(axis string) bool {
	_, ok := d.owner[axis]
	return ok
}
