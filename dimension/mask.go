// SPDX-License-Identifier: MIT

package dimension

import "fmt"

// Prepare expands every mask record to Size() entries in both frames, ANDs
// them, and compacts the retained raw indices. Calling it again after a
// successful run is a no-op.
//
// Record expansion: with repeat R and period = len(mask)·R,
//
//	forward[i] = mask[(i mod period) / R]
//	reverse[i] = mask[((i + shift) mod period) / R]
//
// where shift is period/2 for a half-integer tile and 0 otherwise.
//
// Errors: ErrMaskLength or ErrIndexCount (internal), ErrEmptySelection.
// Complexity: O(records·Size()).
func (d *Dimension) Prepare() error {
	if d.prepared {
		return nil
	}

	fwd, rev := make([]bool, d.size), make([]bool, d.size)
	for i := range fwd {
		fwd[i], rev[i] = true, true
	}
	for k, r := range d.records {
		if err := r.expandInto(fwd, rev); err != nil {
			return fmt.Errorf("mask record %d: %w", k, err)
		}
	}

	indices, reverseIndices := compact(fwd), compact(rev)
	if len(indices) != len(reverseIndices) {
		return fmt.Errorf("%d forward, %d reverse: %w", len(indices), len(reverseIndices), ErrIndexCount)
	}
	if len(indices) == 0 {
		return fmt.Errorf("dimension %q: %w", d.axes, ErrEmptySelection)
	}

	d.mask, d.reverseMask = fwd, rev
	d.indices, d.reverseIndices = indices, reverseIndices
	d.prepared = true

	return nil
}

// expandInto ANDs r, expanded to len(fwd), into fwd and rev.
func (r maskRecord) expandInto(fwd, rev []bool) error {
	size := len(fwd)
	rep, ok := r.repeat.integer()
	if !ok || rep <= 0 {
		return fmt.Errorf("repeat %s: %w", r.repeat, ErrMaskLength)
	}
	period := len(r.mask) * rep
	if n, ok := r.tile.times(period); !ok || n != size || period == 0 {
		return fmt.Errorf("mask %d × repeat %d × tile %s != size %d: %w",
			len(r.mask), rep, r.tile, size, ErrMaskLength)
	}
	shift := 0
	if _, whole := r.tile.integer(); !whole {
		shift = period / 2
	}

	for i := 0; i < size; i++ {
		fwd[i] = fwd[i] && r.mask[(i%period)/rep]
		rev[i] = rev[i] && r.mask[((i+shift)%period)/rep]
	}

	return nil
}

// compact returns the positions of the true entries of mask, ascending.
// The result is allocated at its exact length.
func compact(mask []bool) []int {
	n := 0
	for _, keep := range mask {
		if keep {
			n++
		}
	}
	out := make([]int, 0, n)
	for i, keep := range mask {
		if keep {
			out = append(out, i)
		}
	}

	return out
}

// Len returns the number of retained points.
func (d *Dimension) Len() (int, error) {
	if !d.prepared {
		return 0, ErrNotPrepared
	}
	return len(d.indices), nil
}

// Mask returns a copy of the forward-frame mask.
func (d *Dimension) Mask() ([]bool, error) {
	if !d.prepared {
		return nil, ErrNotPrepared
	}
	return append([]bool(nil), d.mask...), nil
}

// ReverseMask returns a copy of the reverse-frame mask.
func (d *Dimension) ReverseMask() ([]bool, error) {
	if !d.prepared {
		return nil, ErrNotPrepared
	}
	return append([]bool(nil), d.reverseMask...), nil
}

// Indices returns a copy of the retained raw indices in the forward frame.
func (d *Dimension) Indices() ([]int, error) {
	if !d.prepared {
		return nil, ErrNotPrepared
	}
	return append([]int(nil), d.indices...), nil
}

// ReverseIndices returns a copy of the retained raw indices in the reverse
// frame.
func (d *Dimension) ReverseIndices() ([]int, error) {
	if !d.prepared {
		return nil, ErrNotPrepared
	}
	return append([]int(nil), d.reverseIndices...), nil
}

// Raw maps the k-th retained point of the given frame to its raw index.
// It does not copy; k must be in [0, Len()).
func (d *Dimension) Raw(k int, reverse bool) (int, error) {
	if !d.prepared {
		return 0, ErrNotPrepared
	}
	list := d.indices
	if reverse {
		list = d.reverseIndices
	}
	if k < 0 || k >= len(list) {
		return 0, fmt.Errorf("index %d of %d: %w", k, len(list), ErrInternalConsistency)
	}

	return list[k], nil
}
