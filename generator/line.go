// SPDX-License-Identifier: MIT

package generator

// Line moves one or more axes together in a straight line from start to stop.
type Line struct {
	cache
	start []float64
	stop  []float64
}

// NewLine builds a Line over axes with per-axis start and stop values.
// size==1 yields the start position with zero-width bounds.
//
// Errors: ErrNoAxes, ErrDuplicateAxis, ErrAxisMismatch, ErrBadSize,
// ErrBadParameter (non-finite start/stop).
func NewLine(axes []string, start, stop []float64, size int, opts ...Option) (*Line, error) {
	c, err := newCache("Line", axes, size, opts)
	if err != nil {
		return nil, err
	}
	if len(start) != len(axes) || len(stop) != len(axes) {
		return nil, generatorErrorf("Line", ErrAxisMismatch, "%d axes, %d starts, %d stops", len(axes), len(start), len(stop))
	}
	if !finite(start...) || !finite(stop...) {
		return nil, generatorErrorf("Line", ErrBadParameter, "start=%v stop=%v", start, stop)
	}

	return &Line{
		cache: c,
		start: append([]float64(nil), start...),
		stop:  append([]float64(nil), stop...),
	}, nil
}

// Prepare computes positions start+i·step and bounds at half steps.
func (l *Line) Prepare() error {
	return l.prepare(l.produce)
}

func (l *Line) produce() (map[string][]float64, map[string][]float64, error) {
	n := l.size
	positions := make(map[string][]float64, len(l.axes))
	bounds := make(map[string][]float64, len(l.axes))
	for k, axis := range l.axes {
		step := 0.0
		if n > 1 {
			step = (l.stop[k] - l.start[k]) / float64(n-1)
		}
		pos := make([]float64, n)
		for i := range pos {
			pos[i] = l.start[k] + float64(i)*step
		}
		bnd := make([]float64, n+1)
		for i := range bnd {
			bnd[i] = l.start[k] + (float64(i)-0.5)*step
		}
		positions[axis], bounds[axis] = pos, bnd
	}

	return positions, bounds, nil
}
