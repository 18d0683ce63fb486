// SPDX-License-Identifier: MIT

package mutator

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scanpoints/point"
)

// Rotation rotates an axis pair by Angle degrees (counter-clockwise) about
// Centre. Bounds rotate with the positions when both axes carry them.
type Rotation struct {
	axes     [2]string
	centre   [2]float64
	angle    float64
	sin, cos float64
}

// NewRotation validates axes and angle.
func NewRotation(axes [2]string, centre [2]float64, angle float64) (*Rotation, error) {
	if axes[0] == "" || axes[1] == "" || axes[0] == axes[1] {
		return nil, fmt.Errorf("Rotation: axes=%q: %w", axes, ErrBadParameter)
	}
	for _, v := range []float64{centre[0], centre[1], angle} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("Rotation: %v: %w", v, ErrBadParameter)
		}
	}
	sin, cos := math.Sincos(angle * math.Pi / 180)

	return &Rotation{axes: axes, centre: centre, angle: angle, sin: sin, cos: cos}, nil
}

// Axes returns the rotated axis pair.
func (r *Rotation) Axes() [2]string { return r.axes }

// Centre returns the rotation centre.
func (r *Rotation) Centre() [2]float64 { return r.centre }

// Angle returns the rotation angle in degrees.
func (r *Rotation) Angle() float64 { return r.angle }

// Mutate returns a rotated copy of p.
func (r *Rotation) Mutate(p point.Point, _ int) point.Point {
	out := p.Clone()
	r.rotateMap(out.Positions)
	r.rotateMap(out.Lower)
	r.rotateMap(out.Upper)

	return out
}

// MutatePoints rotates columns in place.
func (r *Rotation) MutatePoints(ps *point.Points, _ int) {
	r.rotateColumns(ps.Positions)
	r.rotateColumns(ps.Lower)
	r.rotateColumns(ps.Upper)
}

func (r *Rotation) rotateMap(m map[string]float64) {
	x, okX := m[r.axes[0]]
	y, okY := m[r.axes[1]]
	if !okX || !okY {
		return
	}
	m[r.axes[0]], m[r.axes[1]] = r.apply(x, y)
}

func (r *Rotation) rotateColumns(cols map[string][]float64) {
	xs, okX := cols[r.axes[0]]
	ys, okY := cols[r.axes[1]]
	if !okX || !okY {
		return
	}
	for i := range xs {
		xs[i], ys[i] = r.apply(xs[i], ys[i])
	}
}

func (r *Rotation) apply(x, y float64) (float64, float64) {
	dx, dy := x-r.centre[0], y-r.centre[1]
	return r.centre[0] + dx*r.cos - dy*r.sin, r.centre[1] + dx*r.sin + dy*r.cos
}
