// SPDX-License-Identifier: MIT

package roi

import (
	"fmt"
	"math"
)

// ROI is a two-dimensional region.
type ROI interface {
	// Mask reports, per index, whether (xs[i], ys[i]) lies inside the region.
	// xs and ys must have equal length.
	Mask(xs, ys []float64) []bool
}

// Circular is a disc.
type Circular struct {
	Centre [2]float64
	Radius float64
}

// NewCircular validates and returns a Circular region.
func NewCircular(centre [2]float64, radius float64) (*Circular, error) {
	if !finite(centre[0], centre[1], radius) || radius <= 0 {
		return nil, fmt.Errorf("Circular: radius=%v: %w", radius, ErrBadParameter)
	}

	return &Circular{Centre: centre, Radius: radius}, nil
}

// Mask keeps points with (x-cx)²+(y-cy)² ≤ r².
func (c *Circular) Mask(xs, ys []float64) []bool {
	out := make([]bool, len(xs))
	r2 := c.Radius * c.Radius
	for i := range xs {
		dx, dy := xs[i]-c.Centre[0], ys[i]-c.Centre[1]
		out[i] = dx*dx+dy*dy <= r2
	}

	return out
}

// Rectangular is an axis-aligned rectangle rotated by Angle degrees about
// its Start corner.
type Rectangular struct {
	Start  [2]float64
	Width  float64
	Height float64
	Angle  float64
}

// NewRectangular validates and returns a Rectangular region.
func NewRectangular(start [2]float64, width, height, angle float64) (*Rectangular, error) {
	if !finite(start[0], start[1], width, height, angle) || width <= 0 || height <= 0 {
		return nil, fmt.Errorf("Rectangular: width=%v height=%v: %w", width, height, ErrBadParameter)
	}

	return &Rectangular{Start: start, Width: width, Height: height, Angle: angle}, nil
}

// Mask keeps points whose coordinates, un-rotated into the rectangle frame,
// fall within [0,Width]×[0,Height].
func (r *Rectangular) Mask(xs, ys []float64) []bool {
	out := make([]bool, len(xs))
	sin, cos := math.Sincos(-r.Angle * math.Pi / 180)
	for i := range xs {
		u, v := rotate(xs[i]-r.Start[0], ys[i]-r.Start[1], sin, cos)
		out[i] = u >= 0 && u <= r.Width && v >= 0 && v <= r.Height
	}

	return out
}

// Elliptical is an ellipse with semi-axes Semi rotated by Angle degrees
// about its Centre.
type Elliptical struct {
	Centre [2]float64
	Semi   [2]float64
	Angle  float64
}

// NewElliptical validates and returns an Elliptical region.
func NewElliptical(centre, semi [2]float64, angle float64) (*Elliptical, error) {
	if !finite(centre[0], centre[1], semi[0], semi[1], angle) || semi[0] <= 0 || semi[1] <= 0 {
		return nil, fmt.Errorf("Elliptical: semi=%v: %w", semi, ErrBadParameter)
	}

	return &Elliptical{Centre: centre, Semi: semi, Angle: angle}, nil
}

// Mask keeps points with (u/a)²+(v/b)² ≤ 1 in the ellipse frame.
func (e *Elliptical) Mask(xs, ys []float64) []bool {
	out := make([]bool, len(xs))
	sin, cos := math.Sincos(-e.Angle * math.Pi / 180)
	for i := range xs {
		u, v := rotate(xs[i]-e.Centre[0], ys[i]-e.Centre[1], sin, cos)
		u, v = u/e.Semi[0], v/e.Semi[1]
		out[i] = u*u+v*v <= 1
	}

	return out
}

// Polygonal is a simple polygon given by its vertex coordinates.
type Polygonal struct {
	X []float64
	Y []float64
}

// NewPolygonal validates and returns a Polygonal region.
func NewPolygonal(x, y []float64) (*Polygonal, error) {
	if len(x) < 3 || len(x) != len(y) {
		return nil, fmt.Errorf("Polygonal: %d x, %d y: %w", len(x), len(y), ErrTooFewVertices)
	}
	if !finite(x...) || !finite(y...) {
		return nil, fmt.Errorf("Polygonal: %w", ErrBadParameter)
	}

	return &Polygonal{X: append([]float64(nil), x...), Y: append([]float64(nil), y...)}, nil
}

// Mask uses even-odd ray casting. Points on an edge count as inside.
func (p *Polygonal) Mask(xs, ys []float64) []bool {
	out := make([]bool, len(xs))
	n := len(p.X)
	for i := range xs {
		x, y := xs[i], ys[i]
		inside := false
		for a, b := 0, n-1; a < n; b, a = a, a+1 {
			xa, ya, xb, yb := p.X[a], p.Y[a], p.X[b], p.Y[b]
			if onSegment(x, y, xa, ya, xb, yb) {
				inside = true
				break
			}
			if (ya > y) != (yb > y) && x < (xb-xa)*(y-ya)/(yb-ya)+xa {
				inside = !inside
			}
		}
		out[i] = inside
	}

	return out
}

// onSegmentEps absorbs rounding when testing edge membership.
const onSegmentEps = 1e-12

func onSegment(x, y, xa, ya, xb, yb float64) bool {
	cross := (xb-xa)*(y-ya) - (yb-ya)*(x-xa)
	if math.Abs(cross) > onSegmentEps {
		return false
	}

	return x >= math.Min(xa, xb)-onSegmentEps && x <= math.Max(xa, xb)+onSegmentEps &&
		y >= math.Min(ya, yb)-onSegmentEps && y <= math.Max(ya, yb)+onSegmentEps
}

func rotate(x, y, sin, cos float64) (float64, float64) {
	return x*cos - y*sin, x*sin + y*cos
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
