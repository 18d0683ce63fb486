// SPDX-License-Identifier: MIT

package generator

import "math"

// Spiral traces an Archimedean spiral outwards from a centre. Consecutive
// points enclose equal areas (scale²), so sampling density is uniform.
type Spiral struct {
	cache
	centre [2]float64
	radius float64
	scale  float64
}

// NewSpiral builds a Spiral over axes (x then y) within radius of centre.
// scale is the spacing between rings; size is ⌊π·radius²/scale²⌋.
//
// Errors: ErrBadParameter (radius/scale not finite and positive),
// ErrBadSize (radius too small for a single point), axis errors.
func NewSpiral(axes [2]string, centre [2]float64, radius, scale float64, opts ...Option) (*Spiral, error) {
	if !finite(centre[0], centre[1], radius, scale) || radius <= 0 || scale <= 0 {
		return nil, generatorErrorf("Spiral", ErrBadParameter, "radius=%v scale=%v", radius, scale)
	}
	size := int(math.Floor(math.Pi * radius * radius / (scale * scale)))
	c, err := newCache("Spiral", axes[:], size, opts)
	if err != nil {
		return nil, err
	}

	return &Spiral{cache: c, centre: centre, radius: radius, scale: scale}, nil
}

// Prepare evaluates the spiral at area fractions i+0.5 (positions) and i
// (bounds).
func (s *Spiral) Prepare() error {
	return s.prepare(s.produce)
}

func (s *Spiral) produce() (map[string][]float64, map[string][]float64, error) {
	n := s.size
	xs, ys := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i], ys[i] = s.at(float64(i) + 0.5)
	}
	bx, by := make([]float64, n+1), make([]float64, n+1)
	for i := 0; i <= n; i++ {
		bx[i], by[i] = s.at(float64(i))
	}
	x, y := s.axes[0], s.axes[1]

	return map[string][]float64{x: xs, y: ys}, map[string][]float64{x: bx, y: by}, nil
}

// at returns the spiral point enclosing area t·scale².
// r = scale·sqrt(t/π); θ = 2π·r/scale (one turn per ring).
func (s *Spiral) at(t float64) (float64, float64) {
	r := s.scale * math.Sqrt(t/math.Pi)
	theta := 2 * math.Pi * r / s.scale

	return s.centre[0] + r*math.Sin(theta), s.centre[1] + r*math.Cos(theta)
}
