// SPDX-License-Identifier: MIT

package generator

import "math"

// Lissajous traces a closed Lissajous figure with lobes and lobes+1 half
// periods on the two axes.
type Lissajous struct {
	cache
	centre [2]float64
	span   [2]float64
	lobes  int
}

// NewLissajous builds a Lissajous figure of size points over axes (x then y)
// filling a span[0]×span[1] box around centre.
//
// Errors: ErrBadParameter (lobes<1, non-finite or non-positive span), axis
// and size errors.
func NewLissajous(axes [2]string, centre, span [2]float64, lobes, size int, opts ...Option) (*Lissajous, error) {
	if lobes < 1 || !finite(centre[0], centre[1], span[0], span[1]) || span[0] <= 0 || span[1] <= 0 {
		return nil, generatorErrorf("Lissajous", ErrBadParameter, "lobes=%d span=%v", lobes, span)
	}
	c, err := newCache("Lissajous", axes[:], size, opts)
	if err != nil {
		return nil, err
	}

	return &Lissajous{cache: c, centre: centre, span: span, lobes: lobes}, nil
}

// Prepare samples the figure at t=2π·i/size; bounds sit half a sample early.
func (l *Lissajous) Prepare() error {
	return l.prepare(l.produce)
}

func (l *Lissajous) produce() (map[string][]float64, map[string][]float64, error) {
	n := l.size
	xs, ys := make([]float64, n), make([]float64, n)
	for i := 0; i < n; i++ {
		xs[i], ys[i] = l.at(float64(i))
	}
	bx, by := make([]float64, n+1), make([]float64, n+1)
	for i := 0; i <= n; i++ {
		bx[i], by[i] = l.at(float64(i) - 0.5)
	}
	x, y := l.axes[0], l.axes[1]

	return map[string][]float64{x: xs, y: ys}, map[string][]float64{x: bx, y: by}, nil
}

func (l *Lissajous) at(i float64) (float64, float64) {
	t := 2 * math.Pi * i / float64(l.size)
	fx, fy := float64(l.lobes), float64(l.lobes+1)

	return l.centre[0] + l.span[0]/2*math.Sin(fx*t+math.Pi/2),
		l.centre[1] + l.span[1]/2*math.Sin(fy*t)
}
