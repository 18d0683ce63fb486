// SPDX-License-Identifier: MIT

package generator

// Array visits an explicit list of positions on a single axis.
type Array struct {
	cache
	points []float64
}

// NewArray builds an Array over axis. Bounds sit at midpoints between
// neighbours; the outer bounds extend by half the adjacent gap.
//
// Errors: ErrNoAxes (empty axis), ErrBadSize (no points),
// ErrBadParameter (non-finite point).
func NewArray(axis string, points []float64, opts ...Option) (*Array, error) {
	if axis == "" {
		return nil, generatorErrorf("Array", ErrNoAxes, "empty axis name")
	}
	c, err := newCache("Array", []string{axis}, len(points), opts)
	if err != nil {
		return nil, err
	}
	if !finite(points...) {
		return nil, generatorErrorf("Array", ErrBadParameter, "points=%v", points)
	}

	return &Array{cache: c, points: append([]float64(nil), points...)}, nil
}

// Prepare copies the points and derives midpoint bounds.
func (a *Array) Prepare() error {
	return a.prepare(a.produce)
}

func (a *Array) produce() (map[string][]float64, map[string][]float64, error) {
	n := len(a.points)
	pos := append([]float64(nil), a.points...)
	bnd := make([]float64, n+1)
	if n == 1 {
		bnd[0], bnd[1] = pos[0], pos[0]
	} else {
		for i := 1; i < n; i++ {
			bnd[i] = (pos[i-1] + pos[i]) / 2
		}
		bnd[0] = pos[0] - (pos[1]-pos[0])/2
		bnd[n] = pos[n-1] + (pos[n-1]-pos[n-2])/2
	}
	axis := a.axes[0]

	return map[string][]float64{axis: pos}, map[string][]float64{axis: bnd}, nil
}
