// SPDX-License-Identifier: MIT

package generator

import "math"

// Generator is the leaf contract of a scan axis group.
//
// Positions and Bounds return nil until Prepare succeeds. Callers must treat
// the returned maps and slices as read-only.
type Generator interface {
	// Axes returns the ordered, unique axis names driven by the generator.
	Axes() []string
	// Units maps each axis to its unit string.
	Units() map[string]string
	// Size is the number of points produced per pass.
	Size() int
	// Alternate reports whether every other pass runs backwards when nested.
	Alternate() bool
	// Prepare produces positions and bounds once; later calls are no-ops.
	Prepare() error
	// Positions maps axis to Size() positions.
	Positions() map[string][]float64
	// Bounds maps axis to Size()+1 bounds. Axes without bounds are absent.
	Bounds() map[string][]float64
}

// producer computes positions and bounds for a generator.
type producer func() (positions, bounds map[string][]float64, err error)

// cache holds produced arrays and the metadata shared by all generators.
type cache struct {
	axes      []string
	units     map[string]string
	size      int
	alternate bool

	produced  bool
	positions map[string][]float64
	bounds    map[string][]float64
}

func (c *cache) Axes() []string {
	return append([]string(nil), c.axes...)
}

func (c *cache) Units() map[string]string {
	out := make(map[string]string, len(c.units))
	for k, v := range c.units {
		out[k] = v
	}

	return out
}

func (c *cache) Size() int                       { return c.size }
func (c *cache) Alternate() bool                 { return c.alternate }
func (c *cache) Positions() map[string][]float64 { return c.positions }
func (c *cache) Bounds() map[string][]float64    { return c.bounds }

// prepare runs produce once and memoizes the result.
func (c *cache) prepare(produce producer) error {
	if c.produced {
		return nil
	}
	pos, bnd, err := produce()
	if err != nil {
		return err
	}
	c.positions, c.bounds, c.produced = pos, bnd, true

	return nil
}

// newCache validates axes and resolves options into shared metadata.
func newCache(kind string, axes []string, size int, opts []Option) (cache, error) {
	if len(axes) == 0 {
		return cache{}, generatorErrorf(kind, ErrNoAxes, "axes=%v", axes)
	}
	seen := make(map[string]struct{}, len(axes))
	for _, a := range axes {
		if _, dup := seen[a]; dup {
			return cache{}, generatorErrorf(kind, ErrDuplicateAxis, "axis %q", a)
		}
		seen[a] = struct{}{}
	}
	if size < 1 {
		return cache{}, generatorErrorf(kind, ErrBadSize, "size=%d", size)
	}

	cfg := newConfig(opts...)
	units := make(map[string]string, len(axes))
	switch len(cfg.units) {
	case 0:
		for _, a := range axes {
			units[a] = defaultUnits
		}
	case 1:
		for _, a := range axes {
			units[a] = cfg.units[0]
		}
	case len(axes):
		for i, a := range axes {
			units[a] = cfg.units[i]
		}
	default:
		return cache{}, generatorErrorf(kind, ErrAxisMismatch, "%d units for %d axes", len(cfg.units), len(axes))
	}

	return cache{
		axes:      append([]string(nil), axes...),
		units:     units,
		size:      size,
		alternate: cfg.alternate,
	}, nil
}

// finite reports whether every value is neither NaN nor ±Inf.
func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
