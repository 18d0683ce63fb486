// SPDX-License-Identifier: MIT

package compound

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/scanpoints/dimension"
	"github.com/katalvlaran/scanpoints/excluder"
	"github.com/katalvlaran/scanpoints/generator"
	"github.com/katalvlaran/scanpoints/mutator"
)

// Compound is an N-dimensional scan: generators nested outer to inner,
// filtered by excluders and post-processed by mutators.
//
// A Compound is not a generator.Generator, so one Compound can never be
// listed inside another.
type Compound struct {
	generators []generator.Generator
	excluders  []excluder.Excluder
	mutators   []mutator.Mutator

	axes       []string
	units      map[string]string
	duration   float64
	continuous bool
	delayAfter float64
	logger     *slog.Logger

	prepared   bool
	dimensions []*dimension.Dimension
	shape      []int
	size       int
}

// New validates the composition and returns an unprepared Compound.
// generators are ordered outer to inner; mutators apply in order.
//
// Errors: ErrNoGenerators, ErrDuplicateAxis, ErrUnknownAxis (excluder axis
// not driven by any generator).
// Complexity: O(total axes).
func New(generators []generator.Generator, excluders []excluder.Excluder, mutators []mutator.Mutator, opts ...Option) (*Compound, error) {
	if len(generators) == 0 {
		return nil, ErrNoGenerators
	}
	cfg := newConfig(opts...)

	c := &Compound{
		generators: append([]generator.Generator(nil), generators...),
		excluders:  append([]excluder.Excluder(nil), excluders...),
		mutators:   append([]mutator.Mutator(nil), mutators...),
		units:      make(map[string]string),
		duration:   cfg.duration,
		continuous: cfg.continuous,
		delayAfter: cfg.delayAfter,
		logger:     cfg.logger,
	}
	for i, g := range c.generators {
		if g == nil {
			return nil, fmt.Errorf("generator %d is nil: %w", i, ErrBadGenerator)
		}
		units := g.Units()
		for _, axis := range g.Axes() {
			if _, dup := c.units[axis]; dup {
				return nil, fmt.Errorf("axis %q: %w", axis, ErrDuplicateAxis)
			}
			c.axes = append(c.axes, axis)
			c.units[axis] = units[axis]
		}
	}
	for _, e := range c.excluders {
		for _, axis := range e.Axes() {
			if _, ok := c.units[axis]; !ok {
				return nil, fmt.Errorf("excluder axis %q, scan axes %q: %w", axis, c.axes, ErrUnknownAxis)
			}
		}
	}

	return c, nil
}

// Prepare produces every generator (once; later calls reuse the cached
// arrays), builds one Dimension per generator, merges the Dimensions joined
// by each excluder, applies the masks, and finalizes the index lists. Running
// it again rebuilds the Dimensions.
//
// Errors: generator production errors, ErrNonAdjacentExcluder,
// ErrEmptySelection, and the dimension errors.
// Complexity: O(Σ Dimension sizes · excluders).
func (c *Compound) Prepare() error {
	c.prepared = false
	dims := make([]*dimension.Dimension, 0, len(c.generators))
	for i, g := range c.generators {
		if err := g.Prepare(); err != nil {
			return fmt.Errorf("generator %d %q: %w", i, g.Axes(), err)
		}
		d, err := dimension.New(g)
		if err != nil {
			return fmt.Errorf("generator %d %q: %w", i, g.Axes(), err)
		}
		dims = append(dims, d)
	}

	for _, e := range c.excluders {
		var err error
		if dims, err = c.applyExcluder(dims, e); err != nil {
			return err
		}
	}

	shape := make([]int, len(dims))
	size := 1
	for i, d := range dims {
		if err := d.Prepare(); err != nil {
			return fmt.Errorf("dimension %d %q: %w", i, d.Axes(), err)
		}
		n, _ := d.Len()
		shape[i] = n
		size *= n
	}

	c.dimensions, c.shape, c.size, c.prepared = dims, shape, size, true
	c.logger.Debug("compound prepared",
		"axes", c.axes,
		"dimensions", len(dims),
		"shape", shape,
		"size", size,
	)

	return nil
}

// applyExcluder merges the Dimensions owning e's axes when they differ and
// applies e to the result.
func (c *Compound) applyExcluder(dims []*dimension.Dimension, e excluder.Excluder) ([]*dimension.Dimension, error) {
	axes := e.Axes()
	a, b := owner(dims, axes[0]), owner(dims, axes[1])
	if a < 0 || b < 0 {
		return nil, fmt.Errorf("excluder %q: %w", axes, ErrUnknownAxis)
	}
	if a > b {
		a, b = b, a
	}
	switch b - a {
	case 0:
	case 1:
		c.logger.Debug("merging dimensions", "outer", dims[a].Axes(), "inner", dims[b].Axes(), "excluder", axes)
		merged := dimension.Merge(dims[a], dims[b])
		dims = append(dims[:a], append([]*dimension.Dimension{merged}, dims[b+1:]...)...)
	default:
		return nil, fmt.Errorf("excluder %q: %w", axes, ErrNonAdjacentExcluder)
	}
	if err := dims[a].ApplyExcluder(e); err != nil {
		return nil, fmt.Errorf("excluder %q: %w", axes, err)
	}

	return dims, nil
}

func owner(dims []*dimension.Dimension, axis string) int {
	for i, d := range dims {
		if d.HasAxis(axis) {
			return i
		}
	}
	return -1
}

// Size returns the number of points after masking.
func (c *Compound) Size() (int, error) {
	if !c.prepared {
		return 0, ErrNotPrepared
	}
	return c.size, nil
}

// Shape returns the retained point count of every Dimension, outer to inner.
func (c *Compound) Shape() ([]int, error) {
	if !c.prepared {
		return nil, ErrNotPrepared
	}
	return append([]int(nil), c.shape...), nil
}

// Dimensions returns the prepared Dimensions, outer to inner.
func (c *Compound) Dimensions() ([]*dimension.Dimension, error) {
	if !c.prepared {
		return nil, ErrNotPrepared
	}
	return append([]*dimension.Dimension(nil), c.dimensions...), nil
}

// Axes returns every axis, outer generator first.
func (c *Compound) Axes() []string { return append([]string(nil), c.axes...) }

// Units maps every axis to its unit string.
func (c *Compound) Units() map[string]string {
	out := make(map[string]string, len(c.units))
	for k, v := range c.units {
		out[k] = v
	}
	return out
}

// Duration returns the per-point exposure time or point.NoDuration.
func (c *Compound) Duration() float64 { return c.duration }

// Continuous reports whether motion is continuous between points.
func (c *Compound) Continuous() bool { return c.continuous }

// DelayAfter returns the per-point settle time.
func (c *Compound) DelayAfter() float64 { return c.delayAfter }

// Generators returns the generators, outer to inner.
func (c *Compound) Generators() []generator.Generator {
	return append([]generator.Generator(nil), c.generators...)
}

// Excluders returns the excluders in registration order.
func (c *Compound) Excluders() []excluder.Excluder {
	return append([]excluder.Excluder(nil), c.excluders...)
}

// Mutators returns the mutators in application order.
func (c *Compound) Mutators() []mutator.Mutator {
	return append([]mutator.Mutator(nil), c.mutators...)
}
