// SPDX-License-Identifier: MIT

package scanspec

import (
	"fmt"

	"github.com/katalvlaran/scanpoints/excluder"
	"github.com/katalvlaran/scanpoints/generator"
	"github.com/katalvlaran/scanpoints/mutator"
	"github.com/katalvlaran/scanpoints/roi"
)

// common holds the options every generator accepts.
type common struct {
	Alternate bool     `yaml:"alternate"`
	Units     []string `yaml:"units"`
}

func (c common) options() []generator.Option {
	opts := []generator.Option{generator.WithAlternate(c.Alternate)}
	if len(c.Units) > 0 {
		opts = append(opts, generator.WithUnits(c.Units...))
	}
	return opts
}

// pair converts a two-element slice, failing on any other length.
func pair[T any](kind, field string, vs []T) ([2]T, error) {
	var out [2]T
	if len(vs) != 2 {
		return out, fmt.Errorf("%s.%s: want 2 values, got %d: %w", kind, field, len(vs), ErrBadComponent)
	}
	out[0], out[1] = vs[0], vs[1]
	return out, nil
}

func newLine(_ *Registry, c Component) (generator.Generator, error) {
	var p struct {
		common `yaml:",inline"`
		Axes   []string  `yaml:"axes"`
		Start  []float64 `yaml:"start"`
		Stop   []float64 `yaml:"stop"`
		Size   int       `yaml:"size"`
	}
	if err := c.Decode(&p); err != nil {
		return nil, err
	}
	g, err := generator.NewLine(p.Axes, p.Start, p.Stop, p.Size, p.options()...)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func newArray(_ *Registry, c Component) (generator.Generator, error) {
	var p struct {
		common `yaml:",inline"`
		Axis   string    `yaml:"axis"`
		Points []float64 `yaml:"points"`
	}
	if err := c.Decode(&p); err != nil {
		return nil, err
	}
	g, err := generator.NewArray(p.Axis, p.Points, p.options()...)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func newSpiral(_ *Registry, c Component) (generator.Generator, error) {
	var p struct {
		common `yaml:",inline"`
		Axes   []string  `yaml:"axes"`
		Centre []float64 `yaml:"centre"`
		Radius float64   `yaml:"radius"`
		Scale  float64   `yaml:"scale"`
	}
	if err := c.Decode(&p); err != nil {
		return nil, err
	}
	axes, err := pair(c.Type, "axes", p.Axes)
	if err != nil {
		return nil, err
	}
	centre, err := pair(c.Type, "centre", p.Centre)
	if err != nil {
		return nil, err
	}
	g, err := generator.NewSpiral(axes, centre, p.Radius, p.Scale, p.options()...)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func newLissajous(_ *Registry, c Component) (generator.Generator, error) {
	var p struct {
		common `yaml:",inline"`
		Axes   []string  `yaml:"axes"`
		Centre []float64 `yaml:"centre"`
		Span   []float64 `yaml:"span"`
		Lobes  int       `yaml:"lobes"`
		Size   int       `yaml:"size"`
	}
	if err := c.Decode(&p); err != nil {
		return nil, err
	}
	axes, err := pair(c.Type, "axes", p.Axes)
	if err != nil {
		return nil, err
	}
	centre, err := pair(c.Type, "centre", p.Centre)
	if err != nil {
		return nil, err
	}
	span, err := pair(c.Type, "span", p.Span)
	if err != nil {
		return nil, err
	}
	g, err := generator.NewLissajous(axes, centre, span, p.Lobes, p.Size, p.options()...)
	if err != nil {
		return nil, err
	}
	return g, nil
}

func newRegion(reg *Registry, c Component) (excluder.Excluder, error) {
	var p struct {
		Axes []string    `yaml:"axes"`
		ROIs []Component `yaml:"rois"`
	}
	if err := c.Decode(&p); err != nil {
		return nil, err
	}
	axes, err := pair(c.Type, "axes", p.Axes)
	if err != nil {
		return nil, err
	}
	rois := make([]roi.ROI, 0, len(p.ROIs))
	for i, rc := range p.ROIs {
		r, err := reg.ROI(rc)
		if err != nil {
			return nil, fmt.Errorf("region.rois[%d]: %w", i, err)
		}
		rois = append(rois, r)
	}
	e, err := excluder.NewRegion(axes, rois...)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func newCircular(_ *Registry, c Component) (roi.ROI, error) {
	var p struct {
		Centre []float64 `yaml:"centre"`
		Radius float64   `yaml:"radius"`
	}
	if err := c.Decode(&p); err != nil {
		return nil, err
	}
	centre, err := pair(c.Type, "centre", p.Centre)
	if err != nil {
		return nil, err
	}
	r, err := roi.NewCircular(centre, p.Radius)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newRectangular(_ *Registry, c Component) (roi.ROI, error) {
	var p struct {
		Start  []float64 `yaml:"start"`
		Width  float64   `yaml:"width"`
		Height float64   `yaml:"height"`
		Angle  float64   `yaml:"angle"`
	}
	if err := c.Decode(&p); err != nil {
		return nil, err
	}
	start, err := pair(c.Type, "start", p.Start)
	if err != nil {
		return nil, err
	}
	r, err := roi.NewRectangular(start, p.Width, p.Height, p.Angle)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newElliptical(_ *Registry, c Component) (roi.ROI, error) {
	var p struct {
		Centre   []float64 `yaml:"centre"`
		Semiaxes []float64 `yaml:"semiaxes"`
		Angle    float64   `yaml:"angle"`
	}
	if err := c.Decode(&p); err != nil {
		return nil, err
	}
	centre, err := pair(c.Type, "centre", p.Centre)
	if err != nil {
		return nil, err
	}
	semi, err := pair(c.Type, "semiaxes", p.Semiaxes)
	if err != nil {
		return nil, err
	}
	r, err := roi.NewElliptical(centre, semi, p.Angle)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newPolygonal(_ *Registry, c Component) (roi.ROI, error) {
	var p struct {
		X []float64 `yaml:"x"`
		Y []float64 `yaml:"y"`
	}
	if err := c.Decode(&p); err != nil {
		return nil, err
	}
	r, err := roi.NewPolygonal(p.X, p.Y)
	if err != nil {
		return nil, err
	}
	return r, nil
}

func newFixedDuration(_ *Registry, c Component) (mutator.Mutator, error) {
	var p struct {
		Duration float64 `yaml:"duration"`
	}
	if err := c.Decode(&p); err != nil {
		return nil, err
	}
	m, err := mutator.NewFixedDuration(p.Duration)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func newRandomOffset(_ *Registry, c Component) (mutator.Mutator, error) {
	var p struct {
		Seed      int64              `yaml:"seed"`
		MaxOffset map[string]float64 `yaml:"max_offset"`
	}
	if err := c.Decode(&p); err != nil {
		return nil, err
	}
	m, err := mutator.NewRandomOffset(p.Seed, p.MaxOffset)
	if err != nil {
		return nil, err
	}
	return m, nil
}

func newRotation(_ *Registry, c Component) (mutator.Mutator, error) {
	var p struct {
		Axes   []string  `yaml:"axes"`
		Centre []float64 `yaml:"centre"`
		Angle  float64   `yaml:"angle"`
	}
	if err := c.Decode(&p); err != nil {
		return nil, err
	}
	axes, err := pair(c.Type, "axes", p.Axes)
	if err != nil {
		return nil, err
	}
	centre, err := pair(c.Type, "centre", p.Centre)
	if err != nil {
		return nil, err
	}
	m, err := mutator.NewRotation(axes, centre, p.Angle)
	if err != nil {
		return nil, err
	}
	return m, nil
}
