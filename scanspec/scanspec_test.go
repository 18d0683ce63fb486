// SPDX-License-Identifier: MIT

package scanspec_test

import (
	"math"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanpoints/compound"
	"github.com/katalvlaran/scanpoints/excluder"
	"github.com/katalvlaran/scanpoints/generator"
	"github.com/katalvlaran/scanpoints/mutator"
	"github.com/katalvlaran/scanpoints/roi"
	"github.com/katalvlaran/scanpoints/scanspec"
)

func load(t *testing.T, name string) *scanspec.Description {
	t.Helper()
	desc, err := scanspec.Load(filepath.Join("testdata", name))
	require.NoError(t, err)
	return desc
}

func build(t *testing.T, desc *scanspec.Description, reg *scanspec.Registry) *compound.Compound {
	t.Helper()
	c, err := scanspec.Build(desc, reg)
	require.NoError(t, err)
	require.NoError(t, c.Prepare())
	return c
}

func TestLoad_Snake(t *testing.T) {
	desc := load(t, "snake.yaml")

	require.Len(t, desc.Generators, 2)
	require.Equal(t, "line", desc.Generators[1].Type)
	require.Equal(t, true, desc.Generators[1].Params["alternate"])
	require.Equal(t, 3, desc.Generators[1].Params["size"])
	require.NotContains(t, desc.Generators[1].Params, "type")
	require.Equal(t, 0.5, *desc.Duration)
	require.False(t, *desc.Continuous)
	require.Equal(t, 0.25, desc.DelayAfter)

	c := build(t, desc, scanspec.NewRegistry())
	require.Equal(t, 0.5, c.Duration())
	require.False(t, c.Continuous())
	require.Equal(t, 0.25, c.DelayAfter())
	shape, err := c.Shape()
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, shape)

	p, err := c.GetPoint(3)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"y": 1, "x": 2}, p.Positions)
	require.Equal(t, []int{1, 2}, p.Indexes)
	require.Equal(t, 0.5, p.Duration)
}

func TestLoad_CircleWithMutators(t *testing.T) {
	c := build(t, load(t, "circle.yaml"), scanspec.NewRegistry())

	size, err := c.Size()
	require.NoError(t, err)
	require.Equal(t, 13, size)
	require.Len(t, c.Mutators(), 3)

	// Rotation by 90° about the origin maps (x, y) to (-y, x); the jitter
	// only moves x before rotating, so the new y stays within 0.125.
	p, err := c.GetPoint(0)
	require.NoError(t, err)
	require.InDelta(t, 1.0, p.Positions["x"], 1e-9)
	require.InDelta(t, 0.0, p.Positions["y"], 0.125+1e-9)
	require.Equal(t, 0.5, p.Duration)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := scanspec.Load(filepath.Join("testdata", "absent.yaml"))
	require.Error(t, err)
}

func TestParse_Rejects(t *testing.T) {
	cases := []struct {
		name string
		data string
		err  error
	}{
		{"Syntax", "generators: [", scanspec.ErrSyntax},
		{"Empty", "", scanspec.ErrSchema},
		{"UnknownEnvelopeField", "generators: [{type: array, axis: x, points: [1]}]\nexclusions: []\n", scanspec.ErrSchema},
		{"UnknownComponentField", "generators: [{type: array, axis: x, points: [1], colour: red}]\n", scanspec.ErrSchema},
		{"NoGenerators", "generators: []\n", scanspec.ErrSchema},
		{"SizeNotInt", "generators: [{type: line, axes: [x], start: [0], stop: [1], size: two}]\n", scanspec.ErrSchema},
		{"NegativeDelay", "generators: [{type: array, axis: x, points: [1]}]\ndelay_after: -1\n", scanspec.ErrSchema},
		{"BadDuration", "generators: [{type: array, axis: x, points: [1]}]\nduration: -3\n", scanspec.ErrSchema},
		{"RegionWithoutROIs", "generators: [{type: array, axis: x, points: [1]}]\nexcluders: [{type: region, axes: [x, x], rois: []}]\n", scanspec.ErrSchema},
		{"MissingType", "generators: [{axis: x, points: [1]}]\n", scanspec.ErrSchema},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := scanspec.Parse([]byte(tc.data))
			require.ErrorIs(t, err, tc.err)
		})
	}
	for _, name := range []string{"unknown_field.yaml", "bad_envelope.yaml", "no_generators.yaml"} {
		_, err := scanspec.Load(filepath.Join("testdata", name))
		require.ErrorIs(t, err, scanspec.ErrSchema, name)
	}
}

func TestBuild_NestedCompound(t *testing.T) {
	desc := load(t, "nested.yaml")
	_, err := scanspec.Build(desc, scanspec.NewRegistry())
	require.ErrorIs(t, err, compound.ErrNestedCompound)
	require.ErrorIs(t, err, compound.ErrConfiguration)
}

func TestBuild_UnknownType(t *testing.T) {
	desc, err := scanspec.Parse([]byte("generators: [{type: raster, rows: 3}]\n"))
	require.NoError(t, err)
	_, err = scanspec.Build(desc, scanspec.NewRegistry())
	require.ErrorIs(t, err, scanspec.ErrUnknownType)
}

func TestBuild_ConstructorErrors(t *testing.T) {
	desc := &scanspec.Description{Generators: []scanspec.Component{{
		Type:   "spiral",
		Params: map[string]any{"axes": []any{"x"}, "centre": []any{0, 0}, "radius": 1, "scale": 0.1},
	}}}
	_, err := scanspec.Build(desc, scanspec.NewRegistry())
	require.ErrorIs(t, err, scanspec.ErrBadComponent)

	desc.Generators[0] = scanspec.Component{Type: "line", Params: map[string]any{
		"axes": []any{"x"}, "start": []any{0}, "stop": []any{1}, "size": 0,
	}}
	_, err = scanspec.Build(desc, scanspec.NewRegistry())
	require.ErrorIs(t, err, generator.ErrBadSize)

	desc.Generators[0].Params["size"] = 2
	nan := math.NaN()
	desc.Duration = &nan
	_, err = scanspec.Build(desc, scanspec.NewRegistry())
	require.ErrorIs(t, err, scanspec.ErrSchema)
}

func TestRegistry_CustomGenerator(t *testing.T) {
	raster := func(_ *scanspec.Registry, c scanspec.Component) (generator.Generator, error) {
		var p struct {
			Axis string    `yaml:"axis"`
			At   []float64 `yaml:"at"`
		}
		if err := c.Decode(&p); err != nil {
			return nil, err
		}
		return generator.NewArray(p.Axis, p.At, generator.WithAlternate(true))
	}
	reg := scanspec.NewRegistry(scanspec.WithGenerator("raster", raster))

	desc, err := scanspec.Parse([]byte("generators:\n  - {type: array, axis: y, points: [0, 1]}\n  - {type: raster, axis: x, at: [5, 6]}\n"))
	require.NoError(t, err)
	c := build(t, desc, reg)
	p, err := c.GetPoint(2)
	require.NoError(t, err)
	require.Equal(t, map[string]float64{"y": 1, "x": 6}, p.Positions)

	// The registry decodes strictly even for types the schema leaves open.
	desc, err = scanspec.Parse([]byte("generators: [{type: raster, axis: x, at: [5], extra: 1}]\n"))
	require.NoError(t, err)
	_, err = scanspec.Build(desc, reg)
	require.ErrorIs(t, err, scanspec.ErrBadComponent)
}

func TestRegistry_OptionPanics(t *testing.T) {
	require.Panics(t, func() { scanspec.WithGenerator("", nil) })
	require.Panics(t, func() { scanspec.WithExcluder("x", nil) })
	require.Panics(t, func() { scanspec.WithMutator("", nil) })
	require.Panics(t, func() { scanspec.WithROI("y", nil) })
}

func TestMarshal_RoundTrip(t *testing.T) {
	for _, name := range []string{"snake.yaml", "circle.yaml"} {
		t.Run(name, func(t *testing.T) {
			desc := load(t, name)
			data, err := scanspec.Marshal(desc)
			require.NoError(t, err)
			again, err := scanspec.Parse(data)
			require.NoError(t, err)
			require.Equal(t, desc, again)

			reg := scanspec.NewRegistry()
			want, got := build(t, desc, reg), build(t, again, reg)
			size, _ := want.Size()
			wantPts, err := want.GetPoints(0, size)
			require.NoError(t, err)
			gotPts, err := got.GetPoints(0, size)
			require.NoError(t, err)
			require.Equal(t, wantPts, gotPts)
		})
	}
}

func TestMarshal_TypeFirst(t *testing.T) {
	data, err := scanspec.Marshal(&scanspec.Description{Generators: []scanspec.Component{{
		Type:   "array",
		Params: map[string]any{"points": []any{1, 2}, "axis": "x"},
	}}})
	require.NoError(t, err)
	text := string(data)
	require.Contains(t, text, "- type: array")
	require.Less(t, strings.Index(text, "type:"), strings.Index(text, "axis:"))
	require.Less(t, strings.Index(text, "axis:"), strings.Index(text, "points:"))
}

func TestRegistry_FailedConstructionReturnsNilInterface(t *testing.T) {
	reg := scanspec.NewRegistry()

	g, err := reg.Generator(scanspec.Component{Type: "line", Params: map[string]any{
		"axes": []any{"x"}, "start": []any{0}, "stop": []any{1}, "size": 0,
	}})
	require.ErrorIs(t, err, generator.ErrBadSize)
	require.True(t, g == nil, "generator is a typed nil: %#v", g)

	r, err := reg.ROI(scanspec.Component{Type: "circular", Params: map[string]any{
		"centre": []any{0, 0}, "radius": -1,
	}})
	require.ErrorIs(t, err, roi.ErrBadParameter)
	require.True(t, r == nil, "roi is a typed nil: %#v", r)

	e, err := reg.Excluder(scanspec.Component{Type: "region", Params: map[string]any{
		"axes": []any{"x", "x"}, "rois": []any{},
	}})
	require.ErrorIs(t, err, excluder.ErrNoRegions)
	require.True(t, e == nil, "excluder is a typed nil: %#v", e)

	m, err := reg.Mutator(scanspec.Component{Type: "fixed_duration", Params: map[string]any{
		"duration": -2,
	}})
	require.ErrorIs(t, err, mutator.ErrBadParameter)
	require.True(t, m == nil, "mutator is a typed nil: %#v", m)
}
