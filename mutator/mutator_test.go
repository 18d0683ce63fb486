package mutator_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanpoints/mutator"
	"github.com/katalvlaran/scanpoints/point"
)

var (
	_ mutator.BulkMutator = (*mutator.FixedDuration)(nil)
	_ mutator.BulkMutator = (*mutator.RandomOffset)(nil)
	_ mutator.BulkMutator = (*mutator.Rotation)(nil)
)

func samplePoint() point.Point {
	p := point.New()
	p.Positions["x"], p.Positions["y"] = 1, 0
	p.Lower["x"], p.Lower["y"] = 0.5, 0
	p.Upper["x"], p.Upper["y"] = 1.5, 0
	p.Indexes = []int{0}
	return p
}

func TestFixedDuration(t *testing.T) {
	m, err := mutator.NewFixedDuration(0.25)
	require.NoError(t, err)

	in := samplePoint()
	out := m.Mutate(in, 3)
	require.Equal(t, 0.25, out.Duration)
	require.Equal(t, point.NoDuration, in.Duration)

	_, err = mutator.NewFixedDuration(-1)
	require.ErrorIs(t, err, mutator.ErrBadParameter)
}

func TestRandomOffset_DeterministicAndBounded(t *testing.T) {
	m, err := mutator.NewRandomOffset(42, map[string]float64{"x": 0.1})
	require.NoError(t, err)
	again, err := mutator.NewRandomOffset(42, map[string]float64{"x": 0.1})
	require.NoError(t, err)

	distinct := map[float64]struct{}{}
	for i := 0; i < 200; i++ {
		off := m.Offset("x", i)
		require.Equal(t, off, again.Offset("x", i))
		require.GreaterOrEqual(t, off, -0.1)
		require.Less(t, off, 0.1)
		distinct[off] = struct{}{}
	}
	require.Greater(t, len(distinct), 190)
	require.Zero(t, m.Offset("y", 5))

	out := m.Mutate(samplePoint(), 7)
	require.InDelta(t, 1+m.Offset("x", 7), out.Positions["x"], 1e-15)
	require.Equal(t, 0.5, out.Lower["x"])
	require.Equal(t, 0.0, out.Positions["y"])

	_, err = mutator.NewRandomOffset(1, map[string]float64{"x": math.Inf(1)})
	require.ErrorIs(t, err, mutator.ErrBadParameter)
}

func TestRandomOffset_SeedsDiffer(t *testing.T) {
	a, err := mutator.NewRandomOffset(1, map[string]float64{"x": 1})
	require.NoError(t, err)
	b, err := mutator.NewRandomOffset(2, map[string]float64{"x": 1})
	require.NoError(t, err)
	require.NotEqual(t, a.Offset("x", 0), b.Offset("x", 0))
}

func TestRotation_QuarterTurn(t *testing.T) {
	m, err := mutator.NewRotation([2]string{"x", "y"}, [2]float64{0, 0}, 90)
	require.NoError(t, err)

	out := m.Mutate(samplePoint(), 0)
	require.InDelta(t, 0.0, out.Positions["x"], 1e-12)
	require.InDelta(t, 1.0, out.Positions["y"], 1e-12)
	require.InDelta(t, 0.5, out.Lower["y"], 1e-12)
	require.InDelta(t, 1.5, out.Upper["y"], 1e-12)

	_, err = mutator.NewRotation([2]string{"x", "x"}, [2]float64{}, 10)
	require.ErrorIs(t, err, mutator.ErrBadParameter)
}

func TestApplyPoints_MatchesPointwise(t *testing.T) {
	rot, err := mutator.NewRotation([2]string{"x", "y"}, [2]float64{1, 1}, 30)
	require.NoError(t, err)
	jit, err := mutator.NewRandomOffset(9, map[string]float64{"x": 0.2, "y": 0.3})
	require.NoError(t, err)

	ps := point.NewPoints(0, []string{"x", "y"}, []string{"x", "y"})
	for i := 0; i < 4; i++ {
		p := samplePoint()
		p.Positions["x"] = float64(i)
		p.Indexes = []int{i}
		ps.Append(p)
	}
	want := make([]point.Point, ps.Len())
	for i := range want {
		want[i] = jit.Mutate(rot.Mutate(ps.At(i), 10+i), 10+i)
	}

	for _, m := range []mutator.Mutator{rot, jit} {
		mutator.ApplyPoints(m, ps, 10)
	}
	for i := range want {
		got := ps.At(i)
		for _, a := range []string{"x", "y"} {
			require.InDelta(t, want[i].Positions[a], got.Positions[a], 1e-12)
			require.InDelta(t, want[i].Lower[a], got.Lower[a], 1e-12)
		}
	}
}

// pointwiseOnly hides the bulk path.
type pointwiseOnly struct{ mutator.Mutator }

func TestApplyPoints_Fallback(t *testing.T) {
	fd, err := mutator.NewFixedDuration(2)
	require.NoError(t, err)
	ps := point.NewPoints(0, []string{"x"}, nil)
	ps.Append(samplePoint())
	mutator.ApplyPoints(pointwiseOnly{fd}, ps, 0)
	require.Equal(t, []float64{2}, ps.Duration)
}
