package excluder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/scanpoints/excluder"
	"github.com/katalvlaran/scanpoints/roi"
)

var _ excluder.Excluder = (*excluder.Region)(nil)

func TestRegion_Union(t *testing.T) {
	left, err := roi.NewCircular([2]float64{-2, 0}, 1)
	require.NoError(t, err)
	right, err := roi.NewCircular([2]float64{2, 0}, 1)
	require.NoError(t, err)

	r, err := excluder.NewRegion([2]string{"x", "y"}, left, right)
	require.NoError(t, err)
	require.Equal(t, [2]string{"x", "y"}, r.Axes())
	require.Len(t, r.ROIs(), 2)

	mask, err := r.CreateMask([]float64{-2, 0, 2.5}, []float64{0, 0, 0.5})
	require.NoError(t, err)
	require.Equal(t, []bool{true, false, true}, mask)
}

func TestRegion_Errors(t *testing.T) {
	c, err := roi.NewCircular([2]float64{}, 1)
	require.NoError(t, err)

	_, err = excluder.NewRegion([2]string{"x", ""}, c)
	require.ErrorIs(t, err, excluder.ErrBadAxes)
	_, err = excluder.NewRegion([2]string{"x", "y"})
	require.ErrorIs(t, err, excluder.ErrNoRegions)

	r, err := excluder.NewRegion([2]string{"x", "y"}, c)
	require.NoError(t, err)
	_, err = r.CreateMask([]float64{1}, nil)
	require.ErrorIs(t, err, excluder.ErrLengthMismatch)
}
