// SPDX-License-Identifier: MIT

package excluder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/scanpoints/roi"
)

var (
	// ErrBadAxes indicates empty axis names.
	ErrBadAxes = errors.New("excluder: two non-empty axis names are required")

	// ErrNoRegions indicates a Region built without any ROI.
	ErrNoRegions = errors.New("excluder: at least one region is required")

	// ErrLengthMismatch indicates coordinate slices of different lengths.
	ErrLengthMismatch = errors.New("excluder: coordinate length mismatch")
)

// Excluder filters combinations of two axes.
type Excluder interface {
	// Axes returns the axis pair, in the order CreateMask expects them.
	Axes() [2]string
	// CreateMask returns, per index, whether (a[i], b[i]) is kept.
	CreateMask(a, b []float64) ([]bool, error)
}

// Region keeps points lying inside any of its ROIs.
type Region struct {
	axes [2]string
	rois []roi.ROI
}

// NewRegion builds a Region excluder over axes.
func NewRegion(axes [2]string, rois ...roi.ROI) (*Region, error) {
	if axes[0] == "" || axes[1] == "" {
		return nil, fmt.Errorf("Region: axes=%q: %w", axes, ErrBadAxes)
	}
	if len(rois) == 0 {
		return nil, fmt.Errorf("Region: %w", ErrNoRegions)
	}

	return &Region{axes: axes, rois: append([]roi.ROI(nil), rois...)}, nil
}

// Axes returns the axis pair.
func (r *Region) Axes() [2]string { return r.axes }

// ROIs returns the regions in registration order.
func (r *Region) ROIs() []roi.ROI { return append([]roi.ROI(nil), r.rois...) }

// CreateMask ORs the masks of every ROI.
func (r *Region) CreateMask(a, b []float64) ([]bool, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("Region: %d vs %d: %w", len(a), len(b), ErrLengthMismatch)
	}
	out := make([]bool, len(a))
	for _, region := range r.rois {
		for i, in := range region.Mask(a, b) {
			out[i] = out[i] || in
		}
	}

	return out, nil
}
