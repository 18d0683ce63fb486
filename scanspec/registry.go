// SPDX-License-Identifier: MIT

package scanspec

import (
	"fmt"

	"github.com/katalvlaran/scanpoints/excluder"
	"github.com/katalvlaran/scanpoints/generator"
	"github.com/katalvlaran/scanpoints/mutator"
	"github.com/katalvlaran/scanpoints/roi"
)

// Factories turn a Component into a live object. The registry is passed in
// so composite components (a region's ROIs) can resolve their children.
type (
	GeneratorFactory func(reg *Registry, c Component) (generator.Generator, error)
	ExcluderFactory  func(reg *Registry, c Component) (excluder.Excluder, error)
	MutatorFactory   func(reg *Registry, c Component) (mutator.Mutator, error)
	ROIFactory       func(reg *Registry, c Component) (roi.ROI, error)
)

// Registry maps component types to factories. It is immutable once
// NewRegistry returns and safe for concurrent use.
type Registry struct {
	generators map[string]GeneratorFactory
	excluders  map[string]ExcluderFactory
	mutators   map[string]MutatorFactory
	rois       map[string]ROIFactory
}

// RegistryOption adds or replaces a factory.
type RegistryOption func(*Registry)

// WithGenerator registers f for generator type kind. Panics on an empty kind
// or nil factory.
func WithGenerator(kind string, f GeneratorFactory) RegistryOption {
	mustRegister("WithGenerator", kind, f == nil)
	return func(r *Registry) { r.generators[kind] = f }
}

// WithExcluder registers f for excluder type kind.
func WithExcluder(kind string, f ExcluderFactory) RegistryOption {
	mustRegister("WithExcluder", kind, f == nil)
	return func(r *Registry) { r.excluders[kind] = f }
}

// WithMutator registers f for mutator type kind.
func WithMutator(kind string, f MutatorFactory) RegistryOption {
	mustRegister("WithMutator", kind, f == nil)
	return func(r *Registry) { r.mutators[kind] = f }
}

// WithROI registers f for ROI type kind.
func WithROI(kind string, f ROIFactory) RegistryOption {
	mustRegister("WithROI", kind, f == nil)
	return func(r *Registry) { r.rois[kind] = f }
}

func mustRegister(option, kind string, nilFactory bool) {
	if kind == "" || nilFactory {
		panic(fmt.Sprintf("scanspec: %s(%q, nil=%t)", option, kind, nilFactory))
	}
}

// NewRegistry returns the built-in factories plus opts, applied in order.
func NewRegistry(opts ...RegistryOption) *Registry {
	r := &Registry{
		generators: map[string]GeneratorFactory{
			"line":      newLine,
			"array":     newArray,
			"spiral":    newSpiral,
			"lissajous": newLissajous,
		},
		excluders: map[string]ExcluderFactory{
			"region": newRegion,
		},
		mutators: map[string]MutatorFactory{
			"fixed_duration": newFixedDuration,
			"random_offset":  newRandomOffset,
			"rotation":       newRotation,
		},
		rois: map[string]ROIFactory{
			"circular":    newCircular,
			"rectangular": newRectangular,
			"elliptical":  newElliptical,
			"polygonal":   newPolygonal,
		},
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Generator builds the generator described by c.
func (r *Registry) Generator(c Component) (generator.Generator, error) {
	f, ok := r.generators[c.Type]
	if !ok {
		return nil, fmt.Errorf("generator %q: %w", c.Type, ErrUnknownType)
	}
	return f(r, c)
}

// Excluder builds the excluder described by c.
func (r *Registry) Excluder(c Component) (excluder.Excluder, error) {
	f, ok := r.excluders[c.Type]
	if !ok {
		return nil, fmt.Errorf("excluder %q: %w", c.Type, ErrUnknownType)
	}
	return f(r, c)
}

// Mutator builds the mutator described by c.
func (r *Registry) Mutator(c Component) (mutator.Mutator, error) {
	f, ok := r.mutators[c.Type]
	if !ok {
		return nil, fmt.Errorf("mutator %q: %w", c.Type, ErrUnknownType)
	}
	return f(r, c)
}

// ROI builds the region described by c.
func (r *Registry) ROI(c Component) (roi.ROI, error) {
	f, ok := r.rois[c.Type]
	if !ok {
		return nil, fmt.Errorf("roi %q: %w", c.Type, ErrUnknownType)
	}
	return f(r, c)
}
