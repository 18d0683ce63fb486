// SPDX-License-Identifier: MIT

package scanspec

import (
	"fmt"
	"math"

	"github.com/katalvlaran/scanpoints/compound"
	"github.com/katalvlaran/scanpoints/excluder"
	"github.com/katalvlaran/scanpoints/generator"
	"github.com/katalvlaran/scanpoints/mutator"
	"github.com/katalvlaran/scanpoints/point"
)

// compoundType is the tag of a serialized compound scan. It is never a valid
// generator.
const compoundType = "compound"

// Build reconstructs the compound scan described by desc using reg. The
// document's duration, continuous and delay_after settings come first, so
// opts may override them. The result is not prepared.
//
// Errors: compound.ErrNestedCompound, ErrUnknownType, ErrBadComponent, any
// constructor error, and compound.New errors.
func Build(desc *Description, reg *Registry, opts ...compound.Option) (*compound.Compound, error) {
	gens := make([]generator.Generator, 0, len(desc.Generators))
	for i, c := range desc.Generators {
		if c.Type == compoundType {
			return nil, fmt.Errorf("generators[%d]: %w", i, compound.ErrNestedCompound)
		}
		g, err := reg.Generator(c)
		if err != nil {
			return nil, fmt.Errorf("generators[%d]: %w", i, err)
		}
		gens = append(gens, g)
	}

	excs := make([]excluder.Excluder, 0, len(desc.Excluders))
	for i, c := range desc.Excluders {
		e, err := reg.Excluder(c)
		if err != nil {
			return nil, fmt.Errorf("excluders[%d]: %w", i, err)
		}
		excs = append(excs, e)
	}

	muts := make([]mutator.Mutator, 0, len(desc.Mutators))
	for i, c := range desc.Mutators {
		m, err := reg.Mutator(c)
		if err != nil {
			return nil, fmt.Errorf("mutators[%d]: %w", i, err)
		}
		muts = append(muts, m)
	}

	// A hand-built Description has not been through the schema, and the
	// option constructors panic on bad values.
	if d := desc.Duration; d != nil && !validDuration(*d) {
		return nil, fmt.Errorf("duration %v: %w", *d, ErrSchema)
	}
	if !validDuration(desc.DelayAfter) || desc.DelayAfter < 0 {
		return nil, fmt.Errorf("delay_after %v: %w", desc.DelayAfter, ErrSchema)
	}

	all := make([]compound.Option, 0, len(opts)+3)
	if desc.Duration != nil {
		all = append(all, compound.WithDuration(*desc.Duration))
	}
	if desc.Continuous != nil {
		all = append(all, compound.WithContinuous(*desc.Continuous))
	}
	all = append(all, compound.WithDelayAfter(desc.DelayAfter))
	all = append(all, opts...)

	return compound.New(gens, excs, muts, all...)
}

func validDuration(d float64) bool {
	return d == point.NoDuration || (d >= 0 && !math.IsInf(d, 1))
}
