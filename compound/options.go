// SPDX-License-Identifier: MIT
// Package: scanpoints/compound
//
// options.go — functional options for New.
//
// Option constructors validate and panic on meaningless input; defaults are
// no duration, continuous motion, zero delay and a discarding logger.

package compound

import (
	"io"
	"log/slog"
	"math"

	"github.com/katalvlaran/scanpoints/point"
)

// Option customizes a Compound at construction time.
type Option func(*config)

type config struct {
	duration   float64
	continuous bool
	delayAfter float64
	logger     *slog.Logger
}

func newConfig(opts ...Option) config {
	cfg := config{
		duration:   point.NoDuration,
		continuous: true,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithDuration sets the exposure time stamped on every point.
// Panics unless d is finite and either positive, zero or point.NoDuration.
func WithDuration(d float64) Option {
	if math.IsNaN(d) || math.IsInf(d, 0) || (d < 0 && d != point.NoDuration) {
		panic("compound: WithDuration(invalid)")
	}
	return func(c *config) {
		c.duration = d
	}
}

// WithContinuous records whether the hardware moves through points without
// stopping.
func WithContinuous(continuous bool) Option {
	return func(c *config) {
		c.continuous = continuous
	}
}

// WithDelayAfter sets the settle time requested after every point.
// Panics on negative or non-finite d.
func WithDelayAfter(d float64) Option {
	if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
		panic("compound: WithDelayAfter(invalid)")
	}
	return func(c *config) {
		c.delayAfter = d
	}
}

// WithLogger routes Prepare diagnostics to l. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("compound: WithLogger(nil)")
	}
	return func(c *config) {
		c.logger = l
	}
}
