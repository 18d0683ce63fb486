// SPDX-License-Identifier: MIT

package generator

// defaultUnits is applied to every axis when WithUnits is not given.
const defaultUnits = "mm"

// Option customizes a generator at construction time.
type Option func(*config)

type config struct {
	units     []string
	alternate bool
}

func newConfig(opts ...Option) config {
	cfg := config{}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithUnits sets axis units: one value for all axes, or one per axis.
// Panics when called with no units.
func WithUnits(units ...string) Option {
	if len(units) == 0 {
		panic("generator: WithUnits()")
	}
	u := append([]string(nil), units...)
	return func(c *config) {
		c.units = u
	}
}

// WithAlternate makes the generator reverse direction on every other pass
// when nested inside an outer generator.
func WithAlternate(alternate bool) Option {
	return func(c *config) {
		c.alternate = alternate
	}
}
