// SPDX-License-Identifier: MIT

// Package errcat holds the error categories shared by dimension and
// compound. Every sentinel of those packages unwraps to exactly one category,
// so callers can branch either on the precise sentinel or on its class:
//
//	errors.Is(err, compound.ErrEmptySelection) // precise
//	errors.Is(err, compound.ErrConfiguration)  // class
package errcat

import "errors"

var (
	// Configuration covers invalid scan composition.
	Configuration = errors.New("scanpoints: configuration error")
	// State covers queries issued before preparation.
	State = errors.New("scanpoints: state error")
	// Index covers out-of-range point indices.
	Index = errors.New("scanpoints: index error")
	// Internal covers inconsistent mask algebra; never expected from valid input.
	Internal = errors.New("scanpoints: internal consistency error")
)

// categorized is a sentinel that also matches its category.
type categorized struct {
	msg      string
	category error
}

func (e *categorized) Error() string { return e.msg }
func (e *categorized) Unwrap() error { return e.category }

// New returns a sentinel with message msg belonging to category.
func New(category error, msg string) error {
	return &categorized{msg: msg, category: category}
}
