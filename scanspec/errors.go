// SPDX-License-Identifier: MIT
// Package: scanpoints/scanspec
//
// errors.go — sentinel errors for the scanspec package.
//
// Decoding failures wrap the underlying yaml or CUE error text after the
// sentinel, so callers branch with errors.Is and still see positions.

package scanspec

import "errors"

var (
	// ErrSyntax indicates a document that is not valid YAML.
	ErrSyntax = errors.New("scanspec: malformed document")

	// ErrSchema indicates a document rejected by the scan schema.
	ErrSchema = errors.New("scanspec: schema violation")

	// ErrUnknownType indicates a component type with no registered factory.
	ErrUnknownType = errors.New("scanspec: unknown component type")

	// ErrBadComponent indicates component parameters a factory cannot use.
	ErrBadComponent = errors.New("scanspec: invalid component parameters")
)
