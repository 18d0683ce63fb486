// SPDX-License-Identifier: MIT

package roi

import "errors"

var (
	// ErrBadParameter indicates a non-finite or non-positive geometric parameter.
	ErrBadParameter = errors.New("roi: invalid parameter")

	// ErrTooFewVertices indicates a polygon with fewer than three vertices or
	// mismatched coordinate slices.
	ErrTooFewVertices = errors.New("roi: polygon needs at least three vertices")
)
