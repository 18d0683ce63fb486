// SPDX-License-Identifier: MIT

// Package scanspec reads and writes YAML scan descriptions and rebuilds
// compound scans from them.
//
// A description lists generators (outer to inner), excluders and mutators as
// tagged components:
//
//	generators:
//	  - type: line
//	    axes: [y]
//	    start: [0]
//	    stop: [1]
//	    size: 2
//	  - type: line
//	    axes: [x]
//	    start: [0]
//	    stop: [2]
//	    size: 3
//	    alternate: true
//	excluders:
//	  - type: region
//	    axes: [x, y]
//	    rois:
//	      - type: circular
//	        centre: [1, 0.5]
//	        radius: 1
//	duration: 0.1
//
// Parse checks the document against an embedded CUE schema (closed envelope,
// typed built-in components) and then decodes it with unknown fields
// rejected. Build turns the components into live objects through a Registry:
// an explicit, immutable map from type tag to factory. Extra component types
// are added with NewRegistry options, never through package state.
//
// A component tagged "compound" in the generator list is rejected with
// compound.ErrNestedCompound.
package scanspec
