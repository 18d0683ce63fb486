// SPDX-License-Identifier: MIT

package scanspec

import (
	_ "embed"
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
)

//go:embed schema.cue
var schemaSource string

// validate unifies the generic YAML value with #Scan and requires a concrete
// result. A fresh cue.Context is used per call; values of one context are not
// safe for concurrent use.
func validate(doc any) error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile scan schema: %w", err)
	}
	scan := schema.LookupPath(cue.ParsePath("#Scan"))

	value := scan.Unify(ctx.Encode(doc))
	if err := value.Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrSchema, err)
	}

	return nil
}
