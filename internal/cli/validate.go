// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// ValidationResult is the payload of a successful validate.
type ValidationResult struct {
	Valid bool `json:"valid"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <scan.yaml>",
		Short: "Check a scan description",
		Long: `Check a scan description against the schema, build the scan and
prepare it. Prints "ok" when every step succeeds.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runValidate(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)
	if _, err := loadScan(opts, path, cmd, f); err != nil {
		return err
	}
	return f.Success(&ValidationResult{Valid: true})
}

func (r *ValidationResult) writeText(w io.Writer) error {
	_, err := fmt.Fprintln(w, "ok")
	return err
}
