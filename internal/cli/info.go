// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scanpoints/point"
)

// InfoResult summarizes a prepared scan.
type InfoResult struct {
	Size       int               `json:"size"`
	Shape      []int             `json:"shape"`
	Axes       []string          `json:"axes"`
	Units      map[string]string `json:"units"`
	Duration   float64           `json:"duration"`
	Continuous bool              `json:"continuous"`
	DelayAfter float64           `json:"delay_after"`
}

// NewInfoCommand creates the info command.
func NewInfoCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:           "info <scan.yaml>",
		Short:         "Summarize a scan",
		Long:          `Print the size, shape, axes, units and timing settings of a scan.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(rootOpts, args[0], cmd)
		},
	}

	return cmd
}

func runInfo(opts *RootOptions, path string, cmd *cobra.Command) error {
	f := newFormatter(opts, cmd)
	c, err := loadScan(opts, path, cmd, f)
	if err != nil {
		return err
	}

	// Prepare succeeded, so neither query can fail.
	size, _ := c.Size()
	shape, _ := c.Shape()

	return f.Success(&InfoResult{
		Size:       size,
		Shape:      shape,
		Axes:       c.Axes(),
		Units:      c.Units(),
		Duration:   c.Duration(),
		Continuous: c.Continuous(),
		DelayAfter: c.DelayAfter(),
	})
}

func (r *InfoResult) writeText(w io.Writer) error {
	units := make([]string, len(r.Axes))
	for i, axis := range r.Axes {
		units[i] = axis + "=" + r.Units[axis]
	}
	duration := "none"
	if r.Duration != point.NoDuration {
		duration = fmt.Sprintf("%g", r.Duration)
	}

	_, err := fmt.Fprintf(w, "size: %d\nshape: %v\naxes: %s\nunits: %s\nduration: %s\ncontinuous: %t\ndelay_after: %g\n",
		r.Size, r.Shape, strings.Join(r.Axes, " "), strings.Join(units, " "), duration, r.Continuous, r.DelayAfter)
	return err
}
