// SPDX-License-Identifier: MIT

package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scanpoints/point"
)

// PointsOptions holds flags for the points command.
type PointsOptions struct {
	*RootOptions
	Start int
	End   int
}

// PointView is the JSON form of one scan point.
type PointView struct {
	Index      int                `json:"index"`
	Positions  map[string]float64 `json:"positions"`
	Lower      map[string]float64 `json:"lower,omitempty"`
	Upper      map[string]float64 `json:"upper,omitempty"`
	Indexes    []int              `json:"indexes"`
	Duration   float64            `json:"duration"`
	DelayAfter float64            `json:"delay_after"`
}

// PointsResult is the payload of the points command.
type PointsResult struct {
	Points []PointView `json:"points"`

	axes []string
}

// NewPointsCommand creates the points command.
func NewPointsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PointsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "points <scan.yaml>",
		Short: "Print the points of a scan",
		Long: `Print the points of a scan in order, optionally restricted to the
half-open range [start, end).

Example:
  scanpoints points grid.yaml
  scanpoints points grid.yaml --start 100 --end 200 --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPoints(opts, args[0], cmd)
		},
	}

	cmd.Flags().IntVar(&opts.Start, "start", 0, "first point index")
	cmd.Flags().IntVar(&opts.End, "end", -1, "end point index, exclusive (default: scan size)")

	return cmd
}

func runPoints(opts *PointsOptions, path string, cmd *cobra.Command) error {
	f := newFormatter(opts.RootOptions, cmd)
	c, err := loadScan(opts.RootOptions, path, cmd, f)
	if err != nil {
		return err
	}

	result := &PointsResult{axes: c.Axes()}
	if opts.Start == 0 && opts.End < 0 {
		seq, err := c.Iterator()
		if err != nil {
			return fail(f, ErrCodeScan, ExitFailure, "iterate scan", err)
		}
		n := 0
		for p := range seq {
			result.Points = append(result.Points, newPointView(n, p))
			n++
		}
		return f.Success(result)
	}

	end := opts.End
	if end < 0 {
		end, _ = c.Size()
	}
	ps, err := c.GetPoints(opts.Start, end)
	if err != nil {
		return fail(f, ErrCodeRange, ExitCommandError, "select points", err)
	}
	result.Points = make([]PointView, 0, ps.Len())
	for i := 0; i < ps.Len(); i++ {
		result.Points = append(result.Points, newPointView(opts.Start+i, ps.At(i)))
	}

	return f.Success(result)
}

func newPointView(n int, p point.Point) PointView {
	v := PointView{
		Index:      n,
		Positions:  p.Positions,
		Indexes:    p.Indexes,
		Duration:   p.Duration,
		DelayAfter: p.DelayAfter,
	}
	if len(p.Lower) > 0 {
		v.Lower, v.Upper = p.Lower, p.Upper
	}
	return v
}

// writeText prints one line per point: index, positions in axis order,
// generator indexes and the duration when one is set.
func (r *PointsResult) writeText(w io.Writer) error {
	var b strings.Builder
	for _, p := range r.Points {
		b.Reset()
		fmt.Fprintf(&b, "%d", p.Index)
		for _, axis := range r.axes {
			fmt.Fprintf(&b, " %s=%g", axis, p.Positions[axis])
		}
		fmt.Fprintf(&b, " idx=%v", p.Indexes)
		if p.Duration != point.NoDuration {
			fmt.Fprintf(&b, " duration=%g", p.Duration)
		}
		b.WriteByte('\n')
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
	}
	return nil
}
