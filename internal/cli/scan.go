// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/scanpoints/compound"
	"github.com/katalvlaran/scanpoints/scanspec"
)

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
}

// newLogger returns the stderr logger handed to the compound scan; --verbose
// lowers its level to Debug so preparation steps become visible.
func newLogger(opts *RootOptions, w io.Writer) *slog.Logger {
	level := slog.LevelInfo
	if opts.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// loadScan reads, builds and prepares the scan described at path. Failures
// are written through f and returned as an *ExitError.
func loadScan(opts *RootOptions, path string, cmd *cobra.Command, f *OutputFormatter) (*compound.Compound, error) {
	logger := newLogger(opts, cmd.ErrOrStderr())
	logger.Debug("loading scan description", "path", path)

	desc, err := scanspec.Load(path)
	if err != nil {
		if errors.Is(err, scanspec.ErrSyntax) || errors.Is(err, scanspec.ErrSchema) {
			return nil, fail(f, ErrCodeDescription, ExitCommandError, "invalid description", err)
		}
		return nil, fail(f, ErrCodeNotFound, ExitCommandError, "cannot read description", err)
	}

	c, err := scanspec.Build(desc, scanspec.NewRegistry(), compound.WithLogger(logger))
	if err != nil {
		if errors.Is(err, scanspec.ErrUnknownType) || errors.Is(err, scanspec.ErrBadComponent) || errors.Is(err, scanspec.ErrSchema) {
			return nil, fail(f, ErrCodeDescription, ExitCommandError, "invalid description", err)
		}
		return nil, fail(f, ErrCodeScan, ExitFailure, "invalid scan", err)
	}
	if err := c.Prepare(); err != nil {
		return nil, fail(f, ErrCodeScan, ExitFailure, "invalid scan", err)
	}

	return c, nil
}

// fail reports err through f and returns the matching ExitError.
func fail(f *OutputFormatter, code string, exit int, message string, err error) error {
	if outErr := f.Error(code, fmt.Sprintf("%s: %v", message, err)); outErr != nil {
		return outErr
	}
	return WrapExitError(exit, fmt.Sprintf("%s %s", code, message), err)
}
