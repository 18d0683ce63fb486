// SPDX-License-Identifier: MIT

// Command scanpoints inspects compound scans described in YAML.
//
//	scanpoints info scan.yaml
//	scanpoints points scan.yaml --start 0 --end 10 --format json
//	scanpoints validate scan.yaml
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/scanpoints/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(cli.GetExitCode(err))
	}
}
