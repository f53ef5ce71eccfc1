// Package main provides the themeflat CLI.
package main

import (
	"os"

	"github.com/stackbound/themeflat/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
