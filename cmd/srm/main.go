// Package main is the entry point for the srm CLI.
package main

import (
	"fmt"
	"os"

	"github.com/stratton-cologne/srm/internal/cmd"
	"github.com/stratton-cologne/srm/internal/output"
)

func main() {
	rootCmd := cmd.NewRootCmd()

	if err := rootCmd.Execute(); err != nil {
		code := cmd.ExitCodeFromError(err)
		fmt.Fprintln(os.Stderr, err)
		output.Debug("command failed", "code", code, "reason", cmd.ExitCodeName(code))
		os.Exit(code)
	}
}
