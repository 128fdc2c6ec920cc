package cmd

import (
	"github.com/spf13/cobra"

	"github.com/stratton-cologne/srm/internal/version"
)

// NewVersionCmd creates the version command.
func NewVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Show srm CLI version information.

Displays:
  - srm version, commit, and build date
  - Go version and CUE SDK version`,
		Args: cobra.NoArgs,
		RunE: runVersion,
	}
}

func runVersion(cmd *cobra.Command, args []string) error {
	return writeResult(cmd, version.GetInfo())
}
