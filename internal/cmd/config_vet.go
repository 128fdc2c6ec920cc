package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stratton-cologne/srm/internal/config"
	oerrors "github.com/stratton-cologne/srm/internal/errors"
	"github.com/stratton-cologne/srm/internal/fsutil"
	"github.com/stratton-cologne/srm/internal/output"
)

// NewConfigVetCmd creates the config vet command.
func NewConfigVetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vet",
		Short: "Validate configuration",
		Long: `Validate the srm CLI configuration file.

Checks performed:
  1. Config file exists at resolved path
  2. Config file is valid YAML
  3. Keys and value types match the configuration schema

The config path is resolved using precedence:
  --config flag > SRM_CONFIG env > ~/.srm/config.yaml

Examples:
  # Validate default configuration
  srm config vet

  # Validate custom config path
  srm config vet --config /path/to/config.yaml`,
		Args: cobra.NoArgs,
		RunE: runConfigVet,
	}

	return cmd
}

func runConfigVet(cmd *cobra.Command, args []string) error {
	configPath, err := config.ExpandPath(GetConfigPath())
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not resolve config path")
	}
	if configPath == "" {
		return oerrors.NewNotFoundError(
			"no config path could be resolved", "",
			"Set --config or SRM_CONFIG when no home directory is available")
	}

	output.Debug("validating config", "path", configPath)

	// Check 1: Config file exists
	exists, err := fsutil.IsFile(configPath)
	if err != nil {
		return fmt.Errorf("checking %s: %w", configPath, err)
	}
	if !exists {
		return oerrors.NewNotFoundError(
			"configuration file not found", configPath,
			"Run 'srm config init' to create default configuration")
	}

	// Checks 2 and 3: parse and schema validation
	validator, err := config.NewValidator()
	if err != nil {
		return err
	}
	if err := validator.ValidateFile(configPath); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Configuration is valid: "+configPath))
	return nil
}
