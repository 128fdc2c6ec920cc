package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stratton-cologne/srm/internal/config"
	oerrors "github.com/stratton-cologne/srm/internal/errors"
	"github.com/stratton-cologne/srm/internal/fsutil"
	"github.com/stratton-cologne/srm/internal/output"
)

var configInitForce bool

// NewConfigInitCmd creates the config init command.
func NewConfigInitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize default configuration",
		Long: `Initialize the srm CLI configuration.

Writes a YAML config file with the default host, modules directory,
packages directory and log settings. The file location follows
--config > SRM_CONFIG > ~/.srm/config.yaml.

Examples:
  # Initialize configuration
  srm config init

  # Overwrite existing configuration
  srm config init --force`,
		Args: cobra.NoArgs,
		RunE: runConfigInit,
	}

	cmd.Flags().BoolVarP(&configInitForce, "force", "f", false,
		"Overwrite existing configuration")

	return cmd
}

func runConfigInit(cmd *cobra.Command, args []string) error {
	configPath, err := config.ExpandPath(GetConfigPath())
	if err != nil {
		return oerrors.Wrap(oerrors.ErrNotFound, "could not determine home directory")
	}
	if configPath == "" {
		return oerrors.NewNotFoundError(
			"no config path could be resolved", "",
			"Set --config or SRM_CONFIG when no home directory is available")
	}

	exists, err := fsutil.Exists(configPath)
	if err != nil {
		return fmt.Errorf("checking %s: %w", configPath, err)
	}
	if exists && !configInitForce {
		return &oerrors.DetailError{
			Type:     "validation failed",
			Message:  "configuration already exists",
			Location: configPath,
			Hint:     "Use --force to overwrite existing configuration.",
			Cause:    oerrors.ErrValidation,
		}
	}

	if err := config.Write(configPath, config.DefaultConfig()); err != nil {
		return oerrors.NewPermissionError(
			"could not write configuration",
			map[string]string{"Path": configPath, "Cause": err.Error()},
			"Check that the config directory is writable or pass --config.")
	}

	output.Info("configuration initialized", "path", configPath)
	fmt.Fprintln(cmd.OutOrStdout(), output.FormatCheckmark("Configuration written to "+configPath))
	fmt.Fprintln(cmd.OutOrStdout(), "Validate with: srm config vet")
	return nil
}
