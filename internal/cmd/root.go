// Package cmd provides CLI command implementations.
package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/stratton-cologne/srm/internal/config"
	"github.com/stratton-cologne/srm/internal/output"
)

var (
	// Global flags
	hostFlag         string
	modulesDirFlag   string
	packagesDirFlag  string
	configFlag       string
	outputFormatFlag string
	verboseFlag      bool
	timestampsFlag   bool

	// Loaded and resolved configuration (set during PersistentPreRunE)
	srmConfig      *config.Config
	resolvedConfig *config.ResolvedConfig
)

// NewRootCmd creates the root command for the srm CLI.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "srm",
		Short: "Remote module manager",
		Long: `srm manages the remote modules of a host application.

It publishes built module packages into the host's public modules
directory, keeps the aggregate index.json in sync and scaffolds new
modules from templates.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initializeGlobals(cmd)
		},
	}

	rootCmd.PersistentFlags().StringVar(&hostFlag, "host", "", `Host project root (env: SRM_HOST, default ".")`)
	rootCmd.PersistentFlags().StringVar(&modulesDirFlag, "modules-dir", "", `Published modules directory relative to host (env: SRM_MODULES_DIR, default "public/modules")`)
	rootCmd.PersistentFlags().StringVar(&packagesDirFlag, "packages-dir", "", `Installed packages directory relative to host (env: SRM_PACKAGES_DIR, default "node_modules")`)
	rootCmd.PersistentFlags().StringVar(&configFlag, "config", "", "Path to config file (env: SRM_CONFIG)")
	rootCmd.PersistentFlags().StringVarP(&outputFormatFlag, "output", "o", "json", "Output format: "+strings.Join(output.ValidFormats(), ", "))
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&timestampsFlag, "timestamps", true, "Show timestamps in log output")

	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewPublishCmd())
	rootCmd.AddCommand(NewScaffoldCmd())
	rootCmd.AddCommand(NewDiffCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// initializeGlobals sets up logging and loads configuration.
func initializeGlobals(cmd *cobra.Command) error {
	// Load configuration first so we can use config values for logging setup
	loadedConfig, err := config.NewLoader().Load(configFlag)
	if err != nil {
		output.Debug("config load error", "error", err)
		// Don't fail here - commands work without a config file
	}
	srmConfig = loadedConfig

	resolvedConfig = config.ResolveAll(config.ResolveOptions{
		HostFlag:        hostFlag,
		ModulesDirFlag:  modulesDirFlag,
		PackagesDirFlag: packagesDirFlag,
		ConfigFlag:      configFlag,
		Config:          srmConfig,
	})

	// Timestamps: flag (if explicitly set) > config > default (nil = true)
	logCfg := output.LogConfig{
		Verbose: verboseFlag,
	}
	if cmd.Flags().Changed("timestamps") {
		logCfg.Timestamps = output.BoolPtr(timestampsFlag)
	} else if srmConfig != nil && srmConfig.Log.Timestamps != nil {
		logCfg.Timestamps = srmConfig.Log.Timestamps
	}

	output.SetupLogging(logCfg)

	if _, ok := output.ParseFormat(outputFormatFlag); !ok {
		output.Warn("unknown output format, using json",
			"format", outputFormatFlag,
			"valid", strings.Join(output.ValidFormats(), ", "))
		outputFormatFlag = string(output.FormatJSON)
	}
	config.LogResolvedValues(resolvedConfig.Values())

	return nil
}

// GetHost returns the resolved host directory.
func GetHost() string {
	if resolvedConfig != nil {
		return resolvedConfig.Host.Value
	}
	if hostFlag != "" {
		return hostFlag
	}
	return config.DefaultHost
}

// GetModulesDir returns the resolved modules directory.
func GetModulesDir() string {
	if resolvedConfig != nil {
		return resolvedConfig.ModulesDir.Value
	}
	return modulesDirFlag
}

// GetPackagesDir returns the resolved packages directory.
func GetPackagesDir() string {
	if resolvedConfig != nil {
		return resolvedConfig.PackagesDir.Value
	}
	return packagesDirFlag
}

// GetConfigPath returns the resolved config path value.
func GetConfigPath() string {
	if resolvedConfig != nil {
		return resolvedConfig.ConfigPath.Value
	}
	return configFlag
}

// GetOutputFormat returns the requested output format.
func GetOutputFormat() output.Format {
	f, _ := output.ParseFormat(outputFormatFlag)
	return f
}

// writeResult prints a command result to the command's stdout.
func writeResult(cmd *cobra.Command, v interface{}) error {
	return output.WriteResult(cmd.OutOrStdout(), GetOutputFormat(), v)
}
