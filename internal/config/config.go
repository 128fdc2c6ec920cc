// Package config provides configuration loading and management.
package config

import (
	"github.com/stratton-cologne/srm/internal/manifest"
	"github.com/stratton-cologne/srm/internal/publish"
)

// DefaultHost is the host project root used when nothing else is set.
const DefaultHost = "."

// LogConfig contains logging-related settings.
type LogConfig struct {
	// Timestamps controls whether timestamps are shown in log output.
	// Default: true. Override with --timestamps flag.
	Timestamps *bool `mapstructure:"timestamps" json:"timestamps,omitempty" yaml:"timestamps,omitempty"`
}

// Config represents the srm CLI configuration.
// Loaded from ~/.srm/config.yaml, validated against the embedded CUE schema.
type Config struct {
	// Host is the host project root.
	// Env: SRM_HOST, Default: "."
	Host string `mapstructure:"host" json:"host,omitempty" yaml:"host,omitempty"`

	// ModulesDir is the published modules directory, relative to Host.
	// Env: SRM_MODULES_DIR, Default: "public/modules"
	ModulesDir string `mapstructure:"modulesDir" json:"modulesDir,omitempty" yaml:"modulesDir,omitempty"`

	// PackagesDir is the installed packages directory, relative to Host.
	// Env: SRM_PACKAGES_DIR, Default: "node_modules"
	PackagesDir string `mapstructure:"packagesDir" json:"packagesDir,omitempty" yaml:"packagesDir,omitempty"`

	// Log contains logging-related settings.
	Log LogConfig `mapstructure:"log" json:"log,omitempty" yaml:"log,omitempty"`
}

// DefaultConfig returns a Config with all default values populated.
// Used by `srm config init` to generate the initial config file.
func DefaultConfig() *Config {
	timestamps := true
	return &Config{
		Host:        DefaultHost,
		ModulesDir:  manifest.DefaultModulesDir,
		PackagesDir: publish.DefaultPackagesDir,
		Log:         LogConfig{Timestamps: &timestamps},
	}
}
