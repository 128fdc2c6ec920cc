package config

import (
	"os"

	"github.com/stratton-cologne/srm/internal/manifest"
	"github.com/stratton-cologne/srm/internal/output"
	"github.com/stratton-cologne/srm/internal/publish"
)

// ConfigSource indicates where a configuration value came from.
type ConfigSource string

const (
	// SourceFlag indicates value came from command-line flag.
	SourceFlag ConfigSource = "flag"
	// SourceEnv indicates value came from environment variable.
	SourceEnv ConfigSource = "env"
	// SourceConfig indicates value came from config file.
	SourceConfig ConfigSource = "config"
	// SourceDefault indicates value is the built-in default.
	SourceDefault ConfigSource = "default"
)

// Environment variables for resolvable values.
const (
	EnvHost        = "SRM_HOST"
	EnvModulesDir  = "SRM_MODULES_DIR"
	EnvPackagesDir = "SRM_PACKAGES_DIR"
)

// ResolvedValue is a configuration value with its provenance.
type ResolvedValue struct {
	// Key is the configuration key.
	Key string
	// Value is the winning value.
	Value string
	// Source indicates where the value came from.
	Source ConfigSource
	// Shadowed contains values that were overridden by higher precedence.
	Shadowed map[ConfigSource]string
}

// ResolveOptions holds the raw inputs for resolution.
type ResolveOptions struct {
	// HostFlag is the --host flag value (empty if not set).
	HostFlag string
	// ModulesDirFlag is the --modules-dir flag value (empty if not set).
	ModulesDirFlag string
	// PackagesDirFlag is the --packages-dir flag value (empty if not set).
	PackagesDirFlag string
	// ConfigFlag is the --config flag value (empty if not set).
	ConfigFlag string
	// Config is the loaded config file, may be nil.
	Config *Config
}

// ResolvedConfig holds every resolved value.
type ResolvedConfig struct {
	ConfigPath  ResolvedValue
	Host        ResolvedValue
	ModulesDir  ResolvedValue
	PackagesDir ResolvedValue
}

// Values returns the resolved values in a stable order.
func (r *ResolvedConfig) Values() []ResolvedValue {
	return []ResolvedValue{r.ConfigPath, r.Host, r.ModulesDir, r.PackagesDir}
}

// ResolveConfigPath resolves the config file path using precedence:
// (1) --config flag, (2) SRM_CONFIG env, (3) ~/.srm/config.yaml default.
// Without a home directory there is no default and the value may be empty.
func ResolveConfigPath(flagValue string) ResolvedValue {
	var defaultPath string
	if paths, err := DefaultPaths(); err != nil {
		output.Debug("no default config path", "error", err)
	} else {
		defaultPath = paths.ConfigFile
	}
	return resolve("config", flagValue, os.Getenv(envConfig), "", defaultPath)
}

// ResolveAll resolves every value using precedence flag > env > config > default.
func ResolveAll(opts ResolveOptions) *ResolvedConfig {
	configPath := ResolveConfigPath(opts.ConfigFlag)

	cfg := opts.Config
	if cfg == nil {
		cfg = &Config{}
	}

	return &ResolvedConfig{
		ConfigPath:  configPath,
		Host:        resolve("host", opts.HostFlag, os.Getenv(EnvHost), cfg.Host, DefaultHost),
		ModulesDir:  resolve("modulesDir", opts.ModulesDirFlag, os.Getenv(EnvModulesDir), cfg.ModulesDir, manifest.DefaultModulesDir),
		PackagesDir: resolve("packagesDir", opts.PackagesDirFlag, os.Getenv(EnvPackagesDir), cfg.PackagesDir, publish.DefaultPackagesDir),
	}
}

// resolve picks the first non-empty value of flag, env, config and default,
// recording every lower-precedence value that was set.
func resolve(key, flagValue, envValue, configValue, defaultValue string) ResolvedValue {
	result := ResolvedValue{Key: key, Shadowed: make(map[ConfigSource]string)}

	candidates := []struct {
		source ConfigSource
		value  string
	}{
		{SourceFlag, flagValue},
		{SourceEnv, envValue},
		{SourceConfig, configValue},
		{SourceDefault, defaultValue},
	}

	for _, c := range candidates {
		if c.value == "" {
			continue
		}
		if result.Source == "" {
			result.Value = c.value
			result.Source = c.source
			continue
		}
		result.Shadowed[c.source] = c.value
	}

	return result
}

// LogResolvedValues logs configuration resolution at DEBUG level.
func LogResolvedValues(values []ResolvedValue) {
	for _, v := range values {
		output.Debug("config value resolved",
			"key", v.Key,
			"value", v.Value,
			"source", v.Source,
		)
		for _, source := range []ConfigSource{SourceEnv, SourceConfig, SourceDefault} {
			shadowed, ok := v.Shadowed[source]
			if !ok {
				continue
			}
			output.Debug("  shadowed by higher precedence",
				"key", v.Key,
				"shadowed_source", source,
				"shadowed_value", shadowed,
			)
		}
	}
}
