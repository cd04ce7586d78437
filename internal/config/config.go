// Package config provides configuration loading and discovery for dsf-lint.
//
// Configuration is loaded from multiple sources with the following priority
// (highest to lowest):
//  1. CLI flags
//  2. Environment variables (DSFLINT_* prefix)
//  3. Config file (closest .dsflint.toml or dsflint.toml)
//  4. Built-in defaults
//
// Config file discovery follows a cascading pattern similar to Ruff:
// starting from the target path's directory, walk up the filesystem until a
// config file is found. The closest config wins (no merging).
package config

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// ConfigFileNames defines the config file names to search for, in priority order.
var ConfigFileNames = []string{".dsflint.toml", "dsflint.toml"}

// EnvPrefix is the prefix for environment variables.
const EnvPrefix = "DSFLINT_"

// Config represents the complete dsf-lint configuration.
type Config struct {
	// Build controls the Maven build step driven by Project Setup.
	Build BuildConfig `koanf:"build"`

	// Output configures report rendering.
	Output OutputConfig `koanf:"output"`

	// ConfigFile is the path to the config file that was loaded (if any).
	// Metadata, not loaded from config.
	ConfigFile string `koanf:"-"`
}

// BuildConfig configures the external Maven build invocation (§4.5).
type BuildConfig struct {
	// ExtraGoals are appended to the default build vector.
	// KEY=VALUE entries replace any existing argument sharing the KEY prefix.
	ExtraGoals []string `koanf:"extra-goals"`

	// SkipGoals are removed from the default build vector.
	SkipGoals []string `koanf:"skip-goals"`
}

// OutputConfig configures report formatting and behavior.
type OutputConfig struct {
	// HTML requests HTML report rendering.
	HTML bool `koanf:"html"`

	// JSON requests JSON report rendering.
	JSON bool `koanf:"json"`

	// SARIF requests the supplemental SARIF report rendering.
	SARIF bool `koanf:"sarif"`

	// ReportPath overrides the report output directory.
	ReportPath string `koanf:"report-path"`

	// Verbose includes SUCCESS findings in console output.
	Verbose bool `koanf:"verbose"`

	// Color controls colored console output: "auto", "always", "never".
	Color string `koanf:"color"`

	// NoFail forces exit code 0 even when ERROR findings exist.
	NoFail bool `koanf:"no-fail"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Build: BuildConfig{},
		Output: OutputConfig{
			HTML:       false,
			JSON:       false,
			SARIF:      false,
			ReportPath: "report",
			Verbose:    false,
			Color:      "auto",
			NoFail:     false,
		},
	}
}

// Load loads configuration for a target path (the input being linted).
// It discovers the closest config file, loads it, and applies environment
// variable overrides.
func Load(targetPath string) (*Config, error) {
	return loadWithConfigPath(Discover(targetPath))
}

// LoadFromFile loads configuration from a specific config file path, skipping discovery.
func LoadFromFile(configPath string) (*Config, error) {
	return loadWithConfigPath(configPath)
}

func loadWithConfigPath(configPath string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return nil, err
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), toml.Parser()); err != nil {
			return nil, err
		}
	}

	// DSFLINT_OUTPUT_REPORT_PATH -> output.report-path
	if err := k.Load(env.Provider(".", env.Opt{
		Prefix:        EnvPrefix,
		TransformFunc: envKeyTransform,
	}), nil); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.ConfigFile = configPath
	return cfg, nil
}

// knownHyphenatedKeys maps dot-separated env patterns to their hyphenated equivalents.
var knownHyphenatedKeys = map[string]string{
	"extra.goals": "extra-goals",
	"skip.goals":  "skip-goals",
	"report.path": "report-path",
	"no.fail":     "no-fail",
}

// envKeyTransform converts environment variable names to config keys.
// DSFLINT_OUTPUT_REPORT_PATH -> output.report-path
func envKeyTransform(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, "_", ".")
	for pattern, replacement := range knownHyphenatedKeys {
		s = strings.ReplaceAll(s, pattern, replacement)
	}
	return s
}

// Discover finds the closest config file for a target path, walking upward.
func Discover(targetPath string) string {
	absPath, err := filepath.Abs(targetPath)
	if err != nil {
		return ""
	}

	dir := absPath
	if info, err := os.Stat(absPath); err == nil && !info.IsDir() {
		dir = filepath.Dir(absPath)
	}

	for {
		for _, name := range ConfigFileNames {
			configPath := filepath.Join(dir, name)
			if fileExists(configPath) {
				return configPath
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
