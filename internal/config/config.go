// Package config loads the optional pack-release.toml tool configuration.
package config

import (
	"errors"
	"path/filepath"

	"github.com/conn-castle/pack-release/internal/messages"
)

// DefaultFileName is the config file looked up in the repository root.
const DefaultFileName = "pack-release.toml"

// Config holds the tool configuration with defaults applied.
type Config struct {
	Paths Paths `toml:"paths"`
	Log   Log   `toml:"log"`
}

// Paths locates the release inputs relative to the repository root.
type Paths struct {
	// Manifest is the extension pack manifest file.
	Manifest string `toml:"manifest"`
	// Recommendations is the workspace recommended-extension file.
	Recommendations string `toml:"recommendations"`
	// Ignore is the ignore-pattern file controlling discovery exclusions.
	Ignore string `toml:"ignore"`
	// ExtensionFiles are the extension pack files committed separately from
	// project files. The manifest and recommendations files belong here.
	ExtensionFiles []string `toml:"extension-files"`
}

// Log configures the run-scoped log.
type Log struct {
	// Dir is the run log directory; "~" expands to the user home dir.
	Dir string `toml:"dir"`
	// Verbose enables detail lines on the console.
	Verbose bool `toml:"verbose"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	return &Config{
		Paths: Paths{
			Manifest:        "package.json",
			Recommendations: filepath.Join(".vscode", "extensions.json"),
			Ignore:          ".vscodeignore",
			ExtensionFiles: []string{
				"package.json",
				filepath.Join(".vscode", "extensions.json"),
				"icon.png",
				"README.md",
			},
		},
		Log: Log{
			Dir: filepath.Join(".pack-release", "logs"),
		},
	}
}

// Validate checks the configuration for unusable values.
func (c *Config) Validate() error {
	if c.Paths.Manifest == "" {
		return errors.New(messages.ConfigEmptyManifestPath)
	}
	if c.Paths.Recommendations == "" {
		return errors.New(messages.ConfigEmptyRecommendationsPath)
	}
	if len(c.Paths.ExtensionFiles) == 0 {
		return errors.New(messages.ConfigNoExtensionFiles)
	}
	return nil
}
