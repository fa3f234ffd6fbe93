package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/go-homedir"
	"github.com/pelletier/go-toml/v2"

	"github.com/conn-castle/pack-release/internal/messages"
)

// Load reads the config file at path, applying defaults for absent fields.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf(messages.ConfigMissingFileFmt, path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf(messages.ConfigInvalidTOMLFmt, path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadForRoot loads the config for a repository root. An explicit path wins;
// otherwise the default file name under root is used.
func LoadForRoot(root, explicitPath string) (*Config, error) {
	path := explicitPath
	if path == "" {
		path = filepath.Join(root, DefaultFileName)
	}
	return Load(path)
}

// ResolveLogDir expands the configured log dir against the repository root,
// resolving a leading "~" to the user home directory.
func (c *Config) ResolveLogDir(root string) (string, error) {
	dir := c.Log.Dir
	if strings.HasPrefix(dir, "~") {
		expanded, err := homedir.Expand(dir)
		if err != nil {
			return "", fmt.Errorf(messages.ConfigResolveHomeFmt, dir, err)
		}
		return expanded, nil
	}
	if filepath.IsAbs(dir) {
		return dir, nil
	}
	return filepath.Join(root, dir), nil
}
