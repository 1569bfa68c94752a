package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const fileName = "cavewing.yaml"

// Load reads a configuration file over the built-in defaults and validates the result.
// Search order: customPath -> <user config dir>/cavewing/cavewing.yaml -> ./configs/cavewing.yaml -> defaults
func Load(customPath string) (*File, error) {
	// Custom path must exist
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		return Parse(data, customPath)
	}

	for _, path := range []string{userConfigPath(), filepath.Join("configs", fileName)} {
		if path == "" {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		return Parse(data, path)
	}

	cfg := Defaults()
	return cfg, cfg.Validate()
}

// Parse overlays YAML data onto the defaults. Fields missing from data keep their
// default values. source names the data in error messages.
func Parse(data []byte, source string) (*File, error) {
	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", source, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", source, err)
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file, or empty if unavailable.
func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "cavewing", fileName)
}
