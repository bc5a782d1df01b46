package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Load loads configuration from multiple sources in priority order:
// 1. Defaults
// 2. User config file
// 3. Project config file in workDir (the current directory when empty)
// 4. Environment variables
func Load(workDir string) (*Config, error) {
	cfg := &Config{}

	// 1. Set defaults
	setDefaults(cfg)

	// 2. Try to load from user config file
	if userConfigFile := findUserConfigFile(); userConfigFile != "" {
		if err := loadConfigFile(cfg, userConfigFile); err != nil {
			return nil, fmt.Errorf("loading user config file %s: %w", userConfigFile, err)
		}
	}

	// 3. Try to load from project config file (overrides user config)
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		workDir = wd
	}
	if projectConfigFile := findProjectConfigFile(workDir); projectConfigFile != "" {
		if err := loadConfigFile(cfg, projectConfigFile); err != nil {
			return nil, fmt.Errorf("loading project config file %s: %w", projectConfigFile, err)
		}
	}

	// 4. Override from environment
	loadFromEnv(cfg)

	if err := finalizeConfig(cfg); err != nil {
		return nil, fmt.Errorf("finalizing config: %w", err)
	}

	return cfg, nil
}

// loadConfigFile validates the TOML file at path against the config schema
// and decodes it over cfg. Keys absent from the file keep their values.
func loadConfigFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := validateConfigData(data); err != nil {
		return err
	}
	if _, err := toml.Decode(string(data), cfg); err != nil {
		return err
	}
	cfg.Files = append(cfg.Files, path)
	return nil
}

// finalizeConfig checks values that environment variables may have set
// outside the schema's reach.
func finalizeConfig(cfg *Config) error {
	if !cfg.Color.Valid() {
		return &ValidationError{
			Path: "color",
			Err:  fmt.Errorf("invalid value %q, must be one of: auto, always, never", cfg.Color),
		}
	}
	return nil
}
