package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// LoadResult contains the result of loading configuration.
type LoadResult struct {
	Config *Config
	Errors []error
}

// Load builds the configuration from defaults, the YAML file at path and the
// environment. Problems with the file or environment are collected in
// Errors and the remaining sources still apply; a missing file is fine.
func Load(path string) *LoadResult {
	result := &LoadResult{
		Config: DefaultConfig(),
		Errors: []error{},
	}

	if err := loadFile(path, result.Config); err != nil {
		result.Errors = append(result.Errors, err)
	}

	if err := ParseEnv(result.Config); err != nil {
		result.Errors = append(result.Errors, err)
	}

	result.Config.Normalize()
	return result
}

func loadFile(path string, cfg *Config) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read config file: %w", err)
	}

	// Decode into a copy so a malformed file leaves the defaults intact.
	fileCfg := *cfg
	if err := yaml.Unmarshal(content, &fileCfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	*cfg = fileCfg
	return nil
}

// ParseEnv overrides cfg with any ALIASUSAGE_* environment variables.
func ParseEnv(cfg *Config) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
