// Package config provides configuration management for aliasusage.
// Values come from built-in defaults, then the YAML config file, then
// ALIASUSAGE_* environment variables. Command-line flags are applied last
// by the caller.
package config

import (
	"github.com/lttr/shell-aliases/internal/core"
)

const (
	FormatAuto  = "auto"
	FormatPlain = "plain"
)

// Config holds all settings for a report run.
type Config struct {
	// HistoryFile is the zsh history log to read.
	HistoryFile string `yaml:"history_file" env:"ALIASUSAGE_HISTORY_FILE"`

	// Shell is queried for aliases with `<shell> --interactive -c alias`.
	Shell string `yaml:"shell" env:"ALIASUSAGE_SHELL"`

	// AliasesFile, when set, is parsed for alias definitions instead of
	// running Shell.
	AliasesFile string `yaml:"aliases_file" env:"ALIASUSAGE_ALIASES_FILE"`

	// Format is the report format: auto, plain, table, json or yaml.
	Format string `yaml:"format" env:"ALIASUSAGE_FORMAT"`

	// LogLevel controls logging verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level" env:"ALIASUSAGE_LOG_LEVEL"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		HistoryFile: core.HistoryFile(),
		Shell:       "zsh",
		Format:      FormatAuto,
		LogLevel:    "info",
	}
}

// Normalize expands "~" in paths and fills empty fields with defaults.
func (c *Config) Normalize() {
	defaults := DefaultConfig()
	if c.HistoryFile == "" {
		c.HistoryFile = defaults.HistoryFile
	}
	if c.Shell == "" {
		c.Shell = defaults.Shell
	}
	if c.Format == "" {
		c.Format = defaults.Format
	}
	if c.LogLevel == "" {
		c.LogLevel = defaults.LogLevel
	}
	c.HistoryFile = core.ExpandPath(c.HistoryFile)
	if c.AliasesFile != "" {
		c.AliasesFile = core.ExpandPath(c.AliasesFile)
	}
}
