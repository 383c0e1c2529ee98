package core

import (
	"os"
	"path/filepath"
)

const historyFileName = ".zsh_history"

type Paths struct {
	HomeDir     string
	DataDir     string
	LogFile     string
	ConfigFile  string
	HistoryFile string
}

var defaultPaths *Paths

func ensureDefaultPaths() {
	if defaultPaths == nil {
		homeDir, err := os.UserHomeDir()
		if err != nil || homeDir == "" {
			// Mirrors the shell's own fallback when HOME is unset.
			homeDir = "~"
		}

		defaultPaths = &Paths{
			HomeDir:     homeDir,
			DataDir:     filepath.Join(homeDir, ".aliasusage"),
			LogFile:     filepath.Join(homeDir, ".aliasusage", "aliasusage.log"),
			ConfigFile:  filepath.Join(homeDir, ".aliasusage", "config.yaml"),
			HistoryFile: filepath.Join(homeDir, historyFileName),
		}
	}
}

func HomeDir() string {
	ensureDefaultPaths()
	return defaultPaths.HomeDir
}

func DataDir() string {
	ensureDefaultPaths()
	return defaultPaths.DataDir
}

func LogFile() string {
	ensureDefaultPaths()
	return defaultPaths.LogFile
}

func ConfigFile() string {
	ensureDefaultPaths()
	return defaultPaths.ConfigFile
}

// HistoryFile is the conventional zsh history location in the user's home.
func HistoryFile() string {
	ensureDefaultPaths()
	return defaultPaths.HistoryFile
}

// EnsureDataDir creates the data directory used for the log file.
func EnsureDataDir() error {
	return os.MkdirAll(DataDir(), 0755)
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(path string) string {
	if path == "~" {
		return HomeDir()
	}
	if len(path) > 1 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator) {
		return filepath.Join(HomeDir(), path[2:])
	}
	return path
}

// ResetPaths clears the cached paths, forcing them to be reinitialized.
// This is primarily used for testing purposes.
func ResetPaths() {
	defaultPaths = nil
}
