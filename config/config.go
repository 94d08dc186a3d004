// Package config loads fathom's YAML configuration.
package config

import (
	"os"
	"path/filepath"
)

// Config represents the complete fathom configuration
type Config struct {
	Precision     int    `yaml:"precision"`      // Decimal places in output; -1 means shortest round-trip form
	AutoNormalize bool   `yaml:"auto_normalize"` // Normalize results to a readable unit before printing
	HistoryFile   string `yaml:"history_file"`   // REPL history file location
}

// Defaults returns a Config with sensible defaults
func Defaults() *Config {
	return &Config{
		Precision:     -1,
		AutoNormalize: false,
		HistoryFile:   filepath.Join(os.TempDir(), ".fathom_history"),
	}
}
