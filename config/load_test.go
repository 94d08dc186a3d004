package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()

	if cfg.Precision != -1 {
		t.Errorf("expected default precision -1, got %d", cfg.Precision)
	}
	if cfg.AutoNormalize {
		t.Error("expected default auto_normalize to be false")
	}
	if cfg.HistoryFile == "" {
		t.Error("expected a default history file path")
	}
}

func TestInterpolateEnv(t *testing.T) {
	getenv := func(key string) string {
		switch key {
		case "TEST_PRECISION":
			return "4"
		case "TEST_HISTORY":
			return "/tmp/test_history"
		default:
			return ""
		}
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "simple substitution",
			input:    "precision: ${TEST_PRECISION}",
			expected: "precision: 4",
		},
		{
			name:     "with default (env set)",
			input:    "precision: ${TEST_PRECISION:-2}",
			expected: "precision: 4",
		},
		{
			name:     "with default (env not set)",
			input:    "precision: ${UNSET_VAR:-2}",
			expected: "precision: 2",
		},
		{
			name:     "multiple substitutions",
			input:    "history_file: ${TEST_HISTORY}.${TEST_PRECISION}",
			expected: "history_file: /tmp/test_history.4",
		},
		{
			name:     "no substitution needed",
			input:    "auto_normalize: true",
			expected: "auto_normalize: true",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := string(interpolateEnv([]byte(tt.input), getenv))
			if result != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fathom.yaml")

	configContent := `
precision: 4
auto_normalize: true
history_file: history
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath, os.Getenv)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Precision != 4 {
		t.Errorf("expected precision 4, got %d", cfg.Precision)
	}
	if !cfg.AutoNormalize {
		t.Error("expected auto_normalize true")
	}

	// Relative history paths are resolved against the config directory
	expectedHistory := filepath.Join(dir, "history")
	if cfg.HistoryFile != expectedHistory {
		t.Errorf("expected history file %q, got %q", expectedHistory, cfg.HistoryFile)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fathom.yaml")

	if err := os.WriteFile(configPath, []byte("auto_normalize: true\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := Load(configPath, os.Getenv)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if !cfg.AutoNormalize {
		t.Error("expected auto_normalize true")
	}
	if cfg.Precision != -1 {
		t.Errorf("expected default precision -1, got %d", cfg.Precision)
	}
	if cfg.HistoryFile == "" {
		t.Error("expected default history file to survive partial config")
	}
}

func TestLoadWithEnvInterpolation(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fathom.yaml")

	configContent := `
precision: ${FATHOM_TEST_PRECISION:-6}
history_file: ${FATHOM_TEST_HISTORY:-/tmp/fathom_test_history}
`
	if err := os.WriteFile(configPath, []byte(configContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	getenv := func(key string) string {
		if key == "FATHOM_TEST_PRECISION" {
			return "2"
		}
		return ""
	}

	cfg, err := Load(configPath, getenv)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Precision != 2 {
		t.Errorf("expected precision 2 from env, got %d", cfg.Precision)
	}
	if cfg.HistoryFile != "/tmp/fathom_test_history" {
		t.Errorf("expected fallback history file, got %q", cfg.HistoryFile)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), os.Getenv)
	if err == nil {
		t.Fatal("expected error for missing explicit config path")
	}
}

func TestLoadNoConfigFileUsesDefaults(t *testing.T) {
	// Run from a directory with no fathom.yaml and a getenv that never
	// resolves, so no search location matches.
	dir := t.TempDir()
	oldWD, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	defer os.Chdir(oldWD)

	t.Setenv("HOME", dir) // keep ~/.config/fathom out of the search

	cfg, path, err := LoadWithPath("", func(string) string { return "" })
	if err != nil {
		t.Fatalf("LoadWithPath failed: %v", err)
	}
	if path != "" {
		t.Errorf("expected empty resolved path, got %q", path)
	}
	if cfg.Precision != Defaults().Precision {
		t.Errorf("expected default precision, got %d", cfg.Precision)
	}
}

func TestLoadInvalidPrecision(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fathom.yaml")

	if err := os.WriteFile(configPath, []byte("precision: 99\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath, os.Getenv); err == nil {
		t.Fatal("expected error for precision out of range")
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "fathom.yaml")

	if err := os.WriteFile(configPath, []byte("precision: [oops\n"), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := Load(configPath, os.Getenv); err == nil {
		t.Fatal("expected error for malformed YAML")
	}
}
