package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Mode != "batch" {
		t.Errorf("Expected default mode to be 'batch', got '%s'", cfg.Mode)
	}

	if cfg.BandLow != 0.1 || cfg.BandHigh != 0.9 {
		t.Errorf("Expected default band [0.1, 0.9], got [%f, %f]", cfg.BandLow, cfg.BandHigh)
	}

	if cfg.SizeTolerance != 0.5 {
		t.Errorf("Expected default size tolerance 0.5, got %f", cfg.SizeTolerance)
	}

	if cfg.Version != "1.0.0" {
		t.Errorf("Expected default version to be '1.0.0', got '%s'", cfg.Version)
	}

	if cfg.ServerName != "pdf-outliner" {
		t.Errorf("Expected default server name to be 'pdf-outliner', got '%s'", cfg.ServerName)
	}

	if cfg.LogLevel != "info" {
		t.Errorf("Expected default log level to be 'info', got '%s'", cfg.LogLevel)
	}

	if cfg.MaxFileSize != 100*1024*1024 {
		t.Errorf("Expected default max file size to be 100MB, got %d", cfg.MaxFileSize)
	}

	// Input directory defaults to the current working directory
	currentDir, _ := os.Getwd()
	if cfg.InputDir != currentDir {
		t.Errorf("Expected default input directory to be '%s', got '%s'", currentDir, cfg.InputDir)
	}

	if cfg.OutputDir != filepath.Join(currentDir, "output") {
		t.Errorf("Unexpected default output directory: '%s'", cfg.OutputDir)
	}
}

func validTestConfig(t *testing.T) *Config {
	t.Helper()
	dir := t.TempDir()
	return &Config{
		Mode:          ModeBatch,
		InputDir:      dir,
		OutputDir:     filepath.Join(dir, "out"),
		BandLow:       0.1,
		BandHigh:      0.9,
		SizeTolerance: 0.5,
		LogLevel:      "info",
		MaxFileSize:   1024,
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid batch config",
			mutate:  func(c *Config) {},
			wantErr: false,
		},
		{
			name:    "valid stdio config",
			mutate:  func(c *Config) { c.Mode = ModeStdio },
			wantErr: false,
		},
		{
			name:    "invalid mode",
			mutate:  func(c *Config) { c.Mode = "server" },
			wantErr: true,
		},
		{
			name:    "empty input directory",
			mutate:  func(c *Config) { c.InputDir = "" },
			wantErr: true,
		},
		{
			name:    "empty output directory in batch mode",
			mutate:  func(c *Config) { c.OutputDir = "" },
			wantErr: true,
		},
		{
			name:    "empty output directory allowed in stdio mode",
			mutate:  func(c *Config) { c.Mode = ModeStdio; c.OutputDir = "" },
			wantErr: false,
		},
		{
			name:    "negative band low",
			mutate:  func(c *Config) { c.BandLow = -0.1 },
			wantErr: true,
		},
		{
			name:    "band high above one",
			mutate:  func(c *Config) { c.BandHigh = 1.1 },
			wantErr: true,
		},
		{
			name:    "inverted band",
			mutate:  func(c *Config) { c.BandLow = 0.9; c.BandHigh = 0.1 },
			wantErr: true,
		},
		{
			name:    "zero tolerance",
			mutate:  func(c *Config) { c.SizeTolerance = 0 },
			wantErr: true,
		},
		{
			name:    "zero max file size",
			mutate:  func(c *Config) { c.MaxFileSize = 0 },
			wantErr: true,
		},
		{
			name:    "invalid log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validTestConfig(t)
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("expected validation error but got none")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected validation error: %v", err)
			}
		})
	}
}

func TestConfigValidate_CreatesMissingInputDir(t *testing.T) {
	cfg := validTestConfig(t)
	cfg.InputDir = filepath.Join(t.TempDir(), "does-not-exist-yet")

	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := os.Stat(cfg.InputDir); err != nil {
		t.Errorf("expected input directory to be created: %v", err)
	}
}

func TestConfigModeHelpers(t *testing.T) {
	cfg := DefaultConfig()

	if !cfg.IsBatchMode() || cfg.IsStdioMode() {
		t.Error("default config should report batch mode")
	}

	cfg.Mode = ModeStdio
	if cfg.IsBatchMode() || !cfg.IsStdioMode() {
		t.Error("stdio config should report stdio mode")
	}

	cfg.LogLevel = "debug"
	if !cfg.IsDebug() {
		t.Error("debug log level should report debug")
	}
}

func TestConfigString(t *testing.T) {
	cfg := validTestConfig(t)
	s := cfg.String()

	if s == "" {
		t.Error("expected non-empty string representation")
	}
}
