package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// Mode constants
	ModeBatch = "batch"
	ModeStdio = "stdio"

	// Default values
	DefaultLogLevel    = "info"
	DefaultMaxFileSize = 100 * 1024 * 1024 // 100MB

	DefaultBandLow       = 0.1
	DefaultBandHigh      = 0.9
	DefaultSizeTolerance = 0.5

	// Directory permissions
	DefaultDirPerm = 0o750
)

// Config holds all configuration for the PDF outliner
type Config struct {
	// Mode: "batch" processes a directory, "stdio" serves MCP over stdin/stdout
	Mode string

	// Batch configuration
	InputDir  string
	OutputDir string

	// Pipeline tuning
	BandLow       float64 // Lower vertical band fraction for span extraction
	BandHigh      float64 // Upper vertical band fraction for span extraction
	SizeTolerance float64 // Font-size clustering tolerance in points

	// Application configuration
	Version     string
	ServerName  string
	LogLevel    string
	MaxFileSize int64 // Maximum PDF file size in bytes
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	currentDir, err := os.Getwd()
	if err != nil {
		currentDir = "."
	}

	return &Config{
		Mode:          ModeBatch,
		InputDir:      currentDir,
		OutputDir:     filepath.Join(currentDir, "output"),
		BandLow:       DefaultBandLow,
		BandHigh:      DefaultBandHigh,
		SizeTolerance: DefaultSizeTolerance,
		Version:       "1.0.0",
		ServerName:    "pdf-outliner",
		LogLevel:      DefaultLogLevel,
		MaxFileSize:   DefaultMaxFileSize,
	}
}

// LoadFromFlags parses command line flags and returns a configuration
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand paths if needed
	if cfg.InputDir != "" {
		if expandedPath, err := filepath.Abs(cfg.InputDir); err == nil {
			cfg.InputDir = expandedPath
		}
	}
	if cfg.OutputDir != "" {
		if expandedPath, err := filepath.Abs(cfg.OutputDir); err == nil {
			cfg.OutputDir = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("PDF_OUTLINER")
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("input", cfg.InputDir)
	viper.SetDefault("output", cfg.OutputDir)
	viper.SetDefault("bandlow", cfg.BandLow)
	viper.SetDefault("bandhigh", cfg.BandHigh)
	viper.SetDefault("tolerance", cfg.SizeTolerance)
	viper.SetDefault("loglevel", cfg.LogLevel)
	viper.SetDefault("maxfilesize", cfg.MaxFileSize)
}

// defineCommandLineFlags sets up all command line flags
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Run mode: 'batch' to process a directory, 'stdio' for MCP standard I/O")
	pflag.String("input", cfg.InputDir, "Directory containing PDF files")
	pflag.String("output", cfg.OutputDir, "Directory for JSON outline output (batch mode)")
	pflag.Float64("bandlow", cfg.BandLow, "Lower vertical band fraction for span extraction")
	pflag.Float64("bandhigh", cfg.BandHigh, "Upper vertical band fraction for span extraction")
	pflag.Float64("tolerance", cfg.SizeTolerance, "Font-size clustering tolerance in points")
	pflag.String("loglevel", cfg.LogLevel, "Log level (debug, info, warn, error)")
	pflag.Int64("maxfilesize", cfg.MaxFileSize, "Maximum PDF file size in bytes")
}

// bindFlagsToViper binds command line flags to viper configuration
func bindFlagsToViper() {
	_ = viper.BindPFlag("mode", pflag.Lookup("mode"))
	_ = viper.BindPFlag("input", pflag.Lookup("input"))
	_ = viper.BindPFlag("output", pflag.Lookup("output"))
	_ = viper.BindPFlag("bandlow", pflag.Lookup("bandlow"))
	_ = viper.BindPFlag("bandhigh", pflag.Lookup("bandhigh"))
	_ = viper.BindPFlag("tolerance", pflag.Lookup("tolerance"))
	_ = viper.BindPFlag("loglevel", pflag.Lookup("loglevel"))
	_ = viper.BindPFlag("maxfilesize", pflag.Lookup("maxfilesize"))
}

// setupUsageMessage configures the custom usage message
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nPDF Outliner - Infers document outlines from typographic signals\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s --input=/path/to/pdfs --output=/path/to/json   # batch mode\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=stdio --input=/path/to/pdfs             # MCP stdio mode\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINER_MODE        Run mode\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINER_INPUT       Input directory\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINER_OUTPUT      Output directory\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINER_LOGLEVEL    Log level\n")
		fmt.Fprintf(os.Stderr, "  PDF_OUTLINER_MAXFILESIZE Maximum file size\n")
	}
}

// populateConfigFromViper fills the config struct with values from viper
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.InputDir = viper.GetString("input")
	cfg.OutputDir = viper.GetString("output")
	cfg.BandLow = viper.GetFloat64("bandlow")
	cfg.BandHigh = viper.GetFloat64("bandhigh")
	cfg.SizeTolerance = viper.GetFloat64("tolerance")
	cfg.LogLevel = viper.GetString("loglevel")
	cfg.MaxFileSize = viper.GetInt64("maxfilesize")
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Mode != ModeBatch && c.Mode != ModeStdio {
		return errors.New("mode must be either 'batch' or 'stdio'")
	}

	if c.InputDir == "" {
		return errors.New("input directory cannot be empty")
	}

	if _, err := os.Stat(c.InputDir); os.IsNotExist(err) {
		if err := os.MkdirAll(c.InputDir, DefaultDirPerm); err != nil {
			return fmt.Errorf("cannot create input directory %s: %w", c.InputDir, err)
		}
	} else if err != nil {
		return fmt.Errorf("cannot access input directory %s: %w", c.InputDir, err)
	}

	if c.Mode == ModeBatch && c.OutputDir == "" {
		return errors.New("output directory cannot be empty in batch mode")
	}

	if c.BandLow < 0 || c.BandHigh > 1 || c.BandLow >= c.BandHigh {
		return errors.New("vertical band must satisfy 0 <= low < high <= 1")
	}

	if c.SizeTolerance <= 0 {
		return errors.New("size tolerance must be positive")
	}

	if c.MaxFileSize <= 0 {
		return errors.New("maximum file size must be positive")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be one of: debug, info, warn, error)", c.LogLevel)
	}

	return nil
}

// IsDebug returns true if debug logging is enabled
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// IsBatchMode returns true if the outliner runs as a batch processor
func (c *Config) IsBatchMode() bool {
	return c.Mode == ModeBatch
}

// IsStdioMode returns true if the outliner serves MCP over stdio
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}

// String returns a string representation of the configuration
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, InputDir: %s, OutputDir: %s, Band: [%.2f, %.2f], Tolerance: %.2f, LogLevel: %s, MaxFileSize: %d}",
		c.Mode, c.InputDir, c.OutputDir, c.BandLow, c.BandHigh, c.SizeTolerance, c.LogLevel, c.MaxFileSize)
}
