package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/pagemill/pagemill/internal/geometry"
)

const (
	// Mode constants
	ModeStdio = "stdio"
	ModeRun   = "run"

	// Input format constants
	FormatJSON = "json"
	FormatHTML = "html"

	// Default values
	DefaultPageSize    = "Letter"
	DefaultOrientation = "portrait"
	DefaultLogLevel    = "info"
)

// Config holds all configuration for the table pagination server.
type Config struct {
	// Server configuration
	Mode string // "stdio" for MCP standard I/O, "run" for one-shot pagination

	// Run mode configuration
	InputPath   string // table model file to paginate
	OutputPath  string // page list destination; empty means stdout
	InputFormat string // "json" or "html"

	// Pagination configuration
	PageSize    string
	Orientation string

	// Geometry overrides. These must stay in sync with the renderer's
	// print stylesheet; see the geometry package.
	RowHeight       float64
	MarginTopMM     float64
	MarginBottomMM  float64
	PagePadding     float64
	PageHeaderBlock float64
	SafetyBuffer    float64

	// Application configuration
	Version    string
	ServerName string
	LogLevel   string
}

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	geo := geometry.Default()

	return &Config{
		Mode:            ModeStdio, // default to stdio mode for MCP compatibility
		InputFormat:     FormatJSON,
		PageSize:        DefaultPageSize,
		Orientation:     DefaultOrientation,
		RowHeight:       geo.RowHeight,
		MarginTopMM:     geo.MarginTopMM,
		MarginBottomMM:  geo.MarginBottomMM,
		PagePadding:     geo.PagePadding,
		PageHeaderBlock: geo.PageHeaderBlock,
		SafetyBuffer:    geo.SafetyBuffer,
		Version:         "1.0.0",
		ServerName:      "pagemill",
		LogLevel:        DefaultLogLevel,
	}
}

// LoadFromFlags parses command line flags and returns a configuration.
func LoadFromFlags() (*Config, error) {
	cfg := DefaultConfig()

	setupViperEnvironment(cfg)
	defineCommandLineFlags(cfg)
	bindFlagsToViper()
	setupUsageMessage()

	// Check for version flag before parsing
	if err := checkVersionFlag(); err != nil {
		return nil, err
	}

	pflag.Parse()

	populateConfigFromViper(cfg)

	// Expand the input path so run mode errors name the file unambiguously
	if cfg.InputPath != "" {
		if expandedPath, err := filepath.Abs(cfg.InputPath); err == nil {
			cfg.InputPath = expandedPath
		}
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// setupViperEnvironment configures viper with environment variables and defaults.
func setupViperEnvironment(cfg *Config) {
	viper.SetEnvPrefix("PAGEMILL")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("mode", cfg.Mode)
	viper.SetDefault("input", cfg.InputPath)
	viper.SetDefault("output", cfg.OutputPath)
	viper.SetDefault("format", cfg.InputFormat)
	viper.SetDefault("page-size", cfg.PageSize)
	viper.SetDefault("orientation", cfg.Orientation)
	viper.SetDefault("row-height", cfg.RowHeight)
	viper.SetDefault("margin-top-mm", cfg.MarginTopMM)
	viper.SetDefault("margin-bottom-mm", cfg.MarginBottomMM)
	viper.SetDefault("page-padding", cfg.PagePadding)
	viper.SetDefault("header-block", cfg.PageHeaderBlock)
	viper.SetDefault("safety-buffer", cfg.SafetyBuffer)
	viper.SetDefault("log-level", cfg.LogLevel)
}

// defineCommandLineFlags sets up all command line flags.
func defineCommandLineFlags(cfg *Config) {
	pflag.String("mode", cfg.Mode, "Mode: 'stdio' for MCP standard I/O, 'run' for one-shot pagination")
	pflag.String("input", cfg.InputPath, "Table model file to paginate (run mode)")
	pflag.String("output", cfg.OutputPath, "Page list destination, stdout if empty (run mode)")
	pflag.String("format", cfg.InputFormat, "Input format: 'json' or 'html' (run mode)")
	pflag.String("page-size", cfg.PageSize, "Page size: Letter, Legal, A4, A3, A5")
	pflag.String("orientation", cfg.Orientation, "Page orientation: portrait or landscape")
	pflag.Float64("row-height", cfg.RowHeight, "Table row height in 96dpi units")
	pflag.Float64("margin-top-mm", cfg.MarginTopMM, "Top page margin in millimetres")
	pflag.Float64("margin-bottom-mm", cfg.MarginBottomMM, "Bottom page margin in millimetres")
	pflag.Float64("page-padding", cfg.PagePadding, "Page container padding in 96dpi units")
	pflag.Float64("header-block", cfg.PageHeaderBlock, "Page header block height in 96dpi units")
	pflag.Float64("safety-buffer", cfg.SafetyBuffer, "Rounding safety buffer in 96dpi units")
	pflag.String("log-level", cfg.LogLevel, "Log level (debug, info, warn, error)")
}

// bindFlagsToViper binds command line flags to viper configuration.
func bindFlagsToViper() {
	for _, name := range []string{
		"mode", "input", "output", "format",
		"page-size", "orientation",
		"row-height", "margin-top-mm", "margin-bottom-mm",
		"page-padding", "header-block", "safety-buffer",
		"log-level",
	} {
		_ = viper.BindPFlag(name, pflag.Lookup(name))
	}
}

// setupUsageMessage configures the custom usage message.
func setupUsageMessage() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage of %s:\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nPagemill - print pagination for hierarchical report tables\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s                                # MCP stdio mode (default)\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=run --input=model.json  # paginate a JSON table model\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --mode=run --input=report.html --format=html --page-size=A4\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEnvironment Variables:\n")
		fmt.Fprintf(os.Stderr, "  PAGEMILL_MODE         Mode\n")
		fmt.Fprintf(os.Stderr, "  PAGEMILL_PAGE_SIZE    Page size\n")
		fmt.Fprintf(os.Stderr, "  PAGEMILL_ORIENTATION  Page orientation\n")
		fmt.Fprintf(os.Stderr, "  PAGEMILL_ROW_HEIGHT   Table row height\n")
		fmt.Fprintf(os.Stderr, "  PAGEMILL_LOG_LEVEL    Log level\n")
	}
}

// checkVersionFlag checks if version flag was requested.
func checkVersionFlag() error {
	for _, arg := range os.Args[1:] {
		if arg == "-version" || arg == "--version" || arg == "-v" {
			return fmt.Errorf("version requested")
		}
	}
	return nil
}

// populateConfigFromViper fills the config struct with values from viper.
func populateConfigFromViper(cfg *Config) {
	cfg.Mode = viper.GetString("mode")
	cfg.InputPath = viper.GetString("input")
	cfg.OutputPath = viper.GetString("output")
	cfg.InputFormat = viper.GetString("format")
	cfg.PageSize = viper.GetString("page-size")
	cfg.Orientation = viper.GetString("orientation")
	cfg.RowHeight = viper.GetFloat64("row-height")
	cfg.MarginTopMM = viper.GetFloat64("margin-top-mm")
	cfg.MarginBottomMM = viper.GetFloat64("margin-bottom-mm")
	cfg.PagePadding = viper.GetFloat64("page-padding")
	cfg.PageHeaderBlock = viper.GetFloat64("header-block")
	cfg.SafetyBuffer = viper.GetFloat64("safety-buffer")
	cfg.LogLevel = viper.GetString("log-level")
}

// Validate checks if the configuration is valid. Page size and orientation
// are deliberately not validated: the engine degrades unknown values to
// Letter/portrait instead of failing.
func (c *Config) Validate() error {
	if c.Mode != ModeStdio && c.Mode != ModeRun {
		return errors.New("mode must be either 'stdio' or 'run'")
	}

	if c.InputFormat != FormatJSON && c.InputFormat != FormatHTML {
		return errors.New("format must be either 'json' or 'html'")
	}

	if c.Mode == ModeRun && c.InputPath == "" {
		return errors.New("run mode requires an input file")
	}

	if c.RowHeight <= 0 {
		return errors.New("row height must be positive")
	}
	if c.MarginTopMM < 0 || c.MarginBottomMM < 0 {
		return errors.New("margins cannot be negative")
	}
	if c.PagePadding < 0 || c.PageHeaderBlock < 0 || c.SafetyBuffer < 0 {
		return errors.New("page padding, header block and safety buffer cannot be negative")
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

// Geometry returns the layout contract assembled from the configured
// constants.
func (c *Config) Geometry() geometry.Config {
	return geometry.Config{
		MarginTopMM:     c.MarginTopMM,
		MarginBottomMM:  c.MarginBottomMM,
		PagePadding:     c.PagePadding,
		PageHeaderBlock: c.PageHeaderBlock,
		RowHeight:       c.RowHeight,
		SafetyBuffer:    c.SafetyBuffer,
	}
}

// IsDebug returns true if debug logging is enabled.
func (c *Config) IsDebug() bool {
	return c.LogLevel == "debug"
}

// String returns a string representation of the configuration.
func (c *Config) String() string {
	return fmt.Sprintf("Config{Mode: %s, PageSize: %s, Orientation: %s, Input: %s, Format: %s, LogLevel: %s}",
		c.Mode, c.PageSize, c.Orientation, c.InputPath, c.InputFormat, c.LogLevel)
}

// IsRunMode returns true if running a one-shot pagination.
func (c *Config) IsRunMode() bool {
	return c.Mode == ModeRun
}

// IsStdioMode returns true if serving MCP over standard I/O.
func (c *Config) IsStdioMode() bool {
	return c.Mode == ModeStdio
}
