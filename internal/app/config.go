package app

import (
	"errors"
	"fmt"
	"strings"

	"github.com/vk/partscan/internal/report"
)

// Default configuration values.
const (
	DefaultInputPath = "input.txt"
	DefaultExtension = ".txt"
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	InputPath string // schematic file or directory of schematics
	Extension string // file suffix matched when InputPath is a directory

	OutputFormat string
	LogFormat    string
	LogLevel     string

	Parallel bool // run both scanners concurrently
	Strict   bool // reject grids with non-uniform rows
}

// NewConfig fills defaults and validates cfg.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("InputPath is a required configuration field and cannot be empty")
	}

	if cfg.Extension == "" {
		cfg.Extension = DefaultExtension
	}
	if !strings.HasPrefix(cfg.Extension, ".") {
		return nil, fmt.Errorf("invalid extension %q: must start with '.'", cfg.Extension)
	}

	if cfg.OutputFormat == "" {
		cfg.OutputFormat = report.FormatText
	}
	cfg.OutputFormat = strings.ToLower(cfg.OutputFormat)
	if cfg.OutputFormat != report.FormatText && cfg.OutputFormat != report.FormatJSON {
		return nil, errors.New("invalid format: must be 'text' or 'json'")
	}

	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, errors.New("invalid log-format: must be 'text' or 'json'")
	}

	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, errors.New("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}

	return &cfg, nil
}
