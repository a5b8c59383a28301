package app

import (
	"io"
	"log/slog"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *Config
}

// NewApp is the constructor for the main application. Results are written to
// outW and diagnostics to logW, through the app's own isolated logger.
func NewApp(outW, logW io.Writer, config *Config) *App {
	logger := newLogger(config.LogLevel, config.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: config,
	}
}
