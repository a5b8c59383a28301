package cli

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/vk/partscan/internal/app"
	"github.com/vk/partscan/internal/config"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// usageError wraps a message as an ExitError with the usage exit code.
func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated app.Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
//
// Values come from, in order of precedence: explicit flags or the positional
// path, the settings file named by -config, and built-in defaults.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("partscan", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
partscan - sums part numbers and gear ratios in engine schematics.

Usage:
  partscan [options] [SCHEMATIC_PATH]

Arguments:
  SCHEMATIC_PATH
    A schematic file (optionally .zst compressed) or a directory of them.
    Defaults to "input.txt".

Options:
`)
		flagSet.PrintDefaults()
	}

	inputFlag := flagSet.String("input", "", "Path to the schematic file or directory.")
	iFlag := flagSet.String("i", "", "Path to the schematic file or directory (shorthand).")
	configFlag := flagSet.String("config", "", "Path to an HCL settings file.")
	extFlag := flagSet.String("ext", app.DefaultExtension, "File extension matched when the input is a directory.")
	formatFlag := flagSet.String("format", "text", "Result output format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", app.DefaultLogFormat, "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", app.DefaultLogLevel, "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	parallelFlag := flagSet.Bool("parallel", false, "Run the part-number and gear scanners concurrently.")
	strictFlag := flagSet.Bool("strict", false, "Reject schematics whose rows are not of uniform width.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	if flagSet.NArg() > 1 {
		return nil, false, usageError("expected at most one SCHEMATIC_PATH, got %d", flagSet.NArg())
	}
	slog.Debug("Arguments parsed successfully.")

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	cfg := app.Config{
		Extension:    *extFlag,
		OutputFormat: *formatFlag,
		LogFormat:    *logFormatFlag,
		LogLevel:     *logLevelFlag,
		Parallel:     *parallelFlag,
		Strict:       *strictFlag,
	}

	if *configFlag != "" {
		settings, err := config.Load(*configFlag, config.NewEvalContext(os.Environ()))
		if err != nil {
			return nil, false, usageError("%s", err.Error())
		}
		applySettings(&cfg, settings, explicit)
		slog.Debug("Settings file applied.", "path", *configFlag)
	}

	switch {
	case *inputFlag != "":
		cfg.InputPath = *inputFlag
	case *iFlag != "":
		cfg.InputPath = *iFlag
	case flagSet.NArg() > 0:
		cfg.InputPath = flagSet.Arg(0)
	case cfg.InputPath == "":
		cfg.InputPath = app.DefaultInputPath
	}
	slog.Debug("Input path determined.", "path", cfg.InputPath)

	appConfig, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", appConfig)
	return appConfig, false, nil
}

// applySettings copies every value present in s into cfg unless the
// matching flag was given explicitly.
func applySettings(cfg *app.Config, s *config.Settings, explicit map[string]bool) {
	setString := func(flagName string, dst *string, v *string) {
		if v != nil && !explicit[flagName] {
			*dst = *v
		}
	}
	setBool := func(flagName string, dst *bool, v *bool) {
		if v != nil && !explicit[flagName] {
			*dst = *v
		}
	}

	if s.Input != nil {
		cfg.InputPath = *s.Input
	}
	setString("ext", &cfg.Extension, s.Extension)
	setBool("parallel", &cfg.Parallel, s.Parallel)
	setBool("strict", &cfg.Strict, s.Strict)
	if s.Output != nil {
		setString("format", &cfg.OutputFormat, s.Output.Format)
	}
	if s.Log != nil {
		setString("log-level", &cfg.LogLevel, s.Log.Level)
		setString("log-format", &cfg.LogFormat, s.Log.Format)
	}
}
