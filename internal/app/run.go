package app

import (
	"context"
	"fmt"
	"os"

	"github.com/vk/partscan/internal/ctxlog"
	"github.com/vk/partscan/internal/fsutil"
	"github.com/vk/partscan/internal/loader"
	"github.com/vk/partscan/internal/report"
)

// Run analyses every schematic selected by the configuration and writes the
// results. The first failing schematic aborts the run.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.", "input", a.config.InputPath)

	paths, err := a.resolveInputs(ctx)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		a.logger.Warn("No schematic files found, nothing to analyse.", "path", a.config.InputPath, "extension", a.config.Extension)
	}

	results := make([]report.Result, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return err
		}
		res, err := a.solve(ctx, path)
		if err != nil {
			return fmt.Errorf("failed to analyse %s: %w", path, err)
		}
		a.logger.Info("Schematic analysed.", "path", path, "sum", res.PartSum, "gear", res.GearSum)
		results = append(results, res)
	}

	if err := report.Write(a.outW, a.config.OutputFormat, results); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	a.logger.Debug("App.Run method finished.")
	return nil
}

// resolveInputs expands the input path into the list of schematic files.
func (a *App) resolveInputs(ctx context.Context) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	info, err := os.Stat(a.config.InputPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", loader.ErrLoad, err)
	}
	if !info.IsDir() {
		return []string{a.config.InputPath}, nil
	}

	ext := a.config.Extension
	files, err := fsutil.FindFilesByExtension(a.config.InputPath, ext, ext+loader.ZstdExtension)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to find schematics in %s: %w", loader.ErrLoad, a.config.InputPath, err)
	}
	logger.Debug("Discovered schematic files.", "path", a.config.InputPath, "count", len(files))
	return files, nil
}
