package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vk/partscan/internal/ctxlog"
	"github.com/vk/partscan/internal/loader"
	"github.com/vk/partscan/internal/report"
	"github.com/vk/partscan/internal/schematic"
	"golang.org/x/sync/errgroup"
)

// solve loads one schematic and computes both sums.
func (a *App) solve(ctx context.Context, path string) (report.Result, error) {
	logger := ctxlog.FromContext(ctx).With("path", path)

	raw, err := loader.Load(ctx, path)
	if err != nil {
		return report.Result{}, err
	}

	grid, err := schematic.Build(raw)
	if err != nil {
		return report.Result{}, fmt.Errorf("failed to build grid: %w", err)
	}
	if a.config.Strict {
		if err := grid.Validate(); err != nil {
			return report.Result{}, err
		}
	}
	logger.Debug("Grid built.", "rows", grid.Rows(), "cols", grid.Cols())

	res := report.Result{Path: path}
	partScan := scan("part-number", grid.SumValidNumbers, &res.PartSum)
	gearScan := scan("gear", grid.SumGearRatios, &res.GearSum)

	if a.config.Parallel {
		var g errgroup.Group
		g.Go(partScan)
		g.Go(gearScan)
		if err := g.Wait(); err != nil {
			return report.Result{}, err
		}
	} else {
		if err := partScan(); err != nil {
			return report.Result{}, err
		}
		if err := gearScan(); err != nil {
			return report.Result{}, err
		}
	}

	if logger.Enabled(ctx, slog.LevelDebug) {
		logGears(ctx, logger, grid)
	}
	return res, nil
}

// scan wraps a scanner so a panic inside it comes back as an error. Scanners
// may run on their own goroutine, where the panic would otherwise be fatal.
func scan(name string, fn func() uint32, dst *uint32) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s scanner panicked: %v", name, r)
			}
		}()
		*dst = fn()
		return nil
	}
}

func logGears(ctx context.Context, logger *slog.Logger, grid *schematic.Grid) {
	for _, gear := range grid.Gears() {
		row, col := grid.Coord(gear.Index)
		ratio, ok := gear.Ratio()
		logger.DebugContext(ctx, "Gear inspected.", "row", row, "col", col, "numbers", len(gear.Numbers), "counted", ok, "ratio", ratio)
	}
}
