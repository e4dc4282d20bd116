package hexgrid

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
)

// GridDisks computes GridDisk for every origin. Results are returned in
// origin order and each is independent of the others. Work is spread over
// Config.Concurrency goroutines; the first error cancels the rest.
func GridDisks(ctx context.Context, origins []Cell, k int, mode DiskMode, opts ...Option) ([][]Cell, error) {
	cfg := newConfig(opts)
	log := cfg.Logger.WithOp("GridDisks")
	start := time.Now()

	out := make([][]Cell, len(origins))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, origin := range origins {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			disk, err := GridDisk(origin, k, mode)
			if err != nil {
				return fmt.Errorf("origin %d: %w", i, err)
			}
			out[i] = disk
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Debug("batch failed", "origins", len(origins), "error", err)
		return nil, err
	}
	log.Debug("batch complete", "origins", len(origins), "k", k, "mode", mode.String(), "elapsed", time.Since(start))
	return out, nil
}

// PolygonsToCells fills every polygon at res in parallel. Results are
// returned in input order.
func PolygonsToCells(ctx context.Context, polys []GeoPolygon, res int, opts ...Option) ([][]Cell, error) {
	cfg := newConfig(opts)
	log := cfg.Logger.WithOp("PolygonsToCells").WithResolution(res)
	start := time.Now()

	out := make([][]Cell, len(polys))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Concurrency)
	for i, p := range polys {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			cells, err := PolygonToCells(p, res, 0)
			if err != nil {
				return fmt.Errorf("polygon %d: %w", i, err)
			}
			out[i] = cells
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		log.Debug("batch failed", "polygons", len(polys), "error", err)
		return nil, err
	}

	total := 0
	for _, cells := range out {
		total += len(cells)
	}
	log.Debug("batch complete", "polygons", len(polys), "cells", total, "elapsed", time.Since(start))
	return out, nil
}
