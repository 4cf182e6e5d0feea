// Package pipeline assembles ocean-condition snapshots.
//
// This package implements the complete resolve → fetch → stitch → decorate
// sequence behind the `oceanmap snapshot` command: resolve the 6-hour request
// window, fetch the coverage window's tiles one by one, stitch whatever
// arrived into a single raster, then optionally add the title banner and the
// re-rendered legend panel.
//
// # Failure policy
//
// Individual tile fetches never abort the run; a failed tile leaves a
// background-colored gap in the raster. A legend that cannot be fetched or
// parsed is dropped with a warning. The only fatal condition the pipeline
// itself raises is total coverage failure, when not a single tile arrived.
//
// # Usage
//
//	runner := pipeline.NewRunner(wmts.NewClient(), layers.Default(), logger)
//	result, err := runner.Run(ctx, pipeline.Options{Layer: "temperature", Zoom: 6})
//	if err != nil {
//	    return err
//	}
//	imaging.Save(result.Image, "snapshot.png")
//
// Fetches are strictly sequential in row-major order. Tile results are
// independent, so a future implementation may fan the fetch loop out over a
// bounded worker pool: each worker must own exactly one grid cell and the
// assembler must only run after every fetch has settled. No other ordering
// constraint exists.
package pipeline

import (
	"context"
	"image"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/errors"
	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/layers"
	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/legend"
	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/raster"
	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/timeslot"
	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/wmts"
)

// =============================================================================
// Defaults
// =============================================================================

const (
	// DefaultZoom is the zoom level used when none is requested.
	DefaultZoom = 6

	// DefaultLayer is the layer key used when none is requested.
	DefaultLayer = "temperature"
)

// =============================================================================
// Fetcher - the upstream dependency, injectable for tests
// =============================================================================

// Fetcher is the upstream tile service as the pipeline sees it.
// *wmts.Client satisfies it.
type Fetcher interface {
	FetchTile(ctx context.Context, req wmts.TileRequest) (image.Image, error)
	FetchLegend(ctx context.Context, layer, style string) ([]byte, error)
}

// =============================================================================
// Options and Result
// =============================================================================

// Options configures one snapshot run.
type Options struct {
	Layer      string // catalogue layer key; empty means DefaultLayer
	Zoom       int    // tile matrix zoom level; zero means DefaultZoom
	DaysOffset int    // day offset applied to the local clock (may be negative)
	HourOffset int    // additional hour offset (may be negative)
	WithTitle  bool   // include the title banner
	WithLegend bool   // include the legend panel

	// OnTile, when set, is invoked after every tile fetch with the outcome.
	// It runs on the fetch goroutine; keep it cheap.
	OnTile func(coord wmts.Coordinate, err error)
}

// Result is the outcome of a successful snapshot run.
type Result struct {
	Image  *image.NRGBA    // the final composite
	Layer  layers.Layer    // the resolved catalogue entry
	Window timeslot.Window // the resolved request time

	TilesOK    int // tiles fetched and decoded
	TilesTotal int // tiles requested

	Legend *legend.Ramp // parsed ramp, nil when the legend was unavailable or not requested
}

// =============================================================================
// Runner
// =============================================================================

// Runner executes snapshot pipelines against one tile service and catalogue.
type Runner struct {
	fetcher Fetcher
	catalog layers.Catalog
	logger  *log.Logger
}

// NewRunner creates a Runner. A nil logger discards all output.
func NewRunner(fetcher Fetcher, catalog layers.Catalog, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	return &Runner{fetcher: fetcher, catalog: catalog, logger: logger}
}

// Run executes one snapshot pipeline.
//
// Returns INVALID_LAYER/INVALID_ZOOM for unknown catalogue lookups and
// NO_COVERAGE when every tile fetch failed. Context cancellation aborts the
// run between tile fetches and surfaces as the context's error.
func (r *Runner) Run(ctx context.Context, opts Options) (*Result, error) {
	if opts.Layer == "" {
		opts.Layer = DefaultLayer
	}
	if opts.Zoom == 0 {
		opts.Zoom = DefaultZoom
	}

	layer, err := r.catalog.Layer(opts.Layer)
	if err != nil {
		return nil, err
	}
	window, err := r.catalog.Window(opts.Zoom)
	if err != nil {
		return nil, err
	}

	slot, err := timeslot.Resolve(opts.DaysOffset, opts.HourOffset)
	if err != nil {
		return nil, err
	}
	r.logger.Info("Resolved request time", "utc", slot.UTCParam(), "local", slot.Display())

	grid, err := r.fetchGrid(ctx, layer, window, opts, slot)
	if err != nil {
		return nil, err
	}

	total := window.Rows() * window.Cols()
	ok := wmts.CountOK(grid)
	if ok == 0 {
		return nil, errors.New(errors.ErrCodeNoCoverage,
			"failed to download any of %d tiles for %s at zoom %d", total, layer.Key, opts.Zoom)
	}
	r.logger.Info("Downloaded tiles", "ok", ok, "total", total)

	start := time.Now()
	img := raster.Assemble(grid, wmts.TileSize)
	r.logger.Debug("Stitched grid", "size", img.Bounds().Max, "elapsed", time.Since(start).Round(time.Millisecond))

	if opts.WithTitle {
		img = raster.AddTitle(img, layer.Name, slot.Display())
	}

	result := &Result{
		Image:      img,
		Layer:      layer,
		Window:     slot,
		TilesOK:    ok,
		TilesTotal: total,
	}

	if opts.WithLegend {
		ramp, panel := r.buildLegend(ctx, layer, img.Bounds().Dy())
		if panel != nil {
			result.Image = raster.AttachLegend(img, panel)
			result.Legend = ramp
		}
	}

	return result, nil
}

// fetchGrid downloads the coverage window tile by tile, row-major.
// Failures are recorded in the grid, not returned; only context cancellation
// stops the loop early.
func (r *Runner) fetchGrid(ctx context.Context, layer layers.Layer, window layers.Coverage, opts Options, slot timeslot.Window) ([][]wmts.TileResult, error) {
	grid := make([][]wmts.TileResult, 0, window.Rows())

	for row := window.RowStart; row <= window.RowEnd; row++ {
		cells := make([]wmts.TileResult, 0, window.Cols())
		for col := window.ColStart; col <= window.ColEnd; col++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}

			coord := wmts.Coordinate{Zoom: window.Zoom, Row: row, Col: col}
			img, err := r.fetcher.FetchTile(ctx, wmts.TileRequest{
				Layer:     layer.ID,
				Style:     layer.Style,
				Coord:     coord,
				Time:      slot.UTCParam(),
				Elevation: layer.Elevation,
			})

			if err != nil {
				r.logger.Debug("Tile failed", "coord", coord, "err", err)
			}
			if opts.OnTile != nil {
				opts.OnTile(coord, err)
			}
			cells = append(cells, wmts.TileResult{Coord: coord, Image: img, Err: err})
		}
		grid = append(grid, cells)
	}
	return grid, nil
}

// buildLegend fetches, parses and renders the legend panel at the grid's
// final height. Every failure path logs a warning and returns nil panels;
// the snapshot simply ships without a legend.
func (r *Runner) buildLegend(ctx context.Context, layer layers.Layer, height int) (*legend.Ramp, *image.NRGBA) {
	data, err := r.fetcher.FetchLegend(ctx, layer.ID, layer.Style)
	if err != nil {
		r.logger.Warn("Could not download color scale, continuing without it", "err", err)
		return nil, nil
	}

	ramp, err := legend.Parse(data)
	if err != nil {
		r.logger.Warn("Could not parse color scale, continuing without it", "err", err)
		return nil, nil
	}

	panel := legend.Render(ramp, legend.RenderOptions{
		Height:   height,
		BarWidth: legend.DefaultBarWidth,
		Caption: legend.Caption{
			Title:  layer.LegendTitle,
			Unit:   layer.LegendUnit,
			Format: layer.ValueFormat,
		},
	})
	return ramp, panel
}
