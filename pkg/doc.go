// Package pkg provides the core libraries for the oceanmap snapshot tool.
//
// # Overview
//
// oceanmap turns WMTS ocean-model tiles into a single annotated raster. The
// pkg directory is organized by pipeline stage:
//
//  1. [timeslot] - Resolve the 6-hour-aligned request time
//  2. [wmts] - Fetch tiles and legend descriptions from the tile service
//  3. [raster] - Stitch the tile grid and composite banner/legend
//  4. [legend] - Parse the SVG color scale and re-render it as a panel
//  5. [pipeline] - Orchestrate the full snapshot run
//
// Supporting packages: [layers] (the data-layer catalogue and coverage
// windows), [errors] (structured error codes), [fontutil] (best-effort font
// acquisition) and [buildinfo] (ldflags version data).
//
// # Data Flow
//
//	timeslot.Resolve
//	       ↓
//	wmts.Client.FetchTile (per grid cell, row-major)
//	       ↓
//	raster.Assemble → raster.AddTitle
//	       ↓
//	wmts.Client.FetchLegend → legend.Parse → legend.Render
//	       ↓
//	raster.AttachLegend → PNG
//
// # Quick Start
//
//	runner := pipeline.NewRunner(wmts.NewClient(), layers.Default(), logger)
//	result, err := runner.Run(ctx, pipeline.Options{
//	    Layer:      "temperature",
//	    Zoom:       6,
//	    WithTitle:  true,
//	    WithLegend: true,
//	})
//	if err != nil {
//	    return err
//	}
//	imaging.Save(result.Image, "nz_temperature.png")
//
// [timeslot]: https://pkg.go.dev/github.com/newzealandpaul/sea-surface-temperature-nz/pkg/timeslot
// [wmts]: https://pkg.go.dev/github.com/newzealandpaul/sea-surface-temperature-nz/pkg/wmts
// [raster]: https://pkg.go.dev/github.com/newzealandpaul/sea-surface-temperature-nz/pkg/raster
// [legend]: https://pkg.go.dev/github.com/newzealandpaul/sea-surface-temperature-nz/pkg/legend
// [pipeline]: https://pkg.go.dev/github.com/newzealandpaul/sea-surface-temperature-nz/pkg/pipeline
// [layers]: https://pkg.go.dev/github.com/newzealandpaul/sea-surface-temperature-nz/pkg/layers
// [errors]: https://pkg.go.dev/github.com/newzealandpaul/sea-surface-temperature-nz/pkg/errors
// [fontutil]: https://pkg.go.dev/github.com/newzealandpaul/sea-surface-temperature-nz/pkg/fontutil
// [buildinfo]: https://pkg.go.dev/github.com/newzealandpaul/sea-surface-temperature-nz/pkg/buildinfo
package pkg
