package cli

import (
	"fmt"
	"time"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/layers"
	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/pipeline"
	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/wmts"
)

// snapshotOpts holds the command-line flags for the snapshot command.
type snapshotOpts struct {
	dataType string // catalogue layer key
	zoom     int    // tile matrix zoom level
	days     int    // day offset: 0=today, 1=tomorrow, -1=yesterday
	hours    int    // additional hour offset
	output   string // output file path (auto-generated if empty)
	noLegend bool   // exclude the color scale
	noTitle  bool   // exclude the title banner
	config   string // optional TOML catalogue override
	timeout  time.Duration
}

// newSnapshotCmd creates the snapshot command, the tool's main operation:
// download the tile grid for a layer, stitch it, decorate it, save a PNG.
//
// Default settings:
//   - type: temperature, zoom: 6 (medium resolution)
//   - today's most recent 6-hour slot
//   - legend and title banner included
func newSnapshotCmd() *cobra.Command {
	opts := snapshotOpts{
		dataType: pipeline.DefaultLayer,
		zoom:     pipeline.DefaultZoom,
		timeout:  wmts.DefaultTimeout,
	}

	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Download and stitch a tile grid into a map image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSnapshot(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dataType, "type", "t", opts.dataType, "data type: temperature, anomaly, salinity, currents")
	cmd.Flags().IntVarP(&opts.zoom, "zoom", "z", opts.zoom, "zoom level: 5=low, 6=medium, 7=high")
	cmd.Flags().IntVarP(&opts.days, "days", "d", 0, "days offset: 0=today, 1=tomorrow, -1=yesterday")
	cmd.Flags().IntVar(&opts.hours, "hours", 0, "additional hours offset")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output filename (auto-generated if not specified)")
	cmd.Flags().BoolVar(&opts.noLegend, "no-legend", false, "exclude color scale from output")
	cmd.Flags().BoolVar(&opts.noTitle, "no-title", false, "exclude title banner from output")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML catalogue override file")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "per-tile request timeout")

	return cmd
}

// outputName derives the default output filename from the data type, zoom
// level and invocation time.
func outputName(dataType string, zoom int, now time.Time) string {
	return fmt.Sprintf("nz_%s_z%d_%s.png", dataType, zoom, now.Format("20060102_150405"))
}

// loadCatalog loads the layer catalogue, applying a TOML override when one
// was requested.
func loadCatalog(path string) (layers.Catalog, error) {
	if path == "" {
		return layers.Default(), nil
	}
	return layers.Load(path)
}

func runSnapshot(cmd *cobra.Command, opts *snapshotOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cat, err := loadCatalog(opts.config)
	if err != nil {
		return err
	}

	output := opts.output
	if output == "" {
		output = outputName(opts.dataType, opts.zoom, time.Now())
	}

	client := wmts.NewClient(wmts.WithTimeout(opts.timeout))
	runner := pipeline.NewRunner(client, cat, logger)

	prog := newProgress(logger)
	result, err := runner.Run(ctx, pipeline.Options{
		Layer:      opts.dataType,
		Zoom:       opts.zoom,
		DaysOffset: opts.days,
		HourOffset: opts.hours,
		WithTitle:  !opts.noTitle,
		WithLegend: !opts.noLegend,
		OnTile: func(coord wmts.Coordinate, err error) {
			fmt.Printf("  Tile %s %s\n", coord, tileMark(err))
		},
	})
	if err != nil {
		printError("%s", err)
		return err
	}

	if result.TilesOK < result.TilesTotal {
		printWarning("%d of %d tiles missing; gaps left blank", result.TilesTotal-result.TilesOK, result.TilesTotal)
	}
	if !opts.noLegend {
		if result.Legend != nil {
			printLegendPreview(result.Legend)
		} else {
			printWarning("could not fetch color scale, continuing without it")
		}
	}

	if err := imaging.Save(result.Image, output); err != nil {
		return fmt.Errorf("saving %s: %w", output, err)
	}

	b := result.Image.Bounds()
	printSuccess("%s at %s", result.Layer.Name, result.Window.Display())
	printKeyValue("Tiles", fmt.Sprintf("%d/%d", result.TilesOK, result.TilesTotal))
	printKeyValue("Size", fmt.Sprintf("%dx%d px", b.Dx(), b.Dy()))
	printFile(output)
	prog.done(fmt.Sprintf("Saved %s", output))

	return nil
}
