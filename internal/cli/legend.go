package cli

import (
	"fmt"
	"time"

	"github.com/disintegration/imaging"
	"github.com/spf13/cobra"

	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/legend"
	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/wmts"
)

// legendOpts holds the command-line flags for the legend command.
type legendOpts struct {
	dataType string
	height   int
	output   string
	config   string
	timeout  time.Duration
}

// newLegendCmd creates the legend command: fetch the SVG color-scale
// description for a layer, preview it in the terminal and render it as a
// standalone panel image. Useful for checking a layer's scale without
// downloading a full tile grid.
func newLegendCmd() *cobra.Command {
	opts := legendOpts{
		dataType: "temperature",
		height:   300,
		timeout:  wmts.DefaultTimeout,
	}

	cmd := &cobra.Command{
		Use:   "legend",
		Short: "Fetch and render a layer's color-scale legend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLegend(cmd, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.dataType, "type", "t", opts.dataType, "data type: temperature, anomaly, salinity, currents")
	cmd.Flags().IntVar(&opts.height, "height", opts.height, "panel height in pixels")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output filename (default nz_<type>_legend.png)")
	cmd.Flags().StringVar(&opts.config, "config", "", "TOML catalogue override file")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", opts.timeout, "request timeout")

	return cmd
}

func runLegend(cmd *cobra.Command, opts *legendOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	cat, err := loadCatalog(opts.config)
	if err != nil {
		return err
	}
	layer, err := cat.Layer(opts.dataType)
	if err != nil {
		return err
	}

	client := wmts.NewClient(wmts.WithTimeout(opts.timeout))
	logger.Info("Downloading color scale", "layer", layer.Key)

	data, err := client.FetchLegend(ctx, layer.ID, layer.Style)
	if err != nil {
		printError("%s", err)
		return err
	}
	ramp, err := legend.Parse(data)
	if err != nil {
		printError("%s", err)
		return err
	}
	logger.Debug("Parsed legend", "stops", len(ramp.Stops), "labels", len(ramp.Labels))

	printLegendPreview(ramp)

	panel := legend.Render(ramp, legend.RenderOptions{
		Height: opts.height,
		Caption: legend.Caption{
			Title:  layer.LegendTitle,
			Unit:   layer.LegendUnit,
			Format: layer.ValueFormat,
		},
	})

	output := opts.output
	if output == "" {
		output = fmt.Sprintf("nz_%s_legend.png", layer.Key)
	}
	if err := imaging.Save(panel, output); err != nil {
		return fmt.Errorf("saving %s: %w", output, err)
	}

	b := panel.Bounds()
	printSuccess("Legend rendered (%dx%d px)", b.Dx(), b.Dy())
	printFile(output)
	return nil
}
