// Package cli implements the oceanmap command-line interface.
//
// This package provides commands for downloading and stitching WMTS ocean
// data tiles into snapshot images of New Zealand waters. The CLI is built
// using cobra and supports verbose logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - snapshot: Download a tile grid and produce the composite map image
//   - legend: Fetch and render just the color-scale legend for a layer
//   - layers: List the catalogue of known data layers and zoom coverage
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context; every run gets a short random run id
// attached as a logger field so interleaved invocations can be told apart.
package cli

import (
	"context"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/buildinfo"
)

// Execute runs the oceanmap CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
func Execute(ctx context.Context) error {
	var verbose bool

	root := &cobra.Command{
		Use:          "oceanmap",
		Short:        "oceanmap renders snapshot maps of New Zealand ocean conditions",
		Long:         `oceanmap downloads WMTS tiles of ocean-condition data (temperature, anomaly, salinity, currents) for the New Zealand region, stitches them into a single image and embeds a color-scale legend extracted from the service.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			logger := newLogger(os.Stderr, level).With("run", uuid.NewString()[:8])
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newSnapshotCmd())
	root.AddCommand(newLegendCmd())
	root.AddCommand(newLayersCmd())

	return root.ExecuteContext(ctx)
}
