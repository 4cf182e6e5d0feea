package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newLayersCmd creates the layers command, which lists the catalogue of
// known data layers and the tile coverage windows per zoom level.
func newLayersCmd() *cobra.Command {
	var config string

	cmd := &cobra.Command{
		Use:   "layers",
		Short: "List available data layers and zoom coverage",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := loadCatalog(config)
			if err != nil {
				return err
			}

			fmt.Println(StyleTitle.Render("Data layers"))
			for _, key := range cat.LayerKeys() {
				l := cat.Layers[key]
				printKeyValue(key, l.Name)
				fmt.Println("  " + StyleDim.Render(l.ID))
			}

			fmt.Println()
			fmt.Println(StyleTitle.Render("Coverage"))
			for _, zoom := range cat.ZoomLevels() {
				w := cat.Coverage[zoom]
				printKeyValue(fmt.Sprintf("zoom %d", zoom),
					fmt.Sprintf("rows %d-%d, cols %d-%d (%dx%d tiles)",
						w.RowStart, w.RowEnd, w.ColStart, w.ColEnd, w.Rows(), w.Cols()))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&config, "config", "", "TOML catalogue override file")
	return cmd
}
