package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/legend"
)

// =============================================================================
// Color Palette
// =============================================================================

var (
	colorCyan   = lipgloss.Color("36")  // Teal - primary actions
	colorGreen  = lipgloss.Color("35")  // Green - success
	colorYellow = lipgloss.Color("220") // Amber - warnings
	colorRed    = lipgloss.Color("167") // Soft red - errors
	colorWhite  = lipgloss.Color("255") // Bright white - values
	colorGray   = lipgloss.Color("245") // Gray - secondary text
	colorDim    = lipgloss.Color("240") // Dim gray - muted text
)

// =============================================================================
// Styles
// =============================================================================

var (
	// StyleTitle for main headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary/muted text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)

	// StyleValue for data values.
	StyleValue = lipgloss.NewStyle().Foreground(colorWhite)

	// StyleWarning for warning messages.
	StyleWarning = lipgloss.NewStyle().Foreground(colorYellow)

	styleIconSuccess = lipgloss.NewStyle().Foreground(colorGreen)
	styleIconError   = lipgloss.NewStyle().Foreground(colorRed)
	styleIconWarning = lipgloss.NewStyle().Foreground(colorYellow)
	styleKey         = lipgloss.NewStyle().Foreground(colorGray).Width(14)
)

// =============================================================================
// Icons
// =============================================================================

const (
	iconSuccess = "✓"
	iconError   = "✗"
	iconWarning = "!"
	iconArrow   = "→"
)

// =============================================================================
// Status Output
// =============================================================================

// printSuccess prints a success message.
func printSuccess(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconSuccess.Render(iconSuccess) + " " + msg)
}

// printError prints an error message.
func printError(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconError.Render(iconError) + " " + msg)
}

// printWarning prints a warning message.
func printWarning(format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	fmt.Println(styleIconWarning.Render(iconWarning) + " " + StyleWarning.Render(msg))
}

// printFile prints a file output line.
func printFile(path string) {
	fmt.Println("  " + StyleDim.Render(iconArrow) + " " + StyleValue.Render(path))
}

// printKeyValue prints a labeled value.
func printKeyValue(key, value string) {
	fmt.Println(styleKey.Render(key) + " " + StyleValue.Render(value))
}

// tileMark returns the per-tile progress marker.
func tileMark(err error) string {
	if err != nil {
		return styleIconError.Render(iconError)
	}
	return styleIconSuccess.Render(iconSuccess)
}

// =============================================================================
// Legend Preview
// =============================================================================

// previewBars is the number of sample rows shown in the terminal preview.
const previewBars = 20

// printLegendPreview renders the parsed color ramp as a column of truecolor
// bars with their RGB values, followed by the label value range.
func printLegendPreview(ramp *legend.Ramp) {
	if ramp == nil || len(ramp.Stops) == 0 {
		return
	}

	fmt.Println()
	fmt.Println("  " + StyleTitle.Render("Legend Preview"))
	fmt.Println("  " + StyleDim.Render("────────────────────────────────────────"))

	for i := 0; i < previewBars; i++ {
		ratio := float64(i) / float64(previewBars-1)
		c, ok := legend.ColorAt(ramp.Stops, ratio)
		if !ok {
			continue
		}
		swatch := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))).
			Render("    ")
		fmt.Printf("  %s rgb(%3d, %3d, %3d)\n", swatch, c.R, c.G, c.B)
	}

	fmt.Println("  " + StyleDim.Render("────────────────────────────────────────"))
	if len(ramp.Labels) > 0 {
		first := ramp.Labels[0].Text
		last := ramp.Labels[len(ramp.Labels)-1].Text
		fmt.Println("  " + StyleDim.Render(fmt.Sprintf("Range: %s to %s", first, last)))
	}
	fmt.Println()
}
