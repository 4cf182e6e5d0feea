package legend

import (
	"fmt"
	"image"
	"image/color"
	"regexp"
	"strconv"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/fontutil"
)

const (
	// padding is the fixed margin used throughout the panel layout.
	padding = 40

	// labelWidth is the column reserved right of the bar for value captions.
	labelWidth = 120

	// DefaultBarWidth is the color bar width used by the pipeline.
	DefaultBarWidth = 60
)

// Caption selects the text dressing of a legend panel: the title and unit
// drawn above the bar, and the fmt verb for the three numeric captions
// (e.g. "%.1f°C" for temperature, "%.2f" for current velocity).
type Caption struct {
	Title  string
	Unit   string
	Format string
}

// RenderOptions configures Render.
type RenderOptions struct {
	Height   int     // target panel height in pixels
	BarWidth int     // color bar width; 0 means DefaultBarWidth
	Caption  Caption // title/unit/format selection
}

// Render redraws the ramp as a standalone legend panel at the target height.
//
// The bar occupies the vertical band between 2*padding from the top and
// bottom edges. Every bar row is colored by piecewise-linear interpolation
// over the stop list; rows whose position matches no stop pair (empty or
// single-stop ramps, positions outside the stop domain) keep the panel
// background. A border is drawn around the bar after painting.
//
// Numeric captions come from the labels: the first signed decimal substring
// of each label is parsed, the minimum and maximum of the parsed values are
// drawn at the bar's bottom and top, and their arithmetic mean at its
// center. When no label yields a number the panel is returned without
// captions.
func Render(ramp *Ramp, opts RenderOptions) *image.NRGBA {
	barWidth := opts.BarWidth
	if barWidth == 0 {
		barWidth = DefaultBarWidth
	}
	totalWidth := padding + barWidth + padding + labelWidth + padding

	dc := gg.NewContext(totalWidth, opts.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	barX := float64(padding)
	barTop := padding * 2
	barBottom := opts.Height - padding*2
	barHeight := barBottom - barTop

	for y := 0; y < barHeight; y++ {
		ratio := float64(y) / float64(barHeight)
		c, ok := ColorAt(ramp.Stops, ratio)
		if !ok {
			continue
		}
		dc.SetColor(c)
		// +0.5 centers the unit-width stroke on the pixel row.
		dc.DrawLine(barX, float64(barTop+y)+0.5, barX+float64(barWidth), float64(barTop+y)+0.5)
		dc.Stroke()
	}

	// Border around the bar.
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(2)
	dc.DrawRectangle(barX, float64(barTop), float64(barWidth), float64(barHeight))
	dc.Stroke()

	titleFace := fontutil.Load(nil, 18)
	dc.SetFontFace(titleFace)
	dc.SetRGB(0, 0, 0)
	if opts.Caption.Title != "" {
		dc.DrawStringAnchored(opts.Caption.Title, float64(totalWidth)/2, padding/2, 0.5, 0.5)
	}
	if opts.Caption.Unit != "" {
		dc.DrawStringAnchored(opts.Caption.Unit, float64(totalWidth)/2, padding/2+25, 0.5, 0.5)
	}

	values := Values(ramp.Labels)
	if len(values) > 0 {
		minVal, maxVal := values[0], values[0]
		for _, v := range values[1:] {
			if v < minVal {
				minVal = v
			}
			if v > maxVal {
				maxVal = v
			}
		}
		midVal := (minVal + maxVal) / 2

		format := opts.Caption.Format
		if format == "" {
			format = "%.1f"
		}

		valueFace := fontutil.Load(nil, 24)
		dc.SetFontFace(valueFace)
		labelX := barX + float64(barWidth) + padding

		dc.DrawString(fmt.Sprintf(format, maxVal), labelX, float64(barTop)+8)
		dc.DrawString(fmt.Sprintf(format, midVal), labelX, float64((barTop+barBottom)/2))
		dc.DrawString(fmt.Sprintf(format, minVal), labelX, float64(barBottom)-8)
	}

	// gg contexts are RGBA-backed; the rest of the pipeline works in NRGBA.
	return imaging.Clone(dc.Image())
}

// ColorAt evaluates the ramp at ratio in [0,1].
//
// The first consecutive stop pair whose offset range contains ratio*100
// wins; the channel blend is linear within the pair, and a zero-width pair
// blends at 0. The second return is false when no pair matches (empty and
// single-stop ramps, or a ratio outside the stop domain), in which case the
// caller leaves the row unpainted.
func ColorAt(stops []Stop, ratio float64) (color.NRGBA, bool) {
	pct := ratio * 100
	for i := 0; i+1 < len(stops); i++ {
		lo, hi := stops[i], stops[i+1]
		if pct < lo.Offset || pct > hi.Offset {
			continue
		}
		blend := 0.0
		if hi.Offset != lo.Offset {
			blend = (pct - lo.Offset) / (hi.Offset - lo.Offset)
		}
		return color.NRGBA{
			R: lerp(lo.R, hi.R, blend),
			G: lerp(lo.G, hi.G, blend),
			B: lerp(lo.B, hi.B, blend),
			A: 255,
		}, true
	}
	return color.NRGBA{}, false
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a)*(1-t) + float64(b)*t)
}

// numericSubstring pulls the first signed decimal out of a label text, so
// "24.5°C" and "-2" both parse while unit-only labels are ignored.
var numericSubstring = regexp.MustCompile(`-?\d+(\.\d+)?`)

// Values extracts the numeric value of each label, in label order.
// Labels without a numeric substring contribute nothing.
func Values(labels []Label) []float64 {
	var out []float64
	for _, l := range labels {
		m := numericSubstring.FindString(l.Text)
		if m == "" {
			continue
		}
		if v, err := strconv.ParseFloat(m, 64); err == nil {
			out = append(out, v)
		}
	}
	return out
}
