package raster

import (
	"image"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/fontutil"
)

const (
	// TitleHeight is the fixed height of the title banner strip.
	TitleHeight = 60

	// LegendPadding separates the grid raster from the legend panel.
	LegendPadding = 20
)

// AddTitle places img below a fixed-height white banner carrying the layer
// display name and the resolved local-time string.
func AddTitle(img image.Image, title, timeStr string) *image.NRGBA {
	w := img.Bounds().Dx()
	out := imaging.New(w, img.Bounds().Dy()+TitleHeight, background)
	out = imaging.Paste(out, img, image.Pt(0, TitleHeight))

	banner := gg.NewContext(w, TitleHeight)
	banner.SetColor(background)
	banner.Clear()

	titleFace := fontutil.Load(nil, 24)
	banner.SetFontFace(titleFace)
	banner.SetRGB(0, 0, 0)
	banner.DrawString(title, 10, 28)

	timeFace := fontutil.Load(nil, 14)
	banner.SetFontFace(timeFace)
	banner.SetRGB(0.5, 0.5, 0.5)
	banner.DrawString("Time: "+timeStr, 10, 50)

	return imaging.Paste(out, banner.Image(), image.Pt(0, 0))
}

// AttachLegend widens the canvas by the legend width plus padding and places
// the legend panel to the right of img, aligned to the top edge.
func AttachLegend(img image.Image, legend image.Image) *image.NRGBA {
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	lw := legend.Bounds().Dx()

	out := imaging.New(w+LegendPadding+lw, h, background)
	out = imaging.Paste(out, img, image.Pt(0, 0))
	return imaging.Paste(out, legend, image.Pt(w+LegendPadding, 0))
}
