// Package fontutil acquires font faces for raster text drawing.
//
// Fonts are a best-effort resource: the tool draws captions with a real
// TrueType face when one can be found on the host system, and silently falls
// back to a built-in bitmap face otherwise. Callers never receive an error
// from acquisition, only a usable face.
package fontutil

import (
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// DefaultCandidates are the font names tried in order when no explicit font
// is requested. DejaVu ships on most Linux distributions, Arial and Helvetica
// cover macOS and Windows.
var DefaultCandidates = []string{"DejaVuSans.ttf", "Arial.ttf", "Helvetica.ttf"}

// Face is a font face together with a flag telling whether a real TrueType
// font was found or the bitmap fallback is in use. Metrics differ enough
// between the two that layout code occasionally wants to know.
type Face struct {
	font.Face
	Fallback bool
}

// Load resolves the first locatable candidate font at the given point size.
// If no candidate can be found or parsed, the built-in basicfont face is
// returned with Fallback set; a zero-value candidate list uses
// DefaultCandidates.
func Load(candidates []string, size float64) Face {
	if len(candidates) == 0 {
		candidates = DefaultCandidates
	}

	for _, name := range candidates {
		path, err := findfont.Find(name)
		if err != nil {
			continue
		}
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		ft, err := truetype.Parse(data)
		if err != nil {
			continue
		}
		return Face{Face: truetype.NewFace(ft, &truetype.Options{Size: size})}
	}

	return Face{Face: basicfont.Face7x13, Fallback: true}
}
