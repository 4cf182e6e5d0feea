// Package raster implements the image-space operations of the snapshot
// pipeline: stitching fetched tiles into one contiguous raster and
// compositing the title banner and legend panel around it.
//
// All operations work on plain image.Image values and return *image.NRGBA,
// so the assembler, legend renderer and compositor share one raster
// representation.
package raster

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"

	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/wmts"
)

// background is the fill for absent cells and composited margins.
var background = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// Assemble stitches a result grid into a single raster.
//
// The grid is consumed row-major: row r, column c lands at pixel offset
// (c*tileSize, r*tileSize). Failed cells are skipped and keep the background
// fill, so the output is always exactly (cols*tileSize) x (rows*tileSize)
// pixels no matter how many tiles are absent. An empty grid yields a 0x0
// image.
func Assemble(grid [][]wmts.TileResult, tileSize int) *image.NRGBA {
	rows := len(grid)
	cols := 0
	if rows > 0 {
		cols = len(grid[0])
	}

	out := imaging.New(cols*tileSize, rows*tileSize, background)
	for r, row := range grid {
		for c, cell := range row {
			if !cell.Ok() {
				continue
			}
			out = imaging.Paste(out, cell.Image, image.Pt(c*tileSize, r*tileSize))
		}
	}
	return out
}
