package raster

import (
	"image"
	"image/color"
	"testing"

	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/errors"
	"github.com/newzealandpaul/sea-surface-temperature-nz/pkg/wmts"
)

func solidTile(size int, c color.NRGBA) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func failedTile() wmts.TileResult {
	return wmts.TileResult{Err: errors.New(errors.ErrCodeNetwork, "unreachable")}
}

func TestAssembleDimensions(t *testing.T) {
	const tile = 8
	red := color.NRGBA{R: 255, A: 255}

	tests := []struct {
		name       string
		rows, cols int
		absent     map[[2]int]bool // cells to fail
	}{
		{"full coverage", 2, 3, nil},
		{"partial coverage", 3, 3, map[[2]int]bool{{0, 0}: true, {2, 1}: true}},
		{"zero coverage", 2, 2, map[[2]int]bool{{0, 0}: true, {0, 1}: true, {1, 0}: true, {1, 1}: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			grid := make([][]wmts.TileResult, tt.rows)
			for r := range grid {
				grid[r] = make([]wmts.TileResult, tt.cols)
				for c := range grid[r] {
					if tt.absent[[2]int{r, c}] {
						grid[r][c] = failedTile()
					} else {
						grid[r][c] = wmts.TileResult{Image: solidTile(tile, red)}
					}
				}
			}

			out := Assemble(grid, tile)
			if got, want := out.Bounds().Dx(), tt.cols*tile; got != want {
				t.Errorf("width = %d, want %d", got, want)
			}
			if got, want := out.Bounds().Dy(), tt.rows*tile; got != want {
				t.Errorf("height = %d, want %d", got, want)
			}
		})
	}
}

func TestAssemblePlacesTilesRowMajor(t *testing.T) {
	const tile = 4
	red := color.NRGBA{R: 255, A: 255}
	blue := color.NRGBA{B: 255, A: 255}

	grid := [][]wmts.TileResult{
		{{Image: solidTile(tile, red)}, failedTile()},
		{failedTile(), {Image: solidTile(tile, blue)}},
	}

	out := Assemble(grid, tile)

	// (0,0) cell painted red, (1,1) cell painted blue, gaps stay white.
	if got := out.NRGBAAt(1, 1); got != red {
		t.Errorf("cell (0,0) pixel = %v, want red", got)
	}
	if got := out.NRGBAAt(tile+1, tile+1); got != blue {
		t.Errorf("cell (1,1) pixel = %v, want blue", got)
	}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if got := out.NRGBAAt(tile+1, 1); got != white {
		t.Errorf("absent cell pixel = %v, want background white", got)
	}
}

func TestAssembleSingleSurvivingTile(t *testing.T) {
	const tile = 4
	green := color.NRGBA{G: 255, A: 255}

	grid := make([][]wmts.TileResult, 3)
	for r := range grid {
		grid[r] = make([]wmts.TileResult, 3)
		for c := range grid[r] {
			grid[r][c] = failedTile()
		}
	}
	grid[1][2] = wmts.TileResult{Image: solidTile(tile, green)}

	out := Assemble(grid, tile)
	if got, want := out.Bounds().Dx(), 3*tile; got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
	if got := out.NRGBAAt(2*tile+1, tile+1); got != green {
		t.Errorf("surviving cell pixel = %v, want green", got)
	}
}

func TestAssembleEmptyGrid(t *testing.T) {
	out := Assemble(nil, 256)
	if out.Bounds().Dx() != 0 || out.Bounds().Dy() != 0 {
		t.Errorf("empty grid produced %v", out.Bounds())
	}
}

func TestAddTitleExtendsCanvas(t *testing.T) {
	base := solidTile(32, color.NRGBA{R: 200, A: 255})
	out := AddTitle(base, "Sea Surface Temperature", "2026-01-15 19:00 NZDT")

	if got, want := out.Bounds().Dy(), 32+TitleHeight; got != want {
		t.Errorf("height = %d, want %d", got, want)
	}
	if got, want := out.Bounds().Dx(), 32; got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
	// The original raster must sit below the banner, unshifted horizontally.
	if got := out.NRGBAAt(0, TitleHeight); (got != color.NRGBA{R: 200, A: 255}) {
		t.Errorf("pixel below banner = %v, want original raster", got)
	}
}

func TestAttachLegendWidensCanvas(t *testing.T) {
	base := solidTile(40, color.NRGBA{R: 10, A: 255})
	legend := solidTile(16, color.NRGBA{B: 10, A: 255})

	out := AttachLegend(base, legend)
	if got, want := out.Bounds().Dx(), 40+LegendPadding+16; got != want {
		t.Errorf("width = %d, want %d", got, want)
	}
	if got, want := out.Bounds().Dy(), 40; got != want {
		t.Errorf("height = %d, want %d", got, want)
	}
	// Legend top-aligned at the far right, padding stays background.
	if got := out.NRGBAAt(40+LegendPadding, 0); (got != color.NRGBA{B: 10, A: 255}) {
		t.Errorf("legend pixel = %v", got)
	}
	white := color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	if got := out.NRGBAAt(40+LegendPadding/2, 20); got != white {
		t.Errorf("padding pixel = %v, want white", got)
	}
}
