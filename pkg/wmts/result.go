package wmts

import "image"

// TileResult is the outcome of one tile fetch: either a decoded raster or a
// recorded failure. Callers branch on Ok rather than on error control flow,
// so a failed tile is data the grid assembler can skip, not an exception.
type TileResult struct {
	Coord Coordinate
	Image image.Image // nil when the fetch failed
	Err   error       // nil when the fetch succeeded
}

// Ok reports whether the tile was fetched and decoded.
func (r TileResult) Ok() bool { return r.Err == nil && r.Image != nil }

// CountOK returns the number of successful tiles in a result grid.
func CountOK(grid [][]TileResult) int {
	n := 0
	for _, row := range grid {
		for _, cell := range row {
			if cell.Ok() {
				n++
			}
		}
	}
	return n
}
