// Package parallel partitions a raster into 64x64 tiles and runs per-tile
// work on a worker pool.
//
// Tiles never overlap, so work for different tiles can touch the shared
// pixel buffer concurrently. Work for one tile always runs on one goroutine,
// which keeps every pixel's update sequence identical to a serial run.
package parallel

import "image"

const (
	// TileWidth is the width of a tile in pixels.
	TileWidth = 64

	// TileHeight is the height of a tile in pixels.
	TileHeight = 64
)

// Grid is the tile partition of a width x height raster.
type Grid struct {
	width, height int
	cols, rows    int
	tiles         []image.Rectangle
}

// NewGrid partitions a raster. Edge tiles are clipped to the raster.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		return &Grid{}
	}
	g := &Grid{
		width:  width,
		height: height,
		cols:   (width + TileWidth - 1) / TileWidth,
		rows:   (height + TileHeight - 1) / TileHeight,
	}
	g.tiles = make([]image.Rectangle, 0, g.cols*g.rows)
	for ty := range g.rows {
		for tx := range g.cols {
			x0, y0 := tx*TileWidth, ty*TileHeight
			g.tiles = append(g.tiles, image.Rect(x0, y0, min(x0+TileWidth, width), min(y0+TileHeight, height)))
		}
	}
	return g
}

// Tiles returns every tile in row-major order.
func (g *Grid) Tiles() []image.Rectangle {
	return g.tiles
}

// TileCount returns the number of tiles.
func (g *Grid) TileCount() int {
	return len(g.tiles)
}

// TilesIn returns the tiles that intersect r.
func (g *Grid) TilesIn(r image.Rectangle) []image.Rectangle {
	r = r.Intersect(image.Rect(0, 0, g.width, g.height))
	if r.Empty() {
		return nil
	}
	tx0, ty0 := r.Min.X/TileWidth, r.Min.Y/TileHeight
	tx1, ty1 := (r.Max.X-1)/TileWidth, (r.Max.Y-1)/TileHeight

	out := make([]image.Rectangle, 0, (tx1-tx0+1)*(ty1-ty0+1))
	for ty := ty0; ty <= ty1; ty++ {
		for tx := tx0; tx <= tx1; tx++ {
			out = append(out, g.tiles[ty*g.cols+tx])
		}
	}
	return out
}
