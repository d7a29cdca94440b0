package tilemap

import (
	"math"

	"github.com/plus3/tileview/vec"
)

// TileGrid is a dense mapping from grid position to Tile, plus the metadata
// the renderer needs to place it in the world.
type TileGrid struct {
	Size     Size
	TileSize vec.Vec2
	// Spacing is the gap in pixels between cells of the tile set image.
	Spacing vec.Vec2
	// Transform is the translation of tile (0,0)'s center in world space.
	Transform vec.Vec3

	textureCount uint32
	tiles        []Tile
}

func (g *TileGrid) index(pos TilePos) int {
	return int(pos.Y)*int(g.Size.X) + int(pos.X)
}

// Get returns the tile at pos. The second value is false when pos is outside
// the grid.
func (g *TileGrid) Get(pos TilePos) (Tile, bool) {
	if !g.Size.Contains(pos) {
		return Tile{}, false
	}
	return g.tiles[g.index(pos)], true
}

// Len returns the number of tiles in the grid.
func (g *TileGrid) Len() int {
	return len(g.tiles)
}

// TextureCount returns the exclusive upper bound of every tile's texture index.
func (g *TileGrid) TextureCount() uint32 {
	return g.textureCount
}

// Iter returns an iterator over every tile in row-major order.
func (g *TileGrid) Iter() func(yield func(Tile) bool) {
	return func(yield func(Tile) bool) {
		for _, tile := range g.tiles {
			if !yield(tile) {
				return
			}
		}
	}
}

// TileCenter returns the world-space center of the tile at pos.
func (g *TileGrid) TileCenter(pos TilePos) vec.Vec3 {
	return vec.Vec3{
		X: g.Transform.X + float32(pos.X)*g.TileSize.X,
		Y: g.Transform.Y + float32(pos.Y)*g.TileSize.Y,
		Z: g.Transform.Z,
	}
}

// TileAt returns the tile whose cell contains the world-space point p. The
// second value is false when p is off the grid.
func (g *TileGrid) TileAt(p vec.Vec2) (Tile, bool) {
	fx := math.Floor(float64((p.X-g.Transform.X)/g.TileSize.X + 0.5))
	fy := math.Floor(float64((p.Y-g.Transform.Y)/g.TileSize.Y + 0.5))
	if fx < 0 || fy < 0 || fx >= float64(g.Size.X) || fy >= float64(g.Size.Y) {
		return Tile{}, false
	}
	return g.Get(TilePos{X: uint32(fx), Y: uint32(fy)})
}

// VisibleRange returns the half-open tile range [min, max) whose cells overlap
// the world-space rectangle lo..hi. The range is empty when the rectangle does
// not touch the grid.
func (g *TileGrid) VisibleRange(lo, hi vec.Vec2) (min, max TilePos) {
	clampAxis := func(v float64, n uint32) uint32 {
		if v < 0 {
			return 0
		}
		if v > float64(n) {
			return n
		}
		return uint32(v)
	}

	x0 := math.Floor(float64((lo.X-g.Transform.X)/g.TileSize.X + 0.5))
	y0 := math.Floor(float64((lo.Y-g.Transform.Y)/g.TileSize.Y + 0.5))
	x1 := math.Floor(float64((hi.X-g.Transform.X)/g.TileSize.X+0.5)) + 1
	y1 := math.Floor(float64((hi.Y-g.Transform.Y)/g.TileSize.Y+0.5)) + 1

	min = TilePos{X: clampAxis(x0, g.Size.X), Y: clampAxis(y0, g.Size.Y)}
	max = TilePos{X: clampAxis(x1, g.Size.X), Y: clampAxis(y1, g.Size.Y)}
	if max.X < min.X {
		max.X = min.X
	}
	if max.Y < min.Y {
		max.Y = min.Y
	}
	return min, max
}

// Histogram counts how many tiles use each texture index.
func (g *TileGrid) Histogram() []int {
	counts := make([]int, g.textureCount)
	for _, tile := range g.tiles {
		counts[tile.TextureIndex]++
	}
	return counts
}
