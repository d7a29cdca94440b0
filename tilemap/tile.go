// Package tilemap builds the fixed-size ground layer of the world: a dense grid
// of tiles, each referencing a cell of the tile set, together with the
// transform that centers the grid on the world origin.
package tilemap

// TilePos is the position of a tile within its grid.
type TilePos struct {
	X, Y uint32
}

// Size is a grid extent measured in tiles.
type Size struct {
	X, Y uint32
}

// Count returns the number of tiles a grid of this size holds.
func (s Size) Count() int {
	return int(s.X) * int(s.Y)
}

// Contains reports whether pos lies within [0,X) x [0,Y).
func (s Size) Contains(pos TilePos) bool {
	return pos.X < s.X && pos.Y < s.Y
}

// Tile is one cell of the grid. Tiles never change after generation.
type Tile struct {
	Pos          TilePos
	TextureIndex uint32
}
