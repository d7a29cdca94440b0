package tilemap

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/plus3/tileview/vec"
)

var (
	ErrInvalidDimensions   = errors.New("tilemap: width and height must be non-zero")
	ErrInvalidTextureRange = errors.New("tilemap: texture index bound must be non-zero")
)

// Options describes the grid to generate.
type Options struct {
	Size         Size
	TextureCount uint32
	TileSize     vec.Vec2
	Spacing      vec.Vec2
	// Z is the depth of the layer; 0 for the ground.
	Z float32
}

// Generate builds a grid where every tile draws an independent, uniformly
// distributed texture index in [0, TextureCount) from rng. A nil rng uses a
// freshly seeded process-local generator.
func Generate(opts Options, rng *rand.Rand) (*TileGrid, error) {
	if opts.Size.X == 0 || opts.Size.Y == 0 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, opts.Size.X, opts.Size.Y)
	}
	if opts.TextureCount == 0 {
		return nil, ErrInvalidTextureRange
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	grid := &TileGrid{
		Size:         opts.Size,
		TileSize:     opts.TileSize,
		Spacing:      opts.Spacing,
		Transform:    CenterTransform(opts.Size, opts.TileSize, opts.Z),
		textureCount: opts.TextureCount,
		tiles:        make([]Tile, opts.Size.Count()),
	}

	for y := uint32(0); y < opts.Size.Y; y++ {
		for x := uint32(0); x < opts.Size.X; x++ {
			pos := TilePos{X: x, Y: y}
			grid.tiles[grid.index(pos)] = Tile{
				Pos:          pos,
				TextureIndex: rng.Uint32N(opts.TextureCount),
			}
		}
	}

	return grid, nil
}

// CenterTransform returns the translation that places a grid of the given size
// so that the midpoint between the first and last tile centers sits on the
// world origin.
func CenterTransform(size Size, gridSize vec.Vec2, z float32) vec.Vec3 {
	if size.X == 0 || size.Y == 0 {
		return vec.Vec3{Z: z}
	}
	return vec.Vec3{
		X: -float32(size.X-1) * gridSize.X / 2,
		Y: -float32(size.Y-1) * gridSize.Y / 2,
		Z: z,
	}
}
