package world

import (
	"github.com/plus3/tileview/tilemap"
	"github.com/plus3/tileview/vec"
)

// Config holds the tuned constants of a session.
type Config struct {
	MapSize      tilemap.Size
	TextureCount uint32
	TileSize     vec.Vec2
	Spacing      vec.Vec2
	GroundZ      float32

	PlayerZ     float32
	PlayerSpeed float32

	CameraZ       float32
	SmoothingRate float32
}

// DefaultConfig returns the configuration of the stock viewer: a 256x256 grid
// of 14 textures, a player walking at 100 units per second and a camera that
// lags noticeably behind it.
func DefaultConfig() Config {
	return Config{
		MapSize:       tilemap.Size{X: 256, Y: 256},
		TextureCount:  14,
		TileSize:      vec.Vec2{X: 31.999, Y: 31.999},
		Spacing:       vec.Vec2{X: 1, Y: 1},
		GroundZ:       0,
		PlayerZ:       1,
		PlayerSpeed:   100,
		CameraZ:       999.9,
		SmoothingRate: 0.93,
	}
}

// GridOptions converts the map settings into tilemap generation options.
func (c Config) GridOptions() tilemap.Options {
	return tilemap.Options{
		Size:         c.MapSize,
		TextureCount: c.TextureCount,
		TileSize:     c.TileSize,
		Spacing:      c.Spacing,
		Z:            c.GroundZ,
	}
}
