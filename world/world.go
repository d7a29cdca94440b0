// Package world holds the mutable state of a viewing session and the systems
// that advance it once per frame.
package world

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/plus3/tileview/tilemap"
	"github.com/plus3/tileview/vec"
)

var (
	ErrNoPlayerEntity = errors.New("world: expected exactly one player")
	ErrNoCameraEntity = errors.New("world: expected exactly one camera")
)

// World is the single owner of the tile grid and the dynamic entities. A
// well-formed world has exactly one Player and one Camera; the slices exist so
// that a malformed setup is detected instead of silently tolerated.
type World struct {
	Grid    *tilemap.TileGrid
	Players []*Player
	Cameras []*Camera
}

// Stats summarises the world for diagnostics.
type Stats struct {
	TileCount   int
	PlayerCount int
	CameraCount int
	EntityCount int
}

// New generates the ground grid and spawns the player and the camera at the
// origin.
func New(cfg Config, rng *rand.Rand) (*World, error) {
	grid, err := tilemap.Generate(cfg.GridOptions(), rng)
	if err != nil {
		return nil, fmt.Errorf("generate grid: %w", err)
	}

	w := &World{Grid: grid}
	w.SpawnPlayer(vec.Vec3{Z: cfg.PlayerZ})
	w.SpawnCamera(vec.Vec3{Z: cfg.CameraZ})
	return w, nil
}

// SpawnPlayer adds a player at the given position in its idle pose.
func (w *World) SpawnPlayer(at vec.Vec3) *Player {
	p := &Player{
		Transform:      Transform{Translation: at},
		AnimationIndex: AnimationIdle,
	}
	w.Players = append(w.Players, p)
	return p
}

// SpawnCamera adds a camera at the given position.
func (w *World) SpawnCamera(at vec.Vec3) *Camera {
	c := &Camera{Transform: Transform{Translation: at}}
	w.Cameras = append(w.Cameras, c)
	return c
}

// Player returns the one player of the world.
func (w *World) Player() (*Player, error) {
	if len(w.Players) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoPlayerEntity, len(w.Players))
	}
	return w.Players[0], nil
}

// Camera returns the one camera of the world.
func (w *World) Camera() (*Camera, error) {
	if len(w.Cameras) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrNoCameraEntity, len(w.Cameras))
	}
	return w.Cameras[0], nil
}

// Stats counts tiles and entities. The grid itself counts as one entity.
func (w *World) Stats() Stats {
	s := Stats{
		PlayerCount: len(w.Players),
		CameraCount: len(w.Cameras),
	}
	if w.Grid != nil {
		s.TileCount = w.Grid.Len()
		s.EntityCount = s.TileCount + 1
	}
	s.EntityCount += s.PlayerCount + s.CameraCount
	return s
}
