package world_test

import (
	"math/rand/v2"
	"testing"

	"github.com/plus3/tileview/tilemap"
	"github.com/plus3/tileview/vec"
	"github.com/plus3/tileview/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func smallConfig() world.Config {
	cfg := world.DefaultConfig()
	cfg.MapSize = tilemap.Size{X: 8, Y: 6}
	return cfg
}

func TestNew(t *testing.T) {
	t.Run("spawns one player and one camera", func(t *testing.T) {
		w, err := world.New(smallConfig(), rand.New(rand.NewPCG(1, 1)))
		require.NoError(t, err)

		p, err := w.Player()
		require.NoError(t, err)
		assert.Equal(t, vec.Vec3{Z: 1}, p.Translation)
		assert.Equal(t, world.AnimationIdle, p.AnimationIndex)

		c, err := w.Camera()
		require.NoError(t, err)
		assert.Equal(t, float32(0), c.Translation.X)
		assert.Equal(t, float32(0), c.Translation.Y)

		assert.Equal(t, 48, w.Grid.Len())
		assert.Equal(t, uint32(14), w.Grid.TextureCount())
	})

	t.Run("invalid grid aborts setup", func(t *testing.T) {
		cfg := smallConfig()
		cfg.MapSize.X = 0
		_, err := world.New(cfg, nil)
		assert.ErrorIs(t, err, tilemap.ErrInvalidDimensions)

		cfg = smallConfig()
		cfg.TextureCount = 0
		_, err = world.New(cfg, nil)
		assert.ErrorIs(t, err, tilemap.ErrInvalidTextureRange)
	})
}

func TestDefaultConfig(t *testing.T) {
	cfg := world.DefaultConfig()
	assert.Equal(t, tilemap.Size{X: 256, Y: 256}, cfg.MapSize)
	assert.Equal(t, uint32(14), cfg.TextureCount)
	assert.Equal(t, vec.Vec2{X: 31.999, Y: 31.999}, cfg.TileSize)
	assert.Equal(t, vec.Vec2{X: 1, Y: 1}, cfg.Spacing)
	assert.Equal(t, float32(100), cfg.PlayerSpeed)
	assert.Equal(t, float32(0.93), cfg.SmoothingRate)
	assert.Equal(t, float32(1), cfg.PlayerZ)
}

func TestStats(t *testing.T) {
	w, err := world.New(smallConfig(), rand.New(rand.NewPCG(2, 2)))
	require.NoError(t, err)

	stats := w.Stats()
	assert.Equal(t, 48, stats.TileCount)
	assert.Equal(t, 1, stats.PlayerCount)
	assert.Equal(t, 1, stats.CameraCount)
	assert.Equal(t, 48+1+1+1, stats.EntityCount)

	empty := (&world.World{}).Stats()
	assert.Equal(t, 0, empty.EntityCount)
}

func TestSingletonLookups(t *testing.T) {
	w := &world.World{}

	_, err := w.Player()
	assert.ErrorIs(t, err, world.ErrNoPlayerEntity)
	assert.ErrorContains(t, err, "found 0")

	_, err = w.Camera()
	assert.ErrorIs(t, err, world.ErrNoCameraEntity)

	w.SpawnPlayer(vec.Vec3{})
	w.SpawnPlayer(vec.Vec3{})
	_, err = w.Player()
	assert.ErrorIs(t, err, world.ErrNoPlayerEntity)
	assert.ErrorContains(t, err, "found 2")
}
