package world_test

import (
	"testing"

	"github.com/plus3/tileview/vec"
	"github.com/plus3/tileview/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayer() *world.Player {
	w := &world.World{}
	return w.SpawnPlayer(vec.Vec3{Z: 1})
}

func TestMovePlayer(t *testing.T) {
	t.Run("integrates direction times speed times delta", func(t *testing.T) {
		p := newPlayer()
		world.MovePlayer(p, vec.Vec2{X: 1}, 100, 0.5)
		assert.Equal(t, vec.Vec3{X: 50, Y: 0, Z: 1}, p.Translation)
	})

	t.Run("zero delta does not move", func(t *testing.T) {
		p := newPlayer()
		world.MovePlayer(p, vec.Vec2{X: 1, Y: 0}, 100, 0)
		assert.Equal(t, vec.Vec3{Z: 1}, p.Translation)
	})

	t.Run("split deltas compose", func(t *testing.T) {
		dir := world.MapInput(world.Keys(world.KeyUp, world.KeyRight))
		pairs := [][2]float32{{0.013, 0.021}, {0, 0.5}, {1.0 / 60, 1.0 / 144}, {0.25, 0.25}}

		for _, pair := range pairs {
			once := newPlayer()
			world.MovePlayer(once, dir, 100, pair[0]+pair[1])

			twice := newPlayer()
			world.MovePlayer(twice, dir, 100, pair[0])
			world.MovePlayer(twice, dir, 100, pair[1])

			assert.InDelta(t, once.Translation.X, twice.Translation.X, 1e-3)
			assert.InDelta(t, once.Translation.Y, twice.Translation.Y, 1e-3)
			assert.Equal(t, once.Translation.Z, twice.Translation.Z)
		}
	})

	t.Run("no bounds clamping", func(t *testing.T) {
		p := newPlayer()
		for i := 0; i < 100; i++ {
			world.MovePlayer(p, vec.Vec2{X: -1}, 100, 10)
		}
		assert.Equal(t, float32(-100000), p.Translation.X)
	})
}

func TestAnimationSelection(t *testing.T) {
	cases := []struct {
		name string
		dir  vec.Vec2
		want int
	}{
		{"upward", vec.Vec2{Y: 0.5}, world.AnimationMovingUp},
		{"diagonal up", vec.Vec2{X: -0.7, Y: 0.7}, world.AnimationMovingUp},
		{"sideways", vec.Vec2{X: 1}, world.AnimationIdle},
		{"downward", vec.Vec2{Y: -1}, world.AnimationIdle},
		{"still", vec.Vec2{}, world.AnimationIdle},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := newPlayer()
			p.AnimationIndex = 1 - tc.want
			world.MovePlayer(p, tc.dir, 100, 0.016)
			assert.Equal(t, tc.want, p.AnimationIndex)
		})
	}

	t.Run("does not depend on the previous frame", func(t *testing.T) {
		p := newPlayer()
		world.MovePlayer(p, vec.Vec2{Y: 1}, 100, 0.016)
		require.Equal(t, world.AnimationMovingUp, p.AnimationIndex)
		world.MovePlayer(p, vec.Vec2{X: 1}, 100, 0.016)
		assert.Equal(t, world.AnimationIdle, p.AnimationIndex)
	})
}

func TestUpdatePlayerRequiresSinglePlayer(t *testing.T) {
	t.Run("zero players", func(t *testing.T) {
		w := &world.World{}
		_, err := world.UpdatePlayer(w, vec.Vec2{X: 1}, 100, 0.1)
		assert.ErrorIs(t, err, world.ErrNoPlayerEntity)
	})

	t.Run("two players", func(t *testing.T) {
		w := &world.World{}
		a := w.SpawnPlayer(vec.Vec3{})
		b := w.SpawnPlayer(vec.Vec3{})

		_, err := world.UpdatePlayer(w, vec.Vec2{X: 1}, 100, 0.1)
		assert.ErrorIs(t, err, world.ErrNoPlayerEntity)
		assert.Equal(t, vec.Vec3{}, a.Translation)
		assert.Equal(t, vec.Vec3{}, b.Translation)
	})

	t.Run("one player", func(t *testing.T) {
		w := &world.World{}
		w.SpawnPlayer(vec.Vec3{Z: 1})

		p, err := world.UpdatePlayer(w, vec.Vec2{Y: 1}, 100, 0.1)
		require.NoError(t, err)
		assert.Equal(t, vec.Vec3{Y: 10, Z: 1}, p.Translation)
		assert.Equal(t, world.AnimationMovingUp, p.AnimationIndex)
	})
}
