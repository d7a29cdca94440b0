package render_test

import (
	"image"
	"testing"

	"github.com/plus3/tileview/render"
	"github.com/plus3/tileview/vec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCharacterLayout(t *testing.T) {
	layout := render.CharacterLayout()
	assert.Equal(t, 2, layout.Len())

	idle, ok := layout.Rect(0)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 0, 31, 37), idle)

	up, ok := layout.Rect(1)
	require.True(t, ok)
	assert.Equal(t, image.Rect(0, 43, 31, 80), up)

	_, ok = layout.Rect(2)
	assert.False(t, ok)
	_, ok = layout.Rect(-1)
	assert.False(t, ok)

	assert.Equal(t, image.Pt(31, 80), layout.Extent())
}

func TestTileSetLayout(t *testing.T) {
	tileSize := vec.Vec2{X: 31.999, Y: 31.999}
	spacing := vec.Vec2{X: 1, Y: 1}

	t.Run("single row", func(t *testing.T) {
		layout := render.TileSetLayout(image.Pt(14*33-1, 32), tileSize, spacing)
		assert.Equal(t, image.Pt(32, 32), layout.CellSize)
		assert.Equal(t, 14, layout.Columns)
		assert.Equal(t, 1, layout.Rows)

		r, ok := layout.Rect(13)
		require.True(t, ok)
		assert.Equal(t, image.Rect(429, 0, 461, 32), r)
	})

	t.Run("grid", func(t *testing.T) {
		layout := render.TileSetLayout(image.Pt(4*33, 4*33), tileSize, spacing)
		assert.Equal(t, 4, layout.Columns)
		assert.Equal(t, 4, layout.Rows)

		r, ok := layout.Rect(5)
		require.True(t, ok)
		assert.Equal(t, image.Rect(33, 33, 65, 65), r)
	})

	t.Run("image smaller than a tile", func(t *testing.T) {
		layout := render.TileSetLayout(image.Pt(10, 10), tileSize, spacing)
		assert.Equal(t, 0, layout.Len())
		_, ok := layout.Rect(0)
		assert.False(t, ok)
	})
}

func TestOffset(t *testing.T) {
	layout := render.GridLayout{
		CellSize: image.Pt(8, 8),
		Columns:  2,
		Rows:     1,
		Padding:  image.Pt(2, 0),
		Offset:   image.Pt(1, 3),
	}
	r, ok := layout.Rect(1)
	require.True(t, ok)
	assert.Equal(t, image.Rect(11, 3, 19, 11), r)
}

func TestPlaceholders(t *testing.T) {
	t.Run("tile set fits its layout", func(t *testing.T) {
		base := render.TileSetLayout(image.Point{}, vec.Vec2{X: 32, Y: 32}, vec.Vec2{X: 1, Y: 1})
		img := render.PlaceholderTileSet(14, base)

		size := img.Bounds().Size()
		layout := render.TileSetLayout(size, vec.Vec2{X: 32, Y: 32}, vec.Vec2{X: 1, Y: 1})
		assert.Equal(t, 14, layout.Len())

		r0, _ := layout.Rect(0)
		r1, _ := layout.Rect(1)
		assert.NotEqual(t, img.At(r0.Min.X+1, r0.Min.Y), img.At(r1.Min.X+1, r1.Min.Y))
	})

	t.Run("character has two distinct poses", func(t *testing.T) {
		layout := render.CharacterLayout()
		img := render.PlaceholderCharacter(layout)
		assert.Equal(t, layout.Extent(), img.Bounds().Size())

		idle, _ := layout.Rect(0)
		up, _ := layout.Rect(1)
		differs := false
		for y := 0; y < idle.Dy(); y++ {
			for x := 0; x < idle.Dx(); x++ {
				if img.At(idle.Min.X+x, idle.Min.Y+y) != img.At(up.Min.X+x, up.Min.Y+y) {
					differs = true
				}
			}
		}
		assert.True(t, differs)
	})
}
