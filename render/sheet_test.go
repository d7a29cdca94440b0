package render_test

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tileview/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSheetCell(t *testing.T) {
	layout := render.CharacterLayout()

	t.Run("repeat lookups hit the cache", func(t *testing.T) {
		sheet := render.NewSheet(ebiten.NewImage(31, 80), layout)
		assert.Equal(t, 0, sheet.CachedCells())

		first := sheet.Cell(0)
		require.NotNil(t, first)
		assert.Same(t, first, sheet.Cell(0))
		assert.Equal(t, 1, sheet.CachedCells())
	})

	t.Run("out of range index", func(t *testing.T) {
		sheet := render.NewSheet(ebiten.NewImage(31, 80), layout)
		assert.Nil(t, sheet.Cell(2))
		assert.Nil(t, sheet.Cell(1<<20))
		assert.Equal(t, 0, sheet.CachedCells())
	})

	t.Run("cell outside the image", func(t *testing.T) {
		sheet := render.NewSheet(ebiten.NewImage(31, 40), layout)
		assert.NotNil(t, sheet.Cell(0))
		assert.Nil(t, sheet.Cell(1))
		assert.Equal(t, 1, sheet.CachedCells())
	})

	t.Run("cell bounds follow the layout", func(t *testing.T) {
		sheet := render.NewSheet(ebiten.NewImage(31, 80), layout)
		for i := 0; i < layout.Len(); i++ {
			rect, ok := layout.Rect(i)
			require.True(t, ok)

			cell := sheet.Cell(uint32(i))
			require.NotNil(t, cell)
			assert.Equal(t, rect, cell.Bounds())
		}
		assert.Equal(t, layout.Len(), sheet.CachedCells())
	})
}
