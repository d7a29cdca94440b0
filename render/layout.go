package render

import (
	"image"
	"math"

	"github.com/plus3/tileview/vec"
)

// GridLayout slices an image into equally sized cells, numbered row-major.
// Padding is inserted between neighbouring cells and Offset shifts the whole
// grid.
type GridLayout struct {
	CellSize image.Point
	Columns  int
	Rows     int
	Padding  image.Point
	Offset   image.Point
}

// CharacterLayout is the character sheet contract: one column, two rows of
// 31x37 cells, 6 pixels apart vertically. Cell 0 is idle, cell 1 walks up.
func CharacterLayout() GridLayout {
	return GridLayout{
		CellSize: image.Pt(31, 37),
		Columns:  1,
		Rows:     2,
		Padding:  image.Pt(0, 6),
	}
}

// TileSetLayout fits as many tileSize cells, separated by spacing, as the
// image bounds allow.
func TileSetLayout(bounds image.Point, tileSize, spacing vec.Vec2) GridLayout {
	cell := image.Pt(int(math.Round(float64(tileSize.X))), int(math.Round(float64(tileSize.Y))))
	pad := image.Pt(int(math.Round(float64(spacing.X))), int(math.Round(float64(spacing.Y))))

	fit := func(extent, size, gap int) int {
		if size <= 0 || extent < size {
			return 0
		}
		return (extent-size)/(size+gap) + 1
	}

	return GridLayout{
		CellSize: cell,
		Columns:  fit(bounds.X, cell.X, pad.X),
		Rows:     fit(bounds.Y, cell.Y, pad.Y),
		Padding:  pad,
	}
}

// Len returns the number of cells.
func (l GridLayout) Len() int {
	return l.Columns * l.Rows
}

// Rect returns the pixel rectangle of cell index. The second value is false
// when index is out of range.
func (l GridLayout) Rect(index int) (image.Rectangle, bool) {
	if index < 0 || index >= l.Len() {
		return image.Rectangle{}, false
	}
	col := index % l.Columns
	row := index / l.Columns

	min := image.Pt(
		l.Offset.X+col*(l.CellSize.X+l.Padding.X),
		l.Offset.Y+row*(l.CellSize.Y+l.Padding.Y),
	)
	return image.Rectangle{Min: min, Max: min.Add(l.CellSize)}, true
}

// Extent returns the smallest image size holding every cell.
func (l GridLayout) Extent() image.Point {
	if l.Len() == 0 {
		return l.Offset
	}
	last, _ := l.Rect(l.Len() - 1)
	return last.Max
}
