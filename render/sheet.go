package render

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/kamstrup/intmap"
)

// Sheet is an image sliced by a GridLayout. Sub-images are created lazily and
// cached by cell index.
type Sheet struct {
	Image  *ebiten.Image
	Layout GridLayout

	cells *intmap.Map[uint32, *ebiten.Image]
}

func NewSheet(img *ebiten.Image, layout GridLayout) *Sheet {
	return &Sheet{
		Image:  img,
		Layout: layout,
		cells:  intmap.New[uint32, *ebiten.Image](layout.Len()),
	}
}

// Cell returns the sub-image of cell index, or nil when index is out of range.
func (s *Sheet) Cell(index uint32) *ebiten.Image {
	if cell, ok := s.cells.Get(index); ok {
		return cell
	}

	rect, ok := s.Layout.Rect(int(index))
	if !ok {
		return nil
	}
	rect = rect.Intersect(s.Image.Bounds())
	if rect.Empty() {
		return nil
	}

	cell := s.Image.SubImage(rect).(*ebiten.Image)
	s.cells.Put(index, cell)
	return cell
}

// CachedCells returns how many sub-images have been created.
func (s *Sheet) CachedCells() int {
	return s.cells.Len()
}
