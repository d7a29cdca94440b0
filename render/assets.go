package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/png"
	"io/fs"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// LoadImage loads the image asset name from dir.
func LoadImage(dir, name string) (*ebiten.Image, error) {
	path := filepath.Join(dir, name)
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load image %s: %w", path, err)
	}
	return img, nil
}

// LoadOrPlaceholder loads name from dir and falls back to placeholder when the
// file does not exist. The boolean reports whether the fallback was used.
func LoadOrPlaceholder(dir, name string, placeholder func() image.Image) (*ebiten.Image, bool, error) {
	img, err := LoadImage(dir, name)
	if err == nil {
		return img, false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, false, err
	}
	return ebiten.NewImageFromImage(placeholder()), true, nil
}

var placeholderGround = []color.RGBA{
	{112, 84, 62, 255},
	{120, 90, 66, 255},
	{104, 78, 58, 255},
	{128, 96, 70, 255},
	{96, 72, 54, 255},
	{134, 102, 74, 255},
	{118, 92, 60, 255},
}

// PlaceholderTileSet draws a tile set with count flat earth-coloured cells
// arranged in a single row, laid out exactly as TileSetLayout expects.
func PlaceholderTileSet(count int, layout GridLayout) image.Image {
	layout.Columns = count
	layout.Rows = 1
	img := image.NewRGBA(image.Rectangle{Max: layout.Extent()})

	for i := 0; i < count; i++ {
		rect, _ := layout.Rect(i)
		base := placeholderGround[i%len(placeholderGround)]
		draw.Draw(img, rect, &image.Uniform{base}, image.Point{}, draw.Src)

		// Speckle so neighbouring cells are distinguishable.
		speck := color.RGBA{base.R - 24, base.G - 20, base.B - 16, 255}
		for y := rect.Min.Y + i%4; y < rect.Max.Y; y += 5 {
			for x := rect.Min.X + (y+i)%5; x < rect.Max.X; x += 7 {
				img.Set(x, y, speck)
			}
		}
	}
	return img
}

// PlaceholderCharacter draws a two-pose character sheet matching layout: a
// body with a face for the idle pose and the back of the head for walking up.
func PlaceholderCharacter(layout GridLayout) image.Image {
	img := image.NewRGBA(image.Rectangle{Max: layout.Extent()})
	body := color.RGBA{60, 110, 200, 255}
	skin := color.RGBA{240, 200, 170, 255}
	hair := color.RGBA{90, 60, 40, 255}
	eye := color.RGBA{30, 60, 160, 255}

	for i := 0; i < layout.Len(); i++ {
		rect, _ := layout.Rect(i)
		w, h := rect.Dx(), rect.Dy()

		head := image.Rect(rect.Min.X+w/4, rect.Min.Y+2, rect.Max.X-w/4, rect.Min.Y+h/2-2)
		torso := image.Rect(rect.Min.X+w/5, rect.Min.Y+h/2-2, rect.Max.X-w/5, rect.Max.Y-2)

		draw.Draw(img, torso, &image.Uniform{body}, image.Point{}, draw.Src)
		draw.Draw(img, head, &image.Uniform{skin}, image.Point{}, draw.Src)

		hairline := image.Rect(head.Min.X, head.Min.Y, head.Max.X, head.Min.Y+3)
		if i == 1 {
			hairline.Max.Y = head.Max.Y
		}
		draw.Draw(img, hairline, &image.Uniform{hair}, image.Point{}, draw.Src)

		if i == 0 {
			ey := head.Min.Y + head.Dy()/2
			img.Set(head.Min.X+head.Dx()/3, ey, eye)
			img.Set(head.Max.X-head.Dx()/3, ey, eye)
		}
	}
	return img
}
