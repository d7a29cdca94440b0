// Package render draws the world with ebiten: the visible part of the tile
// grid, the player sprite and diagnostic gizmos.
package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/plus3/tileview/tilemap"
	"github.com/plus3/tileview/vec"
	"github.com/plus3/tileview/world"
)

var backgroundColor = color.RGBA{24, 20, 18, 255}

// Renderer draws a world from its camera's point of view.
type Renderer struct {
	TileSet   *Sheet
	Character *Sheet

	// DrawnTiles is the number of tiles drawn during the last frame.
	DrawnTiles int
}

func NewRenderer(tileSet, character *Sheet) *Renderer {
	return &Renderer{TileSet: tileSet, Character: character}
}

// Draw renders w onto screen. Nothing but the background is drawn when the
// world has no single camera; the frame loop reports that condition.
func (r *Renderer) Draw(screen *ebiten.Image, w *world.World, gizmos *world.Gizmos) {
	screen.Fill(backgroundColor)
	r.DrawnTiles = 0

	camera, err := w.Camera()
	if err != nil {
		return
	}

	bounds := screen.Bounds()
	proj := Projection{
		Camera: camera.Translation.XY(),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}

	if w.Grid != nil && r.TileSet != nil {
		r.drawTiles(screen, w.Grid, proj)
	}

	if player, err := w.Player(); err == nil && r.Character != nil {
		r.drawSprite(screen, r.Character.Cell(uint32(player.AnimationIndex)), player.Translation.XY(), vec.Vec2{}, proj)
	}

	for _, c := range gizmos.Circles() {
		sx, sy := proj.WorldToScreen(c.Center)
		vector.StrokeCircle(screen, sx, sy, c.Radius, 1, c.Color, true)
	}
}

func (r *Renderer) drawTiles(screen *ebiten.Image, grid *tilemap.TileGrid, proj Projection) {
	margin := grid.TileSize.X
	if grid.TileSize.Y > margin {
		margin = grid.TileSize.Y
	}
	lo, hi := proj.Bounds(margin)
	min, max := grid.VisibleRange(lo, hi)

	for y := min.Y; y < max.Y; y++ {
		for x := min.X; x < max.X; x++ {
			tile, _ := grid.Get(tilemap.TilePos{X: x, Y: y})
			center := grid.TileCenter(tile.Pos)
			r.drawSprite(screen, r.TileSet.Cell(tile.TextureIndex), center.XY(), grid.TileSize, proj)
			r.DrawnTiles++
		}
	}
}

// drawSprite draws img centered on the world point at. A non-zero size scales
// the image to that many world units.
func (r *Renderer) drawSprite(screen, img *ebiten.Image, at, size vec.Vec2, proj Projection) {
	if img == nil {
		return
	}

	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	sx, sy := 1.0, 1.0
	if size.X > 0 && size.Y > 0 {
		sx, sy = float64(size.X)/w, float64(size.Y)/h
	}

	x, y := proj.WorldToScreen(at)

	opts := &ebiten.DrawImageOptions{}
	opts.Filter = ebiten.FilterNearest
	opts.GeoM.Translate(-w/2, -h/2)
	opts.GeoM.Scale(sx, sy)
	opts.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(img, opts)
}
