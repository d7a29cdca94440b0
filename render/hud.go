package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// HUD draws a few lines of monospaced text in the top-left corner. It is the
// lightweight alternative to the ImGui overlay.
type HUD struct {
	face *text.GoTextFace
}

func NewHUD(size float64) (*HUD, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load HUD font: %w", err)
	}
	return &HUD{face: &text.GoTextFace{Source: src, Size: size}}, nil
}

// Draw renders lines below one another.
func (h *HUD) Draw(screen *ebiten.Image, lines []string) {
	lineHeight := h.face.Size * 1.3
	for i, line := range lines {
		opts := &text.DrawOptions{}
		opts.GeoM.Translate(8, 8+float64(i)*lineHeight)
		opts.ColorScale.ScaleWithColor(color.White)
		text.Draw(screen, line, h.face, opts)
	}
}

// PerfLines formats the numbers the HUD shows.
func PerfLines(fps, frameMs float64, entities, drawnTiles int) []string {
	return []string{
		fmt.Sprintf("FPS %6.1f  frame %6.2f ms", fps, frameMs),
		fmt.Sprintf("entities %d  drawn tiles %d", entities, drawnTiles),
	}
}
