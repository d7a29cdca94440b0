package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/plus3/tileview/world"
	"github.com/plus3/tileview/world/debugui"
)

var keyBindings = []struct {
	key   ebiten.Key
	logic world.Key
}{
	{ebiten.KeyW, world.KeyUp},
	{ebiten.KeyArrowUp, world.KeyUp},
	{ebiten.KeyS, world.KeyDown},
	{ebiten.KeyArrowDown, world.KeyDown},
	{ebiten.KeyA, world.KeyLeft},
	{ebiten.KeyArrowLeft, world.KeyLeft},
	{ebiten.KeyD, world.KeyRight},
	{ebiten.KeyArrowRight, world.KeyRight},
}

// pressedKeys folds the physical bindings into logical movement keys.
func pressedKeys(isPressed func(ebiten.Key) bool) world.KeySet {
	var keys world.KeySet
	for _, b := range keyBindings {
		if isPressed(b.key) {
			keys = keys.With(b.logic)
		}
	}
	return keys
}

// keyboardInput reads movement keys from ebiten unless the overlay has
// keyboard focus.
type keyboardInput struct {
	overlay *debugui.ImguiSystem
}

func (k keyboardInput) Pressed() world.KeySet {
	if k.overlay != nil && k.overlay.InputState.WantCaptureKeyboard {
		return 0
	}
	return pressedKeys(ebiten.IsKeyPressed)
}
