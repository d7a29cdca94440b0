package main

import (
	"math/rand/v2"

	"github.com/plus3/tileview/world"
)

// randomWalk holds a random key combination for a random number of frames,
// then picks another one.
type randomWalk struct {
	rng       *rand.Rand
	maxFrames int
	current   world.KeySet
	remaining int
}

func newRandomWalk(rng *rand.Rand, maxFrames int) *randomWalk {
	if maxFrames < 1 {
		maxFrames = 1
	}
	return &randomWalk{rng: rng, maxFrames: maxFrames}
}

func (r *randomWalk) Pressed() world.KeySet {
	if r.remaining == 0 {
		r.current = world.KeySet(r.rng.IntN(16))
		r.remaining = r.rng.IntN(r.maxFrames) + 1
	}
	r.remaining--
	return r.current
}
