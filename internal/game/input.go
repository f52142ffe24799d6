package game

import (
	"github.com/glimmergames/lanternmaze/internal/render"
	"github.com/glimmergames/lanternmaze/internal/simulation"
)

// InputSource answers whether a direction is currently held. Several sources
// are combined with OR semantics so keyboard and touch can drive the player
// at the same time.
type InputSource interface {
	Held(dir simulation.Direction) bool
}

// Combine merges sources: a direction is held if any source reports it held.
func Combine(sources ...InputSource) InputSource {
	return multiSource(sources)
}

type multiSource []InputSource

func (m multiSource) Held(dir simulation.Direction) bool {
	for _, s := range m {
		if s.Held(dir) {
			return true
		}
	}
	return false
}

// Snapshot polls a source into the per-tick input state the movement
// controller consumes.
func Snapshot(src InputSource) simulation.InputState {
	return simulation.InputState{
		Up:    src.Held(simulation.DirUp),
		Down:  src.Held(simulation.DirDown),
		Left:  src.Held(simulation.DirLeft),
		Right: src.Held(simulation.DirRight),
	}
}

// KeyboardSource maps four keys to the four directions.
type KeyboardSource struct {
	input render.InputManager
	up    render.Key
	down  render.Key
	left  render.Key
	right render.Key
}

// NewArrowKeySource binds the arrow keys.
func NewArrowKeySource(input render.InputManager) *KeyboardSource {
	return &KeyboardSource{input: input, up: render.KeyUp, down: render.KeyDown, left: render.KeyLeft, right: render.KeyRight}
}

// NewWASDSource binds WASD.
func NewWASDSource(input render.InputManager) *KeyboardSource {
	return &KeyboardSource{input: input, up: render.KeyW, down: render.KeyS, left: render.KeyA, right: render.KeyD}
}

// Held implements InputSource.
func (k *KeyboardSource) Held(dir simulation.Direction) bool {
	switch dir {
	case simulation.DirUp:
		return k.input.IsKeyPressed(k.up)
	case simulation.DirDown:
		return k.input.IsKeyPressed(k.down)
	case simulation.DirLeft:
		return k.input.IsKeyPressed(k.left)
	case simulation.DirRight:
		return k.input.IsKeyPressed(k.right)
	default:
		return false
	}
}

// TouchSource turns screen touches into direction intents: a touch is
// assigned to the axis it is farthest from screen center on. Holding a
// finger near the right edge reads as "right held".
type TouchSource struct {
	input  render.InputManager
	width  int
	height int
}

// NewTouchSource creates a touch source for the given screen size.
func NewTouchSource(input render.InputManager, width, height int) *TouchSource {
	return &TouchSource{input: input, width: width, height: height}
}

// SetSize updates the screen dimensions after a window resize.
func (t *TouchSource) SetSize(width, height int) {
	t.width = width
	t.height = height
}

// Held implements InputSource.
func (t *TouchSource) Held(dir simulation.Direction) bool {
	for _, p := range t.input.TouchPositions() {
		dx := float64(p.X - t.width/2)
		dy := float64(p.Y - t.height/2)
		var d simulation.Direction
		if abs(dx) >= abs(dy) {
			if dx < 0 {
				d = simulation.DirLeft
			} else {
				d = simulation.DirRight
			}
		} else {
			if dy < 0 {
				d = simulation.DirUp
			} else {
				d = simulation.DirDown
			}
		}
		if d == dir {
			return true
		}
	}
	return false
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
