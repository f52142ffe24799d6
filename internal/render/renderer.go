// Package render defines the boundary between the game core and the
// graphics/input backend. Game logic depends only on these interfaces; the
// ebiten implementation lives in the ebiten subpackage and nothing else
// imports the engine directly.
package render

import (
	"image"
	"image/color"
)

// Renderer draws shapes and text onto images. It abstracts the underlying
// graphics engine so rendering backends can be swapped without touching game
// logic.
type Renderer interface {
	NewImage(width, height int) Image

	// Vector operations
	FillRect(dst Image, x, y, width, height float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)

	// Text operations
	DrawText(dst Image, text string, x, y int, clr color.Color, scale float64)
	MeasureText(text string, scale float64) (width, height int)
}

// Image is a renderable surface.
type Image interface {
	Bounds() image.Rectangle
	Size() (width, height int)

	Fill(clr color.Color)
	Clear()

	// DrawTriangles draws a triangle list with per-vertex colors, sampling
	// the given source image. Used for the light polygon.
	DrawTriangles(vertices []Vertex, indices []uint16, src Image, opts *DrawTrianglesOptions)

	Dispose()
}

// DrawTrianglesOptions contains options for drawing triangles.
type DrawTrianglesOptions struct {
	AntiAlias bool
}

// Vertex is one vertex of a triangle list.
type Vertex struct {
	DstX   float32
	DstY   float32
	SrcX   float32
	SrcY   float32
	ColorR float32
	ColorG float32
	ColorB float32
	ColorA float32
}

// InputManager polls input from the user.
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool

	// TouchPositions returns the screen positions of all active touches.
	// Empty on devices without a touchscreen.
	TouchPositions() []image.Point
}

// Key represents a keyboard key.
type Key int

const (
	KeyUp Key = iota
	KeyDown
	KeyLeft
	KeyRight
	KeyW
	KeyA
	KeyS
	KeyD
	KeyR // Retry
	Key1
	Key2
	Key3
	KeyEscape
)

// Game is the interface the engine drives.
type Game interface {
	// Update advances game logic. Called once per tick.
	Update() error

	// Draw renders the current frame.
	Draw(screen Image)

	// Layout accepts the outside (window) size and returns the logical
	// screen size used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages the window and the game loop.
type Engine interface {
	SetWindowSize(width, height int)
	SetWindowTitle(title string)
	SetWindowResizable(resizable bool)

	// RunGame blocks, running the loop until the game ends.
	RunGame(game Game) error
}
