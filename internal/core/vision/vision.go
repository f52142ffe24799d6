// Package vision computes what the player's lantern reveals. Two passes
// produce the renderable result: a radial ray cast that traces the visible
// light boundary around the player (walls occlude), and a per-cell intensity
// map with linear falloff inside the light radius. The combination
// approximates occlusion without exact shadow-volume clipping.
package vision

import (
	"math"

	"github.com/glimmergames/lanternmaze/internal/world/maze"
)

// Point is a position in maze pixel space.
type Point struct {
	X float64
	Y float64
}

// Default ray parameters. One ray per degree with a small linear step is
// plenty for a cell grid.
const (
	DefaultRayCount = 360
	DefaultRayStep  = 4.0
)

// LightMap holds per-cell light intensities for a window of the maze around
// the player. Cells outside the window are unlit.
type LightMap struct {
	// MinX and MinY are the grid coordinates of the window origin.
	MinX int
	MinY int
	// Width and Height are the window size in cells.
	Width  int
	Height int

	intensity []float64
}

// Intensity returns the light level of the cell at grid position (x, y),
// in [0, 1]. Cells outside the window answer 0.
func (lm *LightMap) Intensity(x, y int) float64 {
	lx, ly := x-lm.MinX, y-lm.MinY
	if lx < 0 || lx >= lm.Width || ly < 0 || ly >= lm.Height {
		return 0
	}
	return lm.intensity[ly*lm.Width+lx]
}

// Compute builds the per-cell light map for a player at pixel position
// (px, py) carrying a light of the given radius. The window spans
// ceil(lightRadius/cellSize)+2 cells in each direction from the player's
// cell, clamped to the maze. Intensity falls off linearly with distance from
// the player and cuts to zero at the radius. Deterministic and idempotent.
func Compute(m *maze.Maze, px, py, lightRadius, cellSize float64) *LightMap {
	px, py = clampToMaze(m, px, py, cellSize)

	pcx := int(px / cellSize)
	pcy := int(py / cellSize)

	extent := int(math.Ceil(lightRadius/cellSize)) + 2
	minX := pcx - extent
	minY := pcy - extent
	maxX := pcx + extent
	maxY := pcy + extent
	if minX < 0 {
		minX = 0
	}
	if minY < 0 {
		minY = 0
	}
	if maxX > m.Width-1 {
		maxX = m.Width - 1
	}
	if maxY > m.Height-1 {
		maxY = m.Height - 1
	}

	lm := &LightMap{
		MinX:   minX,
		MinY:   minY,
		Width:  maxX - minX + 1,
		Height: maxY - minY + 1,
	}
	lm.intensity = make([]float64, lm.Width*lm.Height)

	for cy := minY; cy <= maxY; cy++ {
		for cx := minX; cx <= maxX; cx++ {
			centerX := (float64(cx) + 0.5) * cellSize
			centerY := (float64(cy) + 0.5) * cellSize
			d := math.Hypot(centerX-px, centerY-py)
			if d >= lightRadius {
				continue
			}
			v := 1 - d/lightRadius
			if v < 0 {
				v = 0
			}
			lm.intensity[(cy-minY)*lm.Width+(cx-minX)] = v
		}
	}

	return lm
}

// CastBoundary traces rayCount rays from the player at uniform angles over
// [0, 2π). Each ray advances in fixed linear steps up to lightRadius and
// stops the moment it enters a wall cell or leaves the maze. The terminal
// points, in ray order, form the boundary polygon of the directly lit region.
func CastBoundary(m *maze.Maze, px, py, lightRadius, cellSize float64, rayCount int, step float64) []Point {
	if rayCount <= 0 {
		rayCount = DefaultRayCount
	}
	if step <= 0 {
		step = DefaultRayStep
	}
	px, py = clampToMaze(m, px, py, cellSize)

	maxX := float64(m.Width) * cellSize
	maxY := float64(m.Height) * cellSize

	boundary := make([]Point, 0, rayCount)
	for i := 0; i < rayCount; i++ {
		angle := 2 * math.Pi * float64(i) / float64(rayCount)
		dx := math.Cos(angle)
		dy := math.Sin(angle)

		end := Point{X: px, Y: py}
		for dist := 0.0; dist <= lightRadius; dist += step {
			x := px + dx*dist
			y := py + dy*dist
			if x < 0 || x >= maxX || y < 0 || y >= maxY {
				break
			}
			if m.IsWall(int(x/cellSize), int(y/cellSize)) {
				break
			}
			end = Point{X: x, Y: y}
		}
		boundary = append(boundary, end)
	}

	return boundary
}

// clampToMaze pulls a pixel position back inside the maze rectangle.
func clampToMaze(m *maze.Maze, px, py, cellSize float64) (float64, float64) {
	maxX := float64(m.Width) * cellSize
	maxY := float64(m.Height) * cellSize
	if px < 0 {
		px = 0
	}
	if px > maxX {
		px = maxX
	}
	if py < 0 {
		py = 0
	}
	if py > maxY {
		py = maxY
	}
	return px, py
}
