package simulation

import (
	"time"

	"github.com/glimmergames/lanternmaze/internal/world/maze"
)

// Direction is a cardinal movement intent.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// InputState is one tick's snapshot of held directions. When several are
// held at once the priority order is fixed: up, down, left, right.
type InputState struct {
	Up    bool
	Down  bool
	Left  bool
	Right bool
}

// Priority resolves the snapshot to a single direction.
func (s InputState) Priority() Direction {
	switch {
	case s.Up:
		return DirUp
	case s.Down:
		return DirDown
	case s.Left:
		return DirLeft
	case s.Right:
		return DirRight
	default:
		return DirNone
	}
}

// MoveState is the controller's state machine phase.
type MoveState int

const (
	Idle MoveState = iota
	Moving
)

// Controller advances a single player through the maze one cell at a time.
// Moves are atomic: once a move starts, input is dropped until the
// interpolation finishes and a short debounce gap has passed. All timing
// comes in through method arguments, so the controller never reads the
// wall clock itself.
type Controller struct {
	m   *maze.Maze
	cfg *Config

	x, y     float64
	radius   float64
	duration time.Duration
	debounce time.Duration

	state            MoveState
	startX, startY   float64
	targetX, targetY float64
	moveStart        time.Time
	idleUntil        time.Time
}

// NewController places a player at the center of the maze's start cell.
func NewController(m *maze.Maze, cfg *Config, moveDuration time.Duration) *Controller {
	start := m.Start()
	return &Controller{
		m:        m,
		cfg:      cfg,
		x:        (float64(start.X) + 0.5) * cfg.CellSize,
		y:        (float64(start.Y) + 0.5) * cfg.CellSize,
		radius:   cfg.PlayerRadius,
		duration: moveDuration,
		debounce: time.Duration(cfg.MoveDebounceMS) * time.Millisecond,
	}
}

// Position returns the player's current pixel position.
func (c *Controller) Position() (x, y float64) {
	return c.x, c.y
}

// Radius returns the player's collision radius.
func (c *Controller) Radius() float64 {
	return c.radius
}

// State returns the current movement phase.
func (c *Controller) State() MoveState {
	return c.state
}

// Update advances the controller by one tick. It reports whether a new move
// started this tick, which the session maps to a step sound.
func (c *Controller) Update(now time.Time, input InputState) bool {
	if c.state == Moving {
		c.interpolate(now)
		return false
	}

	if now.Before(c.idleUntil) {
		return false
	}

	dir := input.Priority()
	if dir == DirNone {
		return false
	}

	tx, ty := c.x, c.y
	switch dir {
	case DirUp:
		ty -= c.cfg.CellSize
	case DirDown:
		ty += c.cfg.CellSize
	case DirLeft:
		tx -= c.cfg.CellSize
	case DirRight:
		tx += c.cfg.CellSize
	}

	if !c.CanMoveTo(tx, ty) {
		// Blocked moves are not errors; the player stays idle and may try
		// another direction next tick.
		return false
	}

	c.state = Moving
	c.startX, c.startY = c.x, c.y
	c.targetX, c.targetY = tx, ty
	c.moveStart = now
	return true
}

// interpolate updates the position mid-move and snaps to the target when the
// move duration has elapsed.
func (c *Controller) interpolate(now time.Time) {
	progress := 1.0
	if c.duration > 0 {
		progress = float64(now.Sub(c.moveStart)) / float64(c.duration)
	}
	if progress >= 1 {
		c.x, c.y = c.targetX, c.targetY
		c.state = Idle
		c.idleUntil = now.Add(c.debounce)
		return
	}

	eased := easeInOut(progress)
	c.x = c.startX + (c.targetX-c.startX)*eased
	c.y = c.startY + (c.targetY-c.startY)*eased
}

// easeInOut is the quadratic ease-in-out blend.
func easeInOut(p float64) float64 {
	if p < 0.5 {
		return 2 * p * p
	}
	q := -2*p + 2
	return 1 - q*q/2
}

// CanMoveTo reports whether a player circle centered at (x, y) fits without
// overlapping any wall. The circle's bounding box must stay inside the maze
// rectangle, and the circle must not intersect any wall square in the 3x3
// cell neighborhood of the destination. Touching a wall exactly at the
// radius is allowed.
func (c *Controller) CanMoveTo(x, y float64) bool {
	cell := c.cfg.CellSize
	maxX := float64(c.m.Width) * cell
	maxY := float64(c.m.Height) * cell
	if x-c.radius < 0 || x+c.radius > maxX || y-c.radius < 0 || y+c.radius > maxY {
		return false
	}

	cx := int(x / cell)
	cy := int(y / cell)
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			wx, wy := cx+dx, cy+dy
			if !c.m.IsWall(wx, wy) {
				continue
			}
			// Closest point on the wall square to the circle center.
			nearX := clamp(x, float64(wx)*cell, float64(wx+1)*cell)
			nearY := clamp(y, float64(wy)*cell, float64(wy+1)*cell)
			ddx := x - nearX
			ddy := y - nearY
			if ddx*ddx+ddy*ddy < c.radius*c.radius {
				return false
			}
		}
	}
	return true
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
