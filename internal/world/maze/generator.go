package maze

import (
	"math/rand"
)

// LoopOptions tunes the loop-adding pass that runs after the perfect maze is
// carved. TrialFraction controls how many random wall cells are tried
// (floor(width*height*TrialFraction) trials) and MinPathNeighbors is how many
// orthogonal Path neighbors a wall needs before it is opened up.
type LoopOptions struct {
	TrialFraction    float64 `json:"trial_fraction"`
	MinPathNeighbors int     `json:"min_path_neighbors"`
}

// DefaultLoopOptions returns the tuning used by the shipped game.
func DefaultLoopOptions() LoopOptions {
	return LoopOptions{
		TrialFraction:    0.02,
		MinPathNeighbors: 2,
	}
}

// MinWidth and MinHeight are the smallest dimensions Generate accepts.
// Anything smaller leaves no room for the carving lattice.
const (
	MinWidth  = 5
	MinHeight = 5
)

// Generate produces a maze of the given odd dimensions using a randomized
// depth-first carve followed by a loop-adding pass. The result is fully
// connected: every Path cell is reachable from Start. Output is deterministic
// for a given rng.
//
// Callers are responsible for making width and height odd and clamping them
// into range before calling; Generate only enforces the hard minimums.
func Generate(width, height int, rng *rand.Rand, loops LoopOptions) *Maze {
	if width < MinWidth {
		width = MinWidth
	}
	if height < MinHeight {
		height = MinHeight
	}
	if width%2 == 0 {
		width--
	}
	if height%2 == 0 {
		height--
	}

	m := &Maze{
		Width:  width,
		Height: height,
		cells:  make([]Cell, width*height),
	}

	carve(m, 1, 1, rng)

	// The carve starts at (1,1) so the start is always open, but the exit
	// sits on the carving lattice too and must never be a wall.
	start, exit := m.Start(), m.Exit()
	m.set(start.X, start.Y, Path)
	m.set(exit.X, exit.Y, Path)

	addLoops(m, rng, loops)

	return m
}

// carve recursively opens the cell at (x, y) and tunnels two cells at a time
// in a random direction order. Recursion depth is bounded by the number of
// lattice cells, width*height/4.
func carve(m *Maze, x, y int, rng *rand.Rand) {
	m.set(x, y, Path)

	dirs := [4]Coord{{0, -2}, {0, 2}, {-2, 0}, {2, 0}}
	for i := len(dirs) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		dirs[i], dirs[j] = dirs[j], dirs[i]
	}

	for _, d := range dirs {
		nx, ny := x+d.X, y+d.Y
		if nx <= 0 || nx >= m.Width-1 || ny <= 0 || ny >= m.Height-1 {
			continue
		}
		if m.At(nx, ny) != Wall {
			continue
		}
		// Open the wall between the two lattice cells, then keep going.
		m.set(x+d.X/2, y+d.Y/2, Path)
		carve(m, nx, ny, rng)
	}
}

// addLoops converts a handful of interior walls into paths so the maze has
// alternate routes instead of a single solution corridor. Opening a wall can
// only ever connect regions, never disconnect them, so the connectivity
// invariant survives this pass.
func addLoops(m *Maze, rng *rand.Rand, opts LoopOptions) {
	if opts.TrialFraction <= 0 || m.Width < 4 || m.Height < 4 {
		return
	}
	trials := int(float64(m.Width*m.Height) * opts.TrialFraction)
	for i := 0; i < trials; i++ {
		x := rng.Intn(m.Width-2) + 1
		y := rng.Intn(m.Height-2) + 1
		if m.At(x, y) != Wall {
			continue
		}
		if m.PathNeighbors(x, y) >= opts.MinPathNeighbors {
			m.set(x, y, Path)
		}
	}
}
