package maze

import (
	"math/rand"
	"testing"
)

// floodFill returns the number of Path cells reachable from start using
// 4-connected steps.
func floodFill(m *Maze) int {
	visited := make([]bool, m.Width*m.Height)
	start := m.Start()
	queue := []Coord{start}
	visited[start.Y*m.Width+start.X] = true
	count := 0

	for len(queue) > 0 {
		c := queue[0]
		queue = queue[1:]
		count++

		neighbors := []Coord{
			{X: c.X, Y: c.Y - 1},
			{X: c.X + 1, Y: c.Y},
			{X: c.X, Y: c.Y + 1},
			{X: c.X - 1, Y: c.Y},
		}
		for _, n := range neighbors {
			if n.X < 0 || n.X >= m.Width || n.Y < 0 || n.Y >= m.Height {
				continue
			}
			idx := n.Y*m.Width + n.X
			if visited[idx] || m.At(n.X, n.Y) != Path {
				continue
			}
			visited[idx] = true
			queue = append(queue, n)
		}
	}

	return count
}

func TestGenerateConnectivity(t *testing.T) {
	sizes := []struct {
		w, h int
	}{
		{15, 11},
		{21, 21},
		{41, 31},
		{5, 5},
	}

	for _, size := range sizes {
		for seed := int64(0); seed < 5; seed++ {
			rng := rand.New(rand.NewSource(seed))
			m := Generate(size.w, size.h, rng, DefaultLoopOptions())

			reachable := floodFill(m)
			total := m.PathCellCount()
			if reachable != total {
				t.Errorf("Maze %dx%d seed %d: flood fill reached %d of %d path cells",
					size.w, size.h, seed, reachable, total)
			}
		}
	}
}

func TestGenerateBorderIsWall(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	m := Generate(21, 15, rng, DefaultLoopOptions())

	for x := 0; x < m.Width; x++ {
		if m.At(x, 0) != Wall {
			t.Errorf("Expected wall at (%d, 0)", x)
		}
		if m.At(x, m.Height-1) != Wall {
			t.Errorf("Expected wall at (%d, %d)", x, m.Height-1)
		}
	}
	for y := 0; y < m.Height; y++ {
		if m.At(0, y) != Wall {
			t.Errorf("Expected wall at (0, %d)", y)
		}
		if m.At(m.Width-1, y) != Wall {
			t.Errorf("Expected wall at (%d, %d)", m.Width-1, y)
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(25, 19, rand.New(rand.NewSource(42)), DefaultLoopOptions())
	b := Generate(25, 19, rand.New(rand.NewSource(42)), DefaultLoopOptions())

	if !a.Equal(b) {
		t.Error("Expected identical mazes for identical seeds")
	}

	c := Generate(25, 19, rand.New(rand.NewSource(43)), DefaultLoopOptions())
	if a.Equal(c) {
		t.Error("Expected different mazes for different seeds")
	}
}

// With loop-adding disabled the carve only ever opens cells on the odd
// lattice and the walls between them, so the grid parity is fully
// predictable: every (odd, odd) interior cell is Path and every (even, even)
// cell is Wall, regardless of seed.
func TestGenerateFixedScenario(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := Generate(15, 11, rng, LoopOptions{TrialFraction: 0})

	if m.Width != 15 || m.Height != 11 {
		t.Fatalf("Expected 15x11 maze, got %dx%d", m.Width, m.Height)
	}

	start := m.Start()
	if start.X != 1 || start.Y != 1 {
		t.Errorf("Expected start (1,1), got (%d,%d)", start.X, start.Y)
	}
	if m.At(start.X, start.Y) != Path {
		t.Error("Expected start cell to be path")
	}

	exit := m.Exit()
	if exit.X != 13 || exit.Y != 9 {
		t.Errorf("Expected exit (13,9), got (%d,%d)", exit.X, exit.Y)
	}
	if m.At(exit.X, exit.Y) != Path {
		t.Error("Expected exit cell to be path")
	}

	if m.At(7, 5) != Path {
		t.Error("Expected lattice cell (7,5) to be path")
	}
	if m.At(2, 2) != Wall {
		t.Error("Expected off-lattice cell (2,2) to be wall")
	}
	if m.At(6, 4) != Wall {
		t.Error("Expected off-lattice cell (6,4) to be wall")
	}
}

func TestGenerateAdjustsInvalidDimensions(t *testing.T) {
	rng := rand.New(rand.NewSource(3))

	m := Generate(16, 12, rng, DefaultLoopOptions())
	if m.Width != 15 || m.Height != 11 {
		t.Errorf("Expected even dimensions adjusted to 15x11, got %dx%d", m.Width, m.Height)
	}

	m = Generate(1, 1, rand.New(rand.NewSource(3)), DefaultLoopOptions())
	if m.Width != MinWidth || m.Height != MinHeight {
		t.Errorf("Expected minimum %dx%d, got %dx%d", MinWidth, MinHeight, m.Width, m.Height)
	}
}

func TestOutOfBoundsIsWall(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	m := Generate(15, 11, rng, DefaultLoopOptions())

	queries := []Coord{
		{X: -1, Y: 5},
		{X: 15, Y: 5},
		{X: 5, Y: -1},
		{X: 5, Y: 11},
		{X: -100, Y: -100},
	}
	for _, q := range queries {
		if !m.IsWall(q.X, q.Y) {
			t.Errorf("Expected out-of-bounds (%d,%d) to answer wall", q.X, q.Y)
		}
	}
}

func TestLoopAddingNeverDisconnects(t *testing.T) {
	// Aggressive loop settings should still leave a single connected region.
	opts := LoopOptions{TrialFraction: 0.5, MinPathNeighbors: 2}
	for seed := int64(0); seed < 10; seed++ {
		rng := rand.New(rand.NewSource(seed))
		m := Generate(21, 21, rng, opts)
		if got, want := floodFill(m), m.PathCellCount(); got != want {
			t.Errorf("Seed %d: flood fill reached %d of %d path cells", seed, got, want)
		}
	}
}
