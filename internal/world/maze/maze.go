// Package maze holds the grid the whole game is played on. A maze is a
// rectangle of Wall and Path cells with a fixed start and exit; once
// generation finishes it is never mutated, so every other package may read it
// freely.
package maze

// Cell is the state of a single grid cell.
type Cell uint8

const (
	Wall Cell = iota
	Path
)

// Coord is a grid position in cell units.
type Coord struct {
	X int
	Y int
}

// Maze is a rectangular grid of cells. Width and Height are always odd.
// The outer border is always Wall, and any out-of-bounds query answers Wall,
// so callers never need their own bounds checks.
type Maze struct {
	Width  int
	Height int

	// cells is row-major: cells[y*Width+x].
	cells []Cell
}

// Start returns the entry cell. Generation always carves from here.
func (m *Maze) Start() Coord {
	return Coord{X: 1, Y: 1}
}

// Exit returns the exit cell.
func (m *Maze) Exit() Coord {
	return Coord{X: m.Width - 2, Y: m.Height - 2}
}

// At returns the cell state at (x, y). Out-of-bounds coordinates are Wall.
func (m *Maze) At(x, y int) Cell {
	if x < 0 || x >= m.Width || y < 0 || y >= m.Height {
		return Wall
	}
	return m.cells[y*m.Width+x]
}

// IsWall reports whether (x, y) is a wall. Out-of-bounds counts as wall.
func (m *Maze) IsWall(x, y int) bool {
	return m.At(x, y) == Wall
}

// set writes a cell state. Only the generator may call this.
func (m *Maze) set(x, y int, c Cell) {
	m.cells[y*m.Width+x] = c
}

// PathNeighbors counts the orthogonally adjacent Path cells of (x, y).
func (m *Maze) PathNeighbors(x, y int) int {
	n := 0
	if m.At(x, y-1) == Path {
		n++
	}
	if m.At(x, y+1) == Path {
		n++
	}
	if m.At(x-1, y) == Path {
		n++
	}
	if m.At(x+1, y) == Path {
		n++
	}
	return n
}

// PathCellCount returns the number of Path cells in the maze.
func (m *Maze) PathCellCount() int {
	n := 0
	for _, c := range m.cells {
		if c == Path {
			n++
		}
	}
	return n
}

// Equal reports whether two mazes have identical dimensions and cells.
func (m *Maze) Equal(other *Maze) bool {
	if m.Width != other.Width || m.Height != other.Height {
		return false
	}
	for i := range m.cells {
		if m.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}
