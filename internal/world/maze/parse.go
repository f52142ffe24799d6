package maze

import "fmt"

// Parse builds a maze from an ASCII picture, one string per row, where '#'
// is a wall and any other rune is path. Used by tests and debugging tools;
// Parse does not enforce the generator's invariants.
func Parse(rows []string) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("parse maze: empty layout")
	}
	width := len(rows[0])
	m := &Maze{
		Width:  width,
		Height: len(rows),
		cells:  make([]Cell, width*len(rows)),
	}
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("parse maze: row %d has length %d, want %d", y, len(row), width)
		}
		for x, r := range row {
			if r != '#' {
				m.set(x, y, Path)
			}
		}
	}
	return m, nil
}

// MustParse is Parse for fixtures that are known to be well formed.
func MustParse(rows []string) *Maze {
	m, err := Parse(rows)
	if err != nil {
		panic(err)
	}
	return m
}
