// Package gridgraph provides the Grid model: a fixed-size, row-major board
// whose cells carry wall, endpoint and search-scoped state.
//
// The Grid is the only owner of its cells. Callers read value snapshots and
// mutate through ToggleWall, SetWall, MoveStart, MoveFinish, Clear and
// ResetSearchState only.
package gridgraph

import (
	"fmt"
	"math"
)

// Grid is a rectangular board of Cells indexed by (row, col).
// Dimensions are fixed at creation; replace the Grid to resize it.
type Grid struct {
	rows, cols int
	cells      []Cell
	start      int
	finish     int

	// generation increases on every structural edit. searched holds the
	// generation of the last completed search, 0 when there is none.
	generation uint64
	searched   uint64
}

// NewGrid builds a rows×cols grid without walls, with start and finish placed
// and every cell at Distance Infinity, unvisited, without predecessor.
// Returns ErrInvalidDimensions if rows or cols ≤ 0 or rows×cols overflows
// an int, ErrOutOfBounds if an
// endpoint lies outside the grid, ErrOverlappingEndpoints if start == finish.
// Complexity: O(rows×cols) time and memory.
func NewGrid(rows, cols int, start, finish Position) (*Grid, error) {
	if rows <= 0 || cols <= 0 || cols > math.MaxInt/rows {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	g := &Grid{rows: rows, cols: cols, generation: 1}
	if !g.InBounds(start.Row, start.Col) {
		return nil, fmt.Errorf("%w: start %v in %dx%d grid", ErrOutOfBounds, start, rows, cols)
	}
	if !g.InBounds(finish.Row, finish.Col) {
		return nil, fmt.Errorf("%w: finish %v in %dx%d grid", ErrOutOfBounds, finish, rows, cols)
	}
	if start == finish {
		return nil, fmt.Errorf("%w: %v", ErrOverlappingEndpoints, start)
	}

	g.cells = make([]Cell, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			g.cells[g.index(r, c)] = Cell{
				Row:      r,
				Col:      c,
				Distance: Infinity,
				Previous: NoPrevious,
			}
		}
	}
	g.start = g.index(start.Row, start.Col)
	g.finish = g.index(finish.Row, finish.Col)
	g.cells[g.start].IsStart = true
	g.cells[g.finish].IsFinish = true

	return g, nil
}

// NewDefaultGrid returns the DefaultRows×DefaultCols board with the default
// endpoints.
func NewDefaultGrid() *Grid {
	g, _ := NewGrid(DefaultRows, DefaultCols, DefaultStart, DefaultFinish)
	return g
}

// NewSizedGrid builds a rows×cols grid with endpoints placed the way the
// default board places them: middle row, at 3/10 and 7/10 of the width.
// Narrow grids move the finish to the bottom-right corner, or to the
// origin when the start already sits there.
// Returns ErrInvalidDimensions if rows or cols ≤ 0 and
// ErrOverlappingEndpoints for a single-cell grid.
func NewSizedGrid(rows, cols int) (*Grid, error) {
	start := Position{Row: rows / 2, Col: cols * 3 / 10}
	finish := Position{Row: rows / 2, Col: cols * 7 / 10}
	if start == finish {
		finish = Position{Row: rows - 1, Col: cols - 1}
	}
	if start == finish {
		finish = Position{}
	}
	return NewGrid(rows, cols, start, finish)
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Generation returns the edit generation. It changes whenever walls or
// endpoints change.
func (g *Grid) Generation() uint64 { return g.generation }

// InBounds reports whether (row,col) lies within the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, col int) bool {
	return row >= 0 && row < g.rows && col >= 0 && col < g.cols
}

// index maps (row,col) to a row-major index: row*cols + col.
func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Coordinate converts a row-major index, such as Cell.Previous, back to a
// Position.
func (g *Grid) Coordinate(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}

// Cell returns a snapshot of the cell at (row,col).
func (g *Grid) Cell(row, col int) (Cell, error) {
	if !g.InBounds(row, col) {
		return Cell{}, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	return g.cells[g.index(row, col)], nil
}

// Start returns a snapshot of the start cell.
func (g *Grid) Start() Cell { return g.cells[g.start] }

// Finish returns a snapshot of the finish cell.
func (g *Grid) Finish() Cell { return g.cells[g.finish] }

// AllCells returns a row-major snapshot of every cell.
// Complexity: O(rows×cols).
func (g *Grid) AllCells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// ToggleWall flips the wall flag of (row,col).
// Returns ErrIllegalEdit for the start or finish cell and ErrOutOfBounds
// outside the grid; the grid is unchanged in both cases.
func (g *Grid) ToggleWall(row, col int) error {
	i, err := g.wallTarget(row, col)
	if err != nil {
		return err
	}
	g.cells[i].IsWall = !g.cells[i].IsWall
	g.touch()
	return nil
}

// SetWall sets the wall flag of (row,col) to wall. Setting the current value
// is a no-op. Rejections follow ToggleWall.
func (g *Grid) SetWall(row, col int, wall bool) error {
	i, err := g.wallTarget(row, col)
	if err != nil {
		return err
	}
	if g.cells[i].IsWall == wall {
		return nil
	}
	g.cells[i].IsWall = wall
	g.touch()
	return nil
}

// wallTarget validates a wall edit and returns the cell index.
func (g *Grid) wallTarget(row, col int) (int, error) {
	if !g.InBounds(row, col) {
		return 0, fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, row, col)
	}
	i := g.index(row, col)
	switch i {
	case g.start:
		return 0, fmt.Errorf("%w: (%d,%d) is the start cell", ErrIllegalEdit, row, col)
	case g.finish:
		return 0, fmt.Errorf("%w: (%d,%d) is the finish cell", ErrIllegalEdit, row, col)
	}
	return i, nil
}

// MoveStart relocates the start cell to p. Moving onto a wall or onto the
// finish returns ErrIllegalEdit; moving onto itself is a no-op.
func (g *Grid) MoveStart(p Position) error {
	i, err := g.endpointTarget(p, g.finish)
	if err != nil || i == g.start {
		return err
	}
	g.cells[g.start].IsStart = false
	g.start = i
	g.cells[i].IsStart = true
	g.touch()
	return nil
}

// MoveFinish relocates the finish cell to p. Rejections mirror MoveStart.
func (g *Grid) MoveFinish(p Position) error {
	i, err := g.endpointTarget(p, g.start)
	if err != nil || i == g.finish {
		return err
	}
	g.cells[g.finish].IsFinish = false
	g.finish = i
	g.cells[i].IsFinish = true
	g.touch()
	return nil
}

// endpointTarget validates p as the new home of an endpoint; other is the
// index of the endpoint that is not moving.
func (g *Grid) endpointTarget(p Position, other int) (int, error) {
	if !g.InBounds(p.Row, p.Col) {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	i := g.index(p.Row, p.Col)
	if i == other {
		return 0, fmt.Errorf("%w: %v holds the other endpoint", ErrIllegalEdit, p)
	}
	if g.cells[i].IsWall {
		return 0, fmt.Errorf("%w: %v is a wall", ErrIllegalEdit, p)
	}
	return i, nil
}

// Clear removes every wall and resets search state. Endpoints stay.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i].IsWall = false
	}
	g.ResetSearchState()
	g.touch()
}

// ResetSearchState sets every cell to Distance Infinity, unvisited and
// without predecessor. ShortestPath calls it before every run.
func (g *Grid) ResetSearchState() {
	for i := range g.cells {
		g.cells[i].Distance = Infinity
		g.cells[i].IsVisited = false
		g.cells[i].Previous = NoPrevious
	}
	g.searched = 0
}

// touch records a structural edit; search results of older generations
// become stale.
func (g *Grid) touch() {
	g.generation++
}
