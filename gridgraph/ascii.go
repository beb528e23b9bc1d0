package gridgraph

import (
	"fmt"
	"strings"
)

// Board glyphs used by FromASCII and Grid.ASCII.
const (
	GlyphOpen    = '.'
	GlyphWall    = '#'
	GlyphStart   = 'S'
	GlyphFinish  = 'F'
	GlyphVisited = 'o'
	GlyphPath    = '*'
)

// FromASCII builds a Grid from equally long text rows using GlyphOpen,
// GlyphWall, GlyphStart and GlyphFinish. Exactly one start and one finish
// are required.
//
// Returns ErrInvalidDimensions for no rows or empty rows, ErrNonRectangular,
// ErrBadGlyph, ErrDuplicateEndpoint or ErrMissingEndpoint.
func FromASCII(lines []string) (*Grid, error) {
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	rows, cols := len(lines), len(lines[0])
	for r, line := range lines {
		if len(line) != cols {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(line), cols)
		}
	}

	var (
		start, finish       Position
		hasStart, hasFinish bool
		walls               []Position
	)
	for r, line := range lines {
		for c := 0; c < cols; c++ {
			p := Position{Row: r, Col: c}
			switch line[c] {
			case GlyphOpen:
			case GlyphWall:
				walls = append(walls, p)
			case GlyphStart:
				if hasStart {
					return nil, fmt.Errorf("%w: second start at %v", ErrDuplicateEndpoint, p)
				}
				start, hasStart = p, true
			case GlyphFinish:
				if hasFinish {
					return nil, fmt.Errorf("%w: second finish at %v", ErrDuplicateEndpoint, p)
				}
				finish, hasFinish = p, true
			default:
				return nil, fmt.Errorf("%w: %q at %v", ErrBadGlyph, line[c], p)
			}
		}
	}
	if !hasStart || !hasFinish {
		return nil, ErrMissingEndpoint
	}

	g, err := NewGrid(rows, cols, start, finish)
	if err != nil {
		return nil, err
	}
	for _, p := range walls {
		g.cells[g.index(p.Row, p.Col)].IsWall = true
	}
	return g, nil
}

// ASCII renders the grid one string per row. Cells listed in visited are
// drawn as GlyphVisited and cells in path as GlyphPath; endpoints always
// keep their own glyph. Cells outside the grid are ignored.
func (g *Grid) ASCII(visited, path []Cell) []string {
	board := make([][]byte, g.rows)
	for r := range board {
		board[r] = make([]byte, g.cols)
		for c := range board[r] {
			cell := g.cells[g.index(r, c)]
			switch {
			case cell.IsStart:
				board[r][c] = GlyphStart
			case cell.IsFinish:
				board[r][c] = GlyphFinish
			case cell.IsWall:
				board[r][c] = GlyphWall
			default:
				board[r][c] = GlyphOpen
			}
		}
	}
	overlay := func(cells []Cell, glyph byte) {
		for _, cell := range cells {
			if !g.InBounds(cell.Row, cell.Col) {
				continue
			}
			if b := board[cell.Row][cell.Col]; b == GlyphStart || b == GlyphFinish {
				continue
			}
			board[cell.Row][cell.Col] = glyph
		}
	}
	overlay(visited, GlyphVisited)
	overlay(path, GlyphPath)

	out := make([]string, g.rows)
	for r := range board {
		out[r] = string(board[r])
	}
	return out
}

// String renders the board without overlays, rows joined by newlines.
func (g *Grid) String() string {
	return strings.Join(g.ASCII(nil, nil), "\n")
}
