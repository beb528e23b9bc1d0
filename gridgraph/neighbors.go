package gridgraph

import "fmt"

// offsets lists (dRow, dCol) for up, down, left, right. The order fixes
// tie-breaking in ShortestPath and must stay stable.
var offsets = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// neighborIndexes appends the in-bounds orthogonal neighbors of cell i to
// buf[:0] and returns it. Walls are included.
func (g *Grid) neighborIndexes(i int, buf []int) []int {
	buf = buf[:0]
	r, c := i/g.cols, i%g.cols
	for _, d := range offsets {
		nr, nc := r+d[0], c+d[1]
		if g.InBounds(nr, nc) {
			buf = append(buf, g.index(nr, nc))
		}
	}
	return buf
}

// Neighbors returns snapshots of the up to four cells orthogonally adjacent
// to p, in the order up, down, left, right. Wall cells are included; callers
// filter them.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) ([]Cell, error) {
	if !g.InBounds(p.Row, p.Col) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, p)
	}
	idx := g.neighborIndexes(g.index(p.Row, p.Col), make([]int, 0, len(offsets)))
	out := make([]Cell, len(idx))
	for k, i := range idx {
		out[k] = g.cells[i]
	}
	return out, nil
}
