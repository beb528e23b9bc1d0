package gridgraph

import (
	"fmt"
	"slices"
)

// ReconstructPath follows Previous links from target back to the cell
// without predecessor and returns the chain in start→target order.
//
// If target was never reached the result is the single cell [target]; when
// target is not the start, callers read that as "no path". Calling it twice
// after one search yields identical sequences.
//
// Returns ErrNilGrid, ErrOutOfBounds, or ErrNoSearch if no search completed
// on the current edit generation of g.
// Complexity: O(path length).
func ReconstructPath(g *Grid, target Position) ([]Cell, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(target.Row, target.Col) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, target)
	}
	if g.searched == 0 || g.searched != g.generation {
		return nil, ErrNoSearch
	}

	var path []Cell
	for at := g.index(target.Row, target.Col); at != NoPrevious; at = g.cells[at].Previous {
		path = append(path, g.cells[at])
	}
	slices.Reverse(path)

	return path, nil
}
