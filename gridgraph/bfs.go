package gridgraph

import "fmt"

// HopDistances returns, for every cell in row-major order, the number of
// orthogonal steps from `from` to it avoiding walls, or Infinity when the
// cell is a wall or cannot be reached. It reads only walls and never touches
// search state, so it can check the distances left by ShortestPath.
//
// Time:   O(W·H).
// Memory: O(W·H) for distances and the queue.
func HopDistances(g *Grid, from Position) ([]int, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(from.Row, from.Col) {
		return nil, fmt.Errorf("%w: %v", ErrOutOfBounds, from)
	}

	dist := make([]int, len(g.cells))
	for i := range dist {
		dist[i] = Infinity
	}
	src := g.index(from.Row, from.Col)
	if g.cells[src].IsWall {
		return dist, nil
	}

	dist[src] = 0
	queue := []int{src}
	buf := make([]int, 0, len(offsets))
	for qi := 0; qi < len(queue); qi++ {
		u := queue[qi]
		buf = g.neighborIndexes(u, buf)
		for _, v := range buf {
			if g.cells[v].IsWall || dist[v] != Infinity {
				continue
			}
			dist[v] = dist[u] + 1
			queue = append(queue, v)
		}
	}
	return dist, nil
}
