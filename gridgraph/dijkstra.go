package gridgraph

import (
	"fmt"
)

// ShortestPath runs Dijkstra with unit edge weights from start on g and
// returns the non-wall cells in the order they were finalized.
//
// Behavior:
//  1. Reset search state on every cell; start.Distance = 0.
//  2. Pop the candidate with the smallest Distance (see Queue for ties).
//  3. Wall cells are discarded: never visited, never relaxed.
//  4. A popped Distance of Infinity means nothing else is reachable: stop.
//  5. Mark the cell visited and append it to the result; stop at finish.
//  6. Relax every unvisited neighbor (walls included) to Distance+1 with
//     Previous = current. QueueLinear overwrites unconditionally, which is
//     exact for unit weights; QueueHeap only relaxes on improvement.
//
// The finish being absent from the result signals that no path exists; it
// is not an error. Afterwards the Previous links of visited cells form a
// shortest-path tree rooted at start, readable through ReconstructPath.
//
// Returns ErrNilGrid, ErrOutOfBounds for endpoints outside g,
// ErrOptionViolation for bad options, or ErrVisitHook wrapping a hook error.
// A failed run leaves no completed search behind.
//
// Complexity: see Queue; memory O(V).
func ShortestPath(g *Grid, start, finish Position, opts ...Option) ([]Cell, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if !g.InBounds(start.Row, start.Col) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(finish.Row, finish.Col) {
		return nil, fmt.Errorf("%w: finish %v", ErrOutOfBounds, finish)
	}

	r := &runner{
		g:      g,
		opts:   o,
		start:  g.index(start.Row, start.Col),
		finish: g.index(finish.Row, finish.Col),
		nbuf:   make([]int, 0, len(offsets)),
	}
	r.init()
	if err := r.process(); err != nil {
		g.searched = 0
		return nil, err
	}
	g.searched = g.generation

	return r.order, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g        *Grid
	opts     Options
	start    int
	finish   int
	frontier frontier
	order    []Cell
	nbuf     []int
}

// init resets the grid, seeds the start distance and builds the frontier.
func (r *runner) init() {
	r.g.ResetSearchState()
	r.g.cells[r.start].Distance = 0
	if r.opts.Queue == QueueHeap {
		r.frontier = newHeapFrontier(r.g, r.start)
	} else {
		r.frontier = newLinearFrontier(r.g)
	}
	r.order = make([]Cell, 0, len(r.g.cells))
}

// process pops candidates until the finish is finalized, the reachable
// region is exhausted, or the hook fails.
func (r *runner) process() error {
	for {
		u, ok := r.frontier.next()
		if !ok {
			return nil
		}
		cur := &r.g.cells[u]
		if cur.IsWall {
			continue
		}
		if cur.Distance == Infinity {
			return nil
		}

		cur.IsVisited = true
		snap := *cur
		r.order = append(r.order, snap)
		if err := r.opts.OnVisit(snap); err != nil {
			return fmt.Errorf("%w at %v: %w", ErrVisitHook, snap.Position(), err)
		}
		if u == r.finish {
			return nil
		}
		r.relax(u)
	}
}

// relax assigns Distance+1 and Previous=u to the unvisited neighbors of u.
func (r *runner) relax(u int) {
	nd := r.g.cells[u].Distance + 1
	r.nbuf = r.g.neighborIndexes(u, r.nbuf)
	for _, v := range r.nbuf {
		nb := &r.g.cells[v]
		if nb.IsVisited {
			continue
		}
		// QueueLinear overwrites: with unit weights nd never exceeds a
		// tentative Distance already set by an earlier pop.
		if r.opts.Queue == QueueHeap && nd >= nb.Distance {
			continue
		}
		nb.Distance = nd
		nb.Previous = u
		r.frontier.update(v)
	}
}
