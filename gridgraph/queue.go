package gridgraph

import (
	"cmp"
	"container/heap"
	"slices"
)

// frontier yields the next candidate of a search.
type frontier interface {
	// next removes and returns the candidate with the smallest Distance;
	// ok is false once the frontier is exhausted.
	next() (idx int, ok bool)
	// update records that cell idx received a new tentative Distance.
	update(idx int)
}

// linearFrontier holds every cell of the grid, reachable or not, and
// stable-sorts the remainder by Distance before each pop.
type linearFrontier struct {
	g     *Grid
	cands []int
}

func newLinearFrontier(g *Grid) *linearFrontier {
	cands := make([]int, len(g.cells))
	for i := range cands {
		cands[i] = i
	}
	return &linearFrontier{g: g, cands: cands}
}

func (f *linearFrontier) next() (int, bool) {
	if len(f.cands) == 0 {
		return 0, false
	}
	slices.SortStableFunc(f.cands, func(a, b int) int {
		return cmp.Compare(f.g.cells[a].Distance, f.g.cells[b].Distance)
	})
	u := f.cands[0]
	f.cands = f.cands[1:]
	return u, true
}

// update is a no-op: the next sort sees the new Distance.
func (f *linearFrontier) update(int) {}

// heapFrontier is a lazy min-heap: improved cells are pushed again and
// stale entries are dropped on pop.
type heapFrontier struct {
	g  *Grid
	pq cellPQ
}

func newHeapFrontier(g *Grid, start int) *heapFrontier {
	f := &heapFrontier{g: g, pq: make(cellPQ, 0, len(g.cells))}
	heap.Init(&f.pq)
	heap.Push(&f.pq, cellItem{idx: start, dist: 0})
	return f
}

func (f *heapFrontier) next() (int, bool) {
	for f.pq.Len() > 0 {
		it := heap.Pop(&f.pq).(cellItem)
		c := f.g.cells[it.idx]
		if c.IsVisited || c.Distance != it.dist {
			continue
		}
		return it.idx, true
	}
	return 0, false
}

func (f *heapFrontier) update(idx int) {
	heap.Push(&f.pq, cellItem{idx: idx, dist: f.g.cells[idx].Distance})
}

// cellItem is a heap entry: a cell index and the Distance it was pushed with.
type cellItem struct {
	idx  int
	dist int
}

// cellPQ orders cellItems by dist, then by row-major index.
type cellPQ []cellItem

func (pq cellPQ) Len() int { return len(pq) }

func (pq cellPQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq cellPQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *cellPQ) Push(x any) { *pq = append(*pq, x.(cellItem)) }

func (pq *cellPQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
