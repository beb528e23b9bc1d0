// Package gridgraph defines core types, options, and sentinel errors
// for grid shortest-path searches.
package gridgraph

import (
	"fmt"
	"math"
	"strings"
)

// Infinity is the Distance of a cell no search has reached.
const Infinity = math.MaxInt

// NoPrevious is the Previous value of a cell without predecessor.
const NoPrevious = -1

// Board defaults of the visualizer.
const (
	DefaultRows = 20
	DefaultCols = 50
)

var (
	// DefaultStart is the start cell of a default board.
	DefaultStart = Position{Row: 10, Col: 15}
	// DefaultFinish is the finish cell of a default board.
	DefaultFinish = Position{Row: 10, Col: 35}
)

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// String formats the position as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Cell is a value snapshot of one grid position.
//
// Distance, IsVisited and Previous are search-scoped: they describe the last
// search run on the owning grid and are reset before every run.
// Previous is the row-major index of the predecessor in the same grid
// (see Grid.Coordinate), or NoPrevious.
type Cell struct {
	Row, Col  int
	IsWall    bool
	IsStart   bool
	IsFinish  bool
	IsVisited bool
	Distance  int
	Previous  int
}

// Position returns the cell coordinates.
func (c Cell) Position() Position { return Position{Row: c.Row, Col: c.Col} }

// Reached reports whether a search assigned the cell a finite distance.
func (c Cell) Reached() bool { return c.Distance != Infinity }

// Queue selects the frontier used by ShortestPath.
type Queue int

const (
	// QueueLinear re-sorts every remaining candidate (stable, by distance)
	// before each pop. Ties keep their previous relative order, starting
	// from row-major order.
	QueueLinear Queue = iota
	// QueueHeap uses a binary heap keyed by (distance, row-major index).
	// Distances match QueueLinear; the order among equal distances and
	// therefore the chosen path may differ.
	QueueHeap
)

// String returns the queue name accepted by ParseQueue.
func (q Queue) String() string {
	switch q {
	case QueueLinear:
		return "linear"
	case QueueHeap:
		return "heap"
	default:
		return fmt.Sprintf("queue(%d)", int(q))
	}
}

// ParseQueue maps "linear" or "heap" (case-insensitive) to a Queue.
// The empty string selects QueueLinear.
func ParseQueue(s string) (Queue, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "linear":
		return QueueLinear, nil
	case "heap":
		return QueueHeap, nil
	default:
		return QueueLinear, fmt.Errorf("%w: %q", ErrUnknownQueue, s)
	}
}

// Option configures ShortestPath via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation.
type Option func(*Options)

// Options holds the ShortestPath parameters.
type Options struct {
	// Queue selects the frontier; QueueLinear by default.
	Queue Queue

	// OnVisit is called with each cell as it is finalized. A returned error
	// aborts the search.
	OnVisit func(c Cell) error

	err error
}

// DefaultOptions returns QueueLinear and a no-op OnVisit.
func DefaultOptions() Options {
	return Options{
		Queue:   QueueLinear,
		OnVisit: func(Cell) error { return nil },
	}
}

// WithQueue selects the frontier implementation.
func WithQueue(q Queue) Option {
	return func(o *Options) {
		switch q {
		case QueueLinear, QueueHeap:
			o.Queue = q
		default:
			o.err = fmt.Errorf("%w: %v", ErrOptionViolation, q)
		}
	}
}

// WithOnVisit registers a callback run on every finalized cell.
func WithOnVisit(fn func(c Cell) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
