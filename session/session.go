package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Run is the outcome of one search on a session grid.
type Run struct {
	Visited    []gridgraph.Cell // cells in the order they were finalized
	Path       []gridgraph.Cell // start→finish, or [finish] when unreachable
	Found      bool             // the finish was reached
	Queue      gridgraph.Queue  // frontier used
	Generation uint64           // grid generation the run belongs to
}

// View is a read-only picture of a session grid. Board overlays the last
// run while that run still matches the grid.
type View struct {
	ID         uuid.UUID
	Rows, Cols int
	Start      gridgraph.Position
	Finish     gridgraph.Position
	Walls      int
	Generation uint64
	Board      []string
	LastRun    *Run
}

// Session owns one grid. All methods are safe for concurrent use; edits and
// searches never interleave.
type Session struct {
	id   uuid.UUID
	grid *gridgraph.Grid
	last *Run
	mu   sync.Mutex
}

// ID returns the session id.
func (s *Session) ID() uuid.UUID { return s.id }

// ToggleWall flips the wall at (row,col).
func (s *Session) ToggleWall(row, col int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.ToggleWall(row, col)
}

// SetWall sets the wall at (row,col) to wall.
func (s *Session) SetWall(row, col int, wall bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.SetWall(row, col, wall)
}

// MoveStart relocates the start cell.
func (s *Session) MoveStart(p gridgraph.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.MoveStart(p)
}

// MoveFinish relocates the finish cell.
func (s *Session) MoveFinish(p gridgraph.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.grid.MoveFinish(p)
}

// Clear removes every wall and forgets the last run.
func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.grid.Clear()
	s.last = nil
}

// Search runs ShortestPath between the current endpoints with the given
// frontier, reconstructs the path and records the run.
func (s *Session) Search(q gridgraph.Queue) (Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start, finish := s.grid.Start().Position(), s.grid.Finish().Position()
	visited, err := gridgraph.ShortestPath(s.grid, start, finish, gridgraph.WithQueue(q))
	if err != nil {
		return Run{}, err
	}
	path, err := gridgraph.ReconstructPath(s.grid, finish)
	if err != nil {
		return Run{}, err
	}

	run := Run{
		Visited:    visited,
		Path:       path,
		Found:      len(visited) > 0 && visited[len(visited)-1].Position() == finish,
		Queue:      q,
		Generation: s.grid.Generation(),
	}
	s.last = &run
	return run, nil
}

// View snapshots the grid.
func (s *Session) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()

	v := View{
		ID:         s.id,
		Rows:       s.grid.Rows(),
		Cols:       s.grid.Cols(),
		Start:      s.grid.Start().Position(),
		Finish:     s.grid.Finish().Position(),
		Generation: s.grid.Generation(),
	}
	for _, c := range s.grid.AllCells() {
		if c.IsWall {
			v.Walls++
		}
	}

	if s.last != nil && s.last.Generation == v.Generation {
		run := *s.last
		v.LastRun = &run
		path := run.Path
		if !run.Found {
			path = nil
		}
		v.Board = s.grid.ASCII(run.Visited, path)
	} else {
		v.Board = s.grid.ASCII(nil, nil)
	}
	return v
}
