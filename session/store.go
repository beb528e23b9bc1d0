// Package session keeps editable grids in memory, one per id, and serializes
// edits and searches on each of them.
package session

import (
	"errors"
	"fmt"
	"io"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/gridgraph"
)

var (
	// ErrNotFound is returned for an unknown session id.
	ErrNotFound = errors.New("session: not found")

	// ErrGridTooLarge is returned when a grid exceeds the store cell limit.
	ErrGridTooLarge = errors.New("session: grid too large")
)

// CreateParams describes a new grid. A non-empty Layout wins over the
// dimensions and endpoints and is parsed with gridgraph.FromASCII.
type CreateParams struct {
	Rows, Cols    int
	Start, Finish gridgraph.Position
	Layout        []string
}

// Store is a concurrency-safe registry of sessions.
type Store struct {
	sessions map[uuid.UUID]*Session
	maxCells int
	logger   *log.Logger
	sync.RWMutex
}

// NewStore returns an empty store. maxCells ≤ 0 disables the size limit.
// A nil logger discards output.
func NewStore(maxCells int, logger *log.Logger) *Store {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Store{
		sessions: make(map[uuid.UUID]*Session),
		maxCells: maxCells,
		logger:   logger,
	}
}

// Create builds a grid from p and registers it under a fresh id.
// Grid construction errors are returned unchanged; ErrGridTooLarge when the
// grid holds more than the store limit.
func (s *Store) Create(p CreateParams) (*Session, error) {
	if err := s.checkSize(p); err != nil {
		return nil, err
	}

	var (
		g   *gridgraph.Grid
		err error
	)
	if len(p.Layout) > 0 {
		g, err = gridgraph.FromASCII(p.Layout)
	} else {
		g, err = gridgraph.NewGrid(p.Rows, p.Cols, p.Start, p.Finish)
	}
	if err != nil {
		s.logger.Printf("[SESSION] [ERROR] creating grid: %v", err)
		return nil, err
	}

	s.Lock()
	id := uuid.New()
	for {
		if _, ok := s.sessions[id]; !ok {
			break
		}
		id = uuid.New()
	}
	sess := &Session{id: id, grid: g}
	s.sessions[id] = sess
	s.Unlock()

	s.logger.Printf("[SESSION] [INFO] created %s (%dx%d)", id, g.Rows(), g.Cols())
	return sess, nil
}

// checkSize rejects oversized grids before any allocation.
func (s *Store) checkSize(p CreateParams) error {
	if s.maxCells <= 0 {
		return nil
	}
	if len(p.Layout) > 0 {
		cells := 0
		for _, line := range p.Layout {
			cells += len(line)
			if cells > s.maxCells {
				return fmt.Errorf("%w: layout over %d cells", ErrGridTooLarge, s.maxCells)
			}
		}
		return nil
	}
	// Non-positive dimensions are left to gridgraph.NewGrid.
	if p.Rows <= 0 || p.Cols <= 0 {
		return nil
	}
	if p.Rows > s.maxCells/p.Cols {
		return fmt.Errorf("%w: %dx%d, limit %d cells", ErrGridTooLarge, p.Rows, p.Cols, s.maxCells)
	}
	return nil
}

// Get returns the session registered under id.
func (s *Store) Get(id uuid.UUID) (*Session, error) {
	s.RLock()
	defer s.RUnlock()
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return sess, nil
}

// Delete drops the session registered under id.
func (s *Store) Delete(id uuid.UUID) error {
	s.Lock()
	defer s.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	delete(s.sessions, id)
	s.logger.Printf("[SESSION] [INFO] deleted %s", id)
	return nil
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.RLock()
	defer s.RUnlock()
	return len(s.sessions)
}
