package session_test

import (
	"math"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/session"
)

func TestStore_CreateGetDelete(t *testing.T) {
	s := session.NewStore(0, nil)

	sess, err := s.Create(session.CreateParams{
		Rows: 3, Cols: 3,
		Start:  gridgraph.Position{Row: 0, Col: 0},
		Finish: gridgraph.Position{Row: 2, Col: 2},
	})
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, sess.ID())
	require.Equal(t, 1, s.Len())

	got, err := s.Get(sess.ID())
	require.NoError(t, err)
	require.Same(t, sess, got)

	require.NoError(t, s.Delete(sess.ID()))
	require.Zero(t, s.Len())

	_, err = s.Get(sess.ID())
	require.ErrorIs(t, err, session.ErrNotFound)
	require.ErrorIs(t, s.Delete(sess.ID()), session.ErrNotFound)
}

func TestStore_CreateErrors(t *testing.T) {
	s := session.NewStore(9, nil)

	tests := []struct {
		name string
		p    session.CreateParams
		want error
	}{
		{"zero rows", session.CreateParams{Rows: 0, Cols: 3}, gridgraph.ErrInvalidDimensions},
		{"too large", session.CreateParams{Rows: 4, Cols: 4}, session.ErrGridTooLarge},
		{"cell count overflows", session.CreateParams{Rows: math.MaxInt/2 + 1, Cols: 4, Finish: gridgraph.Position{Col: 1}}, session.ErrGridTooLarge},
		{"layout too large", session.CreateParams{Layout: []string{"S...", "...F", "...."}}, session.ErrGridTooLarge},
		{"overlap", session.CreateParams{Rows: 3, Cols: 3}, gridgraph.ErrOverlappingEndpoints},
		{"start outside", session.CreateParams{Rows: 3, Cols: 3, Start: gridgraph.Position{Row: 5}}, gridgraph.ErrOutOfBounds},
		{"bad layout", session.CreateParams{Layout: []string{"S.x", "..F"}}, gridgraph.ErrBadGlyph},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := s.Create(tt.p)
			require.ErrorIs(t, err, tt.want)
		})
	}
	require.Zero(t, s.Len())

	// Without a limit the grid itself rejects the overflowing size.
	_, err := session.NewStore(0, nil).Create(session.CreateParams{
		Rows: math.MaxInt, Cols: 2, Finish: gridgraph.Position{Col: 1},
	})
	require.ErrorIs(t, err, gridgraph.ErrInvalidDimensions)
}

func TestSession_SearchAndView(t *testing.T) {
	s := session.NewStore(0, nil)
	sess, err := s.Create(session.CreateParams{Layout: []string{
		"S..",
		"...",
		"..F",
	}})
	require.NoError(t, err)

	v := sess.View()
	require.Nil(t, v.LastRun)
	require.Equal(t, []string{"S..", "...", "..F"}, v.Board)

	run, err := sess.Search(gridgraph.QueueLinear)
	require.NoError(t, err)
	require.True(t, run.Found)
	require.Len(t, run.Visited, 9)
	require.Len(t, run.Path, 5)
	require.Equal(t, gridgraph.QueueLinear, run.Queue)

	v = sess.View()
	require.NotNil(t, v.LastRun)
	assert.Equal(t, run.Generation, v.Generation)
	assert.Equal(t, []string{"Soo", "*oo", "**F"}, v.Board)

	// An edit makes the run stale.
	require.NoError(t, sess.ToggleWall(1, 1))
	v = sess.View()
	assert.Nil(t, v.LastRun)
	assert.Equal(t, 1, v.Walls)
	assert.Equal(t, []string{"S..", ".#.", "..F"}, v.Board)
}

func TestSession_UnreachableHidesPath(t *testing.T) {
	s := session.NewStore(0, nil)
	sess, err := s.Create(session.CreateParams{Layout: []string{"S#F"}})
	require.NoError(t, err)

	run, err := sess.Search(gridgraph.QueueHeap)
	require.NoError(t, err)
	require.False(t, run.Found)
	require.Len(t, run.Visited, 1)
	require.Len(t, run.Path, 1)
	require.True(t, run.Path[0].IsFinish)

	require.Equal(t, []string{"S#F"}, sess.View().Board)
}

func TestSession_Edits(t *testing.T) {
	s := session.NewStore(0, nil)
	sess, err := s.Create(session.CreateParams{Layout: []string{"S..F"}})
	require.NoError(t, err)

	require.ErrorIs(t, sess.ToggleWall(0, 0), gridgraph.ErrIllegalEdit)
	require.ErrorIs(t, sess.SetWall(0, 9, true), gridgraph.ErrOutOfBounds)
	require.NoError(t, sess.SetWall(0, 1, true))
	require.ErrorIs(t, sess.MoveStart(gridgraph.Position{Row: 0, Col: 1}), gridgraph.ErrIllegalEdit)
	require.NoError(t, sess.MoveStart(gridgraph.Position{Row: 0, Col: 2}))
	require.ErrorIs(t, sess.MoveFinish(gridgraph.Position{Row: 0, Col: 2}), gridgraph.ErrIllegalEdit)
	require.NoError(t, sess.MoveFinish(gridgraph.Position{Row: 0, Col: 0}))
	require.Equal(t, []string{"F#S."}, sess.View().Board)

	_, err = sess.Search(gridgraph.QueueLinear)
	require.NoError(t, err)
	sess.Clear()
	v := sess.View()
	require.Nil(t, v.LastRun)
	require.Zero(t, v.Walls)
	require.Equal(t, []string{"F.S."}, v.Board)
}

func TestSession_ConcurrentUse(t *testing.T) {
	s := session.NewStore(0, nil)
	sess, err := s.Create(session.CreateParams{
		Rows: 10, Cols: 10,
		Start:  gridgraph.Position{Row: 0, Col: 0},
		Finish: gridgraph.Position{Row: 9, Col: 9},
	})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			for j := 0; j < 20; j++ {
				_ = sess.ToggleWall(1+i, j%10)
				run, err := sess.Search(gridgraph.QueueHeap)
				assert.NoError(t, err)
				if run.Found {
					assert.Equal(t, len(run.Path)-1, run.Path[len(run.Path)-1].Distance)
				}
				_ = sess.View()
			}
		}(i)
	}
	wg.Wait()
}
