package playback_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/playback"
)

// search runs the engine on a text board and returns both sequences.
func search(t *testing.T, lines ...string) ([]gridgraph.Cell, []gridgraph.Cell) {
	t.Helper()
	g, err := gridgraph.FromASCII(lines)
	require.NoError(t, err)
	visited, err := gridgraph.ShortestPath(g, g.Start().Position(), g.Finish().Position())
	require.NoError(t, err)
	path, err := gridgraph.ReconstructPath(g, g.Finish().Position())
	require.NoError(t, err)
	return visited, path
}

func TestNewTimeline_Schedule(t *testing.T) {
	visited, path := search(t, "S..F")
	require.Len(t, visited, 4)
	require.Len(t, path, 4)

	tl, err := playback.NewTimeline(visited, path)
	require.NoError(t, err)
	require.True(t, tl.Found())
	require.Equal(t, 8, tl.Len())

	frames := tl.Frames()
	for i := 0; i < 4; i++ {
		assert.Equal(t, playback.PhaseVisit, frames[i].Phase)
		assert.Equal(t, i, frames[i].Step)
		assert.Equal(t, time.Duration(i)*playback.DefaultVisitDelay, frames[i].At)
	}
	base := 4 * playback.DefaultVisitDelay
	for j := 0; j < 4; j++ {
		f := frames[4+j]
		assert.Equal(t, playback.PhasePath, f.Phase)
		assert.Equal(t, j, f.Step)
		assert.Equal(t, base+time.Duration(j)*playback.DefaultPathDelay, f.At)
		assert.Equal(t, path[j], f.Cell)
	}
	assert.Equal(t, base+3*playback.DefaultPathDelay, tl.Duration())
}

func TestNewTimeline_NotFoundDropsPath(t *testing.T) {
	visited, path := search(t, "S.#F")
	require.Len(t, path, 1)

	tl, err := playback.NewTimeline(visited, path, playback.WithVisitDelay(time.Millisecond))
	require.NoError(t, err)
	require.False(t, tl.Found())
	require.Equal(t, len(visited), tl.Len())
	for _, f := range tl.Frames() {
		require.Equal(t, playback.PhaseVisit, f.Phase)
	}
}

func TestNewTimeline_TargetOtherThanFinish(t *testing.T) {
	g, err := gridgraph.FromASCII([]string{"S..F"})
	require.NoError(t, err)
	target := gridgraph.Position{Row: 0, Col: 2}
	visited, err := gridgraph.ShortestPath(g, g.Start().Position(), target)
	require.NoError(t, err)
	require.Len(t, visited, 3)
	require.False(t, visited[2].IsFinish)
	path, err := gridgraph.ReconstructPath(g, target)
	require.NoError(t, err)

	tl, err := playback.NewTimeline(visited, path, playback.WithVisitDelay(0), playback.WithPathDelay(0))
	require.NoError(t, err)
	require.True(t, tl.Found())
	require.Equal(t, 6, tl.Len())
}

func TestNewTimeline_Empty(t *testing.T) {
	tl, err := playback.NewTimeline(nil, nil)
	require.NoError(t, err)
	require.False(t, tl.Found())
	require.Zero(t, tl.Len())
	require.Zero(t, tl.Duration())
	require.NoError(t, tl.Play(context.Background(), func(playback.Frame) error {
		t.Fatal("no frame expected")
		return nil
	}))
}

func TestNewTimeline_Options(t *testing.T) {
	_, err := playback.NewTimeline(nil, nil, playback.WithVisitDelay(-time.Second))
	require.ErrorIs(t, err, playback.ErrOptionViolation)
	_, err = playback.NewTimeline(nil, nil, playback.WithPathDelay(-1))
	require.ErrorIs(t, err, playback.ErrOptionViolation)

	visited, path := search(t, "S.F")
	tl, err := playback.NewTimeline(visited, path, playback.WithVisitDelay(0), playback.WithPathDelay(0))
	require.NoError(t, err)
	require.Zero(t, tl.Duration())
}

func TestFrames_ReturnsCopy(t *testing.T) {
	visited, path := search(t, "S.F")
	tl, err := playback.NewTimeline(visited, path)
	require.NoError(t, err)

	frames := tl.Frames()
	frames[0].Step = 99
	require.Equal(t, 0, tl.Frames()[0].Step)
}

func TestPlay_DeliversInOrder(t *testing.T) {
	visited, path := search(t,
		"S...",
		".##.",
		"...F",
	)
	tl, err := playback.NewTimeline(visited, path, playback.WithVisitDelay(0), playback.WithPathDelay(time.Millisecond))
	require.NoError(t, err)

	var got []playback.Frame
	start := time.Now()
	err = tl.Play(context.Background(), func(f playback.Frame) error {
		got = append(got, f)
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, tl.Frames(), got)
	require.GreaterOrEqual(t, time.Since(start), tl.Duration())
}

func TestPlay_Cancel(t *testing.T) {
	visited, path := search(t, "S........F")
	tl, err := playback.NewTimeline(visited, path, playback.WithVisitDelay(time.Hour))
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	count := 0
	err = tl.Play(ctx, func(playback.Frame) error {
		count++
		cancel()
		return nil
	})
	require.ErrorIs(t, err, context.Canceled)
	require.Equal(t, 1, count)
}

func TestPlay_CallbackError(t *testing.T) {
	visited, path := search(t, "S..F")
	tl, err := playback.NewTimeline(visited, path, playback.WithVisitDelay(0), playback.WithPathDelay(0))
	require.NoError(t, err)

	boom := errors.New("boom")
	err = tl.Play(context.Background(), func(f playback.Frame) error {
		if f.Phase == playback.PhasePath {
			return boom
		}
		return nil
	})
	require.ErrorIs(t, err, boom)
}

func TestPhase_String(t *testing.T) {
	require.Equal(t, "visit", playback.PhaseVisit.String())
	require.Equal(t, "path", playback.PhasePath.String())
}
