package playback

import (
	"context"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Timeline is an immutable schedule of frames.
type Timeline struct {
	frames []Frame
	found  bool
	opts   Options
}

// NewTimeline schedules visited then path. path ends at the search target;
// the search counts as found when the last visited cell is that target.
// Otherwise path frames are dropped, since a lone [target] only means
// "no path".
// Returns ErrOptionViolation for bad options.
func NewTimeline(visited, path []gridgraph.Cell, opts ...Option) (*Timeline, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	t := &Timeline{
		found: len(visited) > 0 && len(path) > 0 &&
			visited[len(visited)-1].Position() == path[len(path)-1].Position(),
		opts:  o,
	}
	n := len(visited)
	if t.found {
		n += len(path)
	}
	t.frames = make([]Frame, 0, n)
	for i, c := range visited {
		t.frames = append(t.frames, Frame{
			Step:  i,
			Phase: PhaseVisit,
			Cell:  c,
			At:    time.Duration(i) * o.VisitDelay,
		})
	}
	if t.found {
		base := time.Duration(len(visited)) * o.VisitDelay
		for j, c := range path {
			t.frames = append(t.frames, Frame{
				Step:  j,
				Phase: PhasePath,
				Cell:  c,
				At:    base + time.Duration(j)*o.PathDelay,
			})
		}
	}
	return t, nil
}

// Found reports whether the search reached the finish.
func (t *Timeline) Found() bool { return t.found }

// Len returns the number of frames.
func (t *Timeline) Len() int { return len(t.frames) }

// Frames returns a copy of the schedule.
func (t *Timeline) Frames() []Frame {
	out := make([]Frame, len(t.frames))
	copy(out, t.frames)
	return out
}

// Duration is the offset of the last frame, zero for an empty timeline.
func (t *Timeline) Duration() time.Duration {
	if len(t.frames) == 0 {
		return 0
	}
	return t.frames[len(t.frames)-1].At
}

// Play calls fn with every frame once its offset has elapsed, in order.
// Frames already due are delivered back to back. Play returns ctx.Err() on
// cancellation and the first error returned by fn.
func (t *Timeline) Play(ctx context.Context, fn func(Frame) error) error {
	begin := time.Now()
	for _, f := range t.frames {
		if err := wait(ctx, f.At-time.Since(begin)); err != nil {
			return err
		}
		if err := fn(f); err != nil {
			return err
		}
	}
	return nil
}

// wait blocks for d or until ctx is done.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
