package playback

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// Default frame spacing.
const (
	DefaultVisitDelay = 10 * time.Millisecond
	DefaultPathDelay  = 50 * time.Millisecond
)

// ErrOptionViolation is returned when an invalid Option is supplied.
var ErrOptionViolation = errors.New("playback: invalid option supplied")

// Phase tells which sequence a frame belongs to.
type Phase int

const (
	// PhaseVisit frames replay the visit order.
	PhaseVisit Phase = iota
	// PhasePath frames replay the reconstructed path.
	PhasePath
)

// String returns "visit" or "path".
func (p Phase) String() string {
	if p == PhasePath {
		return "path"
	}
	return "visit"
}

// Frame is one animation step.
type Frame struct {
	Step  int            // index within its phase
	Phase Phase          // visit or path
	Cell  gridgraph.Cell // snapshot taken by the search
	At    time.Duration  // offset from the start of playback
}

// Option configures a Timeline.
type Option func(*Options)

// Options holds the frame spacing.
type Options struct {
	VisitDelay time.Duration
	PathDelay  time.Duration

	err error
}

// DefaultOptions returns DefaultVisitDelay and DefaultPathDelay.
func DefaultOptions() Options {
	return Options{
		VisitDelay: DefaultVisitDelay,
		PathDelay:  DefaultPathDelay,
	}
}

// WithVisitDelay sets the spacing of visit frames. Zero plays them at once;
// negative values are rejected.
func WithVisitDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: visit delay cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.VisitDelay = d
	}
}

// WithPathDelay sets the spacing of path frames. Zero plays them at once;
// negative values are rejected.
func WithPathDelay(d time.Duration) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: path delay cannot be negative (%v)", ErrOptionViolation, d)
			return
		}
		o.PathDelay = d
	}
}
