// Package tui is the terminal front end: it paints a grid on a tcell screen,
// turns mouse and key events into grid edits and animates searches.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/playback"
)

// CellWidth is the number of terminal columns per grid cell.
const CellWidth = 2

// Styles of the board cells.
var (
	StyleOpen    = tcell.StyleDefault
	StyleWall    = tcell.StyleDefault.Background(tcell.ColorSlateGray)
	StyleStart   = tcell.StyleDefault.Background(tcell.ColorGreen)
	StyleFinish  = tcell.StyleDefault.Background(tcell.ColorRed)
	StyleVisited = tcell.StyleDefault.Background(tcell.ColorTeal)
	StylePath    = tcell.StyleDefault.Background(tcell.ColorYellow)
	StyleStatus  = tcell.StyleDefault.Reverse(true)
)

// mode tells what a left click does.
type mode int

const (
	modeEdit mode = iota
	modePlaceStart
	modePlaceFinish
)

// mark is the animation overlay of one cell.
type mark uint8

const (
	markNone mark = iota
	markVisited
	markPath
)

// frameMsg carries one animation frame through the event queue.
type frameMsg struct {
	id    uint64
	frame playback.Frame
}

// animDone reports the end of an animation.
type animDone struct {
	id  uint64
	err error
}

// Option configures an App.
type Option func(*App)

// WithQueue selects the initial frontier.
func WithQueue(q gridgraph.Queue) Option {
	return func(a *App) { a.queue = q }
}

// WithPlayback sets the animation pacing.
func WithPlayback(opts ...playback.Option) Option {
	return func(a *App) { a.pbOpts = opts }
}

// App owns the grid and the screen. All grid access happens on the goroutine
// that calls HandleEvent.
type App struct {
	screen tcell.Screen
	grid   *gridgraph.Grid
	queue  gridgraph.Queue
	pbOpts []playback.Option

	mode     mode
	dragging bool
	dragWall bool
	dragLast gridgraph.Position

	marks  []mark
	animID uint64
	cancel context.CancelFunc
	status string
}

// New returns an App drawing g on screen. The screen must be initialized.
func New(screen tcell.Screen, g *gridgraph.Grid, opts ...Option) *App {
	a := &App{
		screen: screen,
		grid:   g,
		queue:  gridgraph.QueueLinear,
		marks:  make([]mark, g.Len()),
		status: "ready",
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Animating reports whether a search animation is running.
func (a *App) Animating() bool { return a.cancel != nil }

// Queue returns the current frontier.
func (a *App) Queue() gridgraph.Queue { return a.queue }

// Status returns the status line message.
func (a *App) Status() string { return a.status }

// Run polls screen events until the user quits or ctx is done.
func (a *App) Run(ctx context.Context) {
	defer a.stopAnimation()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.Draw()
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok || !a.HandleEvent(ev) {
				return
			}
		}
	}
}

// HandleEvent applies ev and redraws. It returns false when the user quits.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if !a.handleKey(ev) {
			a.stopAnimation()
			return false
		}
	case *tcell.EventMouse:
		a.handleMouse(ev)
	case *tcell.EventInterrupt:
		a.handleInterrupt(ev)
	case *tcell.EventResize:
		a.screen.Sync()
	}
	a.Draw()
	return true
}

func (a *App) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		if a.Animating() {
			a.stopAnimation()
			a.status = "animation cancelled"
			return true
		}
		if a.mode != modeEdit {
			a.mode = modeEdit
			a.status = "ready"
			return true
		}
		return false
	case tcell.KeyCtrlC:
		return false
	case tcell.KeyEnter:
		a.search()
		return true
	case tcell.KeyRune:
	default:
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case ' ':
		a.search()
	case 'c':
		if a.busy() {
			break
		}
		a.grid.Clear()
		a.resetMarks()
		a.status = "cleared"
	case 's':
		if !a.busy() {
			a.mode = modePlaceStart
			a.status = "click the new start cell"
		}
	case 'f':
		if !a.busy() {
			a.mode = modePlaceFinish
			a.status = "click the new finish cell"
		}
	case 'h':
		if a.queue == gridgraph.QueueLinear {
			a.queue = gridgraph.QueueHeap
		} else {
			a.queue = gridgraph.QueueLinear
		}
		a.status = "queue: " + a.queue.String()
	}
	return true
}

// busy reports and announces that edits are locked by an animation.
func (a *App) busy() bool {
	if a.Animating() {
		a.status = "busy: press Esc to cancel the animation"
		return true
	}
	return false
}

func (a *App) handleMouse(ev *tcell.EventMouse) {
	p, inside := a.cellAt(ev.Position())
	pressed := ev.Buttons()&tcell.Button1 != 0

	if !pressed {
		a.dragging = false
		return
	}
	if a.dragging {
		if inside && p != a.dragLast {
			a.dragLast = p
			if a.grid.SetWall(p.Row, p.Col, a.dragWall) == nil {
				a.resetMarks()
			}
		}
		return
	}
	if !inside || a.busy() {
		return
	}

	var err error
	switch a.mode {
	case modePlaceStart:
		err = a.grid.MoveStart(p)
		a.mode = modeEdit
	case modePlaceFinish:
		err = a.grid.MoveFinish(p)
		a.mode = modeEdit
	default:
		err = a.grid.ToggleWall(p.Row, p.Col)
		if err == nil {
			c, _ := a.grid.Cell(p.Row, p.Col)
			a.dragging, a.dragWall, a.dragLast = true, c.IsWall, p
		}
	}
	if err != nil {
		a.status = err.Error()
		return
	}
	a.resetMarks()
	a.status = "ready"
}

// cellAt maps screen coordinates to a grid position. Row 0 of the screen
// holds the status line.
func (a *App) cellAt(x, y int) (gridgraph.Position, bool) {
	if x < 0 || y < 1 {
		return gridgraph.Position{}, false
	}
	p := gridgraph.Position{Row: y - 1, Col: x / CellWidth}
	return p, a.grid.InBounds(p.Row, p.Col)
}

// search runs the engine synchronously and starts the animation.
func (a *App) search() {
	if a.busy() {
		return
	}
	a.mode = modeEdit
	a.dragging = false

	start, finish := a.grid.Start().Position(), a.grid.Finish().Position()
	visited, err := gridgraph.ShortestPath(a.grid, start, finish, gridgraph.WithQueue(a.queue))
	if err != nil {
		a.status = err.Error()
		return
	}
	path, err := gridgraph.ReconstructPath(a.grid, finish)
	if err != nil {
		a.status = err.Error()
		return
	}
	tl, err := playback.NewTimeline(visited, path, a.pbOpts...)
	if err != nil {
		a.status = err.Error()
		return
	}

	a.resetMarks()
	if tl.Found() {
		a.status = fmt.Sprintf("%s: visited %d, path length %d", a.queue, len(visited), len(path)-1)
	} else {
		a.status = fmt.Sprintf("%s: visited %d, no path", a.queue, len(visited))
	}

	a.animID++
	id := a.animID
	ctx, cancel := context.WithCancel(context.Background())
	a.cancel = cancel
	go func() {
		err := tl.Play(ctx, func(f playback.Frame) error {
			return a.post(ctx, frameMsg{id: id, frame: f})
		})
		_ = a.post(ctx, animDone{id: id, err: err})
	}()
}

// post delivers data to the event loop, retrying while the queue is full.
func (a *App) post(ctx context.Context, data any) error {
	for {
		if a.screen.PostEvent(tcell.NewEventInterrupt(data)) == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(time.Millisecond):
		}
	}
}

func (a *App) handleInterrupt(ev *tcell.EventInterrupt) {
	switch msg := ev.Data().(type) {
	case frameMsg:
		if msg.id != a.animID || !a.Animating() {
			return
		}
		c := msg.frame.Cell
		if !a.grid.InBounds(c.Row, c.Col) {
			return
		}
		m := markVisited
		if msg.frame.Phase == playback.PhasePath {
			m = markPath
		}
		a.marks[c.Row*a.grid.Cols()+c.Col] = m
	case animDone:
		if msg.id != a.animID {
			return
		}
		a.stopAnimation()
	}
}

func (a *App) stopAnimation() {
	if a.cancel != nil {
		a.cancel()
		a.cancel = nil
	}
}

func (a *App) resetMarks() {
	clear(a.marks)
}

// Draw paints the status line and the board.
func (a *App) Draw() {
	a.screen.Clear()

	w, _ := a.screen.Size()
	line := fmt.Sprintf(" %s | [%s] Enter search  c clear  s/f move  h queue  q quit", a.status, a.queue)
	for x := 0; x < w; x++ {
		r := ' '
		if x < len(line) {
			r = rune(line[x])
		}
		a.screen.SetContent(x, 0, r, nil, StyleStatus)
	}

	cells := a.grid.AllCells()
	for i, c := range cells {
		r, style := a.cellLook(c, a.marks[i])
		for dx := 0; dx < CellWidth; dx++ {
			a.screen.SetContent(c.Col*CellWidth+dx, c.Row+1, r, nil, style)
		}
	}
	a.screen.Show()
}

// cellLook returns the rune and style of one cell.
func (a *App) cellLook(c gridgraph.Cell, m mark) (rune, tcell.Style) {
	switch {
	case c.IsStart:
		return ' ', StyleStart
	case c.IsFinish:
		return ' ', StyleFinish
	case c.IsWall:
		return ' ', StyleWall
	case m == markPath:
		return ' ', StylePath
	case m == markVisited:
		return ' ', StyleVisited
	default:
		return '.', StyleOpen
	}
}
