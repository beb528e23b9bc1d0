// Package gridapi provides the HTTP controller for grid sessions.
package gridapi

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/playback"
	"github.com/katalvlaran/gridpath/session"
)

// Position is a cell address on the wire.
type Position struct {
	Row int `json:"row" binding:"min=0"`
	Col int `json:"col" binding:"min=0"`
}

func (p Position) grid() gridgraph.Position {
	return gridgraph.Position{Row: p.Row, Col: p.Col}
}

func fromGrid(p gridgraph.Position) Position {
	return Position{Row: p.Row, Col: p.Col}
}

// CreateGridRequest creates a grid either from dimensions and endpoints or
// from a text layout.
type CreateGridRequest struct {
	Rows   int       `json:"rows" binding:"min=0"`
	Cols   int       `json:"cols" binding:"min=0"`
	Start  *Position `json:"start"`
	Finish *Position `json:"finish"`
	Layout []string  `json:"layout"`
}

// WallRequest toggles a wall, or sets it when Wall is present.
type WallRequest struct {
	Row  int   `json:"row" binding:"min=0"`
	Col  int   `json:"col" binding:"min=0"`
	Wall *bool `json:"wall"`
}

// SearchRequest selects the frontier; empty means linear.
type SearchRequest struct {
	Queue string `json:"queue" binding:"omitempty,oneof=linear heap"`
}

// GridResponse represents a grid view.
type GridResponse struct {
	ID         string   `json:"id"`
	Rows       int      `json:"rows"`
	Cols       int      `json:"cols"`
	Start      Position `json:"start"`
	Finish     Position `json:"finish"`
	Walls      int      `json:"walls"`
	Generation uint64   `json:"generation"`
	Board      []string `json:"board"`
	Searched   bool     `json:"searched"`
}

// Cell is a visited or path cell. Distance is null for an unreached cell.
type Cell struct {
	Row      int  `json:"row"`
	Col      int  `json:"col"`
	Distance *int `json:"distance"`
}

// Frame is one animation step with its offset in milliseconds.
type Frame struct {
	Phase string `json:"phase"`
	Step  int    `json:"step"`
	Row   int    `json:"row"`
	Col   int    `json:"col"`
	AtMS  int64  `json:"at_ms"`
}

// SearchResponse represents the outcome of a search.
type SearchResponse struct {
	Found      bool    `json:"found"`
	Queue      string  `json:"queue"`
	Generation uint64  `json:"generation"`
	Visited    []Cell  `json:"visited"`
	Path       []Cell  `json:"path"`
	Frames     []Frame `json:"frames"`
	DurationMS int64   `json:"duration_ms"`
}

func newGridResponse(v session.View) GridResponse {
	return GridResponse{
		ID:         v.ID.String(),
		Rows:       v.Rows,
		Cols:       v.Cols,
		Start:      fromGrid(v.Start),
		Finish:     fromGrid(v.Finish),
		Walls:      v.Walls,
		Generation: v.Generation,
		Board:      v.Board,
		Searched:   v.LastRun != nil,
	}
}

func newCells(cells []gridgraph.Cell) []Cell {
	out := make([]Cell, len(cells))
	for i, c := range cells {
		out[i] = Cell{Row: c.Row, Col: c.Col}
		if c.Reached() {
			d := c.Distance
			out[i].Distance = &d
		}
	}
	return out
}

func newSearchResponse(run session.Run, tl *playback.Timeline) SearchResponse {
	frames := tl.Frames()
	resp := SearchResponse{
		Found:      run.Found,
		Queue:      run.Queue.String(),
		Generation: run.Generation,
		Visited:    newCells(run.Visited),
		Path:       newCells(run.Path),
		Frames:     make([]Frame, len(frames)),
		DurationMS: tl.Duration().Milliseconds(),
	}
	for i, f := range frames {
		resp.Frames[i] = Frame{
			Phase: f.Phase.String(),
			Step:  f.Step,
			Row:   f.Cell.Row,
			Col:   f.Cell.Col,
			AtMS:  f.At.Milliseconds(),
		}
	}
	return resp
}
