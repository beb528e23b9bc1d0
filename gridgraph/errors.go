package gridgraph

import "errors"

var (
	// ErrInvalidDimensions indicates a grid with no rows or no columns.
	ErrInvalidDimensions = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrOutOfBounds indicates a position outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: position out of bounds")
	// ErrOverlappingEndpoints indicates start and finish on the same cell.
	ErrOverlappingEndpoints = errors.New("gridgraph: start and finish must be different cells")
	// ErrIllegalEdit indicates a rejected edit; the grid is unchanged.
	ErrIllegalEdit = errors.New("gridgraph: illegal edit")
	// ErrNilGrid indicates a nil *Grid.
	ErrNilGrid = errors.New("gridgraph: grid is nil")
	// ErrNoSearch indicates no completed search on the current grid generation.
	ErrNoSearch = errors.New("gridgraph: no completed search for this grid generation")
	// ErrVisitHook wraps an error returned by an OnVisit hook.
	ErrVisitHook = errors.New("gridgraph: visit hook aborted search")
	// ErrOptionViolation indicates an invalid Option.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
	// ErrUnknownQueue indicates an unrecognized queue name.
	ErrUnknownQueue = errors.New("gridgraph: unknown queue")

	// ErrNonRectangular indicates text rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadGlyph indicates an unknown character in a text board.
	ErrBadGlyph = errors.New("gridgraph: unknown glyph")
	// ErrMissingEndpoint indicates a text board without start or finish.
	ErrMissingEndpoint = errors.New("gridgraph: board needs exactly one start and one finish")
	// ErrDuplicateEndpoint indicates a text board with a second start or finish.
	ErrDuplicateEndpoint = errors.New("gridgraph: duplicate endpoint")
)
