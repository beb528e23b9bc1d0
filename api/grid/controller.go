package gridapi

import (
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/playback"
	"github.com/katalvlaran/gridpath/session"
)

// GridController manages grid sessions: creation, edits and searches.
type GridController struct {
	store    *session.Store
	playback []playback.Option
}

// NewGridController initializes a GridController. opts set the spacing of
// the frame offsets returned by searches.
func NewGridController(store *session.Store, opts ...playback.Option) (*GridController, error) {
	if store == nil {
		return nil, errors.New("gridapi: nil session store")
	}
	// Surface bad delays now rather than on the first search.
	if _, err := playback.NewTimeline(nil, nil, opts...); err != nil {
		return nil, err
	}
	return &GridController{store: store, playback: opts}, nil
}

// RegisterPublic registers public routes.
func (gc *GridController) RegisterPublic(route *gin.RouterGroup) {
	grids := route.Group("/grids")
	{
		grids.POST("", gc.create)
		grids.GET("/:id", gc.view)
		grids.DELETE("/:id", gc.remove)
		grids.POST("/:id/walls", gc.wall)
		grids.PUT("/:id/start", gc.moveStart)
		grids.PUT("/:id/finish", gc.moveFinish)
		grids.POST("/:id/clear", gc.clear)
		grids.POST("/:id/search", gc.search)
	}
}

// create handles grid creation requests.
func (gc *GridController) create(ctx *gin.Context) {
	var request CreateGridRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	params := session.CreateParams{
		Rows:   request.Rows,
		Cols:   request.Cols,
		Layout: request.Layout,
	}
	if len(request.Layout) == 0 {
		if request.Start == nil || request.Finish == nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "start and finish are required without a layout"})
			return
		}
		params.Start, params.Finish = request.Start.grid(), request.Finish.grid()
	}

	sess, err := gc.store.Create(params)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, newGridResponse(sess.View()))
}

// view returns the current grid.
func (gc *GridController) view(ctx *gin.Context) {
	sess, ok := gc.session(ctx)
	if !ok {
		return
	}
	ctx.JSON(http.StatusOK, newGridResponse(sess.View()))
}

// remove drops a grid.
func (gc *GridController) remove(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		return
	}
	if err := gc.store.Delete(id); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// wall toggles or sets one wall.
func (gc *GridController) wall(ctx *gin.Context) {
	sess, ok := gc.session(ctx)
	if !ok {
		return
	}
	var request WallRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var err error
	if request.Wall == nil {
		err = sess.ToggleWall(request.Row, request.Col)
	} else {
		err = sess.SetWall(request.Row, request.Col, *request.Wall)
	}
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newGridResponse(sess.View()))
}

func (gc *GridController) moveStart(ctx *gin.Context) {
	gc.moveEndpoint(ctx, (*session.Session).MoveStart)
}

func (gc *GridController) moveFinish(ctx *gin.Context) {
	gc.moveEndpoint(ctx, (*session.Session).MoveFinish)
}

// moveEndpoint binds a Position and applies move.
func (gc *GridController) moveEndpoint(ctx *gin.Context, move func(*session.Session, gridgraph.Position) error) {
	sess, ok := gc.session(ctx)
	if !ok {
		return
	}
	var request Position
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := move(sess, request.grid()); err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newGridResponse(sess.View()))
}

// clear removes every wall.
func (gc *GridController) clear(ctx *gin.Context) {
	sess, ok := gc.session(ctx)
	if !ok {
		return
	}
	sess.Clear()
	ctx.JSON(http.StatusOK, newGridResponse(sess.View()))
}

// search runs the engine and returns the visit order, the path and the
// animation schedule.
func (gc *GridController) search(ctx *gin.Context) {
	sess, ok := gc.session(ctx)
	if !ok {
		return
	}
	var request SearchRequest
	if err := ctx.ShouldBindJSON(&request); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	q, err := gridgraph.ParseQueue(request.Queue)
	if err != nil {
		writeError(ctx, err)
		return
	}

	run, err := sess.Search(q)
	if err != nil {
		writeError(ctx, err)
		return
	}
	tl, err := playback.NewTimeline(run.Visited, run.Path, gc.playback...)
	if err != nil {
		writeError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, newSearchResponse(run, tl))
}

// session resolves the :id parameter, writing the error response itself.
func (gc *GridController) session(ctx *gin.Context) (*session.Session, bool) {
	id, ok := parseID(ctx)
	if !ok {
		return nil, false
	}
	sess, err := gc.store.Get(id)
	if err != nil {
		writeError(ctx, err)
		return nil, false
	}
	return sess, true
}

func parseID(ctx *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(ctx.Params.ByName("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid grid id"})
		return uuid.Nil, false
	}
	return id, true
}

// writeError maps domain errors to status codes.
func writeError(ctx *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, session.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, gridgraph.ErrIllegalEdit):
		status = http.StatusConflict
	case errors.Is(err, session.ErrGridTooLarge):
		status = http.StatusRequestEntityTooLarge
	case errors.Is(err, gridgraph.ErrOutOfBounds),
		errors.Is(err, gridgraph.ErrInvalidDimensions),
		errors.Is(err, gridgraph.ErrOverlappingEndpoints),
		errors.Is(err, gridgraph.ErrNonRectangular),
		errors.Is(err, gridgraph.ErrBadGlyph),
		errors.Is(err, gridgraph.ErrMissingEndpoint),
		errors.Is(err, gridgraph.ErrDuplicateEndpoint),
		errors.Is(err, gridgraph.ErrUnknownQueue):
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		log.Printf("[API] [ERROR] %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	}
	ctx.JSON(status, gin.H{"error": err.Error()})
}
