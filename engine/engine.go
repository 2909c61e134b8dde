package engine

import (
	"errors"
	"reflect"

	"reversi/game"
	"reversi/searcher"
)

// ErrMissingCapability reports that the supplied position does not carry
// the game capability. Construction fails fast rather than letting a later
// search dereference nothing.
var ErrMissingCapability = errors.New("position capability missing")

type Option func(*Engine)

// WithPly sets the searcher's configured depth.
func WithPly(ply int) Option {
	return func(e *Engine) {
		e.search.SetPly(ply)
	}
}

// WithSearcher replaces the default searcher.
func WithSearcher(search *searcher.AlphaBeta) Option {
	return func(e *Engine) {
		if search != nil {
			e.search = search
		}
	}
}

// Engine ties a searcher to a game history: Search finds the best move from
// the current position and commits it, so consecutive calls play out a game.
type Engine struct {
	history *History
	search  *searcher.AlphaBeta
}

// New builds an engine over the supplied initial position. A position that
// does not carry the capability (nil, or a typed nil inside the interface)
// fails with ErrMissingCapability.
func New(initial game.Position, options ...Option) (*Engine, error) {
	if initial == nil || isNilValue(initial) {
		return nil, ErrMissingCapability
	}
	e := &Engine{
		history: NewHistory(initial),
		search:  searcher.New(),
	}
	for _, option := range options {
		option(e)
	}
	return e, nil
}

// isNilValue catches a nil concrete pointer wrapped in a non-nil interface.
func isNilValue(pos game.Position) bool {
	v := reflect.ValueOf(pos)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// Ply returns the configured search depth.
func (e *Engine) Ply() int {
	return e.search.Ply()
}

// SetPly sets the configured search depth and returns the previous value.
func (e *Engine) SetPly(ply int) int {
	return e.search.SetPly(ply)
}

// Search runs the searcher on the current position at the configured depth
// (or an explicit per-call ply), commits the winning move through the
// history, and returns the new current position.
//
// When no move was performed the error satisfies
// errors.Is(err, searcher.ErrNoLegalMoves) and the current position is
// unchanged; any other error is a fatal ruleset contract violation.
func (e *Engine) Search(ply ...int) (game.Position, error) {
	move, _, err := e.search.Search(e.history.Current(), ply...)
	if err != nil {
		return nil, err
	}
	return e.history.ApplyMove(move)
}

// CurrentPosition returns the current position. Renderers must treat it as
// read-only.
func (e *Engine) CurrentPosition() game.Position {
	return e.history.Current()
}

// LastMove returns the most recently committed move, or nil.
func (e *Engine) LastMove() game.Move {
	return e.history.LastMove()
}

// Undo takes back the last committed move and returns the new current
// position. Fails with ErrNoHistory when nothing has been committed.
func (e *Engine) Undo() (game.Position, error) {
	return e.history.Undo()
}

// Metrics returns the diagnostics of the most recent search.
func (e *Engine) Metrics() searcher.SearchMetrics {
	return e.search.Metrics()
}
