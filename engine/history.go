package engine

import (
	"errors"
	"fmt"

	"reversi/game"
)

// ErrNoHistory reports an undo on a history with no applied moves.
// Recoverable; the current position is left unchanged.
var ErrNoHistory = errors.New("no move to undo")

// History is the sequential apply/undo log of a game: parallel position and
// move stacks where positions always holds exactly one more entry than
// moves, and the last position is the current one. The two stacks are only
// ever pushed and popped in lock-step.
type History struct {
	positions []game.Position
	moves     []game.Move
}

func NewHistory(initial game.Position) *History {
	return &History{
		positions: []game.Position{initial},
		moves:     []game.Move{},
	}
}

// Current returns the current position. Repeated calls without intervening
// moves return the identical position.
func (h *History) Current() game.Position {
	return h.positions[len(h.positions)-1]
}

// LastMove returns the most recently applied move, or nil when no move has
// been applied.
func (h *History) LastMove() game.Move {
	if len(h.moves) == 0 {
		return nil
	}
	return h.moves[len(h.moves)-1]
}

// Len returns the number of applied moves.
func (h *History) Len() int {
	return len(h.moves)
}

// ApplyMove plays a move on the current position and pushes the resulting
// position together with the move. On failure nothing is pushed and the
// error wraps game.ErrInvalidMove.
func (h *History) ApplyMove(move game.Move) (game.Position, error) {
	// Copy first: a transition that mutates its receiver must not alias
	// the logged position it came from.
	next, err := h.Current().Copy().Apply(move)
	if err != nil {
		return nil, fmt.Errorf("apply move: %w", err)
	}
	h.positions = append(h.positions, next)
	h.moves = append(h.moves, move)
	return next, nil
}

// Undo pops the last move and position together and returns the new current
// position. Undoing with no applied moves fails with ErrNoHistory.
func (h *History) Undo() (game.Position, error) {
	if len(h.moves) == 0 {
		return nil, ErrNoHistory
	}
	h.positions = h.positions[:len(h.positions)-1]
	h.moves = h.moves[:len(h.moves)-1]
	return h.Current(), nil
}
