package game

import "errors"

// ErrInvalidMove reports that a position's transition function rejected a
// move. When the rejected move came out of the same position's LegalMoves,
// the ruleset has broken its own contract.
var ErrInvalidMove = errors.New("invalid move")

// Move is an opaque move value. A pass move changes only whose turn it is.
type Move interface {
	IsPass() bool
}

// Position is the per-game capability the searcher and engine are generic
// over. Positions are value-like: operations never mutate the receiver,
// Apply returns a fresh position, and every search branch works on its own
// Copy.
type Position interface {
	// Copy returns an independent position no operation on which can
	// affect the original.
	Copy() Position
	// Apply plays a move and returns the resulting position. Illegal
	// moves fail with an error wrapping ErrInvalidMove.
	Apply(Move) (Position, error)
	// IsTerminal reports whether the game is over in this position.
	IsTerminal() bool
	// Evaluate scores the position from the mover's perspective. Scores
	// stay within [-99999, 99999].
	Evaluate() int
	// LegalMoves enumerates the mover's moves. It never returns an empty
	// slice: when no real move exists it returns a single pass move.
	// Enumeration order is stable and defines the searcher's tie-break.
	LegalMoves() []Move
}
