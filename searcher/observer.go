package searcher

import (
	"reversi/game"

	"github.com/rs/zerolog/log"
)

// Observer receives search events. It replaces inline debug printing: the
// engine stays silent unless an observer is attached.
type Observer interface {
	// RootMoveScored fires after each root candidate has been searched.
	RootMoveScored(move game.Move, score int)
	// CutoffTriggered fires when a subtree is pruned at alpha >= beta.
	CutoffTriggered(depth, alpha, beta int)
	// SearchCompleted fires once per root search. Move is nil when no
	// move was found.
	SearchCompleted(move game.Move, score int, metrics SearchMetrics)
}

type nopObserver struct{}

// NewNopObserver returns an observer that ignores every event.
func NewNopObserver() Observer {
	return &nopObserver{}
}

func (o *nopObserver) RootMoveScored(move game.Move, score int)                   {}
func (o *nopObserver) CutoffTriggered(depth, alpha, beta int)                     {}
func (o *nopObserver) SearchCompleted(move game.Move, score int, m SearchMetrics) {}

// LogObserver traces search events through zerolog.
type LogObserver struct{}

func (o LogObserver) RootMoveScored(move game.Move, score int) {
	log.Debug().Stringer("move", stringer{move}).Int("score", score).Msg("root move scored")
}

func (o LogObserver) CutoffTriggered(depth, alpha, beta int) {
	log.Debug().Int("depth", depth).Int("alpha", alpha).Int("beta", beta).Msg("cutoff triggered")
}

func (o LogObserver) SearchCompleted(move game.Move, score int, m SearchMetrics) {
	log.Info().
		Stringer("move", stringer{move}).
		Int("score", score).
		Int("ply", m.Ply).
		Int64("nodes", m.Nodes).
		Int64("terminals", m.TerminalHits).
		Dur("duration", m.Duration).
		Msg("search completed")
}

// stringer formats a move for logging without requiring every Move
// implementation to be a fmt.Stringer.
type stringer struct {
	move game.Move
}

func (s stringer) String() string {
	if s.move == nil {
		return "none"
	}
	if str, ok := s.move.(interface{ String() string }); ok {
		return str.String()
	}
	if s.move.IsPass() {
		return "pass"
	}
	return "move"
}
