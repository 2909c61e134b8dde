package searcher

import (
	"errors"
	"fmt"

	"reversi/game"
)

// Search window. The bounds strictly dominate the documented Evaluate()
// range of [-99999, 99999] by one unit; combined with the strict-improvement
// root tie-break, a first candidate scoring exactly Alpha can never be
// selected. Inherited boundary behavior, kept as is.
const (
	Alpha = -100000
	Beta  = 100000
)

// DefaultPly is the search depth used when none is configured.
const DefaultPly = 2

// ErrNoLegalMoves reports that a root search performed no move: either
// nothing was enumerated or no candidate improved the initial alpha.
// Recoverable; callers classify with errors.Is.
var ErrNoLegalMoves = errors.New("no move available")

type Option func(*AlphaBeta)

// WithPly sets the configured search depth in half-moves.
func WithPly(ply int) Option {
	return func(s *AlphaBeta) {
		if ply >= 0 {
			s.ply = ply
		}
	}
}

// WithObserver attaches an observer to search events.
func WithObserver(observer Observer) Option {
	return func(s *AlphaBeta) {
		if observer != nil {
			s.observer = observer
		}
	}
}

// WithCollector replaces the diagnostics collector.
func WithCollector(collector Collector) Option {
	return func(s *AlphaBeta) {
		if collector != nil {
			s.collector = collector
		}
	}
}

// AlphaBeta is a depth-limited negamax searcher with alpha-beta pruning.
// It is generic over the game.Position capability and keeps no game state
// of its own: Search reads the position it is given and commits nothing.
type AlphaBeta struct {
	ply       int
	observer  Observer
	collector Collector
	metrics   SearchMetrics
}

func New(options ...Option) *AlphaBeta {
	s := &AlphaBeta{
		ply:       DefaultPly,
		observer:  NewNopObserver(),
		collector: NewCollector(),
	}
	for _, option := range options {
		option(s)
	}
	return s
}

// Ply returns the configured search depth.
func (s *AlphaBeta) Ply() int {
	return s.ply
}

// SetPly sets the configured search depth and returns the previous value.
func (s *AlphaBeta) SetPly(ply int) int {
	previous := s.ply
	if ply >= 0 {
		s.ply = ply
	}
	return previous
}

// Metrics returns the diagnostics of the most recent root search.
func (s *AlphaBeta) Metrics() SearchMetrics {
	return s.metrics
}

// Search finds the best move from pos at the configured depth. An explicit
// ply argument overrides the configured depth for this call only.
//
// Candidates are scored in enumeration order and a later candidate replaces
// the best only on strict improvement, so among equals the first enumerated
// wins. When no move is performed Search returns ErrNoLegalMoves; any other
// error is a ruleset contract violation that aborted the search.
func (s *AlphaBeta) Search(pos game.Position, ply ...int) (game.Move, int, error) {
	depth := s.ply
	if len(ply) > 0 && ply[0] >= 0 {
		depth = ply[0]
	}
	s.collector.Start(depth)

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		s.metrics = s.collector.Complete()
		s.observer.SearchCompleted(nil, 0, s.metrics)
		return nil, 0, ErrNoLegalMoves
	}

	alpha := Alpha
	var best game.Move
	for _, move := range moves {
		child, err := pos.Apply(move)
		if err != nil {
			// The ruleset enumerated a move its own transition rejects.
			return nil, 0, fmt.Errorf("apply enumerated move: %w", err)
		}
		score, err := s.negamax(child, -Beta, -alpha, depth-1)
		if err != nil {
			return nil, 0, err
		}
		score = -score
		s.observer.RootMoveScored(move, score)
		if score > alpha {
			alpha = score
			best = move
		}
	}

	s.metrics = s.collector.Complete()
	s.observer.SearchCompleted(best, alpha, s.metrics)
	if best == nil {
		return nil, 0, fmt.Errorf("%w: no candidate improved the search window", ErrNoLegalMoves)
	}
	return best, alpha, nil
}

// negamax returns the fail-hard score of pos within (alpha, beta) from the
// mover's perspective. The terminal check takes priority over the depth
// cutoff.
func (s *AlphaBeta) negamax(pos game.Position, alpha, beta, depth int) (int, error) {
	s.collector.AddNode()

	if pos.IsTerminal() {
		s.collector.AddTerminal()
		return pos.Evaluate(), nil
	}
	if depth <= 0 {
		return pos.Evaluate(), nil
	}

	moves := pos.LegalMoves()
	if len(moves) == 0 {
		// Rulesets promise at least a pass move; fall back to the static
		// score rather than crash on a broken enumerator.
		return pos.Evaluate(), nil
	}

	for _, move := range moves {
		child, err := pos.Apply(move)
		if err != nil {
			return 0, fmt.Errorf("apply enumerated move: %w", err)
		}
		score, err := s.negamax(child, -beta, -alpha, depth-1)
		if err != nil {
			return 0, err
		}
		score = -score
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			s.observer.CutoffTriggered(depth, alpha, beta)
			break
		}
	}
	return alpha, nil
}
