package engine

import (
	"errors"
	"fmt"

	"reversi/game"
	"reversi/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
)

// MaxMoves caps a game that never reaches a terminal position.
const MaxMoves = 10000

// Agent picks a move to play in the given position.
type Agent interface {
	FindMove(pos game.Position) (game.Move, error)
}

// MoveRecord is one committed move of a finished run.
type MoveRecord struct {
	Step    int
	Move    game.Move
	Metrics searcher.SearchMetrics
}

// SearchAgent plays the searcher's best move. When no candidate improves
// the search window it falls back to the first enumerated legal move so the
// game can progress.
type SearchAgent struct {
	search *searcher.AlphaBeta
}

func NewSearchAgent(search *searcher.AlphaBeta) *SearchAgent {
	if search == nil {
		search = searcher.New()
	}
	return &SearchAgent{search: search}
}

func (a *SearchAgent) FindMove(pos game.Position) (game.Move, error) {
	move, _, err := a.search.Search(pos)
	if err == nil {
		return move, nil
	}
	if errors.Is(err, searcher.ErrNoLegalMoves) {
		if moves := pos.LegalMoves(); len(moves) > 0 {
			return moves[0], nil
		}
	}
	return nil, err
}

// Metrics returns the diagnostics of the agent's most recent search.
func (a *SearchAgent) Metrics() searcher.SearchMetrics {
	return a.search.Metrics()
}

// RandomAgent plays a uniformly random legal move. Useful as a baseline
// opponent and for driving positions toward terminal in tests.
type RandomAgent struct {
	rng *rand.Rand
}

func NewRandomAgent(seed uint64) *RandomAgent {
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) FindMove(pos game.Position) (game.Move, error) {
	moves := pos.LegalMoves()
	if len(moves) == 0 {
		return nil, searcher.ErrNoLegalMoves
	}
	return moves[a.rng.Intn(len(moves))], nil
}

// Run plays agents against each other from the initial position, taking
// turns in order, until the position is terminal or maxMoves is reached
// (MaxMoves when maxMoves <= 0). It returns the final position and the
// committed moves.
func Run(initial game.Position, agents []Agent, maxMoves int) (game.Position, []MoveRecord, error) {
	if initial == nil || isNilValue(initial) {
		return nil, nil, ErrMissingCapability
	}
	if len(agents) < 2 {
		return nil, nil, fmt.Errorf("need at least two agents, got %d", len(agents))
	}
	if maxMoves <= 0 {
		maxMoves = MaxMoves
	}

	history := NewHistory(initial)
	var records []MoveRecord
	for step := 0; step < maxMoves && !history.Current().IsTerminal(); step++ {
		agent := agents[step%len(agents)]
		move, err := agent.FindMove(history.Current())
		if err != nil {
			return history.Current(), records, fmt.Errorf("agent %d: %w", step%len(agents), err)
		}
		if _, err := history.ApplyMove(move); err != nil {
			return history.Current(), records, fmt.Errorf("agent %d: %w", step%len(agents), err)
		}

		record := MoveRecord{Step: step + 1, Move: move}
		if sa, ok := agent.(*SearchAgent); ok {
			record.Metrics = sa.Metrics()
		}
		records = append(records, record)
	}

	log.Info().
		Int("moves", history.Len()).
		Bool("terminal", history.Current().IsTerminal()).
		Msg("run finished")
	return history.Current(), records, nil
}
