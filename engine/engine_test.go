package engine

import (
	"testing"

	"reversi/game"
	"reversi/searcher"

	"github.com/stretchr/testify/require"
)

// stuckPosition enumerates no moves at all, not even a pass. It violates
// the LegalMoves contract on purpose to exercise the "no move available"
// path.
type stuckPosition struct{}

func (p stuckPosition) Copy() game.Position                    { return p }
func (p stuckPosition) Apply(game.Move) (game.Position, error) { return p, nil }
func (p stuckPosition) IsTerminal() bool                       { return false }
func (p stuckPosition) Evaluate() int                          { return 0 }
func (p stuckPosition) LegalMoves() []game.Move                { return nil }

func TestNewRejectsMissingCapability(t *testing.T) {
	t.Run("nil interface", func(t *testing.T) {
		e, err := New(nil)
		require.ErrorIs(t, err, ErrMissingCapability)
		require.Nil(t, e)
	})

	t.Run("typed nil", func(t *testing.T) {
		var pos *game.ReversiPosition
		e, err := New(pos)
		require.ErrorIs(t, err, ErrMissingCapability)
		require.Nil(t, e)
	})
}

func TestPlyGetterSetter(t *testing.T) {
	e, err := New(game.NewPosition())
	require.NoError(t, err)

	require.Equal(t, searcher.DefaultPly, e.Ply())
	require.Equal(t, searcher.DefaultPly, e.SetPly(4), "SetPly should return the previous value")
	require.Equal(t, 4, e.Ply())

	t.Run("WithPly option", func(t *testing.T) {
		e, err := New(game.NewPosition(), WithPly(3))
		require.NoError(t, err)
		require.Equal(t, 3, e.Ply())
	})
}

func TestSearchCommitsBestMove(t *testing.T) {
	initial := game.NewPosition()
	e, err := New(initial, WithPly(2))
	require.NoError(t, err)

	pos, err := e.Search()
	require.NoError(t, err)
	require.Same(t, pos, e.CurrentPosition(),
		"Search should return the newly committed position")
	require.NotNil(t, e.LastMove())
	require.Contains(t, initial.LegalMoves(), e.LastMove(),
		"the committed move should be one the initial position enumerated")

	undone, err := e.Undo()
	require.NoError(t, err)
	require.Same(t, initial, undone)
	require.Nil(t, e.LastMove())
}

func TestSearchExplicitPlyIsNotPersisted(t *testing.T) {
	e, err := New(game.NewPosition(), WithPly(2))
	require.NoError(t, err)

	_, err = e.Search(1)
	require.NoError(t, err)
	require.Equal(t, 1, e.Metrics().Ply, "the explicit ply should drive the search")
	require.Equal(t, 2, e.Ply(), "the configured ply should survive the override")
}

func TestSearchReportsNoMove(t *testing.T) {
	e, err := New(stuckPosition{})
	require.NoError(t, err)

	pos, err := e.Search()
	require.ErrorIs(t, err, searcher.ErrNoLegalMoves)
	require.Nil(t, pos)
	require.Equal(t, stuckPosition{}, e.CurrentPosition(), "a no-move search should commit nothing")
}

func TestSearchPlaysOutAGame(t *testing.T) {
	e, err := New(game.NewPositionSize(4), WithPly(2))
	require.NoError(t, err)

	moves := 0
	for !e.CurrentPosition().IsTerminal() && moves < MaxMoves {
		_, err := e.Search()
		require.NoError(t, err)
		moves++
	}
	require.True(t, e.CurrentPosition().IsTerminal(),
		"repeated searches should finish a 4x4 game")
	require.Greater(t, e.Metrics().Nodes, int64(0))
}
