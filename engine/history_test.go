package engine

import (
	"testing"

	"reversi/game"

	"github.com/stretchr/testify/require"
)

func TestHistoryCurrentIsIdempotent(t *testing.T) {
	initial := game.NewPosition()
	history := NewHistory(initial)

	require.Same(t, initial, history.Current())
	require.Same(t, history.Current(), history.Current(),
		"repeated calls without moves should return the identical position")
}

func TestHistoryApplyUndoRoundTrip(t *testing.T) {
	initial := game.NewPosition()
	history := NewHistory(initial)

	// Walk the first enumerated move N times, then undo N times.
	const n = 6
	for i := 0; i < n; i++ {
		move := history.Current().LegalMoves()[0]
		next, err := history.ApplyMove(move)
		require.NoError(t, err)
		require.Same(t, next, history.Current())
		require.Equal(t, move, history.LastMove())
	}
	require.Equal(t, n, history.Len())

	for i := 0; i < n; i++ {
		_, err := history.Undo()
		require.NoError(t, err)
	}
	require.Same(t, initial, history.Current(),
		"N applies followed by N undos should restore the original position")
	require.Equal(t, 0, history.Len())
	require.Nil(t, history.LastMove())
}

func TestHistoryUndoWithoutMoves(t *testing.T) {
	initial := game.NewPosition()
	history := NewHistory(initial)

	pos, err := history.Undo()
	require.ErrorIs(t, err, ErrNoHistory)
	require.Nil(t, pos)
	require.Same(t, initial, history.Current(), "a failed undo should change nothing")
}

func TestHistoryApplyFailureLeavesStateUnchanged(t *testing.T) {
	initial := game.NewPosition()
	history := NewHistory(initial)

	pos, err := history.ApplyMove(game.ReversiMove{X: 0, Y: 0})
	require.ErrorIs(t, err, game.ErrInvalidMove)
	require.Nil(t, pos)
	require.Same(t, initial, history.Current())
	require.Equal(t, 0, history.Len())
	require.Nil(t, history.LastMove())
}
