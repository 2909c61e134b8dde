package engine

import (
	"testing"

	"reversi/game"
	"reversi/searcher"

	"github.com/stretchr/testify/require"
)

func TestRunRandomSelfPlay(t *testing.T) {
	final, records, err := Run(game.NewPositionSize(4), []Agent{
		NewRandomAgent(1),
		NewRandomAgent(2),
	}, 0)

	require.NoError(t, err)
	require.True(t, final.IsTerminal(), "random self-play should reach the double-pass terminal")
	require.NotEmpty(t, records)
	require.Equal(t, 1, records[0].Step)
}

func TestRunSearchAgainstRandom(t *testing.T) {
	search := searcher.New(searcher.WithPly(2))
	final, records, err := Run(game.NewPositionSize(4), []Agent{
		NewSearchAgent(search),
		NewRandomAgent(7),
	}, 0)

	require.NoError(t, err)
	require.True(t, final.IsTerminal())

	// Even steps belong to the search agent and should carry diagnostics.
	require.Greater(t, records[0].Metrics.Nodes, int64(0))
}

func TestRunStopsAtMoveCap(t *testing.T) {
	final, records, err := Run(game.NewPosition(), []Agent{
		NewRandomAgent(3),
		NewRandomAgent(4),
	}, 2)

	require.NoError(t, err)
	require.False(t, final.IsTerminal())
	require.Len(t, records, 2)
}

func TestRunValidation(t *testing.T) {
	t.Run("missing position", func(t *testing.T) {
		_, _, err := Run(nil, []Agent{NewRandomAgent(1), NewRandomAgent(2)}, 0)
		require.ErrorIs(t, err, ErrMissingCapability)
	})

	t.Run("too few agents", func(t *testing.T) {
		_, _, err := Run(game.NewPosition(), []Agent{NewRandomAgent(1)}, 0)
		require.Error(t, err)
	})
}
