package searcher

import (
	"hexifence/game"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func newBoard(t *testing.T, n int, seed uint64) *game.Board {
	t.Helper()
	b, err := game.NewBoard(n, game.WithSeed(seed))
	require.NoError(t, err)
	return b
}

func apply(t *testing.T, b *game.Board, moves ...game.Move) {
	t.Helper()
	for _, m := range moves {
		_, err := b.Apply(m)
		require.NoError(t, err, "Move %v should be legal", m)
	}
}

// advance plays random moves until only free edges are left.
func advance(t *testing.T, b *game.Board, rng *rand.Rand, free int) game.Player {
	t.Helper()
	turn := game.Blue
	for b.FreeEdges() > free {
		moves := b.LegalMoves(turn)
		bonus, err := b.Apply(moves[rng.Intn(len(moves))])
		require.NoError(t, err)
		if bonus == 0 {
			turn = turn.Opponent()
		}
	}
	return turn
}

func TestSearch(t *testing.T) {
	t.Run("rejecting a full board", func(t *testing.T) {
		b := newBoard(t, 1, 1)
		advance(t, b, rand.New(rand.NewSource(1)), 0)

		_, err := NewMinimax().Search(b, game.Blue)
		require.ErrorIs(t, err, ErrNoMoves)
	})

	t.Run("rejecting a missing player", func(t *testing.T) {
		_, err := NewMinimax().Search(newBoard(t, 1, 1), game.NoPlayer)
		require.ErrorIs(t, err, ErrNoPlayer)
	})

	t.Run("taking a safe move on an empty board", func(t *testing.T) {
		b := newBoard(t, 2, 5)
		before := b.String()

		result, err := NewMinimax(WithMetrics()).Search(b, game.Blue)
		require.NoError(t, err)

		require.Equal(t, SAFE_MOVE, result.Score, "No hexagon can be handed over on an empty board")
		require.True(t, result.Metrics.SafeMove)
		require.Equal(t, game.Blue, result.Move.Player)
		require.NoError(t, b.IsLegal(result.Move), "The chosen move should still be free")
		require.Equal(t, before, b.String(), "Search should leave the board untouched")
		require.Equal(t, 30, b.FreeEdges())
	})

	t.Run("winning with the last edge", func(t *testing.T) {
		b := newBoard(t, 1, 1)
		apply(t, b,
			game.NewMove(0, 0, game.Blue), game.NewMove(0, 1, game.Red),
			game.NewMove(1, 0, game.Blue), game.NewMove(1, 2, game.Red),
			game.NewMove(2, 1, game.Blue),
		)

		result, err := NewMinimax().Search(b, game.Red)
		require.NoError(t, err)

		require.Equal(t, game.NewMove(2, 2, game.Red), result.Move)
		require.Equal(t, WIN, result.Score, "Capturing the only hexagon ends the game")
	})

	t.Run("taking a double capture", func(t *testing.T) {
		b := newBoard(t, 2, 9)
		apply(t, b,
			game.NewMove(0, 0, game.Blue), game.NewMove(1, 0, game.Red), game.NewMove(0, 1, game.Blue),
			game.NewMove(2, 1, game.Red), game.NewMove(2, 2, game.Blue), game.NewMove(0, 2, game.Red),
			game.NewMove(0, 3, game.Blue), game.NewMove(2, 3, game.Red), game.NewMove(1, 4, game.Blue),
			game.NewMove(2, 4, game.Red),
		)
		before := b.String()

		result, err := NewMinimax(WithMetrics()).Search(b, game.Blue)
		require.NoError(t, err)

		require.Equal(t, game.NewMove(1, 2, game.Blue), result.Move, "Leaving the shared edge hands two hexagons over")
		require.False(t, result.Metrics.SafeMove, "A capture is available so no move is safe")
		require.Positive(t, result.Metrics.Nodes)
		require.Equal(t, before, b.String())
	})

	t.Run("going deeper near the end", func(t *testing.T) {
		m := NewMinimax()
		require.Equal(t, 3, m.DepthFor(newBoard(t, 2, 1)))

		b := newBoard(t, 2, 3)
		turn := advance(t, b, rand.New(rand.NewSource(3)), 3)
		require.Equal(t, 6, m.DepthFor(b), "Fewer than 49/11 free edges selects the deeper limit")

		result, err := m.Search(b, turn)
		require.NoError(t, err)
		require.Equal(t, 6, result.Depth)
		require.NoError(t, b.IsLegal(result.Move))
	})
}

func TestPruning(t *testing.T) {
	for seed := uint64(1); seed <= 6; seed++ {
		b := newBoard(t, 2, seed)
		turn := advance(t, b, rand.New(rand.NewSource(seed)), 14)
		before := b.String()

		options := []Option{WithDepth(3), WithDeeperDepth(3), WithSafeMoves(false), WithMetrics()}
		pruned, err := NewMinimax(append(options, WithPruning(true))...).Search(b, turn)
		require.NoError(t, err)
		exhaustive, err := NewMinimax(append(options, WithPruning(false))...).Search(b, turn)
		require.NoError(t, err)

		require.Equal(t, exhaustive.Score, pruned.Score, "Alpha-beta should not change the root value (seed %d)", seed)
		require.LessOrEqual(t, pruned.Metrics.Nodes, exhaustive.Metrics.Nodes, "Pruning should never visit more nodes")
		require.Zero(t, exhaustive.Metrics.Cutoffs)
		require.Equal(t, before, b.String(), "Both searches should restore the board")
	}
}

func TestEvaluate(t *testing.T) {
	b := newBoard(t, 1, 1)
	apply(t, b,
		game.NewMove(0, 0, game.Blue), game.NewMove(0, 1, game.Red),
		game.NewMove(1, 0, game.Blue), game.NewMove(1, 2, game.Red),
		game.NewMove(2, 1, game.Blue),
	)
	w := DefaultWeights()

	require.Equal(t, 2, w.evaluate(b, game.Blue, game.Blue), "A pending capture counts for the side to move")
	require.Equal(t, -2, w.evaluate(b, game.Blue, game.Red), "A pending capture counts against self when the opponent moves")

	apply(t, b, game.NewMove(2, 2, game.Red))
	require.Equal(t, LOSS, terminal(b, game.Blue))
	require.Equal(t, WIN, terminal(b, game.Red))
}
