package agent

import (
	"bufio"
	"bytes"
	"hexifence/game"
	"hexifence/searcher"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRandomAgent(t *testing.T) {
	t.Run("requiring Init before moving", func(t *testing.T) {
		a := NewRandomAgent(1)
		_, _, err := a.ChooseMove()
		require.ErrorIs(t, err, ErrNotInitialized)
	})

	t.Run("rejecting a missing side", func(t *testing.T) {
		require.Error(t, NewRandomAgent(1).Init(1, game.NoPlayer))
	})

	t.Run("repeating choices for the same seed", func(t *testing.T) {
		a1, a2 := NewRandomAgent(11), NewRandomAgent(11)
		require.NoError(t, a1.Init(2, game.Blue))
		require.NoError(t, a2.Init(2, game.Blue))

		for i := 0; i < 5; i++ {
			m1, _, err := a1.ChooseMove()
			require.NoError(t, err)
			m2, _, err := a2.ChooseMove()
			require.NoError(t, err)
			require.Equal(t, m1, m2, "Move %d should match", i)
			require.Equal(t, game.Blue, m1.Player)
		}
	})

	t.Run("filling the board alone", func(t *testing.T) {
		a := NewRandomAgent(3)
		require.NoError(t, a.Init(1, game.Red))
		for i := 0; i < 6; i++ {
			_, _, err := a.ChooseMove()
			require.NoError(t, err)
		}
		require.Equal(t, game.RedWins, a.Winner())

		_, _, err := a.ChooseMove()
		require.ErrorIs(t, err, ErrGameOver)
	})
}

func TestOpponentMove(t *testing.T) {
	t.Run("reporting captures", func(t *testing.T) {
		a := NewRandomAgent(1)
		require.NoError(t, a.Init(1, game.Blue))
		moves := []game.Move{
			game.NewMove(0, 0, game.Red), game.NewMove(0, 1, game.Red),
			game.NewMove(1, 0, game.Red), game.NewMove(1, 2, game.Red),
			game.NewMove(2, 1, game.Red),
		}
		for _, m := range moves {
			bonus, err := a.OpponentMove(m)
			require.NoError(t, err)
			require.Zero(t, bonus)
		}

		bonus, err := a.OpponentMove(game.NewMove(2, 2, game.Red))
		require.NoError(t, err)
		require.Equal(t, 1, bonus)
		require.Equal(t, game.RedWins, a.Winner())
	})

	t.Run("turning invalid after an illegal move", func(t *testing.T) {
		a := NewRandomAgent(1)
		require.NoError(t, a.Init(1, game.Blue))
		_, err := a.OpponentMove(game.NewMove(0, 0, game.Red))
		require.NoError(t, err)

		_, err = a.OpponentMove(game.NewMove(0, 0, game.Red))
		require.ErrorIs(t, err, game.ErrIllegalMove, "The edge is already claimed")
		require.Equal(t, game.Invalid, a.Winner())

		_, _, err = a.ChooseMove()
		require.ErrorIs(t, err, ErrGameOver, "No moves after the game was ruled invalid")
	})

	t.Run("rejecting a move made under the agent's colour", func(t *testing.T) {
		a := NewRandomAgent(1)
		require.NoError(t, a.Init(1, game.Blue))
		_, err := a.OpponentMove(game.NewMove(0, 0, game.Blue))
		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, game.Invalid, a.Winner())
	})
}

func TestSearchAgent(t *testing.T) {
	a := NewSearchAgent(searcher.NewMinimax(searcher.WithMetrics()), game.WithSeed(4))
	require.NoError(t, a.Init(1, game.Red))
	for _, m := range []game.Move{
		game.NewMove(0, 0, game.Blue), game.NewMove(0, 1, game.Blue),
		game.NewMove(1, 0, game.Blue), game.NewMove(1, 2, game.Blue),
		game.NewMove(2, 1, game.Blue),
	} {
		_, err := a.OpponentMove(m)
		require.NoError(t, err)
	}

	move, metric, err := a.ChooseMove()
	require.NoError(t, err)

	require.Equal(t, game.NewMove(2, 2, game.Red), move, "The last edge captures the hexagon")
	require.Equal(t, 3, metric.Depth)
	require.Positive(t, metric.Nodes)
	require.Equal(t, game.RedWins, a.Winner())

	var buf bytes.Buffer
	require.NoError(t, a.Render(&buf))
	require.Equal(t, "B B - \nB r B \n- B R \n\n", buf.String())
}

func TestManualAgent(t *testing.T) {
	t.Run("prompting until a legal move is entered", func(t *testing.T) {
		input := "hello\n1 1\n0 x\n0 0\n"
		var out bytes.Buffer
		a := NewManualAgent(bufio.NewScanner(strings.NewReader(input)), &out)
		require.NoError(t, a.Init(1, game.Blue))

		move, _, err := a.ChooseMove()
		require.NoError(t, err)

		require.Equal(t, game.NewMove(0, 0, game.Blue), move)
		require.Equal(t, 4, strings.Count(out.String(), "blue to move"), "One prompt per line read")
		require.Equal(t, 3, strings.Count(out.String(), "try again"), "Each bad line is explained")
	})

	t.Run("failing when input runs out", func(t *testing.T) {
		a := NewManualAgent(bufio.NewScanner(strings.NewReader("5 5\n")), io.Discard)
		require.NoError(t, a.Init(1, game.Red))

		_, _, err := a.ChooseMove()
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}
