package gamemaster

import (
	"hexifence/game"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewReferee(t *testing.T) {
	_, err := NewReferee(0)
	require.ErrorIs(t, err, game.ErrInvalidDimension)

	r, err := NewReferee(2)
	require.NoError(t, err)
	require.Equal(t, game.Blue, r.Turn(), "Blue always starts")
	require.Equal(t, game.Undecided, r.Outcome())
	require.Empty(t, r.Moves())
}

func TestPlay(t *testing.T) {
	t.Run("alternating turns and granting extra moves", func(t *testing.T) {
		r, err := NewReferee(1)
		require.NoError(t, err)

		opening := []game.Move{
			game.NewMove(0, 0, game.Blue), game.NewMove(0, 1, game.Red),
			game.NewMove(1, 0, game.Blue), game.NewMove(1, 2, game.Red),
			game.NewMove(2, 1, game.Blue),
		}
		for _, m := range opening {
			require.Equal(t, m.Player, r.Turn())
			bonus, err := r.Play(m)
			require.NoError(t, err)
			require.Zero(t, bonus)
		}
		require.Equal(t, game.Red, r.Turn())

		bonus, err := r.Play(game.NewMove(2, 2, game.Red))
		require.NoError(t, err)
		require.Equal(t, 1, bonus)
		require.Equal(t, game.Red, r.Turn(), "The capturer moves again")
		require.Equal(t, game.RedWins, r.Outcome(), "The full board is scored")
		require.Equal(t, 1, r.Captured(game.Red))
		require.Len(t, r.Moves(), 6)

		_, err = r.Play(game.NewMove(0, 0, game.Blue))
		require.ErrorIs(t, err, ErrGameOver)
	})

	t.Run("ruling against a claimed edge", func(t *testing.T) {
		r, err := NewReferee(1)
		require.NoError(t, err)
		_, err = r.Play(game.NewMove(0, 0, game.Blue))
		require.NoError(t, err)

		_, err = r.Play(game.NewMove(0, 0, game.Red))

		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, game.BlueWins, r.Outcome(), "The offender's opponent wins")
		require.Len(t, r.Moves(), 1, "Rejected moves are not recorded")
	})

	t.Run("ruling against a move out of turn", func(t *testing.T) {
		r, err := NewReferee(1)
		require.NoError(t, err)

		_, err = r.Play(game.NewMove(0, 0, game.Red))

		require.ErrorIs(t, err, game.ErrIllegalMove)
		require.Equal(t, game.RedWins, r.Outcome(), "Blue was to move and forfeits")
	})

	t.Run("leaving the board's random source untouched", func(t *testing.T) {
		r, err := NewReferee(2, game.WithSeed(5))
		require.NoError(t, err)
		b, err := game.NewBoard(2, game.WithSeed(5))
		require.NoError(t, err)

		for _, m := range []game.Move{game.NewMove(0, 0, game.Blue), game.NewMove(0, 1, game.Red)} {
			_, err := r.Play(m)
			require.NoError(t, err)
			_, err = b.Apply(m)
			require.NoError(t, err)
		}

		require.Equal(t, b.LegalMoves(game.Blue), r.board.LegalMoves(game.Blue), "Refereeing does not draw from the board's shuffle")
	})
}
