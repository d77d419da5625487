package gamemaster

import (
	"errors"
	"fmt"
	"hexifence/game"
	"io"
)

var ErrGameOver = errors.New("game is over - no moves allowed")

// Referee holds the authoritative board of a match. Blue moves first; a move
// that captures lets the same side move again.
type Referee struct {
	board   *game.Board
	turn    game.Player
	outcome game.Outcome
	moves   []game.Move
}

func NewReferee(n int, options ...game.Option) (*Referee, error) {
	b, err := game.NewBoard(n, options...)
	if err != nil {
		return nil, err
	}
	return &Referee{
		board: b,
		turn:  game.Blue,
	}, nil
}

// Play validates and applies a move from the side to move. An illegal move
// ends the game in favor of the opponent and is returned as an error.
func (r *Referee) Play(move game.Move) (int, error) {
	if r.outcome != game.Undecided {
		return 0, ErrGameOver
	}

	err := r.board.IsLegal(move)
	if err == nil && move.Player != r.turn {
		err = fmt.Errorf("%w: %v played out of turn", game.ErrIllegalMove, move)
	}
	if err != nil {
		r.outcome = game.WinFor(r.turn.Opponent())
		return 0, fmt.Errorf("%s forfeits: %w", r.turn, err)
	}

	bonus, err := r.board.Apply(move)
	if err != nil {
		panic(err)
	}
	r.moves = append(r.moves, move)

	if bonus == 0 {
		r.turn = r.turn.Opponent()
	}
	if r.board.FreeEdges() == 0 {
		r.outcome = r.board.Winner()
	}
	return bonus, nil
}

// Turn returns the side expected to move next.
func (r *Referee) Turn() game.Player {
	return r.turn
}

// Outcome is Undecided until the board is full or a side forfeits.
func (r *Referee) Outcome() game.Outcome {
	return r.outcome
}

func (r *Referee) Captured(p game.Player) int {
	return r.board.Captured(p)
}

// Moves returns the accepted moves in order.
func (r *Referee) Moves() []game.Move {
	return append([]game.Move(nil), r.moves...)
}

func (r *Referee) Render(w io.Writer) error {
	return r.board.Render(w)
}
