// Package agent holds the players that can take part in a match. Every agent
// keeps its own copy of the board and is told about the opponent's moves.
package agent

import (
	"errors"
	"fmt"
	"hexifence/experiments/metrics"
	"hexifence/game"
	"io"
)

var (
	ErrNotInitialized = errors.New("agent has not been initialized")
	ErrGameOver       = errors.New("game is over")
)

type Agent interface {
	// Init starts a new game on a board of radius n playing as p.
	Init(n int, p game.Player) error
	// ChooseMove picks a move, applies it to the agent's board and returns it
	// together with search metrics (if collected).
	ChooseMove() (game.Move, metrics.SearchMetric, error)
	// OpponentMove applies the opponent's move and returns 1 if it captured.
	// An illegal move is reported once and leaves the agent in the Invalid
	// state.
	OpponentMove(m game.Move) (int, error)
	Winner() game.Outcome
	Render(w io.Writer) error
}

var (
	_ Agent = (*SearchAgent)(nil)
	_ Agent = (*RandomAgent)(nil)
	_ Agent = (*ManualAgent)(nil)
)

// base implements the board bookkeeping shared by every agent.
type base struct {
	board   *game.Board
	player  game.Player
	invalid bool
}

func (a *base) init(n int, p game.Player, options ...game.Option) error {
	if p != game.Blue && p != game.Red {
		return fmt.Errorf("cannot play as %v", p)
	}
	b, err := game.NewBoard(n, options...)
	if err != nil {
		return fmt.Errorf("failed to create board: %w", err)
	}
	a.board = b
	a.player = p
	a.invalid = false
	return nil
}

// ready reports whether the agent may move.
func (a *base) ready() error {
	if a.board == nil {
		return ErrNotInitialized
	}
	if a.invalid || a.board.FreeEdges() == 0 {
		return ErrGameOver
	}
	return nil
}

func (a *base) play(m game.Move) error {
	if _, err := a.board.Apply(m); err != nil {
		return fmt.Errorf("failed to apply own move: %w", err)
	}
	return nil
}

func (a *base) OpponentMove(m game.Move) (int, error) {
	if a.board == nil {
		return 0, ErrNotInitialized
	}
	if m.Player != a.player.Opponent() {
		a.invalid = true
		return 0, fmt.Errorf("%w: %v is not the opponent's move", game.ErrIllegalMove, m)
	}
	bonus, err := a.board.Apply(m)
	if err != nil {
		a.invalid = true
		return 0, err
	}
	return bonus, nil
}

func (a *base) Winner() game.Outcome {
	if a.invalid {
		return game.Invalid
	}
	if a.board == nil {
		return game.Undecided
	}
	return a.board.Winner()
}

func (a *base) Render(w io.Writer) error {
	if a.board == nil {
		return ErrNotInitialized
	}
	return a.board.Render(w)
}

// Player returns the side the agent plays.
func (a *base) Player() game.Player {
	return a.player
}
