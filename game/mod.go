// Package game holds the Hexifence board: a diamond-shaped grid of edges and
// hexagon centers where two players alternately claim edges and capture the
// hexagons they close.
package game

import "errors"

var (
	ErrInvalidDimension = errors.New("board dimension must be at least 1")
	ErrIllegalMove      = errors.New("illegal move")
	ErrMalformedBoard   = errors.New("malformed board")
)

// Player is one of the two sides.
type Player int

const (
	NoPlayer Player = iota
	Blue
	Red
)

// Opponent returns the other side, or NoPlayer for anything that is not a side.
func (p Player) Opponent() Player {
	switch p {
	case Blue:
		return Red
	case Red:
		return Blue
	}
	return NoPlayer
}

func (p Player) String() string {
	switch p {
	case Blue:
		return "blue"
	case Red:
		return "red"
	}
	return "none"
}

// Outcome is the state of the game as seen by a board or an agent.
type Outcome int

const (
	Undecided Outcome = iota
	BlueWins
	RedWins
	Draw
	Invalid // an illegal move was reported
)

func (o Outcome) String() string {
	switch o {
	case BlueWins:
		return "blue"
	case RedWins:
		return "red"
	case Draw:
		return "draw"
	case Invalid:
		return "invalid"
	}
	return "none"
}

// Winner returns the player the outcome favors, if any.
func (o Outcome) Winner() Player {
	switch o {
	case BlueWins:
		return Blue
	case RedWins:
		return Red
	}
	return NoPlayer
}

// WinFor returns the outcome declaring p the winner.
func WinFor(p Player) Outcome {
	switch p {
	case Blue:
		return BlueWins
	case Red:
		return RedWins
	}
	return Undecided
}
