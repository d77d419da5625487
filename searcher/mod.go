package searcher

import (
	"errors"
	"hexifence/game"
)

// Scores of a finished game from the searching player's point of view.
const (
	WIN  = 10000
	LOSS = -10000
	DRAW = LOSS / 2
)

// SAFE_MOVE is returned for a root move that leaves nothing to capture.
const SAFE_MOVE = 5

var (
	ErrNoMoves  = errors.New("no free edges left to search")
	ErrNoPlayer = errors.New("search needs a player to move")
)

// Weights tune the leaf evaluation.
type Weights struct {
	MyCapture    int
	TheirCapture int
	MyStreak     int
	TheirStreak  int
	StreakCap    int // MaxStreak stops once this many hexagons are found
}

func DefaultWeights() Weights {
	return Weights{
		MyCapture:    1,
		TheirCapture: 3,
		MyStreak:     2,
		TheirStreak:  2,
		StreakCap:    3,
	}
}

// evaluate scores a non-terminal leaf for self. The streak lookahead counts in
// favor of whoever moves next.
func (w Weights) evaluate(b *game.Board, self, turn game.Player) int {
	score := w.MyCapture*b.Captured(self) - w.TheirCapture*b.Captured(self.Opponent())
	streak := b.MaxStreak(w.StreakCap, 0)
	if turn == self {
		return score + w.MyStreak*streak
	}
	return score - w.TheirStreak*streak
}

func terminal(b *game.Board, self game.Player) int {
	mine, theirs := b.Captured(self), b.Captured(self.Opponent())
	switch {
	case mine > theirs:
		return WIN
	case mine < theirs:
		return LOSS
	default:
		return DRAW
	}
}
