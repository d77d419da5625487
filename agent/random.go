package agent

import (
	"hexifence/experiments/metrics"
	"hexifence/game"
	"math"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

// RandomAgent claims a uniformly random free edge.
type RandomAgent struct {
	base
	rng *rand.Rand
}

// NewRandomAgent returns an agent whose choices are reproducible for a given
// non-zero seed. A zero seed draws one from the system.
func NewRandomAgent(seed uint64) *RandomAgent {
	if seed == 0 {
		seed = frand.Uint64n(math.MaxUint64) + 1
	}
	return &RandomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *RandomAgent) Init(n int, p game.Player) error {
	return a.init(n, p, game.WithRand(a.rng))
}

func (a *RandomAgent) ChooseMove() (game.Move, metrics.SearchMetric, error) {
	if err := a.ready(); err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	moves := a.board.LegalMoves(a.player)
	move := moves[a.rng.Intn(len(moves))]
	if err := a.play(move); err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	return move, metrics.SearchMetric{}, nil
}
