package agent

import (
	"hexifence/experiments/metrics"
	"hexifence/game"
	"hexifence/searcher"
)

// SearchAgent picks moves with minimax search.
type SearchAgent struct {
	base
	minimax *searcher.Minimax
	options []game.Option
}

func NewSearchAgent(minimax *searcher.Minimax, options ...game.Option) *SearchAgent {
	if minimax == nil {
		panic("search agent needs a searcher")
	}
	return &SearchAgent{minimax: minimax, options: options}
}

func (a *SearchAgent) Init(n int, p game.Player) error {
	return a.init(n, p, a.options...)
}

func (a *SearchAgent) ChooseMove() (game.Move, metrics.SearchMetric, error) {
	if err := a.ready(); err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	result, err := a.minimax.Search(a.board, a.player)
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	if err := a.play(result.Move); err != nil {
		return game.Move{}, result.Metrics, err
	}
	return result.Move, result.Metrics, nil
}
