package engine

import (
	"hexifence/experiments/metrics"
	"hexifence/game"
)

type Engine interface {
	// Run plays a game till the board is full or a side forfeits
	Run() (winner game.Outcome, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
