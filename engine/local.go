package engine

import (
	"fmt"
	"hexifence/agent"
	"hexifence/experiments/metrics"
	"hexifence/game"
	"hexifence/gamemaster"
	"io"
	"time"

	"github.com/rs/zerolog/log"
)

var _ Engine = (*LocalEngine)(nil)

type Option func(e *LocalEngine)

// WithOutput prints the board after every accepted move.
func WithOutput(w io.Writer) Option {
	return func(e *LocalEngine) {
		e.output = w
	}
}

// LocalEngine runs two agents in-process against a referee.
type LocalEngine struct {
	n      int
	agents map[game.Player]agent.Agent
	output io.Writer
}

func NewLocalEngine(n int, blue, red agent.Agent, options ...Option) *LocalEngine {
	if blue == nil || red == nil {
		panic("need two agents")
	}
	e := &LocalEngine{
		n:      n,
		agents: map[game.Player]agent.Agent{game.Blue: blue, game.Red: red},
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *LocalEngine) Run() (game.Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	referee, err := gamemaster.NewReferee(e.n)
	if err != nil {
		return game.Undecided, metrics.GameMetric{}, nil, err
	}
	for _, p := range []game.Player{game.Blue, game.Red} {
		if err := e.agents[p].Init(e.n, p); err != nil {
			return game.Undecided, metrics.GameMetric{}, nil, fmt.Errorf("failed to init %s agent: %w", p, err)
		}
	}

	gameMetric := metrics.GameMetric{
		Dimension:      e.n,
		StartingPlayer: referee.Turn().String(),
		StartTime:      time.Now(),
	}
	log.Info().Msgf("player %s is starting on a board of dimension %d", referee.Turn(), e.n)

	var moveMetrics []metrics.MoveMetric
	step := 0
	for referee.Outcome() == game.Undecided {
		p := referee.Turn()
		move, searchMetric, err := e.agents[p].ChooseMove()
		if err != nil {
			return game.Undecided, gameMetric, moveMetrics, fmt.Errorf("%s agent failed to choose a move: %w", p, err)
		}
		step++

		bonus, err := referee.Play(move)
		if err != nil {
			log.Warn().Err(err).Msgf("rejected move %v at step %d", move, step)
			break
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         step,
			Player:       p.String(),
			Row:          move.Row,
			Col:          move.Col,
			Bonus:        bonus > 0,
			SearchMetric: searchMetric,
		})

		if _, err := e.agents[p.Opponent()].OpponentMove(move); err != nil {
			// The referee accepted the move so the agents' boards have diverged
			panic(fmt.Sprintf("%s agent rejected an accepted move: %v", p.Opponent(), err))
		}

		if e.output != nil {
			fmt.Fprintf(e.output, "%v\n", move)
			if err := referee.Render(e.output); err != nil {
				return game.Undecided, gameMetric, moveMetrics, err
			}
		}
	}

	outcome := referee.Outcome()
	for _, p := range []game.Player{game.Blue, game.Red} {
		if seen := e.agents[p].Winner(); outcome != game.Undecided && seen != outcome && seen != game.Undecided {
			log.Warn().Msgf("%s agent sees outcome %s, referee ruled %s", p, seen, outcome)
		}
	}

	gameMetric.Winner = outcome.String()
	gameMetric.BlueCaptured = referee.Captured(game.Blue)
	gameMetric.RedCaptured = referee.Captured(game.Red)
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = len(moveMetrics)

	log.Info().Msgf("game over after %d moves, winner: %s (%d-%d)", gameMetric.TotalMoves, outcome, gameMetric.BlueCaptured, gameMetric.RedCaptured)
	return outcome, gameMetric, moveMetrics, nil
}
