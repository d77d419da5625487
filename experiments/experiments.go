package experiments

import (
	"context"
	"fmt"
	"hexifence/agent"
	"hexifence/engine"
	"hexifence/experiments/metrics"
	"hexifence/game"
	"hexifence/meta"
	"hexifence/searcher"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type result struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
}

// Run plays every matchup of the experiment, at most e.Goroutines games at a
// time, and writes agent configs, game records and move records as CSV. It
// returns the directory holding the records.
func Run(ctx context.Context, e meta.Experiment) (string, Summary, error) {
	if err := e.Validate(); err != nil {
		return "", nil, fmt.Errorf("invalid experiment: %w", err)
	}

	writer, err := metrics.NewWriter(e.OutputDir, e.Name)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(e.Agents); err != nil {
		return "", nil, fmt.Errorf("failed to store agent configs: %w", err)
	}
	log.Info().Msg("stored agent configs")

	log.Info().Msgf("starting %s experiment with %d matchups of %d games...", e.Name, len(e.Matchups), e.Games)

	// Each game writes only its own slot.
	results := make([]result, len(e.Matchups)*e.Games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.Goroutines)
	for mi, matchup := range e.Matchups {
		blue, _ := e.Agent(matchup[0])
		red, _ := e.Agent(matchup[1])
		for i := 0; i < e.Games; i++ {
			mi, i := mi, i
			id := mi*e.Games + i + 1
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				log.Info().Msgf("starting matchup %d of %d game %d of %d...", mi+1, len(e.Matchups), i+1, e.Games)

				r, err := runGame(e.Dimension, id, blue, red)
				if err != nil {
					return fmt.Errorf("game %d: %w", id, err)
				}
				results[id-1] = r

				log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(e.Matchups), i+1, r.game.Winner)
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return "", nil, err
	}
	log.Info().Msgf("completed %s experiment", e.Name)

	gameRecords := make([]metrics.GameRecord, 0, len(results))
	moveRecords := []metrics.MoveRecord{}
	for _, r := range results {
		gameRecords = append(gameRecords, r.game)
		moveRecords = append(moveRecords, r.moves...)
	}

	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", nil, fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", nil, fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	summary := Summarize(gameRecords)
	for _, line := range summary {
		log.Info().Msgf("%s", line)
	}
	return writer.Dir(), summary, nil
}

// runGame plays a single game between two configured agents.
func runGame(n, id int, blueConfig, redConfig meta.AgentConfig) (result, error) {
	e := engine.NewLocalEngine(n, createAgent(blueConfig, id), createAgent(redConfig, id))
	_, gameMetric, moveMetrics, err := e.Run()
	if err != nil {
		return result{}, err
	}

	r := result{
		game: metrics.GameRecord{
			ID:         id,
			Agent1:     blueConfig.ID,
			Agent2:     redConfig.ID,
			GameMetric: gameMetric,
		},
	}
	for _, mm := range moveMetrics {
		r.moves = append(r.moves, metrics.MoveRecord{
			Game:       id,
			MoveMetric: mm,
		})
	}
	return r, nil
}

// createAgent builds a fresh agent for one game. Seeded agents are offset by
// the game ID so repeated games differ but stay reproducible.
func createAgent(config meta.AgentConfig, id int) agent.Agent {
	seed := config.Seed
	if seed != 0 {
		seed += uint64(id)
	}

	switch config.Kind {
	case meta.KindRandom:
		return agent.NewRandomAgent(seed)
	case meta.KindSearch:
		options := []searcher.Option{searcher.WithMetrics()}
		if config.Depth > 0 {
			options = append(options, searcher.WithDepth(config.Depth))
		}
		if config.DeeperDepth > 0 {
			options = append(options, searcher.WithDeeperDepth(config.DeeperDepth))
		}
		if config.Pruning != nil {
			options = append(options, searcher.WithPruning(*config.Pruning))
		}
		if config.SafeMoves != nil {
			options = append(options, searcher.WithSafeMoves(*config.SafeMoves))
		}
		var boardOptions []game.Option
		if seed != 0 {
			boardOptions = append(boardOptions, game.WithSeed(seed))
		}
		return agent.NewSearchAgent(searcher.NewMinimax(options...), boardOptions...)
	default:
		panic(fmt.Sprintf("unknown agent kind %q", config.Kind))
	}
}
