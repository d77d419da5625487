package experiments

import (
	"context"
	"encoding/csv"
	"hexifence/experiments/metrics"
	"hexifence/meta"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return len(rows) - 1
}

func TestRun(t *testing.T) {
	t.Run("playing every game and writing records", func(t *testing.T) {
		off := false
		e := meta.Experiment{
			Name:       "unit",
			Dimension:  1,
			Games:      3,
			Goroutines: 2,
			OutputDir:  t.TempDir(),
			Agents: []meta.AgentConfig{
				{ID: 1, Kind: meta.KindSearch, Seed: 1, Pruning: &off},
				{ID: 2, Kind: meta.KindRandom, Seed: 2},
			},
			Matchups: [][2]int{{1, 2}, {2, 1}},
		}

		dir, summary, err := Run(context.Background(), e)
		require.NoError(t, err)

		require.Equal(t, 2, countRows(t, filepath.Join(dir, "agent_configs.csv")))
		require.Equal(t, 6, countRows(t, filepath.Join(dir, "game_records.csv")), "Two matchups of three games")
		require.Equal(t, 36, countRows(t, filepath.Join(dir, "move_records.csv")), "Six edges per game")

		require.Len(t, summary, 2)
		for _, s := range summary {
			require.Equal(t, 3, s.Games)
			require.Equal(t, s.Games, s.BlueWins+s.RedWins+s.Draws, "Games between legal agents always finish")
			require.Zero(t, s.Invalid)
		}
		require.Equal(t, 1, summary[0].Blue)
		require.Equal(t, 2, summary[1].Blue)
	})

	t.Run("rejecting an invalid experiment", func(t *testing.T) {
		e := meta.DefaultExperiment()
		e.Games = 0
		_, _, err := Run(context.Background(), e)
		require.Error(t, err)
	})

	t.Run("stopping when cancelled", func(t *testing.T) {
		e := meta.DefaultExperiment()
		e.Dimension = 1
		e.OutputDir = t.TempDir()
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, _, err := Run(ctx, e)
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestSummarize(t *testing.T) {
	records := []metrics.GameRecord{
		{Agent1: 1, Agent2: 2, GameMetric: metrics.GameMetric{Winner: "blue", TotalMoves: 6}},
		{Agent1: 1, Agent2: 2, GameMetric: metrics.GameMetric{Winner: "draw", TotalMoves: 8}},
		{Agent1: 2, Agent2: 1, GameMetric: metrics.GameMetric{Winner: "red", TotalMoves: 6}},
		{Agent1: 2, Agent2: 1, GameMetric: metrics.GameMetric{Winner: "invalid", TotalMoves: 1}},
	}

	summary := Summarize(records)

	require.Equal(t, Summary{
		{Blue: 1, Red: 2, Games: 2, BlueWins: 1, Draws: 1, Moves: 14},
		{Blue: 2, Red: 1, Games: 2, RedWins: 1, Invalid: 1, Moves: 7},
	}, summary)
	require.Equal(t, "agent 1 (blue) vs agent 2 (red): 2 games, 1-0, 1 draws, avg 7.0 moves", summary[0].String())
}
