package experiments

import (
	"fmt"
	"hexifence/experiments/metrics"
	"hexifence/game"
)

// MatchupSummary tallies the games between one blue and one red agent.
type MatchupSummary struct {
	Blue, Red int // agent IDs
	Games     int
	BlueWins  int
	RedWins   int
	Draws     int
	Invalid   int
	Moves     int
}

func (s MatchupSummary) String() string {
	return fmt.Sprintf("agent %d (blue) vs agent %d (red): %d games, %d-%d, %d draws, avg %.1f moves",
		s.Blue, s.Red, s.Games, s.BlueWins, s.RedWins, s.Draws, float64(s.Moves)/float64(max(s.Games, 1)))
}

type Summary []MatchupSummary

// Summarize groups game records by matchup in order of first appearance.
func Summarize(records []metrics.GameRecord) Summary {
	summary := Summary{}
	index := map[[2]int]int{}
	for _, r := range records {
		key := [2]int{r.Agent1, r.Agent2}
		i, ok := index[key]
		if !ok {
			i = len(summary)
			index[key] = i
			summary = append(summary, MatchupSummary{Blue: r.Agent1, Red: r.Agent2})
		}
		s := &summary[i]
		s.Games++
		s.Moves += r.TotalMoves
		switch r.Winner {
		case game.BlueWins.String():
			s.BlueWins++
		case game.RedWins.String():
			s.RedWins++
		case game.Draw.String():
			s.Draws++
		default:
			s.Invalid++
		}
	}
	return summary
}
