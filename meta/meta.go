// meta/meta.go
package meta

import (
	"fmt"
	"hexifence/utils"
	"os"

	"gopkg.in/yaml.v3"
)

// DIMENSION is the default board radius.
const DIMENSION = 3

// GO_ROUTINES bounds the number of games played at once by an experiment.
const GO_ROUTINES = 8

// NUM_GAMES is the number of games per matchup.
const NUM_GAMES = 10

// OUTPUT_DIR is where experiment records are written.
const OUTPUT_DIR = "experiments/results"

const (
	KindSearch = "search"
	KindRandom = "random"
)

var kinds = []string{KindSearch, KindRandom}

type AgentConfig struct {
	ID          int    `yaml:"id"`
	Kind        string `yaml:"kind"`
	Depth       int    `yaml:"depth"`
	DeeperDepth int    `yaml:"deeper_depth"`
	Seed        uint64 `yaml:"seed"`
	Pruning     *bool  `yaml:"pruning"`
	SafeMoves   *bool  `yaml:"safe_moves"`
}

type Experiment struct {
	Name       string        `yaml:"name"`
	Dimension  int           `yaml:"dimension"`
	Games      int           `yaml:"games"`
	Goroutines int           `yaml:"goroutines"`
	OutputDir  string        `yaml:"output_dir"`
	Agents     []AgentConfig `yaml:"agents"`
	// Matchups pair agent IDs, first plays blue
	Matchups [][2]int `yaml:"matchups"`
}

// DefaultExperiment pits the default search agent against a random agent from
// both sides.
func DefaultExperiment() Experiment {
	return Experiment{
		Name:       "search_vs_random",
		Dimension:  DIMENSION,
		Games:      NUM_GAMES,
		Goroutines: GO_ROUTINES,
		OutputDir:  OUTPUT_DIR,
		Agents: []AgentConfig{
			{ID: 1, Kind: KindSearch},
			{ID: 2, Kind: KindRandom},
		},
		Matchups: [][2]int{{1, 2}, {2, 1}},
	}
}

// Load reads an experiment from a YAML file. Missing fields keep their
// defaults.
func Load(path string) (Experiment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Experiment{}, fmt.Errorf("failed to read experiment config: %w", err)
	}
	e := DefaultExperiment()
	e.Agents = nil
	e.Matchups = nil
	if err := yaml.Unmarshal(data, &e); err != nil {
		return Experiment{}, fmt.Errorf("failed to parse experiment config: %w", err)
	}
	if len(e.Agents) == 0 {
		defaults := DefaultExperiment()
		e.Agents, e.Matchups = defaults.Agents, defaults.Matchups
	}
	if err := e.Validate(); err != nil {
		return Experiment{}, err
	}
	return e, nil
}

func (e Experiment) Validate() error {
	if e.Dimension < 1 {
		return fmt.Errorf("dimension must be at least 1, got %d", e.Dimension)
	}
	if e.Games < 1 {
		return fmt.Errorf("games must be at least 1, got %d", e.Games)
	}
	if e.Goroutines < 1 {
		return fmt.Errorf("goroutines must be at least 1, got %d", e.Goroutines)
	}
	ids := make(map[int]bool, len(e.Agents))
	for _, a := range e.Agents {
		if ids[a.ID] {
			return fmt.Errorf("duplicate agent id %d", a.ID)
		}
		ids[a.ID] = true
		if !utils.Contains(kinds, a.Kind) {
			return fmt.Errorf("agent %d has unknown kind %q", a.ID, a.Kind)
		}
	}
	if len(e.Matchups) == 0 {
		return fmt.Errorf("no matchups")
	}
	for _, m := range e.Matchups {
		for _, id := range m {
			if !ids[id] {
				return fmt.Errorf("matchup %v references unknown agent %d", m, id)
			}
		}
	}
	return nil
}

// Agent returns the configuration with the given ID.
func (e Experiment) Agent(id int) (AgentConfig, bool) {
	for _, a := range e.Agents {
		if a.ID == id {
			return a, true
		}
	}
	return AgentConfig{}, false
}
