package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"hexifence/agent"
	"hexifence/engine"
	"hexifence/experiments"
	"hexifence/game"
	"hexifence/meta"
	"hexifence/searcher"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: hexifence <command> [flags]

commands:
  play        play a game between two agents
  analyze     print free edges, best single-move capture and available captures of a board
  experiment  run matchups between agent configurations and write CSV records
`

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})

	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("hexifence failed")
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	if len(args) == 0 {
		fmt.Fprint(stdout, usage)
		return fmt.Errorf("missing command")
	}
	switch args[0] {
	case "play":
		return runPlay(args[1:], stdin, stdout)
	case "analyze":
		return runAnalyze(args[1:], stdin, stdout)
	case "experiment":
		return runExperiment(args[1:])
	default:
		fmt.Fprint(stdout, usage)
		return fmt.Errorf("unknown command %q", args[0])
	}
}

func setLogLevel(level string) error {
	l, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("bad log level: %w", err)
	}
	zerolog.SetGlobalLevel(l)
	return nil
}

func runPlay(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	n := fs.Int("n", meta.DIMENSION, "Board dimension")
	blue := fs.String("blue", "search", "Blue agent: search, random or manual")
	red := fs.String("red", "random", "Red agent: search, random or manual")
	depth := fs.Int("depth", 3, "Search depth")
	deeper := fs.Int("deeper", 6, "Search depth near the end of the game")
	seed := fs.Uint64("seed", 0, "Seed for random choices, 0 for a fresh one")
	quiet := fs.Bool("quiet", false, "Do not print the board after every move")
	level := fs.String("log-level", "info", "Log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := setLogLevel(*level); err != nil {
		return err
	}

	// Both manual agents read from one scanner so neither buffers the other's lines.
	input := bufio.NewScanner(stdin)
	newAgent := func(kind string, offset uint64) (agent.Agent, error) {
		s := *seed
		if s != 0 {
			s += offset
		}
		switch kind {
		case meta.KindSearch:
			var options []game.Option
			if s != 0 {
				options = append(options, game.WithSeed(s))
			}
			m := searcher.NewMinimax(searcher.WithDepth(*depth), searcher.WithDeeperDepth(*deeper), searcher.WithMetrics())
			return agent.NewSearchAgent(m, options...), nil
		case meta.KindRandom:
			return agent.NewRandomAgent(s), nil
		case "manual":
			return agent.NewManualAgent(input, stdout), nil
		}
		return nil, fmt.Errorf("unknown agent %q", kind)
	}
	blueAgent, err := newAgent(*blue, 0)
	if err != nil {
		return err
	}
	redAgent, err := newAgent(*red, 1)
	if err != nil {
		return err
	}

	var options []engine.Option
	if !*quiet {
		options = append(options, engine.WithOutput(stdout))
	}
	outcome, gameMetric, _, err := engine.NewLocalEngine(*n, blueAgent, redAgent, options...).Run()
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "winner: %s (blue %d, red %d)\n", outcome, gameMetric.BlueCaptured, gameMetric.RedCaptured)
	return nil
}

// runAnalyze reads a board from the file named by the first argument, or
// stdin, and prints one value per line.
func runAnalyze(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("analyze", flag.ContinueOnError)
	level := fs.String("log-level", "warn", "Log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := setLogLevel(*level); err != nil {
		return err
	}

	in := stdin
	if fs.NArg() > 0 {
		f, err := os.Open(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("failed to open board: %w", err)
		}
		defer f.Close()
		in = f
	}

	b, err := game.ParseBoard(in, game.WithUnownedCaptures())
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "%d\n%d\n%d\n", b.FreeEdges(), b.MaxCapturePotential(), b.AvailableCaptures())
	return err
}

func runExperiment(args []string) error {
	fs := flag.NewFlagSet("experiment", flag.ContinueOnError)
	config := fs.String("config", "", "YAML experiment file, built-in default when empty")
	out := fs.String("out", "", "Directory for the records, overrides the config")
	level := fs.String("log-level", "info", "Log level")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := setLogLevel(*level); err != nil {
		return err
	}

	e := meta.DefaultExperiment()
	if *config != "" {
		var err error
		if e, err = meta.Load(*config); err != nil {
			return err
		}
	}
	if *out != "" {
		e.OutputDir = *out
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	dir, _, err := experiments.Run(ctx, e)
	if err != nil {
		return err
	}
	log.Info().Msgf("records written to %s", dir)
	return nil
}
