package agent

import (
	"bufio"
	"fmt"
	"hexifence/experiments/metrics"
	"hexifence/game"
	"io"
	"strconv"
	"strings"
)

// ManualAgent asks a person for moves, one "row col" pair per line.
type ManualAgent struct {
	base
	in  *bufio.Scanner
	out io.Writer
}

// NewManualAgent reads moves from in. Agents sharing an input must share the
// scanner.
func NewManualAgent(in *bufio.Scanner, out io.Writer) *ManualAgent {
	return &ManualAgent{in: in, out: out}
}

func (a *ManualAgent) Init(n int, p game.Player) error {
	return a.init(n, p)
}

// ChooseMove prompts until a legal move is entered or the input ends.
func (a *ManualAgent) ChooseMove() (game.Move, metrics.SearchMetric, error) {
	if err := a.ready(); err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}
	if err := a.board.Render(a.out); err != nil {
		return game.Move{}, metrics.SearchMetric{}, err
	}

	for {
		fmt.Fprintf(a.out, "%s to move (row col): ", a.player)
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", err)
			}
			return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to read move: %w", io.ErrUnexpectedEOF)
		}

		move, err := parseMove(a.in.Text(), a.player)
		if err == nil {
			err = a.board.IsLegal(move)
		}
		if err != nil {
			fmt.Fprintf(a.out, "%v, try again\n", err)
			continue
		}

		if err := a.play(move); err != nil {
			return game.Move{}, metrics.SearchMetric{}, err
		}
		return move, metrics.SearchMetric{}, nil
	}
}

func parseMove(line string, p game.Player) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return game.Move{}, fmt.Errorf("expected two numbers, got %q", line)
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return game.Move{}, fmt.Errorf("bad row %q", fields[0])
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return game.Move{}, fmt.Errorf("bad column %q", fields[1])
	}
	return game.NewMove(row, col, p), nil
}
