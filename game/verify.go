package game

import (
	"errors"
	"fmt"
)

var ErrCorrupted = errors.New("board invariant violated")

// Verify recomputes every derived counter from a full scan without touching
// the board and reports the first mismatch.
func (b *Board) Verify() error {
	free := 0
	for _, e := range b.edges {
		c := b.cells[e.row][e.col]
		switch c.Symbol {
		case Free:
			free++
		case ClaimedByBlue, ClaimedByRed:
		default:
			return fmt.Errorf("%w: edge (%d,%d) holds %q", ErrCorrupted, e.row, e.col, c.Symbol.Rune())
		}
		if c.Symbol != Free && c.CapturePotential != 0 {
			return fmt.Errorf("%w: claimed edge (%d,%d) has capture potential %d", ErrCorrupted, e.row, e.col, c.CapturePotential)
		}
		if c.CapturePotential < 0 || c.CapturePotential > 2 {
			return fmt.Errorf("%w: edge (%d,%d) has capture potential %d", ErrCorrupted, e.row, e.col, c.CapturePotential)
		}
	}
	if free != b.freeEdges {
		return fmt.Errorf("%w: free edge count is %d, scan found %d", ErrCorrupted, b.freeEdges, free)
	}

	expected := make(map[position]int)
	available, blue, red := 0, 0, 0
	for _, h := range b.hexes {
		frees := 0
		var last position
		for _, s := range sides(h) {
			if b.cells[s.row][s.col].Symbol == Free {
				frees++
				last = s
			}
		}
		if frees == 1 {
			expected[last]++
			available++
		}

		center := b.cells[h.row+1][h.col+1].Symbol
		switch center {
		case HexOwnedByBlue:
			blue++
		case HexOwnedByRed:
			red++
		case HexUndecided, HexClosed:
		default:
			return fmt.Errorf("%w: hexagon center (%d,%d) holds %q", ErrCorrupted, h.row+1, h.col+1, center.Rune())
		}
		if (center.IsOwned() || center == HexClosed) && frees > 0 {
			return fmt.Errorf("%w: hexagon (%d,%d) is closed but has %d free sides", ErrCorrupted, h.row+1, h.col+1, frees)
		}
		if center == HexUndecided && frees == 0 {
			return fmt.Errorf("%w: hexagon (%d,%d) is surrounded but undecided", ErrCorrupted, h.row+1, h.col+1)
		}
	}

	maxPotential := 0
	for _, e := range b.edges {
		got := b.cells[e.row][e.col].CapturePotential
		if got != expected[e] {
			return fmt.Errorf("%w: edge (%d,%d) has capture potential %d, scan found %d", ErrCorrupted, e.row, e.col, got, expected[e])
		}
		maxPotential = max(maxPotential, got)
	}
	if available != b.availableCaptures {
		return fmt.Errorf("%w: available captures is %d, scan found %d", ErrCorrupted, b.availableCaptures, available)
	}
	if maxPotential != b.maxCapturePotential {
		return fmt.Errorf("%w: max capture potential is %d, scan found %d", ErrCorrupted, b.maxCapturePotential, maxPotential)
	}
	if blue != b.blueCaptured || red != b.redCaptured {
		return fmt.Errorf("%w: captured counts are %d/%d, scan found %d/%d", ErrCorrupted, b.blueCaptured, b.redCaptured, blue, red)
	}
	return nil
}
