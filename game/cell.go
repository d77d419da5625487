package game

// Symbol is the state held by a single grid position.
type Symbol int

const (
	NotPlayable Symbol = iota
	Free
	ClaimedByBlue
	ClaimedByRed
	HexUndecided
	HexOwnedByBlue
	HexOwnedByRed
	// HexClosed is a surrounded hexagon whose owner is not known. It is never
	// credited to either side.
	HexClosed
)

// Rune is the character used when printing or parsing a board.
func (s Symbol) Rune() rune {
	switch s {
	case Free:
		return '+'
	case ClaimedByBlue:
		return 'B'
	case ClaimedByRed:
		return 'R'
	case HexOwnedByBlue:
		return 'b'
	case HexOwnedByRed:
		return 'r'
	}
	return '-'
}

func (s Symbol) String() string {
	return string(s.Rune())
}

// IsClaimed reports whether s is an edge taken by either player.
func (s Symbol) IsClaimed() bool {
	return s == ClaimedByBlue || s == ClaimedByRed
}

// IsOwned reports whether s is a captured hexagon center.
func (s Symbol) IsOwned() bool {
	return s == HexOwnedByBlue || s == HexOwnedByRed
}

// Owner returns the player holding an edge or hexagon, or NoPlayer.
func (s Symbol) Owner() Player {
	switch s {
	case ClaimedByBlue, HexOwnedByBlue:
		return Blue
	case ClaimedByRed, HexOwnedByRed:
		return Red
	}
	return NoPlayer
}

func claimedBy(p Player) Symbol {
	if p == Blue {
		return ClaimedByBlue
	}
	return ClaimedByRed
}

func ownedBy(p Player) Symbol {
	if p == Blue {
		return HexOwnedByBlue
	}
	return HexOwnedByRed
}

// Cell is one addressable grid position.
type Cell struct {
	Symbol Symbol
	// CapturePotential is the number of undecided hexagons (0, 1 or 2) this
	// edge would complete if it were claimed next.
	CapturePotential int
}
