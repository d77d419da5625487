package game

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"lukechampine.com/frand"
)

type Option func(b *Board)

// WithRand sets the source used to shuffle legal moves.
func WithRand(r *rand.Rand) Option {
	return func(b *Board) {
		if r != nil {
			b.rng = r
		}
	}
}

// WithUnownedCaptures lets ParseBoard accept '-' on the center of a
// surrounded hexagon, as in boards that do not record who captured what.
func WithUnownedCaptures() Option {
	return func(b *Board) {
		b.unownedCaptures = true
	}
}

// WithSeed shuffles legal moves with a deterministic source seeded by seed.
func WithSeed(seed uint64) Option {
	return func(b *Board) {
		b.rng = rand.New(rand.NewSource(seed))
	}
}

type position struct {
	row, col int
}

// sides lists the six positions touching the hexagon whose top-left edge is
// at (i, j).
func sides(h position) [6]position {
	i, j := h.row, h.col
	return [6]position{
		{i, j}, {i + 1, j}, {i, j + 1},
		{i + 2, j + 1}, {i + 1, j + 2}, {i + 2, j + 2},
	}
}

// Board owns the grid and every derived counter. It is mutated in place by
// Apply and restored by Undo; callers must undo in exact reverse order.
type Board struct {
	n     int
	size  int
	cells [][]Cell

	// Playable edges in row-major order and complete hexagons (by top-left
	// edge) in scan order. Both are fixed at construction.
	edges []position
	hexes []position

	freeEdges           int
	blueCaptured        int
	redCaptured         int
	maxCapturePotential int
	availableCaptures   int

	rng *rand.Rand

	unownedCaptures bool
}

// NewBoard builds an empty board of radius n, 4n-1 positions wide.
func NewBoard(n int, options ...Option) (*Board, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDimension, n)
	}
	size := 4*n - 1
	b := &Board{
		n:    n,
		size: size,
		rng:  rand.New(rand.NewSource(frand.Uint64n(math.MaxUint64))),
	}
	for _, option := range options {
		option(b)
	}

	b.cells = make([][]Cell, size)
	for i := range b.cells {
		b.cells[i] = make([]Cell, size)
		for j := range b.cells[i] {
			if b.IsPlayable(i, j) {
				b.cells[i][j].Symbol = Free
				b.edges = append(b.edges, position{i, j})
			}
		}
	}

	for i := 0; i < size; i += 2 {
		for j := 0; j < size; j += 2 {
			h := position{i, j}
			if !b.complete(h) {
				continue
			}
			b.hexes = append(b.hexes, h)
			b.cells[i+1][j+1].Symbol = HexUndecided
		}
	}

	b.refresh()
	return b, nil
}

// IsPlayable reports whether (row, col) is an edge position inside the board.
// Hexagon centers and positions outside the diamond are never playable.
func (b *Board) IsPlayable(row, col int) bool {
	if row < 0 || col < 0 || row >= b.size || col >= b.size {
		return false
	}
	if row%2 == 1 && col%2 == 1 {
		return false
	}
	boundary := 2*b.n - 1
	switch {
	case col < boundary:
		return row <= boundary+col
	case col > boundary:
		return row >= col-boundary
	default:
		return true
	}
}

// complete reports whether every side of the hexagon lies inside the board.
func (b *Board) complete(h position) bool {
	for _, s := range sides(h) {
		if !b.IsPlayable(s.row, s.col) {
			return false
		}
	}
	return true
}

func (b *Board) surrounded(h position) bool {
	for _, s := range sides(h) {
		if b.cells[s.row][s.col].Symbol == Free {
			return false
		}
	}
	return true
}

// recomputeCapturePotentials rebuilds every edge's capture potential together
// with availableCaptures and maxCapturePotential from a full scan.
func (b *Board) recomputeCapturePotentials() {
	for _, e := range b.edges {
		b.cells[e.row][e.col].CapturePotential = 0
	}
	b.availableCaptures = 0
	b.maxCapturePotential = 0

	for _, h := range b.hexes {
		free := 0
		var last position
		for _, s := range sides(h) {
			if b.cells[s.row][s.col].Symbol == Free {
				free++
				last = s
			}
		}
		if free != 1 {
			continue
		}
		c := &b.cells[last.row][last.col]
		c.CapturePotential++
		b.availableCaptures++
		if c.CapturePotential > b.maxCapturePotential {
			b.maxCapturePotential = c.CapturePotential
		}
	}
}

func (b *Board) countFreeEdges() {
	b.freeEdges = 0
	for _, e := range b.edges {
		if b.cells[e.row][e.col].Symbol == Free {
			b.freeEdges++
		}
	}
}

func (b *Board) refresh() {
	b.recomputeCapturePotentials()
	b.countFreeEdges()
	if assertInvariants {
		if err := b.Verify(); err != nil {
			panic(err)
		}
	}
}

func (b *Board) credit(p Player, delta int) {
	switch p {
	case Blue:
		b.blueCaptured += delta
	case Red:
		b.redCaptured += delta
	}
}

// IsLegal returns an error wrapping ErrIllegalMove unless m claims a free edge
// for one of the two players.
func (b *Board) IsLegal(m Move) error {
	if m.Player != Blue && m.Player != Red {
		return fmt.Errorf("%w: %v has no player", ErrIllegalMove, m)
	}
	if !b.IsPlayable(m.Row, m.Col) {
		return fmt.Errorf("%w: (%d,%d) is not an edge", ErrIllegalMove, m.Row, m.Col)
	}
	if s := b.cells[m.Row][m.Col].Symbol; s != Free {
		return fmt.Errorf("%w: (%d,%d) is already claimed by %s", ErrIllegalMove, m.Row, m.Col, s.Owner())
	}
	return nil
}

// Apply claims the edge for the mover and credits every hexagon the claim
// completes. It returns 1 when at least one hexagon was captured, which
// entitles the mover to another move, and 0 otherwise.
func (b *Board) Apply(m Move) (int, error) {
	if err := b.IsLegal(m); err != nil {
		return 0, err
	}

	cell := &b.cells[m.Row][m.Col]
	cell.Symbol = claimedBy(m.Player)
	potential := cell.CapturePotential

	captured := 0
	for _, h := range b.hexes {
		if captured >= potential {
			break
		}
		center := &b.cells[h.row+1][h.col+1]
		// A surrounded hexagon that is already owned stays with its owner.
		if center.Symbol != HexUndecided || !b.surrounded(h) {
			continue
		}
		center.Symbol = ownedBy(m.Player)
		b.credit(m.Player, 1)
		captured++
	}

	b.refresh()

	if captured > 0 {
		return 1, nil
	}
	return 0, nil
}

// Undo reverts a move previously passed to Apply. Moves must be undone in the
// reverse order they were applied; undoing a move that is not on the board
// panics.
func (b *Board) Undo(m Move) {
	if (m.Player != Blue && m.Player != Red) || !b.IsPlayable(m.Row, m.Col) ||
		b.cells[m.Row][m.Col].Symbol != claimedBy(m.Player) {
		panic(fmt.Sprintf("undo of %v which was never applied", m))
	}

	cell := &b.cells[m.Row][m.Col]
	cell.Symbol = Free
	b.recomputeCapturePotentials()

	// The restored edge is now the single free side of exactly the hexagons
	// the move had completed.
	remaining := cell.CapturePotential
	for _, h := range b.hexes {
		if remaining <= 0 {
			break
		}
		center := &b.cells[h.row+1][h.col+1]
		if !center.Symbol.IsOwned() || b.surrounded(h) {
			continue
		}
		b.credit(center.Symbol.Owner(), -1)
		center.Symbol = HexUndecided
		remaining--
	}

	b.refresh()
}

// LegalMoves returns every free edge paired with p, shuffled so that equally
// scored moves are not always broken by position.
func (b *Board) LegalMoves(p Player) []Move {
	moves := make([]Move, 0, b.freeEdges)
	for _, e := range b.edges {
		if b.cells[e.row][e.col].Symbol == Free {
			moves = append(moves, Move{Row: e.row, Col: e.col, Player: p})
		}
	}
	b.rng.Shuffle(len(moves), func(i, j int) {
		moves[i], moves[j] = moves[j], moves[i]
	})
	return moves
}

// MaxStreak estimates how many hexagons a player could take in one
// uninterrupted run by repeatedly claiming edges that complete a hexagon.
// The search stops as soon as score reaches depthCap.
func (b *Board) MaxStreak(depthCap, score int) int {
	if b.availableCaptures == 0 {
		return 0
	}

	for _, e := range b.edges {
		potential := b.cells[e.row][e.col].CapturePotential
		if potential == 0 {
			continue
		}
		trial := Move{Row: e.row, Col: e.col, Player: Blue}
		if _, err := b.Apply(trial); err != nil {
			panic(err)
		}
		if score < depthCap {
			score = b.MaxStreak(depthCap, score) + potential
		}
		b.Undo(trial)
		if score >= depthCap {
			return score
		}
	}
	return score
}

// Winner returns Undecided while free edges remain, otherwise the side with
// more captured hexagons or Draw.
func (b *Board) Winner() Outcome {
	if b.freeEdges > 0 {
		return Undecided
	}
	switch {
	case b.blueCaptured > b.redCaptured:
		return BlueWins
	case b.redCaptured > b.blueCaptured:
		return RedWins
	default:
		return Draw
	}
}

// At returns the cell at (row, col); positions outside the grid read as
// NotPlayable.
func (b *Board) At(row, col int) Cell {
	if row < 0 || col < 0 || row >= b.size || col >= b.size {
		return Cell{}
	}
	return b.cells[row][col]
}

func (b *Board) N() int                   { return b.n }
func (b *Board) Size() int                { return b.size }
func (b *Board) FreeEdges() int           { return b.freeEdges }
func (b *Board) Edges() int               { return len(b.edges) }
func (b *Board) Hexagons() int            { return len(b.hexes) }
func (b *Board) BlueCaptured() int        { return b.blueCaptured }
func (b *Board) RedCaptured() int         { return b.redCaptured }
func (b *Board) MaxCapturePotential() int { return b.maxCapturePotential }
func (b *Board) AvailableCaptures() int   { return b.availableCaptures }

// Captured returns the number of hexagons owned by p.
func (b *Board) Captured(p Player) int {
	switch p {
	case Blue:
		return b.blueCaptured
	case Red:
		return b.redCaptured
	}
	return 0
}
