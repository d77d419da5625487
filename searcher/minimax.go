package searcher

import (
	"fmt"
	"hexifence/experiments/metrics"
	"hexifence/game"
	"math"

	"github.com/rs/zerolog/log"
)

type Option func(m *Minimax)

type Result struct {
	Move    game.Move
	Score   int
	Depth   int
	Metrics metrics.SearchMetric
}

// Minimax is a depth-limited alpha-beta search working in place on the board
// it is given. It is not safe for concurrent use.
type Minimax struct {
	depth        int
	deeperDepth  int
	sizeDivision int
	weights      Weights
	pruning      bool
	safeMoves    bool
	metrics      metrics.Collector
}

func WithDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.depth = depth
		}
	}
}

// WithDeeperDepth sets the depth used once few edges are left.
func WithDeeperDepth(depth int) Option {
	return func(m *Minimax) {
		if depth > 0 {
			m.deeperDepth = depth
		}
	}
}

// WithSizeDivision switches to the deeper depth when fewer than size*size/k
// edges are free.
func WithSizeDivision(k int) Option {
	return func(m *Minimax) {
		if k > 0 {
			m.sizeDivision = k
		}
	}
}

func WithWeights(w Weights) Option {
	return func(m *Minimax) {
		m.weights = w
	}
}

func WithPruning(enabled bool) Option {
	return func(m *Minimax) {
		m.pruning = enabled
	}
}

func WithSafeMoves(enabled bool) Option {
	return func(m *Minimax) {
		m.safeMoves = enabled
	}
}

func WithMetrics() Option {
	return func(m *Minimax) {
		m.metrics = metrics.NewCollector()
	}
}

func NewMinimax(options ...Option) *Minimax {
	m := &Minimax{ // Default values
		depth:        3,
		deeperDepth:  6,
		sizeDivision: 11,
		weights:      DefaultWeights(),
		pruning:      true,
		safeMoves:    true,
		metrics:      metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(m)
	}
	if m.weights.StreakCap < 0 {
		panic("Streak cap must not be negative")
	}
	return m
}

// DepthFor returns the search depth used on b.
func (m *Minimax) DepthFor(b *game.Board) int {
	if b.FreeEdges() < b.Size()*b.Size()/m.sizeDivision {
		return m.deeperDepth
	}
	return m.depth
}

// Search picks a move for self. The board is modified during the search and
// restored before returning.
func (m *Minimax) Search(b *game.Board, self game.Player) (Result, error) {
	if self != game.Blue && self != game.Red {
		return Result{}, fmt.Errorf("%w: got %v", ErrNoPlayer, self)
	}
	if b.FreeEdges() == 0 {
		return Result{}, ErrNoMoves
	}

	depth := m.DepthFor(b)
	m.metrics.Start(depth)
	s := &search{
		board:     b,
		self:      self,
		weights:   m.weights,
		pruning:   m.pruning,
		safeMoves: m.safeMoves,
		metrics:   m.metrics,
	}
	score, move := s.value(depth, self, math.MinInt/2, math.MaxInt/2, true)
	metric := m.metrics.Complete()

	log.Debug().
		Str("player", self.String()).
		Stringer("move", move).
		Int("score", score).
		Int("depth", depth).
		Int("nodes", metric.Nodes).
		Int("cutoffs", metric.Cutoffs).
		Bool("safe", metric.SafeMove).
		Msg("search complete")

	return Result{Move: move, Score: score, Depth: depth, Metrics: metric}, nil
}

type search struct {
	board     *game.Board
	self      game.Player
	weights   Weights
	pruning   bool
	safeMoves bool
	metrics   metrics.Collector
}

// value returns the fail-hard alpha-beta score of the position for s.self
// with turn to move, along with the move that set it.
func (s *search) value(depth int, turn game.Player, alpha, beta int, root bool) (int, game.Move) {
	s.metrics.AddNode()
	if s.board.FreeEdges() == 0 {
		return terminal(s.board, s.self), game.Move{}
	}
	if depth == 0 {
		s.metrics.AddLeaf()
		return s.weights.evaluate(s.board, s.self, turn), game.Move{}
	}

	maximizing := turn == s.self
	maxBefore := s.board.MaxCapturePotential()
	var best game.Move
	for _, move := range s.board.LegalMoves(turn) {
		bonus, err := s.board.Apply(move)
		if err != nil {
			panic(err)
		}

		// Nothing capturable before or after: take it without looking further.
		if root && maximizing && s.safeMoves && maxBefore+s.board.MaxCapturePotential() == 0 {
			s.board.Undo(move)
			s.metrics.SetSafeMove()
			return SAFE_MOVE, move
		}

		next := turn
		if bonus == 0 {
			next = turn.Opponent()
		}
		score, _ := s.value(depth-1, next, alpha, beta, false)
		s.board.Undo(move)

		if maximizing {
			if score > alpha {
				alpha = score
				best = move
			}
		} else if score < beta {
			beta = score
			best = move
		}
		if s.pruning && alpha >= beta {
			s.metrics.AddCutoff()
			break
		}
	}

	if maximizing {
		return alpha, best
	}
	return beta, best
}
