package metrics

import (
	"time"
)

type SearchMetric struct {
	Depth    int
	Duration time.Duration
	Nodes    int
	Leaves   int
	Cutoffs  int
	SafeMove bool
}

type MoveMetric struct {
	Step     int
	Player   string
	Row, Col int
	Bonus    bool // the move captured and the player moved again
	SearchMetric
}

type GameMetric struct {
	Dimension      int
	StartingPlayer string
	Winner         string
	BlueCaptured   int
	RedCaptured    int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(depth int)
	AddNode()
	AddLeaf()
	AddCutoff()
	SetSafeMove()
	Complete() SearchMetric
}

// collector is reset by Start and owned by a single search at a time.
type collector struct {
	depth     int
	startTime time.Time
	nodes     int
	leaves    int
	cutoffs   int
	safeMove  bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(depth int) {
	*m = collector{depth: depth, startTime: time.Now()}
}

func (m *collector) AddNode() {
	m.nodes++
}

func (m *collector) AddLeaf() {
	m.leaves++
}

func (m *collector) AddCutoff() {
	m.cutoffs++
}

func (m *collector) SetSafeMove() {
	m.safeMove = true
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Depth:    m.depth,
		Duration: time.Since(m.startTime),
		Nodes:    m.nodes,
		Leaves:   m.leaves,
		Cutoffs:  m.cutoffs,
		SafeMove: m.safeMove,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(depth int)        {}
func (m *dummyCollector) AddNode()               {}
func (m *dummyCollector) AddLeaf()               {}
func (m *dummyCollector) AddCutoff()             {}
func (m *dummyCollector) SetSafeMove()           {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
