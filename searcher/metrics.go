package searcher

import "time"

// SearchMetrics are the diagnostics of one root search. They are
// observational only and never feed back into move selection.
type SearchMetrics struct {
	Ply          int
	Nodes        int64
	TerminalHits int64
	StartTime    time.Time
	Duration     time.Duration
}

// Collector accumulates diagnostics over one root search. The search is
// single-threaded depth-first recursion, so implementations need no
// synchronization.
type Collector interface {
	Start(ply int)
	AddNode()
	AddTerminal()
	Complete() SearchMetrics
}

type collector struct {
	ply       int
	nodes     int64
	terminals int64
	startTime time.Time
}

func NewCollector() Collector {
	return &collector{}
}

// Start resets every counter for a new root search.
func (c *collector) Start(ply int) {
	c.ply = ply
	c.nodes = 0
	c.terminals = 0
	c.startTime = time.Now()
}

func (c *collector) AddNode() {
	c.nodes++
}

func (c *collector) AddTerminal() {
	c.terminals++
}

func (c *collector) Complete() SearchMetrics {
	return SearchMetrics{
		Ply:          c.ply,
		Nodes:        c.nodes,
		TerminalHits: c.terminals,
		StartTime:    c.startTime,
		Duration:     time.Since(c.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (c *dummyCollector) Start(ply int)           {}
func (c *dummyCollector) AddNode()                {}
func (c *dummyCollector) AddTerminal()            {}
func (c *dummyCollector) Complete() SearchMetrics { return SearchMetrics{} }
