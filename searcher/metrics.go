package searcher

import "time"

// MoveMetrics reports how much work one decision performed.
type MoveMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Playouts  int64
	TreeNodes int
	MaxDepth  int
}

// MetricsCollector gathers per-decision search metrics. Engines default
// to the no-op collector; WithMetrics installs the real one.
type MetricsCollector interface {
	Start()
	AddPlayout()
	SetTreeStats(nodes, depth int)
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime time.Time
	playouts  int64
	treeNodes int
	maxDepth  int
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

// Start resets the collector for the next decision.
func (m *metricsCollector) Start() {
	*m = metricsCollector{startTime: time.Now()}
}

func (m *metricsCollector) AddPlayout() {
	m.playouts++
}

func (m *metricsCollector) SetTreeStats(nodes, depth int) {
	m.treeNodes = nodes
	m.maxDepth = depth
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Playouts:  m.playouts,
		TreeNodes: m.treeNodes,
		MaxDepth:  m.maxDepth,
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                {}
func (m *noMetricsCollector) AddPlayout()           {}
func (m *noMetricsCollector) SetTreeStats(n, d int) {}
func (m *noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
