package searcher

import (
	"sync/atomic"
	"time"
)

// MoveMetrics summarizes the work behind a single ChooseMove call.
type MoveMetrics struct {
	StartTime time.Time
	Duration  time.Duration
	Nodes     int64 // interior positions expanded
	Leaves    int64 // positions statically evaluated
	Cutoffs   int64 // alpha-beta prunes
}

type MetricsCollector interface {
	Start()
	AddNode()
	AddLeaf()
	AddCutoff()
	Complete() MoveMetrics
}

type metricsCollector struct {
	startTime time.Time
	nodes     atomic.Int64
	leaves    atomic.Int64
	cutoffs   atomic.Int64
}

func NewMetricsCollector() MetricsCollector {
	return &metricsCollector{}
}

func (m *metricsCollector) Start() {
	m.startTime = time.Now()
	m.nodes.Store(0)
	m.leaves.Store(0)
	m.cutoffs.Store(0)
}

func (m *metricsCollector) AddNode() {
	m.nodes.Add(1)
}

func (m *metricsCollector) AddLeaf() {
	m.leaves.Add(1)
}

func (m *metricsCollector) AddCutoff() {
	m.cutoffs.Add(1)
}

func (m *metricsCollector) Complete() MoveMetrics {
	return MoveMetrics{
		StartTime: m.startTime,
		Duration:  time.Since(m.startTime),
		Nodes:     m.nodes.Load(),
		Leaves:    m.leaves.Load(),
		Cutoffs:   m.cutoffs.Load(),
	}
}

type noMetricsCollector struct{}

func NewNoMetricsCollector() MetricsCollector {
	return &noMetricsCollector{}
}

func (m *noMetricsCollector) Start()                {}
func (m *noMetricsCollector) AddNode()              {}
func (m *noMetricsCollector) AddLeaf()              {}
func (m *noMetricsCollector) AddCutoff()            {}
func (m *noMetricsCollector) Complete() MoveMetrics { return MoveMetrics{} }
