package app

import (
	"sync/atomic"
	"time"

	"shape-detector/internal/domain/entity"
)

// Metrics считает прогоны детекции и найденные фигуры.
type Metrics struct {
	totalRuns    atomic.Int64
	totalErrors  atomic.Int64
	totalLatency atomic.Int64
	lastRunTime  atomic.Int64
	shapes       map[entity.ShapeType]*atomic.Int64
}

// MetricsSnapshot содержит срез счётчиков для отдачи наружу.
type MetricsSnapshot struct {
	TotalRuns    int64                      `json:"total_runs"`
	TotalErrors  int64                      `json:"total_errors"`
	AvgLatencyMs float64                    `json:"avg_latency_ms"`
	LastRunUnix  int64                      `json:"last_run_unix"`
	Shapes       map[entity.ShapeType]int64 `json:"shapes"`
}

func NewMetrics() *Metrics {
	m := &Metrics{shapes: make(map[entity.ShapeType]*atomic.Int64, len(entity.ShapeTypes))}
	for _, t := range entity.ShapeTypes {
		m.shapes[t] = new(atomic.Int64)
	}
	return m
}

// RecordRun учитывает успешный прогон.
func (m *Metrics) RecordRun(duration time.Duration, shapes []entity.DetectedShape) {
	m.totalRuns.Add(1)
	m.totalLatency.Add(duration.Microseconds())
	m.lastRunTime.Store(time.Now().Unix())
	for _, s := range shapes {
		if counter, ok := m.shapes[s.Type]; ok {
			counter.Add(1)
		}
	}
}

func (m *Metrics) IncrementFailures() {
	m.totalErrors.Add(1)
}

func (m *Metrics) Snapshot() MetricsSnapshot {
	runs := m.totalRuns.Load()
	snap := MetricsSnapshot{
		TotalRuns:   runs,
		TotalErrors: m.totalErrors.Load(),
		LastRunUnix: m.lastRunTime.Load(),
		Shapes:      make(map[entity.ShapeType]int64, len(m.shapes)),
	}
	if runs > 0 {
		snap.AvgLatencyMs = float64(m.totalLatency.Load()) / float64(runs) / 1000
	}
	for t, counter := range m.shapes {
		snap.Shapes[t] = counter.Load()
	}
	return snap
}
