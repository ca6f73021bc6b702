package observability

import (
	"context"
	"strconv"

	"github.com/jml312/domino-train/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the solver collectors.
type Metrics struct {
	Solves       *prometheus.CounterVec
	Nodes        *prometheus.HistogramVec
	Duration     *prometheus.HistogramVec
	Improvements *prometheus.CounterVec
	Truncations  prometheus.Counter
}

// NewMetrics creates the collectors and registers them on reg.
// A nil reg uses prometheus.DefaultRegisterer.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	m := &Metrics{
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dominotrain_solves_total",
				Help: "Total number of solved puzzles",
			},
			[]string{"objective", "cached"},
		),
		Nodes: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dominotrain_search_nodes",
				Help:    "Search nodes visited per solve",
				Buckets: prometheus.ExponentialBuckets(1, 4, 12),
			},
			[]string{"objective"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dominotrain_solve_duration_seconds",
				Help:    "Duration of searches",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"objective"},
		),
		Improvements: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dominotrain_improvements_total",
				Help: "Strict improvements of the best train during searches",
			},
			[]string{"objective"},
		),
		Truncations: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dominotrain_truncated_total",
				Help: "Searches stopped by a node budget or deadline",
			},
		),
	}

	for _, c := range []prometheus.Collector{m.Solves, m.Nodes, m.Duration, m.Improvements, m.Truncations} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return m, nil
}

// Hooks returns solver hooks that record into the collectors.
// Cached results count as solves but not as searches.
func (m *Metrics) Hooks() domain.SolveHooks {
	return domain.SolveHooks{
		OnImprove: func(_ context.Context, e *domain.ImproveEvent) {
			m.Improvements.WithLabelValues(string(e.Objective)).Inc()
		},
		OnSolved: func(_ context.Context, e *domain.SolveEvent) {
			objective := string(e.Objective)
			m.Solves.WithLabelValues(objective, strconv.FormatBool(e.Cached)).Inc()
			if e.Cached {
				return
			}
			m.Nodes.WithLabelValues(objective).Observe(float64(e.Nodes))
			m.Duration.WithLabelValues(objective).Observe(e.Elapsed.Seconds())
			if e.Truncated {
				m.Truncations.Inc()
			}
		},
	}
}
