// Package metrics exposes prometheus collectors for the turn engine. It is
// ambient instrumentation, not a correctness requirement: every method is
// nil-receiver safe, so a caller that never wires a registry can pass a nil
// *Collector around and get a no-op.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the prometheus metrics for the turn engine.
type Collector struct {
	turnsGenerated        prometheus.Counter
	instructionsGenerated prometheus.Counter
	branchesPerTurn       prometheus.Histogram
	turnDuration          prometheus.Histogram
	repositoryLoads       *prometheus.CounterVec

	registry *prometheus.Registry
}

// New creates and registers a fresh Collector against its own registry.
func New() *Collector {
	registry := prometheus.NewRegistry()

	c := &Collector{
		turnsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "battlesim_turns_generated_total",
			Help: "Total number of turns GenerateInstructions has resolved",
		}),
		instructionsGenerated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "battlesim_instructions_generated_total",
			Help: "Total number of atomic instructions produced across all branches",
		}),
		branchesPerTurn: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "battlesim_branches_per_turn",
			Help:    "Number of weighted outcome branches a single turn folds to",
			Buckets: []float64{1, 2, 4, 8, 16, 32, 64},
		}),
		turnDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "battlesim_turn_duration_seconds",
			Help:    "Wall-clock time spent inside GenerateInstructions",
			Buckets: prometheus.DefBuckets,
		}),
		repositoryLoads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "battlesim_repository_loads_total",
			Help: "Total number of data repository load attempts by outcome",
		}, []string{"outcome"}), // "success", "retry", "failure"

		registry: registry,
	}

	c.registry.MustRegister(
		c.turnsGenerated,
		c.instructionsGenerated,
		c.branchesPerTurn,
		c.turnDuration,
		c.repositoryLoads,
	)

	return c
}

// Handler returns an HTTP handler exposing the collector's registry in the
// prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	if c == nil {
		return http.NotFoundHandler()
	}
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{Registry: c.registry})
}

// RecordTurn records one GenerateInstructions call: how many branches it
// folded to, the total instruction count summed across those branches, and
// how long it took.
func (c *Collector) RecordTurn(branchCount, instructionCount int, duration time.Duration) {
	if c == nil {
		return
	}
	c.turnsGenerated.Inc()
	c.instructionsGenerated.Add(float64(instructionCount))
	c.branchesPerTurn.Observe(float64(branchCount))
	c.turnDuration.Observe(duration.Seconds())
}

// RecordRepositoryLoad records one repository load attempt's outcome
// ("success", "retry", or "failure").
func (c *Collector) RecordRepositoryLoad(outcome string) {
	if c == nil {
		return
	}
	c.repositoryLoads.WithLabelValues(outcome).Inc()
}
