// Package metrics wraps github.com/prometheus/client_golang with the small
// set of counters/histograms the turn engine exercises: turns generated,
// instructions generated, branches folded per turn, turn duration, and
// repository load outcomes.
//
//	c := metrics.New()
//	http.Handle("/metrics", c.Handler())
//	...
//	c.RecordTurn(len(branches), instructionCount, elapsed)
//
// A nil *Collector is valid and every method becomes a no-op, so callers
// that don't care about metrics can simply not construct one.
package metrics
