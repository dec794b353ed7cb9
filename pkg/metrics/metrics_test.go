package metrics

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordTurn_IncrementsCountersAndObservesHistograms(t *testing.T) {
	c := New()
	c.RecordTurn(4, 12, 2*time.Millisecond)
	c.RecordTurn(1, 3, time.Millisecond)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	c.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "battlesim_turns_generated_total 2")
	assert.Contains(t, body, "battlesim_instructions_generated_total 15")
}

func TestRecordRepositoryLoad_LabelsByOutcome(t *testing.T) {
	c := New()
	c.RecordRepositoryLoad("success")
	c.RecordRepositoryLoad("retry")
	c.RecordRepositoryLoad("retry")

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body := rec.Body.String()
	assert.Contains(t, body, `battlesim_repository_loads_total{outcome="success"} 1`)
	assert.Contains(t, body, `battlesim_repository_loads_total{outcome="retry"} 2`)
}

func TestNilCollector_MethodsAreNoOps(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.RecordTurn(1, 1, time.Millisecond)
		c.RecordRepositoryLoad("success")
		_ = c.Handler()
	})
}
