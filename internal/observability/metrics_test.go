package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsSnapshot(t *testing.T) {
	m := NewMetrics()
	m.RecordRequest("/login", "POST", 200, 10*time.Millisecond)
	m.RecordRequest("/login", "POST", 200, 30*time.Millisecond)
	m.RecordError("/login", "POST", "INVALID_CREDENTIALS")

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.Requests["/login|POST|200"])
	assert.Equal(t, int64(20), snap.AvgLatencyMsec["/login|POST|200"])
	assert.Equal(t, int64(1), snap.Errors["/login|POST|INVALID_CREDENTIALS"])
}

func TestMetricsNilSafe(t *testing.T) {
	var m *Metrics
	m.RecordRequest("/", "GET", 200, time.Millisecond)
	m.RecordError("/", "GET", "X")
	assert.Empty(t, m.Snapshot().Requests)
}
