package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goto/approvalflow/pkg/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	m := metrics.New()

	m.ModeChanged("degraded")
	m.ModeChanged("live")
	m.ModeChanged("degraded")
	m.ReconnectScheduled()
	m.MessageReceived("new_request")
	m.MessageDropped()
	m.RemoteCall("list_requests", 10*time.Millisecond, true)
	m.RemoteCall("list_requests", 10*time.Millisecond, false)
	m.ConnectionState("connected", "disconnected", "connecting", "connected", "reconnecting")
	m.PollRun("live")

	count, err := testutil.GatherAndCount(m.Registry(),
		"approvalflow_repository_mode_transitions_total",
		"approvalflow_realtime_reconnect_attempts_total",
		"approvalflow_remote_transport_failures_total",
	)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
	body, _ := io.ReadAll(rec.Body)
	assert.Contains(t, string(body), `approvalflow_repository_mode_transitions_total{mode="degraded"} 2`)
	assert.Contains(t, string(body), "approvalflow_repository_degraded 1")
	assert.Contains(t, string(body), `approvalflow_realtime_connection_state{state="connected"} 1`)
	assert.Contains(t, string(body), "approvalflow_realtime_dropped_messages_total 1")
}

func TestMetrics_Nil(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ModeChanged("degraded")
		m.ReconnectScheduled()
		m.MessageReceived("ping")
		m.MessageDropped()
		m.RemoteCall("health", time.Second, true)
		m.PollRun("degraded")
		m.ConnectionState("connected")
	})
}
