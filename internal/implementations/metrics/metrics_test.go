package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestRecordOutcome(t *testing.T) {
	registry := prometheus.NewRegistry()
	recorder := NewPrometheusRecorder(registry)

	recorder.RecordOutcome("reset_password", "ok", time.Millisecond)
	recorder.RecordOutcome("reset_password", "token_not_found", time.Millisecond)
	recorder.RecordOutcome("reset_password", "token_not_found", time.Millisecond)

	require.Equal(t, 1.0, testutil.ToFloat64(recorder.outcomes.WithLabelValues("reset_password", "ok")))
	require.Equal(t, 2.0, testutil.ToFloat64(recorder.outcomes.WithLabelValues("reset_password", "token_not_found")))
	require.Equal(t, 1, testutil.CollectAndCount(recorder.duration))
}

func TestDoubleRegistrationPanics(t *testing.T) {
	registry := prometheus.NewRegistry()
	NewPrometheusRecorder(registry)

	require.Panics(t, func() { NewPrometheusRecorder(registry) })
}
