package observability

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitTracing_Disabled(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{ServiceName: "mentorly-test"})
	require.NoError(t, err)
	assert.NoError(t, shutdown(context.Background()))
}

func TestInitTracing_StdoutExporter(t *testing.T) {
	shutdown, err := InitTracing(TracingConfig{
		ServiceName:  "mentorly-test",
		Enabled:      true,
		Exporter:     "stdout",
		SamplerRatio: 0.5,
	})
	require.NoError(t, err)

	ctx, span := StartSpan(context.Background(), "unit")
	assert.True(t, span.SpanContext().IsValid())
	EndSpan(span, errors.New("boom"))
	_ = ctx

	assert.NoError(t, shutdown(context.Background()))
}

func TestTrackQuery_ObservesLatency(t *testing.T) {
	TrackQuery("test", "find_by_id")()
	assert.GreaterOrEqual(t, testutil.CollectAndCount(StoreQueryLatency), 1)
}
