package observability

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jml312/domino-train/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	m, err := NewMetrics(reg)
	require.NoError(t, err)

	hooks := m.Hooks()
	ctx := context.Background()

	hooks.OnImprove(ctx, &domain.ImproveEvent{Objective: domain.ObjectiveScore, Value: 8})
	hooks.OnImprove(ctx, &domain.ImproveEvent{Objective: domain.ObjectiveScore, Value: 18})
	hooks.OnSolved(ctx, &domain.SolveEvent{Objective: domain.ObjectiveScore, Nodes: 40, Elapsed: time.Millisecond, Truncated: true})
	hooks.OnSolved(ctx, &domain.SolveEvent{Objective: domain.ObjectiveScore, Cached: true})

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Improvements.WithLabelValues("score")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solves.WithLabelValues("score", "false")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Solves.WithLabelValues("score", "true")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.Truncations))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Nodes))
}

func TestNewMetrics_DuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewMetrics(reg)
	require.NoError(t, err)

	_, err = NewMetrics(reg)
	assert.Error(t, err)
}

func TestLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	hooks := LogHooks(logger).Merge(domain.SolveHooks{})
	hooks.OnImprove(context.Background(), &domain.ImproveEvent{Value: 5})
	hooks.OnSolved(context.Background(), &domain.SolveEvent{Key: "abc", Value: 31})

	out := buf.String()
	assert.Contains(t, out, "msg=improved")
	assert.Contains(t, out, "msg=solved")
	assert.Contains(t, out, "key=abc")
}
