package otel

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"

	"github.com/emiliopalmerini/tourneytally/internal/domain"
	"github.com/emiliopalmerini/tourneytally/internal/infrastructure/config"
	"github.com/emiliopalmerini/tourneytally/internal/ports"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) (metricdata.ResourceMetrics, map[string]metricdata.Sum[int64]) {
	t.Helper()
	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	sums := make(map[string]metricdata.Sum[int64])
	for _, sm := range rm.ScopeMetrics {
		for _, m := range sm.Metrics {
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "metric %s is not an int64 sum", m.Name)
			sums[m.Name] = sum
		}
	}
	return rm, sums
}

func TestExporter_ExportTally(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	exp, err := newExporter(context.Background(), "run-1", reader)
	require.NoError(t, err)

	err = exp.ExportTally(context.Background(), &ports.TallyMetrics{
		Source:   "sessions.csv",
		Sessions: 3,
		Wins: []domain.WinCount{
			{Player: "x", Wins: 2},
			{Player: "y", Wins: 1},
		},
	})
	require.NoError(t, err)

	rm, sums := collect(t, reader)

	runID, ok := rm.Resource.Set().Value(RunIDKey)
	require.True(t, ok)
	require.Equal(t, "run-1", runID.AsString())

	sessions := sums["tourneytally_sessions_total"]
	require.Len(t, sessions.DataPoints, 1)
	require.Equal(t, int64(3), sessions.DataPoints[0].Value)
	source, ok := sessions.DataPoints[0].Attributes.Value(SourceKey)
	require.True(t, ok)
	require.Equal(t, "sessions.csv", source.AsString())

	wins := sums["tourneytally_wins_total"]
	require.Len(t, wins.DataPoints, 2)
	byPlayer := make(map[string]int64)
	for _, dp := range wins.DataPoints {
		player, ok := dp.Attributes.Value(PlayerKey)
		require.True(t, ok)
		byPlayer[player.AsString()] = dp.Value
	}
	require.Equal(t, map[string]int64{"x": 2, "y": 1}, byPlayer)

	require.NoError(t, exp.Close(context.Background()))
}

func TestNewExporter_Disabled(t *testing.T) {
	_, err := NewExporter(context.Background(), config.OTel{Enabled: false, Endpoint: "localhost:4317"}, "run-1")
	require.Error(t, err)

	_, err = NewExporter(context.Background(), config.OTel{Enabled: true}, "run-1")
	require.Error(t, err)
}

func TestNoOpExporter(t *testing.T) {
	var exp NoOpExporter
	require.NoError(t, exp.ExportTally(context.Background(), &ports.TallyMetrics{Sessions: 1}))
	require.NoError(t, exp.Close(context.Background()))
}
