package verbalizer

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestMetricsHookCountsOutcomes(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	hook, err := NewMetricsHook(provider.Meter("verbalizer-test"))
	require.NoError(t, err)

	n, _ := newTestNormalizer(t, WithNormalizerHooks(hook))
	n.Normalize("ABC 5, 1 na 99")

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(context.Background(), &rm))

	counts := map[string]int64{}
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name != "verbalizer.matches" {
				continue
			}
			sum, ok := m.Data.(metricdata.Sum[int64])
			require.True(t, ok, "verbalizer.matches data = %T", m.Data)
			for _, dp := range sum.DataPoints {
				category, _ := dp.Attributes.Value("category")
				outcome, _ := dp.Attributes.Value("outcome")
				counts[category.AsString()+"/"+outcome.AsString()] += dp.Value
			}
		}
	}

	assert.Equal(t, map[string]int64{
		"currency/" + OutcomeOK:   1,
		"number/" + OutcomeOK:     1,
		"number/" + OutcomeFailed: 1,
	}, counts)
}

func TestMetricsHookRequiresMeter(t *testing.T) {
	_, err := NewMetricsHook(nil)
	assert.Error(t, err)
}
