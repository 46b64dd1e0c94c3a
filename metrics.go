package verbalizer

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

type metricsHook struct {
	matches metric.Int64Counter
}

// NewMetricsHook counts verbalized matches on meter as verbalizer.matches,
// attributed by locale, category and outcome.
func NewMetricsHook(meter metric.Meter) (Hook, error) {
	if meter == nil {
		return nil, fmt.Errorf("verbalizer: metrics hook requires a meter")
	}

	matches, err := meter.Int64Counter("verbalizer.matches",
		metric.WithDescription("Matches processed by the normalizer"),
		metric.WithUnit("{match}"),
	)
	if err != nil {
		return nil, fmt.Errorf("verbalizer: create matches counter: %w", err)
	}

	return &metricsHook{matches: matches}, nil
}

func (h *metricsHook) BeforeVerbalize(*HookContext) {}

func (h *metricsHook) AfterVerbalize(ctx *HookContext) {
	if ctx == nil {
		return
	}
	outcome := OutcomeOK
	if ctx.Error != nil {
		outcome = OutcomeFailed
	}
	h.matches.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("locale", ctx.Locale),
		attribute.String("category", ctx.Category.String()),
		attribute.String("outcome", outcome),
	))
}
