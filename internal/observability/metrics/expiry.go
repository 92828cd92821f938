package metrics

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	expiryMeterName = "expiry.service"
)

type ExpiryMetrics struct {
	evaluations        metric.Int64Counter
	shelfLifeMisses    metric.Int64Counter
	missingBaseDates   metric.Int64Counter
	evaluationDuration metric.Float64Histogram
	batchSize          metric.Int64Histogram
}

func NewExpiryMetrics() (*ExpiryMetrics, error) {
	meter := otel.Meter(expiryMeterName)

	evaluations, err := meter.Int64Counter(
		"expiry_evaluations_total",
		metric.WithDescription("Total number of expiry evaluations by resulting status"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return nil, err
	}

	shelfLifeMisses, err := meter.Int64Counter(
		"expiry_shelf_life_misses_total",
		metric.WithDescription("Evaluations without a configured shelf-life window"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return nil, err
	}

	missingBaseDates, err := meter.Int64Counter(
		"expiry_missing_base_date_total",
		metric.WithDescription("Evaluations rejected for a missing base date"),
		metric.WithUnit("{evaluation}"),
	)
	if err != nil {
		return nil, err
	}

	evaluationDuration, err := meter.Float64Histogram(
		"expiry_evaluation_duration_seconds",
		metric.WithDescription("Time spent evaluating items"),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(
			0.0005, 0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5,
		),
	)
	if err != nil {
		return nil, err
	}

	batchSize, err := meter.Int64Histogram(
		"expiry_batch_size",
		metric.WithDescription("Number of items per batch evaluation"),
		metric.WithUnit("{item}"),
		metric.WithExplicitBucketBoundaries(0, 1, 5, 10, 25, 50, 100, 250, 500, 1000),
	)
	if err != nil {
		return nil, err
	}

	return &ExpiryMetrics{
		evaluations:        evaluations,
		shelfLifeMisses:    shelfLifeMisses,
		missingBaseDates:   missingBaseDates,
		evaluationDuration: evaluationDuration,
		batchSize:          batchSize,
	}, nil
}

func (m *ExpiryMetrics) RecordEvaluation(ctx context.Context, profile, status string) {
	m.evaluations.Add(ctx, 1, metric.WithAttributes(
		attribute.String("profile", profile),
		attribute.String("status", status),
	))
}

func (m *ExpiryMetrics) RecordShelfLifeMiss(ctx context.Context, profile string) {
	m.shelfLifeMisses.Add(ctx, 1, metric.WithAttributes(
		attribute.String("profile", profile),
	))
}

func (m *ExpiryMetrics) RecordMissingBaseDate(ctx context.Context, acquisitionType string) {
	m.missingBaseDates.Add(ctx, 1, metric.WithAttributes(
		attribute.String("acquisition_type", acquisitionType),
	))
}

func (m *ExpiryMetrics) RecordEvaluationDuration(ctx context.Context, operation string, duration time.Duration) {
	m.evaluationDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("operation", operation),
	))
}

func (m *ExpiryMetrics) RecordBatchSize(ctx context.Context, size int) {
	m.batchSize.Record(ctx, int64(size))
}
