package tracing

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const expiryTracerName = "github.com/KasumiMercury/primind-pantry-expiry/internal/service/evaluation"

func ExpiryTracer() trace.Tracer {
	return otel.Tracer(expiryTracerName)
}

func StartEvaluationSpan(ctx context.Context, itemID int64, acquisitionType string) (context.Context, trace.Span) {
	return ExpiryTracer().Start(ctx, "expiry.evaluate",
		trace.WithAttributes(
			attribute.Int64("item.id", itemID),
			attribute.String("item.acquisition_type", acquisitionType),
		),
	)
}

func StartBatchEvaluationSpan(ctx context.Context) (context.Context, trace.Span) {
	return ExpiryTracer().Start(ctx, "expiry.evaluate_active")
}

func StartShelfLifeLookupSpan(ctx context.Context, categoryID int64, profile string) (context.Context, trace.Span) {
	return ExpiryTracer().Start(ctx, "expiry.shelf_life_lookup",
		trace.WithAttributes(
			attribute.Int64("category.id", categoryID),
			attribute.String("storage.profile", profile),
		),
		trace.WithSpanKind(trace.SpanKindClient),
	)
}

func RecordEvaluationResult(span trace.Span, profile, status string, err error) {
	span.SetAttributes(
		attribute.String("evaluation.profile", profile),
		attribute.String("evaluation.status", status),
	)
	recordOutcome(span, err)
}

func RecordBatchResult(span trace.Span, total, unknownCount, failedCount int, err error) {
	span.SetAttributes(
		attribute.Int("batch.total", total),
		attribute.Int("batch.unknown_count", unknownCount),
		attribute.Int("batch.failed_count", failedCount),
	)
	recordOutcome(span, err)
}

func recordOutcome(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
}
