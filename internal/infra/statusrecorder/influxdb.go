package statusrecorder

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	influxdb2 "github.com/influxdata/influxdb-client-go/v2"
	"github.com/influxdata/influxdb-client-go/v2/api"
	"github.com/influxdata/influxdb-client-go/v2/api/write"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

const measurement = "expiry_status"

type influxDBRecorder struct {
	client   influxdb2.Client
	writeAPI api.WriteAPIBlocking
	bucket   string
}

// NewRecorder returns a no-op recorder when recording is disabled or InfluxDB
// is not configured.
func NewRecorder(ctx context.Context, cfg *Config) (domain.StatusRecorder, error) {
	if cfg.Disabled {
		slog.InfoContext(ctx, "status result recording disabled")
		return NewNoopRecorder(), nil
	}

	if cfg.InfluxDBToken == "" || cfg.InfluxDBOrg == "" {
		slog.WarnContext(ctx, "InfluxDB token or org not configured, status result recording disabled",
			slog.String("url", cfg.InfluxDBURL),
		)
		return NewNoopRecorder(), nil
	}

	client := influxdb2.NewClient(cfg.InfluxDBURL, cfg.InfluxDBToken)
	writeAPI := client.WriteAPIBlocking(cfg.InfluxDBOrg, cfg.InfluxDBBucket)

	slog.InfoContext(ctx, "status result recorder initialized",
		slog.String("type", "influxdb"),
		slog.String("url", cfg.InfluxDBURL),
		slog.String("bucket", cfg.InfluxDBBucket),
	)

	return &influxDBRecorder{
		client:   client,
		writeAPI: writeAPI,
		bucket:   cfg.InfluxDBBucket,
	}, nil
}

func (r *influxDBRecorder) RecordEvaluations(ctx context.Context, records []domain.StatusRecord) error {
	if len(records) == 0 {
		return nil
	}

	points := make([]*write.Point, 0, len(records))
	for _, record := range records {
		points = append(points, statusPoint(record))
	}

	if err := r.writeAPI.WritePoint(ctx, points...); err != nil {
		return fmt.Errorf("write %d status points to %s: %w", len(points), r.bucket, err)
	}

	return nil
}

func (r *influxDBRecorder) Close() error {
	if r.client != nil {
		r.client.Close()
	}
	return nil
}

func statusPoint(record domain.StatusRecord) *write.Point {
	category := "none"
	if record.CategoryID != nil {
		category = strconv.FormatInt(*record.CategoryID, 10)
	}

	fields := map[string]any{
		"item_id":       record.ItemID,
		"critical_days": record.Thresholds.CriticalDays,
		"warning_days":  record.Thresholds.WarningDays,
		"urgency":       record.Status.Urgency(),
	}
	if record.DaysRemaining != nil {
		fields["days_remaining"] = *record.DaysRemaining
	}

	return influxdb2.NewPoint(
		measurement,
		map[string]string{
			"status":   record.Status.String(),
			"profile":  record.Profile.String(),
			"category": category,
		},
		fields,
		record.EvaluatedAt,
	)
}
