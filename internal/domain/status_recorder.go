package domain

import (
	"context"
	"time"
)

type StatusRecord struct {
	ItemID        int64
	CategoryID    *int64
	Profile       StorageProfile
	Status        Status
	DaysRemaining *int
	Thresholds    Thresholds
	EvaluatedAt   time.Time
}

//go:generate mockgen -source=status_recorder.go -destination=status_recorder_mock.go -package=domain

type StatusRecorder interface {
	RecordEvaluations(ctx context.Context, records []StatusRecord) error
	Close() error
}
