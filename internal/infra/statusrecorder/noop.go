package statusrecorder

import (
	"context"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
)

type noopRecorder struct{}

func NewNoopRecorder() domain.StatusRecorder {
	return &noopRecorder{}
}

func (n *noopRecorder) RecordEvaluations(_ context.Context, _ []domain.StatusRecord) error {
	return nil
}

func (n *noopRecorder) Close() error {
	return nil
}
