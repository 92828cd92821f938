package shelflife

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/attribute"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/observability/tracing"
)

// Adapter is the read side used by the evaluation engine.
type Adapter struct {
	repo domain.ShelfLifeRepository
}

func NewAdapter(repo domain.ShelfLifeRepository) *Adapter {
	return &Adapter{
		repo: repo,
	}
}

// GetShelfLife returns the configured window for the category and profile.
// A nil window with a nil error means the expiry cannot be computed: the
// item has no category, no profile, or the pair is not configured.
func (a *Adapter) GetShelfLife(ctx context.Context, categoryID *int64, profile domain.StorageProfile) (*domain.ShelfLifeWindow, error) {
	if categoryID == nil || profile.IsNone() {
		return nil, nil
	}

	ctx, span := tracing.StartShelfLifeLookupSpan(ctx, *categoryID, profile.String())
	defer span.End()

	window, err := a.repo.GetShelfLife(ctx, *categoryID, profile)
	if err != nil {
		if errors.Is(err, domain.ErrShelfLifeNotFound) {
			span.SetAttributes(attribute.Bool("shelf_life.found", false))
			return nil, nil
		}
		span.RecordError(err)
		return nil, fmt.Errorf("get shelf life for category %d (%s): %w", *categoryID, profile, err)
	}

	span.SetAttributes(attribute.Bool("shelf_life.found", true))
	return window, nil
}
