package evaluation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"cloud.google.com/go/civil"
	"golang.org/x/sync/errgroup"

	"github.com/KasumiMercury/primind-pantry-expiry/internal/domain"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/observability/metrics"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/observability/tracing"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/service/expiry"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/service/shelflife"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/service/status"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/service/storage"
	"github.com/KasumiMercury/primind-pantry-expiry/internal/service/threshold"
)

const defaultConcurrency = 8

type Service struct {
	items         domain.ItemRepository
	shelfLives    *shelflife.Adapter
	thresholds    *threshold.Resolver
	recorder      domain.StatusRecorder
	expiryMetrics *metrics.ExpiryMetrics
	concurrency   int
	now           func() time.Time
}

type Option func(*Service)

func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func WithConcurrency(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.concurrency = n
		}
	}
}

func WithRecorder(recorder domain.StatusRecorder) Option {
	return func(s *Service) {
		s.recorder = recorder
	}
}

func WithMetrics(m *metrics.ExpiryMetrics) Option {
	return func(s *Service) {
		s.expiryMetrics = m
	}
}

func NewService(
	items domain.ItemRepository,
	shelfLives *shelflife.Adapter,
	thresholds *threshold.Resolver,
	opts ...Option,
) *Service {
	s := &Service{
		items:       items,
		shelfLives:  shelfLives,
		thresholds:  thresholds,
		concurrency: defaultConcurrency,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Evaluate computes the expiry dates and status for one item.
// It fails with ErrMissingBaseDate when the item's storage profile needs a
// date the item does not carry. A missing category or shelf-life window is
// not an error: the evaluation comes back unknown.
func (s *Service) Evaluate(ctx context.Context, in Input) (*Evaluation, error) {
	start := time.Now()
	ctx, span := tracing.StartEvaluationSpan(ctx, in.ItemID, in.AcquisitionType.String())
	defer span.End()

	th := s.thresholds.Resolve(ctx, in.UserID)

	ev, err := s.evaluate(ctx, in, th, s.now())
	if err != nil {
		tracing.RecordEvaluationResult(span, storage.ResolveProfile(in.AcquisitionType).String(), domain.StatusUnknown.String(), err)
		return nil, err
	}
	tracing.RecordEvaluationResult(span, ev.Profile.String(), ev.Status.String(), nil)

	if s.expiryMetrics != nil {
		s.expiryMetrics.RecordEvaluationDuration(ctx, "single", time.Since(start))
	}

	if ev.ItemID != 0 {
		s.recordEvaluations(ctx, []*Evaluation{ev})
	}

	return ev, nil
}

// ExpiryInfo returns only the expiry dates of a stored item.
func (s *Service) ExpiryInfo(ctx context.Context, itemID int64) (domain.ExpiryResult, error) {
	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return domain.ExpiryResult{}, err
	}

	result, _, err := s.expiryResult(ctx, InputFromItem(item, nil))
	if err != nil {
		return domain.ExpiryResult{}, err
	}
	return result, nil
}

func (s *Service) EvaluateItem(ctx context.Context, itemID int64, userID *int64) (*Evaluation, error) {
	item, err := s.items.GetItem(ctx, itemID)
	if err != nil {
		return nil, err
	}

	return s.Evaluate(ctx, InputFromItem(item, userID))
}

// EvaluateActive evaluates every item that has not been consumed, most
// urgent first. Items missing their base date or with unreadable stored
// dates are reported unknown with Error set instead of failing the batch.
func (s *Service) EvaluateActive(ctx context.Context, userID *int64) ([]*Evaluation, error) {
	start := time.Now()
	ctx, span := tracing.StartBatchEvaluationSpan(ctx)
	defer span.End()

	items, err := s.items.ListActiveItems(ctx)
	if err != nil {
		tracing.RecordBatchResult(span, 0, 0, 0, err)
		return nil, fmt.Errorf("list active items: %w", err)
	}

	th := s.thresholds.Resolve(ctx, userID)
	now := s.now()

	results := make([]*Evaluation, len(items))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, item := range items {
		g.Go(func() error {
			in := InputFromItem(item, userID)
			if item.DatesErr != nil {
				ev := s.unknown(in, th, now)
				ev.Error = item.DatesErr.Error()
				results[i] = ev
				return nil
			}

			ev, err := s.evaluate(gctx, in, th, now)
			if err != nil {
				if !errors.Is(err, domain.ErrMissingBaseDate) {
					return err
				}
				ev = s.unknown(in, th, now)
				ev.Error = err.Error()
			}
			results[i] = ev
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		tracing.RecordBatchResult(span, len(items), 0, 1, err)
		return nil, err
	}

	unknownCount := 0
	failedCount := 0
	for _, ev := range results {
		if ev.Status == domain.StatusUnknown {
			unknownCount++
		}
		if ev.Error != "" {
			failedCount++
		}
	}

	SortByUrgency(results)

	tracing.RecordBatchResult(span, len(results), unknownCount, failedCount, nil)

	if s.expiryMetrics != nil {
		s.expiryMetrics.RecordBatchSize(ctx, len(results))
		s.expiryMetrics.RecordEvaluationDuration(ctx, "batch", time.Since(start))
	}

	slog.DebugContext(ctx, "evaluated active items",
		slog.Int("total_count", len(results)),
		slog.Int("unknown_count", unknownCount),
		slog.Int("failed_count", failedCount),
	)

	s.recordEvaluations(ctx, results)

	return results, nil
}

// SortByUrgency orders evaluations by status urgency, then by days remaining
// with unknown days last, then by item id.
func SortByUrgency(evs []*Evaluation) {
	sort.SliceStable(evs, func(i, j int) bool {
		a, b := evs[i], evs[j]
		if ua, ub := a.Status.Urgency(), b.Status.Urgency(); ua != ub {
			return ua < ub
		}
		switch {
		case a.DaysRemaining != nil && b.DaysRemaining != nil:
			if *a.DaysRemaining != *b.DaysRemaining {
				return *a.DaysRemaining < *b.DaysRemaining
			}
		case a.DaysRemaining != nil:
			return true
		case b.DaysRemaining != nil:
			return false
		}
		return a.ItemID < b.ItemID
	})
}

func (s *Service) evaluate(ctx context.Context, in Input, th domain.Thresholds, now time.Time) (*Evaluation, error) {
	result, profile, err := s.expiryResult(ctx, in)
	if err != nil {
		if errors.Is(err, domain.ErrMissingBaseDate) && s.expiryMetrics != nil {
			s.expiryMetrics.RecordMissingBaseDate(ctx, in.AcquisitionType.String())
		}
		return nil, err
	}

	today := civil.DateOf(now)
	ev := &Evaluation{
		ItemID:          in.ItemID,
		AcquisitionType: in.AcquisitionType,
		CategoryID:      in.CategoryID,
		Profile:         profile,
		Result:          result,
		Status:          domain.StatusUnknown,
		Thresholds:      th,
		EvaluatedOn:     today,
		EvaluatedAt:     now,
	}

	if result.Known() {
		st, err := status.Classify(today, result, th)
		if err != nil {
			return nil, fmt.Errorf("classify item %d: %w", in.ItemID, err)
		}
		ev.Status = st

		if d := result.DeadlineDate(); d != nil {
			days := status.DaysUntil(today, *d)
			ev.DaysRemaining = &days
		}
	} else if !profile.IsNone() && s.expiryMetrics != nil {
		s.expiryMetrics.RecordShelfLifeMiss(ctx, profile.String())
	}

	if s.expiryMetrics != nil {
		s.expiryMetrics.RecordEvaluation(ctx, profile.String(), ev.Status.String())
	}

	return ev, nil
}

// expiryResult resolves the storage profile and computes the expiry dates.
func (s *Service) expiryResult(ctx context.Context, in Input) (domain.ExpiryResult, domain.StorageProfile, error) {
	profile := storage.ResolveProfile(in.AcquisitionType)

	if profile.IsNone() {
		if !in.Dates.BestBeforeDate.IsValid() {
			return domain.ExpiryResult{}, profile, nil
		}
		bbd := in.Dates.BestBeforeDate
		return domain.ExpiryResult{BestBeforeDate: &bbd}, profile, nil
	}

	base, err := storage.BaseDate(in.AcquisitionType, in.Dates)
	if err != nil {
		return domain.ExpiryResult{}, profile, fmt.Errorf("item %d (%s): %w", in.ItemID, in.AcquisitionType, err)
	}

	window, err := s.shelfLives.GetShelfLife(ctx, in.CategoryID, profile)
	if err != nil {
		return domain.ExpiryResult{}, profile, err
	}
	if window == nil {
		slog.DebugContext(ctx, "no shelf-life window configured",
			slog.Int64("item_id", in.ItemID),
			slog.String("profile", profile.String()),
		)
		return domain.ExpiryResult{}, profile, nil
	}

	optimal, maximum := expiry.CalculateDates(base, window.MonthsMin, window.MonthsMax)
	return domain.ExpiryResult{
		OptimalDate: &optimal,
		MaxDate:     &maximum,
	}, profile, nil
}

func (s *Service) unknown(in Input, th domain.Thresholds, now time.Time) *Evaluation {
	return &Evaluation{
		ItemID:          in.ItemID,
		AcquisitionType: in.AcquisitionType,
		CategoryID:      in.CategoryID,
		Profile:         storage.ResolveProfile(in.AcquisitionType),
		Status:          domain.StatusUnknown,
		Thresholds:      th,
		EvaluatedOn:     civil.DateOf(now),
		EvaluatedAt:     now,
	}
}

func (s *Service) recordEvaluations(ctx context.Context, evs []*Evaluation) {
	if s.recorder == nil || len(evs) == 0 {
		return
	}

	records := make([]domain.StatusRecord, 0, len(evs))
	for _, ev := range evs {
		records = append(records, ev.record())
	}

	if err := s.recorder.RecordEvaluations(ctx, records); err != nil {
		slog.WarnContext(ctx, "failed to record status evaluations",
			slog.Int("count", len(records)),
			slog.String("error", err.Error()),
		)
	}
}
