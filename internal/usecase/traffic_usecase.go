package usecase

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/seo-microservice/internal/domain"
	"github.com/seo-microservice/internal/domain/repository"
)

// TrafficUseCase buckets raw pageview events into the rolling windows of
// every tracked canonical URL. Events are fetched in bounded batches with a
// small concurrent fan-out; a fetch failure is fatal only to this step.
type TrafficUseCase struct {
	pageviewRepo repository.PageviewRepository
	logger       *zap.Logger
	lookback     time.Duration
	batchSize    int
	fanout       int
}

func NewTrafficUseCase(
	pageviewRepo repository.PageviewRepository,
	logger *zap.Logger,
	lookback time.Duration,
	batchSize int,
	fanout int,
) *TrafficUseCase {
	if batchSize <= 0 {
		batchSize = 5000
	}
	if fanout <= 0 {
		fanout = 1
	}
	return &TrafficUseCase{
		pageviewRepo: pageviewRepo,
		logger:       logger,
		lookback:     lookback,
		batchSize:    batchSize,
		fanout:       fanout,
	}
}

// Annotate fills TrafficByWindow and LastSeenMs for every page in place.
// All counters start at zero, so pages whose URL received no events keep
// zeroed windows even when the fetch fails.
func (uc *TrafficUseCase) Annotate(ctx context.Context, pages []domain.PageRecord) error {
	byURL := make(map[string]int, len(pages))
	for i := range pages {
		pages[i].TrafficByWindow = zeroWindows()
		pages[i].LastSeenMs = 0
		byURL[pages[i].URL] = i
	}

	now := time.Now()
	since := now.Add(-uc.lookback)

	events, err := uc.fetchEvents(ctx, since)
	if err != nil {
		return err
	}

	cutoffs := make([]time.Time, len(domain.TrafficWindows))
	for i, w := range domain.TrafficWindows {
		cutoffs[i] = now.Add(-w.Span)
	}

	views := make(map[int][]int64)
	uniques := make(map[int][]map[string]struct{})
	matched := 0
	for _, event := range events {
		idx, tracked := byURL[event.Path]
		if !tracked {
			continue
		}
		matched++

		v, seen := views[idx]
		if !seen {
			v = make([]int64, len(domain.TrafficWindows))
			views[idx] = v
			u := make([]map[string]struct{}, len(domain.TrafficWindows))
			for i := range u {
				u[i] = make(map[string]struct{})
			}
			uniques[idx] = u
		}

		// Each window is tested independently: an event inside the 1h
		// window also lands in every wider one.
		for i := range domain.TrafficWindows {
			if event.Timestamp.Before(cutoffs[i]) {
				continue
			}
			v[i]++
			if event.AnonID != "" {
				uniques[idx][i][event.AnonID] = struct{}{}
			}
		}

		if ms := event.Timestamp.UnixMilli(); ms > pages[idx].LastSeenMs {
			pages[idx].LastSeenMs = ms
		}
	}

	for idx, v := range views {
		stats := pages[idx].TrafficByWindow
		for i, w := range domain.TrafficWindows {
			stats[w.Key] = domain.WindowStats{
				Views:   v[i],
				Uniques: int64(len(uniques[idx][i])),
			}
		}
	}

	uc.logger.Info("Traffic aggregation completed",
		zap.Int("events", len(events)),
		zap.Int("matched", matched),
		zap.Int("pages", len(pages)))
	return nil
}

func zeroWindows() map[string]domain.WindowStats {
	stats := make(map[string]domain.WindowStats, len(domain.TrafficWindows))
	for _, w := range domain.TrafficWindows {
		stats[w.Key] = domain.WindowStats{}
	}
	return stats
}

// fetchEvents plans offset batches from a count and fetches them with a
// bounded fan-out, joining before aggregation proceeds.
func (uc *TrafficUseCase) fetchEvents(ctx context.Context, since time.Time) ([]domain.PageviewEvent, error) {
	total, err := uc.pageviewRepo.CountEventsSince(ctx, since)
	if err != nil {
		return nil, err
	}
	if total == 0 {
		return nil, nil
	}

	batches := (total + uc.batchSize - 1) / uc.batchSize
	results := make([][]domain.PageviewEvent, batches)

	var wg sync.WaitGroup
	var mu sync.Mutex
	var firstErr error
	sem := make(chan struct{}, uc.fanout)

	for b := 0; b < batches; b++ {
		wg.Add(1)
		go func(batch int) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			events, err := uc.pageviewRepo.GetEventsBatch(ctx, since, uc.batchSize, batch*uc.batchSize)
			if err != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mu.Unlock()
				return
			}
			results[batch] = events
		}(b)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	events := make([]domain.PageviewEvent, 0, total)
	for _, batch := range results {
		events = append(events, batch...)
	}
	return events, nil
}
