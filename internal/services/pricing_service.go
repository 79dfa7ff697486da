package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/epeers/holdings/internal/cache"
	"github.com/epeers/holdings/internal/models"
	"github.com/epeers/holdings/internal/repository"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/singleflight"
)

// ErrTickerNotFound is returned when a ticker has no price history
var ErrTickerNotFound = errors.New("ticker not found")

// PriceSource provides per-ticker price histories.
// Identity must change whenever the content behind a ticker changes.
type PriceSource interface {
	Tickers(ctx context.Context) ([]string, error)
	Identity(ctx context.Context, ticker string) (string, error)
	LoadSeries(ctx context.Context, ticker string) (*models.PriceSeries, error)
}

// PricingService serves price series from a PriceSource through the memory cache.
// Each (ticker, identity) is parsed at most once, even under concurrent requests.
type PricingService struct {
	source   PriceSource
	memCache *cache.MemoryCache
	group    singleflight.Group
}

// NewPricingService creates a new PricingService
func NewPricingService(source PriceSource, memCache *cache.MemoryCache) *PricingService {
	return &PricingService{
		source:   source,
		memCache: memCache,
	}
}

// Tickers lists the tickers with a price history
func (s *PricingService) Tickers(ctx context.Context) ([]string, error) {
	return s.source.Tickers(ctx)
}

// GetSeries returns the full history of a ticker.
// The returned series is shared; callers must not modify it.
func (s *PricingService) GetSeries(ctx context.Context, ticker string) (*models.PriceSeries, error) {
	identity, err := s.source.Identity(ctx, ticker)
	if err != nil {
		if errors.Is(err, repository.ErrTickerNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTickerNotFound, ticker)
		}
		return nil, fmt.Errorf("failed to identify price source for %s: %w", ticker, err)
	}

	if series, ok := s.memCache.GetSeries(ticker, identity); ok {
		return series, nil
	}

	// The load is shared by every caller waiting on the key, so it must not
	// end when the first caller's request is cancelled.
	loadCtx := context.WithoutCancel(ctx)
	v, err, shared := s.group.Do(ticker+"|"+identity, func() (interface{}, error) {
		defer TrackTime("PricingService.LoadSeries", time.Now())
		series, err := s.source.LoadSeries(loadCtx, ticker)
		if err != nil {
			return nil, err
		}
		s.memCache.SetSeries(ticker, identity, series)
		return series, nil
	})
	if err != nil {
		if errors.Is(err, repository.ErrTickerNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrTickerNotFound, ticker)
		}
		return nil, fmt.Errorf("failed to load prices for %s: %w", ticker, err)
	}

	series := v.(*models.PriceSeries)
	log.WithFields(log.Fields{"ticker": ticker, "points": len(series.Points), "shared": shared}).Debug("loaded price series")
	return series, nil
}

// Range returns the points of a ticker between start and end, inclusive.
// A nil bound defaults to the first or last date of the series.
func (s *PricingService) Range(ctx context.Context, ticker string, start, end *time.Time) (*models.PriceSeries, time.Time, time.Time, error) {
	series, err := s.GetSeries(ctx, ticker)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}

	from, to := resolveBounds(series, start, end)
	filtered := FilterRange(series, from, to)
	if len(filtered.Points) == 0 {
		AddWarningf(ctx, models.WarnEmptyRange, "no %s prices between %s and %s",
			ticker, from.Format(models.DateFormat), to.Format(models.DateFormat))
	}
	return filtered, from, to, nil
}

// Trend returns one price column for several tickers over an optional range.
func (s *PricingService) Trend(ctx context.Context, tickers []string, field string, start, end *time.Time) (map[string][]models.TrendPoint, error) {
	col, err := ResolvePriceField(field)
	if err != nil {
		return nil, err
	}

	out := make(map[string][]models.TrendPoint, len(tickers))
	for _, t := range tickers {
		filtered, _, _, err := s.Range(ctx, t, start, end)
		if err != nil {
			return nil, err
		}
		out[t] = ProjectColumn(filtered.Points, col)
	}
	return out, nil
}

func resolveBounds(series *models.PriceSeries, start, end *time.Time) (time.Time, time.Time) {
	var from, to time.Time
	if start != nil {
		from = *start
	} else if first, ok := series.First(); ok {
		from = first
	}
	if end != nil {
		to = *end
	} else if last, ok := series.Last(); ok {
		to = last
	}
	return from, to
}
