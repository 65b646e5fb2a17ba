package quotes

import (
	"context"
	"fmt"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"max.ks1230/open-rates/internal/entity/currency"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/logger"
	"max.ks1230/open-rates/internal/model/customerr"
	"max.ks1230/open-rates/internal/model/resolver"
)

const (
	latestSegment = "latest"
	// a follower whose leader was cancelled retries the flight at most this many times
	maxFlightAttempts = 3
)

//go:generate minimock -i tableFetcher -o ./mock/table_fetcher_mock.go -n TableFetcherMock
type tableFetcher interface {
	Fetch(ctx context.Context, segment string) (*rates.Table, error)
}

//go:generate minimock -i rateCache -o ./mock/rate_cache_mock.go -n RateCacheMock
type rateCache interface {
	Get(ctx context.Context, key string) (decimal.Decimal, bool, error)
	Set(ctx context.Context, key string, rate decimal.Decimal, ttl time.Duration) error
}

//go:generate minimock -i config -o ./mock/config_mock.go -n ConfigMock
type config interface {
	Anchor() string
	CacheTTL() time.Duration
}

// Service answers pair queries from the published tables and memoizes the
// result per (from, to, effective date). Concurrent misses on one key share
// a single upstream fetch.
type Service struct {
	fetcher  tableFetcher
	cache    rateCache
	resolver *resolver.Resolver
	ttl      time.Duration
	group    singleflight.Group
	now      func() time.Time
}

func New(config config, fetcher tableFetcher, cache rateCache) *Service {
	return &Service{
		fetcher:  fetcher,
		cache:    cache,
		resolver: resolver.New(config.Anchor()),
		ttl:      config.CacheTTL(),
		now:      time.Now,
	}
}

// Key is the memoization key of a query.
func Key(from, to string, effective time.Time) string {
	return fmt.Sprintf("%s:%s:%s", currency.Normalize(from), currency.Normalize(to), effective.Format(rates.DateLayout))
}

// GetRate resolves from -> to for the day of at, or for the latest table when at is nil.
func (s *Service) GetRate(ctx context.Context, from, to string, at *time.Time) (decimal.Decimal, error) {
	if currency.IsBlank(from) || currency.IsBlank(to) {
		return decimal.Decimal{}, customerr.InvalidArgument("currency code must not be blank")
	}
	from, to = currency.Normalize(from), currency.Normalize(to)

	effective, segment := rates.Day(s.now()), latestSegment
	if at != nil {
		effective = rates.Day(*at)
		segment = effective.Format(rates.DateLayout)
	}
	key := Key(from, to, effective)

	span, ctx := opentracing.StartSpanFromContext(ctx, "getRate")
	defer span.Finish()
	span.SetTag("key", key)

	if from == to {
		return decimal.NewFromInt(1), nil
	}

	if rate, ok := s.cached(ctx, key); ok {
		observeCache(true)
		return rate, nil
	}
	observeCache(false)

	rate, err := s.collapse(ctx, key, segment, from, to)
	if err != nil {
		ext.Error.Set(span, true)
		return decimal.Decimal{}, errors.Wrapf(err, "get rate %s/%s at %s", from, to, segment)
	}
	return rate, nil
}

func (s *Service) collapse(ctx context.Context, key, segment, from, to string) (decimal.Decimal, error) {
	var err error
	for attempt := 0; attempt < maxFlightAttempts; attempt++ {
		ch := s.group.DoChan(key, func() (interface{}, error) {
			return s.compute(ctx, key, segment, from, to)
		})

		select {
		case <-ctx.Done():
			return decimal.Decimal{}, ctx.Err()
		case res := <-ch:
			if res.Shared {
				observeShared()
			}
			if res.Err == nil {
				return res.Val.(decimal.Decimal), nil
			}
			err = res.Err
			if !isCancellation(err) || ctx.Err() != nil {
				return decimal.Decimal{}, err
			}
			logger.Debug("shared flight was cancelled, retrying", zap.String("key", key))
		}
	}
	return decimal.Decimal{}, err
}

func (s *Service) compute(ctx context.Context, key, segment, from, to string) (decimal.Decimal, error) {
	if rate, ok := s.cached(ctx, key); ok {
		return rate, nil
	}

	table, err := s.fetcher.Fetch(ctx, segment)
	if err != nil {
		return decimal.Decimal{}, err
	}

	rate, err := s.resolver.Resolve(table, from, to)
	if err != nil {
		return decimal.Decimal{}, err
	}

	if err = s.cache.Set(ctx, key, rate, s.ttl); err != nil {
		logger.Error("failed to cache rate", zap.String("key", key), zap.Error(err))
	}
	return rate, nil
}

func (s *Service) cached(ctx context.Context, key string) (decimal.Decimal, bool) {
	rate, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		logger.Error("failed to read cached rate", zap.String("key", key), zap.Error(err))
		return decimal.Decimal{}, false
	}
	return rate, ok
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
