package quotes

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/open-rates/internal/clients/cache"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/model/customerr"
	"max.ks1230/open-rates/internal/model/quotes/mock"
)

var today = time.Date(2025, 11, 3, 9, 30, 0, 0, time.UTC)

func ecbTable(t *testing.T) *rates.Table {
	table, err := rates.Bidirectional("eur", today, map[string]decimal.Decimal{
		"usd": decimal.RequireFromString("1.1"),
		"gbp": decimal.RequireFromString("0.85"),
	})
	require.NoError(t, err)
	return table
}

func newService(m minimock.Tester, fetcher tableFetcher, c rateCache) *Service {
	cfg := mock.NewConfigMock(m)
	cfg.AnchorMock.Return("eur")
	cfg.CacheTTLMock.Return(12 * time.Hour)

	s := New(cfg, fetcher, c)
	s.now = func() time.Time { return today }
	return s
}

func Test_OnCacheHit_ShouldNotFetch(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	fetcher := mock.NewTableFetcherMock(m)
	c := mock.NewRateCacheMock(m)

	c.GetMock.
		Inspect(func(_ context.Context, key string) {
			assert.Equal(m, "eur:usd:2025-11-03", key)
		}).
		Return(decimal.RequireFromString("1.1"), true, nil)

	rate, err := newService(m, fetcher, c).GetRate(context.Background(), "EUR", "USD", nil)

	assert.NoError(m, err)
	assert.Equal(m, "1.1", rate.String())
	assert.Equal(m, uint64(0), fetcher.FetchBeforeCounter())
}

func Test_OnCacheMiss_ShouldFetchLatestResolveAndStore(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	fetcher := mock.NewTableFetcherMock(m)
	c := mock.NewRateCacheMock(m)

	c.GetMock.Return(decimal.Decimal{}, false, nil)
	fetcher.FetchMock.
		Inspect(func(_ context.Context, segment string) {
			assert.Equal(m, "latest", segment)
		}).
		Return(ecbTable(t), nil)
	c.SetMock.
		Inspect(func(_ context.Context, key string, rate decimal.Decimal, ttl time.Duration) {
			assert.Equal(m, "usd:gbp:2025-11-03", key)
			assert.Equal(m, 12*time.Hour, ttl)
		}).
		Return(nil)

	rate, err := newService(m, fetcher, c).GetRate(context.Background(), "usd", "gbp", nil)

	assert.NoError(m, err)
	want := decimal.RequireFromString("0.85").Div(decimal.RequireFromString("1.1"))
	assert.True(m, want.Equal(rate))
}

func Test_WithDate_ShouldFetchDatedSegment(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	fetcher := mock.NewTableFetcherMock(m)
	c := mock.NewRateCacheMock(m)
	at := time.Date(2025, 10, 30, 17, 45, 0, 0, time.UTC)

	c.GetMock.
		Inspect(func(_ context.Context, key string) {
			assert.Equal(m, "eur:gbp:2025-10-30", key)
		}).
		Return(decimal.Decimal{}, false, nil)
	fetcher.FetchMock.
		Inspect(func(_ context.Context, segment string) {
			assert.Equal(m, "2025-10-30", segment)
		}).
		Return(ecbTable(t), nil)
	c.SetMock.Return(nil)

	rate, err := newService(m, fetcher, c).GetRate(context.Background(), "EUR", "GBP", &at)

	assert.NoError(m, err)
	assert.Equal(m, "0.85", rate.String())
}

func Test_OnFetchFailure_ShouldWrapWithPairAndSegment(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	fetcher := mock.NewTableFetcherMock(m)
	c := mock.NewRateCacheMock(m)

	c.GetMock.Return(decimal.Decimal{}, false, nil)
	fetcher.FetchMock.Return(nil, customerr.FetchFailed("openrates", errors.New("connection refused")))

	_, err := newService(m, fetcher, c).GetRate(context.Background(), "eur", "usd", nil)

	assert.True(m, errors.Is(err, customerr.ErrFetchFailed))
	assert.Contains(m, err.Error(), "eur/usd at latest")
}

func Test_OnMissingRate_ShouldNotCache(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	fetcher := mock.NewTableFetcherMock(m)
	c := mock.NewRateCacheMock(m)

	c.GetMock.Return(decimal.Decimal{}, false, nil)
	fetcher.FetchMock.Return(ecbTable(t), nil)

	_, err := newService(m, fetcher, c).GetRate(context.Background(), "usd", "xyz", nil)

	assert.True(m, errors.Is(err, customerr.ErrRateNotFound))
	assert.Equal(m, uint64(0), c.SetBeforeCounter())
}

func Test_OnEmptyTable_ShouldReportNotFound(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	fetcher := mock.NewTableFetcherMock(m)
	c := mock.NewRateCacheMock(m)

	c.GetMock.Return(decimal.Decimal{}, false, nil)
	fetcher.FetchMock.Return(&rates.Table{}, nil)

	_, err := newService(m, fetcher, c).GetRate(context.Background(), "usd", "gbp", nil)

	assert.True(m, errors.Is(err, customerr.ErrRateNotFound))
}

func Test_OnCacheErrors_ShouldStillAnswer(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	fetcher := mock.NewTableFetcherMock(m)
	c := mock.NewRateCacheMock(m)

	c.GetMock.Return(decimal.Decimal{}, false, errors.New("memcache down"))
	c.SetMock.Return(errors.New("memcache down"))
	fetcher.FetchMock.Return(ecbTable(t), nil)

	rate, err := newService(m, fetcher, c).GetRate(context.Background(), "gbp", "eur", nil)

	assert.NoError(m, err)
	assert.True(m, decimal.NewFromInt(1).Div(decimal.RequireFromString("0.85")).Equal(rate))
}

func Test_Identity_ShouldNotTouchCacheOrUpstream(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	rate, err := newService(m, mock.NewTableFetcherMock(m), mock.NewRateCacheMock(m)).
		GetRate(context.Background(), "JPY", "jpy", nil)

	assert.NoError(m, err)
	assert.True(m, rate.Equal(decimal.NewFromInt(1)))
}

func Test_BlankCurrency_ShouldBeInvalidArgument(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	_, err := newService(m, mock.NewTableFetcherMock(m), mock.NewRateCacheMock(m)).
		GetRate(context.Background(), " ", "usd", nil)

	assert.True(m, errors.Is(err, customerr.ErrInvalidArgument))
}

func Test_Key_ShouldNormalizeCodes(t *testing.T) {
	assert.Equal(t, "eur:usd:2025-10-30", Key("EUR", " usd", time.Date(2025, 10, 30, 0, 0, 0, 0, time.UTC)))
}

type funcFetcher func(ctx context.Context, segment string) (*rates.Table, error)

func (f funcFetcher) Fetch(ctx context.Context, segment string) (*rates.Table, error) {
	return f(ctx, segment)
}

func Test_ConcurrentMisses_ShouldFetchOnce(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	table := ecbTable(t)
	release := make(chan struct{})
	var calls int32

	fetcher := funcFetcher(func(ctx context.Context, _ string) (*rates.Table, error) {
		atomic.AddInt32(&calls, 1)
		<-release
		return table, nil
	})
	s := newService(m, fetcher, cache.NewMemoryCache())

	const callers = 20
	var wg sync.WaitGroup
	results := make([]decimal.Decimal, callers)
	errs := make([]error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = s.GetRate(context.Background(), "EUR", "USD", nil)
		}(i)
	}
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(m, int32(1), atomic.LoadInt32(&calls))
	for i := 0; i < callers; i++ {
		assert.NoError(m, errs[i])
		assert.Equal(m, "1.1", results[i].String())
	}
}

func Test_CancelledFetch_ShouldNotBeMemoized(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	table := ecbTable(t)
	started := make(chan struct{}, 1)
	var calls int32

	fetcher := funcFetcher(func(ctx context.Context, _ string) (*rates.Table, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			started <- struct{}{}
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return table, nil
	})
	memory := cache.NewMemoryCache()
	s := newService(m, fetcher, memory)

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		<-started
		cancel()
	}()
	_, err := s.GetRate(ctx, "eur", "usd", nil)
	assert.True(m, errors.Is(err, context.Canceled))

	time.Sleep(20 * time.Millisecond)
	assert.Equal(m, 0, memory.Size())

	rate, err := s.GetRate(context.Background(), "eur", "usd", nil)
	assert.NoError(m, err)
	assert.Equal(m, "1.1", rate.String())
	assert.Equal(m, int32(2), atomic.LoadInt32(&calls))
}

func Test_FollowerOfCancelledLeader_ShouldRetry(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	table := ecbTable(t)
	started := make(chan struct{}, 1)
	var calls int32

	fetcher := funcFetcher(func(ctx context.Context, _ string) (*rates.Table, error) {
		if atomic.AddInt32(&calls, 1) == 1 {
			started <- struct{}{}
			<-ctx.Done()
			return nil, ctx.Err()
		}
		return table, nil
	})
	s := newService(m, fetcher, cache.NewMemoryCache())

	leaderCtx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := s.GetRate(leaderCtx, "eur", "usd", nil)
		leaderErr <- err
	}()
	<-started

	followerDone := make(chan struct{})
	var rate decimal.Decimal
	var err error
	go func() {
		defer close(followerDone)
		rate, err = s.GetRate(context.Background(), "eur", "usd", nil)
	}()
	time.Sleep(20 * time.Millisecond)
	cancel()

	<-followerDone
	assert.True(m, errors.Is(<-leaderErr, context.Canceled))
	assert.NoError(m, err)
	assert.Equal(m, "1.1", rate.String())
}
