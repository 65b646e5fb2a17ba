package publisher

import (
	"context"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/model/customerr"
	"max.ks1230/open-rates/internal/model/publisher/mock"
)

var publishedAt = time.Date(2025, 11, 3, 16, 0, 0, 0, time.UTC)

type delayConfig time.Duration

func (d delayConfig) PublishDelay() time.Duration {
	return time.Duration(d)
}

func table(t *testing.T, usd string) *rates.Table {
	tb, err := rates.Bidirectional("eur", publishedAt, map[string]decimal.Decimal{
		"usd": decimal.RequireFromString(usd),
	})
	require.NoError(t, err)
	return tb
}

func provider(m minimock.Tester, name string, tb *rates.Table, err error) *mock.ProviderMock {
	p := mock.NewProviderMock(m)
	p.NameMock.Return(name)
	p.FetchMock.Return(tb, err)
	return p
}

func newPublisher(providers []Provider, store Sink, sinks ...Sink) *Publisher {
	p := New(delayConfig(0), providers, store, sinks...)
	p.now = func() time.Time { return publishedAt }
	return p
}

func Test_OnPublish_ShouldMergeInProviderOrder(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	ecb := provider(m, "ecb", table(t, "1.1"), nil)
	fixer := mock.NewProviderMock(m)
	fixer.NameMock.Return("fixer")
	fixerTable := rates.NewTable(publishedAt)
	fixerTable.Set("eur", "usd", decimal.RequireFromString("1.2"))
	fixerTable.Set("eur", "jpy", decimal.RequireFromString("160"))
	fixer.FetchMock.Return(fixerTable, nil)

	var stored *rates.Table
	store := mock.NewSinkMock(m)
	store.SaveTableMock.Set(func(_ context.Context, tb *rates.Table) error {
		stored = tb
		return nil
	})
	announcer := mock.NewSinkMock(m)
	announcer.SaveTableMock.Return(nil)

	merged, err := newPublisher([]Provider{ecb, fixer}, store, announcer).PublishOnce(context.Background())

	require.NoError(m, err)
	assert.Same(m, merged, stored)
	assert.Equal(m, "2025-11-03", merged.Date.Format(rates.DateLayout))
	usd, _ := merged.TryGet("eur", "usd")
	assert.Equal(m, "1.2", usd.String())
	jpy, _ := merged.TryGet("eur", "jpy")
	assert.Equal(m, "160", jpy.String())
	_, ok := merged.TryGet("usd", "eur")
	assert.True(m, ok)
	assert.Equal(m, uint64(1), announcer.SaveTableAfterCounter())
}

func Test_OnProviderFailure_ShouldPublishTheRest(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	ecb := provider(m, "ecb", table(t, "1.1"), nil)
	fixer := provider(m, "fixer", nil, customerr.FetchFailed("fixer", errors.New("401")))
	store := mock.NewSinkMock(m)
	store.SaveTableMock.Return(nil)

	merged, err := newPublisher([]Provider{ecb, fixer}, store).PublishOnce(context.Background())

	require.NoError(m, err)
	usd, _ := merged.TryGet("eur", "usd")
	assert.Equal(m, "1.1", usd.String())
}

func Test_OnEveryProviderFailing_ShouldNotWrite(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	ecb := provider(m, "ecb", nil, customerr.ParseFailed("ecb", errors.New("bad xml")))
	fixer := provider(m, "fixer", nil, nil)
	store := mock.NewSinkMock(m)

	_, err := newPublisher([]Provider{ecb, fixer}, store).PublishOnce(context.Background())

	assert.True(m, errors.Is(err, customerr.ErrFetchFailed))
	assert.Equal(m, uint64(0), store.SaveTableBeforeCounter())
}

func Test_OnStoreFailure_ShouldFailAndSkipSinks(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	store := mock.NewSinkMock(m)
	store.SaveTableMock.Return(errors.New("disk full"))
	announcer := mock.NewSinkMock(m)

	_, err := newPublisher([]Provider{provider(m, "ecb", table(t, "1.1"), nil)}, store, announcer).
		PublishOnce(context.Background())

	assert.Error(m, err)
	assert.Contains(m, err.Error(), "disk full")
	assert.Equal(m, uint64(0), announcer.SaveTableBeforeCounter())
}

func Test_OnSinkFailure_ShouldStillSucceed(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	store := mock.NewSinkMock(m)
	store.SaveTableMock.Return(nil)
	db := mock.NewSinkMock(m)
	db.SaveTableMock.Return(errors.New("connection reset"))
	announcer := mock.NewSinkMock(m)
	announcer.SaveTableMock.Return(nil)

	_, err := newPublisher([]Provider{provider(m, "ecb", table(t, "1.1"), nil)}, store, db, announcer).
		PublishOnce(context.Background())

	assert.NoError(m, err)
	assert.Equal(m, uint64(1), announcer.SaveTableAfterCounter())
}

func Test_RunWithoutDelay_ShouldPublishOnce(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	store := mock.NewSinkMock(m)
	store.SaveTableMock.Return(nil)

	err := newPublisher([]Provider{provider(m, "ecb", table(t, "1.1"), nil)}, store).Run(context.Background())

	assert.NoError(m, err)
	assert.Equal(m, uint64(1), store.SaveTableAfterCounter())
}

func Test_RunWithoutDelay_ShouldReportFailure(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	err := newPublisher([]Provider{provider(m, "ecb", nil, errors.New("timeout"))}, mock.NewSinkMock(m)).
		Run(context.Background())

	assert.Error(m, err)
}

func Test_RunWithDelay_ShouldPublishImmediatelyAndStopOnCancel(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	store := mock.NewSinkMock(m)
	store.SaveTableMock.Set(func(context.Context, *rates.Table) error {
		cancel()
		return nil
	})

	p := New(delayConfig(time.Hour), []Provider{provider(m, "ecb", table(t, "1.1"), nil)}, store)
	err := p.Run(ctx)

	assert.True(m, errors.Is(err, context.Canceled))
	assert.Equal(m, uint64(1), store.SaveTableAfterCounter())
}
