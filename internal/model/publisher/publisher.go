package publisher

import (
	"context"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/logger"
	"max.ks1230/open-rates/internal/model/customerr"
	"max.ks1230/open-rates/internal/model/merger"
)

//go:generate minimock -i Provider -o ./mock/provider_mock.go -n ProviderMock
type Provider interface {
	Name() string
	Fetch(ctx context.Context) (*rates.Table, error)
}

//go:generate minimock -i Sink -o ./mock/sink_mock.go -n SinkMock
type Sink interface {
	SaveTable(ctx context.Context, table *rates.Table) error
}

type config interface {
	PublishDelay() time.Duration
}

// Publisher pulls every provider, merges the results and writes the
// snapshot. The store must accept it; extra sinks are best effort.
type Publisher struct {
	providers []Provider
	store     Sink
	sinks     []Sink
	delay     time.Duration
	now       func() time.Time
}

// New builds a publisher. Providers are merged in the given order so
// later providers win on conflicting entries.
func New(config config, providers []Provider, store Sink, sinks ...Sink) *Publisher {
	return &Publisher{
		providers: providers,
		store:     store,
		sinks:     sinks,
		delay:     config.PublishDelay(),
		now:       time.Now,
	}
}

// Run publishes once when no delay is configured. Otherwise it publishes
// immediately and then on every tick until ctx is done.
func (p *Publisher) Run(ctx context.Context) error {
	if p.delay <= 0 {
		_, err := p.PublishOnce(ctx)
		return err
	}

	ticker := time.NewTicker(p.delay)
	defer ticker.Stop()
	firstTick := make(chan struct{}, 1)
	firstTick <- struct{}{}

	logger.Info("Start publishing rates", zap.Duration("delay", p.delay))
	for {
		select {
		case <-ctx.Done():
			logger.Info("Stop publishing rates")
			return ctx.Err()
		// fake first tick to publish immediately
		case <-firstTick:
			p.publishLogged(ctx)
		case <-ticker.C:
			p.publishLogged(ctx)
		}
	}
}

func (p *Publisher) publishLogged(ctx context.Context) {
	if _, err := p.PublishOnce(ctx); err != nil {
		logger.Error("cannot publish rates", zap.Error(err))
	}
}

// PublishOnce fetches, merges and stores a single snapshot.
func (p *Publisher) PublishOnce(ctx context.Context) (*rates.Table, error) {
	logger.Info("Publishing current rates...")

	span, ctx := opentracing.StartSpanFromContext(ctx, "publishRates")
	defer span.Finish()

	tables := p.fetchAll(ctx)
	if len(tables) == 0 {
		ext.Error.Set(span, true)
		observePublish(statusFailed)
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, customerr.FetchFailed("publisher", errors.New("every provider failed"))
	}

	merged := merger.MergeAt(p.now(), tables...)
	if err := p.store.SaveTable(ctx, merged); err != nil {
		ext.Error.Set(span, true)
		observePublish(statusFailed)
		return nil, errors.Wrap(err, "save merged table")
	}

	for _, sink := range p.sinks {
		if err := sink.SaveTable(ctx, merged); err != nil {
			logger.Error("failed to deliver snapshot", zap.Error(err))
		}
	}

	observePublish(statusOK)
	logger.Info("Successfully published rates",
		zap.String("date", merged.Date.Format(rates.DateLayout)),
		zap.Int("entries", merged.Len()))
	return merged, nil
}

func (p *Publisher) fetchAll(ctx context.Context) []*rates.Table {
	tables := make([]*rates.Table, 0, len(p.providers))
	for _, provider := range p.providers {
		table, err := p.fetch(ctx, provider)
		if err != nil {
			logger.Error("provider failed", zap.String("provider", provider.Name()), zap.Error(err))
			continue
		}
		tables = append(tables, table)
	}
	return tables
}

func (p *Publisher) fetch(ctx context.Context, provider Provider) (*rates.Table, error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "fetchProvider")
	defer span.Finish()
	span.SetTag("provider", provider.Name())

	table, err := provider.Fetch(ctx)
	if err != nil {
		ext.Error.Set(span, true)
		return nil, err
	}
	if table == nil {
		ext.Error.Set(span, true)
		return nil, customerr.ParseFailed(provider.Name(), errors.New("empty response"))
	}
	return table, nil
}
