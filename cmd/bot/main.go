package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/clients/cache"
	"max.ks1230/open-rates/internal/clients/openrates"
	"max.ks1230/open-rates/internal/clients/tg"
	"max.ks1230/open-rates/internal/config"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/logger"
	"max.ks1230/open-rates/internal/model/messages"
	"max.ks1230/open-rates/internal/model/quotes"
	"max.ks1230/open-rates/internal/model/storage"
	"max.ks1230/open-rates/internal/server"
	"max.ks1230/open-rates/internal/tracing"
)

const (
	cacheCleanupPeriod = 10 * time.Minute
	shutdownTimeout    = 5 * time.Second
)

type tableFetcher interface {
	Fetch(ctx context.Context, segment string) (*rates.Table, error)
}

type rateCache interface {
	Get(ctx context.Context, key string) (decimal.Decimal, bool, error)
	Set(ctx context.Context, key string, rate decimal.Decimal, ttl time.Duration) error
}

func main() {
	logger.Info("Bot init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Jaeger())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}
	defer func() { _ = closer.Close() }()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	fetcher, closeFetcher := newFetcher(conf)
	cacheClient, closeCache := newCache(ctx, conf)
	rateService := quotes.New(conf.App(), fetcher, cacheClient)

	httpServer, err := server.NewServer(conf.HTTP(), rateService)
	if err != nil {
		logger.Fatal("failed to init http server:", zap.Error(err))
	}
	go httpServer.Serve()

	client, err := tg.New(conf.Telegram())
	if err != nil {
		logger.Fatal("failed to init client:", zap.Error(err))
	}
	msgService := messages.NewService(client, rateService)

	logger.Info("Bot init - end", zap.String("source", conf.App().Source()))

	client.ListenUpdates(ctx, msgService)

	shutdownCtx, stop := context.WithTimeout(context.Background(), shutdownTimeout)
	defer stop()
	httpServer.Shutdown(shutdownCtx)
	closeCache()
	closeFetcher()
	logger.Sync()
}

func nop() {}

// newFetcher returns the configured table source and a func releasing it.
func newFetcher(conf *config.Service) (tableFetcher, func()) {
	switch conf.App().Source() {
	case config.SourceFile:
		return storage.NewFileStorage(conf.App()), nop
	case config.SourcePostgres:
		db, err := storage.NewPostgresStorage(conf.Postgres())
		if err != nil {
			logger.Fatal("failed to init postgres:", zap.Error(err))
		}
		return db, db.Close
	default:
		return openrates.New(conf.App(), nil), nop
	}
}

// newCache prefers memcached, then badger, then the in-process map.
// The returned func must run only after in-flight requests have drained.
func newCache(ctx context.Context, conf *config.Service) (rateCache, func()) {
	if conf.Memcached().Enabled() {
		mc, err := cache.NewMemcache(conf.Memcached())
		if err != nil {
			logger.Fatal("failed to init memcached:", zap.Error(err))
		}
		return mc, nop
	}
	if conf.Badger().Enabled() {
		bc, err := cache.NewBadger(conf.Badger())
		if err != nil {
			logger.Fatal("failed to init badger:", zap.Error(err))
		}
		return bc, bc.Close
	}

	mem := cache.NewMemoryCache()
	go cleanExpired(ctx, mem)
	return mem, nop
}

func cleanExpired(ctx context.Context, mem *cache.MemoryCache) {
	ticker := time.NewTicker(cacheCleanupPeriod)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := mem.CleanExpired(); n > 0 {
				logger.Debug("expired rates dropped", zap.Int("count", n), zap.Int("left", mem.Size()))
			}
		}
	}
}
