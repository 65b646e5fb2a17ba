package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/clients/ecb"
	"max.ks1230/open-rates/internal/clients/fixer"
	"max.ks1230/open-rates/internal/clients/kafka"
	"max.ks1230/open-rates/internal/config"
	"max.ks1230/open-rates/internal/logger"
	"max.ks1230/open-rates/internal/model/publisher"
	"max.ks1230/open-rates/internal/model/storage"
	"max.ks1230/open-rates/internal/tracing"
)

func main() {
	logger.Info("Publisher init - start")

	conf, err := config.New()
	if err != nil {
		logger.Fatal("failed to init config:", zap.Error(err))
	}

	closer, err := tracing.Init(conf.Jaeger())
	if err != nil {
		logger.Fatal("failed to init tracing:", zap.Error(err))
	}

	// ECB first so the Fixer quotes win on overlap
	providers := []publisher.Provider{ecb.New(conf.Ecb(), nil)}
	if conf.Fixer().Enabled() {
		providers = append(providers, fixer.New(conf.Fixer(), conf.App().Anchor(), nil))
	}

	var sinks []publisher.Sink
	if conf.Postgres().Enabled() {
		db, err := storage.NewPostgresStorage(conf.Postgres())
		if err != nil {
			logger.Fatal("failed to init postgres:", zap.Error(err))
		}
		defer db.Close()
		sinks = append(sinks, db)
	}
	if conf.Kafka().Enabled() {
		producer, err := kafka.NewProducer(conf.Kafka())
		if err != nil {
			logger.Fatal("failed to init kafka producer:", zap.Error(err))
		}
		defer producer.Close()
		sinks = append(sinks, producer)
	}

	p := publisher.New(conf.App(), providers, storage.NewFileStorage(conf.App()), sinks...)

	logger.Info("Publisher init - end", zap.Int("providers", len(providers)), zap.Int("sinks", len(sinks)))

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err = p.Run(ctx)
	cancel()

	_ = closer.Close()
	if err != nil {
		logger.Error("publisher stopped", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
	logger.Sync()
}
