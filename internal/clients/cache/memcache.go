package cache

import (
	"context"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/logger"
)

const keyPrefix = "openrates:"

type config interface {
	Hosts() []string
}

// MemcacheClient stores resolved rates as their decimal string form.
type MemcacheClient struct {
	client *memcache.Client
}

func NewMemcache(config config) (*MemcacheClient, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	mc := memcache.New(config.Hosts()...)
	return &MemcacheClient{mc}, mc.Ping()
}

func formatKey(key string) string {
	return keyPrefix + key
}

func (mc *MemcacheClient) Get(_ context.Context, key string) (decimal.Decimal, bool, error) {
	item, err := mc.client.Get(formatKey(key))
	if errors.Is(err, memcache.ErrCacheMiss) {
		return decimal.Decimal{}, false, nil
	}
	if err != nil {
		return decimal.Decimal{}, false, errors.Wrap(err, "memcache get")
	}

	rate, err := decimal.NewFromString(string(item.Value))
	if err != nil {
		return decimal.Decimal{}, false, errors.Wrap(err, "memcache decode")
	}
	return rate, true, nil
}

func (mc *MemcacheClient) Set(_ context.Context, key string, rate decimal.Decimal, ttl time.Duration) error {
	logger.Debug("cache rate", zap.String("key", key))
	err := mc.client.Set(&memcache.Item{
		Key:        formatKey(key),
		Value:      []byte(rate.String()),
		Expiration: int32(ttl.Seconds()),
	})
	return errors.Wrap(err, "memcache set")
}
