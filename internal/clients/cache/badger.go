package cache

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/logger"
)

type badgerConfig interface {
	Dir() string
}

// BadgerCache keeps resolved rates on disk so they survive restarts.
// Expiration is left to badger's entry TTL.
type BadgerCache struct {
	db *badger.DB
}

func NewBadger(config badgerConfig) (*BadgerCache, error) {
	logger.Info("badger cache dir", zap.String("dir", config.Dir()))
	db, err := badger.Open(badger.DefaultOptions(config.Dir()).WithLogger(nil))
	if err != nil {
		return nil, errors.Wrap(err, "open badger")
	}
	return &BadgerCache{db}, nil
}

func newInMemoryBadger() (*BadgerCache, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, errors.Wrap(err, "open badger")
	}
	return &BadgerCache{db}, nil
}

func (bc *BadgerCache) Get(_ context.Context, key string) (decimal.Decimal, bool, error) {
	var raw []byte
	err := bc.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(formatKey(key)))
		if err != nil {
			return err
		}
		raw, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return decimal.Decimal{}, false, nil
	}
	if err != nil {
		return decimal.Decimal{}, false, errors.Wrap(err, "badger get")
	}

	rate, err := decimal.NewFromString(string(raw))
	if err != nil {
		return decimal.Decimal{}, false, errors.Wrap(err, "badger decode")
	}
	return rate, true, nil
}

func (bc *BadgerCache) Set(_ context.Context, key string, rate decimal.Decimal, ttl time.Duration) error {
	err := bc.db.Update(func(txn *badger.Txn) error {
		return txn.SetEntry(badger.NewEntry([]byte(formatKey(key)), []byte(rate.String())).WithTTL(ttl))
	})
	return errors.Wrap(err, "badger set")
}

func (bc *BadgerCache) Close() {
	if err := bc.db.Close(); err != nil {
		logger.Error("failed to close badger", zap.Error(err))
	}
}
