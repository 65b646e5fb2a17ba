package kafka

import (
	"context"
	"encoding/json"

	"github.com/Shopify/sarama"
	"github.com/opentracing/opentracing-go"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"max.ks1230/open-rates/internal/entity/rates"
	"max.ks1230/open-rates/internal/logger"
)

type producerConfig interface {
	Brokers() []string
	RatesTopic() string
}

// Producer announces every published snapshot on the rates topic,
// keyed by the snapshot date.
type Producer struct {
	producer sarama.SyncProducer
	topic    string
}

func NewProducer(cfg producerConfig) (*Producer, error) {
	config := sarama.NewConfig()
	config.Version = sarama.V2_5_0_0
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(cfg.Brokers(), config)
	if err != nil {
		return nil, errors.Wrap(err, "cannot create producer")
	}
	return newProducer(producer, cfg.RatesTopic()), nil
}

func newProducer(producer sarama.SyncProducer, topic string) *Producer {
	return &Producer{
		producer: producer,
		topic:    topic,
	}
}

func (p *Producer) SaveTable(ctx context.Context, table *rates.Table) error {
	span, _ := opentracing.StartSpanFromContext(ctx, "announceTable")
	defer span.Finish()

	message, err := json.Marshal(table)
	if err != nil {
		return errors.Wrap(err, "encode table")
	}

	partition, offset, err := p.producer.SendMessage(&sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(table.Date.Format(rates.DateLayout)),
		Value: sarama.ByteEncoder(message),
	})
	if err != nil {
		return errors.Wrap(err, "announce table")
	}
	logger.Info("snapshot announced",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
	return nil
}

func (p *Producer) Close() {
	err := p.producer.Close()
	if err != nil {
		logger.Error("failed to close producer", zap.Error(err))
	}
}
