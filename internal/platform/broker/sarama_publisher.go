package broker

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/IBM/sarama"
)

type SaramaPublisher struct {
	producer sarama.SyncProducer
}

var _ Publisher = (*SaramaPublisher)(nil)

// NewSaramaPublisher connects a synchronous producer to the given
// broker addresses.
func NewSaramaPublisher(addrs []string) (*SaramaPublisher, error) {
	cfg := sarama.NewConfig()
	cfg.Producer.RequiredAcks = sarama.WaitForAll
	cfg.Producer.Retry.Max = 0
	cfg.Producer.Return.Successes = true

	producer, err := sarama.NewSyncProducer(addrs, cfg)
	if err != nil {
		return nil, fmt.Errorf("%w: connect to brokers %v: %v", ErrPublishFailed, addrs, err)
	}

	slog.Info("Connected to the message broker.", "addresses", addrs)

	return &SaramaPublisher{producer: producer}, nil
}

func (p *SaramaPublisher) Publish(ctx context.Context, topic, key string, payload any) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: topic %s: %v", ErrPublishFailed, topic, err)
	}

	value, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: encode payload for topic %s: %v", ErrPublishFailed, topic, err)
	}

	msg := &sarama.ProducerMessage{
		Topic: topic,
		Key:   sarama.StringEncoder(key),
		Value: sarama.ByteEncoder(value),
	}

	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("%w: send to topic %s: %v", ErrPublishFailed, topic, err)
	}

	slog.Info("Published message.", "topic", topic, "partition", partition, "offset", offset)
	return nil
}

func (p *SaramaPublisher) Close() error {
	if err := p.producer.Close(); err != nil {
		return fmt.Errorf("close producer: %w", err)
	}
	return nil
}
