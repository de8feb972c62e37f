package kafka

import (
	"context"

	"github.com/IBM/sarama"
)

// IProducer publishes keyed messages to a single topic.
// Implementations are safe for concurrent use.
type IProducer interface {
	Publish(ctx context.Context, msg Message) error
	Topic() string
	// HealthCheck fails once the producer is closed.
	HealthCheck() error
	Close() error
}

// Message is one record. Headers are sent as record headers.
type Message struct {
	Key     []byte
	Value   []byte
	Headers map[string]string
}

// Config holds configuration for the producer.
type Config struct {
	Brokers  []string
	Topic    string
	ClientID string
}

// NewProducer dials the brokers and returns a synchronous producer.
func NewProducer(cfg Config) (IProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, ErrNoBrokers
	}
	if cfg.Topic == "" {
		return nil, ErrNoTopic
	}

	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = sarama.WaitForLocal
	sc.Producer.Compression = sarama.CompressionSnappy
	sc.Producer.Return.Successes = true
	sc.Producer.Retry.Max = producerRetryMax
	sc.Producer.Timeout = producerTimeout
	sc.Version = Version
	if cfg.ClientID != "" {
		sc.ClientID = cfg.ClientID
	}

	sp, err := sarama.NewSyncProducer(cfg.Brokers, sc)
	if err != nil {
		return nil, err
	}
	return Wrap(sp, cfg.Topic), nil
}

// Wrap adapts an existing SyncProducer, e.g. one from sarama/mocks.
func Wrap(sp sarama.SyncProducer, topic string) IProducer {
	return &producerImpl{producer: sp, topic: topic}
}
