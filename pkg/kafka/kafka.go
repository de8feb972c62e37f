package kafka

import (
	"context"
	"fmt"
	"sort"
	"sync/atomic"

	"github.com/IBM/sarama"
)

type producerImpl struct {
	producer sarama.SyncProducer
	topic    string
	closed   atomic.Bool
}

func (p *producerImpl) Topic() string {
	return p.topic
}

func (p *producerImpl) Publish(ctx context.Context, msg Message) error {
	if p.closed.Load() {
		return ErrClosed
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	pm := &sarama.ProducerMessage{
		Topic:   p.topic,
		Key:     sarama.ByteEncoder(msg.Key),
		Value:   sarama.ByteEncoder(msg.Value),
		Headers: recordHeaders(msg.Headers),
	}
	if _, _, err := p.producer.SendMessage(pm); err != nil {
		return fmt.Errorf("kafka: publish to %s: %w", p.topic, err)
	}
	return nil
}

func (p *producerImpl) HealthCheck() error {
	if p.closed.Load() {
		return ErrClosed
	}
	return nil
}

func (p *producerImpl) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}
	return p.producer.Close()
}

// recordHeaders sorts by key so records are reproducible.
func recordHeaders(h map[string]string) []sarama.RecordHeader {
	if len(h) == 0 {
		return nil
	}
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]sarama.RecordHeader, 0, len(keys))
	for _, k := range keys {
		out = append(out, sarama.RecordHeader{Key: []byte(k), Value: []byte(h[k])})
	}
	return out
}
