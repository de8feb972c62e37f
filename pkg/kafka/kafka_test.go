package kafka

import (
	"context"
	"errors"
	"testing"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func TestPublish(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != "events" {
			t.Errorf("topic = %q", msg.Topic)
		}
		if len(msg.Headers) != 2 || string(msg.Headers[0].Key) != "a" || string(msg.Headers[1].Key) != "b" {
			t.Errorf("headers = %+v, want sorted a, b", msg.Headers)
		}
		return nil
	})

	p := Wrap(sp, "events")
	err := p.Publish(context.Background(), Message{
		Key:     []byte("k"),
		Value:   []byte("{}"),
		Headers: map[string]string{"b": "2", "a": "1"},
	})
	if err != nil {
		t.Fatalf("Publish() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := p.HealthCheck(); !errors.Is(err, ErrClosed) {
		t.Errorf("HealthCheck() after Close = %v, want ErrClosed", err)
	}
	if err := p.Publish(context.Background(), Message{}); !errors.Is(err, ErrClosed) {
		t.Errorf("Publish() after Close = %v, want ErrClosed", err)
	}
}

func TestPublishCanceled(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	p := Wrap(sp, "events")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := p.Publish(ctx, Message{Key: []byte("k")}); !errors.Is(err, context.Canceled) {
		t.Errorf("Publish() = %v, want context.Canceled", err)
	}
	_ = p.Close()
}

func TestNewProducerValidation(t *testing.T) {
	if _, err := NewProducer(Config{Topic: "t"}); !errors.Is(err, ErrNoBrokers) {
		t.Errorf("no brokers = %v", err)
	}
	if _, err := NewProducer(Config{Brokers: []string{"localhost:9092"}}); !errors.Is(err, ErrNoTopic) {
		t.Errorf("no topic = %v", err)
	}
}
