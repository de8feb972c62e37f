package kafka

import (
	"fmt"
	"sync"

	"callaudit-srv/config"
	"callaudit-srv/pkg/kafka"
)

var (
	mu       sync.Mutex
	instance kafka.IProducer
)

// ConnectProducer returns the shared producer for the analysis events topic.
func ConnectProducer(cfg config.KafkaConfig, clientID string) (kafka.IProducer, error) {
	mu.Lock()
	defer mu.Unlock()

	if instance != nil {
		return instance, nil
	}

	p, err := kafka.NewProducer(kafka.Config{
		Brokers:  cfg.Brokers,
		Topic:    cfg.Topic,
		ClientID: clientID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	instance = p
	return instance, nil
}

// Disconnect flushes and closes the shared producer.
func Disconnect() error {
	mu.Lock()
	defer mu.Unlock()

	if instance == nil {
		return nil
	}
	err := instance.Close()
	instance = nil
	return err
}
