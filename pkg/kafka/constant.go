package kafka

import (
	"errors"
	"time"

	"github.com/IBM/sarama"
)

const (
	producerTimeout  = 10 * time.Second
	producerRetryMax = 3
)

// Version is the protocol version negotiated with brokers.
var Version = sarama.V2_6_0_0

var (
	ErrNoBrokers = errors.New("kafka: at least one broker is required")
	ErrNoTopic   = errors.New("kafka: topic is required")
	ErrClosed    = errors.New("kafka: producer is closed")
)
