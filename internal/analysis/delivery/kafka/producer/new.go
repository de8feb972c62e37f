package producer

import (
	"callaudit-srv/internal/analysis"
	pkgKafka "callaudit-srv/pkg/kafka"
	"callaudit-srv/pkg/log"
)

// Producer publishes analysis events.
type Producer interface {
	analysis.Producer
}

type implProducer struct {
	l        log.Logger
	producer pkgKafka.IProducer
}

// New creates the analysis producer.
func New(l log.Logger, producer pkgKafka.IProducer) Producer {
	return &implProducer{
		l:        l,
		producer: producer,
	}
}
