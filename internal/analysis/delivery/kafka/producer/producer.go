package producer

import (
	"context"
	"encoding/json"
	"fmt"

	kafkaDelivery "callaudit-srv/internal/analysis/delivery/kafka"
	"callaudit-srv/internal/model"
	pkgKafka "callaudit-srv/pkg/kafka"
)

func (p *implProducer) PublishAnalysisCompleted(ctx context.Context, a model.Analysis) error {
	msg := kafkaDelivery.AnalysisCompletedMessage{
		EventType:        kafkaDelivery.EventTypeAnalysisCompleted,
		AnalysisID:       a.ID,
		TranscriptID:     a.TranscriptID,
		ChecklistID:      a.ChecklistID,
		ChecklistName:    a.ChecklistName,
		ChecklistVersion: a.ChecklistVersion,
		ManagerID:        a.ManagerID,
		Source:           string(a.Source),
		Language:         a.Language,
		TotalScore:       a.ChecklistReport.TotalScore,
		MaxScore:         a.ChecklistReport.MaxScore,
		Percentage:       a.ChecklistReport.Percentage,
		CompletedAt:      a.CreatedAt,
	}
	for _, it := range a.ChecklistReport.Items {
		switch it.Status {
		case model.ItemStatusPassed:
			msg.Passed++
		case model.ItemStatusFailed:
			msg.Failed++
		default:
			msg.Uncertain++
		}
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis event: %w", err)
	}

	err = p.producer.Publish(ctx, pkgKafka.Message{
		Key:   []byte(a.ID),
		Value: body,
		Headers: map[string]string{
			kafkaDelivery.HeaderEventType:   kafkaDelivery.EventTypeAnalysisCompleted,
			kafkaDelivery.HeaderContentType: "application/json",
		},
	})
	if err != nil {
		return fmt.Errorf("failed to publish analysis event: %w", err)
	}

	p.l.Infof(ctx, "analysis.delivery.kafka.PublishAnalysisCompleted: id=%s percentage=%.2f", a.ID, msg.Percentage)
	return nil
}
