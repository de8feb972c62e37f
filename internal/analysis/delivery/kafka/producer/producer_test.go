package producer

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"callaudit-srv/internal/analysis/delivery/kafka"
	"callaudit-srv/internal/model"
	pkgKafka "callaudit-srv/pkg/kafka"
	"callaudit-srv/pkg/log"

	"github.com/IBM/sarama"
	"github.com/IBM/sarama/mocks"
)

func TestPublishAnalysisCompleted(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)

	var got kafka.AnalysisCompletedMessage
	sp.ExpectSendMessageWithMessageCheckerFunctionAndSucceed(func(msg *sarama.ProducerMessage) error {
		if msg.Topic != kafka.TopicAnalysisCompleted {
			t.Errorf("topic = %q", msg.Topic)
		}
		key, _ := msg.Key.Encode()
		if string(key) != "a1" {
			t.Errorf("key = %q, want a1", key)
		}
		if len(msg.Headers) != 2 || string(msg.Headers[1].Value) != kafka.EventTypeAnalysisCompleted {
			t.Errorf("headers = %+v", msg.Headers)
		}
		body, _ := msg.Value.Encode()
		return json.Unmarshal(body, &got)
	})

	p := New(log.NewNop(), pkgKafka.Wrap(sp, kafka.TopicAnalysisCompleted))
	a := model.Analysis{
		ID:          "a1",
		ChecklistID: "c1",
		Source:      model.SourceCall,
		ChecklistReport: model.ChecklistReport{
			Items: []model.ChecklistReportItem{
				{ID: "greet", Status: model.ItemStatusPassed, Score: 1},
				{ID: "close", Status: model.ItemStatusFailed},
				{ID: "price", Status: model.ItemStatusUncertain},
			},
			TotalScore: 1,
			MaxScore:   3,
			Percentage: 33.33,
		},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	if err := p.PublishAnalysisCompleted(context.Background(), a); err != nil {
		t.Fatalf("PublishAnalysisCompleted() error = %v", err)
	}
	if err := sp.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	if got.EventType != kafka.EventTypeAnalysisCompleted || got.AnalysisID != "a1" || got.ChecklistID != "c1" {
		t.Errorf("message = %+v", got)
	}
	if got.Passed != 1 || got.Failed != 1 || got.Uncertain != 1 {
		t.Errorf("counts = %d/%d/%d, want 1/1/1", got.Passed, got.Failed, got.Uncertain)
	}
	if !got.CompletedAt.Equal(a.CreatedAt) {
		t.Errorf("completed_at = %v", got.CompletedAt)
	}
}

func TestPublishAnalysisCompletedError(t *testing.T) {
	sp := mocks.NewSyncProducer(t, nil)
	sp.ExpectSendMessageAndFail(sarama.ErrOutOfBrokers)

	p := New(log.NewNop(), pkgKafka.Wrap(sp, kafka.TopicAnalysisCompleted))
	if err := p.PublishAnalysisCompleted(context.Background(), model.Analysis{ID: "a1"}); err == nil {
		t.Fatal("expected error")
	}
	_ = sp.Close()
}
