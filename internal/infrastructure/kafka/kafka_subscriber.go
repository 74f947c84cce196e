package publisher

import (
	"context"

	"github.com/LavaJover/shvark-fx-pipeline/internal/domain"
	"github.com/segmentio/kafka-go"
)

type DefaultKafkaSubscriber struct {
	brokers []string
}

func NewDefaultKafkaSubscriber(brokers []string) *DefaultKafkaSubscriber {
	return &DefaultKafkaSubscriber{brokers: brokers}
}

// Subscribe fetches messages without auto-commit. Each message carries a
// Commit closure that advances the consumer-group offset; a message whose
// Commit is never called is redelivered after a restart, which is what
// gives the pipeline at-least-once delivery.
func (k *DefaultKafkaSubscriber) Subscribe(ctx context.Context, topic, groupID string) (<-chan domain.Message, error) {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers: k.brokers,
		Topic:   topic,
		GroupID: groupID,
	})
	out := make(chan domain.Message)
	go func() {
		defer close(out)
		defer reader.Close()
		for {
			m, err := reader.FetchMessage(ctx)
			if err != nil {
				return
			}
			msg := domain.Message{
				Key:   m.Key,
				Value: m.Value,
				Commit: func() error {
					return reader.CommitMessages(ctx, m)
				},
			}
			select {
			case out <- msg:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out, nil
}
