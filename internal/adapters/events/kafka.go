package events

import (
	"context"
	"log/slog"
	"time"

	kafkago "github.com/segmentio/kafka-go"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/config"
)

// KafkaPublisher writes events to a Kafka topic. The writer is asynchronous:
// Publish returns once the message is queued and delivery errors are logged.
type KafkaPublisher struct {
	writer *kafkago.Writer
	logger *slog.Logger
}

// NewKafkaPublisher creates a producer for cfg.Topic.
func NewKafkaPublisher(cfg config.KafkaConfig, logger *slog.Logger) *KafkaPublisher {
	if logger == nil {
		logger = slog.Default()
	}

	w := &kafkago.Writer{
		Addr:                   kafkago.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafkago.Hash{},
		RequiredAcks:           kafkago.RequireAll,
		AllowAutoTopicCreation: true,
		Async:                  true,
		Completion: func(messages []kafkago.Message, err error) {
			if err != nil {
				logger.Error("kafka delivery failed",
					slog.String("topic", cfg.Topic),
					slog.Int("messages", len(messages)),
					slog.Any("error", err),
				)
			}
		},
	}
	if cfg.BatchTimeout > 0 {
		w.BatchTimeout = cfg.BatchTimeout
	}

	return &KafkaPublisher{writer: w, logger: logger}
}

// Name identifies the sink in metrics.
func (p *KafkaPublisher) Name() string { return "kafka" }

// Publish implements ports.EventPublisher.
func (p *KafkaPublisher) Publish(ctx context.Context, e domain.Event) error {
	msg, err := toKafkaMessage(e)
	if err != nil {
		return err
	}
	return p.writer.WriteMessages(ctx, msg)
}

// Close flushes queued messages and closes the writer.
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

// toKafkaMessage keys by event type so each type keeps its order within a
// partition.
func toKafkaMessage(e domain.Event) (kafkago.Message, error) {
	encoded, err := Encode(e)
	if err != nil {
		return kafkago.Message{}, err
	}
	return kafkago.Message{
		Key:   []byte(e.Type),
		Value: encoded.Data,
		Headers: []kafkago.Header{
			{Key: "event_type", Value: []byte(e.Type)},
			{Key: "event_id", Value: []byte(e.ID)},
			{Key: "occurred_at", Value: []byte(e.OccurredAt.UTC().Format(time.RFC3339))},
		},
	}, nil
}
