//go:build integration

package events

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tckafka "github.com/testcontainers/testcontainers-go/modules/kafka"

	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/config"
)

const testTopic = "disaster-events-test"

func startKafka(ctx context.Context, t *testing.T) string {
	t.Helper()

	container, err := tckafka.Run(ctx, "confluentinc/confluent-local:7.5.0", tckafka.WithClusterID("disaster-response"))
	require.NoError(t, err, "start kafka container")
	t.Cleanup(func() {
		_ = testcontainers.TerminateContainer(container)
	})

	brokers, err := container.Brokers(ctx)
	require.NoError(t, err)
	require.NotEmpty(t, brokers)
	return brokers[0]
}

func createTopic(t *testing.T, broker, topic string) {
	t.Helper()

	conn, err := kafkago.Dial("tcp", broker)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.CreateTopics(kafkago.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
	}))
}

func TestKafkaPublisher_RoundTrip(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	broker := startKafka(ctx, t)
	createTopic(t, broker, testTopic)

	publisher := NewKafkaPublisher(config.KafkaConfig{
		Enabled:      true,
		Brokers:      []string{broker},
		Topic:        testTopic,
		BatchTimeout: 10 * time.Millisecond,
	}, discardLogger())

	e := domain.NewReportUpdatedEvent(&domain.Report{
		ID:                 "rep-1",
		DisasterID:         "d-1",
		VerificationStatus: "Looks real.",
		VerificationLabel:  domain.LabelAuthentic,
	}, testNow)
	e.ID = "evt-1"

	require.NoError(t, publisher.Publish(ctx, e))
	require.NoError(t, publisher.Close(), "close flushes the async batch")

	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers:   []string{broker},
		Topic:     testTopic,
		Partition: 0,
		MinBytes:  1,
		MaxBytes:  1 << 20,
	})
	defer reader.Close()

	readCtx, readCancel := context.WithTimeout(ctx, 30*time.Second)
	defer readCancel()

	msg, err := reader.ReadMessage(readCtx)
	require.NoError(t, err, "read from topic")

	assert.Equal(t, "report_updated", string(msg.Key))

	headers := make(map[string]string, len(msg.Headers))
	for _, h := range msg.Headers {
		headers[h.Key] = string(h.Value)
	}
	assert.Equal(t, "report_updated", headers["event_type"])
	assert.Equal(t, "evt-1", headers["event_id"])

	var env struct {
		ID      string         `json:"id"`
		Payload map[string]any `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(msg.Value, &env))
	assert.Equal(t, "evt-1", env.ID)
	assert.Equal(t, "authentic", env.Payload["verification_label"])
}
