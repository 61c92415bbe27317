package infra

import (
	"context"

	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=kafka.go -destination=kafka_mock.go -package=infra

type KafkaReader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
	}
}

// NewKafkaReader joins consumerGroupID. Every gateway replica needs its own
// group so each one sees all key events.
func NewKafkaReader(brokers []string, consumerGroupID string, topic string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:     brokers,
		GroupID:     consumerGroupID,
		Topic:       topic,
		StartOffset: kafka.LastOffset,
	})
}
