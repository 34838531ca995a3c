// Package kafka provides the broker-facing side of event delivery: the
// outbox relay publishes through KafkaEventPublisher, and the consumer dead
// letters exhausted messages through the same writer mechanics.
package kafka

import (
	"context"
	"strings"
	"time"

	"orderservice/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// Client holds the broker list and builds writers and readers from it.
type Client struct {
	Brokers []string
}

// NewClient parses a comma-separated broker list.
func NewClient(brokersCSV string) *Client {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return &Client{Brokers: brokers}
}

// NewWriter builds a writer for the given topic. The hash balancer keys
// partitions by message key, so all events of one order stay ordered.
func (c *Client) NewWriter(topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(c.Brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
}

// NewReader builds a consumer-group reader for the given topic.
func (c *Client) NewReader(topic, groupID string) *kafka.Reader {
	return kafka.NewReader(kafka.ReaderConfig{
		Brokers:  c.Brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})
}

// messageWriter is the part of kafka.Writer the publisher uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaEventPublisher implements ports.EventPublisher on a Kafka writer.
// The outbox payload is already serialized, so publishing is a plain write
// with the order ID as partition key.
type KafkaEventPublisher struct {
	writer messageWriter
}

// NewKafkaEventPublisher creates a publisher over the given writer.
func NewKafkaEventPublisher(writer messageWriter) *KafkaEventPublisher {
	return &KafkaEventPublisher{writer: writer}
}

// Publish hands one outbox message to the broker.
func (p *KafkaEventPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(message.Key),
		Value: message.Payload,
		Time:  time.Now().UTC(),
	})
}
