// Package kafka consumes order status events from the broker and applies
// the delivery policy: bounded retries with backoff, then dead-lettering.
// Malformed messages skip the retries and dead-letter immediately.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"orderservice/internal/contracts"
	"orderservice/internal/core/domain/model/order"
	"orderservice/internal/pkg/retry"

	segmentio "github.com/segmentio/kafka-go"
)

// EventHandler processes one decoded status event. Returning an error wrapped
// in retry.ErrNonRetryable skips the remaining attempts.
type EventHandler interface {
	Handle(ctx context.Context, event order.StatusEvent) error
}

// messageReader is the part of kafka.Reader the consumer uses.
type messageReader interface {
	FetchMessage(ctx context.Context) (segmentio.Message, error)
	CommitMessages(ctx context.Context, msgs ...segmentio.Message) error
	Close() error
}

// messageWriter is the part of kafka.Writer the dead-letter path uses.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...segmentio.Message) error
}

// Consumer reads status events and hands them to an EventHandler under the
// delivery policy. A message leaves the primary topic exactly one way:
// handled successfully, or copied to the dead-letter topic. Only then is its
// offset committed, so nothing is silently dropped.
type Consumer struct {
	reader  messageReader
	dlq     messageWriter
	handler EventHandler
	policy  retry.Policy
	log     *slog.Logger
}

// NewConsumer wires a consumer over the given reader, dead-letter writer and
// handler.
func NewConsumer(
	reader messageReader,
	dlq messageWriter,
	handler EventHandler,
	policy retry.Policy,
	log *slog.Logger,
) *Consumer {
	return &Consumer{
		reader:  reader,
		dlq:     dlq,
		handler: handler,
		policy:  policy,
		log:     log,
	}
}

// Run fetches and processes messages until the context ends. Errors from a
// single message never stop the loop; the message is either dead-lettered or
// redelivered after restart.
func (c *Consumer) Run(ctx context.Context) error {
	defer func() {
		_ = c.reader.Close()
	}()

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
				return nil
			}
			return err
		}

		if err = c.deliver(ctx, msg); err != nil {
			// dead-letter write failed; leave the offset uncommitted
			// so the message is redelivered
			c.log.Error("message delivery incomplete",
				slog.String("key", string(msg.Key)), slog.Any("error", err))
			continue
		}

		if err = c.reader.CommitMessages(ctx, msg); err != nil {
			c.log.Error("commit failed", slog.Any("error", err))
		}
	}
}

// deliver applies the delivery policy to one message. A nil return means the
// message is finished with, successfully handled or dead-lettered, and its
// offset may be committed.
func (c *Consumer) deliver(ctx context.Context, msg segmentio.Message) error {
	event, err := decode(msg.Value)
	if err != nil {
		// deterministic failure, retrying cannot fix the payload
		c.log.Warn("undecodable status event",
			slog.String("key", string(msg.Key)), slog.Any("error", err))
		return c.deadLetter(ctx, msg)
	}

	err = c.policy.Do(ctx, func(ctx context.Context) error {
		return c.handler.Handle(ctx, event)
	})
	if err == nil {
		return nil
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	c.log.Warn("status event exhausted delivery attempts",
		slog.String("key", string(msg.Key)), slog.Any("error", err))
	return c.deadLetter(ctx, msg)
}

func (c *Consumer) deadLetter(ctx context.Context, msg segmentio.Message) error {
	err := c.dlq.WriteMessages(ctx, segmentio.Message{
		Key:     msg.Key,
		Value:   msg.Value,
		Headers: msg.Headers,
		Time:    msg.Time,
	})
	if err != nil {
		return fmt.Errorf("dead letter write: %w", err)
	}
	return nil
}

func decode(payload []byte) (order.StatusEvent, error) {
	var wire contracts.OrderStatusEvent
	if err := json.Unmarshal(payload, &wire); err != nil {
		return order.StatusEvent{}, err
	}
	return wire.ToStatusEvent()
}
