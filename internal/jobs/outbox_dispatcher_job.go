package jobs

import (
	"context"
	"log/slog"

	"orderservice/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// dispatchBatchSize caps how many pending messages one tick relays.
const dispatchBatchSize = 100

// OutboxDispatcherJob relays pending outbox rows to the broker.
// Runs every second: reads unsent messages in commit order, publishes each
// and marks it sent. A failed publish stops the batch; the remaining rows
// are retried on the next tick, so delivery is at-least-once.
type OutboxDispatcherJob struct {
	outbox    ports.OutboxRepository
	publisher ports.EventPublisher
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOutboxDispatcherJob creates a job relaying the outbox to the given
// publisher every second.
func NewOutboxDispatcherJob(
	outbox ports.OutboxRepository,
	publisher ports.EventPublisher,
	logger *slog.Logger,
) *OutboxDispatcherJob {
	return &OutboxDispatcherJob{
		outbox:    outbox,
		publisher: publisher,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "outbox_dispatcher_job"),
	}
}

// Start begins the outbox dispatcher job to run every second.
func (j *OutboxDispatcherJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		if err := j.Dispatch(ctx); err != nil {
			j.logger.ErrorContext(ctx, "Outbox dispatch failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox dispatcher job started (running every second)")
	return nil
}

// Stop stops the outbox dispatcher job.
func (j *OutboxDispatcherJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox dispatcher job stopped")
}

// Dispatch relays one batch of pending messages. Exported so a shutdown hook
// or test can drain the outbox without the scheduler.
func (j *OutboxDispatcherJob) Dispatch(ctx context.Context) error {
	pending, err := j.outbox.GetPending(ctx, dispatchBatchSize)
	if err != nil {
		return err
	}

	for _, message := range pending {
		if err = j.publisher.Publish(ctx, message); err != nil {
			// keep commit order: do not skip ahead past a failed publish
			return err
		}

		if err = j.outbox.MarkSent(ctx, message.ID); err != nil {
			return err
		}
	}

	return nil
}
