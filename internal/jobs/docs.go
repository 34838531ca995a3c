// Package jobs provides scheduled background tasks for the order service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. OutboxDispatcherJob - Runs every second to relay committed status events
// from the outbox table to the broker
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(outboxRepo, publisher, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The dispatcher uses the cron expression "* * * * * *", running every
// second. Events therefore reach the broker within about a second of the
// transaction that produced them committing.
//
// # Error Handling
//
// A failed publish aborts the current batch without marking anything sent;
// the next tick retries from the same row, preserving commit order at the
// cost of at-least-once delivery.
package jobs
