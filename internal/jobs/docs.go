// Package jobs provides scheduled background tasks for the order completion
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the service.
//
// # Available Jobs
//
// 1. AutoCloseJob - Runs hourly to close delivered orders the customer never closed
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(closeStaleOrdersHandler, hours, batchSize, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The auto-close job uses the cron expression "0 0 * * * *" which fires at the
// top of every hour. Each sweep closes at most one batch of stale orders, so a
// backlog drains over successive runs.
//
// # Error Handling
//
// - Sweep failures are logged and retried on the next scheduled run
// - Failed job starts propagate to the caller so startup can abort
package jobs
