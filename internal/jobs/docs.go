// Package jobs provides the scheduled background tasks of the dispatch
// service, built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. AssignOrdersJob - runs every second, dispatching the oldest pending
// order to the fastest free courier
// 2. MoveCouriersJob - runs every two seconds, advancing busy couriers and
// completing deliveries on arrival
// 3. MessageRelayJob - runs every second, publishing stored outbox messages
// to the message bus in occurrence order
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(assignHandler, moveHandler, outboxRepo, producer, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Every job is wrapped in cron's SkipIfStillRunning chain: a tick that
// outlives its interval suppresses the next one instead of running
// concurrently with itself. All ticks share a context owned by the manager;
// StopAll cancels it so in-flight database work aborts on shutdown.
//
// # Error Handling
//
//   - the assignment job ignores expected business outcomes (no pending
//     orders, no free couriers)
//   - the movement job logs all errors as they indicate system issues
//   - the relay job stops a batch at the first publish failure and retries
//     from that message next tick
//   - a failed job start stops any already running jobs
package jobs
