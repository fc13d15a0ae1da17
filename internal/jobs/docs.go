// Package jobs provides scheduled background tasks for the storefront.
//
// Jobs are cron-based (github.com/robfig/cron/v3, six-field specs with seconds) and
// drive command handlers the same way the HTTP adapter does.
//
// # Available Jobs
//
// OrderExpiryJob cancels PENDING and AWAITING_PAYMENT orders older than the payment
// timeout and returns their reserved stock. Overlapping ticks are skipped.
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(cancelExpiredHandler, jobs.ExpirySettings{
//		Schedule:       "0 * * * * *",
//		PaymentTimeout: 30 * time.Minute,
//		BatchSize:      100,
//	}, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal(err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick. Orders changed by an admin
// while the pass runs are skipped by the handler.
package jobs
