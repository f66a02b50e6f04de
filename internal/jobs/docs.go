// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations behind the order lifecycle.
//
// # Available Jobs
//
// 1. StockRestorationJob - Runs every 30 seconds to release stock from
// cancelled orders whose immediate release failed.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(restoreStockHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged and retried on the next tick; individual
// restoration rows that cannot be released stay pending, so the job is
// safe to run at least once per row.
package jobs
