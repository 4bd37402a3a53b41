// Package jobs provides scheduled background tasks for the locker service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations around the locker fleet.
//
// # Available Jobs
//
// 1. OpenCellAuditJob - Periodically scans the configured lockers and logs
// every cell that is currently standing open, so that doors left ajar
// surface in the operational logs.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(getLockerHandler, getCellHandler, lockerIDs, schedule, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The audit schedule is a six-field cron expression (seconds granularity),
// configurable per deployment; the default runs once a minute.
//
// # Error Handling
//
// The audit job is read-only. Store errors are logged and the scan moves on
// to the next locker; a failing scan never affects request traffic.
package jobs
