package jobs

import (
	"fmt"
	"log/slog"

	"parcellocker/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	openCellAuditJob *OpenCellAuditJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	getLockerHandler queries.GetLockerQueryHandler,
	getCellHandler queries.GetCellQueryHandler,
	lockerIDs []int64,
	auditSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		openCellAuditJob: NewOpenCellAuditJob(
			getLockerHandler, getCellHandler, lockerIDs, auditSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.openCellAuditJob.Start(); err != nil {
		return fmt.Errorf("failed to start open cell audit job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.openCellAuditJob.Stop()
}
