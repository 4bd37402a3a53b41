package jobs

import (
	"context"
	"log/slog"

	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/core/domain/model/cell"

	"github.com/robfig/cron/v3"
)

// OpenCellAuditJob periodically scans the configured lockers and logs every
// cell that is currently open. A door standing open for several audit cycles
// shows up as a repeated log line, which is the signal operators watch for.
type OpenCellAuditJob struct {
	getLockerHandler queries.GetLockerQueryHandler
	getCellHandler   queries.GetCellQueryHandler
	lockerIDs        []int64
	schedule         string
	cron             *cron.Cron
	logger           *slog.Logger
}

// NewOpenCellAuditJob creates an audit job over the given locker IDs.
// The schedule is a six-field cron expression with seconds granularity.
func NewOpenCellAuditJob(
	getLockerHandler queries.GetLockerQueryHandler,
	getCellHandler queries.GetCellQueryHandler,
	lockerIDs []int64,
	schedule string,
	logger *slog.Logger,
) *OpenCellAuditJob {
	return &OpenCellAuditJob{
		getLockerHandler: getLockerHandler,
		getCellHandler:   getCellHandler,
		lockerIDs:        lockerIDs,
		schedule:         schedule,
		cron:             cron.New(cron.WithSeconds()),
		logger:           logger.With("component", "open_cell_audit_job"),
	}
}

// Start begins the periodic audit.
func (j *OpenCellAuditJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.runOnce(context.Background())
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Open cell audit job started",
		"schedule", j.schedule, "lockers", len(j.lockerIDs))
	return nil
}

// Stop stops the audit job.
func (j *OpenCellAuditJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Open cell audit job stopped")
}

func (j *OpenCellAuditJob) runOnce(ctx context.Context) {
	for _, lockerID := range j.lockerIDs {
		j.auditLocker(ctx, lockerID)
	}
}

func (j *OpenCellAuditJob) auditLocker(ctx context.Context, lockerID int64) {
	query, err := queries.NewGetLockerQuery(lockerID)
	if err != nil {
		j.logger.ErrorContext(ctx, "Audit skipped malformed locker ID",
			"lockerId", lockerID, "error", err)
		return
	}

	lkr, err := j.getLockerHandler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Audit could not resolve locker",
			"lockerId", lockerID, "error", err)
		return
	}

	for _, cellID := range lkr.Cells {
		cellQuery, err := queries.NewGetCellQuery(lockerID, cellID)
		if err != nil {
			j.logger.ErrorContext(ctx, "Audit skipped cell",
				"lockerId", lockerID, "cellId", cellID, "error", err)
			continue
		}

		state, err := j.getCellHandler.Handle(ctx, cellQuery)
		if err != nil {
			j.logger.ErrorContext(ctx, "Audit could not read cell",
				"lockerId", lockerID, "cellId", cellID, "error", err)
			continue
		}

		if state.Status == cell.Open {
			j.logger.WarnContext(ctx, "Cell is standing open",
				"lockerId", lockerID, "cellId", cellID)
		}
	}
}
