package jobs

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"parcellocker/internal/adapters/out/memory"
	"parcellocker/internal/core/application/usecases/commands"
	"parcellocker/internal/core/application/usecases/queries"
	"parcellocker/internal/core/domain/model/cell"
	"parcellocker/internal/core/domain/model/locker"
)

func TestOpenCellAuditJob_RunOnce(t *testing.T) {
	ctx := t.Context()

	store := memory.NewStore()
	lkr, err := locker.NewLocker(1234, []string{"C-001", "C-002"})
	require.NoError(t, err)
	require.NoError(t, store.AddLocker(lkr))

	// Leave C-001 standing open.
	setStatus := commands.NewSetCellStatusCommandHandler(store, store)
	cmd, err := commands.NewSetCellStatusCommand(1234, "C-001", cell.Open)
	require.NoError(t, err)
	require.NoError(t, setStatus.Handle(ctx, cmd))

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	job := NewOpenCellAuditJob(
		queries.NewGetLockerQueryHandler(store),
		queries.NewGetCellQueryHandler(store, store),
		[]int64{1234},
		"0 * * * * *",
		logger,
	)

	job.runOnce(ctx)

	out := buf.String()
	assert.Contains(t, out, "Cell is standing open")
	assert.Contains(t, out, "cellId=C-001")
	assert.NotContains(t, out, "cellId=C-002")
}

func TestOpenCellAuditJob_RunOnce_UnknownLockerLogged(t *testing.T) {
	ctx := t.Context()

	store := memory.NewStore()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	job := NewOpenCellAuditJob(
		queries.NewGetLockerQueryHandler(store),
		queries.NewGetCellQueryHandler(store, store),
		[]int64{9999},
		"0 * * * * *",
		logger,
	)

	job.runOnce(ctx)

	assert.Contains(t, buf.String(), "Audit could not resolve locker")
}
