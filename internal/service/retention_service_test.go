package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/redromiee/bag-tracker/internal/model"
	"github.com/redromiee/bag-tracker/internal/service"
	"github.com/redromiee/bag-tracker/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ago(d time.Duration) string {
	return time.Now().Add(-d).Format(model.TimestampLayout)
}

func TestCleanupOldScansDryRunReportsWithoutMutating(t *testing.T) {
	st, scans, _ := newTestStore()
	svc := service.NewRetentionService(st)

	appendScan(t, scans, ago(8*24*time.Hour), "FWD", "BIN-1", "BAG-1")  // candidate
	appendScan(t, scans, ago(2*24*time.Hour), "FWD", "BIN-2", "BAG-2")  // fresh
	appendScan(t, scans, ago(10*24*time.Hour), "RTO", "BIN-3", "BAG-3") // candidate

	report, err := svc.CleanupOldScans(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, 2, report.DeletedCount)
	require.Len(t, report.Records, 2)
	assert.Equal(t, "BAG-1", report.Records[0][model.ColBagID])
	assert.Equal(t, "BAG-3", report.Records[1][model.ColBagID])
	assert.Equal(t, 3, scans.Len(), "dry run must not touch the table")
}

func TestCleanupOldScansSkipsUnparseableTimestamps(t *testing.T) {
	st, scans, _ := newTestStore()
	svc := service.NewRetentionService(st)

	appendScan(t, scans, "not a timestamp", "FWD", "BIN-1", "BAG-1")
	appendScan(t, scans, "2019-13-45 99:00:00", "FWD", "BIN-2", "BAG-2")
	appendScan(t, scans, ago(8*24*time.Hour), "FWD", "BIN-3", "BAG-3")

	report, err := svc.CleanupOldScans(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.DeletedCount)
	assert.Equal(t, 2, scans.Len(), "unparseable rows stay put")
}

func TestCleanupOldScansDeletesAllCandidates(t *testing.T) {
	st, scans, _ := newTestStore()
	svc := service.NewRetentionService(st)

	// Candidates interleaved with fresh rows; descending-order deletion
	// must not skip or mis-target any of them.
	appendScan(t, scans, ago(9*24*time.Hour), "FWD", "BIN-1", "OLD-1")
	appendScan(t, scans, ago(time.Hour), "FWD", "BIN-2", "NEW-1")
	appendScan(t, scans, ago(8*24*time.Hour), "FWD", "BIN-3", "OLD-2")
	appendScan(t, scans, ago(2*time.Hour), "RTO", "BIN-4", "NEW-2")
	appendScan(t, scans, ago(30*24*time.Hour), "RTO", "BIN-5", "OLD-3")

	report, err := svc.CleanupOldScans(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 3, report.DeletedCount)

	records, err := scans.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "NEW-1", records[0].Fields[model.ColBagID])
	assert.Equal(t, "NEW-2", records[1].Fields[model.ColBagID])
}

func setLastLogin(t *testing.T, users *store.MemTable, index int, lastLogin string) {
	t.Helper()
	require.NoError(t, users.UpdateCell(context.Background(), index, model.ColLastLogin, lastLogin))
}

func TestCleanupInactiveUsersExemptsNeverLoggedIn(t *testing.T) {
	st, _, users := newTestStore()
	svc := service.NewRetentionService(st)

	// Ancient account that never logged in — exempt forever
	seedUser(t, users, "dormant", "secret1", "")
	require.NoError(t, users.UpdateCell(context.Background(), 0, model.ColCreatedAt, ago(365*24*time.Hour)))

	report, err := svc.CleanupInactiveUsers(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 0, report.DeletedCount)
	assert.Equal(t, 1, users.Len())
}

func TestCleanupInactiveUsersDeletesStaleAccounts(t *testing.T) {
	st, _, users := newTestStore()
	svc := service.NewRetentionService(st)

	seedUser(t, users, "stale", "secret1", model.ApprovalGranted)
	setLastLogin(t, users, 0, ago(11*24*time.Hour))
	seedUser(t, users, "active", "secret1", model.ApprovalGranted)
	setLastLogin(t, users, 1, ago(24*time.Hour))
	seedUser(t, users, "garbled", "secret1", model.ApprovalGranted)
	setLastLogin(t, users, 2, "never")

	report, err := svc.CleanupInactiveUsers(context.Background(), false)
	require.NoError(t, err)
	assert.Equal(t, 1, report.DeletedCount)
	require.Len(t, report.Records, 1)
	assert.Equal(t, "stale", report.Records[0][model.ColUsername])
	// Password hashes stay out of the report
	_, leaked := report.Records[0][model.ColPassword]
	assert.False(t, leaked)

	records, err := users.Records(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "active", records[0].Fields[model.ColUsername])
	assert.Equal(t, "garbled", records[1].Fields[model.ColUsername])
}

func TestRunCombinesBothSweeps(t *testing.T) {
	st, scans, users := newTestStore()
	svc := service.NewRetentionService(st)

	appendScan(t, scans, ago(8*24*time.Hour), "FWD", "BIN-1", "BAG-1")
	seedUser(t, users, "stale", "secret1", model.ApprovalGranted)
	setLastLogin(t, users, 0, ago(20*24*time.Hour))

	resp, err := svc.Run(context.Background(), true)
	require.NoError(t, err)
	assert.Equal(t, "success", resp.Status)
	assert.True(t, resp.DryRun)
	assert.Equal(t, 1, resp.ScanCleanup.DeletedCount)
	assert.Equal(t, 1, resp.UserCleanup.DeletedCount)
	assert.Contains(t, resp.Summary, "would delete")
	assert.Equal(t, 1, scans.Len())
	assert.Equal(t, 1, users.Len())

	resp, err = svc.Run(context.Background(), false)
	require.NoError(t, err)
	assert.False(t, resp.DryRun)
	assert.Contains(t, resp.Summary, "deleted 1 scans and 1 inactive users")
	assert.Equal(t, 0, scans.Len())
	assert.Equal(t, 0, users.Len())
}
