package service_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/redromiee/bag-tracker/internal/apierror"
	"github.com/redromiee/bag-tracker/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestExportRangeRejectsInvertedRange(t *testing.T) {
	st, _, _ := newTestStore()
	svc := service.NewExportService(st)

	_, err := svc.ExportRange(context.Background(), "2024-01-10", "2024-01-01", "BLR")
	assert.Equal(t, apierror.CodeInvalidRange, errCode(t, err))
}

func TestExportRangeRejectsSpanOverSevenDays(t *testing.T) {
	st, _, _ := newTestStore()
	svc := service.NewExportService(st)

	// 2024-01-01 .. 2024-01-09 is a 9-day inclusive span
	_, err := svc.ExportRange(context.Background(), "2024-01-01", "2024-01-09", "BLR")
	assert.Equal(t, apierror.CodeInvalidRange, errCode(t, err))

	// 8 days inclusive is the first span past the limit
	_, err = svc.ExportRange(context.Background(), "2024-01-01", "2024-01-08", "BLR")
	assert.Equal(t, apierror.CodeInvalidRange, errCode(t, err))
}

func TestExportRangeAllowsExactSevenDaySpan(t *testing.T) {
	st, scans, _ := newTestStore()
	svc := service.NewExportService(st)
	appendScan(t, scans, "2024-01-03 10:00:00", "FWD", "BIN-1", "BAG-1")

	_, err := svc.ExportRange(context.Background(), "2024-01-01", "2024-01-07", "BLR")
	assert.NoError(t, err)
}

func TestExportRangeNoDataFound(t *testing.T) {
	st, scans, _ := newTestStore()
	svc := service.NewExportService(st)
	appendScan(t, scans, "2024-02-15 10:00:00", "FWD", "BIN-1", "BAG-1")

	_, err := svc.ExportRange(context.Background(), "2024-01-01", "2024-01-07", "BLR")
	assert.Equal(t, apierror.CodeNoDataFound, errCode(t, err))
}

func TestExportRangeBuildsWorkbook(t *testing.T) {
	st, scans, _ := newTestStore()
	svc := service.NewExportService(st)

	appendScan(t, scans, "2024-01-02 10:00:00", "FWD", "BIN-1", "BAG-1")
	appendScan(t, scans, "2024-01-05 11:30:00", "RTO", "BIN-2", "BAG-2")
	appendScan(t, scans, "2024-01-20 09:00:00", "FWD", "BIN-3", "BAG-3") // outside range
	appendScan(t, scans, "", "FWD", "BIN-4", "BAG-4")                    // no date, skipped

	file, err := svc.ExportRange(context.Background(), "2024-01-01", "2024-01-07", "BLR")
	require.NoError(t, err)
	assert.Equal(t, "01-01-2024-07-01-2024_BLR.xlsx", file.Name)

	wb, err := excelize.OpenReader(bytes.NewReader(file.Content))
	require.NoError(t, err)
	defer wb.Close()

	rows, err := wb.GetRows(wb.GetSheetName(0))
	require.NoError(t, err)
	require.Len(t, rows, 3, "header plus two matching records")

	headers, err := scans.Headers(context.Background())
	require.NoError(t, err)
	assert.Equal(t, headers, rows[0], "header row follows store column order")
	assert.Equal(t, "BAG-1", rows[1][4])
	assert.Equal(t, "BAG-2", rows[2][4])
	assert.Equal(t, "RTO", rows[2][2])
}
