package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestColumnName(t *testing.T) {
	cases := map[int]string{
		0:  "A",
		1:  "B",
		25: "Z",
		26: "AA",
		27: "AB",
		51: "AZ",
		52: "BA",
	}
	for idx, want := range cases {
		assert.Equal(t, want, columnName(idx))
	}
}

func TestMemTableDeleteShiftsLaterRows(t *testing.T) {
	tbl := NewMemTable([]string{"ID", "Value"})
	ctx := context.Background()

	for _, id := range []string{"1", "2", "3"} {
		require.NoError(t, tbl.Append(ctx, map[string]string{"ID": id, "Value": "v" + id}))
	}

	require.NoError(t, tbl.Delete(ctx, 0))

	records, err := tbl.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "2", records[0].Fields["ID"])
	assert.Equal(t, "3", records[1].Fields["ID"])
}

func TestMemTableAppendDropsUnknownFields(t *testing.T) {
	tbl := NewMemTable([]string{"ID"})
	ctx := context.Background()

	require.NoError(t, tbl.Append(ctx, map[string]string{"ID": "1", "Ghost": "x"}))

	records, err := tbl.Records(ctx)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, map[string]string{"ID": "1"}, records[0].Fields)
}

func TestMemTableUpdateCellUnknownColumn(t *testing.T) {
	tbl := NewMemTable([]string{"ID"})
	ctx := context.Background()
	require.NoError(t, tbl.Append(ctx, map[string]string{"ID": "1"}))

	assert.Error(t, tbl.UpdateCell(ctx, 0, "Ghost", "x"))
	assert.Error(t, tbl.UpdateCell(ctx, 5, "ID", "x"))
}
