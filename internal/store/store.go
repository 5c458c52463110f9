// Package store owns all access to the spreadsheet backing the service.
// Nothing outside this package computes row offsets or touches the sheet
// directly; callers work with 0-based record indices and header-keyed
// field maps.
package store

import (
	"context"
	"errors"
)

// ErrUnavailable is returned when the store cannot be reached, including
// the case where no credentials are configured at all.
var ErrUnavailable = errors.New("store unavailable")

// Record is one data row of a table, keyed by header name. The first sheet
// row is the header and is never part of Records; record index i maps to
// sheet row i+2.
type Record struct {
	Fields map[string]string
}

// Table is the contract for a single worksheet.
type Table interface {
	// Headers returns the header row in sheet column order.
	Headers(ctx context.Context) ([]string, error)
	// Records returns all data rows in sheet order.
	Records(ctx context.Context) ([]Record, error)
	// Append adds one row, placing each field under its header column.
	// Fields without a matching header are dropped.
	Append(ctx context.Context, fields map[string]string) error
	// UpdateCell writes a single cell addressed by record index and
	// header name.
	UpdateCell(ctx context.Context, index int, column, value string) error
	// Delete removes the row at the given record index. Indices of later
	// records shift down by one.
	Delete(ctx context.Context, index int) error
}

// Store hands out the two tables of the backing spreadsheet.
type Store interface {
	Scans(ctx context.Context) (Table, error)
	Users(ctx context.Context) (Table, error)
}
