package store

import (
	"context"
	"fmt"
	"sync"
)

// MemStore is the in-memory Store used by tests. Semantics mirror the sheet
// tables: header row fixed at creation, 0-based record indices, deletes
// shift later rows.
type MemStore struct {
	scans *MemTable
	users *MemTable
}

func NewMemStore(scans, users *MemTable) *MemStore {
	return &MemStore{scans: scans, users: users}
}

func (s *MemStore) Scans(ctx context.Context) (Table, error) { return s.scans, nil }
func (s *MemStore) Users(ctx context.Context) (Table, error) { return s.users, nil }

// MemTable is an in-memory Table.
type MemTable struct {
	mu      sync.Mutex
	headers []string
	rows    [][]string
}

func NewMemTable(headers []string) *MemTable {
	return &MemTable{headers: headers}
}

func (t *MemTable) Headers(ctx context.Context) ([]string, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]string, len(t.headers))
	copy(out, t.headers)
	return out, nil
}

func (t *MemTable) Records(ctx context.Context) ([]Record, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	records := make([]Record, len(t.rows))
	for i, row := range t.rows {
		fields := make(map[string]string, len(t.headers))
		for j, h := range t.headers {
			fields[h] = row[j]
		}
		records[i] = Record{Fields: fields}
	}
	return records, nil
}

func (t *MemTable) Append(ctx context.Context, fields map[string]string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	row := make([]string, len(t.headers))
	for i, h := range t.headers {
		row[i] = fields[h]
	}
	t.rows = append(t.rows, row)
	return nil
}

func (t *MemTable) UpdateCell(ctx context.Context, index int, column, value string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if index < 0 || index >= len(t.rows) {
		return fmt.Errorf("record index %d out of range", index)
	}
	for i, h := range t.headers {
		if h == column {
			t.rows[index][i] = value
			return nil
		}
	}
	return fmt.Errorf("column %q not found", column)
}

func (t *MemTable) Delete(ctx context.Context, index int) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if index < 0 || index >= len(t.rows) {
		return fmt.Errorf("record index %d out of range", index)
	}
	t.rows = append(t.rows[:index], t.rows[index+1:]...)
	return nil
}

// Len reports the current number of data rows.
func (t *MemTable) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.rows)
}
