package store

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// clientTTL bounds how long an authorized Sheets client is reused. The
// service-account token it carries expires at 60 minutes, so the handle is
// rebuilt a little earlier on the next use.
const clientTTL = 50 * time.Minute

// SheetsStore is the Google Sheets implementation of Store. The authorized
// client and worksheet metadata are process-wide, lazily created, and
// replaced wholesale once clientTTL elapses; there is no partial
// invalidation.
type SheetsStore struct {
	spreadsheetID   string
	credentialsJSON string
	credentialsFile string
	scansSheet      string
	usersSheet      string

	mu       sync.Mutex
	svc      *sheets.Service
	sheetIDs map[string]int64 // worksheet title -> sheetId
	expires  time.Time
}

// NewSheetsStore builds a store for one spreadsheet. No connection is made
// here; credentials are resolved on first use so a dev box without them can
// still start the server.
func NewSheetsStore(spreadsheetID, credentialsJSON, credentialsFile, scansSheet, usersSheet string) *SheetsStore {
	return &SheetsStore{
		spreadsheetID:   spreadsheetID,
		credentialsJSON: credentialsJSON,
		credentialsFile: credentialsFile,
		scansSheet:      scansSheet,
		usersSheet:      usersSheet,
	}
}

func (s *SheetsStore) Scans(ctx context.Context) (Table, error) {
	return s.table(ctx, s.scansSheet)
}

func (s *SheetsStore) Users(ctx context.Context) (Table, error) {
	return s.table(ctx, s.usersSheet)
}

func (s *SheetsStore) table(ctx context.Context, title string) (Table, error) {
	svc, sheetID, err := s.conn(ctx, title)
	if err != nil {
		return nil, err
	}
	return &sheetTable{svc: svc, spreadsheetID: s.spreadsheetID, title: title, sheetID: sheetID}, nil
}

// conn returns the cached client, rebuilding it when expired or absent.
func (s *SheetsStore) conn(ctx context.Context, title string) (*sheets.Service, int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.svc == nil || time.Now().After(s.expires) {
		svc, ids, err := s.connect(ctx)
		if err != nil {
			return nil, 0, err
		}
		s.svc = svc
		s.sheetIDs = ids
		s.expires = time.Now().Add(clientTTL)
		log.Debug().Str("spreadsheet", s.spreadsheetID).Msg("sheets client established")
	}

	sheetID, ok := s.sheetIDs[title]
	if !ok {
		return nil, 0, fmt.Errorf("%w: worksheet %q not found", ErrUnavailable, title)
	}
	return s.svc, sheetID, nil
}

func (s *SheetsStore) connect(ctx context.Context) (*sheets.Service, map[string]int64, error) {
	creds := []byte(s.credentialsJSON)
	if len(creds) == 0 {
		b, err := os.ReadFile(s.credentialsFile)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: GOOGLE_CREDENTIALS_JSON unset and %s missing", ErrUnavailable, s.credentialsFile)
		}
		creds = b
	}

	svc, err := sheets.NewService(ctx,
		option.WithCredentialsJSON(creds),
		option.WithScopes(sheets.SpreadsheetsScope),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	meta, err := svc.Spreadsheets.Get(s.spreadsheetID).Fields("sheets.properties").Context(ctx).Do()
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	ids := make(map[string]int64, len(meta.Sheets))
	for _, sh := range meta.Sheets {
		if sh.Properties != nil {
			ids[sh.Properties.Title] = sh.Properties.SheetId
		}
	}
	return svc, ids, nil
}

// ── Table implementation ─────────────────────────────────────────────────────

type sheetTable struct {
	svc           *sheets.Service
	spreadsheetID string
	title         string
	sheetID       int64
}

func (t *sheetTable) Headers(ctx context.Context) ([]string, error) {
	resp, err := t.svc.Spreadsheets.Values.Get(t.spreadsheetID, t.title+"!1:1").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Values) == 0 {
		return nil, nil
	}
	return toStrings(resp.Values[0]), nil
}

func (t *sheetTable) Records(ctx context.Context) ([]Record, error) {
	resp, err := t.svc.Spreadsheets.Values.Get(t.spreadsheetID, t.title).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(resp.Values) < 2 {
		return nil, nil
	}
	headers := toStrings(resp.Values[0])
	records := make([]Record, 0, len(resp.Values)-1)
	for _, row := range resp.Values[1:] {
		fields := make(map[string]string, len(headers))
		cells := toStrings(row)
		for i, h := range headers {
			if i < len(cells) {
				fields[h] = cells[i]
			} else {
				fields[h] = ""
			}
		}
		records = append(records, Record{Fields: fields})
	}
	return records, nil
}

func (t *sheetTable) Append(ctx context.Context, fields map[string]string) error {
	headers, err := t.Headers(ctx)
	if err != nil {
		return err
	}
	row := make([]interface{}, len(headers))
	for i, h := range headers {
		row[i] = fields[h]
	}
	_, err = t.svc.Spreadsheets.Values.
		Append(t.spreadsheetID, t.title+"!A1", &sheets.ValueRange{Values: [][]interface{}{row}}).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (t *sheetTable) UpdateCell(ctx context.Context, index int, column, value string) error {
	headers, err := t.Headers(ctx)
	if err != nil {
		return err
	}
	col := -1
	for i, h := range headers {
		if h == column {
			col = i
			break
		}
	}
	if col < 0 {
		return fmt.Errorf("%w: column %q not found in %s", ErrUnavailable, column, t.title)
	}
	// Record index 0 lives at sheet row 2 (row 1 is the header).
	cell := fmt.Sprintf("%s!%s%d", t.title, columnName(col), index+2)
	_, err = t.svc.Spreadsheets.Values.
		Update(t.spreadsheetID, cell, &sheets.ValueRange{Values: [][]interface{}{{value}}}).
		ValueInputOption("RAW").
		Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func (t *sheetTable) Delete(ctx context.Context, index int) error {
	// DeleteDimension uses 0-based row indices; the header occupies row 0,
	// so record index i is dimension row i+1.
	req := &sheets.BatchUpdateSpreadsheetRequest{
		Requests: []*sheets.Request{{
			DeleteDimension: &sheets.DeleteDimensionRequest{
				Range: &sheets.DimensionRange{
					SheetId:    t.sheetID,
					Dimension:  "ROWS",
					StartIndex: int64(index + 1),
					EndIndex:   int64(index + 2),
				},
			},
		}},
	}
	_, err := t.svc.Spreadsheets.BatchUpdate(t.spreadsheetID, req).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return nil
}

func toStrings(row []interface{}) []string {
	out := make([]string, len(row))
	for i, v := range row {
		out[i] = fmt.Sprint(v)
	}
	return out
}

// columnName converts a 0-based column index to A1 letters (0 -> A, 26 -> AA).
func columnName(i int) string {
	name := ""
	for i >= 0 {
		name = string(rune('A'+i%26)) + name
		i = i/26 - 1
	}
	return name
}
