package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redromiee/bag-tracker/internal/apierror"
	"github.com/redromiee/bag-tracker/internal/model"
	"github.com/redromiee/bag-tracker/internal/store"

	"github.com/xuri/excelize/v2"
)

// maxExportSpan is the widest inclusive date range a single export may
// cover: 7 days, i.e. end at most 6 days after start.
const maxExportSpan = 6 * 24 * time.Hour

// ExportFile is a generated workbook ready to stream to the client.
type ExportFile struct {
	Name    string
	Content []byte
}

type ExportService interface {
	ExportRange(ctx context.Context, startDate, endDate, branch string) (*ExportFile, error)
}

type exportService struct {
	store store.Store
}

func NewExportService(st store.Store) ExportService {
	return &exportService{store: st}
}

func (s *exportService) ExportRange(ctx context.Context, startDate, endDate, branch string) (*ExportFile, error) {
	start, err := time.ParseInLocation(model.DateLayout, startDate, time.Local)
	if err != nil {
		return nil, apierror.New(apierror.CodeInvalidRange, "start_date must be YYYY-MM-DD")
	}
	end, err := time.ParseInLocation(model.DateLayout, endDate, time.Local)
	if err != nil {
		return nil, apierror.New(apierror.CodeInvalidRange, "end_date must be YYYY-MM-DD")
	}
	if start.After(end) {
		return nil, apierror.New(apierror.CodeInvalidRange, "start_date is after end_date")
	}
	if end.Sub(start) > maxExportSpan {
		return nil, apierror.New(apierror.CodeInvalidRange, "date range exceeds 7 days")
	}

	scans, err := s.store.Scans(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	headers, err := scans.Headers(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	records, err := scans.Records(ctx)
	if err != nil {
		return nil, storeError(err)
	}

	var matched []store.Record
	for _, r := range records {
		d, err := time.ParseInLocation(model.DateLayout, r.Fields[model.ColDate], time.Local)
		if err != nil {
			// Rows without a usable date are skipped silently.
			continue
		}
		if !d.Before(start) && !d.After(end) {
			matched = append(matched, r)
		}
	}
	if len(matched) == 0 {
		return nil, apierror.New(apierror.CodeNoDataFound, "no scans in the requested range")
	}

	content, err := buildWorkbook(headers, matched)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%s-%s_%s.xlsx", start.Format("02-01-2006"), end.Format("02-01-2006"), branch)
	return &ExportFile{Name: name, Content: content}, nil
}

// buildWorkbook writes the header row followed by one row per record, cells
// in store column order, missing fields as empty strings.
func buildWorkbook(headers []string, records []store.Record) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	headerRow := make([]interface{}, len(headers))
	for i, h := range headers {
		headerRow[i] = h
	}
	if err := f.SetSheetRow(sheet, "A1", &headerRow); err != nil {
		return nil, err
	}

	for i, r := range records {
		row := make([]interface{}, len(headers))
		for j, h := range headers {
			row[j] = r.Fields[h]
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
