package service

import (
	"context"
	"time"

	"github.com/redromiee/bag-tracker/internal/apierror"
	"github.com/redromiee/bag-tracker/internal/dto"
	"github.com/redromiee/bag-tracker/internal/model"
	"github.com/redromiee/bag-tracker/internal/store"

	"github.com/rs/zerolog/log"
)

type ScanService interface {
	RecordScan(ctx context.Context, req dto.ScanRequest) (*model.ScanRecord, error)
	DeleteScan(ctx context.Context, req dto.ScanRequest) error
}

type scanService struct {
	store     store.Store
	binColumn string
}

func NewScanService(st store.Store, binColumn string) ScanService {
	return &scanService{store: st, binColumn: binColumn}
}

func (s *scanService) RecordScan(ctx context.Context, req dto.ScanRequest) (*model.ScanRecord, error) {
	now := time.Now()
	rec := &model.ScanRecord{
		Timestamp: now.Format(model.TimestampLayout),
		Date:      now.Format(model.DateLayout),
		ScanType:  req.ScanType,
		BinID:     req.BinID,
		BagID:     req.BagID,
		Status:    "Scanned",
	}

	scans, err := s.store.Scans(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	err = scans.Append(ctx, map[string]string{
		model.ColTimestamp: rec.Timestamp,
		model.ColDate:      rec.Date,
		model.ColScanType:  rec.ScanType,
		s.binColumn:        rec.BinID,
		model.ColBagID:     rec.BagID,
		model.ColStatus:    rec.Status,
	})
	if err != nil {
		return nil, storeError(err)
	}

	log.Info().
		Str("scan_type", rec.ScanType).
		Str("bin_id", rec.BinID).
		Str("bag_id", rec.BagID).
		Msg("scan recorded")
	return rec, nil
}

// DeleteScan removes the most recently appended row matching the request.
// At most one row goes per call, even when several match.
func (s *scanService) DeleteScan(ctx context.Context, req dto.ScanRequest) error {
	scans, err := s.store.Scans(ctx)
	if err != nil {
		return storeError(err)
	}
	records, err := scans.Records(ctx)
	if err != nil {
		return storeError(err)
	}

	for i := len(records) - 1; i >= 0; i-- {
		f := records[i].Fields
		if f[s.binColumn] == req.BinID && f[model.ColBagID] == req.BagID && f[model.ColScanType] == req.ScanType {
			if err := scans.Delete(ctx, i); err != nil {
				return storeError(err)
			}
			log.Info().
				Str("scan_type", req.ScanType).
				Str("bin_id", req.BinID).
				Str("bag_id", req.BagID).
				Msg("scan deleted")
			return nil
		}
	}
	return apierror.New(apierror.CodeRecordNotFound, "no matching scan found")
}
