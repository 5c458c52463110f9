package service

import (
	"context"
	"fmt"
	"time"

	"github.com/redromiee/bag-tracker/internal/dto"
	"github.com/redromiee/bag-tracker/internal/model"
	"github.com/redromiee/bag-tracker/internal/store"

	"github.com/rs/zerolog/log"
)

// Retention windows. Scans are kept for 7 days; accounts that have logged
// in at least once and then gone quiet for 10 days are removed. Accounts
// that never logged in are exempt regardless of age.
const (
	scanRetention = 7 * 24 * time.Hour
	userRetention = 10 * 24 * time.Hour
)

type RetentionService interface {
	CleanupOldScans(ctx context.Context, dryRun bool) (*dto.CleanupReport, error)
	CleanupInactiveUsers(ctx context.Context, dryRun bool) (*dto.CleanupReport, error)
	Run(ctx context.Context, dryRun bool) (*dto.CleanupResponse, error)
}

type retentionService struct {
	store store.Store
}

func NewRetentionService(st store.Store) RetentionService {
	return &retentionService{store: st}
}

func (s *retentionService) CleanupOldScans(ctx context.Context, dryRun bool) (*dto.CleanupReport, error) {
	scans, err := s.store.Scans(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	cutoff := time.Now().Add(-scanRetention)
	return s.sweep(ctx, scans, dryRun, func(f map[string]string) bool {
		ts, err := time.ParseInLocation(model.TimestampLayout, f[model.ColTimestamp], time.Local)
		if err != nil {
			// Unparseable timestamps are left alone rather than deleted.
			return false
		}
		return ts.Before(cutoff)
	}, nil)
}

func (s *retentionService) CleanupInactiveUsers(ctx context.Context, dryRun bool) (*dto.CleanupReport, error) {
	users, err := s.store.Users(ctx)
	if err != nil {
		return nil, storeError(err)
	}
	cutoff := time.Now().Add(-userRetention)
	return s.sweep(ctx, users, dryRun, func(f map[string]string) bool {
		last := f[model.ColLastLogin]
		if last == "" {
			// Never-logged-in accounts are exempt.
			return false
		}
		ts, err := time.ParseInLocation(model.TimestampLayout, last, time.Local)
		if err != nil {
			return false
		}
		return ts.Before(cutoff)
	}, []string{model.ColPassword})
}

// sweep collects candidate rows, reports them, and unless dryRun deletes
// them in descending row order so earlier deletions never shift the index
// of a later one. Columns named in redact are dropped from the report.
func (s *retentionService) sweep(ctx context.Context, table store.Table, dryRun bool, old func(map[string]string) bool, redact []string) (*dto.CleanupReport, error) {
	records, err := table.Records(ctx)
	if err != nil {
		return nil, storeError(err)
	}

	var indices []int
	var reported []map[string]string
	for i, r := range records {
		if !old(r.Fields) {
			continue
		}
		indices = append(indices, i)
		fields := make(map[string]string, len(r.Fields))
		for k, v := range r.Fields {
			fields[k] = v
		}
		for _, col := range redact {
			delete(fields, col)
		}
		reported = append(reported, fields)
	}

	if !dryRun {
		for i := len(indices) - 1; i >= 0; i-- {
			if err := table.Delete(ctx, indices[i]); err != nil {
				return nil, storeError(err)
			}
		}
		log.Info().Int("deleted", len(indices)).Msg("retention sweep applied")
	}

	return &dto.CleanupReport{
		DeletedCount: len(indices),
		Records:      reported,
	}, nil
}

func (s *retentionService) Run(ctx context.Context, dryRun bool) (*dto.CleanupResponse, error) {
	scanReport, err := s.CleanupOldScans(ctx, dryRun)
	if err != nil {
		return nil, err
	}
	userReport, err := s.CleanupInactiveUsers(ctx, dryRun)
	if err != nil {
		return nil, err
	}

	verb := "deleted"
	if dryRun {
		verb = "would delete"
	}
	return &dto.CleanupResponse{
		Status:      "success",
		DryRun:      dryRun,
		ScanCleanup: *scanReport,
		UserCleanup: *userReport,
		Summary:     fmt.Sprintf("%s %d scans and %d inactive users", verb, scanReport.DeletedCount, userReport.DeletedCount),
	}, nil
}
