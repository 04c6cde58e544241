package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/schoollink/schoollink-api/internal/app/models"
	"github.com/schoollink/schoollink-api/internal/app/models/dto"
	"github.com/schoollink/schoollink-api/internal/pkg/apperrors"
	"github.com/schoollink/schoollink-api/internal/pkg/helpers"
)

// scanStore is the repository surface the scan service depends on.
type scanStore interface {
	LatestToday(ctx context.Context, studentIDs []int64) ([]models.DailyScanStatus, error)
}

// ScanService defines the interface for daily attendance scan lookups
type ScanService interface {
	Today(ctx context.Context, rawIDs []string) (*dto.ScanTodayResponse, error)
	Status(ctx context.Context, rawIDs []string) (*dto.ScanStatusResponse, error)
}

// scanServiceImpl implements the ScanService interface
type scanServiceImpl struct {
	scanRepo   scanStore
	batchLimit int
	displayLoc *time.Location
}

// NewScanService creates a new scan service instance. batchLimit caps the
// number of IDs accepted per Status request, the legacy contract; Today
// accepts batches of any size. displayLoc is the timezone used for the
// human-readable clock strings (UTC when nil).
func NewScanService(scanRepo scanStore, batchLimit int, displayLoc *time.Location) ScanService {
	if displayLoc == nil {
		displayLoc = time.UTC
	}
	return &scanServiceImpl{
		scanRepo:   scanRepo,
		batchLimit: batchLimit,
		displayLoc: displayLoc,
	}
}

// Today returns the latest gate-in and gate-out timestamps for the current
// UTC day, as RFC3339 UTC strings. Students with no scans today are omitted.
func (s *scanServiceImpl) Today(ctx context.Context, rawIDs []string) (*dto.ScanTodayResponse, error) {
	_, rows, err := s.lookup(ctx, rawIDs, 0)
	if err != nil {
		return nil, err
	}

	items := make([]dto.ScanTodayItem, 0, len(rows))
	for _, row := range rows {
		item := dto.ScanTodayItem{StudentID: row.StudentID}
		if row.LatestIn != nil {
			v := helpers.FormatUTCISO(*row.LatestIn)
			item.LatestInAt = &v
		}
		if row.LatestOut != nil {
			v := helpers.FormatUTCISO(*row.LatestOut)
			item.LatestOutAt = &v
		}
		items = append(items, item)
	}

	return &dto.ScanTodayResponse{Items: items}, nil
}

// Status returns today's scan state keyed by student ID, with an entry for
// every requested ID so callers can render unscanned students directly.
// Clock strings are formatted server-side in the display timezone.
func (s *scanServiceImpl) Status(ctx context.Context, rawIDs []string) (*dto.ScanStatusResponse, error) {
	ids, rows, err := s.lookup(ctx, rawIDs, s.batchLimit)
	if err != nil {
		return nil, err
	}

	data := make(map[string]dto.ScanStatusEntry, len(ids))
	for _, id := range ids {
		data[strconv.FormatInt(id, 10)] = dto.ScanStatusEntry{}
	}

	// found counts (student, mode) pairs, so a student scanned at both
	// gates contributes two.
	found := 0
	for _, row := range rows {
		entry := dto.ScanStatusEntry{}
		if row.LatestIn != nil {
			entry.GateIn = helpers.FormatClock12h(*row.LatestIn, s.displayLoc)
			found++
		}
		if row.LatestOut != nil {
			entry.GateOut = helpers.FormatClock12h(*row.LatestOut, s.displayLoc)
			found++
		}
		data[strconv.FormatInt(row.StudentID, 10)] = entry
	}

	return &dto.ScanStatusResponse{
		Success:        true,
		Data:           data,
		ProcessedCount: len(ids),
		ScansFound:     found,
	}, nil
}

// lookup normalizes the raw IDs and runs the shared grouped query. An empty
// batch short-circuits to an empty result without touching the database.
// limit caps the batch size when positive, zero means uncapped.
func (s *scanServiceImpl) lookup(ctx context.Context, rawIDs []string, limit int) ([]int64, []models.DailyScanStatus, error) {
	ids := NormalizeStudentIDs(rawIDs)
	if len(ids) == 0 {
		return nil, nil, nil
	}
	if limit > 0 && len(ids) > limit {
		return nil, nil, apperrors.ErrBatchTooLarge
	}

	rows, err := s.scanRepo.LatestToday(ctx, ids)
	if err != nil {
		return nil, nil, fmt.Errorf("error querying today's scans: %w", err)
	}
	return ids, rows, nil
}

// NormalizeStudentIDs trims the raw batch and coerces each entry to a
// numeric ID, dropping blanks and non-numeric values. Duplicates are kept;
// the grouped query collapses them anyway.
func NormalizeStudentIDs(rawIDs []string) []int64 {
	ids := make([]int64, 0, len(rawIDs))
	for _, raw := range rawIDs {
		raw = strings.TrimSpace(raw)
		if raw == "" {
			continue
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
