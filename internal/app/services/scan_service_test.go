package services

import (
	"context"
	"errors"
	"reflect"
	"strconv"
	"testing"
	"time"

	"github.com/schoollink/schoollink-api/internal/app/models"
	"github.com/schoollink/schoollink-api/internal/pkg/apperrors"
)

type fakeScanStore struct {
	rows    []models.DailyScanStatus
	err     error
	lastIDs []int64
	calls   int
}

func (f *fakeScanStore) LatestToday(_ context.Context, studentIDs []int64) ([]models.DailyScanStatus, error) {
	f.calls++
	f.lastIDs = studentIDs
	return f.rows, f.err
}

func TestNormalizeStudentIDs(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []int64
	}{
		{"plain", []string{"1", "2", "3"}, []int64{1, 2, 3}},
		{"trims whitespace", []string{" 7 ", "8"}, []int64{7, 8}},
		{"drops blanks", []string{"", "  ", "9"}, []int64{9}},
		{"drops non-numeric", []string{"abc", "12x", "10"}, []int64{10}},
		{"drops non-positive", []string{"0", "-4", "11"}, []int64{11}},
		{"keeps duplicates", []string{"5", "5"}, []int64{5, 5}},
		{"all invalid", []string{"x", ""}, []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NormalizeStudentIDs(tt.in)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("NormalizeStudentIDs(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestScanTodayOmitsUnscannedStudents(t *testing.T) {
	in := time.Date(2026, 3, 9, 11, 30, 0, 0, time.UTC)
	store := &fakeScanStore{rows: []models.DailyScanStatus{
		{StudentID: 1, LatestIn: &in},
	}}
	svc := NewScanService(store, 200, time.UTC)

	resp, err := svc.Today(context.Background(), []string{"1", "2", "3"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(resp.Items))
	}
	item := resp.Items[0]
	if item.StudentID != 1 {
		t.Errorf("StudentID = %d", item.StudentID)
	}
	if item.LatestInAt == nil || *item.LatestInAt != "2026-03-09T11:30:00Z" {
		t.Errorf("LatestInAt = %v", item.LatestInAt)
	}
	if item.LatestOutAt != nil {
		t.Errorf("LatestOutAt should be nil, got %v", *item.LatestOutAt)
	}
}

func TestScanStatusEntryPerRequestedID(t *testing.T) {
	in := time.Date(2026, 3, 9, 7, 45, 0, 0, time.UTC)
	out := time.Date(2026, 3, 9, 14, 5, 0, 0, time.UTC)
	store := &fakeScanStore{rows: []models.DailyScanStatus{
		{StudentID: 1, LatestIn: &in, LatestOut: &out},
	}}
	svc := NewScanService(store, 200, time.UTC)

	resp, err := svc.Status(context.Background(), []string{"1", "2"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !resp.Success {
		t.Error("Success should be true")
	}
	if resp.ProcessedCount != 2 {
		t.Errorf("ProcessedCount = %d, want 2", resp.ProcessedCount)
	}
	// Both gates fired for one student: two (student, mode) pairs.
	if resp.ScansFound != 2 {
		t.Errorf("ScansFound = %d, want 2", resp.ScansFound)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected entries for both IDs, got %d", len(resp.Data))
	}
	scanned := resp.Data["1"]
	if scanned.GateIn != "7:45 AM" || scanned.GateOut != "2:05 PM" {
		t.Errorf("formatted times = %q / %q", scanned.GateIn, scanned.GateOut)
	}
	unscanned, ok := resp.Data["2"]
	if !ok {
		t.Fatal("missing entry for unscanned student")
	}
	if unscanned.GateIn != "" || unscanned.GateOut != "" {
		t.Errorf("unscanned entry should be empty, got %+v", unscanned)
	}
}

func TestScanStatusBatchLimit(t *testing.T) {
	store := &fakeScanStore{}
	svc := NewScanService(store, 2, time.UTC)

	_, err := svc.Status(context.Background(), []string{"1", "2", "3"})
	if !errors.Is(err, apperrors.ErrBatchTooLarge) {
		t.Fatalf("expected ErrBatchTooLarge, got %v", err)
	}
	if store.calls != 0 {
		t.Error("store should not be queried when the batch is over the limit")
	}

	// Invalid entries don't count against the limit.
	if _, err := svc.Status(context.Background(), []string{"1", "2", "junk", ""}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestScanTodayNotCapped(t *testing.T) {
	store := &fakeScanStore{}
	svc := NewScanService(store, 200, time.UTC)

	// The cap is part of the legacy status contract only; the today
	// endpoint takes batches of any size.
	raw := make([]string, 201)
	for i := range raw {
		raw[i] = strconv.Itoa(i + 1)
	}
	resp, err := svc.Today(context.Background(), raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(resp.Items) != 0 {
		t.Errorf("expected empty items, got %d", len(resp.Items))
	}
	if len(store.lastIDs) != 201 {
		t.Errorf("store should receive all 201 IDs, got %d", len(store.lastIDs))
	}
}

func TestScanLookupEmptyBatch(t *testing.T) {
	store := &fakeScanStore{}
	svc := NewScanService(store, 200, time.UTC)

	today, err := svc.Today(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(today.Items) != 0 {
		t.Errorf("expected empty items, got %v", today.Items)
	}

	status, err := svc.Status(context.Background(), []string{"", "abc"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.ProcessedCount != 0 || len(status.Data) != 0 {
		t.Errorf("expected empty status, got %+v", status)
	}
	if store.calls != 0 {
		t.Error("empty batches must not hit the database")
	}
}

func TestScanStatusDisplayTimezone(t *testing.T) {
	loc := time.FixedZone("AST", -4*60*60)
	in := time.Date(2026, 3, 9, 16, 0, 0, 0, time.UTC) // noon AST
	store := &fakeScanStore{rows: []models.DailyScanStatus{{StudentID: 1, LatestIn: &in}}}
	svc := NewScanService(store, 200, loc)

	resp, err := svc.Status(context.Background(), []string{"1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := resp.Data["1"].GateIn; got != "12:00 PM" {
		t.Errorf("GateIn = %q, want 12:00 PM", got)
	}
}
