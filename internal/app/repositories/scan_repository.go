package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoollink/schoollink-api/internal/app/models"
)

// ScanRepository handles database operations for gate-scan events
type ScanRepository struct {
	db *pgxpool.Pool
}

// NewScanRepository creates a new scan repository
func NewScanRepository(db *pgxpool.Pool) *ScanRepository {
	return &ScanRepository{
		db: db,
	}
}

// LatestToday resolves the latest gate-in and gate-out timestamps for each
// requested student, restricted to rows whose UTC date is today. One grouped
// aggregate query regardless of batch size; students with no scans today are
// absent from the result.
func (r *ScanRepository) LatestToday(ctx context.Context, studentIDs []int64) ([]models.DailyScanStatus, error) {
	if len(studentIDs) == 0 {
		return nil, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT student_id,
			MAX(scanned_at) FILTER (WHERE mode_id = $2) AS latest_in,
			MAX(scanned_at) FILTER (WHERE mode_id = $3) AS latest_out
		FROM scans
		WHERE student_id = ANY($1)
			AND mode_id IN ($2, $3)
			AND (scanned_at AT TIME ZONE 'UTC')::date = (now() AT TIME ZONE 'UTC')::date
		GROUP BY student_id
		ORDER BY student_id`,
		studentIDs, models.ScanModeGateIn, models.ScanModeGateOut)
	if err != nil {
		return nil, fmt.Errorf("error querying daily scans: %w", err)
	}

	statuses, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.DailyScanStatus])
	if err != nil {
		return nil, fmt.Errorf("error scanning daily scan rows: %w", err)
	}

	return statuses, nil
}

// Record appends one gate-scan event. The scan feed is written by the gate
// hardware integration; inside this service only the development seeder
// creates rows.
func (r *ScanRepository) Record(ctx context.Context, scan *models.Scan) error {
	err := r.db.QueryRow(ctx, `
		INSERT INTO scans (student_id, mode_id, scanned_at)
		VALUES ($1, $2, $3)
		RETURNING id`,
		scan.StudentID, scan.ModeID, scan.ScannedAt).Scan(&scan.ID)
	if err != nil {
		return fmt.Errorf("error recording scan: %w", err)
	}

	return nil
}
