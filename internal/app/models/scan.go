package models

import "time"

// Scan mode flags as recorded by the gate hardware.
const (
	ScanModeGateIn  = 1
	ScanModeGateOut = 2
)

// Scan is one append-only gate-scan event.
type Scan struct {
	ID        int64     `json:"id" db:"id"`
	StudentID int64     `json:"studentId" db:"student_id"`
	ModeID    int16     `json:"modeId" db:"mode_id"`
	ScannedAt time.Time `json:"scannedAt" db:"scanned_at"`
}

// DailyScanStatus holds the latest gate-in/gate-out timestamps for one
// student on a given (UTC) day. A nil timestamp means no scan of that mode.
type DailyScanStatus struct {
	StudentID int64      `db:"student_id"`
	LatestIn  *time.Time `db:"latest_in"`
	LatestOut *time.Time `db:"latest_out"`
}
