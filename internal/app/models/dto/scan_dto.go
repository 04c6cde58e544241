package dto

// ScanBatchRequest is the POST body for the scan lookup endpoints. IDs are
// strings on the wire because the scanning clients send whatever the badge
// reader produced; non-numeric entries are dropped during normalization.
type ScanBatchRequest struct {
	StudentIDs []string `json:"student_ids"`
}

// ScanTodayItem is one student's latest gate timestamps for the current UTC
// day, as raw RFC 3339 timestamps. Formatting for display is the client's job.
type ScanTodayItem struct {
	StudentID   int64   `json:"student_id"`
	LatestInAt  *string `json:"latestInAt,omitempty"`
	LatestOutAt *string `json:"latestOutAt,omitempty"`
}

// ScanTodayResponse lists only students that have at least one scan today.
type ScanTodayResponse struct {
	Items []ScanTodayItem `json:"items"`
}

// ScanStatusEntry carries server-side formatted 12-hour gate times. Both
// fields are empty for a student with no scans today.
type ScanStatusEntry struct {
	GateIn  string `json:"gateIn,omitempty"`
	GateOut string `json:"gateOut,omitempty"`
}

// ScanStatusResponse is the batch scan-status contract: one entry per
// requested student ID, present even when the student has no scans today.
type ScanStatusResponse struct {
	Success        bool                       `json:"success"`
	Data           map[string]ScanStatusEntry `json:"data"`
	ProcessedCount int                        `json:"processedCount"`
	ScansFound     int                        `json:"scansFound"`
}
