package dto

import "github.com/schoollink/schoollink-api/internal/app/models"

// SearchResponse is the paginated result envelope shared by the free-text
// search and the by-institution search.
type SearchResponse struct {
	Items      []models.StudentData `json:"items"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"totalPages"`
}

// StudentListResponse is the by-school listing. The roster is never
// paginated, so Page and TotalPages are the constant single page; the
// fields keep the shape interchangeable with SearchResponse for callers.
type StudentListResponse struct {
	Items      []models.StudentSummary `json:"items"`
	Total      int64                   `json:"total"`
	Page       int                     `json:"page"`
	TotalPages int                     `json:"totalPages"`
}

// StudentResponse wraps a single full profile.
type StudentResponse struct {
	Student *models.StudentData `json:"student"`
}

// CountResponse reports the total number of student records.
type CountResponse struct {
	TotalRecords int64 `json:"totalRecords"`
}

// SchoolListResponse is the de-duplicated institution listing.
type SchoolListResponse struct {
	Schools []models.SchoolSummary `json:"schools"`
}

// UpdateStudentResult reports the outcome of the update/insert operation.
// Status is "updated" or "inserted"; AffectedRows accompanies updates
// (and may be 0 when the target row does not exist), InsertID accompanies
// inserts.
type UpdateStudentResult struct {
	Status       string `json:"status"`
	AffectedRows *int64 `json:"affectedRows,omitempty"`
	InsertID     *int64 `json:"insertId,omitempty"`
	StudentID    int64  `json:"StudentID"`
}
