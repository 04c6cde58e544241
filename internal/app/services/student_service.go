package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/schoollink/schoollink-api/internal/app/models"
	"github.com/schoollink/schoollink-api/internal/app/models/dto"
	"github.com/schoollink/schoollink-api/internal/pkg/apperrors"
	"github.com/schoollink/schoollink-api/internal/pkg/helpers"
)

// minPartialQueryLen is the shortest free-text query accepted for substring
// search. Exact external-ID lookups are exempt.
const minPartialQueryLen = 3

// studentStore is the repository surface the student service depends on.
type studentStore interface {
	GetByID(ctx context.Context, id int64) (*models.StudentData, error)
	GetByExternalID(ctx context.Context, externalID string) (*models.StudentData, error)
	SearchByName(ctx context.Context, query string, limit, offset int) ([]models.StudentData, error)
	CountByName(ctx context.Context, query string) (int64, error)
	SearchByInstitution(ctx context.Context, query string, limit, offset int) ([]models.StudentData, error)
	CountByInstitution(ctx context.Context, query string) (int64, error)
	CountAll(ctx context.Context) (int64, error)
	ListByInstitutionCode(ctx context.Context, code string) ([]models.StudentSummary, error)
	StatsByInstitutionCode(ctx context.Context, code string) (*models.SchoolStats, error)
	UpdateByID(ctx context.Context, studentID int64, payload map[string]interface{}) (int64, error)
	UpsertByExternalID(ctx context.Context, externalID string, payload map[string]interface{}) (int64, bool, error)
}

// StudentService defines the interface for student record operations
type StudentService interface {
	Search(ctx context.Context, q string, page, limit int) (*dto.SearchResponse, error)
	SearchByInstitution(ctx context.Context, q string, page, limit int) (*dto.SearchResponse, error)
	GetByID(ctx context.Context, id int64) (*models.StudentData, error)
	Count(ctx context.Context) (int64, error)
	ListBySchool(ctx context.Context, institutionCode string) ([]models.StudentSummary, error)
	SchoolStats(ctx context.Context, institutionCode string) (*models.SchoolStats, error)
	Update(ctx context.Context, payload map[string]interface{}) (*dto.UpdateStudentResult, error)
}

// studentServiceImpl implements the StudentService interface
type studentServiceImpl struct {
	studentRepo studentStore
}

// NewStudentService creates a new student service instance
func NewStudentService(studentRepo studentStore) StudentService {
	return &studentServiceImpl{
		studentRepo: studentRepo,
	}
}

// Search resolves a free-text query against student and guardian names.
// An exact external-ID match bypasses pagination and returns that single
// record, even when the query would also match as a substring.
func (s *studentServiceImpl) Search(ctx context.Context, q string, page, limit int) (*dto.SearchResponse, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, apperrors.NewValidationError("q is required")
	}

	// Exact external-ID fast path
	student, err := s.studentRepo.GetByExternalID(ctx, q)
	if err == nil {
		return &dto.SearchResponse{
			Items:      []models.StudentData{*student},
			Total:      1,
			Page:       1,
			TotalPages: 1,
		}, nil
	}
	if !errors.Is(err, apperrors.ErrStudentNotFound) {
		return nil, fmt.Errorf("error resolving external ID: %w", err)
	}

	if len(q) < minPartialQueryLen {
		return nil, apperrors.NewValidationError("q must be at least 3 characters for partial search")
	}

	page, limit, offset := helpers.ClampPaging(page, limit)

	total, err := s.studentRepo.CountByName(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error counting search results: %w", err)
	}

	items := []models.StudentData{}
	if total > 0 {
		items, err = s.studentRepo.SearchByName(ctx, q, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("error searching students: %w", err)
		}
	}

	return &dto.SearchResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: helpers.TotalPages(total, limit),
	}, nil
}

// SearchByInstitution resolves a free-text query against institution names.
func (s *studentServiceImpl) SearchByInstitution(ctx context.Context, q string, page, limit int) (*dto.SearchResponse, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, apperrors.NewValidationError("q is required")
	}
	if len(q) < minPartialQueryLen {
		return nil, apperrors.NewValidationError("q must be at least 3 characters")
	}

	page, limit, offset := helpers.ClampPaging(page, limit)

	total, err := s.studentRepo.CountByInstitution(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("error counting institution results: %w", err)
	}

	items := []models.StudentData{}
	if total > 0 {
		items, err = s.studentRepo.SearchByInstitution(ctx, q, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("error searching by institution: %w", err)
		}
	}

	return &dto.SearchResponse{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: helpers.TotalPages(total, limit),
	}, nil
}

// GetByID retrieves one full profile by primary key
func (s *studentServiceImpl) GetByID(ctx context.Context, id int64) (*models.StudentData, error) {
	if id <= 0 {
		return nil, apperrors.NewValidationError("student ID must be a positive number")
	}

	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, apperrors.ErrStudentNotFound) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}
	return student, nil
}

// Count returns the total number of student records
func (s *studentServiceImpl) Count(ctx context.Context) (int64, error) {
	total, err := s.studentRepo.CountAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}
	return total, nil
}

// ListBySchool returns the full roster projection for one institution
func (s *studentServiceImpl) ListBySchool(ctx context.Context, institutionCode string) ([]models.StudentSummary, error) {
	institutionCode = strings.TrimSpace(institutionCode)
	if institutionCode == "" {
		return nil, apperrors.NewValidationError("institutionCode is required")
	}

	students, err := s.studentRepo.ListByInstitutionCode(ctx, institutionCode)
	if err != nil {
		return nil, fmt.Errorf("error listing students by school: %w", err)
	}
	return students, nil
}

// SchoolStats computes the headcount and gender breakdown for one institution
func (s *studentServiceImpl) SchoolStats(ctx context.Context, institutionCode string) (*models.SchoolStats, error) {
	institutionCode = strings.TrimSpace(institutionCode)
	if institutionCode == "" {
		return nil, apperrors.NewValidationError("institutionCode is required")
	}

	stats, err := s.studentRepo.StatsByInstitutionCode(ctx, institutionCode)
	if err != nil {
		return nil, fmt.Errorf("error computing school stats: %w", err)
	}
	return stats, nil
}

// Update applies an allow-listed mutation. A payload carrying StudentID
// updates that row directly (zero affected rows is reported, not an error).
// A payload carrying only StudentOpenEMIS_ID is an atomic upsert keyed on
// the external ID. A payload carrying neither fails validation.
func (s *studentServiceImpl) Update(ctx context.Context, payload map[string]interface{}) (*dto.UpdateStudentResult, error) {
	if studentID, ok := payloadInt64(payload["StudentID"]); ok {
		affected, err := s.studentRepo.UpdateByID(ctx, studentID, payload)
		if err != nil {
			if errors.Is(err, apperrors.ErrNoUpdatableFields) {
				return nil, apperrors.NewValidationError("no updatable fields in payload")
			}
			return nil, fmt.Errorf("error updating student: %w", err)
		}
		return &dto.UpdateStudentResult{
			Status:       "updated",
			AffectedRows: &affected,
			StudentID:    studentID,
		}, nil
	}

	if externalID, ok := payloadString(payload["StudentOpenEMIS_ID"]); ok {
		studentID, inserted, err := s.studentRepo.UpsertByExternalID(ctx, externalID, payload)
		if err != nil {
			return nil, fmt.Errorf("error upserting student: %w", err)
		}

		if inserted {
			return &dto.UpdateStudentResult{
				Status:    "inserted",
				InsertID:  &studentID,
				StudentID: studentID,
			}, nil
		}

		one := int64(1)
		return &dto.UpdateStudentResult{
			Status:       "updated",
			AffectedRows: &one,
			StudentID:    studentID,
		}, nil
	}

	return nil, apperrors.NewValidationError("StudentID or StudentOpenEMIS_ID is required")
}

// payloadInt64 coerces the loosely-typed JSON identifier field to an int64.
func payloadInt64(v interface{}) (int64, bool) {
	switch n := v.(type) {
	case nil:
		return 0, false
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	case json.Number:
		id, err := n.Int64()
		return id, err == nil
	case string:
		id, err := strconv.ParseInt(strings.TrimSpace(n), 10, 64)
		return id, err == nil
	default:
		return 0, false
	}
}

// payloadString extracts a non-empty trimmed string field.
func payloadString(v interface{}) (string, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	s = strings.TrimSpace(s)
	return s, s != ""
}
