package services

import (
	"context"
	"fmt"

	"github.com/schoollink/schoollink-api/internal/app/models"
)

// schoolStore is the repository surface the school service depends on.
type schoolStore interface {
	ListDistinct(ctx context.Context) ([]models.SchoolSummary, error)
}

// SchoolService defines the interface for institution directory operations
type SchoolService interface {
	List(ctx context.Context) ([]models.SchoolSummary, error)
}

// schoolServiceImpl implements the SchoolService interface
type schoolServiceImpl struct {
	schoolRepo schoolStore
}

// NewSchoolService creates a new school service instance
func NewSchoolService(schoolRepo schoolStore) SchoolService {
	return &schoolServiceImpl{
		schoolRepo: schoolRepo,
	}
}

// List returns the distinct institutions found in the student records,
// one entry per institution code. When the data carries conflicting rows
// for a code, the first row in name order wins.
func (s *schoolServiceImpl) List(ctx context.Context) ([]models.SchoolSummary, error) {
	rows, err := s.schoolRepo.ListDistinct(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing schools: %w", err)
	}

	seen := make(map[string]struct{}, len(rows))
	schools := make([]models.SchoolSummary, 0, len(rows))
	for _, row := range rows {
		if _, ok := seen[row.InstitutionCode]; ok {
			continue
		}
		seen[row.InstitutionCode] = struct{}{}
		schools = append(schools, row)
	}
	return schools, nil
}
