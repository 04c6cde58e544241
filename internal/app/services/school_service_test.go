package services

import (
	"context"
	"testing"

	"github.com/schoollink/schoollink-api/internal/app/models"
)

type fakeSchoolStore struct {
	rows []models.SchoolSummary
}

func (f *fakeSchoolStore) ListDistinct(_ context.Context) ([]models.SchoolSummary, error) {
	return f.rows, nil
}

func TestSchoolListDedupByCode(t *testing.T) {
	store := &fakeSchoolStore{rows: []models.SchoolSummary{
		{InstitutionCode: "SCH001", InstitutionName: "Central Primary School"},
		{InstitutionCode: "SCH001", InstitutionName: "Central Primary School (old name)"},
		{InstitutionCode: "SCH002", InstitutionName: "Northern Secondary School"},
	}}
	svc := NewSchoolService(store)

	schools, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(schools) != 2 {
		t.Fatalf("expected 2 schools, got %d", len(schools))
	}
	// First occurrence wins when a code repeats with conflicting rows.
	if schools[0].InstitutionName != "Central Primary School" {
		t.Errorf("first row should win: %q", schools[0].InstitutionName)
	}
	if schools[1].InstitutionCode != "SCH002" {
		t.Errorf("unexpected second school: %+v", schools[1])
	}
}

func TestSchoolListEmpty(t *testing.T) {
	svc := NewSchoolService(&fakeSchoolStore{})

	schools, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if schools == nil || len(schools) != 0 {
		t.Errorf("expected empty slice, got %v", schools)
	}
}
