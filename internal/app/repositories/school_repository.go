package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoollink/schoollink-api/internal/app/models"
)

// SchoolRepository derives institution views from the denormalized
// student_data rows.
type SchoolRepository struct {
	db *pgxpool.Pool
}

// NewSchoolRepository creates a new school repository
func NewSchoolRepository(db *pgxpool.Pool) *SchoolRepository {
	return &SchoolRepository{
		db: db,
	}
}

// ListDistinct returns the distinct institution projection for rows with a
// non-empty code and name, ordered by institution name. The same code can
// still appear more than once when other projected columns differ; the
// service layer de-duplicates by code.
func (r *SchoolRepository) ListDistinct(ctx context.Context) ([]models.SchoolSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT DISTINCT institution_code, institution_name, type, sector, locality, area_education
		FROM student_data
		WHERE COALESCE(institution_code, '') <> '' AND COALESCE(institution_name, '') <> ''
		ORDER BY institution_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("error listing schools: %w", err)
	}

	schools, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.SchoolSummary])
	if err != nil {
		return nil, fmt.Errorf("error scanning schools: %w", err)
	}

	return schools, nil
}
