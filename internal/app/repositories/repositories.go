package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository *StudentRepository
	ScanRepository    *ScanRepository
	SchoolRepository  *SchoolRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository: NewStudentRepository(db),
		ScanRepository:    NewScanRepository(db),
		SchoolRepository:  NewSchoolRepository(db),
	}
}
