// Package services holds the business rules of the API: query shaping,
// identifier normalization, pagination, and the update/upsert dispatch.
// Services accept small store interfaces so they can be tested without a
// database; the concrete repositories satisfy them.
package services

import (
	"time"

	"github.com/schoollink/schoollink-api/internal/app/repositories"
	"github.com/schoollink/schoollink-api/internal/pkg/filestorage"
)

// Services bundles all service implementations for dependency injection
type Services struct {
	StudentService StudentService
	ScanService    ScanService
	SchoolService  SchoolService
	PhotoService   PhotoService
}

// NewServices wires the service layer over the repositories and storage.
func NewServices(repos *repositories.Repositories, storage filestorage.ObjectStorage, scanBatchLimit int, displayLoc *time.Location) *Services {
	return &Services{
		StudentService: NewStudentService(repos.StudentRepository),
		ScanService:    NewScanService(repos.ScanRepository, scanBatchLimit, displayLoc),
		SchoolService:  NewSchoolService(repos.SchoolRepository),
		PhotoService:   NewPhotoService(storage),
	}
}
