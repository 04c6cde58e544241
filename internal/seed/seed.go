package seed

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	appModels "github.com/schoollink/schoollink-api/internal/app/models"
	appRepos "github.com/schoollink/schoollink-api/internal/app/repositories"
)

// sampleStudents is a small development roster spanning two institutions.
var sampleStudents = []map[string]interface{}{
	{
		"StudentOpenEMIS_ID": "2023001001",
		"StudentName":        "Aaliyah Thomas",
		"Gender":             "Female",
		"EducationGrade":     "Grade 5",
		"ClassName":          "5A",
		"InstitutionCode":    "SCH001",
		"InstitutionName":    "Central Primary School",
		"Type":               "Primary",
		"Sector":             "Government",
		"MotherName":         "Denise Thomas",
		"StudentStatus":      "Enrolled",
	},
	{
		"StudentOpenEMIS_ID": "2023001002",
		"StudentName":        "Marcus Joseph",
		"Gender":             "Male",
		"EducationGrade":     "Grade 5",
		"ClassName":          "5A",
		"InstitutionCode":    "SCH001",
		"InstitutionName":    "Central Primary School",
		"Type":               "Primary",
		"Sector":             "Government",
		"FatherName":         "Winston Joseph",
		"StudentStatus":      "Enrolled",
	},
	{
		"StudentOpenEMIS_ID": "2023001003",
		"StudentName":        "Shania Baptiste",
		"Gender":             "Female",
		"EducationGrade":     "Grade 6",
		"ClassName":          "6B",
		"InstitutionCode":    "SCH001",
		"InstitutionName":    "Central Primary School",
		"Type":               "Primary",
		"Sector":             "Government",
		"GuardianName":       "Joan Baptiste",
		"StudentStatus":      "Enrolled",
	},
	{
		"StudentOpenEMIS_ID": "2023002001",
		"StudentName":        "Kyle Alexander",
		"Gender":             "Male",
		"EducationGrade":     "Form 2",
		"ClassName":          "2 Science",
		"InstitutionCode":    "SCH002",
		"InstitutionName":    "Northern Secondary School",
		"Type":               "Secondary",
		"Sector":             "Government",
		"MotherName":         "Patricia Alexander",
		"StudentStatus":      "Enrolled",
	},
	{
		"StudentOpenEMIS_ID": "2023002002",
		"StudentName":        "Renee Charles",
		"Gender":             "Female",
		"EducationGrade":     "Form 3",
		"ClassName":          "3 Arts",
		"InstitutionCode":    "SCH002",
		"InstitutionName":    "Northern Secondary School",
		"Type":               "Secondary",
		"Sector":             "Government",
		"FatherName":         "Lennox Charles",
		"StudentStatus":      "Enrolled",
	},
}

// CreateSampleData inserts a development roster and a few gate scans for
// today, but only when the student table is still empty.
func CreateSampleData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	studentRepo := appRepos.NewStudentRepository(dbPool)
	scanRepo := appRepos.NewScanRepository(dbPool)

	total, err := studentRepo.CountAll(ctx)
	if err != nil {
		return err
	}
	if total > 0 {
		lgr.Debug().Int64("students", total).Msg("Student table already populated, skipping sample data")
		return nil
	}

	lgr.Info().Msg("Creating development sample data...")
	var finalErr error

	var studentIDs []int64
	for _, payload := range sampleStudents {
		externalID := payload["StudentOpenEMIS_ID"].(string)
		studentID, _, err := studentRepo.UpsertByExternalID(ctx, externalID, payload)
		if err != nil {
			lgr.Error().Err(err).Str("externalID", externalID).Msg("Error creating sample student")
			finalErr = errors.Join(finalErr, err)
			continue
		}
		studentIDs = append(studentIDs, studentID)
	}

	// Morning gate-in for everyone, plus one early gate-out.
	now := time.Now().UTC()
	morning := time.Date(now.Year(), now.Month(), now.Day(), 7, 45, 0, 0, time.UTC)
	for i, studentID := range studentIDs {
		scan := &appModels.Scan{
			StudentID: studentID,
			ModeID:    appModels.ScanModeGateIn,
			ScannedAt: morning.Add(time.Duration(i) * time.Minute),
		}
		if err := scanRepo.Record(ctx, scan); err != nil {
			lgr.Error().Err(err).Int64("studentID", studentID).Msg("Error creating sample scan")
			finalErr = errors.Join(finalErr, err)
		}
	}
	if len(studentIDs) > 0 {
		out := &appModels.Scan{
			StudentID: studentIDs[0],
			ModeID:    appModels.ScanModeGateOut,
			ScannedAt: time.Date(now.Year(), now.Month(), now.Day(), 12, 30, 0, 0, time.UTC),
		}
		if err := scanRepo.Record(ctx, out); err != nil {
			lgr.Error().Err(err).Msg("Error creating sample gate-out scan")
			finalErr = errors.Join(finalErr, err)
		}
	}

	lgr.Info().Int("students", len(studentIDs)).Msg("Development sample data created")
	return finalErr
}
