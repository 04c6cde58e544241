package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/schoollink/schoollink-api/internal/app/models"
	"github.com/schoollink/schoollink-api/internal/pkg/apperrors"
)

// studentColumns is the full column list of student_data, matching the
// db tags on models.StudentData.
const studentColumns = `student_id, institution_code, institution_name, ownewship, type, sector,
	provider, locality, area_education_code, area_education, area_administrative_code,
	area_administrative, education_grade, academic_period, start_date, end_date, class_name,
	last_grade_level_enrolled, previous_school, student_openemis_id, student_name,
	student_status, gender, date_of_birth, age, preferred_nationality, all_nationalities,
	default_identitytype, identity_number, risk_index, extra_activities, address, nib2,
	mother_openemis_id, mother_name, mother_contact, mother_first_name, mother_last_name,
	mother_address, mother_telephone, mother_email, mother_dob, mother_is_deceased,
	mother_nationality, father_openemis_id, father_name, father_contact, father_first_name,
	father_last_name, father_address, father_telephone, father_email, father_dob,
	father_is_deceased, father_nationality, guardian_openemis_id, guardian_name,
	guardian_gender, guardian_date_of_birth, guardian_first_name, guardian_last_name,
	guardian_address, guardian_telephone, guardian_email, guardian_dob,
	guardian_is_deceased, guardian_nationality, studentlivingwith, student_living_with_guardian`

// externalIDColumn is the secondary lookup key column.
const externalIDColumn = "student_openemis_id"

// allowedColumn pairs a JSON payload key with its student_data column.
type allowedColumn struct {
	Key    string
	Column string
}

// updatableColumns is the fixed allow-list for dynamic UPDATE/INSERT
// statements. Column names in generated SQL come exclusively from this
// compile-time list; payload keys not present here are silently ignored.
var updatableColumns = []allowedColumn{
	{"InstitutionCode", "institution_code"},
	{"InstitutionName", "institution_name"},
	{"Ownewship", "ownewship"},
	{"Type", "type"},
	{"Sector", "sector"},
	{"Provider", "provider"},
	{"Locality", "locality"},
	{"AreaEducationCode", "area_education_code"},
	{"AreaEducation", "area_education"},
	{"AreaAdministrativeCode", "area_administrative_code"},
	{"AreaAdministrative", "area_administrative"},
	{"EducationGrade", "education_grade"},
	{"AcademicPeriod", "academic_period"},
	{"StartDate", "start_date"},
	{"EndDate", "end_date"},
	{"ClassName", "class_name"},
	{"LastGradeLevelEnrolled", "last_grade_level_enrolled"},
	{"PreviousSchool", "previous_school"},
	{"StudentOpenEMIS_ID", "student_openemis_id"},
	{"StudentName", "student_name"},
	{"StudentStatus", "student_status"},
	{"Gender", "gender"},
	{"DateOfBirth", "date_of_birth"},
	{"Age", "age"},
	{"PreferredNationality", "preferred_nationality"},
	{"AllNationalities", "all_nationalities"},
	{"DefaultIdentitytype", "default_identitytype"},
	{"IdentityNumber", "identity_number"},
	{"RiskIndex", "risk_index"},
	{"ExtraActivities", "extra_activities"},
	{"Address", "address"},
	{"NIB2", "nib2"},
	{"MotherOpenEMIS_ID", "mother_openemis_id"},
	{"MotherName", "mother_name"},
	{"MotherContact", "mother_contact"},
	{"MotherFirstName", "mother_first_name"},
	{"MotherLastName", "mother_last_name"},
	{"MotherAddress", "mother_address"},
	{"MotherTelephone", "mother_telephone"},
	{"MotherEmail", "mother_email"},
	{"MotherDOB", "mother_dob"},
	{"MotherIsDeceased", "mother_is_deceased"},
	{"MotherNationality", "mother_nationality"},
	{"FatherOpenEMIS_ID", "father_openemis_id"},
	{"FatherName", "father_name"},
	{"FatherContact", "father_contact"},
	{"FatherFirstName", "father_first_name"},
	{"FatherLastName", "father_last_name"},
	{"FatherAddress", "father_address"},
	{"FatherTelephone", "father_telephone"},
	{"FatherEmail", "father_email"},
	{"FatherDOB", "father_dob"},
	{"FatherIsDeceased", "father_is_deceased"},
	{"FatherNationality", "father_nationality"},
	{"GuardianOpenEMIS_ID", "guardian_openemis_id"},
	{"GuardianName", "guardian_name"},
	{"GuardianGender", "guardian_gender"},
	{"GuardianDateOfBirth", "guardian_date_of_birth"},
	{"GuardianFirstName", "guardian_first_name"},
	{"GuardianLastName", "guardian_last_name"},
	{"GuardianAddress", "guardian_address"},
	{"GuardianTelephone", "guardian_telephone"},
	{"GuardianEmail", "guardian_email"},
	{"GuardianDOB", "guardian_dob"},
	{"GuardianIsDeceased", "guardian_is_deceased"},
	{"GuardianNationality", "guardian_nationality"},
	{"Studentlivingwith", "studentlivingwith"},
	{"StudentLivingWithGuardian", "student_living_with_guardian"},
}

// projectAllowed filters a raw payload down to allow-listed columns,
// preserving allow-list order so generated statements are deterministic.
func projectAllowed(payload map[string]interface{}) (columns []string, values []interface{}) {
	for _, ac := range updatableColumns {
		if v, ok := payload[ac.Key]; ok {
			columns = append(columns, ac.Column)
			values = append(values, v)
		}
	}
	return columns, values
}

// buildUpdateByID generates an UPDATE statement for the allow-listed subset
// of payload. Returns empty SQL when nothing in the payload is updatable.
func buildUpdateByID(studentID int64, payload map[string]interface{}) (string, []interface{}) {
	columns, values := projectAllowed(payload)
	if len(columns) == 0 {
		return "", nil
	}

	var sb strings.Builder
	sb.WriteString("UPDATE student_data SET ")
	for i, col := range columns {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s = $%d", col, i+1)
	}
	fmt.Fprintf(&sb, " WHERE student_id = $%d", len(columns)+1)

	return sb.String(), append(values, studentID)
}

// buildUpsertByExternalID generates a single atomic INSERT … ON CONFLICT
// statement keyed on the unique external-ID column, so two concurrent
// writers for the same external ID can never both insert.
func buildUpsertByExternalID(externalID string, payload map[string]interface{}) (string, []interface{}) {
	columns, values := projectAllowed(payload)

	insertCols := []string{externalIDColumn}
	args := []interface{}{externalID}
	for i, col := range columns {
		if col == externalIDColumn {
			// Already carried by the conflict key
			continue
		}
		insertCols = append(insertCols, col)
		args = append(args, values[i])
	}

	var sb strings.Builder
	sb.WriteString("INSERT INTO student_data (")
	sb.WriteString(strings.Join(insertCols, ", "))
	sb.WriteString(") VALUES (")
	for i := range insertCols {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "$%d", i+1)
	}
	// The unique index on the external-ID column is partial (NULLs are
	// exempt), so the conflict target must repeat its predicate for
	// Postgres to accept the index as arbiter.
	fmt.Fprintf(&sb, ") ON CONFLICT (%s) WHERE %s IS NOT NULL DO UPDATE SET ",
		externalIDColumn, externalIDColumn)
	wrote := false
	for _, col := range insertCols[1:] {
		if wrote {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%s = EXCLUDED.%s", col, col)
		wrote = true
	}
	if !wrote {
		// Nothing beyond the key: make the conflict arm a no-op update so
		// RETURNING still yields the row.
		fmt.Fprintf(&sb, "%s = EXCLUDED.%s", externalIDColumn, externalIDColumn)
	}
	sb.WriteString(" RETURNING student_id, (xmax = 0) AS inserted")

	return sb.String(), args
}

// StudentRepository handles database operations for student records
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// GetByID retrieves a full profile by primary key
func (r *StudentRepository) GetByID(ctx context.Context, id int64) (*models.StudentData, error) {
	query := fmt.Sprintf(`SELECT %s FROM student_data WHERE student_id = $1`, studentColumns)

	rows, err := r.db.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student: %w", err)
	}

	student, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.StudentData])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}

	return student, nil
}

// GetByExternalID retrieves a full profile by the external OpenEMIS ID.
// The schema enforces uniqueness of the external ID, so LIMIT is implicit.
func (r *StudentRepository) GetByExternalID(ctx context.Context, externalID string) (*models.StudentData, error) {
	query := fmt.Sprintf(`SELECT %s FROM student_data WHERE student_openemis_id = $1`, studentColumns)

	rows, err := r.db.Query(ctx, query, externalID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving student by external ID: %w", err)
	}

	student, err := pgx.CollectOneRow(rows, pgx.RowToAddrOfStructByName[models.StudentData])
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStudentNotFound
		}
		return nil, fmt.Errorf("error scanning student: %w", err)
	}

	return student, nil
}

// SearchByName returns one page of students whose own, mother, father or
// guardian name contains the query, case-insensitively, ordered by name.
func (r *StudentRepository) SearchByName(ctx context.Context, query string, limit, offset int) ([]models.StudentData, error) {
	like := "%" + query + "%"
	sql := fmt.Sprintf(`
		SELECT %s FROM student_data
		WHERE student_name ILIKE $1 OR mother_name ILIKE $1 OR father_name ILIKE $1 OR guardian_name ILIKE $1
		ORDER BY student_name ASC
		LIMIT $2 OFFSET $3`, studentColumns)

	rows, err := r.db.Query(ctx, sql, like, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error searching students: %w", err)
	}

	students, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.StudentData])
	if err != nil {
		return nil, fmt.Errorf("error scanning students: %w", err)
	}

	return students, nil
}

// CountByName returns the total number of name matches for pagination.
func (r *StudentRepository) CountByName(ctx context.Context, query string) (int64, error) {
	like := "%" + query + "%"

	var total int64
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM student_data
		WHERE student_name ILIKE $1 OR mother_name ILIKE $1 OR father_name ILIKE $1 OR guardian_name ILIKE $1`,
		like).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return total, nil
}

// SearchByInstitution returns one page of students whose institution name
// contains the query.
func (r *StudentRepository) SearchByInstitution(ctx context.Context, query string, limit, offset int) ([]models.StudentData, error) {
	like := "%" + query + "%"
	sql := fmt.Sprintf(`
		SELECT %s FROM student_data
		WHERE institution_name ILIKE $1
		ORDER BY student_name ASC
		LIMIT $2 OFFSET $3`, studentColumns)

	rows, err := r.db.Query(ctx, sql, like, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error searching students by institution: %w", err)
	}

	students, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.StudentData])
	if err != nil {
		return nil, fmt.Errorf("error scanning students: %w", err)
	}

	return students, nil
}

// CountByInstitution returns the total number of institution matches.
func (r *StudentRepository) CountByInstitution(ctx context.Context, query string) (int64, error) {
	like := "%" + query + "%"

	var total int64
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM student_data WHERE institution_name ILIKE $1`, like).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error counting students by institution: %w", err)
	}

	return total, nil
}

// CountAll returns the total number of student records.
func (r *StudentRepository) CountAll(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM student_data`).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("error counting students: %w", err)
	}

	return total, nil
}

// ListByInstitutionCode returns the narrow projection of every student
// enrolled at the institution, ordered by name. Deliberately unpaginated:
// callers want the full roster.
func (r *StudentRepository) ListByInstitutionCode(ctx context.Context, code string) ([]models.StudentSummary, error) {
	rows, err := r.db.Query(ctx, `
		SELECT student_id, student_openemis_id, student_name, gender, education_grade,
			class_name, institution_code, institution_name
		FROM student_data
		WHERE institution_code = $1
		ORDER BY student_name ASC`, code)
	if err != nil {
		return nil, fmt.Errorf("error listing students by school: %w", err)
	}

	students, err := pgx.CollectRows(rows, pgx.RowToStructByName[models.StudentSummary])
	if err != nil {
		return nil, fmt.Errorf("error scanning students: %w", err)
	}

	return students, nil
}

// maleGenderForms and femaleGenderForms are the accepted spellings of each
// gender bucket, compared uppercased. Values matching neither list count
// toward the total only.
var (
	maleGenderForms   = []string{"M", "MALE"}
	femaleGenderForms = []string{"F", "FEMALE"}
)

// genderBucketPredicate renders the case-insensitive membership test for
// one bucket's accepted forms.
func genderBucketPredicate(forms []string) string {
	quoted := make([]string, len(forms))
	for i, f := range forms {
		quoted[i] = "'" + f + "'"
	}
	return "UPPER(COALESCE(gender, '')) IN (" + strings.Join(quoted, ", ") + ")"
}

// StatsByInstitutionCode computes the headcount and gender breakdown for one
// institution in a single aggregate query.
func (r *StudentRepository) StatsByInstitutionCode(ctx context.Context, code string) (*models.SchoolStats, error) {
	stats := &models.SchoolStats{InstitutionCode: code}
	query := fmt.Sprintf(`
		SELECT COUNT(*),
			COUNT(*) FILTER (WHERE %s),
			COUNT(*) FILTER (WHERE %s)
		FROM student_data
		WHERE institution_code = $1`,
		genderBucketPredicate(maleGenderForms), genderBucketPredicate(femaleGenderForms))
	err := r.db.QueryRow(ctx, query, code).Scan(&stats.TotalStudents, &stats.MaleCount, &stats.FemaleCount)
	if err != nil {
		return nil, fmt.Errorf("error computing school stats: %w", err)
	}

	return stats, nil
}

// UpdateByID applies the allow-listed subset of payload to the row with the
// given primary key. Zero affected rows is not an error: the contract
// reports it to the caller as-is.
func (r *StudentRepository) UpdateByID(ctx context.Context, studentID int64, payload map[string]interface{}) (int64, error) {
	sql, args := buildUpdateByID(studentID, payload)
	if sql == "" {
		return 0, apperrors.ErrNoUpdatableFields
	}

	cmdTag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("error updating student: %w", err)
	}

	return cmdTag.RowsAffected(), nil
}

// UpsertByExternalID inserts or updates the row keyed by the external ID in
// one atomic statement. Returns the affected student's primary key and
// whether the statement inserted a new row.
func (r *StudentRepository) UpsertByExternalID(ctx context.Context, externalID string, payload map[string]interface{}) (studentID int64, inserted bool, err error) {
	sql, args := buildUpsertByExternalID(externalID, payload)

	err = r.db.QueryRow(ctx, sql, args...).Scan(&studentID, &inserted)
	if err != nil {
		return 0, false, fmt.Errorf("error upserting student: %w", err)
	}

	return studentID, inserted, nil
}
