package models

// StudentData is one student's full profile as held in the 'student_data'
// table: identity, institution, academic enrollment, and the three guardian
// sub-profiles (mother/father/guardian). JSON keys keep the legacy column
// names so existing clients keep working.
type StudentData struct {
	StudentID int64 `json:"StudentID" db:"student_id"`

	// Institution details
	InstitutionCode        *string `json:"InstitutionCode,omitempty" db:"institution_code"`
	InstitutionName        *string `json:"InstitutionName,omitempty" db:"institution_name"`
	Ownewship              *string `json:"Ownewship,omitempty" db:"ownewship"`
	Type                   *string `json:"Type,omitempty" db:"type"`
	Sector                 *string `json:"Sector,omitempty" db:"sector"`
	Provider               *string `json:"Provider,omitempty" db:"provider"`
	Locality               *string `json:"Locality,omitempty" db:"locality"`
	AreaEducationCode      *string `json:"AreaEducationCode,omitempty" db:"area_education_code"`
	AreaEducation          *string `json:"AreaEducation,omitempty" db:"area_education"`
	AreaAdministrativeCode *string `json:"AreaAdministrativeCode,omitempty" db:"area_administrative_code"`
	AreaAdministrative     *string `json:"AreaAdministrative,omitempty" db:"area_administrative"`

	// Academic details
	EducationGrade         *string `json:"EducationGrade,omitempty" db:"education_grade"`
	AcademicPeriod         *string `json:"AcademicPeriod,omitempty" db:"academic_period"`
	StartDate              *string `json:"StartDate,omitempty" db:"start_date"`
	EndDate                *string `json:"EndDate,omitempty" db:"end_date"`
	ClassName              *string `json:"ClassName,omitempty" db:"class_name"`
	LastGradeLevelEnrolled *string `json:"LastGradeLevelEnrolled,omitempty" db:"last_grade_level_enrolled"`
	PreviousSchool         *string `json:"PreviousSchool,omitempty" db:"previous_school"`

	// Personal details
	StudentOpenEMISID    *string `json:"StudentOpenEMIS_ID,omitempty" db:"student_openemis_id"`
	StudentName          *string `json:"StudentName,omitempty" db:"student_name"`
	StudentStatus        *string `json:"StudentStatus,omitempty" db:"student_status"`
	Gender               *string `json:"Gender,omitempty" db:"gender"`
	DateOfBirth          *string `json:"DateOfBirth,omitempty" db:"date_of_birth"`
	Age                  *int64  `json:"Age,omitempty" db:"age"`
	PreferredNationality *string `json:"PreferredNationality,omitempty" db:"preferred_nationality"`
	AllNationalities     *string `json:"AllNationalities,omitempty" db:"all_nationalities"`
	DefaultIdentitytype  *string `json:"DefaultIdentitytype,omitempty" db:"default_identitytype"`
	IdentityNumber       *string `json:"IdentityNumber,omitempty" db:"identity_number"`
	RiskIndex            *string `json:"RiskIndex,omitempty" db:"risk_index"`
	ExtraActivities      *string `json:"ExtraActivities,omitempty" db:"extra_activities"`
	Address              *string `json:"Address,omitempty" db:"address"`
	NIB2                 *string `json:"NIB2,omitempty" db:"nib2"`

	// Mother's details
	MotherOpenEMISID  *string `json:"MotherOpenEMIS_ID,omitempty" db:"mother_openemis_id"`
	MotherName        *string `json:"MotherName,omitempty" db:"mother_name"`
	MotherContact     *string `json:"MotherContact,omitempty" db:"mother_contact"`
	MotherFirstName   *string `json:"MotherFirstName,omitempty" db:"mother_first_name"`
	MotherLastName    *string `json:"MotherLastName,omitempty" db:"mother_last_name"`
	MotherAddress     *string `json:"MotherAddress,omitempty" db:"mother_address"`
	MotherTelephone   *string `json:"MotherTelephone,omitempty" db:"mother_telephone"`
	MotherEmail       *string `json:"MotherEmail,omitempty" db:"mother_email"`
	MotherDOB         *string `json:"MotherDOB,omitempty" db:"mother_dob"`
	MotherIsDeceased  *string `json:"MotherIsDeceased,omitempty" db:"mother_is_deceased"`
	MotherNationality *string `json:"MotherNationality,omitempty" db:"mother_nationality"`

	// Father's details
	FatherOpenEMISID  *string `json:"FatherOpenEMIS_ID,omitempty" db:"father_openemis_id"`
	FatherName        *string `json:"FatherName,omitempty" db:"father_name"`
	FatherContact     *string `json:"FatherContact,omitempty" db:"father_contact"`
	FatherFirstName   *string `json:"FatherFirstName,omitempty" db:"father_first_name"`
	FatherLastName    *string `json:"FatherLastName,omitempty" db:"father_last_name"`
	FatherAddress     *string `json:"FatherAddress,omitempty" db:"father_address"`
	FatherTelephone   *string `json:"FatherTelephone,omitempty" db:"father_telephone"`
	FatherEmail       *string `json:"FatherEmail,omitempty" db:"father_email"`
	FatherDOB         *string `json:"FatherDOB,omitempty" db:"father_dob"`
	FatherIsDeceased  *string `json:"FatherIsDeceased,omitempty" db:"father_is_deceased"`
	FatherNationality *string `json:"FatherNationality,omitempty" db:"father_nationality"`

	// Guardian's details
	GuardianOpenEMISID  *string `json:"GuardianOpenEMIS_ID,omitempty" db:"guardian_openemis_id"`
	GuardianName        *string `json:"GuardianName,omitempty" db:"guardian_name"`
	GuardianGender      *string `json:"GuardianGender,omitempty" db:"guardian_gender"`
	GuardianDateOfBirth *string `json:"GuardianDateOfBirth,omitempty" db:"guardian_date_of_birth"`
	GuardianFirstName   *string `json:"GuardianFirstName,omitempty" db:"guardian_first_name"`
	GuardianLastName    *string `json:"GuardianLastName,omitempty" db:"guardian_last_name"`
	GuardianAddress     *string `json:"GuardianAddress,omitempty" db:"guardian_address"`
	GuardianTelephone   *string `json:"GuardianTelephone,omitempty" db:"guardian_telephone"`
	GuardianEmail       *string `json:"GuardianEmail,omitempty" db:"guardian_email"`
	GuardianDOB         *string `json:"GuardianDOB,omitempty" db:"guardian_dob"`
	GuardianIsDeceased  *string `json:"GuardianIsDeceased,omitempty" db:"guardian_is_deceased"`
	GuardianNationality *string `json:"GuardianNationality,omitempty" db:"guardian_nationality"`

	// Living situation
	Studentlivingwith         *string `json:"Studentlivingwith,omitempty" db:"studentlivingwith"`
	StudentLivingWithGuardian *string `json:"StudentLivingWithGuardian,omitempty" db:"student_living_with_guardian"`
}

// StudentSummary is the narrow projection returned by the by-school listing.
type StudentSummary struct {
	StudentID         int64   `json:"StudentID" db:"student_id"`
	StudentOpenEMISID *string `json:"StudentOpenEMIS_ID,omitempty" db:"student_openemis_id"`
	StudentName       *string `json:"StudentName,omitempty" db:"student_name"`
	Gender            *string `json:"Gender,omitempty" db:"gender"`
	EducationGrade    *string `json:"EducationGrade,omitempty" db:"education_grade"`
	ClassName         *string `json:"ClassName,omitempty" db:"class_name"`
	InstitutionCode   *string `json:"InstitutionCode,omitempty" db:"institution_code"`
	InstitutionName   *string `json:"InstitutionName,omitempty" db:"institution_name"`
}
