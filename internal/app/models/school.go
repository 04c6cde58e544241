package models

// SchoolSummary is the de-duplicated institution projection derived from
// student_data rows. Institutions are denormalized across student rows, so
// this is a view, not a table.
type SchoolSummary struct {
	InstitutionCode string  `json:"InstitutionCode" db:"institution_code"`
	InstitutionName string  `json:"InstitutionName" db:"institution_name"`
	Type            *string `json:"Type,omitempty" db:"type"`
	Sector          *string `json:"Sector,omitempty" db:"sector"`
	Locality        *string `json:"Locality,omitempty" db:"locality"`
	AreaEducation   *string `json:"AreaEducation,omitempty" db:"area_education"`
}

// SchoolStats is the per-institution headcount breakdown.
type SchoolStats struct {
	TotalStudents   int64  `json:"totalStudents"`
	MaleCount       int64  `json:"maleCount"`
	FemaleCount     int64  `json:"femaleCount"`
	InstitutionCode string `json:"institutionCode"`
}
