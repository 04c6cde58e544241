package repositories

import (
	"strings"
	"testing"
)

func TestProjectAllowed(t *testing.T) {
	payload := map[string]interface{}{
		"StudentName": "Jane Doe",
		"Gender":      "Female",
		// identifier (never updatable), a raw column name, and an unknown key
		"StudentID":          int64(42),
		"student_name":       "hacker",
		"DropTableStudents":  "nope",
		"StudentOpenEMIS_ID": "20230001",
	}

	columns, values := projectAllowed(payload)
	if len(columns) != 3 {
		t.Fatalf("expected 3 allow-listed columns, got %d (%v)", len(columns), columns)
	}
	for i, col := range columns {
		switch col {
		case "student_name":
			if values[i] != "Jane Doe" {
				t.Errorf("student_name value = %v", values[i])
			}
		case "gender", "student_openemis_id":
		default:
			t.Errorf("unexpected column %q", col)
		}
	}
}

func TestProjectAllowedDeterministicOrder(t *testing.T) {
	payload := map[string]interface{}{
		"Gender":      "Male",
		"StudentName": "A",
		"ClassName":   "1A",
	}
	first, _ := projectAllowed(payload)
	for i := 0; i < 20; i++ {
		again, _ := projectAllowed(payload)
		if strings.Join(again, ",") != strings.Join(first, ",") {
			t.Fatalf("column order changed between calls: %v vs %v", first, again)
		}
	}
}

func TestBuildUpdateByID(t *testing.T) {
	sql, args := buildUpdateByID(7, map[string]interface{}{
		"StudentName": "Jane",
		"Gender":      "Female",
	})

	if !strings.HasPrefix(sql, "UPDATE student_data SET ") {
		t.Fatalf("unexpected SQL: %s", sql)
	}
	if !strings.Contains(sql, "student_name = $1") || !strings.Contains(sql, "gender = $2") {
		t.Errorf("missing set clauses: %s", sql)
	}
	if !strings.HasSuffix(sql, "WHERE student_id = $3") {
		t.Errorf("missing WHERE clause: %s", sql)
	}
	if len(args) != 3 {
		t.Fatalf("expected 3 args, got %d", len(args))
	}
	if args[2] != int64(7) {
		t.Errorf("last arg should be the student ID, got %v", args[2])
	}
}

func TestBuildUpdateByIDNothingUpdatable(t *testing.T) {
	sql, args := buildUpdateByID(7, map[string]interface{}{
		"StudentID": int64(7),
		"Unknown":   "x",
	})
	if sql != "" || args != nil {
		t.Errorf("expected empty statement, got %q / %v", sql, args)
	}
}

func TestBuildUpsertByExternalID(t *testing.T) {
	sql, args := buildUpsertByExternalID("20230001", map[string]interface{}{
		"StudentName":        "Jane",
		"StudentOpenEMIS_ID": "20230001",
	})

	if !strings.HasPrefix(sql, "INSERT INTO student_data (student_openemis_id, ") {
		t.Fatalf("external ID must lead the column list: %s", sql)
	}
	// The unique index on student_openemis_id is partial, so the conflict
	// target must carry the index predicate or Postgres rejects the
	// statement with "no unique or exclusion constraint matching".
	if !strings.Contains(sql, "ON CONFLICT (student_openemis_id) WHERE student_openemis_id IS NOT NULL DO UPDATE SET") {
		t.Errorf("conflict target must repeat the partial index predicate: %s", sql)
	}
	if strings.Count(sql, "student_openemis_id = EXCLUDED") != 0 {
		t.Errorf("key column must not be re-assigned when other fields exist: %s", sql)
	}
	if !strings.HasSuffix(sql, "RETURNING student_id, (xmax = 0) AS inserted") {
		t.Errorf("missing RETURNING clause: %s", sql)
	}
	// The key appears once even though the payload also carries it.
	if len(args) != 2 {
		t.Fatalf("expected 2 args, got %d (%v)", len(args), args)
	}
	if args[0] != "20230001" {
		t.Errorf("first arg should be the external ID, got %v", args[0])
	}
}

func TestGenderBucketPredicate(t *testing.T) {
	male := genderBucketPredicate(maleGenderForms)
	if male != "UPPER(COALESCE(gender, '')) IN ('M', 'MALE')" {
		t.Errorf("male predicate = %q", male)
	}
	female := genderBucketPredicate(femaleGenderForms)
	if female != "UPPER(COALESCE(gender, '')) IN ('F', 'FEMALE')" {
		t.Errorf("female predicate = %q", female)
	}
}

func TestGenderBucketForms(t *testing.T) {
	inForms := func(value string, forms []string) bool {
		upper := strings.ToUpper(value)
		for _, f := range forms {
			if f == upper {
				return true
			}
		}
		return false
	}

	// Lowercase single letters bucket by case-insensitive comparison.
	if !inForms("m", maleGenderForms) || !inForms("female", femaleGenderForms) {
		t.Error("lowercase forms must match their bucket")
	}
	// Anything outside the accepted forms counts toward neither bucket.
	for _, v := range []string{"nonbinary", "", "unknown"} {
		if inForms(v, maleGenderForms) || inForms(v, femaleGenderForms) {
			t.Errorf("%q should match neither bucket", v)
		}
	}
}

func TestBuildUpsertByExternalIDKeyOnly(t *testing.T) {
	sql, args := buildUpsertByExternalID("20230001", map[string]interface{}{
		"StudentOpenEMIS_ID": "20230001",
	})

	if !strings.Contains(sql, "DO UPDATE SET student_openemis_id = EXCLUDED.student_openemis_id") {
		t.Errorf("key-only upsert needs a no-op conflict arm: %s", sql)
	}
	if len(args) != 1 {
		t.Fatalf("expected 1 arg, got %d", len(args))
	}
}
