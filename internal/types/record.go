package types

// Field names match the source file's header spellings so that grouping keys,
// dropdown values, and API parameters all use the same vocabulary.
const (
	FieldCourse          = "Course"
	FieldGender          = "Gender"
	FieldRaceEthnicity   = "Race/Ethnicity"
	FieldSemester        = "Semester"
	FieldCOVIDImpact     = "COVID Impact"
	FieldFirstGeneration = "First Generation"
	FieldGrade           = "Grade"
	FieldGradeNumeric    = "grade_numeric"
)

// CategoryFields lists the groupable category fields in display order.
// FieldCourse is the default primary selection.
func CategoryFields() []string {
	return []string{
		FieldCourse,
		FieldCOVIDImpact,
		FieldFirstGeneration,
		FieldGender,
		FieldRaceEthnicity,
		FieldSemester,
	}
}

// Record is one cleaned student enrollment outcome.
type Record struct {
	Course          string  `json:"course"`
	Gender          string  `json:"gender"`
	RaceEthnicity   string  `json:"race_ethnicity"`
	Semester        string  `json:"semester"`
	COVIDImpact     string  `json:"covid_impact"`
	FirstGeneration string  `json:"first_generation"`
	Grade           string  `json:"grade"`
	GradeNumeric    float64 `json:"grade_numeric"`
}

// CategoryValue returns the record's value for a category field name.
// The second return is false for FieldGrade, FieldGradeNumeric, and
// anything outside the known field set.
func (r Record) CategoryValue(field string) (string, bool) {
	switch field {
	case FieldCourse:
		return r.Course, true
	case FieldGender:
		return r.Gender, true
	case FieldRaceEthnicity:
		return r.RaceEthnicity, true
	case FieldSemester:
		return r.Semester, true
	case FieldCOVIDImpact:
		return r.COVIDImpact, true
	case FieldFirstGeneration:
		return r.FirstGeneration, true
	}
	return "", false
}
