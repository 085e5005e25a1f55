package dataset

import (
	"math"
	"testing"
)

var header = []string{
	"Course", "Gender", "Race/Ethnicity", "Semester", "COVID Impact", "First Generation", "Grade",
}

func row(course, gender, ethnicity, semester, covid, firstGen, grade string) []string {
	return []string{course, gender, ethnicity, semester, covid, firstGen, grade}
}

func TestGradeToNumeric_FullAlphabet(t *testing.T) {
	t.Parallel()

	want := map[string]float64{
		"A+": 4.33, "A": 4.00, "A-": 3.67,
		"B+": 3.33, "B": 3.00, "B-": 2.67,
		"C+": 2.33, "C": 2.00, "C-": 1.67,
		"D+": 1.33, "D": 1.00, "D-": 0.67,
		"F": 0.00, "W": -0.30,
	}

	for grade, expected := range want {
		got, ok := GradeToNumeric(grade)
		if !ok {
			t.Fatalf("grade %q not recognized", grade)
		}
		if math.Abs(got-expected) > 1e-9 {
			t.Fatalf("grade %q: want %v got %v", grade, expected, got)
		}
	}

	for _, bad := range []string{"Z", "A++", "", "a", "P", "CR", "NF"} {
		if _, ok := GradeToNumeric(bad); ok {
			t.Fatalf("grade %q should not be recognized", bad)
		}
	}
}

func TestClean_DropsInvalidGradeRows(t *testing.T) {
	t.Parallel()

	records, stats, err := Clean(header, [][]string{
		row("cs101", "Male", "Asian", "Fall 2020", "Yes", "No", "A"),
		row("cs101", "Female", "White", "Fall 2020", "No", "No", "Z"),
		row("cs101", "Female", "White", "Fall 2020", "No", "No", "W"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("want 2 records, got %d", len(records))
	}
	if stats.DroppedBadGrade != 1 {
		t.Fatalf("want 1 bad-grade drop, got %d", stats.DroppedBadGrade)
	}
	if records[1].Grade != "W" || math.Abs(records[1].GradeNumeric-(-0.30)) > 1e-9 {
		t.Fatalf("W record mapped wrong: %+v", records[1])
	}
}

func TestClean_DropsMissingValueRows(t *testing.T) {
	t.Parallel()

	records, stats, err := Clean(header, [][]string{
		row("CS101", "male", "asian", "Fall 2020", "Yes", "No", "A"),
		row("CS101", "", "asian", "Fall 2020", "Yes", "No", "A"),
		row("CS101", "male", "asian", "Fall 2020", "Yes", "No", ""),
		// Short row: trailing cells absent entirely.
		{"CS101", "male", "asian"},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(records) != 1 {
		t.Fatalf("want 1 record, got %d", len(records))
	}
	if stats.DroppedMissing != 3 {
		t.Fatalf("want 3 missing drops, got %d", stats.DroppedMissing)
	}
	if stats.RowsRead != stats.RowsKept+stats.DroppedMissing+stats.DroppedBadGrade {
		t.Fatalf("stats do not add up: %+v", stats)
	}
}

func TestClean_Canonicalizes(t *testing.T) {
	t.Parallel()

	records, _, err := Clean(header, [][]string{
		row("  cs101 ", "MALE", "Hispanic/Latino", "Fall 2020", "Yes", "No", "B+"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	rec := records[0]
	if rec.Course != "CS101" {
		t.Fatalf("course not uppercased/trimmed: %q", rec.Course)
	}
	if rec.Gender != "male" {
		t.Fatalf("gender not lowercased: %q", rec.Gender)
	}
	if rec.RaceEthnicity != "hispanic/latino" {
		t.Fatalf("ethnicity not lowercased: %q", rec.RaceEthnicity)
	}
}

func TestClean_IdempotentOnCleanData(t *testing.T) {
	t.Parallel()

	raw := [][]string{
		row("CS101", "female", "black", "Spring 2021", "No", "Yes", "A-"),
		row("MATH200", "male", "white", "Fall 2020", "Yes", "No", "C"),
	}

	first, firstStats, err := Clean(header, raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Feed the cleaned values back through.
	again := make([][]string, len(first))
	for i, rec := range first {
		again[i] = row(rec.Course, rec.Gender, rec.RaceEthnicity, rec.Semester, rec.COVIDImpact, rec.FirstGeneration, rec.Grade)
	}

	second, secondStats, err := Clean(header, again)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if firstStats != secondStats {
		t.Fatalf("stats changed on re-clean: %+v vs %+v", firstStats, secondStats)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("record %d changed on re-clean: %+v vs %+v", i, first[i], second[i])
		}
	}
}

func TestClean_MissingColumnIsError(t *testing.T) {
	t.Parallel()

	shortHeader := []string{"Course", "Gender", "Grade"}
	if _, _, err := Clean(shortHeader, nil); err == nil {
		t.Fatalf("expected error for missing columns")
	}
}

func TestTableValues_DistinctSorted(t *testing.T) {
	t.Parallel()

	records, stats, err := Clean(header, [][]string{
		row("CS101", "male", "asian", "Fall 2020", "Yes", "No", "A"),
		row("MATH200", "female", "white", "Fall 2020", "No", "No", "B"),
		row("CS101", "female", "asian", "Spring 2021", "No", "Yes", "C"),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	table := NewTable(records, stats)

	courses := table.Values("Course")
	if len(courses) != 2 || courses[0] != "CS101" || courses[1] != "MATH200" {
		t.Fatalf("unexpected course values: %v", courses)
	}
	if table.DistinctCount("Semester") != 2 {
		t.Fatalf("want 2 semesters, got %d", table.DistinctCount("Semester"))
	}
	if got := table.Values("Grade"); got != nil {
		t.Fatalf("Grade is not a category field, want nil, got %v", got)
	}
}
