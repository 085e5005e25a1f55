package dataset

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

const sampleCSV = `Course,Gender,Race/Ethnicity,Semester,COVID Impact,First Generation,Grade
cs101,Male,Asian,Fall 2020,Yes,No,A
cs101,Female,White,Fall 2020,No,No,B
math200,Female,White,Spring 2021,No,Yes,Z
math200,Male,,Spring 2021,Yes,No,C
`

func TestLoad_CSV(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "grades.csv")
	if err := os.WriteFile(path, []byte(sampleCSV), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("want 2 kept rows, got %d", table.Len())
	}

	stats := table.Stats()
	if stats.RowsRead != 4 || stats.DroppedBadGrade != 1 || stats.DroppedMissing != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}

	if table.Rows()[0].Course != "CS101" {
		t.Fatalf("course not canonicalized: %q", table.Rows()[0].Course)
	}
}

func TestLoad_XLSX(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "grades.xlsx")

	f := excelize.NewFile()
	rows := [][]interface{}{
		{"Course", "Gender", "Race/Ethnicity", "Semester", "COVID Impact", "First Generation", "Grade"},
		{"cs101", "Male", "Asian", "Fall 2020", "Yes", "No", "A+"},
		{"cs101", "Female", "White", "Fall 2020", "No", "No", "W"},
	}
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name: %v", err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &r); err != nil {
			t.Fatalf("set row: %v", err)
		}
	}
	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}

	table, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if table.Len() != 2 {
		t.Fatalf("want 2 rows, got %d", table.Len())
	}
	if table.Rows()[1].GradeNumeric > 0 {
		t.Fatalf("W should map below zero, got %v", table.Rows()[1].GradeNumeric)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	t.Parallel()

	if _, err := Load(filepath.Join(t.TempDir(), "absent.csv")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoad_MissingColumn(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "bad.csv")
	if err := os.WriteFile(path, []byte("Course,Grade\nCS101,A\n"), 0644); err != nil {
		t.Fatalf("write sample: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for missing columns")
	}
}
