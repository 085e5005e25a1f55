package dataset

import (
	"fmt"
	"strings"

	"github.com/gradelens/gradelens-api/internal/types"
)

// requiredColumns are the header names the source file must carry,
// case-sensitive.
var requiredColumns = []string{
	types.FieldCourse,
	types.FieldGender,
	types.FieldRaceEthnicity,
	types.FieldSemester,
	types.FieldCOVIDImpact,
	types.FieldFirstGeneration,
	types.FieldGrade,
}

// LoadStats counts what happened to the raw rows during cleaning.
// RowsRead = RowsKept + DroppedMissing + DroppedBadGrade always holds.
type LoadStats struct {
	RowsRead        int `json:"rows_read"`
	RowsKept        int `json:"rows_kept"`
	DroppedMissing  int `json:"dropped_missing"`
	DroppedBadGrade int `json:"dropped_bad_grade"`
}

// Clean turns raw header+rows into cleaned records. Rows with an empty
// required value or a grade outside the letter-grade alphabet are dropped
// and counted rather than surfaced as errors; a missing required column is
// a hard error since nothing downstream can run without it.
func Clean(header []string, rows [][]string) ([]types.Record, LoadStats, error) {
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}

	for _, name := range requiredColumns {
		if _, ok := cols[name]; !ok {
			return nil, LoadStats{}, fmt.Errorf("missing required column %q", name)
		}
	}

	cell := func(row []string, name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	stats := LoadStats{RowsRead: len(rows)}
	records := make([]types.Record, 0, len(rows))

	for _, row := range rows {
		rec := types.Record{
			Course:          cell(row, types.FieldCourse),
			Gender:          cell(row, types.FieldGender),
			RaceEthnicity:   cell(row, types.FieldRaceEthnicity),
			Semester:        cell(row, types.FieldSemester),
			COVIDImpact:     cell(row, types.FieldCOVIDImpact),
			FirstGeneration: cell(row, types.FieldFirstGeneration),
			Grade:           cell(row, types.FieldGrade),
		}

		if hasMissing(rec) {
			stats.DroppedMissing++
			continue
		}

		numeric, ok := GradeToNumeric(rec.Grade)
		if !ok {
			stats.DroppedBadGrade++
			continue
		}
		rec.GradeNumeric = numeric

		records = append(records, canonicalize(rec))
		stats.RowsKept++
	}

	return records, stats, nil
}

func hasMissing(rec types.Record) bool {
	return rec.Course == "" ||
		rec.Gender == "" ||
		rec.RaceEthnicity == "" ||
		rec.Semester == "" ||
		rec.COVIDImpact == "" ||
		rec.FirstGeneration == "" ||
		rec.Grade == ""
}

// canonicalize fixes the case conventions used for grouping keys: gender and
// ethnicity lowercase, course codes uppercase. Idempotent.
func canonicalize(rec types.Record) types.Record {
	rec.Gender = strings.ToLower(rec.Gender)
	rec.RaceEthnicity = strings.ToLower(rec.RaceEthnicity)
	rec.Course = strings.ToUpper(rec.Course)
	return rec
}
