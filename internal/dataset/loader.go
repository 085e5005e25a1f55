package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Load reads the dataset file at path, cleans it, and returns the immutable
// table. CSV and XLSX are supported, chosen by file extension; both formats
// must carry a header row with the required columns.
func Load(path string) (*Table, error) {
	var (
		header []string
		rows   [][]string
		err    error
	)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		header, rows, err = readXLSX(path)
	default:
		header, rows, err = readCSV(path)
	}
	if err != nil {
		return nil, err
	}

	records, stats, err := Clean(header, rows)
	if err != nil {
		return nil, fmt.Errorf("cleaning %s: %w", path, err)
	}

	return NewTable(records, stats), nil
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open dataset file: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	// Header and rows can disagree on trailing empty cells.
	reader.FieldsPerRecord = -1

	all, err := reader.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to parse CSV: %w", err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("dataset file %s is empty", path)
	}

	return all[0], all[1:], nil
}

func readXLSX(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	// Data lives on the first sheet; institutional exports ship one sheet.
	all, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("sheet %s is empty", sheets[0])
	}

	return all[0], all[1:], nil
}
