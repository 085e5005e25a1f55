package dataset

import (
	"sort"

	"github.com/gradelens/gradelens-api/internal/types"
)

// Table is the cleaned dataset, built once at startup and read-only
// thereafter. All aggregation reads go through it; nothing mutates it.
type Table struct {
	rows  []types.Record
	stats LoadStats
}

// NewTable wraps cleaned records in an immutable table.
func NewTable(rows []types.Record, stats LoadStats) *Table {
	return &Table{rows: rows, stats: stats}
}

// Rows returns the cleaned records. Callers must treat the slice as
// read-only.
func (t *Table) Rows() []types.Record {
	return t.rows
}

// Len returns the number of retained records.
func (t *Table) Len() int {
	return len(t.rows)
}

// Stats returns the load-time drop accounting.
func (t *Table) Stats() LoadStats {
	return t.stats
}

// Values returns the distinct values of a category field, sorted.
func (t *Table) Values(field string) []string {
	seen := make(map[string]struct{})
	for _, rec := range t.rows {
		v, ok := rec.CategoryValue(field)
		if !ok {
			return nil
		}
		seen[v] = struct{}{}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)
	return values
}

// DistinctCount returns the number of distinct values of a category field.
func (t *Table) DistinctCount(field string) int {
	return len(t.Values(field))
}
