// Package aggregate computes grade distributions over the cleaned dataset.
// Everything here is a pure function of the immutable table and the current
// dropdown selections, so the HTTP layer can call it on every interaction
// without coordination.
package aggregate

import (
	"errors"
	"sort"
	"strconv"

	"github.com/gradelens/gradelens-api/internal/dataset"
	"github.com/gradelens/gradelens-api/internal/types"
)

// ErrNoPrimary is returned when no primary field is selected. The UI treats
// this as "keep the previous chart", not as a failure.
var ErrNoPrimary = errors.New("no primary field selected")

// ErrUnknownField is returned for field names outside the category set.
var ErrUnknownField = errors.New("unknown category field")

// DefaultPrimary is the initial overview selection.
const DefaultPrimary = types.FieldCourse

type groupKey struct {
	primary   string
	secondary string
	grade     string
}

// Distribution groups the table by (primary[, secondary], grade), counts
// records per bucket, and normalizes counts to percentages within each
// (primary[, secondary]) group. A secondary equal to the primary, or empty,
// means no drill-down. Rows come back ordered by primary value, secondary
// value, then the fixed grade order.
func Distribution(t *dataset.Table, primary, secondary string) ([]types.DistributionRow, error) {
	if primary == "" {
		return nil, ErrNoPrimary
	}
	if !IsCategoryField(primary) {
		return nil, ErrUnknownField
	}

	// Duplicate grouping keys would double-count, so a repeated selection
	// collapses to the unfaceted view.
	if secondary == primary {
		secondary = ""
	}
	if secondary != "" && !IsCategoryField(secondary) {
		return nil, ErrUnknownField
	}

	counts := make(map[groupKey]int)
	totals := make(map[groupKey]int)

	for _, rec := range t.Rows() {
		p, _ := rec.CategoryValue(primary)
		s := ""
		if secondary != "" {
			s, _ = rec.CategoryValue(secondary)
		}

		counts[groupKey{p, s, rec.Grade}]++
		totals[groupKey{primary: p, secondary: s}]++
	}

	rows := make([]types.DistributionRow, 0, len(counts))
	for key, n := range counts {
		total := totals[groupKey{primary: key.primary, secondary: key.secondary}]
		rows = append(rows, types.DistributionRow{
			Primary:    key.primary,
			Secondary:  key.secondary,
			Grade:      key.grade,
			Count:      n,
			CountLabel: strconv.Itoa(n),
			Percentage: 100 * float64(n) / float64(total),
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Primary != rows[j].Primary {
			return rows[i].Primary < rows[j].Primary
		}
		if rows[i].Secondary != rows[j].Secondary {
			return rows[i].Secondary < rows[j].Secondary
		}
		return dataset.GradeRank(rows[i].Grade) < dataset.GradeRank(rows[j].Grade)
	})

	return rows, nil
}

// PrimaryOptions returns the selectable overview fields.
func PrimaryOptions() []string {
	return types.CategoryFields()
}

// DrilldownOptions returns the selectable secondary fields for a primary
// selection: every category field except the primary itself. Grade and the
// derived numeric grade are never offered.
func DrilldownOptions(primary string) []string {
	options := make([]string, 0, len(types.CategoryFields())-1)
	for _, field := range types.CategoryFields() {
		if field == primary {
			continue
		}
		options = append(options, field)
	}
	return options
}

// IsCategoryField reports whether name is a groupable category field.
func IsCategoryField(name string) bool {
	for _, field := range types.CategoryFields() {
		if field == name {
			return true
		}
	}
	return false
}
