// Package chart turns distribution rows into a renderer-agnostic chart spec.
package chart

import (
	"fmt"

	"github.com/gradelens/gradelens-api/internal/dataset"
	"github.com/gradelens/gradelens-api/internal/types"
)

const (
	// baseHeight is the pixel height of the single-panel chart.
	baseHeight = 1000
	// facetHeight is the pixel height budgeted per drill-down panel.
	facetHeight = 900
	// minFacetedHeight floors the total so a one-value drill-down still
	// renders a readable chart.
	minFacetedHeight = 900
)

// Build assembles the chart spec for a distribution. distinctSecondary is
// the number of distinct values of the secondary field in the table (unused
// when secondary is empty); it drives the vertical sizing policy.
func Build(rows []types.DistributionRow, primary, secondary string, distinctSecondary int) types.ChartSpec {
	spec := types.ChartSpec{
		Title:       fmt.Sprintf("Distribution by %s", primary),
		Orientation: "h",
		BarMode:     "group",
		XAxisLabel:  "Percentage of Total",
		GradeOrder:  dataset.GradeOrder,
		Height:      baseHeight,
	}

	if secondary != "" && secondary != primary {
		spec.Title = fmt.Sprintf("Distribution by %s and %s", primary, secondary)
		spec.Height = facetHeight * distinctSecondary
		if spec.Height < minFacetedHeight {
			spec.Height = minFacetedHeight
		}
	}

	spec.Facets = buildFacets(rows)
	return spec
}

// buildFacets groups rows into facets by secondary value and into traces by
// primary value, preserving the incoming order (primary, secondary, grade).
func buildFacets(rows []types.DistributionRow) []types.ChartFacet {
	facetIndex := make(map[string]int)
	facets := []types.ChartFacet{}

	for _, row := range rows {
		fi, ok := facetIndex[row.Secondary]
		if !ok {
			fi = len(facets)
			facetIndex[row.Secondary] = fi
			facets = append(facets, types.ChartFacet{Label: row.Secondary})
		}

		facet := &facets[fi]
		ti := -1
		for i := range facet.Traces {
			if facet.Traces[i].Name == row.Primary {
				ti = i
				break
			}
		}
		if ti == -1 {
			ti = len(facet.Traces)
			facet.Traces = append(facet.Traces, types.ChartTrace{Name: row.Primary})
		}

		trace := &facet.Traces[ti]
		trace.Grades = append(trace.Grades, row.Grade)
		trace.Percentages = append(trace.Percentages, row.Percentage)
		trace.Counts = append(trace.Counts, row.CountLabel)
	}

	return facets
}
