package types

// ChartTrace is one bar series: a single primary category value across the
// grade axis. Grades, Percentages, and Counts are parallel slices.
type ChartTrace struct {
	Name        string    `json:"name"`
	Grades      []string  `json:"grades"`
	Percentages []float64 `json:"percentages"`
	Counts      []string  `json:"counts"`
}

// ChartFacet is one horizontal panel of the chart. Label is the secondary
// category value, or empty for the single panel of an unfaceted chart.
type ChartFacet struct {
	Label  string       `json:"label"`
	Traces []ChartTrace `json:"traces"`
}

// ChartSpec is a renderer-agnostic description of the grade distribution
// chart: horizontal grouped bars, percentage on the x-axis, grades on the
// y-axis in fixed order, counts overlaid as text.
type ChartSpec struct {
	Title       string       `json:"title"`
	Orientation string       `json:"orientation"`
	BarMode     string       `json:"barmode"`
	XAxisLabel  string       `json:"x_axis_label"`
	GradeOrder  []string     `json:"grade_order"`
	Height      int          `json:"height"`
	Facets      []ChartFacet `json:"facets"`
}
