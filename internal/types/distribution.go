package types

// DistributionRow is one (primary[, secondary], grade) bucket of the
// aggregated grade distribution. Percentage is normalized within the
// (primary[, secondary]) group, so the rows for a fixed group sum to 100.
type DistributionRow struct {
	Primary    string  `json:"primary"`
	Secondary  string  `json:"secondary,omitempty"`
	Grade      string  `json:"grade"`
	Count      int     `json:"count"`
	CountLabel string  `json:"count_label"`
	Percentage float64 `json:"percentage"`
}
