package dataset

// gradeScale maps the letter-grade alphabet to the 4.33-point numeric scale.
// W is a withdrawal, carried as a distinguished negative value so it sorts
// below F without colliding with it.
var gradeScale = map[string]float64{
	"A+": 4.33, "A": 4.00, "A-": 3.67,
	"B+": 3.33, "B": 3.00, "B-": 2.67,
	"C+": 2.33, "C": 2.00, "C-": 1.67,
	"D+": 1.33, "D": 1.00, "D-": 0.67,
	"F": 0.00, "W": -0.30,
}

// GradeOrder is the fixed display order, ascending academic performance.
var GradeOrder = []string{
	"W", "F", "D-", "D", "D+", "C-", "C", "C+", "B-", "B", "B+", "A-", "A", "A+",
}

// GradeToNumeric converts a letter grade to its numeric equivalent. The
// second return is false for anything outside the 14-symbol alphabet.
func GradeToNumeric(grade string) (float64, bool) {
	n, ok := gradeScale[grade]
	return n, ok
}

// GradeRank returns the position of a grade in GradeOrder, for sorting
// distribution rows. Unknown grades sort first.
func GradeRank(grade string) int {
	for i, g := range GradeOrder {
		if g == grade {
			return i + 1
		}
	}
	return 0
}
