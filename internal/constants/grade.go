package constants

// Grade is the human-readable quality tier derived from the overall score,
// graded like PageSpeed Insights.
type Grade string

// Grade constants from best to worst.
const (
	// GradeExcellent is awarded at 90% and above.
	GradeExcellent Grade = "Excellent"

	// GradeGood is awarded between 70% and 89%.
	GradeGood Grade = "Bon"

	// GradeNeedsWork is awarded between 50% and 69%.
	GradeNeedsWork Grade = "À améliorer"

	// GradeInsufficient is awarded below 50%.
	GradeInsufficient Grade = "Insuffisant"
)

// String returns the French label of the grade.
func (g Grade) String() string {
	return string(g)
}

// Color returns the display color for the grade. The palette switches at
// 90 and 50 only, so GradeGood shares the orange of GradeNeedsWork.
func (g Grade) Color() string {
	switch g {
	case GradeExcellent:
		return "#0cce6b"
	case GradeGood, GradeNeedsWork:
		return "#ffa400"
	default:
		return "#ff4e42"
	}
}

// GradeFor maps an overall percentage to its grade.
func GradeFor(percentage int) Grade {
	switch {
	case percentage >= 90:
		return GradeExcellent
	case percentage >= 70:
		return GradeGood
	case percentage >= 50:
		return GradeNeedsWork
	default:
		return GradeInsufficient
	}
}
