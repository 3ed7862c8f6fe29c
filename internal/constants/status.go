package constants

// CheckStatus represents the verdict of a single check evaluation.
// Status values use snake_case-compatible lowercase for JSON serialization.
type CheckStatus string

// Check status constants define the four possible verdicts.
const (
	// StatusPass indicates the check's policy is satisfied.
	StatusPass CheckStatus = "pass"

	// StatusFail indicates the check's policy is violated.
	StatusFail CheckStatus = "fail"

	// StatusWarning indicates the leading signal holds but the auxiliary
	// evidence is inconclusive. Warnings score identically to passes;
	// the distinction is presentation only.
	StatusWarning CheckStatus = "warning"

	// StatusSkipped indicates the check could not be evaluated (missing
	// data, missing credential, not applicable). Skipped checks are
	// excluded from both the numerator and denominator of every score.
	StatusSkipped CheckStatus = "skipped"
)

// String returns the string representation of the CheckStatus.
// This implements fmt.Stringer for convenient logging and debugging.
func (s CheckStatus) String() string {
	return string(s)
}

// Evaluated reports whether the status participates in scoring.
func (s CheckStatus) Evaluated() bool {
	return s != StatusSkipped
}

// CountsAsPass reports whether the status contributes to the
// passed-or-warned numerator.
func (s CheckStatus) CountsAsPass() bool {
	return s == StatusPass || s == StatusWarning
}

// Category represents one of the six functional groupings of checks.
type Category string

// Category constants, in report order.
const (
	// CategoryPipeline groups checks about the CI pipeline itself.
	CategoryPipeline Category = "pipeline_ci"

	// CategoryQuality groups checks about tests and code quality gates.
	CategoryQuality Category = "quality_tests"

	// CategorySecurity groups checks about secrets, scanners and branch protection.
	CategorySecurity Category = "security"

	// CategoryContainer groups checks about Docker build and publication.
	CategoryContainer Category = "containerization"

	// CategoryDeployment groups checks about deploy automation and recovery.
	CategoryDeployment Category = "deployment"

	// CategoryPractices groups repository hygiene checks.
	CategoryPractices Category = "best_practices"
)

// String returns the string representation of the Category.
func (c Category) String() string {
	return string(c)
}

// Label returns the French display name for the category.
func (c Category) Label() string {
	switch c {
	case CategoryPipeline:
		return "Pipeline CI"
	case CategoryQuality:
		return "Qualité & Tests"
	case CategorySecurity:
		return "Sécurité"
	case CategoryContainer:
		return "Conteneurisation"
	case CategoryDeployment:
		return "Déploiement"
	case CategoryPractices:
		return "Bonnes pratiques"
	default:
		return string(c)
	}
}

// Icon returns the emoji shown next to the category in text output.
func (c Category) Icon() string {
	switch c {
	case CategoryPipeline:
		return "🔧"
	case CategoryQuality:
		return "🧪"
	case CategorySecurity:
		return "🔒"
	case CategoryContainer:
		return "🐳"
	case CategoryDeployment:
		return "🚀"
	case CategoryPractices:
		return "⭐"
	default:
		return "•"
	}
}

// CategoryOrder returns all categories in their fixed report order.
// The returned slice is a fresh copy on every call.
func CategoryOrder() []Category {
	return []Category{
		CategoryPipeline,
		CategoryQuality,
		CategorySecurity,
		CategoryContainer,
		CategoryDeployment,
		CategoryPractices,
	}
}

// CategorySize returns the fixed number of checks in the category.
// These sizes are catalog invariants verified at load time.
func CategorySize(c Category) int {
	switch c {
	case CategoryPipeline:
		return 7
	case CategoryQuality:
		return 5
	case CategorySecurity:
		return 5
	case CategoryContainer:
		return 3
	case CategoryDeployment:
		return 4
	case CategoryPractices:
		return 6
	default:
		return 0
	}
}

// TotalChecks is the fixed size of the full catalog.
const TotalChecks = 30
