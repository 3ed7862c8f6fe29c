package domain

import "github.com/FabLrc/GithubCICDChecker/internal/constants"

// Snapshot fact names used in CheckDefinition.RequiredFields. These mirror
// the RepositorySnapshot field set; a check listing a fact here is skipped
// when that fact is unknown.
const (
	FieldWorkflows  = "workflows"
	FieldRuns       = "runs"
	FieldProtection = "protection"
	FieldFiles      = "files"
	FieldCommits    = "commits"
	FieldReleases   = "releases"
	FieldChangelog  = "changelog"
)

// CheckDefinition is the static description of one check. The full set of
// definitions is fixed at process start; see the catalog package.
//
// Example JSON representation:
//
//	{
//	    "id": "branch_protection",
//	    "category": "security",
//	    "title": "Protection de branche",
//	    "description": "La branche principale est protégée avec reviews obligatoires",
//	    "remediation": "Activez la protection de branche dans Settings > Branches",
//	    "required_fields": ["protection"]
//	}
type CheckDefinition struct {
	// ID is the unique stable identifier (snake_case).
	ID string `json:"id"`

	// Category is the functional grouping this check belongs to.
	// Every definition belongs to exactly one category.
	Category constants.Category `json:"category"`

	// Title is the French display name.
	Title string `json:"title"`

	// Description says what the check verifies, in French.
	Description string `json:"description"`

	// Remediation is the generic guidance shown when the check does not
	// pass; evaluators may replace it with more specific advice.
	Remediation string `json:"remediation"`

	// RequiredFields names the snapshot facts the evaluator reads.
	RequiredFields []string `json:"required_fields"`
}

// CheckResult is the verdict of one check for one evaluation run.
// Exactly one result exists per catalog definition per run.
type CheckResult struct {
	// CheckID references the definition this verdict belongs to.
	CheckID string `json:"check_id"`

	// Status is the verdict.
	Status constants.CheckStatus `json:"status"`

	// Evidence is a short factual note explaining the verdict. For skipped
	// checks it carries the skip reason.
	Evidence string `json:"evidence"`

	// Remediation is actionable advice, populated when the status is not
	// pass.
	Remediation string `json:"remediation,omitempty"`
}

// PassResult builds a passing verdict.
func PassResult(checkID, evidence string) CheckResult {
	return CheckResult{
		CheckID:  checkID,
		Status:   constants.StatusPass,
		Evidence: evidence,
	}
}

// FailResult builds a failing verdict with remediation advice.
func FailResult(checkID, evidence, remediation string) CheckResult {
	return CheckResult{
		CheckID:     checkID,
		Status:      constants.StatusFail,
		Evidence:    evidence,
		Remediation: remediation,
	}
}

// WarnResult builds a warning verdict: the leading signal holds but the
// auxiliary evidence is inconclusive. Warnings score as passes.
func WarnResult(checkID, evidence, remediation string) CheckResult {
	return CheckResult{
		CheckID:     checkID,
		Status:      constants.StatusWarning,
		Evidence:    evidence,
		Remediation: remediation,
	}
}

// SkipResult builds a skipped verdict carrying the reason the check could
// not be evaluated. Skipped checks never affect scores.
func SkipResult(checkID, reason string) CheckResult {
	return CheckResult{
		CheckID:  checkID,
		Status:   constants.StatusSkipped,
		Evidence: reason,
	}
}
