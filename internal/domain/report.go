package domain

import (
	"time"

	"github.com/FabLrc/GithubCICDChecker/internal/constants"
)

// CategoryScore aggregates the verdicts of one category.
type CategoryScore struct {
	// Category identifies the grouping.
	Category constants.Category `json:"category"`

	// EvaluatedCount is the number of non-skipped checks, the scoring
	// denominator.
	EvaluatedCount int `json:"evaluated_count"`

	// PassedOrWarnedCount is the number of pass and warning verdicts, the
	// scoring numerator.
	PassedOrWarnedCount int `json:"passed_or_warned_count"`

	// Percentage is the rounded category score (0-100), or
	// constants.EmptyCategoryPercentage when every check was skipped.
	Percentage int `json:"percentage"`
}

// Empty reports whether the category had no evaluated checks and therefore
// contributes nothing to the overall score.
func (c CategoryScore) Empty() bool {
	return c.EvaluatedCount == 0
}

// ScoreReport is the immutable output of one evaluation run. It is created
// once per request and never modified; callers hold it as long as needed.
//
// Example JSON representation:
//
//	{
//	    "repository": "FabLrc/GithubCICDChecker",
//	    "overall_percentage": 75,
//	    "grade": "Bon",
//	    "categories": [...],
//	    "results": [...],
//	    "generated_at": "2025-08-25T10:00:00Z"
//	}
type ScoreReport struct {
	// Repository is the owner/name identifier of the scored repository.
	Repository string `json:"repository"`

	// OverallPercentage is the pooled ratio across all non-empty
	// categories, rounded half-up. It is never an average of category
	// percentages.
	OverallPercentage int `json:"overall_percentage"`

	// Grade is the quality tier derived from OverallPercentage.
	Grade constants.Grade `json:"grade"`

	// Categories holds one score per category, in fixed category order.
	Categories []CategoryScore `json:"categories"`

	// Results holds every check verdict, in catalog order.
	Results []CheckResult `json:"results"`

	// GeneratedAt is when the report was produced (UTC).
	GeneratedAt time.Time `json:"generated_at"`

	// Review is the optional AI advisory attached after scoring.
	Review *Review `json:"review,omitempty"`
}

// FailedResults returns the verdicts with fail status, in catalog order.
// The advisory prompt is built from these.
func (r *ScoreReport) FailedResults() []CheckResult {
	var failed []CheckResult
	for _, res := range r.Results {
		if res.Status == constants.StatusFail {
			failed = append(failed, res)
		}
	}
	return failed
}
