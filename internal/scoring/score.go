// Package scoring folds check verdicts into category and overall scores.
//
// The rules are few but strict: skipped checks are excluded from both the
// numerator and the denominator, warnings count exactly like passes, and the
// overall score is a single pooled ratio across every evaluated check rather
// than an average of category percentages. All arithmetic is pure integer
// math so identical inputs always produce identical reports.
package scoring

import (
	"time"

	"github.com/FabLrc/GithubCICDChecker/internal/catalog"
	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

// Aggregate builds the score report for one evaluation run. Results are
// embedded in the order given; the runner produces them in catalog order.
// Results whose id is not in the catalog are kept in the report but carry no
// score weight.
func Aggregate(repo domain.Repo, results []domain.CheckResult, cat *catalog.Catalog, generatedAt time.Time) *domain.ScoreReport {
	evaluated := make(map[constants.Category]int)
	passed := make(map[constants.Category]int)

	for _, result := range results {
		def, ok := cat.ByID(result.CheckID)
		if !ok {
			continue
		}
		if !result.Status.Evaluated() {
			continue
		}
		evaluated[def.Category]++
		if result.Status.CountsAsPass() {
			passed[def.Category]++
		}
	}

	order := constants.CategoryOrder()
	categories := make([]domain.CategoryScore, 0, len(order))
	totalEvaluated := 0
	totalPassed := 0
	for _, category := range order {
		e := evaluated[category]
		p := passed[category]
		totalEvaluated += e
		totalPassed += p

		pct := constants.EmptyCategoryPercentage
		if e > 0 {
			pct = percentage(p, e)
		}
		categories = append(categories, domain.CategoryScore{
			Category:            category,
			EvaluatedCount:      e,
			PassedOrWarnedCount: p,
			Percentage:          pct,
		})
	}

	overall := 0
	if totalEvaluated > 0 {
		overall = percentage(totalPassed, totalEvaluated)
	}

	return &domain.ScoreReport{
		Repository:        repo.FullName(),
		OverallPercentage: overall,
		Grade:             constants.GradeFor(overall),
		Categories:        categories,
		Results:           results,
		GeneratedAt:       generatedAt.UTC(),
	}
}

// percentage returns 100*p/e rounded half up, in pure integer arithmetic.
func percentage(p, e int) int {
	return (100*p + e/2) / e
}
