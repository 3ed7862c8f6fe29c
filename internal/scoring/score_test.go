package scoring

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabLrc/GithubCICDChecker/internal/catalog"
	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

var testRepo = domain.Repo{Owner: "octocat", Name: "hello-world"} //nolint:gochecknoglobals // shared test fixture

func testTime() time.Time {
	return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
}

// resultsWith builds one result per catalog definition, defaulting to pass
// and overriding the statuses given by id.
func resultsWith(t *testing.T, cat *catalog.Catalog, overrides map[string]constants.CheckStatus) []domain.CheckResult {
	t.Helper()

	results := make([]domain.CheckResult, 0, cat.Len())
	for _, def := range cat.Definitions() {
		status, ok := overrides[def.ID]
		if !ok {
			status = constants.StatusPass
		}
		results = append(results, domain.CheckResult{CheckID: def.ID, Status: status})
	}
	return results
}

func categoryByName(t *testing.T, report *domain.ScoreReport, category constants.Category) domain.CategoryScore {
	t.Helper()

	for _, cs := range report.Categories {
		if cs.Category == category {
			return cs
		}
	}
	t.Fatalf("category %s not in report", category)
	return domain.CategoryScore{}
}

func TestAggregatePipelineScenario(t *testing.T) {
	// 7 pipeline checks: 4 pass, 1 warning, 1 fail, 1 skipped.
	// Evaluated 6, passed-or-warned 5, percentage 83.
	cat, err := catalog.Default()
	require.NoError(t, err)

	results := resultsWith(t, cat, map[string]constants.CheckStatus{
		"ci_notifications":   constants.StatusFail,
		"pipeline_green":     constants.StatusWarning,
		"reusable_workflows": constants.StatusSkipped,
	})
	report := Aggregate(testRepo, results, cat, testTime())

	pipeline := categoryByName(t, report, constants.CategoryPipeline)
	assert.Equal(t, 6, pipeline.EvaluatedCount)
	assert.Equal(t, 5, pipeline.PassedOrWarnedCount)
	assert.Equal(t, 83, pipeline.Percentage)
}

func TestAggregatePooledOverall(t *testing.T) {
	// Evaluated 28 (2 skips), passed-or-warned 21 → overall 75, not the
	// mean of the category percentages.
	cat, err := catalog.Default()
	require.NoError(t, err)

	results := resultsWith(t, cat, map[string]constants.CheckStatus{
		// Pipeline CI: skip 1, fail 1, warn 1 → 5/6
		"reusable_workflows": constants.StatusSkipped,
		"ci_notifications":   constants.StatusFail,
		"pipeline_green":     constants.StatusWarning,
		// Qualité & Tests: fail 1 → 4/5
		"quality_gate": constants.StatusFail,
		// Sécurité: skip 1, fail 1 → 3/4
		"branch_protection": constants.StatusSkipped,
		"secret_scanning":   constants.StatusFail,
		// Conteneurisation: fail 1 → 2/3
		"ghcr_published": constants.StatusFail,
		// Déploiement: fail 1 → 3/4
		"rollback_strategy": constants.StatusFail,
		// Bonnes pratiques: fail 2 → 4/6
		"codeowners_exists": constants.StatusFail,
		"auto_changelog":    constants.StatusFail,
	})
	report := Aggregate(testRepo, results, cat, testTime())

	assert.Equal(t, 75, report.OverallPercentage)
	assert.Equal(t, constants.GradeGood, report.Grade)
	assert.Equal(t, "octocat/hello-world", report.Repository)
	assert.Len(t, report.Categories, 6)
	assert.Len(t, report.Results, constants.TotalChecks)
}

func TestAggregateSkipExclusion(t *testing.T) {
	// A skipped check disappears from its category's denominator and from
	// the overall denominator.
	cat, err := catalog.Default()
	require.NoError(t, err)

	results := resultsWith(t, cat, map[string]constants.CheckStatus{
		"branch_protection": constants.StatusSkipped,
	})
	report := Aggregate(testRepo, results, cat, testTime())

	security := categoryByName(t, report, constants.CategorySecurity)
	assert.Equal(t, 4, security.EvaluatedCount)
	assert.Equal(t, 100, security.Percentage)
	assert.Equal(t, 100, report.OverallPercentage)
}

func TestAggregateEmptyCategorySentinel(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	results := resultsWith(t, cat, map[string]constants.CheckStatus{
		"dockerfile_exists": constants.StatusSkipped,
		"docker_build_ci":   constants.StatusSkipped,
		"ghcr_published":    constants.StatusSkipped,
	})
	report := Aggregate(testRepo, results, cat, testTime())

	container := categoryByName(t, report, constants.CategoryContainer)
	assert.True(t, container.Empty())
	assert.Equal(t, 0, container.EvaluatedCount)
	assert.Equal(t, constants.EmptyCategoryPercentage, container.Percentage)

	// The empty category does not drag the overall down.
	assert.Equal(t, 100, report.OverallPercentage)
}

func TestAggregateAllSkipped(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	overrides := make(map[string]constants.CheckStatus, cat.Len())
	for _, def := range cat.Definitions() {
		overrides[def.ID] = constants.StatusSkipped
	}
	report := Aggregate(testRepo, resultsWith(t, cat, overrides), cat, testTime())

	assert.Equal(t, 0, report.OverallPercentage)
	assert.Equal(t, constants.GradeInsufficient, report.Grade)
	for _, cs := range report.Categories {
		assert.True(t, cs.Empty())
		assert.Equal(t, constants.EmptyCategoryPercentage, cs.Percentage)
	}
}

func TestAggregateWarningCountsAsPass(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	base := map[string]constants.CheckStatus{
		"quality_gate":   constants.StatusFail,
		"ghcr_published": constants.StatusFail,
	}
	withWarning := map[string]constants.CheckStatus{
		"quality_gate":   constants.StatusFail,
		"ghcr_published": constants.StatusFail,
		"tests_exist":    constants.StatusWarning,
	}

	before := Aggregate(testRepo, resultsWith(t, cat, base), cat, testTime())
	after := Aggregate(testRepo, resultsWith(t, cat, withWarning), cat, testTime())

	assert.Equal(t, before.OverallPercentage, after.OverallPercentage)
	assert.Equal(t, before.Categories, after.Categories)
}

func TestAggregateMonotonicity(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	failing := resultsWith(t, cat, map[string]constants.CheckStatus{
		"lint_in_ci":   constants.StatusFail,
		"quality_gate": constants.StatusFail,
	})
	improved := resultsWith(t, cat, map[string]constants.CheckStatus{
		"quality_gate": constants.StatusFail,
	})

	before := Aggregate(testRepo, failing, cat, testTime())
	after := Aggregate(testRepo, improved, cat, testTime())

	beforeQuality := categoryByName(t, before, constants.CategoryQuality)
	afterQuality := categoryByName(t, after, constants.CategoryQuality)
	assert.GreaterOrEqual(t, afterQuality.Percentage, beforeQuality.Percentage)
	assert.GreaterOrEqual(t, after.OverallPercentage, before.OverallPercentage)
}

func TestAggregateIdempotent(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	results := resultsWith(t, cat, map[string]constants.CheckStatus{
		"pipeline_green": constants.StatusWarning,
		"quality_gate":   constants.StatusFail,
	})

	first := Aggregate(testRepo, results, cat, testTime())
	second := Aggregate(testRepo, results, cat, testTime())
	assert.Equal(t, first, second)
}

func TestAggregateUnknownResultCarriesNoWeight(t *testing.T) {
	cat, err := catalog.New([]domain.CheckDefinition{
		{ID: "pipeline_exists", Category: constants.CategoryPipeline, Title: "x"},
	})
	require.NoError(t, err)

	results := []domain.CheckResult{
		{CheckID: "pipeline_exists", Status: constants.StatusPass},
		{CheckID: "from_another_catalog", Status: constants.StatusFail},
	}
	report := Aggregate(testRepo, results, cat, testTime())

	assert.Equal(t, 100, report.OverallPercentage)
	// The stray result stays visible in the report body.
	assert.Len(t, report.Results, 2)
}

func TestPercentageRoundsHalfUp(t *testing.T) {
	tests := []struct {
		p, e, want int
	}{
		{5, 6, 83},
		{21, 28, 75},
		{1, 8, 13},  // 12.5 rounds up
		{5, 8, 63},  // 62.5 rounds up
		{1, 3, 33},  // 33.33 rounds down
		{2, 3, 67},  // 66.67 rounds up
		{0, 5, 0},
		{5, 5, 100},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, percentage(tt.p, tt.e), "percentage(%d, %d)", tt.p, tt.e)
	}
}
