package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

func TestFact(t *testing.T) {
	t.Run("known fact keeps value", func(t *testing.T) {
		f := domain.KnownFact([]string{"ci.yml"})
		assert.True(t, f.Known)
		assert.Equal(t, []string{"ci.yml"}, f.Value)
		assert.Empty(t, f.Reason)
	})

	t.Run("known empty differs from unknown", func(t *testing.T) {
		empty := domain.KnownFact([]domain.WorkflowRun{})
		missing := domain.UnknownFact[[]domain.WorkflowRun]("token required")

		assert.True(t, empty.Known)
		assert.False(t, missing.Known)
		assert.Equal(t, "token required", missing.Reason)
	})
}

func TestRepo_FullName(t *testing.T) {
	r := domain.Repo{Owner: "FabLrc", Name: "GithubCICDChecker"}
	assert.Equal(t, "FabLrc/GithubCICDChecker", r.FullName())
}

func TestCommit_Subject(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		expected string
	}{
		{name: "single line", message: "feat: add scan", expected: "feat: add scan"},
		{name: "multi line keeps first", message: "fix: bug\n\nlong body", expected: "fix: bug"},
		{name: "empty", message: "", expected: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, domain.Commit{Message: tc.message}.Subject())
		})
	}
}

func TestWorkflowRun(t *testing.T) {
	start := time.Date(2025, 8, 25, 10, 0, 0, 0, time.UTC)

	t.Run("completed run has duration", func(t *testing.T) {
		run := domain.WorkflowRun{
			Conclusion: "success",
			StartedAt:  start,
			UpdatedAt:  start.Add(3 * time.Minute),
		}
		assert.True(t, run.Completed())
		assert.Equal(t, 3*time.Minute, run.Duration())
	})

	t.Run("in-progress run", func(t *testing.T) {
		run := domain.WorkflowRun{StartedAt: start}
		assert.False(t, run.Completed())
		assert.Zero(t, run.Duration())
	})
}

func TestCheckResultConstructors(t *testing.T) {
	t.Run("pass has no remediation", func(t *testing.T) {
		r := domain.PassResult("readme_exists", "Fichier README.md trouvé")
		assert.Equal(t, constants.StatusPass, r.Status)
		assert.Empty(t, r.Remediation)
	})

	t.Run("fail carries remediation", func(t *testing.T) {
		r := domain.FailResult("readme_exists", "Fichier README.md introuvable", "Ajoutez un README.md")
		assert.Equal(t, constants.StatusFail, r.Status)
		assert.Equal(t, "Ajoutez un README.md", r.Remediation)
	})

	t.Run("warning counts as pass for scoring", func(t *testing.T) {
		r := domain.WarnResult("ghcr_published", "Référence ghcr.io sans push", "Ajoutez push: true")
		assert.True(t, r.Status.CountsAsPass())
	})

	t.Run("skip carries reason as evidence", func(t *testing.T) {
		r := domain.SkipResult("branch_protection", "Token requis")
		assert.Equal(t, constants.StatusSkipped, r.Status)
		assert.Equal(t, "Token requis", r.Evidence)
		assert.False(t, r.Status.Evaluated())
	})
}

func TestScoreReport_FailedResults(t *testing.T) {
	report := &domain.ScoreReport{
		Results: []domain.CheckResult{
			domain.PassResult("a", "ok"),
			domain.FailResult("b", "missing", "add it"),
			domain.WarnResult("c", "partial", "improve"),
			domain.SkipResult("d", "no data"),
			domain.FailResult("e", "broken", "fix it"),
		},
	}

	failed := report.FailedResults()
	require.Len(t, failed, 2)
	assert.Equal(t, "b", failed[0].CheckID)
	assert.Equal(t, "e", failed[1].CheckID)
}

func TestScoreReport_JSONShape(t *testing.T) {
	report := domain.ScoreReport{
		Repository:        "FabLrc/GithubCICDChecker",
		OverallPercentage: 83,
		Grade:             constants.GradeGood,
		Categories: []domain.CategoryScore{
			{
				Category:            constants.CategoryPipeline,
				EvaluatedCount:      6,
				PassedOrWarnedCount: 5,
				Percentage:          83,
			},
		},
		Results:     []domain.CheckResult{domain.PassResult("pipeline_exists", "2 workflow(s)")},
		GeneratedAt: time.Date(2025, 8, 25, 10, 0, 0, 0, time.UTC),
	}

	data, err := json.Marshal(report)
	require.NoError(t, err)

	raw := string(data)
	assert.Contains(t, raw, `"overall_percentage":83`)
	assert.Contains(t, raw, `"grade":"Bon"`)
	assert.Contains(t, raw, `"category":"pipeline_ci"`)
	assert.Contains(t, raw, `"check_id":"pipeline_exists"`)
	assert.Contains(t, raw, `"generated_at":"2025-08-25T10:00:00Z"`)
	assert.NotContains(t, raw, `"review"`, "empty review should be omitted")
}

func TestPriority(t *testing.T) {
	assert.Equal(t, "Haute priorité", domain.PriorityHigh.Label())
	assert.Equal(t, "Priorité moyenne", domain.PriorityMedium.Label())
	assert.Equal(t, "Faible priorité", domain.PriorityLow.Label())
	assert.Equal(t, "#ff4e42", domain.PriorityHigh.Color())
	assert.Equal(t, "#0cce6b", domain.PriorityLow.Color())
}
