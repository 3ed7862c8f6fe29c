package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
	"github.com/FabLrc/GithubCICDChecker/internal/testutil"
)

func TestEvalTestsExist(t *testing.T) {
	tests := []struct {
		name       string
		content    string
		wantStatus constants.CheckStatus
	}{
		{"cargo test step", "steps:\n  - run: cargo test --all", constants.StatusPass},
		{"go test step", "steps:\n  - run: go test ./...", constants.StatusPass},
		{"pytest step", "steps:\n  - run: pytest -v", constants.StatusPass},
		{"no test step", "steps:\n  - run: make build", constants.StatusFail},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := evalTestsExist(def("tests_exist"), testutil.WorkflowSnapshot(tt.content))
			assert.Equal(t, tt.wantStatus, result.Status)
		})
	}

	t.Run("unknown workflows skips", func(t *testing.T) {
		result := evalTestsExist(def("tests_exist"), testutil.UnknownSnapshot("token manquant"))
		assert.Equal(t, constants.StatusSkipped, result.Status)
	})
}

func TestEvalTestsPass(t *testing.T) {
	const withTests = "steps:\n  - run: go test ./..."
	started := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("no test step fails even without run data", func(t *testing.T) {
		snap := testutil.WorkflowSnapshot("steps:\n  - run: make build")
		snap.Runs = domain.UnknownFact[[]domain.WorkflowRun]("Impossible de récupérer les runs")
		result := evalTestsPass(def("tests_pass"), snap)
		require.Equal(t, constants.StatusFail, result.Status)
		assert.Equal(t, "Aucune étape de test détectée dans les workflows", result.Evidence)
	})

	t.Run("test step but unknown runs skips", func(t *testing.T) {
		snap := testutil.WorkflowSnapshot(withTests)
		snap.Runs = domain.UnknownFact[[]domain.WorkflowRun]("Impossible de récupérer les runs")
		result := evalTestsPass(def("tests_pass"), snap)
		assert.Equal(t, constants.StatusSkipped, result.Status)
		assert.Equal(t, "Impossible de récupérer les runs", result.Evidence)
	})

	t.Run("test step but no runs warns", func(t *testing.T) {
		result := evalTestsPass(def("tests_pass"), testutil.WorkflowSnapshot(withTests))
		assert.Equal(t, constants.StatusWarning, result.Status)
		assert.Contains(t, result.Evidence, "Aucun run trouvé")
	})

	t.Run("test step with run in progress warns", func(t *testing.T) {
		snap := testutil.WorkflowSnapshot(withTests)
		snap.Runs = domain.KnownFact([]domain.WorkflowRun{{Name: "CI", StartedAt: started}})
		result := evalTestsPass(def("tests_pass"), snap)
		assert.Equal(t, constants.StatusWarning, result.Status)
		assert.Equal(t, "Run encore en cours", result.Evidence)
	})

	t.Run("green pipeline passes", func(t *testing.T) {
		snap := testutil.WorkflowSnapshot(withTests)
		snap.Runs = domain.KnownFact([]domain.WorkflowRun{{Name: "CI", Conclusion: "success", StartedAt: started}})
		result := evalTestsPass(def("tests_pass"), snap)
		require.Equal(t, constants.StatusPass, result.Status)
		assert.Equal(t, "Pipeline 'CI' vert — étapes de test détectées et exécutées", result.Evidence)
	})

	t.Run("red pipeline fails", func(t *testing.T) {
		snap := testutil.WorkflowSnapshot(withTests)
		snap.Runs = domain.KnownFact([]domain.WorkflowRun{{Name: "CI", Conclusion: "failure", StartedAt: started}})
		result := evalTestsPass(def("tests_pass"), snap)
		require.Equal(t, constants.StatusFail, result.Status)
		assert.Contains(t, result.Evidence, "Pipeline terminé avec le statut 'failure'")
	})
}

func TestEvalLintInCI(t *testing.T) {
	t.Run("golangci-lint detected", func(t *testing.T) {
		result := evalLintInCI(def("lint_in_ci"),
			testutil.WorkflowSnapshot("steps:\n  - run: golangci-lint run"))
		assert.Equal(t, constants.StatusPass, result.Status)
	})

	t.Run("fmt check detected", func(t *testing.T) {
		result := evalLintInCI(def("lint_in_ci"),
			testutil.WorkflowSnapshot("steps:\n  - run: cargo fmt --check"))
		assert.Equal(t, constants.StatusPass, result.Status)
	})

	t.Run("none fails", func(t *testing.T) {
		result := evalLintInCI(def("lint_in_ci"),
			testutil.WorkflowSnapshot("steps:\n  - run: make build"))
		assert.Equal(t, constants.StatusFail, result.Status)
		assert.Equal(t, "Aucun linter ou formatteur détecté dans les workflows", result.Evidence)
	})
}

func TestEvalCoverageConfigured(t *testing.T) {
	t.Run("codecov detected and listed", func(t *testing.T) {
		result := evalCoverageConfigured(def("coverage_configured"),
			testutil.WorkflowSnapshot("steps:\n  - uses: codecov/codecov-action@v4"))
		require.Equal(t, constants.StatusPass, result.Status)
		assert.Equal(t, "Coverage détectée : codecov", result.Evidence)
	})

	t.Run("none fails", func(t *testing.T) {
		result := evalCoverageConfigured(def("coverage_configured"),
			testutil.WorkflowSnapshot("steps:\n  - run: go test ./..."))
		assert.Equal(t, constants.StatusFail, result.Status)
	})
}

func TestEvalQualityGate(t *testing.T) {
	t.Run("sonarcloud detected", func(t *testing.T) {
		result := evalQualityGate(def("quality_gate"),
			testutil.WorkflowSnapshot("steps:\n  - uses: SonarSource/sonarqube-scan-action@v3"))
		require.Equal(t, constants.StatusPass, result.Status)
		assert.Contains(t, result.Evidence, "sonarqube")
	})

	t.Run("none fails", func(t *testing.T) {
		result := evalQualityGate(def("quality_gate"),
			testutil.WorkflowSnapshot("steps:\n  - run: go vet ./..."))
		assert.Equal(t, constants.StatusFail, result.Status)
		assert.Equal(t, "Aucun outil de quality gate détecté", result.Evidence)
	})
}
