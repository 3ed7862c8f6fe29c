package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
	"github.com/FabLrc/GithubCICDChecker/internal/testutil"
)

// workflowWithTriggers builds a single-workflow snapshot with parsed triggers.
func workflowWithTriggers(content string, onPush, onDispatch bool) *domain.RepositorySnapshot {
	snap := testutil.EmptySnapshot()
	snap.Workflows = domain.KnownFact([]domain.WorkflowFile{{
		Name:       "ci.yml",
		Path:       ".github/workflows/ci.yml",
		Content:    content,
		OnPush:     onPush,
		OnDispatch: onDispatch,
	}})
	return snap
}

func TestEvalAutoDeploy(t *testing.T) {
	t.Run("deploy step on push passes", func(t *testing.T) {
		snap := workflowWithTriggers("jobs:\n  deploy:\n    runs-on: ubuntu-latest", true, false)
		result := evalAutoDeploy(def("auto_deploy"), snap)
		require.Equal(t, constants.StatusPass, result.Status)
		assert.Equal(t, "Déploiement automatique détecté sur push", result.Evidence)
	})

	t.Run("deploy step without push trigger warns", func(t *testing.T) {
		snap := workflowWithTriggers("jobs:\n  deploy:\n    runs-on: ubuntu-latest", false, true)
		result := evalAutoDeploy(def("auto_deploy"), snap)
		require.Equal(t, constants.StatusWarning, result.Status)
		assert.Equal(t, "Étape de déploiement trouvée mais pas déclenchée automatiquement", result.Evidence)
	})

	t.Run("no deploy step fails", func(t *testing.T) {
		snap := workflowWithTriggers("jobs:\n  build:\n    runs-on: ubuntu-latest", true, false)
		result := evalAutoDeploy(def("auto_deploy"), snap)
		require.Equal(t, constants.StatusFail, result.Status)
		assert.Equal(t, "Aucune étape de déploiement détectée", result.Evidence)
	})
}

func TestEvalMultiEnvironment(t *testing.T) {
	t.Run("staging and production pass", func(t *testing.T) {
		content := "jobs:\n  deploy-staging:\n    environment: staging\n  deploy-prod:\n    environment: production"
		result := evalMultiEnvironment(def("multi_environment"), testutil.WorkflowSnapshot(content))
		require.Equal(t, constants.StatusPass, result.Status)
		assert.Contains(t, result.Evidence, "Indicateurs multi-environnement détectés")
		assert.Contains(t, result.Evidence, "staging")
	})

	t.Run("single indicator fails", func(t *testing.T) {
		// "dev" alone is below the two-indicator minimum.
		content := "jobs:\n  dev-build:\n    runs-on: ubuntu-latest"
		result := evalMultiEnvironment(def("multi_environment"), testutil.WorkflowSnapshot(content))
		require.Equal(t, constants.StatusFail, result.Status)
		assert.Equal(t, "Pas de gestion multi-environnement détectée", result.Evidence)
	})
}

func TestEvalSmokeTests(t *testing.T) {
	t.Run("playwright detected", func(t *testing.T) {
		result := evalSmokeTests(def("smoke_tests"),
			testutil.WorkflowSnapshot("steps:\n  - run: npx playwright test"))
		require.Equal(t, constants.StatusPass, result.Status)
		assert.Contains(t, result.Evidence, "playwright")
	})

	t.Run("health check detected", func(t *testing.T) {
		result := evalSmokeTests(def("smoke_tests"),
			testutil.WorkflowSnapshot("steps:\n  - run: curl --fail https://app.example.com/healthcheck"))
		assert.Equal(t, constants.StatusPass, result.Status)
	})

	t.Run("none fails", func(t *testing.T) {
		result := evalSmokeTests(def("smoke_tests"),
			testutil.WorkflowSnapshot("steps:\n  - run: make build"))
		require.Equal(t, constants.StatusFail, result.Status)
		assert.Equal(t, "Aucun test smoke ou e2e détecté dans le pipeline", result.Evidence)
	})
}

func TestEvalRollbackStrategy(t *testing.T) {
	t.Run("dedicated rollback workflow passes", func(t *testing.T) {
		snap := testutil.EmptySnapshot()
		snap.Workflows = domain.KnownFact([]domain.WorkflowFile{
			{Name: "ci.yml", Content: "jobs:\n  build:"},
			{Name: "rollback.yml", Content: "on: workflow_dispatch"},
		})
		result := evalRollbackStrategy(def("rollback_strategy"), snap)
		require.Equal(t, constants.StatusPass, result.Status)
		assert.Equal(t, "Workflow de rollback dédié détecté", result.Evidence)
	})

	t.Run("rollback keyword passes", func(t *testing.T) {
		result := evalRollbackStrategy(def("rollback_strategy"),
			testutil.WorkflowSnapshot("jobs:\n  rollback-prod:\n    runs-on: ubuntu-latest"))
		require.Equal(t, constants.StatusPass, result.Status)
		assert.Equal(t, "Mécanisme de rollback détecté dans les workflows", result.Evidence)
	})

	t.Run("dispatch with revert passes", func(t *testing.T) {
		snap := workflowWithTriggers("jobs:\n  revert-release:\n    runs-on: ubuntu-latest", false, true)
		result := evalRollbackStrategy(def("rollback_strategy"), snap)
		require.Equal(t, constants.StatusPass, result.Status)
		assert.Equal(t, "workflow_dispatch avec option de revert détecté", result.Evidence)
	})

	t.Run("dispatch alone warns", func(t *testing.T) {
		snap := workflowWithTriggers("jobs:\n  redeploy:\n    runs-on: ubuntu-latest", false, true)
		result := evalRollbackStrategy(def("rollback_strategy"), snap)
		require.Equal(t, constants.StatusWarning, result.Status)
		assert.Contains(t, result.Evidence, "redéploiement manuel possible")
	})

	t.Run("nothing fails", func(t *testing.T) {
		result := evalRollbackStrategy(def("rollback_strategy"),
			testutil.WorkflowSnapshot("jobs:\n  build:\n    runs-on: ubuntu-latest"))
		require.Equal(t, constants.StatusFail, result.Status)
		assert.Equal(t, "Aucune stratégie de rollback détectée", result.Evidence)
	})
}
