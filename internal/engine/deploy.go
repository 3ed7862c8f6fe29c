package engine

import (
	"fmt"
	"strings"

	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

//nolint:gochecknoglobals // Fixed keyword tables shared by the scans
var (
	deployKeywords = []string{
		"deploy", "publish", "release", "gh-pages", "pages", "aws", "azure",
		"gcloud", "heroku", "vercel", "netlify", "render", "fly.io",
	}

	environmentKeywords = []string{
		"environment:", "staging", "production", "prod", "dev",
		"deploy-staging", "deploy-prod",
	}

	smokeTestKeywords = []string{
		"smoke", "e2e", "end-to-end", "end_to_end", "integration-test",
		"post-deploy", "post_deploy", "acceptance", "health-check",
		"healthcheck", "playwright", "cypress", "puppeteer",
	}
)

func evalAutoDeploy(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	files := snap.Workflows.Value
	hasDeploy := containsAny(lowerContent(files), deployKeywords)
	hasPushTrigger := false
	for _, f := range files {
		if f.OnPush {
			hasPushTrigger = true
			break
		}
	}

	switch {
	case hasDeploy && hasPushTrigger:
		return domain.PassResult(def.ID, "Déploiement automatique détecté sur push")
	case hasDeploy:
		return domain.WarnResult(def.ID,
			"Étape de déploiement trouvée mais pas déclenchée automatiquement",
			"Configurez un trigger 'on: push' sur la branche main pour le déploiement auto")
	default:
		return domain.FailResult(def.ID,
			"Aucune étape de déploiement détectée",
			"Ajoutez un job de déploiement automatique dans votre pipeline CI/CD")
	}
}

func evalMultiEnvironment(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := lowerContent(snap.Workflows.Value)
	found := matchedKeywords(content, environmentKeywords)
	if len(found) < constants.MultiEnvMinIndicators {
		return domain.FailResult(def.ID,
			"Pas de gestion multi-environnement détectée",
			"Configurez des environnements GitHub (staging, production) dans votre pipeline")
	}
	return domain.PassResult(def.ID,
		fmt.Sprintf("Indicateurs multi-environnement détectés : %s", strings.Join(found, ", ")))
}

func evalSmokeTests(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := lowerContent(snap.Workflows.Value)
	found := matchedKeywords(content, smokeTestKeywords)
	if len(found) == 0 {
		return domain.FailResult(def.ID,
			"Aucun test smoke ou e2e détecté dans le pipeline",
			"Ajoutez des tests smoke après le déploiement (ex: curl sur /healthz, Playwright, Cypress)")
	}
	return domain.PassResult(def.ID,
		fmt.Sprintf("Tests smoke/e2e détectés : %s", strings.Join(found, ", ")))
}

func evalRollbackStrategy(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	files := snap.Workflows.Value
	if hasWorkflowNamed(files, "rollback.yml", "rollback.yaml", "revert.yml") {
		return domain.PassResult(def.ID, "Workflow de rollback dédié détecté")
	}

	content := lowerContent(files)
	if strings.Contains(content, "rollback") ||
		strings.Contains(content, "undo-deploy") ||
		strings.Contains(content, "undo_deploy") {
		return domain.PassResult(def.ID, "Mécanisme de rollback détecté dans les workflows")
	}

	hasDispatch := false
	for _, f := range files {
		if f.OnDispatch {
			hasDispatch = true
			break
		}
	}
	if hasDispatch && strings.Contains(content, "revert") {
		return domain.PassResult(def.ID, "workflow_dispatch avec option de revert détecté")
	}
	if hasDispatch {
		return domain.WarnResult(def.ID,
			"workflow_dispatch détecté (redéploiement manuel possible) mais pas de rollback explicite",
			"Ajoutez un workflow dédié au rollback ou un input 'rollback' dans workflow_dispatch")
	}

	return domain.FailResult(def.ID,
		"Aucune stratégie de rollback détectée",
		"Créez un workflow .github/workflows/rollback.yml ou ajoutez un trigger workflow_dispatch avec option de rollback")
}
