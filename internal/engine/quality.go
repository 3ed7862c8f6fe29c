package engine

import (
	"fmt"
	"strings"

	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

//nolint:gochecknoglobals // Fixed keyword tables shared by the scans
var (
	testStepKeywords = []string{
		"test", "pytest", "jest", "cargo test", "go test", "npm test",
		"yarn test", "phpunit", "rspec", "unittest",
	}

	lintKeywords = []string{
		"lint", "eslint", "clippy", "flake8", "pylint", "rubocop",
		"prettier", "rustfmt", "black", "golangci-lint", "fmt --check",
	}

	coverageKeywords = []string{
		"coverage", "codecov", "coveralls", "lcov", "tarpaulin",
		"jacoco", "istanbul", "nyc", "cobertura",
	}

	qualityGateKeywords = []string{
		"sonarcloud", "sonarqube", "sonar-scanner", "sonarqube-scan-action",
		"codeclimate", "codacy", "codecov", "deepsource",
	}
)

func evalTestsExist(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := lowerContent(snap.Workflows.Value)
	if !containsAny(content, testStepKeywords) {
		return domain.FailResult(def.ID,
			"Aucune étape de test détectée dans les workflows",
			"Ajoutez une étape 'run: cargo test' ou équivalent dans votre pipeline")
	}
	return domain.PassResult(def.ID, "Exécution de tests détectée dans la CI")
}

// evalTestsPass combines two signals: a test step must exist in the
// workflows, and the latest run must be green. A missing test step fails the
// check outright; an inconclusive run (none yet, or still going) degrades to
// a warning rather than a skip because the test step itself was observed.
func evalTestsPass(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := lowerContent(snap.Workflows.Value)
	if !containsAny(content, testStepKeywords) {
		return domain.FailResult(def.ID,
			"Aucune étape de test détectée dans les workflows",
			"Ajoutez une étape de test dans votre pipeline avant de vérifier qu'ils passent")
	}

	if !snap.Runs.Known {
		return domain.SkipResult(def.ID, snap.Runs.Reason)
	}

	runs := snap.Runs.Value
	if len(runs) == 0 {
		branch := defaultBranch(snap)
		return domain.WarnResult(def.ID,
			fmt.Sprintf("Aucun run trouvé sur la branche %s", branch),
			fmt.Sprintf("Lancez votre pipeline au moins une fois sur %s", branch))
	}

	latest := runs[0]
	switch {
	case !latest.Completed():
		return domain.WarnResult(def.ID,
			"Run encore en cours",
			"Attendez la fin du run et relancez l'analyse")
	case latest.Conclusion == conclusionSuccess:
		name := latest.Name
		if name == "" {
			name = "CI"
		}
		return domain.PassResult(def.ID,
			fmt.Sprintf("Pipeline '%s' vert — étapes de test détectées et exécutées", name))
	default:
		return domain.FailResult(def.ID,
			fmt.Sprintf("Pipeline terminé avec le statut '%s' — les tests ont peut-être échoué", latest.Conclusion),
			"Corrigez les tests en échec pour passer ce check")
	}
}

func evalLintInCI(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := lowerContent(snap.Workflows.Value)
	if !containsAny(content, lintKeywords) {
		return domain.FailResult(def.ID,
			"Aucun linter ou formatteur détecté dans les workflows",
			"Ajoutez un step de lint (ex: clippy, eslint, flake8) dans votre pipeline")
	}
	return domain.PassResult(def.ID, "Étape de lint/formatage détectée dans la CI")
}

func evalCoverageConfigured(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := lowerContent(snap.Workflows.Value)
	found := matchedKeywords(content, coverageKeywords)
	if len(found) == 0 {
		return domain.FailResult(def.ID,
			"Aucune configuration de coverage détectée",
			"Ajoutez un outil de coverage (codecov, tarpaulin, istanbul) dans votre CI")
	}
	return domain.PassResult(def.ID,
		fmt.Sprintf("Coverage détectée : %s", strings.Join(found, ", ")))
}

func evalQualityGate(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := lowerContent(snap.Workflows.Value)
	found := matchedKeywords(content, qualityGateKeywords)
	if len(found) == 0 {
		return domain.FailResult(def.ID,
			"Aucun outil de quality gate détecté",
			"Intégrez SonarCloud, CodeClimate ou Codacy dans votre pipeline pour contrôler la qualité du code")
	}
	return domain.PassResult(def.ID,
		fmt.Sprintf("Quality gate détecté : %s", strings.Join(found, ", ")))
}
