// Package engine evaluates the check catalog against a repository snapshot.
//
// Every evaluator is a pure function of the snapshot: no I/O, no clock, no
// shared state. The same snapshot always yields the same verdicts, which is
// what makes scan results reproducible and the evaluators trivially testable.
// Data gathering lives in internal/github; scoring in internal/scoring.
package engine

import (
	"fmt"

	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

// Evaluator computes the verdict of one check from the snapshot. The
// definition supplies the check id and the default remediation text.
type Evaluator func(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult

// evaluators maps every implemented check id to its evaluator. Ids missing
// here degrade to a skipped verdict at run time, never an error.
func evaluators() map[string]Evaluator {
	return map[string]Evaluator{
		// Pipeline CI
		"pipeline_exists":    evalPipelineExists,
		"pipeline_green":     evalPipelineGreen,
		"pipeline_fast":      evalPipelineFast,
		"ci_cache":           evalCICache,
		"matrix_testing":     evalMatrixTesting,
		"reusable_workflows": evalReusableWorkflows,
		"ci_notifications":   evalCINotifications,

		// Qualité & Tests
		"tests_exist":         evalTestsExist,
		"tests_pass":          evalTestsPass,
		"lint_in_ci":          evalLintInCI,
		"coverage_configured": evalCoverageConfigured,
		"quality_gate":        evalQualityGate,

		// Sécurité
		"no_secrets_in_code":    evalNoSecretsInCode,
		"security_scan":         evalSecurityScan,
		"secret_scanning":       evalSecretScanning,
		"dependabot_configured": evalDependabotConfigured,
		"branch_protection":     evalBranchProtection,

		// Conteneurisation
		"dockerfile_exists": evalDockerfileExists,
		"docker_build_ci":   evalDockerBuildCI,
		"ghcr_published":    evalGHCRPublished,

		// Déploiement
		"auto_deploy":       evalAutoDeploy,
		"multi_environment": evalMultiEnvironment,
		"smoke_tests":       evalSmokeTests,
		"rollback_strategy": evalRollbackStrategy,

		// Bonnes pratiques
		"readme_exists":        evalReadmeExists,
		"gitignore_exists":     evalGitignoreExists,
		"codeowners_exists":    evalCodeownersExists,
		"conventional_commits": evalConventionalCommits,
		"release_tagging":      evalReleaseTagging,
		"auto_changelog":       evalAutoChangelog,
	}
}

// fileExistsResult is the shared verdict for plain file-presence checks at
// the repository root.
func fileExistsResult(def domain.CheckDefinition, snap *domain.RepositorySnapshot, path string) domain.CheckResult {
	if !snap.Files.Known {
		return domain.SkipResult(def.ID, snap.Files.Reason)
	}
	if hasFile(snap.Files.Value, path) {
		return domain.PassResult(def.ID, fmt.Sprintf("Fichier %s trouvé", path))
	}
	return domain.FailResult(def.ID,
		fmt.Sprintf("Fichier %s introuvable", path),
		fmt.Sprintf("Ajoutez un fichier %s à la racine du projet", path))
}
