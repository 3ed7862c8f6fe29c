package engine

import (
	"fmt"
	"strings"

	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

//nolint:gochecknoglobals // Fixed keyword tables shared by the scans
var (
	// secretPatterns are matched case-sensitively on the raw YAML: the
	// prefixes only mean anything in their exact casing.
	secretPatterns = []string{
		"AKIA",       // AWS access key id
		"sk-",        // OpenAI / Stripe key
		"ghp_",       // GitHub PAT
		"password: ", // inline password value
		"passwd",
		"secret_key",
	}

	securityScanKeywords = []string{
		"trivy", "snyk", "bandit", "safety", "codeql", "semgrep",
		"sonarcloud", "sonarqube", "dependabot", "grype", "anchore",
		"checkov", "tfsec",
	}

	secretScanKeywords = []string{
		"gitleaks", "trufflehog", "detect-secrets", "git-secrets", "secretlint",
	}
)

func evalNoSecretsInCode(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := combinedContent(snap.Workflows.Value)
	found := matchedKeywords(content, secretPatterns)
	if len(found) > 0 {
		return domain.FailResult(def.ID,
			fmt.Sprintf("Patterns suspects détectés : %s", strings.Join(found, ", ")),
			"Utilisez des GitHub Secrets (${{ secrets.MY_SECRET }}) au lieu de valeurs en dur")
	}
	return domain.PassResult(def.ID, "Aucun secret hardcodé détecté dans les workflows")
}

func evalSecurityScan(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := lowerContent(snap.Workflows.Value)
	found := matchedKeywords(content, securityScanKeywords)
	if len(found) == 0 {
		return domain.FailResult(def.ID,
			"Aucun outil de scan de sécurité détecté",
			"Ajoutez Trivy, Snyk, CodeQL ou un autre scanner de sécurité dans votre pipeline")
	}
	return domain.PassResult(def.ID,
		fmt.Sprintf("Outil(s) de sécurité détecté(s) : %s", strings.Join(found, ", ")))
}

func evalSecretScanning(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := lowerContent(snap.Workflows.Value)
	found := matchedKeywords(content, secretScanKeywords)
	if len(found) == 0 {
		return domain.FailResult(def.ID,
			"Aucun outil de détection de secrets dans la CI",
			"Ajoutez gitleaks ou trufflehog dans votre pipeline pour détecter les secrets committés")
	}
	return domain.PassResult(def.ID,
		fmt.Sprintf("Outil de détection de secrets détecté : %s", strings.Join(found, ", ")))
}

func evalDependabotConfigured(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Files.Known {
		return domain.SkipResult(def.ID, snap.Files.Reason)
	}

	files := snap.Files.Value
	switch {
	case hasFile(files, ".github/dependabot.yml") || hasFile(files, ".github/dependabot.yaml"):
		return domain.PassResult(def.ID, "Dependabot configuré")
	case hasFile(files, "renovate.json") || hasFile(files, ".github/renovate.json"):
		return domain.PassResult(def.ID, "Renovate configuré")
	default:
		return domain.FailResult(def.ID,
			"Ni Dependabot ni Renovate ne sont configurés",
			"Ajoutez .github/dependabot.yml pour automatiser les mises à jour de dépendances")
	}
}

func evalBranchProtection(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Protection.Known {
		return domain.SkipResult(def.ID, snap.Protection.Reason)
	}

	branch := defaultBranch(snap)
	protection := snap.Protection.Value
	switch {
	case protection.Enabled && protection.RequiresReviews:
		return domain.PassResult(def.ID,
			fmt.Sprintf("Branche %s protégée avec PR reviews obligatoires", branch))
	case protection.Enabled:
		return domain.WarnResult(def.ID,
			"Protection de branche activée mais sans review obligatoire",
			"Activez 'Require pull request reviews' dans les settings de protection")
	default:
		return domain.FailResult(def.ID,
			fmt.Sprintf("Aucune protection configurée sur %s", branch),
			"Activez la protection de branche dans Settings > Branches > Branch protection rules")
	}
}
