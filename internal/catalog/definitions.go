package catalog

import (
	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

// defaultDefinitions returns the production check list in display order.
// Titles, descriptions and remediations are the user-facing French strings.
func defaultDefinitions() []domain.CheckDefinition {
	return []domain.CheckDefinition{
		// Pipeline CI
		{
			ID:             "pipeline_exists",
			Category:       constants.CategoryPipeline,
			Title:          "Pipeline CI existe",
			Description:    "Au moins un workflow GitHub Actions est défini dans .github/workflows/.",
			Remediation:    "Créez un workflow YAML dans .github/workflows/ pour lancer une CI sur chaque push.",
			RequiredFields: []string{domain.FieldWorkflows},
		},
		{
			ID:             "pipeline_green",
			Category:       constants.CategoryPipeline,
			Title:          "Pipeline vert sur main",
			Description:    "Le dernier run de workflow sur la branche par défaut s'est terminé en succès.",
			Remediation:    "Corrigez le pipeline jusqu'à obtenir un run vert sur la branche principale.",
			RequiredFields: []string{domain.FieldRuns},
		},
		{
			ID:             "pipeline_fast",
			Category:       constants.CategoryPipeline,
			Title:          "Pipeline rapide (< 5 min)",
			Description:    "La durée moyenne des derniers runs terminés reste sous 5 minutes.",
			Remediation:    "Réduisez la durée du pipeline : cache de dépendances, jobs parallèles, runners plus rapides.",
			RequiredFields: []string{domain.FieldRuns},
		},
		{
			ID:             "ci_cache",
			Category:       constants.CategoryPipeline,
			Title:          "Cache de dépendances",
			Description:    "Le pipeline met en cache les dépendances entre les builds.",
			Remediation:    "Ajoutez actions/cache ou l'option cache des actions setup-* pour accélérer les builds.",
			RequiredFields: []string{domain.FieldWorkflows},
		},
		{
			ID:             "matrix_testing",
			Category:       constants.CategoryPipeline,
			Title:          "Tests en matrice",
			Description:    "Une strategy matrix teste plusieurs versions de langage ou systèmes d'exploitation.",
			Remediation:    "Ajoutez une strategy matrix pour couvrir plusieurs versions ou OS.",
			RequiredFields: []string{domain.FieldWorkflows},
		},
		{
			ID:             "reusable_workflows",
			Category:       constants.CategoryPipeline,
			Title:          "Workflows réutilisables",
			Description:    "Le pipeline définit ou appelle des workflows réutilisables (workflow_call).",
			Remediation:    "Factorisez les étapes communes dans un workflow réutilisable (workflow_call).",
			RequiredFields: []string{domain.FieldWorkflows},
		},
		{
			ID:             "ci_notifications",
			Category:       constants.CategoryPipeline,
			Title:          "Notifications CI",
			Description:    "Le pipeline notifie une messagerie du résultat des builds.",
			Remediation:    "Ajoutez une étape de notification (Slack, Discord, Telegram…) pour être alerté des échecs.",
			RequiredFields: []string{domain.FieldWorkflows},
		},

		// Qualité & Tests
		{
			ID:             "tests_exist",
			Category:       constants.CategoryQuality,
			Title:          "Tests présents",
			Description:    "Une étape d'exécution de tests est présente dans la CI.",
			Remediation:    "Ajoutez une étape exécutant vos tests dans le workflow CI.",
			RequiredFields: []string{domain.FieldWorkflows},
		},
		{
			ID:             "tests_pass",
			Category:       constants.CategoryQuality,
			Title:          "Tests passent dans CI",
			Description:    "Les étapes de test sont exécutées et le dernier pipeline est vert.",
			Remediation:    "Corrigez les tests en échec jusqu'à obtenir un pipeline vert.",
			RequiredFields: []string{domain.FieldWorkflows, domain.FieldRuns},
		},
		{
			ID:             "lint_in_ci",
			Category:       constants.CategoryQuality,
			Title:          "Lint dans la CI",
			Description:    "Une étape de lint ou de vérification de formatage est présente dans la CI.",
			Remediation:    "Ajoutez une étape de lint/formatage (eslint, clippy, golangci-lint…) dans la CI.",
			RequiredFields: []string{domain.FieldWorkflows},
		},
		{
			ID:             "coverage_configured",
			Category:       constants.CategoryQuality,
			Title:          "Coverage configurée",
			Description:    "La CI mesure ou publie la couverture de tests.",
			Remediation:    "Configurez un outil de coverage (codecov, coveralls…) dans la CI.",
			RequiredFields: []string{domain.FieldWorkflows},
		},
		{
			ID:             "quality_gate",
			Category:       constants.CategoryQuality,
			Title:          "Quality gate",
			Description:    "Un quality gate contrôle la qualité du code à chaque build.",
			Remediation:    "Branchez un quality gate (SonarCloud, CodeClimate, Codacy…) sur le pipeline.",
			RequiredFields: []string{domain.FieldWorkflows},
		},

		// Sécurité
		{
			ID:             "no_secrets_in_code",
			Category:       constants.CategorySecurity,
			Title:          "Pas de secrets dans le code",
			Description:    "Aucun pattern de secret en dur (clés AWS, tokens GitHub…) dans les workflows.",
			Remediation:    "Utilisez des GitHub Secrets (${{ secrets.MY_SECRET }}) au lieu de valeurs en dur",
			RequiredFields: []string{domain.FieldWorkflows},
		},
		{
			ID:             "security_scan",
			Category:       constants.CategorySecurity,
			Title:          "Scan de sécurité",
			Description:    "Un outil d'analyse de sécurité tourne dans la CI.",
			Remediation:    "Ajoutez un scanner de sécurité (trivy, snyk, codeql…) au pipeline.",
			RequiredFields: []string{domain.FieldWorkflows},
		},
		{
			ID:             "secret_scanning",
			Category:       constants.CategorySecurity,
			Title:          "Détection de secrets",
			Description:    "Un outil de détection de secrets committés tourne dans la CI.",
			Remediation:    "Ajoutez une étape de détection de secrets (gitleaks, trufflehog…) dans la CI.",
			RequiredFields: []string{domain.FieldWorkflows},
		},
		{
			ID:             "dependabot_configured",
			Category:       constants.CategorySecurity,
			Title:          "Dependabot / Renovate",
			Description:    "Les mises à jour de dépendances sont automatisées.",
			Remediation:    "Ajoutez un fichier .github/dependabot.yml ou une configuration Renovate.",
			RequiredFields: []string{domain.FieldFiles},
		},
		{
			ID:             "branch_protection",
			Category:       constants.CategorySecurity,
			Title:          "Protection de branche",
			Description:    "La branche par défaut est protégée, idéalement avec reviews de PR obligatoires.",
			Remediation:    "Activez 'Require pull request reviews' dans les settings de protection",
			RequiredFields: []string{domain.FieldProtection},
		},

		// Conteneurisation
		{
			ID:             "dockerfile_exists",
			Category:       constants.CategoryContainer,
			Title:          "Dockerfile présent",
			Description:    "Un Dockerfile est présent à la racine du projet.",
			Remediation:    "Ajoutez un fichier Dockerfile à la racine du projet",
			RequiredFields: []string{domain.FieldFiles},
		},
		{
			ID:             "docker_build_ci",
			Category:       constants.CategoryContainer,
			Title:          "Docker build dans CI",
			Description:    "La CI construit l'image Docker du projet.",
			Remediation:    "Ajoutez une étape docker build (ou docker/build-push-action) dans la CI.",
			RequiredFields: []string{domain.FieldWorkflows},
		},
		{
			ID:             "ghcr_published",
			Category:       constants.CategoryContainer,
			Title:          "Publication GHCR",
			Description:    "Le pipeline publie l'image Docker vers GitHub Container Registry.",
			Remediation:    "Publiez l'image vers ghcr.io avec docker/build-push-action (push: true).",
			RequiredFields: []string{domain.FieldWorkflows},
		},

		// Déploiement
		{
			ID:             "auto_deploy",
			Category:       constants.CategoryDeployment,
			Title:          "Déploiement automatique",
			Description:    "Un déploiement se déclenche automatiquement sur push.",
			Remediation:    "Déclenchez le job de déploiement sur push (on: push) vers la branche principale.",
			RequiredFields: []string{domain.FieldWorkflows},
		},
		{
			ID:             "multi_environment",
			Category:       constants.CategoryDeployment,
			Title:          "Multi-environnements",
			Description:    "Le pipeline distingue plusieurs environnements de déploiement.",
			Remediation:    "Séparez les déploiements staging et production dans le pipeline.",
			RequiredFields: []string{domain.FieldWorkflows},
		},
		{
			ID:             "smoke_tests",
			Category:       constants.CategoryDeployment,
			Title:          "Tests smoke post-déploiement",
			Description:    "Des tests smoke ou e2e valident le déploiement.",
			Remediation:    "Ajoutez des tests smoke ou e2e (playwright, cypress…) après le déploiement.",
			RequiredFields: []string{domain.FieldWorkflows},
		},
		{
			ID:             "rollback_strategy",
			Category:       constants.CategoryDeployment,
			Title:          "Stratégie de rollback",
			Description:    "Un mécanisme de rollback ou de redéploiement manuel existe.",
			Remediation:    "Ajoutez un workflow de rollback (workflow_dispatch) pour revenir en arrière rapidement.",
			RequiredFields: []string{domain.FieldWorkflows},
		},

		// Bonnes pratiques
		{
			ID:             "readme_exists",
			Category:       constants.CategoryPractices,
			Title:          "README présent",
			Description:    "Un fichier README.md est présent à la racine du projet.",
			Remediation:    "Ajoutez un fichier README.md à la racine du projet",
			RequiredFields: []string{domain.FieldFiles},
		},
		{
			ID:             "gitignore_exists",
			Category:       constants.CategoryPractices,
			Title:          ".gitignore présent",
			Description:    "Un fichier .gitignore est présent à la racine du projet.",
			Remediation:    "Ajoutez un fichier .gitignore à la racine du projet",
			RequiredFields: []string{domain.FieldFiles},
		},
		{
			ID:             "codeowners_exists",
			Category:       constants.CategoryPractices,
			Title:          "CODEOWNERS présent",
			Description:    "Un fichier CODEOWNERS désigne les responsables du code.",
			Remediation:    "Ajoutez un fichier CODEOWNERS (racine, .github/ ou docs/).",
			RequiredFields: []string{domain.FieldFiles},
		},
		{
			ID:             "conventional_commits",
			Category:       constants.CategoryPractices,
			Title:          "Commits conventionnels",
			Description:    "Les messages de commit récents suivent la convention Conventional Commits.",
			Remediation:    "Adoptez la convention feat:/fix:/chore: pour vos messages de commit.",
			RequiredFields: []string{domain.FieldCommits},
		},
		{
			ID:             "release_tagging",
			Category:       constants.CategoryPractices,
			Title:          "Releases & tags",
			Description:    "Le projet publie des releases GitHub taguées.",
			Remediation:    "Publiez des releases GitHub taguées (gh release create, release-please…).",
			RequiredFields: []string{domain.FieldReleases, domain.FieldWorkflows},
		},
		{
			ID:             "auto_changelog",
			Category:       constants.CategoryPractices,
			Title:          "Changelog automatisé",
			Description:    "Un changelog est généré automatiquement ou maintenu avec des entrées de version.",
			Remediation:    "Automatisez le changelog (release-please, semantic-release…) ou maintenez CHANGELOG.md.",
			RequiredFields: []string{domain.FieldWorkflows, domain.FieldChangelog},
		},
	}
}
