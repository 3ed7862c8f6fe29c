package engine

import (
	"fmt"
	"strings"
	"time"

	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

// conclusionSuccess is the GitHub Actions conclusion for a green run.
const conclusionSuccess = "success"

//nolint:gochecknoglobals // Fixed keyword tables shared by the scans
var (
	setupCacheKeywords = []string{
		"cache: npm", "cache: yarn", "cache: pnpm", "cache: pip", "cache: poetry",
		"cache: 'npm'", "cache: 'pip'", "cache: gradle", "cache: maven",
	}

	dockerCacheKeywords = []string{"cache-from", "cache-to", "buildkit"}

	notificationKeywords = []string{
		"discord-webhook", "discord_webhook", "slack-webhook", "slack_webhook",
		"slackapi/", "8398a7/action-slack", "rtcamp/action-slack",
		"rjstone/discord-webhook", "appleboy/telegram-action", "act10ns/slack",
		"notify", "send-message",
	}
)

func evalPipelineExists(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	files := snap.Workflows.Value
	if len(files) == 0 {
		return domain.FailResult(def.ID,
			"Aucun fichier workflow YAML trouvé",
			"Créez un fichier .github/workflows/ci.yml pour votre pipeline CI/CD")
	}

	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, f.Name)
	}
	return domain.PassResult(def.ID,
		fmt.Sprintf("%d workflow(s) trouvé(s) : %s", len(names), strings.Join(names, ", ")))
}

func evalPipelineGreen(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Runs.Known {
		return domain.SkipResult(def.ID, snap.Runs.Reason)
	}

	runs := snap.Runs.Value
	if len(runs) == 0 {
		branch := defaultBranch(snap)
		return domain.FailResult(def.ID,
			fmt.Sprintf("Aucun run trouvé sur la branche %s", branch),
			fmt.Sprintf("Lancez votre pipeline au moins une fois sur %s", branch))
	}

	latest := runs[0]
	switch {
	case !latest.Completed():
		return domain.WarnResult(def.ID,
			"Dernier run encore en cours",
			"Attendez la fin du run et relancez l'analyse")
	case latest.Conclusion == conclusionSuccess:
		return domain.PassResult(def.ID,
			fmt.Sprintf("Dernier run '%s' réussi", runName(latest)))
	default:
		return domain.FailResult(def.ID,
			fmt.Sprintf("Dernier run terminé avec le statut : %s", latest.Conclusion),
			"Corrigez les erreurs dans votre pipeline pour qu'il passe au vert")
	}
}

func evalPipelineFast(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Runs.Known {
		return domain.SkipResult(def.ID, snap.Runs.Reason)
	}

	var durations []time.Duration
	for _, run := range snap.Runs.Value {
		if !run.Completed() {
			continue
		}
		if d := run.Duration(); d > 0 {
			durations = append(durations, d)
		}
	}
	if len(durations) == 0 {
		return domain.SkipResult(def.ID, "Pas assez de runs pour évaluer la vitesse")
	}

	var total time.Duration
	for _, d := range durations {
		total += d
	}
	avg := total / time.Duration(len(durations))
	rounded := avg.Round(time.Second)

	if avg <= constants.PipelineFastThreshold {
		return domain.PassResult(def.ID,
			fmt.Sprintf("Durée moyenne des %d derniers runs : %s (seuil : %s)",
				len(durations), rounded, constants.PipelineFastThreshold))
	}
	return domain.FailResult(def.ID,
		fmt.Sprintf("Durée moyenne des %d derniers runs : %s — au-delà du seuil de %s",
			len(durations), rounded, constants.PipelineFastThreshold),
		"Accélérez votre pipeline : cache de dépendances, jobs parallèles, étapes superflues à supprimer")
}

func evalCICache(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := lowerContent(snap.Workflows.Value)

	var cacheType string
	switch {
	case strings.Contains(content, "actions/cache"):
		cacheType = "actions/cache"
	case containsAny(content, setupCacheKeywords):
		cacheType = "cache intégré (setup-node/setup-python/…)"
	case containsAny(content, dockerCacheKeywords):
		cacheType = "Docker layer cache"
	}

	if cacheType == "" {
		return domain.FailResult(def.ID,
			"Aucun mécanisme de cache dans le pipeline",
			"Ajoutez 'actions/cache' ou activez le cache dans 'actions/setup-node' (cache: npm) pour accélérer vos builds")
	}
	return domain.PassResult(def.ID, fmt.Sprintf("Cache CI détecté : %s", cacheType))
}

func evalMatrixTesting(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	// YAML keys are matched case-sensitively on the raw content.
	content := combinedContent(snap.Workflows.Value)
	hasMatrix := strings.Contains(content, "strategy:") && strings.Contains(content, "matrix:")
	if !hasMatrix {
		return domain.FailResult(def.ID,
			"Aucune stratégie de matrix détectée",
			"Ajoutez 'strategy: matrix:' dans votre workflow pour tester sur plusieurs versions ou OS")
	}

	var detail string
	switch {
	case strings.Contains(content, "node-version") || strings.Contains(content, "node_version"):
		detail = "Matrice détectée — versions Node.js testées"
	case strings.Contains(content, "python-version") || strings.Contains(content, "python_version"):
		detail = "Matrice détectée — versions Python testées"
	case strings.Contains(content, "rust") || strings.Contains(content, "toolchain"):
		detail = "Matrice détectée — toolchains Rust testés"
	case strings.Contains(content, "os:") || strings.Contains(content, "runs-on:"):
		detail = "Matrice détectée — multi-OS"
	default:
		detail = "Stratégie de matrix détectée dans le pipeline"
	}
	return domain.PassResult(def.ID, detail)
}

func evalReusableWorkflows(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := combinedContent(snap.Workflows.Value)
	switch {
	case strings.Contains(content, "workflow_call:"):
		return domain.PassResult(def.ID,
			"Workflow réutilisable défini (workflow_call) — peut être invoqué par d'autres repos")
	case strings.Contains(content, "uses: ./.github/workflows/") ||
		strings.Contains(content, "uses: './.github/workflows/"):
		return domain.PassResult(def.ID,
			"Workflow réutilisable appelé (uses: ./.github/workflows/) — bonne pratique DRY")
	default:
		return domain.FailResult(def.ID,
			"Aucun workflow réutilisable trouvé",
			"Créez un workflow avec 'on: workflow_call:' ou appelez-en un avec 'uses: ./.github/workflows/xxx.yml'")
	}
}

func evalCINotifications(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := lowerContent(snap.Workflows.Value)
	found := matchedKeywords(content, notificationKeywords)
	if len(found) == 0 {
		return domain.FailResult(def.ID,
			"Aucune notification CI détectée (Discord/Slack/Telegram)",
			"Ajoutez une étape de notification dans votre pipeline (ex: '8398a7/action-slack' ou 'rjstone/discord-webhook')")
	}
	return domain.PassResult(def.ID,
		fmt.Sprintf("Notification CI configurée : %s", strings.Join(found, ", ")))
}

// defaultBranch returns the snapshot's default branch, falling back to main.
func defaultBranch(snap *domain.RepositorySnapshot) string {
	if snap.DefaultBranch != "" {
		return snap.DefaultBranch
	}
	return "main"
}

// runName returns the run's workflow name for display.
func runName(run domain.WorkflowRun) string {
	if run.Name == "" {
		return "unknown"
	}
	return run.Name
}
