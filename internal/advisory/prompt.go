package advisory

import (
	"fmt"
	"strings"

	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

// buildPrompt renders the user message: the failed checks with their
// category and title, an optional workflow YAML excerpt, and the response
// instructions. The structured output format itself is enforced by the
// json_schema response format, not by the prompt.
func (r *Reviewer) buildPrompt(report *domain.ScoreReport, workflowYAML string) string {
	failed := report.FailedResults()

	lines := make([]string, 0, len(failed))
	for _, res := range failed {
		title := res.CheckID
		category := res.CheckID
		if def, ok := r.catalog.ByID(res.CheckID); ok {
			title = def.Title
			category = def.Category.Label()
		}
		lines = append(lines, fmt.Sprintf("- [%s] %s: %s", category, title, res.Evidence))
	}

	failedSummary := "Aucun check échoué 🎉"
	if len(lines) > 0 {
		failedSummary = strings.Join(lines, "\n")
	}

	var yamlSection string
	if workflowYAML != "" {
		snippet := workflowYAML
		if len(snippet) > constants.AdvisoryYAMLExcerptMax {
			snippet = snippet[:constants.AdvisoryYAMLExcerptMax] + "… (tronqué)"
		}
		yamlSection = fmt.Sprintf("\n\n## Workflow CI principal (YAML)\n```yaml\n%s\n```", snippet)
	}

	evaluated := 0
	for _, cat := range report.Categories {
		evaluated += cat.EvaluatedCount
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Analyse le rapport CI/CD du dépôt GitHub `%s` et fournis des recommandations concrètes.\n\n", report.Repository)
	fmt.Fprintf(&b, "## Checks échoués (%d sur %d)\n%s%s\n\n", len(failed), evaluated, failedSummary, yamlSection)
	b.WriteString("Donne 3 à 6 recommandations priorisées par impact. Réponds uniquement en JSON valide, sans texte supplémentaire.")
	return b.String()
}
