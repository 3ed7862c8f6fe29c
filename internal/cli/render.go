package cli

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/FabLrc/GithubCICDChecker/internal/catalog"
	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
	"github.com/FabLrc/GithubCICDChecker/internal/errors"
	"github.com/FabLrc/GithubCICDChecker/internal/tui"
)

// advisoryState carries the AI review outcome into the renderer: whether the
// review was requested at all, and the error when it did not produce one.
type advisoryState struct {
	enabled bool
	err     error
}

// renderScanReport writes the human-readable scan report: repository header,
// grade, per-category sections with check verdicts, the AI review section and
// the timestamp footer.
func renderScanReport(w io.Writer, report *domain.ScoreReport, cat *catalog.Catalog, adv advisoryState) {
	styles := tui.NewOutputStyles()

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, tui.StyleBold.Render("📦 "+report.Repository))
	_, _ = fmt.Fprintln(w)

	scoreLine := fmt.Sprintf("Score : %d/100 (%s)", report.OverallPercentage, report.Grade)
	_, _ = fmt.Fprintln(w, "  "+tui.GradeStyle(report.Grade).Render(scoreLine))

	passed, evaluated, skipped := tallyResults(report)
	tally := fmt.Sprintf("%d/%d checks réussis", passed, evaluated)
	if skipped > 0 {
		tally += fmt.Sprintf(" · %d ignorés", skipped)
	}
	_, _ = fmt.Fprintln(w, "  "+styles.Dim.Render(tally))

	grouped := groupResults(report, cat)
	for _, cs := range report.Categories {
		_, _ = fmt.Fprintln(w)
		renderCategory(w, cs, grouped[cs.Category], cat, styles)
	}

	renderAdvisory(w, report.Review, adv, styles)

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, styles.Dim.Render("Analysé le "+report.GeneratedAt.Format("02/01/2006 à 15:04")))
}

// renderCategory writes one category heading and its check rows.
func renderCategory(w io.Writer, cs domain.CategoryScore, results []domain.CheckResult, cat *catalog.Catalog, styles *tui.OutputStyles) {
	heading := tui.StyleBold.Render(cs.Category.Icon() + " " + cs.Category.Label())
	if cs.Empty() {
		_, _ = fmt.Fprintln(w, heading+" : "+styles.Dim.Render("aucun check évalué"))
	} else {
		counts := fmt.Sprintf("%d/%d (%d%%)", cs.PassedOrWarnedCount, cs.EvaluatedCount, cs.Percentage)
		pctStyle := tui.PriorityStyle(constants.GradeFor(cs.Percentage).Color())
		_, _ = fmt.Fprintln(w, heading+" : "+pctStyle.Render(counts))
	}

	for _, res := range results {
		renderResult(w, res, cat, styles)
	}
}

// renderResult writes one check row. Non-passing checks get their evidence
// and remediation advice on dimmed follow-up lines.
func renderResult(w io.Writer, res domain.CheckResult, cat *catalog.Catalog, styles *tui.OutputStyles) {
	title := res.CheckID
	if def, ok := cat.ByID(res.CheckID); ok {
		title = def.Title
	}

	icon := tui.StatusStyle(res.Status).Render(tui.StatusIcon(res.Status))
	_, _ = fmt.Fprintln(w, "  "+icon+" "+title)

	if res.Status == constants.StatusPass {
		return
	}
	if res.Evidence != "" {
		_, _ = fmt.Fprintln(w, "    "+styles.Dim.Render(res.Evidence))
	}
	if res.Remediation != "" {
		_, _ = fmt.Fprintln(w, "    "+styles.Dim.Render("💡 "+res.Remediation))
	}
}

// renderAdvisory writes the AI review section. The section is omitted
// entirely when the review was not requested; a requested review that could
// not run renders its degraded state instead of failing the scan.
func renderAdvisory(w io.Writer, review *domain.Review, adv advisoryState, styles *tui.OutputStyles) {
	if !adv.enabled {
		return
	}

	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintln(w, tui.StyleBold.Render("🤖 Analyse IA")+" "+styles.Dim.Render("(GitHub Models)"))

	switch {
	case review != nil:
		if review.Summary != "" {
			_, _ = fmt.Fprintln(w, "  "+review.Summary)
		}
		for _, rec := range review.Recommendations {
			label := tui.PriorityStyle(rec.Priority.Color()).Render("[" + rec.Priority.Label() + "]")
			_, _ = fmt.Fprintln(w, "  "+label+" "+rec.Title)
			if rec.Description != "" {
				_, _ = fmt.Fprintln(w, "    "+styles.Dim.Render(rec.Description))
			}
		}
	case stderrors.Is(adv.err, errors.ErrAdvisoryUnavailable):
		_, _ = fmt.Fprintln(w, "  "+styles.Dim.Render("IA non disponible : token requis"))
		_, _ = fmt.Fprintln(w, "  "+styles.Dim.Render("Fournissez un GitHub Personal Access Token pour activer l'analyse IA via GitHub Models."))
	case adv.err != nil:
		_, _ = fmt.Fprintln(w, "  "+styles.Warning.Render("⚠ "+errors.UserMessage(adv.err)))
	}
}

// tallyResults sums the per-category counters into the report-level tally.
func tallyResults(report *domain.ScoreReport) (passed, evaluated, skipped int) {
	for _, cs := range report.Categories {
		passed += cs.PassedOrWarnedCount
		evaluated += cs.EvaluatedCount
	}
	skipped = len(report.Results) - evaluated
	return passed, evaluated, skipped
}

// groupResults buckets the report's results by category, preserving catalog
// order within each bucket.
func groupResults(report *domain.ScoreReport, cat *catalog.Catalog) map[constants.Category][]domain.CheckResult {
	grouped := make(map[constants.Category][]domain.CheckResult, len(report.Categories))
	for _, res := range report.Results {
		def, ok := cat.ByID(res.CheckID)
		if !ok {
			continue
		}
		grouped[def.Category] = append(grouped[def.Category], res)
	}
	return grouped
}
