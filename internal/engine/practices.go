package engine

import (
	"fmt"
	"strings"

	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

//nolint:gochecknoglobals // Fixed keyword tables shared by the scans
var (
	conventionalPrefixes = []string{
		"feat", "fix", "docs", "style", "refactor", "test", "chore", "ci",
		"build", "perf", "revert",
	}

	mergeSubjectPrefixes = []string{"Merge pull request", "Merge branch", "Merge remote"}

	releaseToolKeywords = []string{
		"release-please", "semantic-release", "create-release",
		"actions/create-release", "gh release create",
	}

	changelogToolKeywords = []string{
		"release-please", "semantic-release", "conventional-changelog",
		"auto-changelog", "standard-version", "changesets",
	}
)

func evalReadmeExists(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	return fileExistsResult(def, snap, "README.md")
}

func evalGitignoreExists(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	return fileExistsResult(def, snap, ".gitignore")
}

func evalCodeownersExists(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Files.Known {
		return domain.SkipResult(def.ID, snap.Files.Reason)
	}

	files := snap.Files.Value
	if hasFile(files, "CODEOWNERS") || hasFile(files, ".github/CODEOWNERS") || hasFile(files, "docs/CODEOWNERS") {
		return domain.PassResult(def.ID, "Fichier CODEOWNERS trouvé")
	}
	return domain.FailResult(def.ID,
		"Aucun fichier CODEOWNERS trouvé",
		"Ajoutez un fichier CODEOWNERS pour définir les propriétaires du code")
}

// isConventionalCommit reports whether a commit subject follows the
// Conventional Commits form: a known prefix, an optional (scope), an
// optional !, then ": ".
func isConventionalCommit(subject string) bool {
	for _, prefix := range conventionalPrefixes {
		rest, ok := strings.CutPrefix(subject, prefix)
		if !ok {
			continue
		}
		if strings.HasPrefix(rest, ": ") || strings.HasPrefix(rest, "!: ") {
			return true
		}
		if strings.HasPrefix(rest, "(") {
			if end := strings.Index(rest, ")"); end >= 0 {
				after := rest[end+1:]
				if strings.HasPrefix(after, ": ") || strings.HasPrefix(after, "!: ") {
					return true
				}
			}
		}
	}
	return false
}

func evalConventionalCommits(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Commits.Known {
		return domain.SkipResult(def.ID, snap.Commits.Reason)
	}

	var subjects []string
	for _, commit := range snap.Commits.Value {
		subject := commit.Subject()
		isMerge := false
		for _, prefix := range mergeSubjectPrefixes {
			if strings.HasPrefix(subject, prefix) {
				isMerge = true
				break
			}
		}
		if !isMerge {
			subjects = append(subjects, subject)
		}
	}
	if len(subjects) == 0 {
		return domain.SkipResult(def.ID, "Seuls des commits de merge trouvés")
	}

	conventional := 0
	for _, subject := range subjects {
		if isConventionalCommit(subject) {
			conventional++
		}
	}

	pct := conventional * 100 / len(subjects)
	if pct >= constants.ConventionalCommitThreshold {
		return domain.PassResult(def.ID,
			fmt.Sprintf("%d/%d commits conventionnels (%d%%)", conventional, len(subjects), pct))
	}
	return domain.FailResult(def.ID,
		fmt.Sprintf("%d/%d commits conventionnels (%d%% < %d%%)",
			conventional, len(subjects), pct, constants.ConventionalCommitThreshold),
		"Respectez la convention Conventional Commits : feat:, fix:, chore:, ci:, docs:, etc.")
}

func evalReleaseTagging(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Releases.Known {
		return domain.SkipResult(def.ID, snap.Releases.Reason)
	}

	releases := snap.Releases.Value
	if len(releases) > 0 {
		return domain.PassResult(def.ID,
			fmt.Sprintf("%d release(s) trouvée(s) — dernière : %s", len(releases), releases[0].TagName))
	}

	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}
	if containsAny(lowerContent(snap.Workflows.Value), releaseToolKeywords) {
		return domain.WarnResult(def.ID,
			"Outil de release détecté dans CI mais aucune release publiée encore",
			"Effectuez un premier merge sur main pour déclencher la création de release")
	}
	return domain.FailResult(def.ID,
		"Aucune release ou tag GitHub trouvé",
		"Créez des releases GitHub pour versionner votre projet (ex: avec 'release-please' ou manuellement)")
}

func evalAutoChangelog(def domain.CheckDefinition, snap *domain.RepositorySnapshot) domain.CheckResult {
	if !snap.Workflows.Known {
		return domain.SkipResult(def.ID, snap.Workflows.Reason)
	}

	content := lowerContent(snap.Workflows.Value)
	found := matchedKeywords(content, changelogToolKeywords)
	if len(found) > 0 {
		return domain.PassResult(def.ID,
			fmt.Sprintf("Outil de changelog automatisé détecté : %s", strings.Join(found, ", ")))
	}

	// No tool in CI: fall back to a hand-maintained CHANGELOG.md with at
	// least two version headers.
	if snap.Changelog.Known && snap.Changelog.Value != "" {
		headers := 0
		for _, line := range strings.Split(snap.Changelog.Value, "\n") {
			if strings.HasPrefix(line, "## [") || strings.HasPrefix(line, "## v") {
				headers++
			}
		}
		if headers >= constants.ChangelogMinVersionHeaders {
			return domain.PassResult(def.ID,
				fmt.Sprintf("CHANGELOG.md trouvé avec %d entrées de version", headers))
		}
	}
	if !snap.Changelog.Known {
		return domain.SkipResult(def.ID, snap.Changelog.Reason)
	}

	return domain.FailResult(def.ID,
		"Aucun outil de changelog automatisé trouvé",
		"Configurez 'release-please' ou 'semantic-release' dans votre pipeline pour générer un changelog automatique")
}
