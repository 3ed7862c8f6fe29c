package testutil

import "github.com/FabLrc/GithubCICDChecker/internal/domain"

// EmptySnapshot returns a snapshot where every fact is known and empty: the
// repository was fully observed and has nothing. Checks evaluate to real
// verdicts (mostly failures), never to skips.
func EmptySnapshot() *domain.RepositorySnapshot {
	return &domain.RepositorySnapshot{
		Repo:          domain.Repo{Owner: "octocat", Name: "hello-world"},
		DefaultBranch: "main",
		Workflows:     domain.KnownFact([]domain.WorkflowFile{}),
		Runs:          domain.KnownFact([]domain.WorkflowRun{}),
		Protection:    domain.KnownFact(domain.BranchProtection{}),
		Files:         domain.KnownFact([]string{}),
		Commits:       domain.KnownFact([]domain.Commit{}),
		Releases:      domain.KnownFact([]domain.Release{}),
		Changelog:     domain.KnownFact(""),
	}
}

// UnknownSnapshot returns a snapshot where every fact is unknown for the
// given reason, as after a total data-gathering failure.
func UnknownSnapshot(reason string) *domain.RepositorySnapshot {
	return &domain.RepositorySnapshot{
		Repo:          domain.Repo{Owner: "octocat", Name: "hello-world"},
		DefaultBranch: "main",
		Workflows:     domain.UnknownFact[[]domain.WorkflowFile](reason),
		Runs:          domain.UnknownFact[[]domain.WorkflowRun](reason),
		Protection:    domain.UnknownFact[domain.BranchProtection](reason),
		Files:         domain.UnknownFact[[]string](reason),
		Commits:       domain.UnknownFact[[]domain.Commit](reason),
		Releases:      domain.UnknownFact[[]domain.Release](reason),
		Changelog:     domain.UnknownFact[string](reason),
	}
}

// WorkflowSnapshot returns an EmptySnapshot whose workflows fact holds a
// single ci.yml with the given content and no triggers parsed.
func WorkflowSnapshot(content string) *domain.RepositorySnapshot {
	snap := EmptySnapshot()
	snap.Workflows = domain.KnownFact([]domain.WorkflowFile{{
		Name:    "ci.yml",
		Path:    ".github/workflows/ci.yml",
		Content: content,
	}})
	return snap
}
