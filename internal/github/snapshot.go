package github

import (
	"context"

	gh "github.com/google/go-github/v80/github"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
	"github.com/FabLrc/GithubCICDChecker/internal/errors"
)

// Snapshot fetches every repository fact and assembles the evaluation
// snapshot. The repository lookup itself must succeed; every other fact is
// fetched concurrently and degrades to unknown on failure.
func (c *Client) Snapshot(ctx context.Context, repo domain.Repo) (*domain.RepositorySnapshot, error) {
	logger := zerolog.Ctx(ctx)

	var repoInfo *gh.Repository
	err := withRateLimitRetry(ctx, func() error {
		var getErr error
		repoInfo, _, getErr = c.repositories.Get(ctx, repo.Owner, repo.Name)
		return getErr
	})
	if err != nil {
		return nil, errors.Wrapf(errors.ErrRepoAccess, "%s: %v", repo.FullName(), err)
	}

	branch := repoInfo.GetDefaultBranch()
	if branch == "" {
		branch = "main"
	}

	snap := &domain.RepositorySnapshot{Repo: repo, DefaultBranch: branch}

	g, gctx := errgroup.WithContext(ctx)
	fetches := []func(){
		func() { snap.Workflows = c.fetchWorkflows(gctx, repo, branch) },
		func() { snap.Runs = c.fetchRuns(gctx, repo, branch) },
		func() { snap.Protection = c.fetchProtection(gctx, repo, branch) },
		func() { snap.Files = c.fetchFiles(gctx, repo, branch) },
		func() { snap.Commits = c.fetchCommits(gctx, repo, branch) },
		func() { snap.Releases = c.fetchReleases(gctx, repo) },
		func() { snap.Changelog = c.fetchChangelog(gctx, repo, branch) },
	}
	for _, fetch := range fetches {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			fetch()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("repo", repo.FullName()).
		Str("branch", branch).
		Bool("workflows_known", snap.Workflows.Known).
		Bool("runs_known", snap.Runs.Known).
		Bool("protection_known", snap.Protection.Known).
		Bool("files_known", snap.Files.Known).
		Msg("snapshot assembled")

	return snap, nil
}

// fetchRuns lists the most recent workflow runs on the default branch.
func (c *Client) fetchRuns(ctx context.Context, repo domain.Repo, branch string) domain.Fact[[]domain.WorkflowRun] {
	var runs *gh.WorkflowRuns
	err := withRateLimitRetry(ctx, func() error {
		var listErr error
		runs, _, listErr = c.actions.ListRepositoryWorkflowRuns(ctx, repo.Owner, repo.Name, &gh.ListWorkflowRunsOptions{
			Branch:      branch,
			ListOptions: gh.ListOptions{PerPage: constants.RunSample},
		})
		return listErr
	})
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("workflow run listing failed")
		return domain.UnknownFact[[]domain.WorkflowRun]("Impossible de récupérer les runs (repo privé ou pas de workflows)")
	}

	out := make([]domain.WorkflowRun, 0, len(runs.WorkflowRuns))
	for _, run := range runs.WorkflowRuns {
		out = append(out, domain.WorkflowRun{
			Name:       run.GetName(),
			Conclusion: run.GetConclusion(),
			StartedAt:  run.GetRunStartedAt().Time,
			UpdatedAt:  run.GetUpdatedAt().Time,
		})
	}
	return domain.KnownFact(out)
}

// fetchProtection reads the default branch protection settings. A 404 means
// protection is confirmed absent; a 401/403 means the token cannot see the
// settings and the fact stays unknown.
func (c *Client) fetchProtection(ctx context.Context, repo domain.Repo, branch string) domain.Fact[domain.BranchProtection] {
	var prot *gh.Protection
	var notFound bool
	err := withRateLimitRetry(ctx, func() error {
		var resp *gh.Response
		var protErr error
		prot, resp, protErr = c.repositories.GetBranchProtection(ctx, repo.Owner, repo.Name, branch)
		if isNotFound(resp, protErr) {
			notFound = true
			return nil
		}
		return protErr
	})
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("branch protection lookup failed")
		return domain.UnknownFact[domain.BranchProtection]("Token requis pour vérifier la protection de branche (scope 'repo')")
	}
	if notFound {
		return domain.KnownFact(domain.BranchProtection{})
	}
	return domain.KnownFact(domain.BranchProtection{
		Enabled:         true,
		RequiresReviews: prot.GetRequiredPullRequestReviews() != nil,
	})
}

// fetchFiles lists every file of the default branch through the git tree.
func (c *Client) fetchFiles(ctx context.Context, repo domain.Repo, branch string) domain.Fact[[]string] {
	var tree *gh.Tree
	err := withRateLimitRetry(ctx, func() error {
		var treeErr error
		tree, _, treeErr = c.git.GetTree(ctx, repo.Owner, repo.Name, branch, true)
		return treeErr
	})
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("file tree listing failed")
		return domain.UnknownFact[[]string]("Impossible de lister les fichiers du repo")
	}
	if tree.GetTruncated() {
		zerolog.Ctx(ctx).Debug().Str("repo", repo.FullName()).Msg("file tree truncated")
	}

	paths := make([]string, 0, len(tree.Entries))
	for _, entry := range tree.Entries {
		if entry.GetType() == "blob" {
			paths = append(paths, entry.GetPath())
		}
	}
	return domain.KnownFact(paths)
}

// fetchCommits samples the most recent commits on the default branch.
func (c *Client) fetchCommits(ctx context.Context, repo domain.Repo, branch string) domain.Fact[[]domain.Commit] {
	var commits []*gh.RepositoryCommit
	err := withRateLimitRetry(ctx, func() error {
		var listErr error
		commits, _, listErr = c.repositories.ListCommits(ctx, repo.Owner, repo.Name, &gh.CommitsListOptions{
			SHA:         branch,
			ListOptions: gh.ListOptions{PerPage: c.commitSample},
		})
		return listErr
	})
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("commit listing failed")
		return domain.UnknownFact[[]domain.Commit]("Impossible de récupérer les commits")
	}

	out := make([]domain.Commit, 0, len(commits))
	for _, commit := range commits {
		out = append(out, domain.Commit{Message: commit.GetCommit().GetMessage()})
	}
	return domain.KnownFact(out)
}

// fetchReleases lists the most recent published releases.
func (c *Client) fetchReleases(ctx context.Context, repo domain.Repo) domain.Fact[[]domain.Release] {
	var releases []*gh.RepositoryRelease
	err := withRateLimitRetry(ctx, func() error {
		var listErr error
		releases, _, listErr = c.repositories.ListReleases(ctx, repo.Owner, repo.Name, &gh.ListOptions{
			PerPage: constants.ReleaseSample,
		})
		return listErr
	})
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("release listing failed")
		return domain.UnknownFact[[]domain.Release]("Impossible de récupérer les releases")
	}

	out := make([]domain.Release, 0, len(releases))
	for _, release := range releases {
		out = append(out, domain.Release{TagName: release.GetTagName()})
	}
	return domain.KnownFact(out)
}

// fetchChangelog downloads CHANGELOG.md. A 404 is a known-empty fact: the
// file is confirmed absent, which is scoreable, unlike a fetch failure.
func (c *Client) fetchChangelog(ctx context.Context, repo domain.Repo, ref string) domain.Fact[string] {
	var file *gh.RepositoryContent
	var notFound bool
	err := withRateLimitRetry(ctx, func() error {
		var resp *gh.Response
		var fetchErr error
		file, _, resp, fetchErr = c.repositories.GetContents(ctx, repo.Owner, repo.Name, "CHANGELOG.md", &gh.RepositoryContentGetOptions{Ref: ref})
		if isNotFound(resp, fetchErr) {
			notFound = true
			return nil
		}
		return fetchErr
	})
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Msg("changelog download failed")
		return domain.UnknownFact[string]("Impossible de lire CHANGELOG.md")
	}
	if notFound || file == nil {
		return domain.KnownFact("")
	}

	content, decodeErr := file.GetContent()
	if decodeErr != nil {
		zerolog.Ctx(ctx).Debug().Err(decodeErr).Msg("changelog decode failed")
		return domain.UnknownFact[string]("Impossible de lire CHANGELOG.md")
	}
	return domain.KnownFact(content)
}
