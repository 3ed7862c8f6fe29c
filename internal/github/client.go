// Package github assembles repository snapshots from the GitHub REST API.
//
// The package owns every network call of a scan: it gathers workflows, runs,
// branch protection, the file tree, commits, releases and the changelog into
// one immutable domain.RepositorySnapshot. Fetch failures never abort the
// scan; each failed fact is recorded as unknown with a reason the evaluators
// surface as skip evidence. Only an unreadable repository itself is fatal.
package github

import (
	"context"
	stderrors "errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/errors"
)

// repositoriesService is the slice of go-github's RepositoriesService the
// snapshot assembly uses.
type repositoriesService interface {
	Get(ctx context.Context, owner, repo string) (*gh.Repository, *gh.Response, error)
	GetContents(ctx context.Context, owner, repo, path string, opts *gh.RepositoryContentGetOptions) (*gh.RepositoryContent, []*gh.RepositoryContent, *gh.Response, error)
	GetBranchProtection(ctx context.Context, owner, repo, branch string) (*gh.Protection, *gh.Response, error)
	ListCommits(ctx context.Context, owner, repo string, opts *gh.CommitsListOptions) ([]*gh.RepositoryCommit, *gh.Response, error)
	ListReleases(ctx context.Context, owner, repo string, opts *gh.ListOptions) ([]*gh.RepositoryRelease, *gh.Response, error)
}

// actionsService is the slice of go-github's ActionsService the snapshot
// assembly uses.
type actionsService interface {
	ListRepositoryWorkflowRuns(ctx context.Context, owner, repo string, opts *gh.ListWorkflowRunsOptions) (*gh.WorkflowRuns, *gh.Response, error)
}

// gitService is the slice of go-github's GitService the snapshot assembly
// uses.
type gitService interface {
	GetTree(ctx context.Context, owner, repo, sha string, recursive bool) (*gh.Tree, *gh.Response, error)
}

// Client fetches repository facts from the GitHub API.
type Client struct {
	repositories repositoriesService
	actions      actionsService
	git          gitService

	commitSample int
}

type authTransport struct {
	token string
	base  http.RoundTripper
}

func (t *authTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(req)
}

// Option adjusts how New builds the underlying API client.
type Option func(*clientOptions)

type clientOptions struct {
	baseURL      string
	httpClient   *http.Client
	timeout      time.Duration
	commitSample int
}

// WithBaseURL points the client at a different API root: a GitHub Enterprise
// instance or a test server. Empty means the public API.
func WithBaseURL(raw string) Option {
	return func(o *clientOptions) { o.baseURL = raw }
}

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(o *clientOptions) { o.httpClient = hc }
}

// WithTimeout bounds each API call.
func WithTimeout(d time.Duration) Option {
	return func(o *clientOptions) {
		if d > 0 {
			o.timeout = d
		}
	}
}

// WithCommitSample sets how many recent commits the snapshot samples.
func WithCommitSample(n int) Option {
	return func(o *clientOptions) {
		if n > 0 {
			o.commitSample = n
		}
	}
}

// New builds a client. The token may be empty: public repositories stay
// readable and the token-gated facts degrade to unknown.
func New(token string, opts ...Option) (*Client, error) {
	o := clientOptions{
		timeout:      constants.DefaultGitHubTimeout,
		commitSample: constants.DefaultCommitSample,
	}
	for _, opt := range opts {
		opt(&o)
	}

	httpClient := o.httpClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: o.timeout}
	}
	if token != "" {
		base := httpClient.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		clone := *httpClient
		clone.Transport = &authTransport{token: token, base: base}
		httpClient = &clone
	}

	api := gh.NewClient(httpClient)
	if o.baseURL != "" {
		parsed, err := url.Parse(strings.TrimSuffix(o.baseURL, "/") + "/")
		if err != nil {
			return nil, errors.Wrapf(errors.ErrConfigInvalidGitHub, "api_base_url %q: %v", o.baseURL, err)
		}
		api.BaseURL = parsed
	}

	return &Client{
		repositories: api.Repositories,
		actions:      api.Actions,
		git:          api.Git,
		commitSample: o.commitSample,
	}, nil
}

// withRateLimitRetry runs op, waiting out the reset window and retrying once
// when GitHub answers with a primary rate limit error.
func withRateLimitRetry(ctx context.Context, op func() error) error {
	var err error
	for attempt := 0; attempt <= constants.MaxRateLimitRetries; attempt++ {
		err = op()
		if err == nil {
			return nil
		}

		var rateErr *gh.RateLimitError
		if !stderrors.As(err, &rateErr) || attempt == constants.MaxRateLimitRetries {
			return err
		}

		wait := time.Until(rateErr.Rate.Reset.Time)
		if wait < 0 {
			wait = time.Second
		}
		select {
		case <-time.After(wait):
		case <-ctx.Done():
			return ctx.Err()
		}
	}
	return err
}

// isNotFound reports whether the API answered 404, which the snapshot
// assembly treats as observed absence rather than a fetch failure.
func isNotFound(resp *gh.Response, err error) bool {
	if resp != nil && resp.Response != nil && resp.StatusCode == http.StatusNotFound {
		return true
	}
	var ghErr *gh.ErrorResponse
	return stderrors.As(err, &ghErr) && ghErr.Response != nil && ghErr.Response.StatusCode == http.StatusNotFound
}
