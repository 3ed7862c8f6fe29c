// Package domain provides shared domain types for the cicdcheck scoring engine.
// These types are used across all internal packages to ensure consistent data structures.
//
// This package follows strict import rules:
//   - CAN import: internal/constants, internal/errors, standard library
//   - MUST NOT import: any other internal packages
//
// All JSON field names use snake_case.
package domain

import (
	"fmt"
	"time"
)

// Fact wraps a snapshot field whose absence is meaningful. A fact is either
// known (Value holds real data, possibly empty) or unknown (Value is the zero
// value and Reason says why: no credential, fetch failed, not applicable).
//
// Evaluators must never collapse unknown into a zero value: "fails the
// policy" and "cannot determine" produce different verdicts.
type Fact[T any] struct {
	// Value is the observed data. Only meaningful when Known is true.
	Value T `json:"value"`

	// Known reports whether the data was actually observed. A known empty
	// list means "observed: nothing there", not "could not look".
	Known bool `json:"known"`

	// Reason explains an unknown fact (empty when Known is true).
	Reason string `json:"reason,omitempty"`
}

// KnownFact returns a fact holding observed data.
func KnownFact[T any](value T) Fact[T] {
	return Fact[T]{Value: value, Known: true}
}

// UnknownFact returns a fact whose data could not be observed.
func UnknownFact[T any](reason string) Fact[T] {
	return Fact[T]{Known: false, Reason: reason}
}

// Repo identifies a GitHub repository.
type Repo struct {
	// Owner is the user or organization name.
	Owner string `json:"owner"`

	// Name is the repository name.
	Name string `json:"name"`
}

// FullName returns the owner/name form used in reports and API paths.
func (r Repo) FullName() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}

// WorkflowFile is one YAML file under .github/workflows/ with the trigger
// metadata the checks need. Content keeps the raw YAML for keyword scans.
type WorkflowFile struct {
	// Name is the file name (ci.yml).
	Name string `json:"name"`

	// Path is the repository-relative path (.github/workflows/ci.yml).
	Path string `json:"path"`

	// Content is the raw YAML text.
	Content string `json:"content"`

	// OnPush is true when the workflow triggers on push.
	OnPush bool `json:"on_push"`

	// OnDispatch is true when the workflow declares workflow_dispatch.
	OnDispatch bool `json:"on_dispatch"`

	// OnCall is true when the workflow declares workflow_call, i.e. it is
	// defined as reusable.
	OnCall bool `json:"on_call"`
}

// WorkflowRun is one recorded run of a workflow on the default branch.
type WorkflowRun struct {
	// Name is the workflow display name.
	Name string `json:"name"`

	// Conclusion is the recorded outcome (success, failure, cancelled, ...).
	// Empty while the run is still in progress.
	Conclusion string `json:"conclusion"`

	// StartedAt is when the run started.
	StartedAt time.Time `json:"started_at"`

	// UpdatedAt is when the run record was last updated; for completed runs
	// this bounds the run duration.
	UpdatedAt time.Time `json:"updated_at"`
}

// Completed reports whether the run finished with a recorded conclusion.
func (r WorkflowRun) Completed() bool {
	return r.Conclusion != ""
}

// Duration returns the elapsed time between start and last update.
// Only meaningful for completed runs with both timestamps recorded.
func (r WorkflowRun) Duration() time.Duration {
	if r.StartedAt.IsZero() || r.UpdatedAt.IsZero() {
		return 0
	}
	return r.UpdatedAt.Sub(r.StartedAt)
}

// BranchProtection describes the protection settings of the default branch.
// A known fact with Enabled=false means protection is confirmed absent
// (HTTP 404); an unknown fact means the settings could not be read at all.
type BranchProtection struct {
	// Enabled is true when any protection rule exists on the branch.
	Enabled bool `json:"enabled"`

	// RequiresReviews is true when pull request reviews are mandatory.
	RequiresReviews bool `json:"requires_reviews"`
}

// Commit is one entry of the recent commit sample.
type Commit struct {
	// Message is the full commit message; only the first line (the subject)
	// matters for convention checks.
	Message string `json:"message"`
}

// Subject returns the first line of the commit message.
func (c Commit) Subject() string {
	for i := 0; i < len(c.Message); i++ {
		if c.Message[i] == '\n' {
			return c.Message[:i]
		}
	}
	return c.Message
}

// Release is one published GitHub release.
type Release struct {
	// TagName is the git tag the release points at.
	TagName string `json:"tag_name"`
}

// RepositorySnapshot is the normalized, read-only bundle of repository facts
// the engine evaluates against. It is assembled fully by the data-access
// layer before evaluation starts and never mutated afterwards.
//
// Each field is a Fact so evaluators can distinguish observed-absent from
// unobservable; see the individual check semantics for how unknown facts
// degrade to skipped verdicts.
type RepositorySnapshot struct {
	// Repo identifies the inspected repository.
	Repo Repo `json:"repo"`

	// DefaultBranch is the branch runs and protection were read from.
	DefaultBranch string `json:"default_branch"`

	// Workflows lists the YAML workflow files with content and triggers.
	Workflows Fact[[]WorkflowFile] `json:"workflows"`

	// Runs lists recent workflow runs on the default branch, most recent
	// first. A known empty list means the pipeline never ran.
	Runs Fact[[]WorkflowRun] `json:"runs"`

	// Protection holds the default branch's protection settings.
	Protection Fact[BranchProtection] `json:"protection"`

	// Files is the recursive file listing of the default branch.
	Files Fact[[]string] `json:"files"`

	// Commits is the recent commit sample, most recent first.
	Commits Fact[[]Commit] `json:"commits"`

	// Releases lists recent published releases, most recent first.
	Releases Fact[[]Release] `json:"releases"`

	// Changelog is the raw CHANGELOG.md content; known-empty means the file
	// is confirmed absent.
	Changelog Fact[string] `json:"changelog"`
}
