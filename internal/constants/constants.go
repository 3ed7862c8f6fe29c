// Package constants provides centralized constant values used throughout cicdcheck.
// This package is the single source of truth for all shared constants and MUST NOT
// import any other internal packages.
package constants

import "time"

// Application identity.
const (
	// AppName is the binary and product name.
	AppName = "cicdcheck"

	// EnvPrefix is the prefix for environment variable configuration
	// (e.g. CICDCHECK_LOG_LEVEL).
	EnvPrefix = "CICDCHECK"

	// ConfigDirName is the hidden directory name for configuration files,
	// looked up both in the project root and in the user's home directory.
	ConfigDirName = ".cicdcheck"

	// ConfigFileName is the name of the YAML configuration file.
	ConfigFileName = "config.yaml"

	// LogsDir is the directory name where log files are stored.
	LogsDir = "logs"
)

// Timeout configurations for external operations.
const (
	// DefaultGitHubTimeout is the default maximum duration for snapshot
	// assembly against the GitHub API.
	DefaultGitHubTimeout = 30 * time.Second

	// DefaultAdvisoryTimeout is the default maximum duration for one AI
	// review request.
	DefaultAdvisoryTimeout = 60 * time.Second

	// DefaultServerReadTimeout bounds how long the HTTP server waits for a
	// complete request.
	DefaultServerReadTimeout = 15 * time.Second

	// DefaultServerWriteTimeout bounds how long a handler may take to write
	// its response. Scans hit the GitHub API, so this is generous.
	DefaultServerWriteTimeout = 60 * time.Second

	// DefaultShutdownTimeout is how long the server drains in-flight
	// requests after SIGINT/SIGTERM.
	DefaultShutdownTimeout = 10 * time.Second
)

// Evaluation thresholds. These are part of the check semantics and never
// configurable at runtime.
const (
	// PipelineFastThreshold is the maximum average run duration for the
	// pipeline_fast check to pass. Equal to the threshold passes.
	PipelineFastThreshold = 5 * time.Minute

	// ConventionalCommitThreshold is the minimum percentage of conventional
	// commits (over the non-merge sample) for conventional_commits to pass.
	ConventionalCommitThreshold = 80

	// ChangelogMinVersionHeaders is the minimum number of version headers a
	// CHANGELOG.md needs to count as maintained.
	ChangelogMinVersionHeaders = 2

	// MultiEnvMinIndicators is the minimum number of distinct environment
	// indicators for multi_environment to pass.
	MultiEnvMinIndicators = 2

	// EmptyCategoryPercentage is the sentinel percentage reported for a
	// category whose checks were all skipped. Such categories are excluded
	// from the overall score.
	EmptyCategoryPercentage = -1
)

// Snapshot assembly sample sizes.
const (
	// DefaultCommitSample is how many recent commits feed the
	// conventional_commits ratio.
	DefaultCommitSample = 20

	// RunSample is how many recent workflow runs are fetched for the
	// pipeline_green and pipeline_fast checks.
	RunSample = 10

	// ReleaseSample is how many recent releases are fetched for the
	// release_tagging check.
	ReleaseSample = 5
)

// AI advisory defaults, matching the GitHub Models free tier.
const (
	// DefaultAdvisoryBaseURL is the OpenAI-compatible GitHub Models endpoint.
	DefaultAdvisoryBaseURL = "https://models.inference.ai.azure.com"

	// DefaultAdvisoryModel is the chat model used for reviews.
	DefaultAdvisoryModel = "gpt-4.1-mini"

	// DefaultAdvisoryMaxTokens caps the review response length.
	DefaultAdvisoryMaxTokens = 1500

	// DefaultAdvisoryTemperature keeps review output focused and stable.
	DefaultAdvisoryTemperature = 0.3

	// AdvisoryYAMLExcerptMax is the maximum number of workflow YAML
	// characters included in the review prompt.
	AdvisoryYAMLExcerptMax = 3000
)

// Retry configuration for recoverable GitHub API errors.
const (
	// MaxRateLimitRetries is how many times a rate-limited call is retried
	// before the affected snapshot fact is reported unknown.
	MaxRateLimitRetries = 1
)
