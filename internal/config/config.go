// Package config provides configuration management for cicdcheck with layered precedence.
//
// Configuration sources are loaded in the following order (highest precedence first):
//  1. Environment variables (CICDCHECK_* prefix)
//  2. Project config (.cicdcheck/config.yaml)
//  3. Global config (~/.cicdcheck/config.yaml)
//  4. Built-in defaults
//
// Each higher level completely overrides the lower level for the same key.
//
// IMPORTANT: This package may import internal/constants and internal/errors,
// but MUST NOT import internal/domain or other internal packages.
package config

import (
	"os"
	"time"
)

// Config is the root configuration structure for cicdcheck.
type Config struct {
	// GitHub contains settings for snapshot assembly against the GitHub API.
	GitHub GitHubConfig `yaml:"github" mapstructure:"github"`

	// AI contains settings for the optional AI review.
	AI AIConfig `yaml:"ai" mapstructure:"ai"`

	// Server contains settings for the HTTP API server.
	Server ServerConfig `yaml:"server" mapstructure:"server"`

	// Log contains settings for structured logging output.
	Log LogConfig `yaml:"log" mapstructure:"log"`
}

// GitHubConfig contains settings for the GitHub data-access layer.
type GitHubConfig struct {
	// TokenEnvVar names the environment variable holding the GitHub token.
	// The token itself never lives in config files.
	// Default: "GITHUB_TOKEN"
	TokenEnvVar string `yaml:"token_env_var" mapstructure:"token_env_var"`

	// APIBaseURL overrides the API root, for GitHub Enterprise instances.
	// Empty means the public API.
	APIBaseURL string `yaml:"api_base_url,omitempty" mapstructure:"api_base_url"`

	// CommitSample is how many recent commits feed the commit-convention
	// check. Valid range: 1-100.
	// Default: 20
	CommitSample int `yaml:"commit_sample" mapstructure:"commit_sample"`

	// Timeout is the maximum duration for one API call.
	// Default: 30s
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Token resolves the GitHub token from the configured environment variable.
// Returns the empty string when the variable is unset, which limits scans to
// public data.
func (c *GitHubConfig) Token() string {
	if c.TokenEnvVar == "" {
		return ""
	}
	return os.Getenv(c.TokenEnvVar)
}

// AIConfig contains settings for the AI review feature.
type AIConfig struct {
	// Enabled controls whether scans request an AI review by default.
	// Default: true (the review still needs a token to actually run)
	Enabled bool `yaml:"enabled" mapstructure:"enabled"`

	// BaseURL is the OpenAI-compatible endpoint.
	// Default: the GitHub Models endpoint
	BaseURL string `yaml:"base_url" mapstructure:"base_url"`

	// Model is the chat model used for reviews.
	// Default: "gpt-4.1-mini"
	Model string `yaml:"model" mapstructure:"model"`

	// TokenEnvVar names the environment variable holding the token for the
	// AI endpoint. GitHub Models accepts a GitHub PAT with the "Models"
	// permission, so this defaults to the same variable as the GitHub
	// section.
	// Default: "GITHUB_TOKEN"
	TokenEnvVar string `yaml:"token_env_var" mapstructure:"token_env_var"`

	// MaxTokens caps the review response length. Valid range: 1-32768.
	// Default: 1500
	MaxTokens int `yaml:"max_tokens" mapstructure:"max_tokens"`

	// Temperature controls output variability. Valid range: 0-2.
	// Default: 0.3
	Temperature float64 `yaml:"temperature" mapstructure:"temperature"`

	// Timeout is the maximum duration for one review request.
	// Default: 60s
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
}

// Token resolves the AI endpoint token from the configured environment
// variable.
func (c *AIConfig) Token() string {
	if c.TokenEnvVar == "" {
		return ""
	}
	return os.Getenv(c.TokenEnvVar)
}

// ServerConfig contains settings for the HTTP API server.
type ServerConfig struct {
	// ListenAddr is the address the server binds to.
	// Default: ":8080"
	ListenAddr string `yaml:"listen_addr" mapstructure:"listen_addr"`

	// OriginAllowed is the CORS origin allowed to call the API.
	// Empty allows any origin.
	OriginAllowed string `yaml:"origin_allowed,omitempty" mapstructure:"origin_allowed"`

	// ReadTimeout bounds how long the server waits for a request to arrive.
	// Default: 15s
	ReadTimeout time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`

	// WriteTimeout bounds how long a handler may take to write its
	// response. Scans call the GitHub API, so this is generous.
	// Default: 60s
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
}

// LogConfig contains settings for structured logging output.
type LogConfig struct {
	// Level is the minimum level written (trace, debug, info, warn, error).
	// Default: "info"
	Level string `yaml:"level" mapstructure:"level"`

	// File is an optional path for a rotated JSON log file. Empty disables
	// file logging.
	File string `yaml:"file,omitempty" mapstructure:"file"`

	// MaxSizeMB is the size in megabytes at which the log file rotates.
	// Default: 10
	MaxSizeMB int `yaml:"max_size_mb" mapstructure:"max_size_mb"`

	// MaxBackups is how many rotated files are kept.
	// Default: 3
	MaxBackups int `yaml:"max_backups" mapstructure:"max_backups"`

	// MaxAgeDays is how many days rotated files are kept.
	// Default: 28
	MaxAgeDays int `yaml:"max_age_days" mapstructure:"max_age_days"`
}
