package config

import (
	"github.com/FabLrc/GithubCICDChecker/internal/constants"
)

// DefaultConfig returns a new Config with the built-in default values.
// These defaults are the base layer that config files, environment variables
// and CLI flags override.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			// GITHUB_TOKEN is what gh and Actions already populate.
			TokenEnvVar:  "GITHUB_TOKEN",
			APIBaseURL:   "",
			CommitSample: constants.DefaultCommitSample,
			Timeout:      constants.DefaultGitHubTimeout,
		},
		AI: AIConfig{
			// Enabled only gates the default; a scan without a token still
			// renders, minus the review.
			Enabled:     true,
			BaseURL:     constants.DefaultAdvisoryBaseURL,
			Model:       constants.DefaultAdvisoryModel,
			TokenEnvVar: "GITHUB_TOKEN",
			MaxTokens:   constants.DefaultAdvisoryMaxTokens,
			Temperature: constants.DefaultAdvisoryTemperature,
			Timeout:     constants.DefaultAdvisoryTimeout,
		},
		Server: ServerConfig{
			ListenAddr:    ":8080",
			OriginAllowed: "",
			ReadTimeout:   constants.DefaultServerReadTimeout,
			WriteTimeout:  constants.DefaultServerWriteTimeout,
		},
		Log: LogConfig{
			Level:      "info",
			File:       "",
			MaxSizeMB:  10,
			MaxBackups: 3,
			MaxAgeDays: 28,
		},
	}
}
