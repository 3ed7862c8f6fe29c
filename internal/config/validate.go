package config

import (
	"github.com/FabLrc/GithubCICDChecker/internal/errors"
)

// logLevels are the accepted values for log.level.
//
//nolint:gochecknoglobals // static validation table
var logLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// Validate checks the configuration for invalid or inconsistent values.
// It returns an error describing the first validation failure found.
//
// Validation rules:
//   - GitHub timeout must be positive, commit sample between 1 and 100
//   - AI timeout must be positive, max tokens between 1 and 32768,
//     temperature between 0 and 2; base URL and model required when enabled
//   - Server listen address must not be empty, timeouts must be positive
//   - Log level must be a known zerolog level, rotation values non-negative
func Validate(cfg *Config) error {
	if cfg == nil {
		return errors.ErrConfigNil
	}

	if err := validateGitHubConfig(&cfg.GitHub); err != nil {
		return err
	}
	if err := validateAIConfig(&cfg.AI); err != nil {
		return err
	}
	if err := validateServerConfig(&cfg.Server); err != nil {
		return err
	}
	return validateLogConfig(&cfg.Log)
}

// validateGitHubConfig checks GitHub-specific configuration values.
func validateGitHubConfig(cfg *GitHubConfig) error {
	if cfg.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidGitHub,
			"github.timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.CommitSample < 1 || cfg.CommitSample > 100 {
		return errors.Wrapf(errors.ErrConfigInvalidGitHub,
			"github.commit_sample must be between 1 and 100, got %d", cfg.CommitSample)
	}
	return nil
}

// validateAIConfig checks AI-specific configuration values.
func validateAIConfig(cfg *AIConfig) error {
	if cfg.Timeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidAI,
			"ai.timeout must be positive, got %s", cfg.Timeout)
	}
	if cfg.MaxTokens < 1 || cfg.MaxTokens > 32768 {
		return errors.Wrapf(errors.ErrConfigInvalidAI,
			"ai.max_tokens must be between 1 and 32768, got %d", cfg.MaxTokens)
	}
	if cfg.Temperature < 0 || cfg.Temperature > 2 {
		return errors.Wrapf(errors.ErrConfigInvalidAI,
			"ai.temperature must be between 0 and 2, got %g", cfg.Temperature)
	}
	if cfg.Enabled {
		if cfg.BaseURL == "" {
			return errors.Wrap(errors.ErrConfigInvalidAI,
				"ai.base_url must not be empty when ai.enabled is true")
		}
		if cfg.Model == "" {
			return errors.Wrap(errors.ErrConfigInvalidAI,
				"ai.model must not be empty when ai.enabled is true")
		}
	}
	return nil
}

// validateServerConfig checks server-specific configuration values.
func validateServerConfig(cfg *ServerConfig) error {
	if cfg.ListenAddr == "" {
		return errors.Wrap(errors.ErrConfigInvalidServer,
			"server.listen_addr must not be empty")
	}
	if cfg.ReadTimeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidServer,
			"server.read_timeout must be positive, got %s", cfg.ReadTimeout)
	}
	if cfg.WriteTimeout <= 0 {
		return errors.Wrapf(errors.ErrConfigInvalidServer,
			"server.write_timeout must be positive, got %s", cfg.WriteTimeout)
	}
	return nil
}

// validateLogConfig checks logging-specific configuration values.
func validateLogConfig(cfg *LogConfig) error {
	if cfg.Level != "" && !logLevels[cfg.Level] {
		return errors.Wrapf(errors.ErrConfigInvalidLog,
			"log.level must be one of trace, debug, info, warn, error; got %q", cfg.Level)
	}
	if cfg.MaxSizeMB < 0 || cfg.MaxBackups < 0 || cfg.MaxAgeDays < 0 {
		return errors.Wrap(errors.ErrConfigInvalidLog,
			"log rotation values must not be negative")
	}
	return nil
}
