// Package errors provides centralized error handling for cicdcheck.
//
// This package defines sentinel errors used for programmatic error categorization
// throughout the application. All error types can be checked using errors.Is().
//
// IMPORTANT: This package MUST NOT import any other internal packages.
// Only standard library imports are allowed.
package errors

import "errors"

// Sentinel errors for error categorization.
// These allow callers to check error types with errors.Is().
// All errors use lowercase descriptions per Go conventions.
var (
	// ErrCatalogInvalid indicates that the check catalog violates one of its
	// load-time invariants (definition count, category sizes, unique ids).
	// This is the only error class that is fatal before any evaluation runs.
	ErrCatalogInvalid = errors.New("invalid check catalog")

	// ErrInvalidRepo indicates that a repository argument could not be parsed
	// into an owner/name pair (bad URL, missing segments).
	ErrInvalidRepo = errors.New("invalid repository identifier")

	// ErrRepoAccess indicates that the repository itself could not be reached
	// (does not exist, private without credentials, network failure).
	ErrRepoAccess = errors.New("repository not accessible")

	// ErrAdvisoryUnavailable indicates that the AI review feature cannot run
	// because no token is configured. Callers render the unavailable state
	// rather than treating this as a failure.
	ErrAdvisoryUnavailable = errors.New("advisory unavailable: no token configured")

	// ErrAdvisoryRequest indicates that the AI review API call failed.
	ErrAdvisoryRequest = errors.New("advisory request failed")

	// ErrAdvisoryToken indicates that the AI endpoint rejected the supplied
	// token (HTTP 401/403).
	ErrAdvisoryToken = errors.New("advisory token rejected")

	// ErrAdvisoryResponse indicates that the AI endpoint returned a body that
	// could not be parsed into a review.
	ErrAdvisoryResponse = errors.New("advisory response unparseable")

	// ErrConfigNil indicates that a nil config was passed to validation.
	ErrConfigNil = errors.New("config is nil")

	// ErrConfigInvalidGitHub indicates an invalid GitHub configuration value.
	ErrConfigInvalidGitHub = errors.New("invalid GitHub configuration")

	// ErrConfigInvalidAI indicates an invalid AI configuration value.
	ErrConfigInvalidAI = errors.New("invalid AI configuration")

	// ErrConfigInvalidServer indicates an invalid server configuration value.
	ErrConfigInvalidServer = errors.New("invalid server configuration")

	// ErrConfigInvalidLog indicates an invalid logging configuration value.
	ErrConfigInvalidLog = errors.New("invalid logging configuration")

	// ErrInvalidOutputFormat indicates an invalid output format was specified.
	ErrInvalidOutputFormat = errors.New("invalid output format")

	// ErrJSONErrorOutput indicates that an error has already been output as JSON.
	// This ensures a non-zero exit code while preventing duplicate error messages.
	// Commands should silence cobra's error printing when this is returned.
	ErrJSONErrorOutput = errors.New("error output as JSON")
)
