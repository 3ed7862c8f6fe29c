// Package testutil provides testing utilities for cicdcheck.
//
// This package contains mock errors and snapshot builders used across test
// files. It should only be imported by test files (*_test.go).
package testutil

import "errors"

// Mock errors for testing purposes.
// These errors are used to simulate various failure scenarios in tests.
var (
	// ErrMockNotFound indicates a mock resource was not found (used in tests).
	ErrMockNotFound = errors.New("not found")

	// ErrMockAPIError indicates a mock API error occurred (used in tests).
	ErrMockAPIError = errors.New("API error")

	// ErrMockNetwork indicates a mock network error occurred (used in tests).
	ErrMockNetwork = errors.New("network error")

	// ErrMockRateLimited indicates a mock rate limit was hit (used in tests).
	ErrMockRateLimited = errors.New("rate limited")
)
