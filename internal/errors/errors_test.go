package errors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	checkerrors "github.com/FabLrc/GithubCICDChecker/internal/errors"
)

// testError is a custom error type used to exercise the fallback branches
// in UserMessage and Actionable without matching any sentinel.
type testError struct {
	msg string
}

func (e testError) Error() string {
	return e.msg
}

func TestSentinelErrors_Existence(t *testing.T) {
	sentinels := []struct {
		name string
		err  error
	}{
		{"ErrCatalogInvalid", checkerrors.ErrCatalogInvalid},
		{"ErrInvalidRepo", checkerrors.ErrInvalidRepo},
		{"ErrRepoAccess", checkerrors.ErrRepoAccess},
		{"ErrAdvisoryUnavailable", checkerrors.ErrAdvisoryUnavailable},
		{"ErrAdvisoryRequest", checkerrors.ErrAdvisoryRequest},
		{"ErrAdvisoryToken", checkerrors.ErrAdvisoryToken},
		{"ErrAdvisoryResponse", checkerrors.ErrAdvisoryResponse},
		{"ErrConfigNil", checkerrors.ErrConfigNil},
		{"ErrConfigInvalidGitHub", checkerrors.ErrConfigInvalidGitHub},
		{"ErrConfigInvalidAI", checkerrors.ErrConfigInvalidAI},
		{"ErrConfigInvalidServer", checkerrors.ErrConfigInvalidServer},
		{"ErrConfigInvalidLog", checkerrors.ErrConfigInvalidLog},
		{"ErrInvalidOutputFormat", checkerrors.ErrInvalidOutputFormat},
		{"ErrJSONErrorOutput", checkerrors.ErrJSONErrorOutput},
	}

	for _, tc := range sentinels {
		t.Run(tc.name, func(t *testing.T) {
			require.Error(t, tc.err, "%s should not be nil", tc.name)
			assert.NotEmpty(t, tc.err.Error(), "%s should have a message", tc.name)
		})
	}
}

func TestWrap(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, checkerrors.Wrap(nil, "context"))
	})

	t.Run("preserves sentinel in chain", func(t *testing.T) {
		wrapped := checkerrors.Wrap(checkerrors.ErrRepoAccess, "fetching owner/repo")
		require.Error(t, wrapped)
		assert.ErrorIs(t, wrapped, checkerrors.ErrRepoAccess)
		assert.Contains(t, wrapped.Error(), "fetching owner/repo")
	})

	t.Run("double wrap keeps chain intact", func(t *testing.T) {
		inner := checkerrors.Wrap(checkerrors.ErrAdvisoryRequest, "calling model")
		outer := checkerrors.Wrap(inner, "requesting review")
		assert.ErrorIs(t, outer, checkerrors.ErrAdvisoryRequest)
	})
}

func TestWrapf(t *testing.T) {
	t.Run("nil error returns nil", func(t *testing.T) {
		assert.NoError(t, checkerrors.Wrapf(nil, "context %d", 42))
	})

	t.Run("formats message with args", func(t *testing.T) {
		wrapped := checkerrors.Wrapf(checkerrors.ErrInvalidRepo, "parsing %q", "not-a-repo")
		require.Error(t, wrapped)
		assert.ErrorIs(t, wrapped, checkerrors.ErrInvalidRepo)
		assert.Contains(t, wrapped.Error(), `parsing "not-a-repo"`)
	})
}

func TestUserMessage(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Empty(t, checkerrors.UserMessage(nil))
	})

	t.Run("known sentinel", func(t *testing.T) {
		msg := checkerrors.UserMessage(checkerrors.ErrRepoAccess)
		assert.Equal(t, "Impossible d'accéder au dépôt.", msg)
	})

	t.Run("wrapped sentinel still matches", func(t *testing.T) {
		err := fmt.Errorf("outer: %w", checkerrors.ErrAdvisoryUnavailable)
		msg := checkerrors.UserMessage(err)
		assert.Equal(t, "IA non disponible : aucun token configuré.", msg)
	})

	t.Run("unknown error falls back to error text", func(t *testing.T) {
		err := testError{msg: "boom"}
		assert.Equal(t, "boom", checkerrors.UserMessage(err))
	})
}

func TestActionable(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		assert.Empty(t, checkerrors.Actionable(nil))
	})

	t.Run("known sentinel has an action", func(t *testing.T) {
		action := checkerrors.Actionable(checkerrors.ErrInvalidRepo)
		assert.Contains(t, action, "owner/repo")
	})

	t.Run("unknown error has no action", func(t *testing.T) {
		assert.Empty(t, checkerrors.Actionable(errors.New("mystery")))
	})
}
