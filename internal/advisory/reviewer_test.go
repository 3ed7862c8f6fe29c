package advisory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabLrc/GithubCICDChecker/internal/catalog"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
	"github.com/FabLrc/GithubCICDChecker/internal/errors"
)

func testReport() *domain.ScoreReport {
	return &domain.ScoreReport{
		Repository: "octocat/hello-world",
		Results: []domain.CheckResult{
			domain.FailResult("branch_protection", "Aucune protection configurée sur main", "Activez la protection"),
		},
		Categories: []domain.CategoryScore{},
	}
}

func newTestReviewer(t *testing.T, handler http.HandlerFunc) *Reviewer {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	cat, err := catalog.Default()
	require.NoError(t, err)

	reviewer, err := New("tok-abc", cat, WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	require.NoError(t, err)
	return reviewer
}

func chatResponse(t *testing.T, review domain.Review) []byte {
	t.Helper()
	content, err := json.Marshal(review)
	require.NoError(t, err)

	body, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"message": map[string]any{"role": "assistant", "content": string(content)}},
		},
	})
	require.NoError(t, err)
	return body
}

func TestNewWithoutToken(t *testing.T) {
	cat, err := catalog.Default()
	require.NoError(t, err)

	reviewer, err := New("", cat)
	require.ErrorIs(t, err, errors.ErrAdvisoryUnavailable)
	assert.Nil(t, reviewer)
}

func TestReviewSuccess(t *testing.T) {
	want := domain.Review{
		Summary: "Le pipeline est solide mais la branche principale n'est pas protégée.",
		Recommendations: []domain.Recommendation{
			{Title: "Protéger la branche main", Description: "Activez les reviews obligatoires.", Priority: domain.PriorityHigh},
		},
	}

	var gotBody map[string]any
	reviewer := newTestReviewer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Contains(t, r.Header.Get("Authorization"), "tok-abc")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(chatResponse(t, want))
	})

	review, err := reviewer.Review(context.Background(), testReport(), "")
	require.NoError(t, err)
	require.NotNil(t, review)
	assert.Equal(t, want.Summary, review.Summary)
	require.Len(t, review.Recommendations, 1)
	assert.Equal(t, domain.PriorityHigh, review.Recommendations[0].Priority)

	assert.Equal(t, "gpt-4.1-mini", gotBody["model"])
	assert.InDelta(t, 0.3, gotBody["temperature"], 0.001)
	assert.InDelta(t, 1500, gotBody["max_tokens"], 0.1)

	format, ok := gotBody["response_format"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "json_schema", format["type"])

	messages, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, messages, 2)
	system, ok := messages[0].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, system["content"], "expert DevOps")
	user, ok := messages[1].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, user["content"], "Protection de branche")
}

func TestReviewTokenRejected(t *testing.T) {
	reviewer := newTestReviewer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"Unauthorized"}}`))
	})

	review, err := reviewer.Review(context.Background(), testReport(), "")
	require.ErrorIs(t, err, errors.ErrAdvisoryToken)
	assert.Nil(t, review)
	assert.Contains(t, err.Error(), "\"Models\"")
	assert.Contains(t, err.Error(), "fine-grained")
}

func TestReviewAccessDenied(t *testing.T) {
	reviewer := newTestReviewer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"message":"Forbidden"}}`))
	})

	review, err := reviewer.Review(context.Background(), testReport(), "")
	require.ErrorIs(t, err, errors.ErrAdvisoryToken)
	assert.Nil(t, review)
	assert.Contains(t, err.Error(), "Accès refusé")
}

func TestReviewRequestFailure(t *testing.T) {
	reviewer := newTestReviewer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":{"message":"bad request"}}`))
	})

	review, err := reviewer.Review(context.Background(), testReport(), "")
	require.ErrorIs(t, err, errors.ErrAdvisoryRequest)
	assert.Nil(t, review)
}

func TestReviewEmptyChoices(t *testing.T) {
	reviewer := newTestReviewer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	review, err := reviewer.Review(context.Background(), testReport(), "")
	require.ErrorIs(t, err, errors.ErrAdvisoryResponse)
	assert.Nil(t, review)
}

func TestReviewMalformedContent(t *testing.T) {
	reviewer := newTestReviewer(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"pas du json"}}]}`))
	})

	review, err := reviewer.Review(context.Background(), testReport(), "")
	require.ErrorIs(t, err, errors.ErrAdvisoryResponse)
	assert.Nil(t, review)
}
