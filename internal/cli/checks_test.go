package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

func TestRunChecksText(t *testing.T) {
	cmd := newTestCommand(t, OutputText)
	buf := &bytes.Buffer{}

	require.NoError(t, runChecks(context.Background(), cmd, buf))

	out := buf.String()
	assert.Contains(t, out, "ID")
	assert.Contains(t, out, "CATÉGORIE")
	assert.Contains(t, out, "pipeline_exists")
	assert.Contains(t, out, "branch_protection")
	assert.Contains(t, out, "dependabot_configured")
	assert.Contains(t, out, "30 checks dans 6 catégories")
}

func TestRunChecksJSON(t *testing.T) {
	cmd := newTestCommand(t, OutputJSON)
	buf := &bytes.Buffer{}

	require.NoError(t, runChecks(context.Background(), cmd, buf))

	var defs []domain.CheckDefinition
	require.NoError(t, json.Unmarshal(buf.Bytes(), &defs))
	require.Len(t, defs, constants.TotalChecks)
	assert.Equal(t, "pipeline_exists", defs[0].ID)
	for _, def := range defs {
		assert.NotEmpty(t, def.Title, "check %s", def.ID)
		assert.NotEmpty(t, def.Remediation, "check %s", def.ID)
	}
}

func TestRunChecksCanceledContext(t *testing.T) {
	cmd := newTestCommand(t, OutputText)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := runChecks(ctx, cmd, &bytes.Buffer{})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
