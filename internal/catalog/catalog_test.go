package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
	"github.com/FabLrc/GithubCICDChecker/internal/errors"
)

func TestDefaultCatalog(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)
	require.Equal(t, constants.TotalChecks, cat.Len())

	defs := cat.Definitions()
	assert.Equal(t, "pipeline_exists", defs[0].ID)
	assert.Equal(t, "auto_changelog", defs[len(defs)-1].ID)

	seen := make(map[string]bool, len(defs))
	perCategory := make(map[constants.Category]int)
	for _, def := range defs {
		assert.False(t, seen[def.ID], "duplicate id %s", def.ID)
		seen[def.ID] = true
		perCategory[def.Category]++

		assert.NotEmpty(t, def.Title, "check %s has no title", def.ID)
		assert.NotEmpty(t, def.Description, "check %s has no description", def.ID)
		assert.NotEmpty(t, def.Remediation, "check %s has no remediation", def.ID)
		assert.NotEmpty(t, def.RequiredFields, "check %s declares no snapshot fields", def.ID)
	}

	for _, category := range constants.CategoryOrder() {
		assert.Equal(t, constants.CategorySize(category), perCategory[category],
			"category %s", category)
	}
}

func TestDefaultCatalogGroupsCategories(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	// Definitions are listed category by category, in display order.
	var categories []constants.Category
	for _, def := range cat.Definitions() {
		if len(categories) == 0 || categories[len(categories)-1] != def.Category {
			categories = append(categories, def.Category)
		}
	}
	assert.Equal(t, constants.CategoryOrder(), categories)
}

func TestNewValidation(t *testing.T) {
	valid := domain.CheckDefinition{
		ID:       "pipeline_exists",
		Category: constants.CategoryPipeline,
		Title:    "Pipeline CI existe",
	}

	tests := []struct {
		name string
		defs []domain.CheckDefinition
	}{
		{
			name: "empty id",
			defs: []domain.CheckDefinition{{Category: constants.CategoryPipeline, Title: "x"}},
		},
		{
			name: "duplicate id",
			defs: []domain.CheckDefinition{valid, valid},
		},
		{
			name: "unknown category",
			defs: []domain.CheckDefinition{{ID: "x", Category: constants.Category("nope"), Title: "x"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.defs)
			require.Error(t, err)
			assert.ErrorIs(t, err, errors.ErrCatalogInvalid)
		})
	}
}

func TestNewAllowsReducedCatalog(t *testing.T) {
	cat, err := New([]domain.CheckDefinition{
		{ID: "pipeline_exists", Category: constants.CategoryPipeline, Title: "Pipeline CI existe"},
		{ID: "readme_exists", Category: constants.CategoryPractices, Title: "README présent"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, cat.Len())
}

func TestByID(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	def, ok := cat.ByID("branch_protection")
	require.True(t, ok)
	assert.Equal(t, constants.CategorySecurity, def.Category)
	assert.Equal(t, "Protection de branche", def.Title)

	_, ok = cat.ByID("does_not_exist")
	assert.False(t, ok)
}

func TestDefinitionsReturnsCopy(t *testing.T) {
	cat, err := Default()
	require.NoError(t, err)

	defs := cat.Definitions()
	defs[0].ID = "mutated"

	fresh := cat.Definitions()
	assert.Equal(t, "pipeline_exists", fresh[0].ID)
}
