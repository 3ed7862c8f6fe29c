// Package catalog holds the immutable registry of check definitions.
//
// The default catalog is fixed at 30 checks across 6 categories. Its
// integrity (count, category sizes, unique ids) is verified once at load
// time; a violation is the only fatal error class in the engine. Changing
// the catalog is a data change, not a runtime operation, so there is no
// mutation API.
package catalog

import (
	"github.com/FabLrc/GithubCICDChecker/internal/constants"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
	"github.com/FabLrc/GithubCICDChecker/internal/errors"
)

// Catalog is an ordered, read-only set of check definitions.
// Construct with New or Default; the zero value is not usable.
type Catalog struct {
	defs []domain.CheckDefinition
	byID map[string]int
}

// New builds a catalog from the given definitions, preserving order.
// It validates structural integrity (non-empty unique ids, known
// categories) but not the fixed default sizes, so tests can run against
// reduced catalogs.
func New(defs []domain.CheckDefinition) (*Catalog, error) {
	byID := make(map[string]int, len(defs))
	for i, def := range defs {
		if def.ID == "" {
			return nil, errors.Wrapf(errors.ErrCatalogInvalid, "definition %d has an empty id", i)
		}
		if _, dup := byID[def.ID]; dup {
			return nil, errors.Wrapf(errors.ErrCatalogInvalid, "duplicate check id %q", def.ID)
		}
		if constants.CategorySize(def.Category) == 0 {
			return nil, errors.Wrapf(errors.ErrCatalogInvalid, "check %q has unknown category %q", def.ID, def.Category)
		}
		byID[def.ID] = i
	}

	cloned := make([]domain.CheckDefinition, len(defs))
	copy(cloned, defs)
	return &Catalog{defs: cloned, byID: byID}, nil
}

// Default returns the full production catalog, verifying the fixed-size
// invariants: 30 definitions total and the exact per-category counts.
func Default() (*Catalog, error) {
	cat, err := New(defaultDefinitions())
	if err != nil {
		return nil, err
	}

	if cat.Len() != constants.TotalChecks {
		return nil, errors.Wrapf(errors.ErrCatalogInvalid,
			"expected %d checks, got %d", constants.TotalChecks, cat.Len())
	}

	perCategory := make(map[constants.Category]int, 6)
	for _, def := range cat.defs {
		perCategory[def.Category]++
	}
	for _, category := range constants.CategoryOrder() {
		want := constants.CategorySize(category)
		if got := perCategory[category]; got != want {
			return nil, errors.Wrapf(errors.ErrCatalogInvalid,
				"category %s has %d checks, expected %d", category, got, want)
		}
	}

	return cat, nil
}

// Definitions returns the definitions in catalog order.
// The returned slice is a fresh copy; the catalog itself never changes.
func (c *Catalog) Definitions() []domain.CheckDefinition {
	out := make([]domain.CheckDefinition, len(c.defs))
	copy(out, c.defs)
	return out
}

// ByID returns the definition for the given check id.
func (c *Catalog) ByID(id string) (domain.CheckDefinition, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.CheckDefinition{}, false
	}
	return c.defs[i], true
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	return len(c.defs)
}
