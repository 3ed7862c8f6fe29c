package engine

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/FabLrc/GithubCICDChecker/internal/catalog"
	"github.com/FabLrc/GithubCICDChecker/internal/ctxutil"
	"github.com/FabLrc/GithubCICDChecker/internal/domain"
)

// Runner evaluates every catalog check against one snapshot.
type Runner struct {
	catalog *catalog.Catalog
	evals   map[string]Evaluator
}

// NewRunner builds a runner over the given catalog.
func NewRunner(cat *catalog.Catalog) *Runner {
	return &Runner{catalog: cat, evals: evaluators()}
}

// Run evaluates all checks concurrently and returns one result per catalog
// definition, in catalog order. Individual evaluator failures never abort
// the run: a panicking or unimplemented check yields a skipped verdict with
// the reason in its evidence. The only error Run returns is context
// cancellation.
func (r *Runner) Run(ctx context.Context, snap *domain.RepositorySnapshot) ([]domain.CheckResult, error) {
	log := zerolog.Ctx(ctx)

	if err := ctxutil.Canceled(ctx); err != nil {
		return nil, err
	}

	defs := r.catalog.Definitions()
	results := make([]domain.CheckResult, len(defs))

	g, gctx := errgroup.WithContext(ctx)
	for i, def := range defs {
		g.Go(func() error {
			if err := ctxutil.Canceled(gctx); err != nil {
				return err
			}

			results[i] = r.evaluate(def, snap)
			log.Debug().
				Str("check", def.ID).
				Str("status", results[i].Status.String()).
				Msg("check evaluated")
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// evaluate runs one evaluator, converting a panic into a skipped verdict so
// a single broken rule cannot take down the whole evaluation.
func (r *Runner) evaluate(def domain.CheckDefinition, snap *domain.RepositorySnapshot) (result domain.CheckResult) {
	defer func() {
		if rec := recover(); rec != nil {
			result = domain.SkipResult(def.ID, fmt.Sprintf("Évaluation interrompue : %v", rec))
		}
	}()

	eval, ok := r.evals[def.ID]
	if !ok {
		return domain.SkipResult(def.ID, "Check non implémenté")
	}
	return eval(def, snap)
}
