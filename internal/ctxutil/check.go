// Package ctxutil provides context utility functions.
package ctxutil

import "context"

// Canceled reports whether the context is done, returning its error
// (Canceled or DeadlineExceeded) and nil otherwise. Evaluation entry
// points call this before starting work so a dead context never spawns
// goroutines.
func Canceled(ctx context.Context) error {
	return ctx.Err()
}
