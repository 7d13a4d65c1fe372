package claimproof

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// ProveAll proves independent claim statements in parallel. The instances
// share nothing mutable; the only shared state is the read-only key cache.
// The first failure cancels the remaining work via the context.
func ProveAll(ctx context.Context, stmts []*ClaimStatement) ([]*Bundle, error) {
	g, ctx := errgroup.WithContext(ctx)
	bundles := make([]*Bundle, len(stmts))

	for i, stmt := range stmts {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			b, err := Prove(stmt)
			if err != nil {
				return err
			}
			bundles[i] = b
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bundles, nil
}

// VerifyAll verifies bundles in parallel against the same pinned key.
func VerifyAll(ctx context.Context, bundles []*Bundle, pinnedVK []byte) error {
	g, ctx := errgroup.WithContext(ctx)

	for _, b := range bundles {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			return Verify(b, pinnedVK)
		})
	}

	return g.Wait()
}
