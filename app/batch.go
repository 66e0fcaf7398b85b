package app

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/error-wtf/segmented-calculation-suite/config"
	"github.com/error-wtf/segmented-calculation-suite/domain/catalog"
	"github.com/error-wtf/segmented-calculation-suite/domain/result"
)

// ComputeBatch maps Compute over the catalogue in parallel. Results come
// back in input order, one row per object: invalid rows are error-flagged,
// never dropped. The only error returned is context cancellation.
func ComputeBatch(ctx context.Context, cfg config.Run, objs []catalog.CelestialObject) ([]result.CalculationResult, error) {
	results := make([]result.CalculationResult, len(objs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.WorkerLimit())

	for i := range objs {
		i := i
		g.Go(func() error {
			select {
			case <-ctx.Done():
				return ctx.Err()
			default:
			}
			results[i] = Compute(cfg, objs[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
