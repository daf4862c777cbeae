package gen

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"coin-change/change"
	"coin-change/internal/manifest"
)

// Evaluation is a solved manifest problem.
type Evaluation struct {
	Problem manifest.Problem
	Result  change.Result
}

// Evaluate solves problems concurrently, at most workers at a time
// (unbounded when workers <= 0). Every solve owns its cost table.
// Results are returned in input order.
func Evaluate(ctx context.Context, problems []manifest.Problem, workers int) ([]Evaluation, error) {
	res := make([]Evaluation, len(problems))

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for i := range problems {
		p := problems[i]

		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			// Manifest values are int64; widths were range-checked during
			// validation, so solving at int64 gives the same answer.
			r, err := change.Solve(p.Target, p.Denominations)
			if err != nil {
				return fmt.Errorf("solving %s: %w", p.Name, err)
			}

			res[i] = Evaluation{Problem: p, Result: r}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return res, nil
}
