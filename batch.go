package formula

import (
	"context"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Result is the outcome of one formula in a batch.
type Result struct {
	Value float64
	// Err is nil on success, a *Error for a failed formula, or the context
	// error for formulas skipped after cancellation.
	Err error
}

// EvalAll evaluates independent formulas concurrently over a bounded worker
// pool and returns one Result per input, in input order. Evaluations share
// no state, so no result depends on any other. Formulas not yet submitted
// when ctx is cancelled report ctx.Err(); submitted ones run to completion.
func EvalAll(ctx context.Context, exprs []string, opts ...Option) []Result {
	res := make([]Result, len(exprs))
	if len(exprs) == 0 {
		return res
	}
	cfg := newConfig(opts)
	workers := cfg.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(exprs) {
		workers = len(exprs)
	}
	pool, err := ants.NewPool(workers)
	if err != nil {
		for i := range res {
			res[i].Err = err
		}
		return res
	}
	defer pool.Release()
	var wg sync.WaitGroup
	for i, src := range exprs {
		select {
		case <-ctx.Done():
			res[i].Err = ctx.Err()
			continue
		default:
		}
		i, src := i, src
		wg.Add(1)
		serr := pool.Submit(func() {
			defer wg.Done()
			res[i].Value, res[i].Err = EvalString(src, opts...)
		})
		if serr != nil {
			wg.Done()
			res[i].Err = serr
		}
	}
	wg.Wait()
	return res
}
