package engine

import (
	"errors"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/vedicmath/dispatch"
	"github.com/katalvlaran/vedicmath/numeric"
)

// ErrBatchLength indicates operand slices of different lengths.
var ErrBatchLength = errors.New("engine: operand slices differ in length")

// EvaluateBatch dispatches op element-wise over two operand slices.
// Element dispatches are independent and run across a bounded worker
// pool; result position i always corresponds to input position i.
//
// The whole batch fails on the first element error (a zero divisor in any
// position, for instance); partial results are discarded.
func (e *Engine) EvaluateBatch(op dispatch.Op, as, bs []numeric.Value) ([]numeric.Value, error) {
	if len(as) != len(bs) {
		return nil, ErrBatchLength
	}
	if len(as) == 0 {
		return []numeric.Value{}, nil
	}

	workers := e.batchWorkers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	results := make([]numeric.Value, len(as))
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range as {
		i := i
		g.Go(func() error {
			out, err := e.Evaluate(op, as[i], bs[i])
			if err != nil {
				return err
			}
			results[i] = out.Result

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
