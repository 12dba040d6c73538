// Package datasets provides helpers for constructing imbalanced datasets,
// mainly for examples and benchmarking of the resamplers.
package datasets

import (
	"math/rand/v2"
	"sort"
	"time"

	"github.com/YuminosukeSato/imbgo/dataset"
	"github.com/YuminosukeSato/imbgo/pkg/errors"
	"github.com/YuminosukeSato/imbgo/utils"
)

// Option configures MakeImbalance.
type Option func(*config)

type config struct {
	randomState    uint64
	hasRandomState bool
}

// WithRandomState seeds the row selection for reproducible output.
func WithRandomState(seed uint64) Option {
	return func(c *config) {
		c.randomState = seed
		c.hasRandomState = true
	}
}

// MakeImbalance down-samples X and y to the class distribution given by
// target, drawing rows without replacement. Classes absent from target are
// dropped entirely. The kept rows appear grouped per class in target order,
// in ascending original-row order within each class.
//
// A requested count larger than the class population is an error: this
// helper only removes samples, it never replicates them.
func MakeImbalance(X dataset.Matrix, y []int, target *utils.TargetMap, opts ...Option) (dataset.Matrix, []int, error) {
	const op = "MakeImbalance"

	if X == nil {
		return nil, nil, errors.NewValueError(op, "nil feature matrix")
	}
	if err := utils.CheckConsistentLength(op, X.Rows(), len(y)); err != nil {
		return nil, nil, err
	}
	if target == nil || target.Len() == 0 {
		return nil, nil, errors.NewValueError(op, "empty target distribution")
	}

	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	seed := cfg.randomState
	if !cfg.hasRandomState {
		seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	pools := make(map[int][]int)
	for i, label := range y {
		pools[label] = append(pools[label], i)
	}

	var keep []int
	for _, class := range target.Classes() {
		count := target.Count(class)
		pool := pools[class]
		if count > len(pool) {
			return nil, nil, errors.NewValidationError("target",
				"requested count exceeds the available class population", count)
		}

		// Partial Fisher-Yates: the first count slots end up as a uniform
		// draw without replacement.
		pool = append([]int(nil), pool...)
		for i := 0; i < count; i++ {
			j := i + rng.IntN(len(pool)-i)
			pool[i], pool[j] = pool[j], pool[i]
		}
		chosen := pool[:count]
		sort.Ints(chosen)
		keep = append(keep, chosen...)
	}

	yOut := make([]int, len(keep))
	for i, idx := range keep {
		yOut[i] = y[idx]
	}
	return X.SelectRows(keep), yOut, nil
}
